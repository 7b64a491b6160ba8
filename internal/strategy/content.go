// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-chain R2.5.
package strategy

import (
	"strings"

	"github.com/petar-djukic/reledit/pkg/types"
)

// ContentOnly matches on non-whitespace content alone: if the search text
// with all whitespace removed occurs in the similarly stripped file, a
// window of consecutive original lines is grown until its stripped form
// contains the stripped search, and that window is replaced wholesale.
// Last resort; the window growth is capped at twice the search's line count
// per start position.
type ContentOnly struct{}

func (ContentOnly) Name() types.Strategy { return types.StrategyContentOnly }

func (ContentOnly) Find(content, search, replace string) (string, bool) {
	searchCompact := stripAllSpace(search)
	if searchCompact == "" {
		return "", false
	}
	if !strings.Contains(stripAllSpace(content), searchCompact) {
		return "", false
	}

	contentLines := splitKeepEnds(content)
	maxWindow := 2 * len(splitDropFinal(search))

	for i := range contentLines {
		var b strings.Builder
		for j := i; j < len(contentLines) && j-i < maxWindow; j++ {
			b.WriteString(contentLines[j])
			if !strings.Contains(stripAllSpace(b.String()), searchCompact) {
				continue
			}
			var out strings.Builder
			out.WriteString(joinLines(contentLines[:i]))
			out.WriteString(replace)
			out.WriteString(joinLines(contentLines[j+1:]))
			return out.String(), true
		}
	}

	return "", false
}
