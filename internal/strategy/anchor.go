// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-chain R2.4.
package strategy

import (
	"strings"

	"github.com/petar-djukic/reledit/pkg/types"
)

// LineAnchor matches by the search block's boundary lines only: the first
// and last lines (compared with surrounding whitespace stripped) bound a
// span of exactly len(searchLines) file lines. The interior is not compared,
// which makes this useful when the middle of the block was paraphrased.
// Requires a search block of at least two lines.
type LineAnchor struct{}

func (LineAnchor) Name() types.Strategy { return types.StrategyLineAnchor }

func (LineAnchor) Find(content, search, replace string) (string, bool) {
	contentLines := splitDropFinal(content)
	searchLines := splitDropFinal(strings.TrimSpace(search))

	if len(searchLines) < 2 {
		return "", false
	}

	first := strings.TrimSpace(searchLines[0])
	last := strings.TrimSpace(searchLines[len(searchLines)-1])

	for start, line := range contentLines {
		if strings.TrimSpace(line) != first {
			continue
		}
		end := start + len(searchLines) - 1
		if end >= len(contentLines) {
			continue
		}
		if strings.TrimSpace(contentLines[end]) != last {
			continue
		}

		// Replace the whole bounded span, inclusive.
		result := make([]string, 0, len(contentLines))
		result = append(result, contentLines[:start]...)
		result = append(result, splitDropFinal(replace)...)
		result = append(result, contentLines[end+1:]...)
		return strings.Join(result, "\n") + "\n", true
	}

	return "", false
}
