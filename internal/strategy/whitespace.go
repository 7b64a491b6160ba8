// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-chain R2.2.
package strategy

import (
	"strings"

	"github.com/petar-djukic/reledit/pkg/types"
)

// WhitespaceFlex matches with each line's leading whitespace ignored.
// Upstream generators routinely get indentation wrong; on a match the
// original file's indentation for the block is recovered and re-applied to
// the replacement lines, preserving any extra relative indentation the
// replacement itself specifies.
type WhitespaceFlex struct{}

func (WhitespaceFlex) Name() types.Strategy { return types.StrategyWhitespaceFlex }

func (WhitespaceFlex) Find(content, search, replace string) (string, bool) {
	contentLines := splitKeepEnds(content)
	searchLines := splitKeepEnds(search)
	replaceLines := splitKeepEnds(replace)

	if len(searchLines) == 0 {
		return "", false
	}

	searchKeys := make([]string, len(searchLines))
	for i, line := range searchLines {
		searchKeys[i] = strippedKey(line)
	}

	for i := 0; i+len(searchLines) <= len(contentLines); i++ {
		chunk := contentLines[i : i+len(searchLines)]
		if !chunkMatches(chunk, searchKeys) {
			continue
		}

		// Recover the block's indentation from its first non-blank line.
		indent := ""
		if strings.TrimSpace(chunk[0]) != "" {
			indent = leadingIndent(chunk[0])
		}

		indented := reindent(replaceLines, searchLines, indent)

		// Keep the file's trailing newline when the replacement omits it.
		if len(indented) > 0 && len(chunk) > 0 {
			lastNew := indented[len(indented)-1]
			lastOld := chunk[len(chunk)-1]
			if strings.HasSuffix(lastOld, "\n") && !strings.HasSuffix(lastNew, "\n") {
				indented[len(indented)-1] = lastNew + "\n"
			}
		}

		var b strings.Builder
		b.WriteString(joinLines(contentLines[:i]))
		b.WriteString(joinLines(indented))
		b.WriteString(joinLines(contentLines[i+len(searchLines):]))
		return b.String(), true
	}

	return "", false
}

// chunkMatches compares a window of file lines against normalized search keys.
func chunkMatches(chunk, searchKeys []string) bool {
	for j, line := range chunk {
		if strippedKey(line) != searchKeys[j] {
			return false
		}
	}
	return true
}

// reindent applies the matched block's indent to every non-blank replacement
// line. When a replacement line is indented deeper than the corresponding
// search line, the non-negative delta is preserved on top of the block
// indent so the replacement can introduce nested structure.
func reindent(replaceLines, searchLines []string, indent string) []string {
	indented := make([]string, 0, len(replaceLines))
	for j, line := range replaceLines {
		if strings.TrimSpace(line) == "" {
			indented = append(indented, line)
			continue
		}
		if j < len(searchLines) && strings.TrimSpace(searchLines[j]) != "" {
			origIndent := len(leadingIndent(searchLines[j]))
			newIndent := len(leadingIndent(line))
			extra := newIndent - origIndent
			if extra < 0 {
				extra = 0
			}
			indented = append(indented, indent+strings.Repeat(" ", extra)+trimLeading(line))
			continue
		}
		indented = append(indented, indent+trimLeading(line))
	}
	return indented
}
