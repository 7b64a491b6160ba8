// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package textdiff renders unified diffs of accepted edits for audit and
// display. Purely informational; diffs never influence acceptance.
// Implements: prd005-diff-report R1;
//
//	docs/ARCHITECTURE § Diff Report.
package textdiff

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// Unified renders a standard unified diff between the pre- and post-edit
// content, labeled a/<path> and b/<path>.
func Unified(oldContent, newContent, displayPath string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(oldContent),
		B:        difflib.SplitLines(newContent),
		FromFile: "a/" + displayPath,
		ToFile:   "b/" + displayPath,
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("rendering diff for %s: %w", displayPath, err)
	}
	return text, nil
}
