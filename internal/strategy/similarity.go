// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import "github.com/sergi/go-diff/diffmatchpatch"

// Ratio computes a normalized similarity between two blocks of text using
// a diff alignment from the go-diff library. Returns a value between 0.0
// and 1.0, where 1.0 means identical.
func Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)
	distance := dmp.DiffLevenshtein(diffs)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
