// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package strategy implements the ordered match-strategy chain that locates
// an approximate search block in file content and rewrites it.
// Implements: prd002-match-chain R1, R2, R3;
//
//	docs/ARCHITECTURE § Match Chain.
package strategy

import (
	"strings"
	"unicode"

	"github.com/petar-djukic/reledit/pkg/types"
)

// Strategy locates search in content and returns the fully rewritten file
// content. Strategies are pure functions: no I/O, no shared state. A false
// second return means "no match here, try the next strategy".
type Strategy interface {
	Name() types.Strategy
	Find(content, search, replace string) (string, bool)
}

// Chain returns the five strategies in fixed priority order. The first
// strategy to return a candidate (that survives validation) wins; there is
// no cross-strategy scoring.
//
// Implements: prd002-match-chain R1.1, R1.2.
func Chain(fuzzyThreshold float64) []Strategy {
	return []Strategy{
		Exact{},
		WhitespaceFlex{},
		Fuzzy{Threshold: fuzzyThreshold},
		LineAnchor{},
		ContentOnly{},
	}
}

// splitKeepEnds splits content into lines, each retaining its trailing
// newline. A final line without a newline is kept as-is; empty content
// yields no lines.
func splitKeepEnds(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// splitDropFinal splits on newlines, dropping the empty final element a
// terminal newline produces.
func splitDropFinal(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// trimLeading removes leading whitespace from a line, keeping any trailing
// newline intact.
func trimLeading(line string) string {
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

// leadingIndent returns the leading whitespace prefix of a line.
func leadingIndent(line string) string {
	return line[:len(line)-len(trimLeading(line))]
}

// strippedKey normalizes a line for indentation-insensitive comparison:
// leading whitespace and the trailing newline are ignored.
func strippedKey(line string) string {
	return strings.TrimRight(trimLeading(line), "\n")
}

// stripAllSpace removes every whitespace character from s.
func stripAllSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// joinLines concatenates keepends lines back into text.
func joinLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
	}
	return b.String()
}
