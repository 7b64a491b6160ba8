// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package editformat parses SEARCH/REPLACE block streams into edit
// requests. The format is the one most edit-generating models emit:
//
//	path/to/file.py
//	<<<<<<< SEARCH
//	old text
//	=======
//	new text
//	>>>>>>> REPLACE
//
// The file path line is optional per block; blocks without one inherit the
// caller's default file.
// Implements: prd006-block-format R1, R2;
//
//	docs/ARCHITECTURE § Block Format.
package editformat

import (
	"fmt"
	"strings"

	"github.com/petar-djukic/reledit/pkg/types"
)

const (
	markerSearch  = "<<<<<<< SEARCH"
	markerDivider = "======="
	markerReplace = ">>>>>>> REPLACE"
)

// ParseError describes a malformed block in the input.
type ParseError struct {
	Position int    // Line number where the block starts (1-based)
	Message  string // What went wrong
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Position, e.Message)
}

// NoBlocksFoundError is returned when the input contains no blocks at all.
type NoBlocksFoundError struct{}

func (e *NoBlocksFoundError) Error() string {
	return "no SEARCH/REPLACE blocks found in input"
}

// ParseResult holds the outcome of parsing a block stream.
type ParseResult struct {
	Requests     []types.EditRequest // Successfully parsed blocks
	ParseErrors  []*ParseError       // Errors from malformed blocks
	BlocksFound  int                 // Total blocks attempted
	BlocksParsed int                 // Blocks that produced valid requests
}

// Parse extracts SEARCH/REPLACE blocks from text. Blocks lacking a file
// path line fall back to defaultFile; a block with neither is a parse
// error. When no block markers occur at all, returns NoBlocksFoundError.
//
// Implements: prd006-block-format R1.1-R1.6, R2.1-R2.3.
func Parse(text, defaultFile string) (*ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &NoBlocksFoundError{}
	}

	result := &ParseResult{}
	lines := strings.Split(text, "\n")
	i := 0

	for i < len(lines) {
		searchIdx := nextMarker(lines, i, markerSearch)
		if searchIdx < 0 {
			break
		}

		// The line immediately before the SEARCH marker may name the file.
		filePath := ""
		if searchIdx > 0 {
			filePath = extractFilePath(lines[searchIdx-1])
		}
		if filePath == "" {
			filePath = defaultFile
		}

		i = searchIdx + 1
		result.BlocksFound++

		searchText, next, foundDivider := collectUntil(lines, i, markerDivider)
		i = next
		if !foundDivider {
			result.ParseErrors = append(result.ParseErrors, &ParseError{
				Position: searchIdx + 1,
				Message:  "unclosed block: missing ======= divider",
			})
			continue
		}

		replaceText, next, foundReplace := collectUntil(lines, i, markerReplace)
		i = next
		if !foundReplace {
			result.ParseErrors = append(result.ParseErrors, &ParseError{
				Position: searchIdx + 1,
				Message:  "unclosed block: missing >>>>>>> REPLACE marker",
			})
			continue
		}

		// Skip a trailing markdown fence wrapping the block.
		if i < len(lines) && isMarkdownFence(lines[i]) {
			i++
		}

		if filePath == "" {
			result.ParseErrors = append(result.ParseErrors, &ParseError{
				Position: searchIdx + 1,
				Message:  "no file path before <<<<<<< SEARCH and no default file",
			})
			continue
		}

		// The block format omits the final newline before each marker.
		if searchText != "" {
			searchText += "\n"
		}
		if replaceText != "" {
			replaceText += "\n"
		}

		result.Requests = append(result.Requests, types.EditRequest{
			FilePath:        filePath,
			SearchText:      searchText,
			ReplaceText:     replaceText,
			CreateIfMissing: true,
			ValidateSyntax:  true,
		})
		result.BlocksParsed++
	}

	if result.BlocksFound == 0 {
		return nil, &NoBlocksFoundError{}
	}

	return result, nil
}

// nextMarker returns the index of the next line matching marker at or after
// start, or -1.
func nextMarker(lines []string, start int, marker string) int {
	for j := start; j < len(lines); j++ {
		if isMarker(lines[j], marker) {
			return j
		}
	}
	return -1
}

// collectUntil gathers lines until the marker, returning the joined text,
// the index past the marker, and whether the marker was found.
func collectUntil(lines []string, start int, marker string) (string, int, bool) {
	var b strings.Builder
	i := start
	for i < len(lines) {
		if isMarker(lines[i], marker) {
			return b.String(), i + 1, true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lines[i])
		i++
	}
	return b.String(), i, false
}

// extractFilePath cleans a candidate file path line, stripping markdown
// fences, backticks, and whitespace. Lines that read like prose are not
// paths.
func extractFilePath(line string) string {
	s := strings.TrimSpace(line)

	if isMarkdownFence(s) {
		return ""
	}

	s = strings.Trim(s, "`")
	s = strings.TrimSpace(s)

	if strings.ContainsAny(s, " \t") && !strings.Contains(s, "/") {
		return ""
	}

	return s
}

// isMarker checks if a line matches a marker, allowing surrounding whitespace.
func isMarker(line, marker string) bool {
	return strings.TrimSpace(line) == marker
}

// isMarkdownFence checks for a ``` fence line with an optional language tag.
func isMarkdownFence(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}
