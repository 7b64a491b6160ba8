// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-editor-interface R2, R3 (EditRequest, EditResult);
//
//	prd002-match-chain R4 (Strategy, Diagnostic).
package types

import "fmt"

// EditRequest describes a single search/replace edit against one file.
// SearchText and ReplaceText may arrive with literal \n and \t escape
// sequences from an upstream text channel; the engine normalizes them
// to real newlines and tabs before any matching runs.
type EditRequest struct {
	FilePath        string // Target path, absolute or relative to the project root
	SearchText      string // Text to locate (blank means append/create mode)
	ReplaceText     string // Replacement text
	CreateIfMissing bool   // Create the file when it does not exist and SearchText is blank
	ValidateSyntax  bool   // Reject candidates that fail syntax validation
	ReplaceAll      bool   // Replace every occurrence of a single-line search token
}

// Strategy identifies which matching strategy produced an accepted edit.
type Strategy int

const (
	StrategyNone           Strategy = iota // No strategy succeeded
	StrategyExact                          // Byte-for-byte substring match
	StrategyWhitespaceFlex                 // Leading-whitespace-insensitive match
	StrategyFuzzy                          // Similarity-threshold window match
	StrategyLineAnchor                     // First/last anchor line match
	StrategyContentOnly                    // Whitespace-free content match
	StrategyAppend                         // Blank search appended to an existing file
	StrategyCreate                         // Blank search created a missing file
	StrategyReplaceAll                     // All-occurrence single-line replacement
)

func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact_match"
	case StrategyWhitespaceFlex:
		return "whitespace_flex"
	case StrategyFuzzy:
		return "fuzzy_match"
	case StrategyLineAnchor:
		return "line_anchor"
	case StrategyContentOnly:
		return "content_only"
	case StrategyAppend:
		return "append"
	case StrategyCreate:
		return "create"
	case StrategyReplaceAll:
		return "replace_all"
	case StrategyNone:
		return "none"
	default:
		return "unknown"
	}
}

// MarshalText renders the strategy tag for JSON output.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// EditResult is the normalized outcome of an edit call. Every failure mode
// folds into Success=false with an explanatory Message; the engine never
// surfaces expected conditions as Go errors.
//
// Invariant: Success is true iff exactly one Strategy tag is set and the
// file content on disk changed (or an append/create occurred).
type EditResult struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Strategy   Strategy `json:"strategy_used,omitempty"`
	BackupPath string   `json:"backup_path,omitempty"`
	Diff       string   `json:"diff,omitempty"`
}

// Diagnostic describes the closest block found when every strategy failed,
// with enough detail for a caller to show a useful hint.
type Diagnostic struct {
	FilePath     string  // File where the match was attempted
	SearchText   string  // What was searched for
	ClosestBlock string  // Best partial match found (empty if none)
	Similarity   float64 // Similarity score of the closest block
	LineStart    int     // Starting line of the closest block (1-based)
	LineEnd      int     // Ending line of the closest block (1-based)
}

func (d Diagnostic) String() string {
	if d.ClosestBlock == "" {
		return fmt.Sprintf("no match found in %s", d.FilePath)
	}
	return fmt.Sprintf("no match found in %s (closest block at lines %d-%d, similarity %.2f)",
		d.FilePath, d.LineStart, d.LineEnd, d.Similarity)
}
