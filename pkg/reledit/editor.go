// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package reledit defines the public interface for reledit, a fuzzy
// patch-resolution engine: it locates an approximate search block in a
// file and replaces it safely, falling through a chain of increasingly
// tolerant match strategies and never committing a change it cannot
// justify.
// Implements: prd001-editor-interface R1, R4, R5;
//
//	docs/ARCHITECTURE § Editor Interface.
package reledit

import (
	"errors"

	"github.com/petar-djukic/reledit/pkg/types"
)

// ErrInvalidConfig is returned by New when the configuration is unusable.
var ErrInvalidConfig = errors.New("invalid config")

// Config configures an Editor instance.
type Config struct {
	ProjectRoot    string  // Root for relative paths and backups (required)
	FuzzyThreshold float64 // Minimum fuzzy similarity, 0 < t <= 1 (default 0.6)
}

// Editor applies search/replace edits against files under a project root.
// Callers must serialize concurrent edits to the same file; the editor
// performs no locking of its own.
//
// Implements: prd001-editor-interface R1.1, R4.1-R4.3.
type Editor interface {
	// Edit applies one request and reports the outcome. Expected failures
	// (missing file, no match, rejected candidates, write errors) are
	// normalized into the result, never returned as Go errors.
	Edit(req types.EditRequest) types.EditResult

	// Restore copies a backup over the target file. The editor never does
	// this on its own; rollback is always the caller's decision.
	Restore(filePath, backupPath string) error

	// Backups lists the backup paths recorded for a file, newest first.
	Backups(filePath string) ([]string, error)
}
