// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package engine orchestrates a single edit transaction: resolve the path,
// normalize escapes, snapshot, run the strategy chain, validate, write, and
// report. Each call is stateless; concurrent calls against the same file
// are the caller's responsibility to serialize.
// Implements: prd001-editor-interface R1;
//
//	docs/ARCHITECTURE § Edit Engine.
package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/petar-djukic/reledit/internal/backup"
	"github.com/petar-djukic/reledit/internal/strategy"
	"github.com/petar-djukic/reledit/internal/textdiff"
	"github.com/petar-djukic/reledit/internal/validate"
	"github.com/petar-djukic/reledit/pkg/types"
)

// Config configures an Engine.
type Config struct {
	ProjectRoot    string  // Root for relative paths and the backup directory
	FuzzyThreshold float64 // Minimum fuzzy similarity (default 0.6)
}

// Engine applies edits through the ordered strategy chain. It owns the
// backup directory layout and the decision to write; strategies stay pure.
type Engine struct {
	root       string
	strategies []strategy.Strategy
	backups    *backup.Store
}

// New builds an Engine rooted at cfg.ProjectRoot.
func New(cfg Config) *Engine {
	root := filepath.Clean(cfg.ProjectRoot)
	return &Engine{
		root:       root,
		strategies: strategy.Chain(cfg.FuzzyThreshold),
		backups:    backup.NewStore(root),
	}
}

// Backups exposes the engine's backup store for restore and listing.
func (e *Engine) Backups() *backup.Store { return e.backups }

// Edit applies one search/replace request. Every expected failure mode is
// normalized into the returned EditResult; Edit never panics and never
// returns a Go error.
//
// Implements: prd001-editor-interface R1.1-R1.9.
func (e *Engine) Edit(req types.EditRequest) types.EditResult {
	path := e.resolvePath(req.FilePath)
	search := unescape(req.SearchText)
	replace := unescape(req.ReplaceText)

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return failure(fmt.Sprintf("stat %s: %v", req.FilePath, err))
		}
		if req.CreateIfMissing && strings.TrimSpace(search) == "" {
			return e.createFile(path, req.FilePath, replace)
		}
		return failure(fmt.Sprintf("file not found: %s", req.FilePath))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return failure(fmt.Sprintf("reading %s: %v", req.FilePath, err))
	}
	content := string(data)

	// Blank search on an existing file means append.
	if strings.TrimSpace(search) == "" {
		return e.appendToFile(path, req.FilePath, content, replace)
	}

	// Snapshot once, before any strategy that could lead to a write.
	backupPath, err := e.backups.Snapshot(path, data)
	if err != nil {
		return failure(fmt.Sprintf("creating backup: %v", err))
	}

	if req.ReplaceAll && isRenameToken(search) && strings.Contains(content, search) {
		return e.replaceAll(path, req, content, search, replace, backupPath)
	}

	rejected := 0
	for _, s := range e.strategies {
		candidate, ok := s.Find(content, search, replace)
		if !ok {
			continue
		}

		if req.ValidateSyntax {
			if verr := validate.Check(path, candidate); verr != nil {
				rejected++
				log.Debug().
					Str("file", req.FilePath).
					Str("strategy", s.Name().String()).
					Err(verr).
					Msg("candidate rejected by syntax validation")
				continue
			}
		}

		if werr := atomicWrite(path, []byte(candidate)); werr != nil {
			return types.EditResult{
				Message:    fmt.Sprintf("writing %s: %v", req.FilePath, werr),
				BackupPath: backupPath,
			}
		}

		log.Debug().
			Str("file", req.FilePath).
			Str("strategy", s.Name().String()).
			Msg("edit applied")

		return types.EditResult{
			Success:    true,
			Message:    fmt.Sprintf("edit applied using %s", s.Name()),
			Strategy:   s.Name(),
			BackupPath: backupPath,
			Diff:       e.renderDiff(content, candidate, req.FilePath),
		}
	}

	return e.noMatch(req.FilePath, content, search, backupPath, rejected)
}

// replaceAll handles the explicit all-occurrence mode for single-line
// rename-style tokens, bypassing the ranked strategies.
func (e *Engine) replaceAll(path string, req types.EditRequest, content, search, replace, backupPath string) types.EditResult {
	count := strings.Count(content, search)
	candidate := strings.ReplaceAll(content, search, replace)

	if req.ValidateSyntax {
		if verr := validate.Check(path, candidate); verr != nil {
			return types.EditResult{
				Message:    fmt.Sprintf("replace-all rejected by syntax validation: %v", verr),
				BackupPath: backupPath,
			}
		}
	}

	if werr := atomicWrite(path, []byte(candidate)); werr != nil {
		return types.EditResult{
			Message:    fmt.Sprintf("writing %s: %v", req.FilePath, werr),
			BackupPath: backupPath,
		}
	}

	return types.EditResult{
		Success:    true,
		Message:    fmt.Sprintf("replaced %d occurrence(s)", count),
		Strategy:   types.StrategyReplaceAll,
		BackupPath: backupPath,
		Diff:       e.renderDiff(content, candidate, req.FilePath),
	}
}

// createFile creates a missing file and any parent directories.
func (e *Engine) createFile(path, displayPath, content string) types.EditResult {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return failure(fmt.Sprintf("creating directory for %s: %v", displayPath, err))
	}
	if err := atomicWrite(path, []byte(content)); err != nil {
		return failure(fmt.Sprintf("creating %s: %v", displayPath, err))
	}
	return types.EditResult{
		Success:  true,
		Message:  fmt.Sprintf("created new file: %s", displayPath),
		Strategy: types.StrategyCreate,
		Diff:     e.renderDiff("", content, displayPath),
	}
}

// appendToFile appends the replacement to an existing file. The pre-append
// content is snapshotted like any other mutation.
func (e *Engine) appendToFile(path, displayPath, content, text string) types.EditResult {
	backupPath, err := e.backups.Snapshot(path, []byte(content))
	if err != nil {
		return failure(fmt.Sprintf("creating backup: %v", err))
	}

	candidate := content + text
	if werr := atomicWrite(path, []byte(candidate)); werr != nil {
		return types.EditResult{
			Message:    fmt.Sprintf("writing %s: %v", displayPath, werr),
			BackupPath: backupPath,
		}
	}

	return types.EditResult{
		Success:    true,
		Message:    fmt.Sprintf("appended to %s", displayPath),
		Strategy:   types.StrategyAppend,
		BackupPath: backupPath,
		Diff:       e.renderDiff(content, candidate, displayPath),
	}
}

// noMatch builds the failure result after every strategy was exhausted,
// including a closest-block hint from an unthresholded fuzzy sweep. The
// file is byte-identical to its pre-call state.
func (e *Engine) noMatch(displayPath, content, search, backupPath string, rejected int) types.EditResult {
	msg := fmt.Sprintf("no match found in %s", displayPath)
	if rejected > 0 {
		msg += fmt.Sprintf(" (%d candidate(s) rejected by syntax validation)", rejected)
	}

	if d, ok := strategy.ClosestBlock(content, search); ok && d.ClosestBlock != "" {
		msg += fmt.Sprintf(
			"\n\nDid you mean (lines %d-%d, similarity %.2f):\n```\n%s\n```",
			d.LineStart, d.LineEnd, d.Similarity, d.ClosestBlock,
		)
	}

	return types.EditResult{Message: msg, BackupPath: backupPath}
}

// renderDiff produces the unified diff for the result. Diff failures are
// logged, never fatal: the edit already happened.
func (e *Engine) renderDiff(oldContent, newContent, displayPath string) string {
	text, err := textdiff.Unified(oldContent, newContent, displayPath)
	if err != nil {
		log.Warn().Str("file", displayPath).Err(err).Msg("failed to render diff")
		return ""
	}
	return text
}

// resolvePath joins relative paths onto the project root.
func (e *Engine) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filepath.Clean(filePath)
	}
	return filepath.Join(e.root, filePath)
}

// isRenameToken reports whether search is a single-line, non-blank token
// suitable for the replace-all fast path.
func isRenameToken(search string) bool {
	return !strings.Contains(search, "\n") && strings.TrimSpace(search) != ""
}

// unescape converts literal \n and \t sequences from an upstream text
// channel into real newlines and tabs.
func unescape(text string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(text)
}

func failure(msg string) types.EditResult {
	return types.EditResult{Message: msg}
}
