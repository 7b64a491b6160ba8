// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-editor-interface R5.
package reledit

import (
	"fmt"
	"os"

	"github.com/petar-djukic/reledit/internal/engine"
	"github.com/petar-djukic/reledit/pkg/types"
)

// New validates the config and returns a ready-to-use Editor. The backup
// directory is created lazily on the first mutating edit, not here.
//
// Implements: prd001-editor-interface R5.1-R5.3.
func New(cfg Config) (Editor, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	eng := engine.New(engine.Config{
		ProjectRoot:    cfg.ProjectRoot,
		FuzzyThreshold: cfg.FuzzyThreshold,
	})

	return &editorAdapter{engine: eng}, nil
}

// editorAdapter adapts internal/engine.Engine to the public Editor interface.
type editorAdapter struct {
	engine *engine.Engine
}

func (a *editorAdapter) Edit(req types.EditRequest) types.EditResult {
	return a.engine.Edit(req)
}

func (a *editorAdapter) Restore(filePath, backupPath string) error {
	return a.engine.Backups().Restore(filePath, backupPath)
}

func (a *editorAdapter) Backups(filePath string) ([]string, error) {
	return a.engine.Backups().List(filePath)
}

// validateConfig checks that required fields are present and sane.
func validateConfig(cfg Config) error {
	if cfg.ProjectRoot == "" {
		return fmt.Errorf("ProjectRoot is required")
	}
	if info, err := os.Stat(cfg.ProjectRoot); err != nil || !info.IsDir() {
		return fmt.Errorf("ProjectRoot %q does not exist or is not a directory", cfg.ProjectRoot)
	}
	if cfg.FuzzyThreshold < 0 || cfg.FuzzyThreshold > 1 {
		return fmt.Errorf("FuzzyThreshold %v is outside [0, 1]", cfg.FuzzyThreshold)
	}
	return nil
}
