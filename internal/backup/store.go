// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package backup snapshots file content before edits and restores it on
// request. Snapshots are never deleted here; retention is the caller's
// policy.
// Implements: prd003-backup-store R1, R2, R3;
//
//	docs/ARCHITECTURE § Backup Store.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DirName is the backup directory created under the project root.
const DirName = ".reledit.backups"

const timestampLayout = "20060102_150405"

// Store writes timestamped pre-edit snapshots under a single directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at <projectRoot>/.reledit.backups.
// The directory is created lazily on the first snapshot.
func NewStore(projectRoot string) *Store {
	return &Store{dir: filepath.Join(projectRoot, DirName)}
}

// Dir returns the backup directory path.
func (s *Store) Dir() string { return s.dir }

// Snapshot writes content to <filename>.<YYYYMMDD_HHMMSS>.bak and returns
// the backup path.
//
// Implements: prd003-backup-store R1.1-R1.3.
func (s *Store) Snapshot(filePath string, content []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory %s: %w", s.dir, err)
	}

	name := fmt.Sprintf("%s.%s.bak", filepath.Base(filePath), time.Now().Format(timestampLayout))
	backupPath := filepath.Join(s.dir, name)

	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// Restore copies a backup's content over the target file. The store never
// calls this itself; rollback is always an explicit caller decision.
//
// Implements: prd003-backup-store R2.1-R2.3.
func (s *Store) Restore(filePath, backupPath string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("reading backup %s: %w", backupPath, err)
	}

	// Preserve the target's permissions when it already exists.
	perm := os.FileMode(0o644)
	if info, err := os.Stat(filePath); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return fmt.Errorf("restoring %s: %w", filePath, err)
	}
	return nil
}

// List returns the backup paths recorded for the given file, newest first.
// A missing backup directory yields an empty list, not an error.
//
// Implements: prd003-backup-store R3.1, R3.2.
func (s *Store) List(filePath string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading backup directory %s: %w", s.dir, err)
	}

	prefix := filepath.Base(filePath) + "."
	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".bak") {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, name))
	}

	// The timestamp format sorts lexically; reverse for newest first.
	sort.Sort(sort.Reverse(sort.StringSlice(paths)))
	return paths, nil
}
