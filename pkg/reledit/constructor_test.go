// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package reledit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/petar-djukic/reledit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing root", Config{}},
		{"nonexistent root", Config{ProjectRoot: "/definitely/not/a/dir"}},
		{"threshold above one", Config{ProjectRoot: ".", FuzzyThreshold: 1.5}},
		{"negative threshold", Config{ProjectRoot: ".", FuzzyThreshold: -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestEditor_RoundTrip(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: 30\n"), 0o644))

	ed, err := New(Config{ProjectRoot: root})
	require.NoError(t, err)

	res := ed.Edit(types.EditRequest{
		FilePath:    "config.yaml",
		SearchText:  "timeout: 30\n",
		ReplaceText: "timeout: 60\n",
	})
	require.True(t, res.Success, res.Message)
	require.NotEmpty(t, res.BackupPath)

	// The backup is listed and restores the original content.
	paths, err := ed.Backups(path)
	require.NoError(t, err)
	require.NotEmpty(t, paths)
	assert.Equal(t, res.BackupPath, paths[0])

	require.NoError(t, ed.Restore(path, res.BackupPath))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "timeout: 30\n", string(got))
}
