// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package textdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnified(t *testing.T) {
	old := "line one\nline two\nline three\n"
	new := "line one\nline 2\nline three\n"

	diff, err := Unified(old, new, "notes/file.txt")
	require.NoError(t, err)

	assert.Contains(t, diff, "--- a/notes/file.txt")
	assert.Contains(t, diff, "+++ b/notes/file.txt")
	assert.Contains(t, diff, "-line two")
	assert.Contains(t, diff, "+line 2")
	assert.Contains(t, diff, "@@")
}

func TestUnified_NoChanges(t *testing.T) {
	diff, err := Unified("same\n", "same\n", "x.txt")
	require.NoError(t, err)
	assert.Empty(t, diff)
}
