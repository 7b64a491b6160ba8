// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package editformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleBlockWithPath(t *testing.T) {
	input := "config.yaml\n" +
		"<<<<<<< SEARCH\n" +
		"timeout: 30\n" +
		"=======\n" +
		"timeout: 60\n" +
		">>>>>>> REPLACE\n"

	result, err := Parse(input, "")
	require.NoError(t, err)

	require.Len(t, result.Requests, 1)
	req := result.Requests[0]
	assert.Equal(t, "config.yaml", req.FilePath)
	assert.Equal(t, "timeout: 30\n", req.SearchText)
	assert.Equal(t, "timeout: 60\n", req.ReplaceText)
	assert.True(t, req.CreateIfMissing)
	assert.True(t, req.ValidateSyntax)
	assert.Equal(t, 1, result.BlocksFound)
	assert.Equal(t, 1, result.BlocksParsed)
}

func TestParse_BlockWithoutPathUsesDefault(t *testing.T) {
	input := "<<<<<<< SEARCH\n" +
		"old\n" +
		"=======\n" +
		"new\n" +
		">>>>>>> REPLACE\n"

	result, err := Parse(input, "fallback.txt")
	require.NoError(t, err)
	require.Len(t, result.Requests, 1)
	assert.Equal(t, "fallback.txt", result.Requests[0].FilePath)
}

func TestParse_BlockWithoutPathAndNoDefault(t *testing.T) {
	input := "<<<<<<< SEARCH\n" +
		"old\n" +
		"=======\n" +
		"new\n" +
		">>>>>>> REPLACE\n"

	result, err := Parse(input, "")
	require.NoError(t, err)
	assert.Empty(t, result.Requests)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Error(), "no file path")
}

func TestParse_MultipleBlocks(t *testing.T) {
	input := "a.txt\n" +
		"<<<<<<< SEARCH\n" +
		"one\n" +
		"=======\n" +
		"uno\n" +
		">>>>>>> REPLACE\n" +
		"\n" +
		"b.txt\n" +
		"<<<<<<< SEARCH\n" +
		"two\n" +
		"=======\n" +
		"dos\n" +
		">>>>>>> REPLACE\n"

	result, err := Parse(input, "")
	require.NoError(t, err)
	require.Len(t, result.Requests, 2)
	assert.Equal(t, "a.txt", result.Requests[0].FilePath)
	assert.Equal(t, "b.txt", result.Requests[1].FilePath)
}

func TestParse_EmptySearchMeansAppend(t *testing.T) {
	input := "log.txt\n" +
		"<<<<<<< SEARCH\n" +
		"=======\n" +
		"new line\n" +
		">>>>>>> REPLACE\n"

	result, err := Parse(input, "")
	require.NoError(t, err)
	require.Len(t, result.Requests, 1)
	assert.Empty(t, result.Requests[0].SearchText)
	assert.Equal(t, "new line\n", result.Requests[0].ReplaceText)
}

func TestParse_MissingDivider(t *testing.T) {
	input := "a.txt\n" +
		"<<<<<<< SEARCH\n" +
		"orphaned text\n"

	result, err := Parse(input, "")
	require.NoError(t, err)
	assert.Empty(t, result.Requests)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, "divider")
}

func TestParse_MissingReplaceMarker(t *testing.T) {
	input := "a.txt\n" +
		"<<<<<<< SEARCH\n" +
		"old\n" +
		"=======\n" +
		"new\n"

	result, err := Parse(input, "")
	require.NoError(t, err)
	assert.Empty(t, result.Requests)
	require.Len(t, result.ParseErrors, 1)
	assert.Contains(t, result.ParseErrors[0].Message, "REPLACE")
}

func TestParse_NoBlocks(t *testing.T) {
	_, err := Parse("just some prose with no markers\n", "")
	assert.Error(t, err)
	assert.IsType(t, &NoBlocksFoundError{}, err)

	_, err = Parse("   \n", "")
	assert.Error(t, err)
}

func TestParse_MarkdownFencedBlock(t *testing.T) {
	input := "src/app.py\n" +
		"<<<<<<< SEARCH\n" +
		"x = 1\n" +
		"=======\n" +
		"x = 2\n" +
		">>>>>>> REPLACE\n" +
		"```\n"

	result, err := Parse(input, "")
	require.NoError(t, err)
	require.Len(t, result.Requests, 1)
	assert.Equal(t, "src/app.py", result.Requests[0].FilePath)
}
