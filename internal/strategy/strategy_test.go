// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package strategy

import (
	"strings"
	"testing"

	"github.com/petar-djukic/reledit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainOrder(t *testing.T) {
	chain := Chain(0)
	require.Len(t, chain, 5)

	want := []types.Strategy{
		types.StrategyExact,
		types.StrategyWhitespaceFlex,
		types.StrategyFuzzy,
		types.StrategyLineAnchor,
		types.StrategyContentOnly,
	}
	for i, s := range chain {
		assert.Equal(t, want[i], s.Name())
	}
}

func TestExact(t *testing.T) {
	tests := []struct {
		name    string
		content string
		search  string
		replace string
		want    string
		wantOK  bool
	}{
		{
			name:    "unique occurrence replaced",
			content: "def foo():\n    return 1\n",
			search:  "    return 1",
			replace: "    return 2",
			want:    "def foo():\n    return 2\n",
			wantOK:  true,
		},
		{
			name:    "multiple occurrences replace only the first",
			content: "a: 1\nb: 2\na: 1\n",
			search:  "a: 1\n",
			replace: "a: 99\n",
			want:    "a: 99\nb: 2\na: 1\n",
			wantOK:  true,
		},
		{
			name:    "absent search falls through",
			content: "a: 1\n",
			search:  "z: 9\n",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Exact{}.Find(tt.content, tt.search, tt.replace)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWhitespaceFlex_RecoversFileIndent(t *testing.T) {
	// The file uses an 8-space indent; the search block arrived with 4.
	content := "def foo():\n        return 1\n"

	got, ok := WhitespaceFlex{}.Find(content, "    return 1", "    return 2")
	require.True(t, ok)
	assert.Equal(t, "def foo():\n        return 2\n", got)
}

func TestWhitespaceFlex_PreservesRelativeIndent(t *testing.T) {
	content := "    if x:\n        do()\n"
	search := "if x:\n    do()\n"
	// The replacement indents its body one level deeper than the search
	// block did; that extra level survives on top of the file's indent.
	replace := "if x:\n        do_more()\n"

	got, ok := WhitespaceFlex{}.Find(content, search, replace)
	require.True(t, ok)
	assert.Equal(t, "    if x:\n        do_more()\n", got)
}

func TestWhitespaceFlex_NoMatch(t *testing.T) {
	_, ok := WhitespaceFlex{}.Find("alpha\nbeta\n", "gamma\n", "delta\n")
	assert.False(t, ok)
}

func TestFuzzy_MatchesMinorVariation(t *testing.T) {
	content := "This is a Go library coding agent\n"
	search := "This is a Go library coding agnet\n"

	got, ok := Fuzzy{}.Find(content, search, "replacement\n")
	require.True(t, ok)
	assert.Equal(t, "replacement\n", got)
}

func TestFuzzy_BelowThreshold(t *testing.T) {
	_, ok := Fuzzy{}.Find("alpha\n", "completely different text entirely\n", "x\n")
	assert.False(t, ok)
}

func TestFuzzy_EarliestWindowWins(t *testing.T) {
	content := "aaa\nbbb\naaa\n"

	got, ok := Fuzzy{}.Find(content, "aaa\n", "zzz\n")
	require.True(t, ok)
	assert.Equal(t, "zzz\nbbb\naaa\n", got)
}

func TestFuzzy_ReplacementUsedVerbatim(t *testing.T) {
	content := "    value = compute(a, b)\n"
	search := "    value = compute(a, c)\n"
	replace := "value=compute(a,b,c)\n" // Deliberately unindented.

	got, ok := Fuzzy{}.Find(content, search, replace)
	require.True(t, ok)
	assert.Equal(t, replace, got)
}

func TestLineAnchor(t *testing.T) {
	content := "func a() {\n\tx := 1\n\ty := 2\n}\n"
	// Interior lines differ from the file; only the anchors must line up.
	search := "func a() {\n\tx := 9\n\ty := 8\n}"
	replace := "func a() {\n\tz := 3\n}\n"

	got, ok := LineAnchor{}.Find(content, search, replace)
	require.True(t, ok)
	assert.Equal(t, "func a() {\n\tz := 3\n}\n", got)
}

func TestLineAnchor_RequiresTwoLines(t *testing.T) {
	_, ok := LineAnchor{}.Find("one\ntwo\n", "one", "x")
	assert.False(t, ok)
}

func TestLineAnchor_SpanMustFit(t *testing.T) {
	// The first anchor matches but the span runs past end of file.
	_, ok := LineAnchor{}.Find("start\n", "start\nmiddle\nend\n", "x\n")
	assert.False(t, ok)
}

func TestContentOnly(t *testing.T) {
	content := "def f( a,\n      b ):\n    pass\n"
	search := "def f(a, b):"

	got, ok := ContentOnly{}.Find(content, search, "def f(a, b):\n")
	require.True(t, ok)
	assert.Equal(t, "def f(a, b):\n    pass\n", got)
}

func TestContentOnly_NoMatch(t *testing.T) {
	_, ok := ContentOnly{}.Find("alpha beta\n", "gamma", "x")
	assert.False(t, ok)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 1.0, Ratio("hello", "hello"))
	assert.Equal(t, 0.0, Ratio("", "hello"))
	assert.Equal(t, 0.0, Ratio("hello", ""))

	assert.Greater(t, Ratio("hello world", "hello worl"), 0.8)
	assert.Less(t, Ratio("abc", "entirely unrelated content"), 0.3)
}

func TestClosestBlock(t *testing.T) {
	content := "line one\nline two\nline three\n"

	d, ok := ClosestBlock(content, "line twoo")
	require.True(t, ok)
	assert.NotEmpty(t, d.ClosestBlock)
	assert.Greater(t, d.Similarity, 0.0)
	assert.GreaterOrEqual(t, d.LineStart, 1)
	assert.GreaterOrEqual(t, d.LineEnd, d.LineStart)
	assert.True(t, strings.Contains(content, d.ClosestBlock))
}

func TestClosestBlock_EmptyInputs(t *testing.T) {
	_, ok := ClosestBlock("", "search")
	assert.False(t, ok)

	_, ok = ClosestBlock("content\n", "")
	assert.False(t, ok)
}
