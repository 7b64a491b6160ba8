// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-chain R2.3, R3.1-R3.3.
package strategy

import (
	"strings"

	"github.com/petar-djukic/reledit/pkg/types"
)

// DefaultFuzzyThreshold is the minimum similarity ratio for a fuzzy window
// to be accepted. The ratio comes from a diff-alignment algorithm, so the
// value is calibrated against that algorithm, not against any other
// similarity family.
const DefaultFuzzyThreshold = 0.6

// maxFuzzyWindows bounds the number of window comparisons per sweep so
// pathological files degrade to a partial scan instead of stalling the call.
const maxFuzzyWindows = 200_000

// Fuzzy slides windows of lines across the file, with window lengths ranging
// two below to two above the search block's line count, and replaces the
// highest-ratio window verbatim with the replacement text. The replacement's
// whitespace is used as-is; no re-indentation happens at this stage.
type Fuzzy struct {
	// Threshold overrides DefaultFuzzyThreshold when positive.
	Threshold float64
}

func (f Fuzzy) Name() types.Strategy { return types.StrategyFuzzy }

func (f Fuzzy) Find(content, search, replace string) (string, bool) {
	best, ok := bestWindow(content, search)
	if !ok || best.ratio < f.threshold() {
		return "", false
	}

	contentLines := splitKeepEnds(content)
	var b strings.Builder
	b.WriteString(joinLines(contentLines[:best.start]))
	b.WriteString(replace)
	b.WriteString(joinLines(contentLines[best.end:]))
	return b.String(), true
}

func (f Fuzzy) threshold() float64 {
	if f.Threshold > 0 {
		return f.Threshold
	}
	return DefaultFuzzyThreshold
}

// window is a candidate line range with its similarity to the search text.
type window struct {
	start int // First line index (0-based, inclusive)
	end   int // Line index past the window (0-based, exclusive)
	ratio float64
	text  string
}

// bestWindow sweeps all window sizes and positions and returns the
// highest-ratio window. Ties break toward the window seen first, so the
// earliest start wins within a size (strict > comparison). The sweep stops
// once maxFuzzyWindows comparisons have been spent, keeping the best so far.
func bestWindow(content, search string) (window, bool) {
	contentLines := splitKeepEnds(content)
	searchLines := splitKeepEnds(search)
	if len(searchLines) == 0 || len(contentLines) == 0 {
		return window{}, false
	}

	budget := maxFuzzyWindows
	best := window{start: -1}

	for length := len(searchLines) - 2; length <= len(searchLines)+2; length++ {
		if length <= 0 || length > len(contentLines) {
			continue
		}
		for i := 0; i+length <= len(contentLines); i++ {
			if budget == 0 {
				return best, best.start >= 0
			}
			budget--

			chunk := joinLines(contentLines[i : i+length])
			if r := Ratio(chunk, search); r > best.ratio {
				best = window{start: i, end: i + length, ratio: r, text: chunk}
			}
		}
	}

	return best, best.start >= 0
}

// ClosestBlock runs the fuzzy sweep with no threshold and reports the
// highest-ratio block for failure hints. The boolean is false when the file
// or search text is empty.
func ClosestBlock(content, search string) (types.Diagnostic, bool) {
	best, ok := bestWindow(content, search)
	if !ok {
		return types.Diagnostic{}, false
	}
	return types.Diagnostic{
		SearchText:   search,
		ClosestBlock: strings.TrimRight(best.text, "\n"),
		Similarity:   best.ratio,
		LineStart:    best.start + 1,
		LineEnd:      best.end,
	}, true
}
