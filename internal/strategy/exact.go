// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd002-match-chain R2.1.
package strategy

import (
	"strings"

	"github.com/petar-djukic/reledit/pkg/types"
)

// Exact performs a literal substring match. When the search text occurs more
// than once, only the first occurrence is replaced; callers that want every
// occurrence use the explicit replace-all mode instead. This is documented
// behavior, not an error.
type Exact struct{}

func (Exact) Name() types.Strategy { return types.StrategyExact }

func (Exact) Find(content, search, replace string) (string, bool) {
	if !strings.Contains(content, search) {
		return "", false
	}
	return strings.Replace(content, search, replace, 1), true
}
