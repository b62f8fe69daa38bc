// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"strings"

	"github.com/intake-foundation/intake/lib/schema"
)

// delimiterCutset is the fixed character set trimmed from both ends
// of a candidate delimiter line before lookup. Covers whitespace plus
// the punctuation, quote, and bracket characters people decorate
// delimiter words with ("--- Description ---", "[note]", "text:").
const delimiterCutset = " \t\"'`()[]{}<>:;,.!?*_~-=#"

// sanitizeDelimiter trims the cutset and lowercases the remainder,
// producing the token compared against delimiter alias sets. A blank
// or punctuation-only line sanitizes to "".
func sanitizeDelimiter(line string) string {
	return strings.ToLower(strings.Trim(line, delimiterCutset))
}

// scanDelimiters walks lines from index from, assigning body fields
// to schemas whose delimiter alias sets contain the sanitized line.
// Schemas are checked in registry priority order, so when several
// schemas claim the same token the earlier schema is resolved first
// on that line; assignments are otherwise independent per schema and
// a single line may assign body fields to several schemas at once.
//
// A schema stops participating once it has a body field, except that
// a blank line after assignment is delimiter-confirmed pass-through:
// it is consumed without reassigning. The shared scan consumes a line
// only when at least one schema matched it (assignment or
// pass-through); the first unmatched line starts the body. Returns
// the body start index and the per-schema body field names.
func scanDelimiters(registry *schema.Registry, lines []string, from int) (int, map[schema.Kind]string) {
	assigned := make(map[schema.Kind]string)
	i := from
	for i < len(lines) {
		token := sanitizeDelimiter(lines[i])
		matched := false
		for _, s := range registry.Schemas() {
			if _, done := assigned[s.Kind]; done {
				if token == "" {
					matched = true
				}
				continue
			}
			if field, ok := s.BodyFieldFor(token); ok {
				assigned[s.Kind] = field
				matched = true
			}
		}
		if !matched {
			break
		}
		i++
	}
	return i, assigned
}
