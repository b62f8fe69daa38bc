// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"strings"

	"github.com/intake-foundation/intake/lib/schema"
)

// Dataset maps canonical attribute names to raw (uncoerced) string
// values for one schema. Built during the header scan; discarded when
// the parse returns.
type Dataset map[string]string

// context is the per-call aggregate threaded through the parse
// phases. One is created per Parse call and never escapes it.
type context struct {
	registry *schema.Registry
	lines    []string

	// datasets holds one Dataset per schema kind, populated by the
	// header scan. Schemas with no matching header line have no
	// entry (equivalent to an empty dataset).
	datasets map[schema.Kind]Dataset

	// bodyFields records, per schema, the body field name assigned
	// by delimiter detection. Absent when no delimiter line was
	// recognized for that schema.
	bodyFields map[schema.Kind]string

	// bodyStart is the index of the first body line.
	bodyStart int
}

// dataset returns the schema's dataset, which may be nil (reads on a
// nil map behave as empty).
func (c *context) dataset(kind schema.Kind) Dataset {
	return c.datasets[kind]
}

// splitLines normalizes line endings to "\n", strips one trailing
// newline so "a\n" is one line rather than a line plus an empty one,
// and splits. An empty input yields a single empty line, matching the
// behavior of an interactively submitted empty buffer.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
