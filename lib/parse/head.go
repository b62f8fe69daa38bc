// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"strings"

	"github.com/intake-foundation/intake/lib/schema"
)

// scanHead walks lines from index 0, extracting "key: value" pairs
// into per-schema datasets. A single line can contribute to any
// number of schemas whose alias tables know its key. Returns the
// index of the first non-header line (len(lines) when every line is
// a header line) and the datasets.
//
// The scan breaks on the first miss: a line without a colon, or whose
// key no schema recognizes, ends the header even if later lines would
// have matched.
func scanHead(registry *schema.Registry, lines []string) (int, map[schema.Kind]Dataset) {
	datasets := make(map[schema.Kind]Dataset)
	for i, line := range lines {
		key, value, ok := splitHeadLine(line)
		if !ok {
			return i, datasets
		}
		matched := false
		for _, s := range registry.Schemas() {
			canonical, known := s.CanonicalFor(key)
			if !known {
				continue
			}
			matched = true
			dataset := datasets[s.Kind]
			if dataset == nil {
				dataset = make(Dataset)
				datasets[s.Kind] = dataset
			}
			// First-write-wins: a later line naming the same
			// canonical attribute (via any alias) is ignored.
			if _, taken := dataset[canonical]; !taken {
				dataset[canonical] = value
			}
		}
		if !matched {
			return i, datasets
		}
	}
	return len(lines), datasets
}

// splitHeadLine splits a header line on its first colon into a
// lowercased, trimmed key and a trimmed value. Lines without a colon
// are not header lines.
func splitHeadLine(line string) (key, value string, ok bool) {
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return "", "", false
	}
	key = strings.ToLower(strings.TrimSpace(line[:colon]))
	value = strings.TrimSpace(line[colon+1:])
	return key, value, true
}
