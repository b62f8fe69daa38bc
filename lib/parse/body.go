// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package parse

import "strings"

// accumulateBody joins every line from start onward with the join
// token into a single body string. Returns "" when no lines remain.
// The same accumulated text serves every schema that acquired a body
// field; only the winning schema's record retains it.
func accumulateBody(lines []string, start int, join string) string {
	if start >= len(lines) {
		return ""
	}
	return strings.Join(lines[start:], join)
}
