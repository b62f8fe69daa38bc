// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"strings"
	"testing"
)

func TestHTML(t *testing.T) {
	html, err := HTML("# Title\n\nSome *emphasis* here.")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<h1>Title</h1>") {
		t.Errorf("output missing heading: %q", html)
	}
	if !strings.Contains(html, "<em>emphasis</em>") {
		t.Errorf("output missing emphasis: %q", html)
	}
}

func TestHTMLTable(t *testing.T) {
	// GFM tables are on, plain markdown would leave this as text.
	html, err := HTML("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("output missing table: %q", html)
	}
}

func TestHTMLEmptyBody(t *testing.T) {
	html, err := HTML("")
	if err != nil {
		t.Fatalf("HTML: %v", err)
	}
	if html != "" {
		t.Errorf("empty body rendered %q, want empty", html)
	}
}
