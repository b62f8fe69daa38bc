// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"testing"

	"github.com/intake-foundation/intake/lib/schema"
)

func TestSanitizeDelimiter(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"--- Description ---", "description"},
		{"[NOTE]", "note"},
		{"text:", "text"},
		{"'body'", "body"},
		{"=== details ===", "details"},
		{"Hello World", "hello world"},
	}
	for _, test := range tests {
		if got := sanitizeDelimiter(test.line); got != test.want {
			t.Errorf("sanitizeDelimiter(%q) = %q, want %q", test.line, got, test.want)
		}
	}
}

// TestScanDelimitersBlankLineAssignsAll checks that the shared blank
// line token assigns every schema its body field on the same line,
// each schema independently.
func TestScanDelimitersBlankLineAssignsAll(t *testing.T) {
	start, assigned := scanDelimiters(schema.Default(), []string{"", "body text"}, 0)
	if start != 1 {
		t.Fatalf("body start = %d, want 1", start)
	}
	want := map[schema.Kind]string{
		schema.KindPage:       "content",
		schema.KindWiki:       "text",
		schema.KindTicket:     "description",
		schema.KindAttachment: "note",
		schema.KindComment:    "comment",
	}
	for kind, field := range want {
		if got := assigned[kind]; got != field {
			t.Errorf("schema %s assigned %q, want %q", kind, got, field)
		}
	}
}

// TestScanDelimitersSharedTokenPriority checks the tie policy for a
// non-blank token claimed by several schemas: each interested schema
// gets its own assignment on that line, named per its own field.
func TestScanDelimitersSharedTokenPriority(t *testing.T) {
	// "body" is a delimiter for page (content), wiki (text), ticket
	// (description), and comment (comment), but not attachment.
	start, assigned := scanDelimiters(schema.Default(), []string{"body", "words"}, 0)
	if start != 1 {
		t.Fatalf("body start = %d, want 1", start)
	}
	if got := assigned[schema.KindPage]; got != "content" {
		t.Errorf("page assigned %q, want %q", got, "content")
	}
	if got := assigned[schema.KindTicket]; got != "description" {
		t.Errorf("ticket assigned %q, want %q", got, "description")
	}
	if _, ok := assigned[schema.KindAttachment]; ok {
		t.Error("attachment acquired a body field from a token it does not declare")
	}
}

// TestScanDelimitersBlankPassThrough checks that blank lines after a
// schema's assignment are consumed without reassigning.
func TestScanDelimitersBlankPassThrough(t *testing.T) {
	// "note" assigns only the attachment schema. The following blank
	// lines are pass-through for it (and assign everyone else), and
	// the attachment keeps its original field.
	start, assigned := scanDelimiters(schema.Default(), []string{"note", "", "", "body text"}, 0)
	if start != 3 {
		t.Fatalf("body start = %d, want 3", start)
	}
	if got := assigned[schema.KindAttachment]; got != "note" {
		t.Errorf("attachment assigned %q, want %q", got, "note")
	}
	if got := assigned[schema.KindPage]; got != "content" {
		t.Errorf("page assigned %q, want %q", got, "content")
	}
}

func TestScanDelimitersNoMatchLeavesBodyUnassigned(t *testing.T) {
	start, assigned := scanDelimiters(schema.Default(), []string{"just some text"}, 0)
	if start != 0 {
		t.Fatalf("body start = %d, want 0", start)
	}
	if len(assigned) != 0 {
		t.Errorf("assigned = %v, want none", assigned)
	}
}

func TestAccumulateBody(t *testing.T) {
	lines := []string{"head", "first", "second"}
	if got := accumulateBody(lines, 1, "\n"); got != "first\nsecond" {
		t.Errorf("accumulateBody = %q, want %q", got, "first\nsecond")
	}
	if got := accumulateBody(lines, 3, "\n"); got != "" {
		t.Errorf("accumulateBody past end = %q, want empty", got)
	}
	if got := accumulateBody(lines, 1, " "); got != "first second" {
		t.Errorf("accumulateBody with space join = %q, want %q", got, "first second")
	}
}
