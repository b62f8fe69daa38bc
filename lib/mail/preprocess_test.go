// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"testing"
)

func TestNormalizeSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		want    string
	}{
		{"plain", "Fix the login bug", "Fix the login bug"},
		{"leading whitespace", "   Fix it", "Fix it"},
		{"reply prefix", "Re: Fix it", "Fix it"},
		{"reply prefix lowercase", "re:Fix it", "Fix it"},
		{"forward prefix", "FWD: Fix it", "Fix it"},
		{"list tag", "[users] Fix it", "Fix it"},
		{"reply then list tag", "Re: [users] Fix it", "Fix it"},
		{"reply forward tag", " re: fwd: [dev]   Fix it ", "Fix it"},
		{"tag without close bracket", "[users Fix it", "[users Fix it"},
		{"empty", "", ""},
		// Only one prefix of each kind is stripped.
		{"double reply", "Re: Re: Fix it", "Re: Fix it"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := NormalizeSubject(test.subject); got != test.want {
				t.Errorf("NormalizeSubject(%q) = %q, want %q", test.subject, got, test.want)
			}
		})
	}
}

func TestNormalizeBody(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{
			name:  "trims lines and padding",
			parts: []string{"\n\n  ticket: 42  \n\tstatus: open\n\n\n"},
			want:  "ticket: 42\nstatus: open\n",
		},
		{
			name:  "end marker truncates",
			parts: []string{"keep this\n__END__\ndrop this\nand this"},
			want:  "keep this\n",
		},
		{
			name:  "quoted tail dropped",
			parts: []string{"reply text\n\n> original message\n> more quoting\n"},
			want:  "reply text\n",
		},
		{
			name:  "quoted lines in the middle survive",
			parts: []string{"before\n> quoted\nafter"},
			want:  "before\n> quoted\nafter\n",
		},
		{
			name:  "parts concatenate without separator",
			parts: []string{"part one\n", "part two\n"},
			want:  "part one\npart two\n",
		},
		{
			name:  "empty parts vanish",
			parts: []string{"", "\n\n", "text"},
			want:  "text\n",
		},
		{
			name:  "crlf endings",
			parts: []string{"a\r\nb\r\n"},
			want:  "a\nb\n",
		},
		{
			name:  "entirely quoted part",
			parts: []string{"> only quotes\n> here\n"},
			want:  "",
		},
		{
			name:  "no parts",
			parts: nil,
			want:  "",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := NormalizeBody(test.parts); got != test.want {
				t.Errorf("NormalizeBody(%v) = %q, want %q", test.parts, got, test.want)
			}
		})
	}
}

func TestPreprocess(t *testing.T) {
	subject, blob := Preprocess("Re: [dev] ticket 9", []string{"ticket: 9\n\n> old\n"})
	if subject != "ticket 9" {
		t.Errorf("subject = %q, want %q", subject, "ticket 9")
	}
	if blob != "ticket: 9\n" {
		t.Errorf("blob = %q, want %q", blob, "ticket: 9\n")
	}
}

// TestNormalizeBodyIdempotent checks the fixed-point property:
// normalizing already-normalized output changes nothing.
func TestNormalizeBodyIdempotent(t *testing.T) {
	inputs := [][]string{
		{"\n  ticket: 42 \nstatus: open\n\nFix the bug\n> quoted\n\n"},
		{"keep\n__END__\nsignature"},
		{"part one\n", "\n\npart two\n> tail\n"},
		{""},
	}
	for _, parts := range inputs {
		first := NormalizeBody(parts)
		second := NormalizeBody([]string{first})
		if first != second {
			t.Errorf("not idempotent: first %q, second %q", first, second)
		}
	}
}
