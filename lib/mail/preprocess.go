// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package mail

import (
	"strings"
)

// EndMarker is the literal line that truncates a message body. The
// marker line and everything after it (signatures, legal footers,
// quoted history the sender chose to keep) are discarded.
const EndMarker = "__END__"

// quotePrefix marks quoted reply lines stripped from the bottom of
// each part.
const quotePrefix = ">"

// NormalizeSubject strips, in fixed order, leading whitespace, a
// leading reply prefix ("re:", case-insensitive), a leading forward
// prefix ("fwd:", case-insensitive), and a leading mailing-list
// bracket tag ("[...]"). Each step re-trims surrounding whitespace
// before the next, so "  Re: [users] Fwd: x" and "[users] x" both
// normalize cleanly. One prefix of each kind is stripped, not a
// repeated chain.
func NormalizeSubject(subject string) string {
	s := strings.TrimSpace(subject)
	s = stripTokenPrefix(s, "re:")
	s = stripTokenPrefix(s, "fwd:")
	if strings.HasPrefix(s, "[") {
		if end := strings.IndexByte(s, ']'); end >= 0 {
			s = strings.TrimSpace(s[end+1:])
		}
	}
	return s
}

// stripTokenPrefix removes a case-insensitive token prefix and
// re-trims. Returns s unchanged when the prefix is absent.
func stripTokenPrefix(s, token string) string {
	if len(s) >= len(token) && strings.EqualFold(s[:len(token)], token) {
		return strings.TrimSpace(s[len(token):])
	}
	return s
}

// Preprocess applies both normalizations to an extracted message:
// the subject through [NormalizeSubject] and the text parts through
// [NormalizeBody]. The returned blob is ready for parse.Parse.
func Preprocess(subject string, parts []string) (string, string) {
	return NormalizeSubject(subject), NormalizeBody(parts)
}

// NormalizeBody normalizes each message part and concatenates the
// results directly. No separator is inserted between parts, so each
// part's contribution ends with its own trailing newline.
//
// Per part, in order: line endings become "\n", each line loses
// leading/trailing spaces and tabs, leading and trailing blank lines
// are dropped, the part is truncated at the first line equal to
// [EndMarker] (discarding the marker too), and finally trailing lines
// that are blank or begin with the quote marker ">" are dropped,
// scanning from the bottom until a line that is neither.
//
// The transform is a fixed point: normalizing its own output changes
// nothing. Malformed input yields an empty or degenerate blob, never
// an error.
func NormalizeBody(parts []string) string {
	var blob strings.Builder
	for _, part := range parts {
		lines := normalizePartLines(part)
		if len(lines) == 0 {
			continue
		}
		blob.WriteString(strings.Join(lines, "\n"))
		blob.WriteString("\n")
	}
	return blob.String()
}

// normalizePartLines applies the per-part normalization steps and
// returns the surviving lines.
func normalizePartLines(part string) []string {
	part = strings.ReplaceAll(part, "\r\n", "\n")
	part = strings.ReplaceAll(part, "\r", "\n")

	raw := strings.Split(part, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		lines = append(lines, strings.Trim(line, " \t"))
	}

	lines = dropLeadingBlank(lines)
	lines = dropTrailingBlank(lines)

	for i, line := range lines {
		if line == EndMarker {
			lines = lines[:i]
			break
		}
	}

	// Strip the quoted reply tail: from the bottom, drop lines that
	// are blank or quoted, stopping at the first line that is
	// neither.
	end := len(lines)
	for end > 0 {
		line := lines[end-1]
		if line != "" && !strings.HasPrefix(line, quotePrefix) {
			break
		}
		end--
	}
	return lines[:end]
}

func dropLeadingBlank(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	return lines[start:]
}

func dropTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}
	return lines[:end]
}
