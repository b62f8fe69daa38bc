// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

// Package mail normalizes email-sourced text before it enters the
// parse pipeline.
//
// [NormalizeSubject] strips reply/forward prefixes and mailing-list
// tags from a subject line. [NormalizeBody] turns the text parts of a
// message into the single text blob fed to parse.Parse: line endings
// and per-line whitespace are normalized, blank padding and quoted
// reply tails are dropped, and everything after the [EndMarker] line
// is discarded. Both transforms are pure and idempotent: feeding the
// output back in yields the identical string.
//
// [ExtractMessage] pulls the subject and text/plain parts out of a
// raw RFC 5322 message so callers holding wire bytes can reach the
// normalizers without doing MIME work themselves.
package mail
