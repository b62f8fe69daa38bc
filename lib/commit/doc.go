// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

// Package commit defines the capability that consumes validated
// records, and a reference implementation that spools them to disk.
//
// The parse pipeline never persists anything itself: the caller
// supplies a [Committer] and invokes it after a successful parse.
// [Dispatcher] is a capability table keyed by record kind: one
// function per kind, with the type switch kept exhaustive over the
// closed record set.
//
// [Spool] is the reference committer: each commit writes one
// deterministic CBOR envelope plus content-addressed, compressed
// attachment payloads into a handoff directory for a downstream
// consumer to drain. The spool is a transient outbox, not a store.
package commit
