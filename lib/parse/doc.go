// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

// Package parse turns a freeform text block into exactly one typed
// record, or a classification failure.
//
// A parse runs four phases over the input lines:
//
//  1. Header scan: leading "key: value" lines are resolved against
//     every schema's alias table in parallel, building one dataset per
//     schema (first-write-wins per canonical attribute). The scan ends
//     at the first line no schema recognizes.
//  2. Delimiter detection: subsequent lines are sanitized and matched
//     against each schema's body delimiter tokens, assigning at most
//     one body field per schema.
//  3. Body accumulation: the remaining lines are joined into the body
//     text shared by every schema that acquired a body field.
//  4. Classification: schemas are tried in registry priority order;
//     the first whose dataset satisfies a must-have set and passes
//     field coercion yields the record. A schema that matches
//     structurally but fails coercion falls through to the next, with
//     the failure retained in the final [UnidentifiedError].
//
// Everything here is pure and deterministic: no I/O, no logging, no
// state beyond the read-only schema registry. Concurrent parses are
// safe without locking.
package parse
