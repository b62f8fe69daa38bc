// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/intake-foundation/intake/lib/schema"
)

// ErrUnidentified is the sentinel matched by errors.Is for any
// classification failure. The concrete error is always an
// [*UnidentifiedError] carrying per-schema diagnostics.
var ErrUnidentified = errors.New("no schema identified the record")

// Attempt records the outcome of trying one schema during
// classification, in priority order.
type Attempt struct {
	// Schema is the kind that was tried.
	Schema schema.Kind

	// Matched reports whether the schema's dataset satisfied one of
	// its must-have attribute sets. When false, FieldError is nil:
	// validation never ran.
	Matched bool

	// FieldError is set when the schema matched structurally but a
	// field failed coercion, causing fallthrough to the next schema.
	FieldError *schema.FieldError
}

// UnidentifiedError is returned when classification exhausts the
// priority list without any schema both structurally matching and
// validating. The attempts distinguish a pure structural mismatch
// (nothing matched at all) from near misses (a schema matched but a
// specific field failed coercion).
type UnidentifiedError struct {
	Attempts []Attempt
}

func (e *UnidentifiedError) Error() string {
	misses := e.NearMisses()
	if len(misses) == 0 {
		return "no schema identified the record: no must-have attribute set satisfied"
	}
	var b strings.Builder
	b.WriteString("no schema identified the record:")
	for _, attempt := range misses {
		fmt.Fprintf(&b, " %s rejected (%v);", attempt.Schema, attempt.FieldError)
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Is matches ErrUnidentified so callers can use errors.Is without
// caring about the concrete type.
func (e *UnidentifiedError) Is(target error) bool {
	return target == ErrUnidentified
}

// Structural reports whether the failure was purely structural: no
// schema's must-have set was satisfied, so no validation ever ran.
func (e *UnidentifiedError) Structural() bool {
	for _, attempt := range e.Attempts {
		if attempt.Matched {
			return false
		}
	}
	return true
}

// NearMisses returns the attempts that matched structurally but were
// rejected by field coercion, in priority order.
func (e *UnidentifiedError) NearMisses() []Attempt {
	var misses []Attempt
	for _, attempt := range e.Attempts {
		if attempt.Matched {
			misses = append(misses, attempt)
		}
	}
	return misses
}
