// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package parse

import (
	"github.com/intake-foundation/intake/lib/schema"
)

// DefaultJoinToken joins accumulated body lines unless overridden.
const DefaultJoinToken = "\n"

// Options tune a parse. The zero value uses the built-in registry and
// the default join token.
type Options struct {
	// Registry is the schema table to classify against. Nil means
	// [schema.Default].
	Registry *schema.Registry

	// JoinToken joins accumulated body lines. "" means
	// [DefaultJoinToken].
	JoinToken string
}

// Parse classifies text against the built-in schema registry. See
// [ParseWith].
func Parse(text string) (schema.Record, error) {
	return ParseWith(text, Options{})
}

// ParseWith runs the full pipeline (header scan, delimiter
// detection, body accumulation, classification) and returns the
// single typed record for the winning schema.
//
// Schemas are tried in registry priority order. The first schema
// whose dataset satisfies a must-have attribute set and whose fields
// all coerce wins immediately; later schemas are not consulted even
// if they would also match. A schema that matches structurally but
// fails coercion falls through to the next schema. When the list is
// exhausted the returned error is an [*UnidentifiedError] (matching
// [ErrUnidentified]) carrying every attempt's outcome.
func ParseWith(text string, options Options) (schema.Record, error) {
	registry := options.Registry
	if registry == nil {
		registry = schema.Default()
	}
	join := options.JoinToken
	if join == "" {
		join = DefaultJoinToken
	}

	c := &context{
		registry: registry,
		lines:    splitLines(text),
	}

	var consumed int
	consumed, c.datasets = scanHead(registry, c.lines)
	c.bodyStart, c.bodyFields = scanDelimiters(registry, c.lines, consumed)
	body := accumulateBody(c.lines, c.bodyStart, join)

	attempts := make([]Attempt, 0, len(registry.Schemas()))
	for _, s := range registry.Schemas() {
		dataset := c.dataset(s.Kind)
		if !s.Satisfies(dataset) {
			attempts = append(attempts, Attempt{Schema: s.Kind})
			continue
		}
		values, fieldErr := s.Validate(dataset)
		if fieldErr != nil {
			attempts = append(attempts, Attempt{Schema: s.Kind, Matched: true, FieldError: fieldErr})
			continue
		}
		bodyField := c.bodyFields[s.Kind]
		recordBody := ""
		if bodyField != "" {
			recordBody = body
		}
		return s.Build(values, bodyField, recordBody), nil
	}
	return nil, &UnidentifiedError{Attempts: attempts}
}
