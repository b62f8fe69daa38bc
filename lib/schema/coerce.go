// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldError reports a raw attribute value that failed its coercion
// rule during validation. A field error rejects the whole schema for
// the current parse; classification then moves on to the next schema.
type FieldError struct {
	Schema Kind
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("schema %s: field %q: %s (value %q)", e.Schema, e.Field, e.Reason, e.Value)
}

// Coerced holds the typed attribute values produced by a successful
// [Schema.Validate]. Attributes that were absent from the dataset, or
// whose bool/vote value was silently dropped, are not present.
type Coerced struct {
	strings map[string]string
	ints    map[string]int64
	lists   map[string][]string
	bools   map[string]bool
	votes   map[string]Vote
}

// Has reports whether the named attribute survived coercion.
func (c *Coerced) Has(name string) bool {
	if _, ok := c.strings[name]; ok {
		return true
	}
	if _, ok := c.ints[name]; ok {
		return true
	}
	if _, ok := c.lists[name]; ok {
		return true
	}
	if _, ok := c.bools[name]; ok {
		return true
	}
	_, ok := c.votes[name]
	return ok
}

// String returns the coerced string attribute, or "" when absent.
func (c *Coerced) String(name string) string { return c.strings[name] }

// Int returns the coerced integer attribute, or 0 when absent.
func (c *Coerced) Int(name string) int64 { return c.ints[name] }

// List returns the coerced list attribute, or nil when absent.
func (c *Coerced) List(name string) []string { return c.lists[name] }

// Bool returns the coerced boolean attribute, or false when absent.
func (c *Coerced) Bool(name string) bool { return c.bools[name] }

// Vote returns the coerced vote attribute, or VoteNone when absent.
func (c *Coerced) Vote(name string) Vote { return c.votes[name] }

// Validate coerces every attribute present in dataset according to
// the schema's field types. Validation is atomic: the first field
// that fails its rule rejects the schema and nothing is returned.
//
// Per-type rules:
//
//   - int: decimal digits only; anything else is a field error
//   - list: split on commas, trim entries, drop empty entries,
//     preserve order and duplicates
//   - bool: "true"/"false" case-insensitive; otherwise the field is
//     dropped silently, not an error
//   - vote: "up"/"down" case-insensitive; otherwise dropped silently
//   - string: trimmed pass-through
//
// Attributes absent from the dataset are simply absent from the
// result; mandatory attributes are enforced by must-have sets before
// validation, never here.
func (s *Schema) Validate(dataset map[string]string) (*Coerced, *FieldError) {
	coerced := &Coerced{
		strings: make(map[string]string),
		ints:    make(map[string]int64),
		lists:   make(map[string][]string),
		bools:   make(map[string]bool),
		votes:   make(map[string]Vote),
	}
	for _, field := range s.Fields {
		raw, present := dataset[field.Name]
		if !present {
			continue
		}
		switch field.Type {
		case FieldInt:
			value, ok := coerceInt(raw)
			if !ok {
				return nil, &FieldError{
					Schema: s.Kind,
					Field:  field.Name,
					Value:  raw,
					Reason: "must be decimal digits",
				}
			}
			coerced.ints[field.Name] = value

		case FieldList:
			coerced.lists[field.Name] = coerceList(raw)

		case FieldBool:
			if value, ok := coerceBool(raw); ok {
				coerced.bools[field.Name] = value
			}

		case FieldVote:
			if value, ok := coerceVote(raw); ok {
				coerced.votes[field.Name] = value
			}

		default:
			coerced.strings[field.Name] = strings.TrimSpace(raw)
		}
	}
	return coerced, nil
}

// coerceInt parses a non-negative decimal integer. Rejects empty
// strings, signs, spaces, and any non-digit character.
func coerceInt(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// coerceList splits a comma-separated value into trimmed entries,
// dropping empty ones. Order and duplicates are preserved.
func coerceList(raw string) []string {
	parts := strings.Split(raw, ",")
	entries := make([]string, 0, len(parts))
	for _, part := range parts {
		entry := strings.TrimSpace(part)
		if entry == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func coerceBool(raw string) (bool, bool) {
	switch {
	case strings.EqualFold(raw, "true"):
		return true, true
	case strings.EqualFold(raw, "false"):
		return false, true
	default:
		return false, false
	}
}

func coerceVote(raw string) (Vote, bool) {
	switch {
	case strings.EqualFold(raw, string(VoteUp)):
		return VoteUp, true
	case strings.EqualFold(raw, string(VoteDown)):
		return VoteDown, true
	default:
		return VoteNone, false
	}
}
