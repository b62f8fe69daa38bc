// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strings"
)

// Kind identifies one record schema. The set of kinds is closed; every
// validated record carries exactly one.
type Kind string

const (
	KindPage       Kind = "page"
	KindWiki       Kind = "wiki"
	KindTicket     Kind = "ticket"
	KindAttachment Kind = "attachment"
	KindComment    Kind = "comment"
)

// FieldType selects the coercion rule applied to a raw attribute value
// during validation. See [Schema.Validate] for the per-type rules.
type FieldType int

const (
	// FieldString passes the raw value through after trimming
	// surrounding whitespace. Never fails.
	FieldString FieldType = iota

	// FieldInt accepts decimal digits only. Any other value is a
	// field error that rejects the whole schema.
	FieldInt

	// FieldList splits the raw value on commas, trims each entry,
	// and drops empty entries. Order and duplicates are preserved.
	// Never fails.
	FieldList

	// FieldBool accepts "true" or "false" (case-insensitive). Any
	// other value drops the field silently rather than erroring.
	FieldBool

	// FieldVote accepts "up" or "down" (case-insensitive). Any
	// other value drops the field silently.
	FieldVote
)

// String returns the human-readable name of a field type.
func (t FieldType) String() string {
	switch t {
	case FieldString:
		return "string"
	case FieldInt:
		return "int"
	case FieldList:
		return "list"
	case FieldBool:
		return "bool"
	case FieldVote:
		return "vote"
	default:
		return fmt.Sprintf("unknown(%d)", int(t))
	}
}

// Vote is a review disposition: up or down. The zero value means no
// vote was supplied.
type Vote string

const (
	VoteNone Vote = ""
	VoteUp   Vote = "up"
	VoteDown Vote = "down"
)

// Field describes one canonical attribute of a schema: its name, its
// coercion type, and the alias strings that select it in header lines.
// Aliases are matched case-insensitively; the canonical name itself
// must be listed as an alias if it should be accepted in input.
type Field struct {
	Name    string
	Type    FieldType
	Aliases []string
}

// BodyField describes a schema's free-text body slot and the delimiter
// line tokens that select it. Tokens are compared against sanitized
// lines (punctuation-trimmed, lowercased); the empty string token
// means "a blank line".
type BodyField struct {
	Name       string
	Delimiters []string
}

// BuildFunc constructs the schema's typed record from coerced values.
// bodyField is the body field name assigned during delimiter
// detection, or "" when no delimiter line was recognized (body is then
// empty as well).
type BuildFunc func(values *Coerced, bodyField, body string) Record

// Schema is the static definition of one record kind. Schemas are
// value-initialized, then indexed and frozen by [NewRegistry]; after
// that they must not be mutated.
type Schema struct {
	Kind Kind

	// Fields lists the canonical attributes in declared order.
	Fields []Field

	// BodyFields lists the body slots in declared order. When two
	// body fields share a delimiter token, the earlier field wins.
	BodyFields []BodyField

	// MustHave is an ordered list of attribute-name sets. A header
	// structurally belongs to this schema when all names of any one
	// set are present (OR across sets, AND within a set).
	MustHave [][]string

	// Build constructs the typed record after validation succeeds.
	Build BuildFunc

	// aliasIndex maps lowercase alias -> canonical attribute name.
	// delimiterIndex maps sanitized delimiter token -> body field
	// name. Both are populated by NewRegistry.
	aliasIndex     map[string]string
	delimiterIndex map[string]string
}

// CanonicalFor resolves a lowercase header key against the schema's
// alias table. Returns the canonical attribute name and whether the
// key is known to this schema.
func (s *Schema) CanonicalFor(key string) (string, bool) {
	name, ok := s.aliasIndex[key]
	return name, ok
}

// BodyFieldFor resolves a sanitized delimiter token against the
// schema's delimiter table. Returns the body field name and whether
// the token introduces a body for this schema.
func (s *Schema) BodyFieldFor(token string) (string, bool) {
	name, ok := s.delimiterIndex[token]
	return name, ok
}

// Satisfies reports whether the attribute names present in dataset
// fulfil any one of the schema's must-have sets.
func (s *Schema) Satisfies(dataset map[string]string) bool {
	for _, set := range s.MustHave {
		all := true
		for _, name := range set {
			if _, ok := dataset[name]; !ok {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// index builds the alias and delimiter lookup tables. Returns an
// error for duplicate aliases within the schema, aliases that are not
// lowercase, or must-have names that reference unknown attributes.
func (s *Schema) index() error {
	s.aliasIndex = make(map[string]string)
	fieldNames := make(map[string]bool, len(s.Fields))
	for _, field := range s.Fields {
		if field.Name == "" {
			return fmt.Errorf("schema %q: field with empty name", s.Kind)
		}
		if fieldNames[field.Name] {
			return fmt.Errorf("schema %q: duplicate field %q", s.Kind, field.Name)
		}
		fieldNames[field.Name] = true
		for _, alias := range field.Aliases {
			if alias != strings.ToLower(alias) {
				return fmt.Errorf("schema %q: alias %q must be lowercase", s.Kind, alias)
			}
			if previous, taken := s.aliasIndex[alias]; taken {
				return fmt.Errorf("schema %q: alias %q maps to both %q and %q",
					s.Kind, alias, previous, field.Name)
			}
			s.aliasIndex[alias] = field.Name
		}
	}

	// Earlier body fields win delimiter token ties, so later
	// duplicates are simply skipped rather than rejected.
	s.delimiterIndex = make(map[string]string)
	for _, body := range s.BodyFields {
		if body.Name == "" {
			return fmt.Errorf("schema %q: body field with empty name", s.Kind)
		}
		if fieldNames[body.Name] {
			return fmt.Errorf("schema %q: body field %q collides with attribute %q",
				s.Kind, body.Name, body.Name)
		}
		for _, token := range body.Delimiters {
			if token != strings.ToLower(token) {
				return fmt.Errorf("schema %q: delimiter token %q must be lowercase", s.Kind, token)
			}
			if _, taken := s.delimiterIndex[token]; !taken {
				s.delimiterIndex[token] = body.Name
			}
		}
	}

	for i, set := range s.MustHave {
		if len(set) == 0 {
			return fmt.Errorf("schema %q: must-have set %d is empty", s.Kind, i)
		}
		for _, name := range set {
			if !fieldNames[name] {
				return fmt.Errorf("schema %q: must-have set %d names unknown attribute %q",
					s.Kind, i, name)
			}
		}
	}

	if s.Build == nil {
		return fmt.Errorf("schema %q: missing build function", s.Kind)
	}
	return nil
}
