// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"strings"
	"sync"
)

// Registry is the immutable, ordered table of schemas consulted
// during a parse. The declared order is the classification priority
// order AND the delimiter tie-break order: when two schemas claim the
// same delimiter token (notably the blank line), the earlier schema
// is checked first on each line. Registries are safe for concurrent
// use once constructed.
type Registry struct {
	schemas []*Schema
	byKind  map[Kind]*Schema
}

// NewRegistry validates the given schemas, builds their lookup
// indexes, and freezes them into a registry. The argument order is
// the priority order.
func NewRegistry(schemas ...*Schema) (*Registry, error) {
	if len(schemas) == 0 {
		return nil, fmt.Errorf("registry: no schemas")
	}
	registry := &Registry{
		schemas: schemas,
		byKind:  make(map[Kind]*Schema, len(schemas)),
	}
	for _, s := range schemas {
		if s.Kind == "" {
			return nil, fmt.Errorf("registry: schema with empty kind")
		}
		if _, taken := registry.byKind[s.Kind]; taken {
			return nil, fmt.Errorf("registry: duplicate schema kind %q", s.Kind)
		}
		if err := s.index(); err != nil {
			return nil, err
		}
		registry.byKind[s.Kind] = s
	}
	return registry, nil
}

// Schemas returns the schemas in priority order. The returned slice
// and its contents must not be mutated.
func (r *Registry) Schemas() []*Schema { return r.schemas }

// Lookup returns the schema for a kind, or nil when unknown.
func (r *Registry) Lookup(kind Kind) *Schema { return r.byKind[kind] }

// Extension adds aliases and delimiter tokens to one schema of an
// existing registry. It cannot define new attributes, body fields, or
// schemas. Deployments tune vocabulary, not structure.
type Extension struct {
	// FieldAliases maps canonical attribute name -> extra aliases.
	FieldAliases map[string][]string

	// BodyDelimiters maps body field name -> extra delimiter tokens.
	BodyDelimiters map[string][]string
}

// Extend returns a new registry with the given per-kind extensions
// applied. The receiver is not modified. Alias and token strings are
// lowercased before insertion; references to unknown kinds,
// attributes, or body fields are errors.
func (r *Registry) Extend(extensions map[Kind]Extension) (*Registry, error) {
	schemas := make([]*Schema, len(r.schemas))
	for i, original := range r.schemas {
		clone := &Schema{
			Kind:       original.Kind,
			Fields:     append([]Field(nil), original.Fields...),
			BodyFields: append([]BodyField(nil), original.BodyFields...),
			MustHave:   original.MustHave,
			Build:      original.Build,
		}
		for j, field := range clone.Fields {
			clone.Fields[j].Aliases = append([]string(nil), field.Aliases...)
		}
		for j, body := range clone.BodyFields {
			clone.BodyFields[j].Delimiters = append([]string(nil), body.Delimiters...)
		}
		schemas[i] = clone
	}

	for kind, extension := range extensions {
		var target *Schema
		for _, s := range schemas {
			if s.Kind == kind {
				target = s
				break
			}
		}
		if target == nil {
			return nil, fmt.Errorf("registry: extension for unknown schema %q", kind)
		}
		for name, aliases := range extension.FieldAliases {
			index := -1
			for j, field := range target.Fields {
				if field.Name == name {
					index = j
					break
				}
			}
			if index < 0 {
				return nil, fmt.Errorf("registry: schema %q has no attribute %q", kind, name)
			}
			for _, alias := range aliases {
				target.Fields[index].Aliases = append(target.Fields[index].Aliases,
					strings.ToLower(strings.TrimSpace(alias)))
			}
		}
		for name, tokens := range extension.BodyDelimiters {
			index := -1
			for j, body := range target.BodyFields {
				if body.Name == name {
					index = j
					break
				}
			}
			if index < 0 {
				return nil, fmt.Errorf("registry: schema %q has no body field %q", kind, name)
			}
			for _, token := range tokens {
				target.BodyFields[index].Delimiters = append(target.BodyFields[index].Delimiters,
					strings.ToLower(strings.TrimSpace(token)))
			}
		}
	}

	return NewRegistry(schemas...)
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry of the five built-in
// schemas, constructed on first use. The result is shared and must
// not be extended in place; use [Registry.Extend] for variants.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		registry, err := NewRegistry(builtinSchemas()...)
		if err != nil {
			panic("schema: built-in registry is invalid: " + err.Error())
		}
		defaultRegistry = registry
	})
	return defaultRegistry
}

// builtinSchemas returns fresh definitions of the five record
// schemas. Priority order: page, wiki, ticket, attachment, comment.
// The blank-line delimiter token ("") appears in every schema; ties
// on it resolve in this order, one assignment per schema.
func builtinSchemas() []*Schema {
	return []*Schema{
		{
			Kind: KindPage,
			Fields: []Field{
				{Name: "path", Type: FieldString, Aliases: []string{"path", "page", "location"}},
				{Name: "title", Type: FieldString, Aliases: []string{"title"}},
				{Name: "tags", Type: FieldList, Aliases: []string{"tags", "keywords", "labels"}},
				{Name: "draft", Type: FieldBool, Aliases: []string{"draft", "hidden"}},
			},
			BodyFields: []BodyField{
				{Name: "content", Delimiters: []string{"", "content", "body", "text"}},
			},
			MustHave: [][]string{{"path"}},
			Build: func(values *Coerced, bodyField, body string) Record {
				return &PageRecord{
					Path:    values.String("path"),
					Title:   values.String("title"),
					Tags:    values.List("tags"),
					Draft:   values.Bool("draft"),
					Content: body,
				}
			},
		},
		{
			Kind: KindWiki,
			Fields: []Field{
				{Name: "wikiid", Type: FieldInt, Aliases: []string{"wikiid", "wiki"}},
				{Name: "title", Type: FieldString, Aliases: []string{"title", "subject"}},
				{Name: "tags", Type: FieldList, Aliases: []string{"tags", "keywords", "labels"}},
			},
			BodyFields: []BodyField{
				{Name: "text", Delimiters: []string{"", "text", "body", "content"}},
			},
			MustHave: [][]string{{"wikiid"}},
			Build: func(values *Coerced, bodyField, body string) Record {
				return &WikiRecord{
					WikiID: values.Int("wikiid"),
					Title:  values.String("title"),
					Tags:   values.List("tags"),
					Text:   body,
				}
			},
		},
		{
			Kind: KindTicket,
			Fields: []Field{
				{Name: "ticket", Type: FieldInt, Aliases: []string{"ticket", "tkt", "issue", "bug"}},
				{Name: "status", Type: FieldString, Aliases: []string{"status", "state"}},
				{Name: "priority", Type: FieldInt, Aliases: []string{"priority", "pri"}},
				{Name: "assignee", Type: FieldString, Aliases: []string{"assignee", "owner"}},
				{Name: "tags", Type: FieldList, Aliases: []string{"tags", "keywords", "labels"}},
				{Name: "done", Type: FieldBool, Aliases: []string{"done", "finished"}},
			},
			BodyFields: []BodyField{
				{Name: "description", Delimiters: []string{"", "description", "details", "body"}},
			},
			MustHave: [][]string{{"ticket"}},
			Build: func(values *Coerced, bodyField, body string) Record {
				return &TicketRecord{
					Ticket:      values.Int("ticket"),
					Status:      values.String("status"),
					Assignee:    values.String("assignee"),
					Priority:    values.Int("priority"),
					HasPriority: values.Has("priority"),
					Tags:        values.List("tags"),
					Done:        values.Bool("done"),
					Description: body,
				}
			},
		},
		{
			Kind: KindAttachment,
			Fields: []Field{
				{Name: "file", Type: FieldString, Aliases: []string{"file", "attach", "attachment", "upload"}},
				{Name: "page", Type: FieldString, Aliases: []string{"page", "parent"}},
				{Name: "name", Type: FieldString, Aliases: []string{"name", "filename"}},
			},
			BodyFields: []BodyField{
				{Name: "note", Delimiters: []string{"", "note", "description"}},
			},
			MustHave: [][]string{{"file"}},
			Build: func(values *Coerced, bodyField, body string) Record {
				return &AttachmentRecord{
					File: values.String("file"),
					Page: values.String("page"),
					Name: values.String("name"),
					Note: body,
				}
			},
		},
		{
			Kind: KindComment,
			Fields: []Field{
				{Name: "review", Type: FieldInt, Aliases: []string{"review", "reviewid"}},
				{Name: "vote", Type: FieldVote, Aliases: []string{"vote", "score"}},
				{Name: "reviewer", Type: FieldString, Aliases: []string{"reviewer", "author"}},
			},
			BodyFields: []BodyField{
				{Name: "comment", Delimiters: []string{"", "comment", "remarks", "body"}},
			},
			// A comment is addressable either by review id or by a
			// reviewer + vote pair (vote-only replies).
			MustHave: [][]string{{"review"}, {"reviewer", "vote"}},
			Build: func(values *Coerced, bodyField, body string) Record {
				return &CommentRecord{
					Review:   values.Int("review"),
					Vote:     values.Vote("vote"),
					Reviewer: values.String("reviewer"),
					Comment:  body,
				}
			},
		},
	}
}
