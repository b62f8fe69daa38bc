// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"strings"
	"testing"
)

// TestAliasInvariance checks that every alias of every attribute in
// every built-in schema resolves to its canonical name.
func TestAliasInvariance(t *testing.T) {
	for _, s := range Default().Schemas() {
		for _, field := range s.Fields {
			for _, alias := range field.Aliases {
				canonical, ok := s.CanonicalFor(alias)
				if !ok {
					t.Errorf("schema %s: alias %q is not resolvable", s.Kind, alias)
					continue
				}
				if canonical != field.Name {
					t.Errorf("schema %s: alias %q resolved to %q, want %q",
						s.Kind, alias, canonical, field.Name)
				}
			}
		}
	}
}

func TestDefaultRegistryOrder(t *testing.T) {
	want := []Kind{KindPage, KindWiki, KindTicket, KindAttachment, KindComment}
	schemas := Default().Schemas()
	if len(schemas) != len(want) {
		t.Fatalf("registry has %d schemas, want %d", len(schemas), len(want))
	}
	for i, kind := range want {
		if schemas[i].Kind != kind {
			t.Errorf("priority position %d is %s, want %s", i, schemas[i].Kind, kind)
		}
	}
}

func TestEveryBuiltinSchemaHasBlankLineDelimiter(t *testing.T) {
	for _, s := range Default().Schemas() {
		if _, ok := s.BodyFieldFor(""); !ok {
			t.Errorf("schema %s: blank line does not select a body field", s.Kind)
		}
	}
}

func TestSatisfies(t *testing.T) {
	comment := Default().Lookup(KindComment)
	tests := []struct {
		name    string
		dataset map[string]string
		want    bool
	}{
		{"review id alone", map[string]string{"review": "7"}, true},
		{"reviewer and vote", map[string]string{"reviewer": "bob", "vote": "up"}, true},
		{"reviewer alone", map[string]string{"reviewer": "bob"}, false},
		{"vote alone", map[string]string{"vote": "up"}, false},
		{"empty", nil, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := comment.Satisfies(test.dataset); got != test.want {
				t.Errorf("Satisfies(%v) = %v, want %v", test.dataset, got, test.want)
			}
		})
	}
}

func TestNewRegistryRejectsBadSchemas(t *testing.T) {
	build := func(values *Coerced, bodyField, body string) Record {
		return &PageRecord{Content: body}
	}
	tests := []struct {
		name    string
		schema  *Schema
		wantErr string
	}{
		{
			name: "duplicate alias",
			schema: &Schema{
				Kind: KindPage,
				Fields: []Field{
					{Name: "path", Type: FieldString, Aliases: []string{"path"}},
					{Name: "title", Type: FieldString, Aliases: []string{"path"}},
				},
				MustHave: [][]string{{"path"}},
				Build:    build,
			},
			wantErr: "maps to both",
		},
		{
			name: "uppercase alias",
			schema: &Schema{
				Kind:     KindPage,
				Fields:   []Field{{Name: "path", Type: FieldString, Aliases: []string{"Path"}}},
				MustHave: [][]string{{"path"}},
				Build:    build,
			},
			wantErr: "must be lowercase",
		},
		{
			name: "must-have names unknown attribute",
			schema: &Schema{
				Kind:     KindPage,
				Fields:   []Field{{Name: "path", Type: FieldString, Aliases: []string{"path"}}},
				MustHave: [][]string{{"slug"}},
				Build:    build,
			},
			wantErr: "unknown attribute",
		},
		{
			name: "missing build function",
			schema: &Schema{
				Kind:     KindPage,
				Fields:   []Field{{Name: "path", Type: FieldString, Aliases: []string{"path"}}},
				MustHave: [][]string{{"path"}},
			},
			wantErr: "missing build function",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewRegistry(test.schema)
			if err == nil {
				t.Fatal("NewRegistry succeeded, want error")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error %q does not contain %q", err, test.wantErr)
			}
		})
	}
}

func TestExtendAddsVocabulary(t *testing.T) {
	extended, err := Default().Extend(map[Kind]Extension{
		KindTicket: {
			FieldAliases:   map[string][]string{"ticket": {"nr", "Number"}},
			BodyDelimiters: map[string][]string{"description": {"writeup"}},
		},
	})
	if err != nil {
		t.Fatalf("Extend: %v", err)
	}

	ticket := extended.Lookup(KindTicket)
	for _, alias := range []string{"nr", "number", "ticket"} {
		canonical, ok := ticket.CanonicalFor(alias)
		if !ok || canonical != "ticket" {
			t.Errorf("alias %q resolved to (%q, %v), want (\"ticket\", true)", alias, canonical, ok)
		}
	}
	if field, ok := ticket.BodyFieldFor("writeup"); !ok || field != "description" {
		t.Errorf("delimiter \"writeup\" resolved to (%q, %v), want (\"description\", true)", field, ok)
	}

	// The base registry must be untouched.
	if _, ok := Default().Lookup(KindTicket).CanonicalFor("nr"); ok {
		t.Error("Extend mutated the base registry")
	}
}

func TestExtendRejectsUnknownTargets(t *testing.T) {
	if _, err := Default().Extend(map[Kind]Extension{
		"memo": {FieldAliases: map[string][]string{"title": {"t"}}},
	}); err == nil {
		t.Error("extension for unknown schema succeeded, want error")
	}
	if _, err := Default().Extend(map[Kind]Extension{
		KindPage: {FieldAliases: map[string][]string{"slug": {"s"}}},
	}); err == nil {
		t.Error("extension for unknown attribute succeeded, want error")
	}
	if _, err := Default().Extend(map[Kind]Extension{
		KindPage: {BodyDelimiters: map[string][]string{"summary": {"s"}}},
	}); err == nil {
		t.Error("extension for unknown body field succeeded, want error")
	}
}
