// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"context"
	"fmt"
	"time"

	"github.com/intake-foundation/intake/lib/schema"
)

// Attachment is an in-memory payload handed to the committer
// alongside a record. Payload bytes never pass through the parse
// pipeline; they travel only here.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Meta carries the commit context supplied by the caller: who is
// committing, in which timezone their timestamps should be
// interpreted, and any attachment payloads.
type Meta struct {
	Actor       string
	Timezone    string
	Attachments []Attachment
}

// Validate checks that the meta is usable: the actor is set and the
// timezone, when present, names a loadable location.
func (m *Meta) Validate() error {
	if m.Actor == "" {
		return fmt.Errorf("commit meta: actor is required")
	}
	if m.Timezone != "" {
		if _, err := time.LoadLocation(m.Timezone); err != nil {
			return fmt.Errorf("commit meta: timezone %q: %w", m.Timezone, err)
		}
	}
	return nil
}

// Committer consumes a validated record. Implementations own all
// persistence decisions; the parse pipeline only produces the record.
type Committer interface {
	Commit(ctx context.Context, record schema.Record, meta Meta) error
}

// Dispatcher routes records to per-kind commit functions. Kinds with
// a nil function are rejected, so a partial table is a configuration
// choice, not a panic.
type Dispatcher struct {
	Page       func(ctx context.Context, record *schema.PageRecord, meta Meta) error
	Wiki       func(ctx context.Context, record *schema.WikiRecord, meta Meta) error
	Ticket     func(ctx context.Context, record *schema.TicketRecord, meta Meta) error
	Attachment func(ctx context.Context, record *schema.AttachmentRecord, meta Meta) error
	Comment    func(ctx context.Context, record *schema.CommentRecord, meta Meta) error
}

// Commit dispatches on the record's concrete type. The switch is
// exhaustive over the closed record set; an unknown type can only
// mean a new record kind was added without extending the dispatcher.
func (d *Dispatcher) Commit(ctx context.Context, record schema.Record, meta Meta) error {
	if err := meta.Validate(); err != nil {
		return err
	}
	switch r := record.(type) {
	case *schema.PageRecord:
		if d.Page == nil {
			return unsupported(record.Kind())
		}
		return d.Page(ctx, r, meta)
	case *schema.WikiRecord:
		if d.Wiki == nil {
			return unsupported(record.Kind())
		}
		return d.Wiki(ctx, r, meta)
	case *schema.TicketRecord:
		if d.Ticket == nil {
			return unsupported(record.Kind())
		}
		return d.Ticket(ctx, r, meta)
	case *schema.AttachmentRecord:
		if d.Attachment == nil {
			return unsupported(record.Kind())
		}
		return d.Attachment(ctx, r, meta)
	case *schema.CommentRecord:
		if d.Comment == nil {
			return unsupported(record.Kind())
		}
		return d.Comment(ctx, r, meta)
	default:
		return fmt.Errorf("commit: unknown record type %T", record)
	}
}

func unsupported(kind schema.Kind) error {
	return fmt.Errorf("commit: no committer configured for %s records", kind)
}
