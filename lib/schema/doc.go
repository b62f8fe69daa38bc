// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the record schemas that intake can classify
// text into, and the typed records that classification produces.
//
// A [Schema] is a static description of one record kind: which
// canonical attributes it has, which alias strings name each attribute
// in "key: value" header lines, which delimiter lines introduce its
// body field, and which attribute combinations qualify a header as
// structurally belonging to the schema. Schemas are assembled into an
// immutable [Registry] at process start and shared read-only across
// all parses.
//
// The five built-in schemas, in classification priority order:
//
//   - [KindPage] -- a static site page addressed by path
//   - [KindWiki] -- a wiki page addressed by numeric id
//   - [KindTicket] -- a work item with status and priority
//   - [KindAttachment] -- a file attached to a page
//   - [KindComment] -- a review comment carrying an up/down vote
//
// Classification output is a closed set of record variants
// ([PageRecord], [WikiRecord], [TicketRecord], [AttachmentRecord],
// [CommentRecord]) behind the sealed [Record] interface. Consumers
// dispatch on the concrete type; the set cannot be extended outside
// this package.
//
// This package depends on no other intake packages.
package schema
