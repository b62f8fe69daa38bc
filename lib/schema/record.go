// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Record is a validated, typed record produced by classification.
// The implementing set is closed: exactly one struct per [Kind],
// all defined in this package. Consumers dispatch on the concrete
// type (or on Kind) and can rely on the set being exhaustive.
type Record interface {
	// Kind returns the schema tag of the record.
	Kind() Kind

	// Body returns the record's accumulated free-text body, or ""
	// when no delimiter line was recognized during the parse.
	Body() string

	// sealed prevents implementations outside this package.
	sealed()
}

// PageRecord is a static site page addressed by path.
type PageRecord struct {
	// Path is the site-relative page location (e.g. "docs/setup").
	Path  string   `json:"path"`
	Title string   `json:"title,omitempty"`
	Tags  []string `json:"tags,omitempty"`

	// Draft marks the page as hidden from publication.
	Draft bool `json:"draft,omitempty"`

	// Content is the page body text.
	Content string `json:"content,omitempty"`
}

func (r *PageRecord) Kind() Kind   { return KindPage }
func (r *PageRecord) Body() string { return r.Content }
func (r *PageRecord) sealed()      {}

// WikiRecord is a wiki page addressed by numeric id.
type WikiRecord struct {
	WikiID int64    `json:"wikiid"`
	Title  string   `json:"title,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	// Text is the wiki page body.
	Text string `json:"text,omitempty"`
}

func (r *WikiRecord) Kind() Kind   { return KindWiki }
func (r *WikiRecord) Body() string { return r.Text }
func (r *WikiRecord) sealed()      {}

// TicketRecord is a work item update keyed by ticket number.
type TicketRecord struct {
	Ticket   int64  `json:"ticket"`
	Status   string `json:"status,omitempty"`
	Assignee string `json:"assignee,omitempty"`

	// Priority is 0 both when unset and when explicitly set to 0;
	// HasPriority distinguishes the two.
	Priority    int64 `json:"priority,omitempty"`
	HasPriority bool  `json:"-"`

	Tags []string `json:"tags,omitempty"`
	Done bool     `json:"done,omitempty"`

	// Description is the ticket body text.
	Description string `json:"description,omitempty"`
}

func (r *TicketRecord) Kind() Kind   { return KindTicket }
func (r *TicketRecord) Body() string { return r.Description }
func (r *TicketRecord) sealed()      {}

// AttachmentRecord attaches a file to a page.
type AttachmentRecord struct {
	// File is the attachment source as named in the header (a path
	// or filename; payload bytes travel separately at commit time).
	File string `json:"file"`

	// Page is the target page the attachment belongs to.
	Page string `json:"page,omitempty"`

	// Name overrides the stored attachment name.
	Name string `json:"name,omitempty"`

	// Note is free-text describing the attachment.
	Note string `json:"note,omitempty"`
}

func (r *AttachmentRecord) Kind() Kind   { return KindAttachment }
func (r *AttachmentRecord) Body() string { return r.Note }
func (r *AttachmentRecord) sealed()      {}

// CommentRecord is a review comment, optionally carrying a vote.
type CommentRecord struct {
	Review   int64  `json:"review,omitempty"`
	Vote     Vote   `json:"vote,omitempty"`
	Reviewer string `json:"reviewer,omitempty"`

	// Comment is the review comment text.
	Comment string `json:"comment,omitempty"`
}

func (r *CommentRecord) Kind() Kind   { return KindComment }
func (r *CommentRecord) Body() string { return r.Comment }
func (r *CommentRecord) sealed()      {}
