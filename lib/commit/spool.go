// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/intake-foundation/intake/lib/codec"
	"github.com/intake-foundation/intake/lib/schema"
)

// EnvelopeVersion is the current spool envelope format version.
const EnvelopeVersion = 1

// Envelope is the CBOR document written to the spool for each
// committed record. Encoding is deterministic (lib/codec), so the
// envelope hash, and therefore the spool filename, is a function of
// the logical content alone.
type Envelope struct {
	Version     int              `json:"version"`
	Kind        schema.Kind      `json:"kind"`
	Actor       string           `json:"actor"`
	Timezone    string           `json:"timezone,omitempty"`
	CommittedAt string           `json:"committed_at"`
	Record      codec.RawMessage `json:"record"`
	Attachments []PayloadRef     `json:"attachments,omitempty"`
}

// PayloadRef points an envelope at a stored attachment payload.
type PayloadRef struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`

	// Ref is the short payload reference ("att-" + 12 hex chars);
	// Hash is the full payload-domain hash in hex. The stored file
	// is payloads/<Hash>.
	Ref  string `json:"ref"`
	Hash string `json:"hash"`

	Size        int    `json:"size"`
	StoredSize  int    `json:"stored_size"`
	Compression string `json:"compression"`
}

// Spool is a committer that hands records off through a directory:
// one envelope file per commit under the root, payload files under
// payloads/. Files are written to a temporary name and renamed into
// place so a draining consumer never sees partial writes.
type Spool struct {
	root   string
	logger *slog.Logger

	// now is replaceable for tests.
	now func() time.Time
}

// NewSpool creates the spool directories if needed and returns a
// committer writing into root. The logger may not be nil; pass a
// discard logger to silence it.
func NewSpool(root string, logger *slog.Logger) (*Spool, error) {
	if root == "" {
		return nil, fmt.Errorf("spool: root directory is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("spool: logger is required")
	}
	if err := os.MkdirAll(filepath.Join(root, "payloads"), 0o755); err != nil {
		return nil, fmt.Errorf("spool: creating %s: %w", root, err)
	}
	return &Spool{root: root, logger: logger, now: time.Now}, nil
}

// Commit writes the record's envelope and attachment payloads. The
// envelope lands last, so an envelope present in the spool implies
// every payload it references is present too.
func (s *Spool) Commit(ctx context.Context, record schema.Record, meta Meta) error {
	if err := meta.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	references := make([]PayloadRef, 0, len(meta.Attachments))
	for _, attachment := range meta.Attachments {
		reference, err := s.writePayload(attachment)
		if err != nil {
			return err
		}
		references = append(references, reference)
	}

	encodedRecord, err := codec.Marshal(record)
	if err != nil {
		return fmt.Errorf("spool: encoding %s record: %w", record.Kind(), err)
	}

	envelope := Envelope{
		Version:     EnvelopeVersion,
		Kind:        record.Kind(),
		Actor:       meta.Actor,
		Timezone:    meta.Timezone,
		CommittedAt: s.now().UTC().Format(time.RFC3339),
		Record:      encodedRecord,
		Attachments: references,
	}
	encoded, err := codec.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("spool: encoding envelope: %w", err)
	}

	name := FormatHash(HashEnvelope(encoded)) + ".cbor"
	if err := writeFileAtomic(filepath.Join(s.root, name), encoded); err != nil {
		return fmt.Errorf("spool: writing envelope: %w", err)
	}

	s.logger.Info("record spooled",
		"kind", record.Kind(),
		"actor", meta.Actor,
		"envelope", name,
		"attachments", len(references),
	)
	return nil
}

// writePayload stores one attachment payload under its content hash
// and returns the envelope reference. An existing file with the same
// hash is left alone, so identical payloads dedup naturally.
func (s *Spool) writePayload(attachment Attachment) (PayloadRef, error) {
	hash := HashPayload(attachment.Data)
	stored, tag, err := compressPayload(attachment.Data, attachment.ContentType)
	if err != nil {
		return PayloadRef{}, fmt.Errorf("spool: compressing %q: %w", attachment.Name, err)
	}

	path := filepath.Join(s.root, "payloads", FormatHash(hash))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeFileAtomic(path, stored); err != nil {
			return PayloadRef{}, fmt.Errorf("spool: writing payload %q: %w", attachment.Name, err)
		}
	}

	return PayloadRef{
		Name:        attachment.Name,
		ContentType: attachment.ContentType,
		Ref:         FormatRef(hash),
		Hash:        FormatHash(hash),
		Size:        len(attachment.Data),
		StoredSize:  len(stored),
		Compression: tag.String(),
	}, nil
}

// writeFileAtomic writes data to a temporary file in the target's
// directory and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	directory := filepath.Dir(path)
	temporary, err := os.CreateTemp(directory, ".tmp-*")
	if err != nil {
		return err
	}
	name := temporary.Name()
	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		os.Remove(name)
		return err
	}
	if err := temporary.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
