// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
)

func TestCompressRoundTrip(t *testing.T) {
	// Repetitive text compresses well and comes back zstd-tagged.
	data := []byte(strings.Repeat("the quick brown fox jumps over the lazy dog\n", 200))
	stored, tag, err := compressPayload(data, "text/plain")
	if err != nil {
		t.Fatalf("compressPayload: %v", err)
	}
	if tag != CompressionZstd {
		t.Errorf("tag = %s, want zstd for text/plain", tag)
	}
	if len(stored) >= len(data) {
		t.Errorf("stored %d bytes >= input %d bytes", len(stored), len(data))
	}
	restored, err := DecompressPayload(stored, tag, len(data))
	if err != nil {
		t.Fatalf("DecompressPayload: %v", err)
	}
	if !bytes.Equal(restored, data) {
		t.Error("round trip corrupted the payload")
	}
}

func TestCompressIncompressibleFallsBack(t *testing.T) {
	// Random bytes do not compress; the payload must come back
	// unchanged under the none tag.
	source := rand.New(rand.NewSource(1))
	data := make([]byte, 4096)
	source.Read(data)

	stored, tag, err := compressPayload(data, "application/octet-stream")
	if err != nil {
		t.Fatalf("compressPayload: %v", err)
	}
	if tag != CompressionNone {
		t.Errorf("tag = %s, want none for random bytes", tag)
	}
	if !bytes.Equal(stored, data) {
		t.Error("none-tagged payload differs from input")
	}
	restored, err := DecompressPayload(stored, tag, len(data))
	if err != nil {
		t.Fatalf("DecompressPayload: %v", err)
	}
	if !bytes.Equal(restored, data) {
		t.Error("round trip corrupted the payload")
	}
}

func TestDecompressSizeMismatch(t *testing.T) {
	data := []byte(strings.Repeat("abc", 500))
	stored, tag, err := compressPayload(data, "text/plain")
	if err != nil {
		t.Fatalf("compressPayload: %v", err)
	}
	if _, err := DecompressPayload(stored, tag, len(data)+1); err == nil {
		t.Error("DecompressPayload accepted a wrong uncompressed size")
	}
}

func TestCompressionTagStrings(t *testing.T) {
	for _, tag := range []CompressionTag{CompressionNone, CompressionLZ4, CompressionZstd} {
		parsed, err := ParseCompressionTag(tag.String())
		if err != nil {
			t.Errorf("ParseCompressionTag(%q): %v", tag.String(), err)
			continue
		}
		if parsed != tag {
			t.Errorf("ParseCompressionTag(%q) = %v, want %v", tag.String(), parsed, tag)
		}
	}
	if _, err := ParseCompressionTag("snappy"); err == nil {
		t.Error("ParseCompressionTag accepted an unknown name")
	}
}

func TestHashPayloadDomainSeparation(t *testing.T) {
	data := []byte("same bytes")
	if HashPayload(data) == HashEnvelope(data) {
		t.Error("payload and envelope domains produced the same hash")
	}
}

func TestFormatAndParseHash(t *testing.T) {
	hash := HashPayload([]byte("x"))
	parsed, err := ParseHash(FormatHash(hash))
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if parsed != hash {
		t.Error("hash did not round-trip through hex")
	}
	if _, err := ParseHash("abcd"); err == nil {
		t.Error("ParseHash accepted a short string")
	}
	if ref := FormatRef(hash); !strings.HasPrefix(ref, "att-") || len(ref) != 16 {
		t.Errorf("FormatRef = %q, want att- prefix and 12 hex chars", ref)
	}
}
