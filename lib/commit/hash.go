// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package commit

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest. Attachment payloads and spool
// envelopes are both addressed by one.
type Hash [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation keeps payload and envelope hashes from ever colliding
// across contexts. The byte values are the ASCII domain name,
// zero-padded to 32 bytes, so the keys are inspectable in hex dumps.
type domainKey [32]byte

var (
	payloadDomainKey = domainKey{
		'i', 'n', 't', 'a', 'k', 'e', '.', 'p', 'a', 'y', 'l', 'o', 'a', 'd', 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	envelopeDomainKey = domainKey{
		'i', 'n', 't', 'a', 'k', 'e', '.', 'e', 'n', 'v', 'e', 'l', 'o', 'p', 'e', 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// HashPayload computes the payload-domain hash of attachment bytes.
// Always computed on uncompressed bytes, so the identity of a payload
// is stable across compression choices.
func HashPayload(data []byte) Hash {
	return keyedHash(payloadDomainKey, data)
}

// HashEnvelope computes the envelope-domain hash of encoded envelope
// bytes. Used to derive the spool filename.
func HashEnvelope(data []byte) Hash {
	return keyedHash(envelopeDomainKey, data)
}

// FormatHash returns the hex encoding of a hash, the canonical form
// used in envelopes, filenames, and logs.
func FormatHash(hash Hash) string {
	return hex.EncodeToString(hash[:])
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing hash: %w", err)
	}
	if len(decoded) != 32 {
		return hash, fmt.Errorf("hash is %d bytes, want 32", len(decoded))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// FormatRef returns the short payload reference stored in envelopes:
// the "att-" prefix followed by the first 12 hex characters.
func FormatRef(payloadHash Hash) string {
	return "att-" + hex.EncodeToString(payloadHash[:6])
}

// keyedHash computes a BLAKE3 keyed hash with the given domain key.
func keyedHash(key domainKey, data []byte) Hash {
	// NewKeyed only fails for a wrong key length, which the
	// fixed-size domainKey type rules out.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("commit: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
