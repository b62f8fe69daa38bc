// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides intake's standard CBOR encoding: Core
// Deterministic Encoding (RFC 8949 §4.2), so the same logical record
// always produces identical envelope bytes. Consumers import only
// this package, never fxamacker/cbor directly.
package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding: sorted map keys, smallest
// integer encoding, no indefinite-length items. Deterministic bytes
// make spool envelopes content-addressable.
var encMode cbor.EncMode

// decMode accepts standard CBOR; unknown fields are ignored for
// forward compatibility.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Envelope content only ever uses string map keys. When the
		// decode target is any, pick map[string]any rather than the
		// CBOR default map[any]any so decoded values interoperate
		// with encoding/json and ordinary Go code.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// RawMessage is a raw encoded CBOR value, used to embed a
// pre-encoded record inside an envelope without re-encoding.
type RawMessage = cbor.RawMessage
