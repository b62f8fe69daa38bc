// Copyright 2026 The Intake Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"testing"
)

type sampleEnvelope struct {
	Version int        `json:"version"`
	Kind    string     `json:"kind"`
	Record  RawMessage `json:"record"`
}

func TestMarshalRoundTrip(t *testing.T) {
	original := sampleEnvelope{Version: 1, Kind: "ticket"}
	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded sampleEnvelope
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Version != original.Version || decoded.Kind != original.Kind {
		t.Errorf("decoded = %+v, want %+v", decoded, original)
	}
}

// TestMarshalDeterministic checks the core property the spool depends
// on: identical logical content yields identical bytes, including for
// maps, whose keys must come out sorted.
func TestMarshalDeterministic(t *testing.T) {
	first, err := Marshal(map[string]int{"zebra": 1, "apple": 2, "mango": 3})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := Marshal(map[string]int{"mango": 3, "apple": 2, "zebra": 1})
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("same logical map encoded to different bytes")
		}
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	// A newer writer may add fields; older readers must not choke.
	data, err := Marshal(map[string]any{
		"version": 1,
		"kind":    "page",
		"later":   "addition",
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded sampleEnvelope
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Kind != "page" {
		t.Errorf("kind = %q, want page", decoded.Kind)
	}
}

func TestUnmarshalDefaultMapType(t *testing.T) {
	data, err := Marshal(map[string]any{"outer": map[string]any{"inner": 1}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	outer, ok := decoded.(map[string]any)
	if !ok {
		t.Fatalf("decoded is %T, want map[string]any", decoded)
	}
	if _, ok := outer["outer"].(map[string]any); !ok {
		t.Errorf("nested value is %T, want map[string]any", outer["outer"])
	}
}

func TestRawMessagePassThrough(t *testing.T) {
	inner, err := Marshal(map[string]string{"path": "docs/x"})
	if err != nil {
		t.Fatalf("Marshal inner: %v", err)
	}
	envelope := sampleEnvelope{Version: 1, Kind: "page", Record: RawMessage(inner)}
	data, err := Marshal(envelope)
	if err != nil {
		t.Fatalf("Marshal envelope: %v", err)
	}
	var decoded sampleEnvelope
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal envelope: %v", err)
	}
	if !bytes.Equal(decoded.Record, inner) {
		t.Error("raw record bytes changed through the envelope round trip")
	}
}
