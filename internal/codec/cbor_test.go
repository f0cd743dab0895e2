// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"bytes"
	"strings"
	"testing"
)

// sampleRecord mirrors the shape of a persisted query descriptor: json
// struct tags only, relying on fxamacker's json-tag fallback so the
// same type serves JSON output and CBOR persistence.
type sampleRecord struct {
	Query   string   `json:"query"`
	Columns []string `json:"columns,omitempty"`
	Params  int      `json:"params"`
}

func TestMarshalUnmarshalRoundtrip(t *testing.T) {
	original := sampleRecord{
		Query:   "SELECT id, name FROM users WHERE id = $1",
		Columns: []string{"id", "name"},
		Params:  1,
	}

	data, err := Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	if len(data) == 0 {
		t.Fatal("Marshal produced empty output")
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.Query != original.Query || decoded.Params != original.Params {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", decoded, original)
	}
	if len(decoded.Columns) != len(original.Columns) {
		t.Fatalf("Columns length = %d, want %d", len(decoded.Columns), len(original.Columns))
	}
	for i := range original.Columns {
		if decoded.Columns[i] != original.Columns[i] {
			t.Errorf("Columns[%d] = %q, want %q", i, decoded.Columns[i], original.Columns[i])
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	record := sampleRecord{
		Query:   "SELECT 1",
		Columns: []string{"?column?"},
		Params:  0,
	}

	first, err := Marshal(record)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}

	second, err := Marshal(record)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("deterministic encoding violated: %x != %x", first, second)
	}
}

func TestJSONTagNamesUsedAsKeys(t *testing.T) {
	data, err := Marshal(sampleRecord{Query: "SELECT 1", Params: 0})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}

	// Map keys come from the json tags, not the Go field names.
	if !strings.Contains(notation, `"query"`) {
		t.Errorf("notation %q does not contain key \"query\"", notation)
	}
	if strings.Contains(notation, `"Query"`) {
		t.Errorf("notation %q contains Go field name \"Query\"", notation)
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	// A file written by a newer binary may carry extra fields; older
	// readers must still decode the fields they know.
	data, err := Marshal(map[string]any{
		"query":  "SELECT 1",
		"params": 2,
		"future": "field",
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded sampleRecord
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Query != "SELECT 1" || decoded.Params != 2 {
		t.Errorf("decoded = %+v, want Query=SELECT 1 Params=2", decoded)
	}
}

func TestUnmarshalAnyUsesStringKeyedMaps(t *testing.T) {
	data, err := Marshal(map[string]any{"query": "SELECT 1"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded any
	if err := Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if _, ok := decoded.(map[string]any); !ok {
		t.Errorf("decoded type = %T, want map[string]any", decoded)
	}
}

func TestUnmarshalInvalidCBOR(t *testing.T) {
	var record sampleRecord
	err := Unmarshal([]byte{0xFF, 0xFE, 0xFD}, &record)
	if err == nil {
		t.Error("Unmarshal should reject invalid CBOR")
	}
}

func TestDiagnose(t *testing.T) {
	data, err := Marshal(map[string]any{"query": "SELECT 1"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	notation, err := Diagnose(data)
	if err != nil {
		t.Fatalf("Diagnose: %v", err)
	}

	if !strings.Contains(notation, `"query"`) {
		t.Errorf("notation %q does not contain \"query\"", notation)
	}
	if !strings.Contains(notation, `"SELECT 1"`) {
		t.Errorf("notation %q does not contain \"SELECT 1\"", notation)
	}
}
