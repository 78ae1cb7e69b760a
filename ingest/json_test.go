// ABOUTME: Tests for JSON ingestion
// ABOUTME: Covers object flattening, typed values, and empty arrays
package ingest

import (
	"errors"
	"testing"
)

func TestParseJSON(t *testing.T) {
	content := `[
		{"name": "Dana Cohen", "email": "dana@x.com", "vip": true, "score": 3},
		{"name": "Avi Levi", "phone": "050-2222222"}
	]`

	table, err := ParseJSON([]byte(content))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}

	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	first := table.Rows[0]
	if first.Get("name") != "Dana Cohen" {
		t.Errorf("name = %q", first.Get("name"))
	}
	if first.Get("vip") != "true" {
		t.Errorf("vip = %q", first.Get("vip"))
	}
	if first.Get("score") != "3" {
		t.Errorf("score = %q", first.Get("score"))
	}

	second := table.Rows[1]
	if second.Get("email") != "" {
		t.Errorf("absent key must read empty, got %q", second.Get("email"))
	}
}

func TestParseJSONEmptyArray(t *testing.T) {
	_, err := ParseJSON([]byte(`[]`))
	if !errors.Is(err, ErrNoRows) {
		t.Errorf("err = %v, want ErrNoRows", err)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"not": "an array"}`))
	if err == nil {
		t.Error("expected error for non-array JSON")
	}
}
