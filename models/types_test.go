// ABOUTME: Tests for shared import model types
// ABOUTME: Verifies field enumeration and default zero values
package models

import "testing"

func TestFieldsCoverEveryCanonicalField(t *testing.T) {
	seen := make(map[Field]bool)
	for _, f := range Fields {
		if seen[f] {
			t.Errorf("field %q listed twice", f)
		}
		seen[f] = true
	}

	for _, f := range []Field{FieldFullName, FieldEmail, FieldPhoneSecondary, FieldLabels} {
		if !seen[f] {
			t.Errorf("field %q missing from Fields", f)
		}
	}
}

func TestParsedContactZeroValue(t *testing.T) {
	var c ParsedContact

	if c.IsDuplicate {
		t.Error("zero candidate must not be a duplicate")
	}
	if c.Imported {
		t.Error("zero candidate must not be marked imported")
	}
	if c.MatchedClientID != nil {
		t.Error("zero candidate must not reference a client")
	}
}
