// ABOUTME: Tests for phone/name/email normalization and row projection
// ABOUTME: Covers name derivation fallbacks and the no-identity drop rule
package importer

import (
	"testing"

	"github.com/ticnutai/crmport/ingest"
	"github.com/ticnutai/crmport/models"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local with hyphen", "050-1234567", "972501234567"},
		{"international plus", "+972 50-123-4567", "972501234567"},
		{"bare international", "972501234567", "972501234567"},
		{"parens and spaces", "(03) 555 1234", "97235551234"},
		{"double leading zero still swapped", "0012345", "972012345"},
		{"no leading zero kept", "12345", "12345"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input, "972")
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhoneCountryCode(t *testing.T) {
	if got := NormalizePhone("050-1234567", "1"); got != "1501234567" {
		t.Errorf("expected country code 1 substitution, got %q", got)
	}
}

func TestNormalizePhoneEquivalence(t *testing.T) {
	// Three spellings of the same number must collide after normalization.
	forms := []string{"050-1234567", "+972501234567", "972 50 123 4567"}
	want := NormalizePhone(forms[0], "972")
	for _, f := range forms[1:] {
		if got := NormalizePhone(f, "972"); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", f, got, want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Dana   COHEN "); got != "dana cohen" {
		t.Errorf("NormalizeName = %q, want %q", got, "dana cohen")
	}
	if got := NormalizeName(""); got != "" {
		t.Errorf("NormalizeName(\"\") = %q, want empty", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Dana.Cohen@Example.COM "); got != "dana.cohen@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestContactsFromTableNameDerivation(t *testing.T) {
	table := &ingest.Table{
		Headers: []string{"First Name", "Last Name", "E-mail", "Phone"},
		Rows: []ingest.Row{
			{"First Name": "Dana", "Last Name": "Cohen"},
			{"E-mail": "alice@example.com"},
			{"Phone": "050-1234567"},
		},
	}
	m := models.ColumnMapping{
		models.FieldFirstName: "First Name",
		models.FieldLastName:  "Last Name",
		models.FieldEmail:     "E-mail",
		models.FieldPhone:     "Phone",
	}

	contacts := ContactsFromTable(table, m)
	if len(contacts) != 3 {
		t.Fatalf("expected 3 contacts, got %d", len(contacts))
	}
	if contacts[0].Name != "Dana Cohen" {
		t.Errorf("row 0 name = %q, want %q", contacts[0].Name, "Dana Cohen")
	}
	if contacts[1].Name != "alice" {
		t.Errorf("row 1 name = %q, want local part %q", contacts[1].Name, "alice")
	}
	if contacts[2].Name != "050-1234567" {
		t.Errorf("row 2 name = %q, want raw phone", contacts[2].Name)
	}
}

func TestContactsFromTableDropsIdentityless(t *testing.T) {
	table := &ingest.Table{
		Headers: []string{"Name", "Company"},
		Rows: []ingest.Row{
			{"Company": "Acme"},
			{"Name": "Dana"},
		},
	}
	m := models.ColumnMapping{
		models.FieldFullName: "Name",
		models.FieldCompany:  "Company",
	}

	contacts := ContactsFromTable(table, m)
	if len(contacts) != 1 {
		t.Fatalf("expected company-only row to be dropped, got %d contacts", len(contacts))
	}
	if contacts[0].Name != "Dana" {
		t.Errorf("surviving contact = %q", contacts[0].Name)
	}
}

func TestContactsFromTableDefaults(t *testing.T) {
	table := &ingest.Table{
		Headers: []string{"Name"},
		Rows:    []ingest.Row{{"Name": "Dana"}},
	}
	m := models.ColumnMapping{models.FieldFullName: "Name"}

	contacts := ContactsFromTable(table, m)
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	c := contacts[0]
	if !c.Selected || c.Action != models.ActionImport || c.MatchReason != models.MatchNone {
		t.Errorf("unexpected defaults: selected=%v action=%q reason=%q", c.Selected, c.Action, c.MatchReason)
	}
}

func TestContactsFromVCards(t *testing.T) {
	cards := []ingest.VCard{
		{
			FullName: "Dana Cohen",
			Emails:   []string{"dana@example.com", "dana@work.example"},
			Phones:   []string{"050-1234567", "03-5551234"},
			Org:      "Acme",
		},
		{FirstName: "Noa", LastName: "Levi"},
	}

	contacts := ContactsFromVCards(cards)
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].EmailSecondary != "dana@work.example" {
		t.Errorf("secondary email = %q", contacts[0].EmailSecondary)
	}
	if contacts[0].PhoneSecondary != "03-5551234" {
		t.Errorf("secondary phone = %q", contacts[0].PhoneSecondary)
	}
	if contacts[1].Name != "Noa Levi" {
		t.Errorf("derived name = %q", contacts[1].Name)
	}
}
