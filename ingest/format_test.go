// ABOUTME: Tests for format detection
// ABOUTME: Covers extension routing and content sniffing fallbacks
package ingest

import "testing"

func TestDetectByExtension(t *testing.T) {
	tests := []struct {
		filename string
		expected Format
	}{
		{"contacts.csv", FormatCSV},
		{"Contacts.CSV", FormatCSV},
		{"backup.txt", FormatCSV},
		{"contacts.vcf", FormatVCard},
		{"contacts.vcard", FormatVCard},
		{"export.json", FormatJSON},
		{"clients.xlsx", FormatExcel},
		{"clients.xls", FormatExcel},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename, nil); got != tt.expected {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.expected)
		}
	}
}

func TestDetectByContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected Format
	}{
		{"vcard", "BEGIN:VCARD\nFN:Dana\nEND:VCARD", FormatVCard},
		{"vcard lowercase", "begin:vcard\nEND:VCARD", FormatVCard},
		{"json object", `{"clients": []}`, FormatJSON},
		{"json array", `[{"name": "Dana"}]`, FormatJSON},
		{"csv", "name,email\nDana,dana@x.com", FormatCSV},
		{"csv behind BOM", "\uFEFFname,email\nDana,dana@x.com", FormatCSV},
		{"json behind BOM", "\uFEFF[{\"name\": \"Dana\"}]", FormatJSON},
		{"plain text", "hello world", FormatUnknown},
		{"empty", "", FormatUnknown},
	}

	for _, tt := range tests {
		if got := Detect("upload", []byte(tt.content)); got != tt.expected {
			t.Errorf("%s: Detect = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestDetectExcelMagic(t *testing.T) {
	if got := Detect("upload", []byte("PK\x03\x04rest-of-zip")); got != FormatExcel {
		t.Errorf("Detect zip magic = %v, want FormatExcel", got)
	}
}
