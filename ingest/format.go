// ABOUTME: Import file format detection
// ABOUTME: Sniffs CSV, vCard, JSON, and Excel from filename and content
package ingest

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// Format identifies a supported import file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatVCard   Format = "vcard"
	FormatJSON    Format = "json"
	FormatExcel   Format = "excel"
	FormatUnknown Format = "unknown"
)

var (
	// ErrUnknownFormat means neither the extension nor the content matched
	// a supported format.
	ErrUnknownFormat = errors.New("unsupported file format")

	// ErrNoRows means the file parsed but contained no data rows.
	ErrNoRows = errors.New("no rows found")
)

// xlsx files are zip archives
var zipMagic = []byte("PK\x03\x04")

// Detect returns the file format, checking the filename extension first and
// falling back to content sniffing.
func Detect(filename string, content []byte) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return FormatCSV
	case ".vcf", ".vcard":
		return FormatVCard
	case ".json":
		return FormatJSON
	case ".xlsx", ".xls":
		return FormatExcel
	}

	trimmed := bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	trimmed = bytes.TrimLeft(trimmed, " \t\r\n")
	switch {
	case len(trimmed) == 0:
		return FormatUnknown
	case bytes.HasPrefix(trimmed, zipMagic):
		return FormatExcel
	case hasVCardHeader(trimmed):
		return FormatVCard
	case trimmed[0] == '{' || trimmed[0] == '[':
		return FormatJSON
	case looksLikeCSV(trimmed):
		return FormatCSV
	}

	return FormatUnknown
}

func hasVCardHeader(content []byte) bool {
	head := content
	if len(head) > 64 {
		head = head[:64]
	}
	return strings.HasPrefix(strings.ToUpper(string(head)), "BEGIN:VCARD")
}

// looksLikeCSV checks comma density on the first line: a delimited header
// row has at least one comma and no binary bytes.
func looksLikeCSV(content []byte) bool {
	line := content
	if idx := bytes.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}
	if !bytes.ContainsRune(line, ',') {
		return false
	}
	for _, b := range line {
		if b < 0x09 {
			return false
		}
	}
	return true
}
