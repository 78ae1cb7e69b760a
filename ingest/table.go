// ABOUTME: Intermediate row representation for delimited imports
// ABOUTME: Table holds ordered headers plus header-keyed string rows
package ingest

// Row maps a source column header to its raw string value. Values are
// immutable after parsing; a header missing from the row reads as "".
type Row map[string]string

// Table is the intermediate output of every delimited ingester: an ordered
// header list and one Row per source record.
type Table struct {
	Headers []string
	Rows    []Row
}

// Get returns the trimmed-at-parse value for a header, or "" when absent.
func (r Row) Get(header string) string {
	return r[header]
}
