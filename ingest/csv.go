// ABOUTME: CSV ingestion for contact imports
// ABOUTME: Tolerant RFC4180-style parsing into the intermediate Table form
package ingest

import (
	"encoding/csv"
	"io"
	"strings"
)

// ParseCSV reads a comma-delimited file into a Table. Quoted fields with
// embedded commas and doubled-quote escaping follow spreadsheet export
// conventions; malformed quoting is tolerated rather than rejected.
func ParseCSV(content string) (*Table, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, err
	}

	for i := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(headers[i], "\uFEFF"))
	}

	table := &Table{Headers: headers}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Best effort: a bad record does not abort the file
			continue
		}

		if isBlankRecord(record) {
			continue
		}

		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = strings.TrimSpace(record[i])
			} else {
				row[header] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	if len(table.Rows) == 0 {
		return nil, ErrNoRows
	}

	return table, nil
}

func isBlankRecord(record []string) bool {
	for _, value := range record {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
