// ABOUTME: Excel workbook ingestion for contact imports
// ABOUTME: Picks the contacts sheet by name heuristic and reads it as a Table
package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// sheetNameHints match the sheet holding contact rows, English or Hebrew.
var sheetNameHints = []string{"client", "contact", "לקוח", "אנשי קשר"}

// ParseExcel reads the contacts sheet of a workbook into a Table. The sheet
// is chosen by name; when nothing matches, the first sheet is used. The
// first row is the header row.
func ParseExcel(content []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	sheetName := pickSheet(sheets)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = strings.TrimSpace(header)
	}

	table := &Table{Headers: headers}
	for _, record := range rows[1:] {
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

func pickSheet(sheets []string) string {
	for _, sheet := range sheets {
		lower := strings.ToLower(sheet)
		for _, hint := range sheetNameHints {
			if strings.Contains(lower, hint) {
				return sheet
			}
		}
	}
	return sheets[0]
}
