// ABOUTME: JSON ingestion for contact imports
// ABOUTME: Flattens an array of objects into the intermediate Table form
package ingest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ParseJSON reads an array of flat objects into a Table. Nested values are
// ignored; numbers and booleans are stringified. Headers are the sorted
// union of keys so detection stays deterministic.
func ParseJSON(content []byte) (*Table, error) {
	var objects []map[string]interface{}
	if err := json.Unmarshal(content, &objects); err != nil {
		return nil, fmt.Errorf("invalid JSON import: %w", err)
	}

	if len(objects) == 0 {
		return nil, ErrNoRows
	}

	headerSet := make(map[string]bool)
	for _, obj := range objects {
		for key := range obj {
			headerSet[key] = true
		}
	}

	headers := make([]string, 0, len(headerSet))
	for key := range headerSet {
		headers = append(headers, key)
	}
	sort.Strings(headers)

	table := &Table{Headers: headers}
	for _, obj := range objects {
		row := make(Row, len(headers))
		for _, header := range headers {
			row[header] = stringifyValue(obj[header])
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func stringifyValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
