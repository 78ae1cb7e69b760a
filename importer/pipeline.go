// ABOUTME: Front half of the import pipeline, file bytes to candidate list
// ABOUTME: Detects format, parses, auto-maps headers, normalizes contacts
package importer

import (
	"fmt"

	"github.com/ticnutai/crmport/ingest"
	"github.com/ticnutai/crmport/mapping"
	"github.com/ticnutai/crmport/models"
)

// Source is a parsed import file with its detected column mapping. The
// mapping can be adjusted before Contacts is called; vCard sources carry
// structured cards and need no mapping at all.
type Source struct {
	Filename string
	Format   ingest.Format
	Table    *ingest.Table
	Cards    []ingest.VCard
	Mapping  models.ColumnMapping
}

// LoadSource parses raw file content into a Source ready for review.
func LoadSource(filename string, content []byte) (*Source, error) {
	format := ingest.Detect(filename, content)

	src := &Source{Filename: filename, Format: format}

	switch format {
	case ingest.FormatVCard:
		cards, err := ingest.ParseVCard(string(content))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		src.Cards = cards
		return src, nil

	case ingest.FormatCSV:
		table, err := ingest.ParseCSV(string(content))
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		src.Table = table

	case ingest.FormatJSON:
		table, err := ingest.ParseJSON(content)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		src.Table = table

	case ingest.FormatExcel:
		table, err := ingest.ParseExcel(content)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filename, err)
		}
		src.Table = table

	default:
		return nil, fmt.Errorf("%s: %w", filename, ingest.ErrUnknownFormat)
	}

	src.Mapping = mapping.AutoDetect(src.Table.Headers)
	return src, nil
}

// Contacts normalizes the parsed rows into import candidates using the
// current mapping. Rows with no usable name source are dropped.
func (s *Source) Contacts() []models.ParsedContact {
	if s.Format == ingest.FormatVCard {
		return ContactsFromVCards(s.Cards)
	}
	return ContactsFromTable(s.Table, s.Mapping)
}

// RowCount reports how many raw records the source parsed, before the
// name-derivation drop rule is applied.
func (s *Source) RowCount() int {
	if s.Format == ingest.FormatVCard {
		return len(s.Cards)
	}
	if s.Table == nil {
		return 0
	}
	return len(s.Table.Rows)
}
