// ABOUTME: vCard (.vcf) ingestion for contact imports
// ABOUTME: Parses 2.1/3.0 blocks with line unfolding into VCard records
package ingest

import (
	"strings"
)

// VCard is one BEGIN:VCARD..END:VCARD block, reduced to the properties the
// importer consumes. Parameters (TYPE=CELL etc.) are dropped.
type VCard struct {
	FullName   string
	FirstName  string
	LastName   string
	Emails     []string
	Phones     []string
	Org        string
	Title      string
	Note       string
	Birthday   string
	Categories string
}

// ParseVCard splits content into vCard blocks. Blocks missing every usable
// property are still returned; the normalizer decides what to drop.
func ParseVCard(content string) ([]VCard, error) {
	lines := unfoldLines(content)

	var cards []VCard
	var current *VCard

	for _, line := range lines {
		name, value := splitProperty(line)
		if name == "" {
			continue
		}

		switch name {
		case "BEGIN":
			if strings.EqualFold(value, "VCARD") {
				current = &VCard{}
			}
			continue
		case "END":
			if strings.EqualFold(value, "VCARD") && current != nil {
				cards = append(cards, *current)
				current = nil
			}
			continue
		}

		if current == nil {
			continue
		}

		value = unescapeValue(value)

		switch name {
		case "FN":
			current.FullName = value
		case "N":
			// Family;Given;Additional;Prefix;Suffix
			parts := strings.Split(value, ";")
			if len(parts) > 0 {
				current.LastName = strings.TrimSpace(parts[0])
			}
			if len(parts) > 1 {
				current.FirstName = strings.TrimSpace(parts[1])
			}
		case "EMAIL":
			if value != "" {
				current.Emails = append(current.Emails, value)
			}
		case "TEL":
			if value != "" {
				current.Phones = append(current.Phones, value)
			}
		case "ORG":
			// Keep the organization name, drop unit segments
			current.Org = strings.TrimSpace(strings.SplitN(value, ";", 2)[0])
		case "TITLE":
			current.Title = value
		case "NOTE":
			current.Note = value
		case "BDAY":
			current.Birthday = value
		case "CATEGORIES":
			current.Categories = value
		}
	}

	if len(cards) == 0 {
		return nil, ErrNoRows
	}

	return cards, nil
}

// unfoldLines joins RFC 6350 continuation lines (leading space or tab) onto
// the previous line and normalizes line endings.
func unfoldLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	var lines []string
	for _, line := range raw {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if (line[0] == ' ' || line[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitProperty separates "NAME;PARAM=X:value" into the uppercase property
// name and its raw value.
func splitProperty(line string) (string, string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", ""
	}

	name := line[:idx]
	if semi := strings.Index(name, ";"); semi >= 0 {
		name = name[:semi]
	}

	// Group prefixes like "item1.EMAIL" appear in Apple exports
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		name = name[dot+1:]
	}

	return strings.ToUpper(strings.TrimSpace(name)), strings.TrimSpace(line[idx+1:])
}

func unescapeValue(value string) string {
	replacer := strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`)
	return replacer.Replace(value)
}
