// ABOUTME: Contact normalization for duplicate matching and candidate building
// ABOUTME: Projects raw rows and vCards into canonical ParsedContact records
package importer

import (
	"strings"

	"github.com/ticnutai/crmport/ingest"
	"github.com/ticnutai/crmport/models"
)

// DefaultCountryCode is the calling code used when none is configured.
const DefaultCountryCode = "972"

// NormalizePhone reduces a phone number to its comparison key: whitespace,
// hyphens, and parentheses stripped, leading + dropped, and a single leading
// 0 replaced by the country calling code so local and international formats
// collide on the same key.
func NormalizePhone(phone, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')':
			return -1
		}
		return r
	}, phone)

	cleaned = strings.TrimPrefix(cleaned, "+")

	// The leading zero is swapped for the country code unconditionally,
	// so "00" international prefixes come out double-coded. Known quirk.
	if len(cleaned) > 1 && cleaned[0] == '0' {
		cleaned = countryCode + cleaned[1:]
	}

	return cleaned
}

// NormalizeName lowercases, trims, and collapses internal whitespace runs.
func NormalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// NormalizeEmail lowercases for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// emailLocalPart returns the part before @, used as a name of last resort.
func emailLocalPart(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return ""
}

// ContactsFromTable projects table rows through a column mapping. Rows with
// no usable identity (no name, email, or phone) are dropped, not emitted.
func ContactsFromTable(table *ingest.Table, m models.ColumnMapping) []models.ParsedContact {
	contacts := make([]models.ParsedContact, 0, len(table.Rows))

	for _, row := range table.Rows {
		get := func(field models.Field) string {
			header, ok := m[field]
			if !ok || header == "" {
				return ""
			}
			return strings.TrimSpace(row.Get(header))
		}

		c := models.ParsedContact{
			FirstName:      get(models.FieldFirstName),
			LastName:       get(models.FieldLastName),
			Name:           get(models.FieldFullName),
			Email:          get(models.FieldEmail),
			EmailSecondary: get(models.FieldEmailSecondary),
			Phone:          get(models.FieldPhone),
			PhoneSecondary: get(models.FieldPhoneSecondary),
			Company:        get(models.FieldCompany),
			Title:          get(models.FieldTitle),
			Department:     get(models.FieldDepartment),
			Birthday:       get(models.FieldBirthday),
			Address:        get(models.FieldAddress),
			Notes:          get(models.FieldNotes),
			Labels:         get(models.FieldLabels),
		}

		if !finishContact(&c) {
			continue
		}
		contacts = append(contacts, c)
	}

	return contacts
}

// ContactsFromVCards projects parsed vCard blocks into candidates.
func ContactsFromVCards(cards []ingest.VCard) []models.ParsedContact {
	contacts := make([]models.ParsedContact, 0, len(cards))

	for _, card := range cards {
		c := models.ParsedContact{
			FirstName: strings.TrimSpace(card.FirstName),
			LastName:  strings.TrimSpace(card.LastName),
			Name:      strings.TrimSpace(card.FullName),
			Company:   strings.TrimSpace(card.Org),
			Title:     strings.TrimSpace(card.Title),
			Birthday:  strings.TrimSpace(card.Birthday),
			Notes:     strings.TrimSpace(card.Note),
			Labels:    strings.TrimSpace(card.Categories),
		}

		if len(card.Emails) > 0 {
			c.Email = strings.TrimSpace(card.Emails[0])
		}
		if len(card.Emails) > 1 {
			c.EmailSecondary = strings.TrimSpace(card.Emails[1])
		}
		if len(card.Phones) > 0 {
			c.Phone = strings.TrimSpace(card.Phones[0])
		}
		if len(card.Phones) > 1 {
			c.PhoneSecondary = strings.TrimSpace(card.Phones[1])
		}

		if !finishContact(&c) {
			continue
		}
		contacts = append(contacts, c)
	}

	return contacts
}

// finishContact derives the display name and applies workflow defaults.
// Derivation order: explicit full name, first+last, email local part, phone.
// Returns false when the record has no identity at all.
func finishContact(c *models.ParsedContact) bool {
	if c.Name == "" {
		c.Name = strings.TrimSpace(c.FirstName + " " + c.LastName)
	}
	if c.Name == "" {
		c.Name = emailLocalPart(firstNonEmpty(c.Email, c.EmailSecondary))
	}
	if c.Name == "" {
		c.Name = firstNonEmpty(c.Phone, c.PhoneSecondary)
	}
	if c.Name == "" {
		return false
	}

	c.MatchReason = models.MatchNone
	c.Selected = true
	c.Action = models.ActionImport
	return true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
