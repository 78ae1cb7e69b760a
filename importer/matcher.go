// ABOUTME: Contact deduplication and matching logic
// ABOUTME: Indexes existing clients by email, phone, and name to tag candidates
package importer

import (
	"github.com/google/uuid"
	"github.com/ticnutai/crmport/models"
)

type matchRef struct {
	ID   uuid.UUID
	Name string
}

// Matcher holds point-in-time lookup indexes over an owner's existing
// clients. Precedence on classify is email, then phone, then name.
type Matcher struct {
	countryCode string
	byEmail     map[string]matchRef
	byPhone     map[string]matchRef
	byName      map[string]matchRef
}

// NewMatcher builds indexes from existing clients. countryCode feeds phone
// normalization; empty falls back to DefaultCountryCode.
func NewMatcher(existing []models.Client, countryCode string) *Matcher {
	m := &Matcher{
		countryCode: countryCode,
		byEmail:     make(map[string]matchRef),
		byPhone:     make(map[string]matchRef),
		byName:      make(map[string]matchRef),
	}

	for i := range existing {
		m.Add(&existing[i])
	}

	return m
}

// Add indexes one client. Called for every pre-existing record and again for
// each record inserted mid-run, so a file listing the same contact twice
// cannot import it twice.
func (m *Matcher) Add(client *models.Client) {
	ref := matchRef{ID: client.ID, Name: client.Name}

	if email := NormalizeEmail(client.Email); email != "" {
		m.byEmail[email] = ref
	}
	if phone := NormalizePhone(client.Phone, m.countryCode); phone != "" {
		m.byPhone[phone] = ref
	}
	if phone := NormalizePhone(client.PhoneSecondary, m.countryCode); phone != "" {
		m.byPhone[phone] = ref
	}

	name := client.NameClean
	if name == "" {
		name = NormalizeName(client.Name)
	} else {
		name = NormalizeName(name)
	}
	if name != "" {
		m.byName[name] = ref
	}
}

// Classify tags every candidate in place. A matched candidate defaults to
// skip and deselected; the user must opt back in to import or update it.
func (m *Matcher) Classify(contacts []models.ParsedContact) {
	for i := range contacts {
		c := &contacts[i]

		ref, reason := m.match(c)
		if reason == models.MatchNone {
			c.IsDuplicate = false
			c.MatchedClientID = nil
			c.MatchReason = models.MatchNone
			continue
		}

		id := ref.ID
		c.IsDuplicate = true
		c.MatchedClientID = &id
		c.MatchReason = reason
		c.Action = models.ActionSkip
		c.Selected = false
	}
}

func (m *Matcher) match(c *models.ParsedContact) (matchRef, models.MatchReason) {
	for _, email := range []string{c.Email, c.EmailSecondary} {
		if email == "" {
			continue
		}
		if ref, ok := m.byEmail[NormalizeEmail(email)]; ok {
			return ref, models.MatchEmail
		}
	}

	for _, phone := range []string{c.Phone, c.PhoneSecondary} {
		if phone == "" {
			continue
		}
		if ref, ok := m.byPhone[NormalizePhone(phone, m.countryCode)]; ok {
			return ref, models.MatchPhone
		}
	}

	if c.Name != "" {
		if ref, ok := m.byName[NormalizeName(c.Name)]; ok {
			return ref, models.MatchName
		}
	}

	return matchRef{}, models.MatchNone
}
