// ABOUTME: Heuristic column-to-field mapping for contact imports
// ABOUTME: Ordered regex rule table with English and Hebrew header variants
package mapping

import (
	"regexp"
	"strings"

	"github.com/ticnutai/crmport/models"
)

// Rule binds one canonical field to its header patterns. Patterns are tried
// in order over all headers; the first header that matches claims the field.
type Rule struct {
	Field    models.Field
	Patterns []*regexp.Regexp
}

func patterns(exprs ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(exprs))
	for i, expr := range exprs {
		compiled[i] = regexp.MustCompile(`(?i)` + expr)
	}
	return compiled
}

// rules covers the header conventions of Google Contacts, Outlook, generic
// spreadsheet exports, and the Hebrew CRM templates. Order within a field
// matters: specific export formats come before generic catch-alls.
var rules = []Rule{
	{models.FieldFirstName, patterns(
		`^first\s*name$`,
		`^given\s*name$`,
		`^שם\s*פרטי$`,
	)},
	{models.FieldLastName, patterns(
		`^last\s*name$`,
		`^family\s*name$`,
		`^surname$`,
		`^שם\s*משפחה$`,
	)},
	{models.FieldFullName, patterns(
		`^full\s*name$`,
		`^display\s*name$`,
		`^name$`,
		`^שם(\s*מלא)?$`,
		`^איש\s*קשר$`,
	)},
	{models.FieldEmail, patterns(
		`^e-?mail\s*1\b`,
		`^e-?mail(\s*address)?$`,
		`^primary\s*e-?mail$`,
		`אימייל|דוא.ל|^מייל$`,
	)},
	{models.FieldEmailSecondary, patterns(
		`^e-?mail\s*2\b`,
		`^secondary\s*e-?mail$`,
		`אימייל\s*(נוסף|משני)`,
	)},
	{models.FieldPhone, patterns(
		`^phone\s*1\b`,
		`^(mobile|cell)(\s*phone)?$`,
		`^phone(\s*number)?$`,
		`^tel(ephone)?$`,
		`^טלפון$|^נייד$|^סלולרי$`,
	)},
	{models.FieldPhoneSecondary, patterns(
		`^phone\s*2\b`,
		`^(secondary|other|home|work)\s*phone$`,
		`טלפון\s*(נוסף|משני|בבית|בעבודה)`,
	)},
	{models.FieldCompany, patterns(
		`^company$`,
		`^organization\s*\d*\s*-\s*name$`,
		`^organization(\s*name)?$`,
		`^org$`,
		`^חברה$|^ארגון$`,
	)},
	{models.FieldTitle, patterns(
		`^(job\s*)?title$`,
		`^position$`,
		`^role$`,
		`^organization\s*\d*\s*-\s*title$`,
		`^תפקיד$`,
	)},
	{models.FieldDepartment, patterns(
		`^department$`,
		`^organization\s*\d*\s*-\s*department$`,
		`^מחלקה$`,
	)},
	{models.FieldBirthday, patterns(
		`^birth(day|date)?\b`,
		`^bday$`,
		`יום\s*הולדת|תאריך\s*לידה`,
	)},
	{models.FieldAddress, patterns(
		`^(street\s*)?address\b`,
		`^address\s*1\b`,
		`^כתובת$`,
	)},
	{models.FieldNotes, patterns(
		`^notes?$`,
		`^comments?$`,
		`^הערות$`,
	)},
	{models.FieldLabels, patterns(
		`^labels?$`,
		`^tags?$`,
		`^groups?(\s*membership)?$`,
		`^categor(y|ies)$`,
		`^תגיות$|^קבוצות?$`,
	)},
}

// Rules returns the active rule table so callers can test or extend it
// without touching match control flow.
func Rules() []Rule {
	return rules
}

// AutoDetect builds a ColumnMapping from file headers. Each field is resolved
// independently, so a single header may serve more than one field. The result
// is a starting point the user may edit before it is applied.
func AutoDetect(headers []string) models.ColumnMapping {
	m := make(models.ColumnMapping)

	for _, rule := range rules {
		header, ok := matchField(rule, headers)
		if ok {
			m[rule.Field] = header
		}
	}

	return m
}

func matchField(rule Rule, headers []string) (string, bool) {
	for _, pattern := range rule.Patterns {
		for _, header := range headers {
			trimmed := strings.TrimSpace(header)
			if trimmed == "" {
				continue
			}
			if pattern.MatchString(trimmed) {
				return header, true
			}
		}
	}
	return "", false
}
