// ABOUTME: Data models for CRM contact import
// ABOUTME: Defines Client, ParsedContact, ImportStats, and column mapping types
package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a stored CRM record. The schema is owned by the database layer;
// import code only ever reads these fields or patches them by column name.
type Client struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	NameClean      string    `json:"name_clean,omitempty"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	PhoneSecondary string    `json:"phone_secondary,omitempty"`
	Company        string    `json:"company,omitempty"`
	Position       string    `json:"position,omitempty"`
	Address        string    `json:"address,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Labels         string    `json:"labels,omitempty"`
	Source         string    `json:"source,omitempty"`
	Status         string    `json:"status"`
	OwnerID        string    `json:"owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Client status constants.
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusPending  = "pending"
)

// Client source values. SourceContactImport marks records created by the
// file importer.
const (
	SourceContactImport = "contact_import"
	SourceManual        = "manual"
)

// MatchReason says which signal flagged a candidate as already present.
type MatchReason string

const (
	MatchEmail MatchReason = "email"
	MatchPhone MatchReason = "phone"
	MatchName  MatchReason = "name"
	MatchNone  MatchReason = "none"
)

// Action is what the import run should do with a candidate.
type Action string

const (
	ActionImport Action = "import"
	ActionUpdate Action = "update"
	ActionSkip   Action = "skip"
)

// ParsedContact is one import candidate. Created by the normalizer, tagged by
// the duplicate matcher, toggled in review, consumed by the runner.
type ParsedContact struct {
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	EmailSecondary string `json:"email_secondary,omitempty"`
	Phone          string `json:"phone,omitempty"`
	PhoneSecondary string `json:"phone_secondary,omitempty"`
	Company        string `json:"company,omitempty"`
	Title          string `json:"title,omitempty"`
	Department     string `json:"department,omitempty"`
	Birthday       string `json:"birthday,omitempty"`
	Address        string `json:"address,omitempty"`
	Notes          string `json:"notes,omitempty"`
	Labels         string `json:"labels,omitempty"`

	IsDuplicate     bool        `json:"is_duplicate"`
	MatchedClientID *uuid.UUID  `json:"matched_client_id,omitempty"`
	MatchReason     MatchReason `json:"match_reason"`

	Selected bool   `json:"selected"`
	Action   Action `json:"action"`
	Imported bool   `json:"imported"`
}

// ImportStats accumulates counters over one run.
type ImportStats struct {
	Total      int `json:"total"`
	Imported   int `json:"imported"`
	Updated    int `json:"updated"`
	Skipped    int `json:"skipped"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
}

// Field is a canonical import target field.
type Field string

const (
	FieldFirstName      Field = "first_name"
	FieldLastName       Field = "last_name"
	FieldFullName       Field = "full_name"
	FieldEmail          Field = "email"
	FieldEmailSecondary Field = "email_secondary"
	FieldPhone          Field = "phone"
	FieldPhoneSecondary Field = "phone_secondary"
	FieldCompany        Field = "company"
	FieldTitle          Field = "title"
	FieldDepartment     Field = "department"
	FieldBirthday       Field = "birthday"
	FieldAddress        Field = "address"
	FieldNotes          Field = "notes"
	FieldLabels         Field = "labels"
)

// Fields lists every canonical field in display order.
var Fields = []Field{
	FieldFirstName,
	FieldLastName,
	FieldFullName,
	FieldEmail,
	FieldEmailSecondary,
	FieldPhone,
	FieldPhoneSecondary,
	FieldCompany,
	FieldTitle,
	FieldDepartment,
	FieldBirthday,
	FieldAddress,
	FieldNotes,
	FieldLabels,
}

// ColumnMapping maps a canonical field to a source column header.
// An absent or empty entry means the field is not populated from the file.
type ColumnMapping map[Field]string
