// ABOUTME: Client database operations
// ABOUTME: Handles CRUD operations, owner-scoped listing, and partial field updates
package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ticnutai/crmport/models"
)

const clientColumns = `id, name, name_clean, email, phone, phone_secondary, company, position, address, notes, labels, source, status, owner_id, created_at, updated_at`

// updatableColumns is the allowlist for partial updates. Anything outside it
// is rejected so a bad mapping cannot touch identity or ownership columns.
var updatableColumns = map[string]bool{
	"name":            true,
	"name_clean":      true,
	"email":           true,
	"phone":           true,
	"phone_secondary": true,
	"company":         true,
	"position":        true,
	"address":         true,
	"notes":           true,
	"labels":          true,
}

func CreateClient(ctx context.Context, db *sql.DB, client *models.Client) error {
	client.ID = uuid.New()
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, client.ID.String(), client.Name, client.NameClean, client.Email, client.Phone,
		client.PhoneSecondary, client.Company, client.Position, client.Address,
		client.Notes, client.Labels, client.Source, client.Status, client.OwnerID,
		client.CreatedAt, client.UpdatedAt)

	return err
}

func GetClient(ctx context.Context, db *sql.DB, id uuid.UUID) (*models.Client, error) {
	row := db.QueryRowContext(ctx, `
		SELECT `+clientColumns+` FROM clients WHERE id = ?
	`, id.String())

	client, err := scanClient(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// ListClientsByOwner returns every client belonging to one owner, in creation
// order. The importer builds its duplicate indexes from this snapshot.
func ListClientsByOwner(ctx context.Context, db *sql.DB, ownerID string) ([]models.Client, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+clientColumns+` FROM clients
		WHERE owner_id = ?
		ORDER BY created_at, id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}

	return clients, rows.Err()
}

// FindClients searches name and email for the CLI list command.
func FindClients(ctx context.Context, db *sql.DB, query string, limit int) ([]models.Client, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows *sql.Rows
	var err error

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		rows, err = db.QueryContext(ctx, `
			SELECT `+clientColumns+` FROM clients
			WHERE LOWER(name) LIKE ? OR LOWER(email) LIKE ?
			ORDER BY created_at DESC
			LIMIT ?
		`, pattern, pattern, limit)
	} else {
		rows, err = db.QueryContext(ctx, `
			SELECT `+clientColumns+` FROM clients
			ORDER BY created_at DESC
			LIMIT ?
		`, limit)
	}

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, *client)
	}

	return clients, rows.Err()
}

// UpdateClientFields applies a partial patch by column name. Columns outside
// the allowlist fail the whole patch before anything is written.
func UpdateClientFields(ctx context.Context, db *sql.DB, id uuid.UUID, patch map[string]string) error {
	if len(patch) == 0 {
		return nil
	}

	columns := make([]string, 0, len(patch))
	for column := range patch {
		if !updatableColumns[column] {
			return fmt.Errorf("column %q is not updatable", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	var sets []string
	var args []interface{}
	for _, column := range columns {
		sets = append(sets, column+" = ?")
		args = append(args, patch[column])
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now())
	args = append(args, id.String())

	res, err := db.ExecContext(ctx, `UPDATE clients SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("client %s not found", id)
	}

	return nil
}

func DeleteClient(ctx context.Context, db *sql.DB, id uuid.UUID) error {
	_, err := db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id.String())
	return err
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row scanner) (*models.Client, error) {
	client := &models.Client{}
	var nameClean, email, phone, phoneSecondary sql.NullString
	var company, position, address, notes, labels, source sql.NullString

	err := row.Scan(
		&client.ID,
		&client.Name,
		&nameClean,
		&email,
		&phone,
		&phoneSecondary,
		&company,
		&position,
		&address,
		&notes,
		&labels,
		&source,
		&client.Status,
		&client.OwnerID,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	client.NameClean = nameClean.String
	client.Email = email.String
	client.Phone = phone.String
	client.PhoneSecondary = phoneSecondary.String
	client.Company = company.String
	client.Position = position.String
	client.Address = address.String
	client.Notes = notes.String
	client.Labels = labels.String
	client.Source = source.String

	return client, nil
}
