// ABOUTME: Database schema definitions and migrations
// ABOUTME: Handles SQLite table creation and initialization
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS clients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	name_clean TEXT,
	email TEXT,
	phone TEXT,
	phone_secondary TEXT,
	company TEXT,
	position TEXT,
	address TEXT,
	notes TEXT,
	labels TEXT,
	source TEXT,
	status TEXT NOT NULL DEFAULT 'active',
	owner_id TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_clients_owner_id ON clients(owner_id);
CREATE INDEX IF NOT EXISTS idx_clients_email ON clients(email);
CREATE INDEX IF NOT EXISTS idx_clients_phone ON clients(phone);
CREATE INDEX IF NOT EXISTS idx_clients_name_clean ON clients(name_clean);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
