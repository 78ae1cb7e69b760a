// ABOUTME: SQLite connection setup for the client store
// ABOUTME: Opens the database with import-friendly pragmas and initializes schema
package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// openOptions are the driver pragmas every connection gets. WAL keeps reads
// open while the import loop writes; the busy timeout rides out checkpoint
// writes from a second invocation instead of failing with "database locked".
var openOptions = url.Values{
	"_journal_mode": {"WAL"},
	"_busy_timeout": {"5000"},
	"_foreign_keys": {"on"},
}

// OpenDatabase opens (creating if needed) the client database at path and
// makes sure the schema exists.
func OpenDatabase(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?"+openOptions.Encode())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; the import run is sequential anyway.
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
