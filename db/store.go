// ABOUTME: ClientStore adapter over the SQLite client table
// ABOUTME: Implements the importer's capability interface for select/insert/update
package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/ticnutai/crmport/models"
)

// Store satisfies importer.ClientStore. The pipeline only ever sees these
// operations; table names and constraints stay on this side.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]models.Client, error) {
	return ListClientsByOwner(ctx, s.db, ownerID)
}

func (s *Store) Insert(ctx context.Context, client *models.Client) (uuid.UUID, error) {
	if err := CreateClient(ctx, s.db, client); err != nil {
		return uuid.Nil, err
	}
	return client.ID, nil
}

func (s *Store) UpdateFields(ctx context.Context, id uuid.UUID, patch map[string]string) error {
	return UpdateClientFields(ctx, s.db, id, patch)
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*models.Client, error) {
	return GetClient(ctx, s.db, id)
}
