// ABOUTME: Capability interface the import run consumes
// ABOUTME: Select, insert, and partial update against the client table
package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/ticnutai/crmport/models"
)

// ClientStore is everything the pipeline needs from the record store. Store
// failures come back as returned errors; the runner treats anything that
// panics as fatal to the run.
type ClientStore interface {
	ListByOwner(ctx context.Context, ownerID string) ([]models.Client, error)
	Insert(ctx context.Context, client *models.Client) (uuid.UUID, error)
	UpdateFields(ctx context.Context, id uuid.UUID, patch map[string]string) error
	Get(ctx context.Context, id uuid.UUID) (*models.Client, error)
}
