// ABOUTME: Durable import checkpoint at an XDG state path
// ABOUTME: Saves run progress after every record so interrupted runs can resume
package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/oklog/ulid/v2"

	"github.com/ticnutai/crmport/models"
)

// checkpointMaxAge is how long a saved checkpoint stays resumable.
const checkpointMaxAge = 24 * time.Hour

var (
	// ErrNoCheckpoint means no saved import state exists.
	ErrNoCheckpoint = errors.New("no saved import state")

	// ErrStaleCheckpoint means the saved state was older than 24 hours and
	// has been discarded.
	ErrStaleCheckpoint = errors.New("saved import state is stale")
)

// Checkpoint is the durable snapshot written after every processed record.
// It is the only recovery state; there is no server-side transaction log.
type Checkpoint struct {
	RunID              string                 `json:"run_id"`
	OwnerID            string                 `json:"owner_id"`
	Contacts           []models.ParsedContact `json:"contacts"`
	LastProcessedIndex int                    `json:"last_processed_index"`
	Stats              models.ImportStats     `json:"stats"`
	Timestamp          time.Time              `json:"timestamp"`
}

// CheckpointStore reads and writes the checkpoint file.
type CheckpointStore struct {
	path string
}

// DefaultCheckpointPath returns the XDG-compliant checkpoint location.
func DefaultCheckpointPath() string {
	return filepath.Join(xdg.StateHome, "crmport", "import-checkpoint.json")
}

func NewCheckpointStore(path string) *CheckpointStore {
	if path == "" {
		path = DefaultCheckpointPath()
	}
	return &CheckpointStore{path: path}
}

// Save writes the checkpoint. A failed save must not kill a running import,
// so callers treat the error as advisory.
func (s *CheckpointStore) Save(cp *Checkpoint) error {
	cp.Timestamp = time.Now()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create checkpoint directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint file: %w", err)
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cp); err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}

	return nil
}

// Load reads the checkpoint. A checkpoint older than 24 hours is deleted and
// reported as stale.
func (s *CheckpointStore) Load() (*Checkpoint, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoCheckpoint
		}
		return nil, fmt.Errorf("failed to open checkpoint file: %w", err)
	}
	defer func() { _ = f.Close() }()

	cp := &Checkpoint{}
	if err := json.NewDecoder(f).Decode(cp); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}

	if time.Since(cp.Timestamp) > checkpointMaxAge {
		_ = s.Clear()
		return nil, ErrStaleCheckpoint
	}

	return cp, nil
}

// Clear removes the checkpoint file. Removing an absent file is not an error.
func (s *CheckpointStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// NewRunID mints a ULID identifying one import run.
func NewRunID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
