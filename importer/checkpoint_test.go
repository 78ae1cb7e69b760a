// ABOUTME: Tests for checkpoint persistence, staleness, and cleanup
package importer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticnutai/crmport/models"
)

func testCheckpointStore(t *testing.T) *CheckpointStore {
	t.Helper()
	return NewCheckpointStore(filepath.Join(t.TempDir(), "import-checkpoint.json"))
}

func TestCheckpointRoundTrip(t *testing.T) {
	store := testCheckpointStore(t)

	saved := &Checkpoint{
		RunID:   NewRunID(),
		OwnerID: "owner-1",
		Contacts: []models.ParsedContact{
			{Name: "Dana Cohen", Email: "dana@example.com", Selected: true, Action: models.ActionImport},
		},
		LastProcessedIndex: 1,
		Stats:              models.ImportStats{Total: 1, Imported: 1},
	}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved.RunID, loaded.RunID)
	assert.Equal(t, saved.OwnerID, loaded.OwnerID)
	assert.Equal(t, 1, loaded.LastProcessedIndex)
	assert.Equal(t, saved.Stats, loaded.Stats)
	require.Len(t, loaded.Contacts, 1)
	assert.Equal(t, "Dana Cohen", loaded.Contacts[0].Name)
	assert.False(t, loaded.Timestamp.IsZero())
}

func TestCheckpointLoadMissing(t *testing.T) {
	store := testCheckpointStore(t)

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoCheckpoint)
}

func TestCheckpointStaleIsDeleted(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "import-checkpoint.json")
	store := NewCheckpointStore(path)

	old := &Checkpoint{
		RunID:     NewRunID(),
		Timestamp: time.Now().Add(-25 * time.Hour),
	}
	data, err := json.Marshal(old)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0600))

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrStaleCheckpoint)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "stale checkpoint should be removed")
}

func TestCheckpointClear(t *testing.T) {
	store := testCheckpointStore(t)

	require.NoError(t, store.Save(&Checkpoint{RunID: NewRunID()}))
	require.NoError(t, store.Clear())

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNoCheckpoint)

	// Clearing twice is fine.
	assert.NoError(t, store.Clear())
}

func TestNewRunIDUnique(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	assert.Len(t, a, 26)
	assert.NotEqual(t, a, b)
}
