// ABOUTME: Tests for import command flag parsing and mapping overrides
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticnutai/crmport/importer"
	"github.com/ticnutai/crmport/models"
)

func TestMapOverridesSet(t *testing.T) {
	overrides := make(mapOverrides)

	require.NoError(t, overrides.Set("full_name=Who"))
	require.NoError(t, overrides.Set("email=Mail"))
	assert.Equal(t, "Who", overrides[models.FieldFullName])
	assert.Equal(t, "Mail", overrides[models.FieldEmail])

	assert.Error(t, overrides.Set("nonsense"))
	assert.Error(t, overrides.Set("not_a_field=Header"))
}

func TestApplyOverridesCSV(t *testing.T) {
	src, err := importer.LoadSource("odd.csv", []byte("Who,Mail\nDana,dana@example.com\n"))
	require.NoError(t, err)

	overrides := mapOverrides{models.FieldFullName: "Who", models.FieldEmail: "Mail"}
	require.NoError(t, applyOverrides(src, overrides))

	contacts := src.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Dana", contacts[0].Name)
	assert.Equal(t, "dana@example.com", contacts[0].Email)
}

func TestApplyOverridesRejectsVCard(t *testing.T) {
	content := []byte("BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Dana Cohen\r\nEND:VCARD\r\n")
	src, err := importer.LoadSource("export.vcf", content)
	require.NoError(t, err)

	overrides := mapOverrides{models.FieldFullName: "Who"}
	assert.Error(t, applyOverrides(src, overrides))

	// No overrides is always fine.
	require.NoError(t, applyOverrides(src, nil))
}
