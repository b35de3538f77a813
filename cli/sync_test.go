// ABOUTME: Tests for sync CLI commands
// ABOUTME: Covers status reporting and device initialization
package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/closet/models"
)

func TestSyncStatusCommand(t *testing.T) {
	store := newTestStore(t)
	_, err := store.Create(models.ClothingForm{Name: "Tee", Category: models.CategoryTop})
	require.NoError(t, err)
	doomed, err := store.Create(models.ClothingForm{Name: "Old", Category: models.CategoryTop})
	require.NoError(t, err)
	require.True(t, store.Delete(doomed.ClientID))

	resolver := func() (string, error) { return "dev-1", nil }
	assert.NoError(t, SyncStatusCommand(store, resolver, nil))
}

func TestSyncStatusCommand_IdentityFailure(t *testing.T) {
	store := newTestStore(t)
	resolver := func() (string, error) { return "", fmt.Errorf("no device file") }

	err := SyncStatusCommand(store, resolver, nil)
	assert.ErrorContains(t, err, "failed to resolve device identity")
}

func TestInitCommand(t *testing.T) {
	resolver := func() (string, error) { return "dev-1", nil }
	assert.NoError(t, InitCommand(resolver, nil))

	failing := func() (string, error) { return "", fmt.Errorf("disk full") }
	assert.ErrorContains(t, InitCommand(failing, nil), "failed to initialize device identity")
}
