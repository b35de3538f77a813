// ABOUTME: Tests for clothing and outfit CLI commands
// ABOUTME: Exercises commands against a real store in a temp directory
package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/closet/models"
	"github.com/harperreed/closet/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestAddClothingCommand(t *testing.T) {
	store := newTestStore(t)

	err := AddClothingCommand(store, []string{
		"--name", "Blue Tee",
		"--category", "top",
		"--color", "blue",
		"--seasons", "spring,summer",
	})
	require.NoError(t, err)

	items := store.GetAll(false)
	require.Len(t, items, 1)
	assert.Equal(t, "Blue Tee", items[0].Name)
	assert.Equal(t, models.CategoryTop, items[0].Category, "category is normalized")
	assert.Equal(t, []models.Season{models.SeasonSpring, models.SeasonSummer}, items[0].Seasons)
	assert.False(t, items[0].IsSynced)
}

func TestAddClothingCommand_RequiresNameAndCategory(t *testing.T) {
	store := newTestStore(t)

	err := AddClothingCommand(store, []string{"--category", "TOP"})
	assert.ErrorContains(t, err, "--name is required")

	err = AddClothingCommand(store, []string{"--name", "Tee"})
	assert.ErrorContains(t, err, "--category is required")
}

func TestAddClothingCommand_RejectsUnknownCategory(t *testing.T) {
	store := newTestStore(t)

	err := AddClothingCommand(store, []string{"--name", "Tee", "--category", "HEADWEAR"})
	assert.ErrorContains(t, err, "unknown category")
	assert.Empty(t, store.GetAll(false))
}

func TestUpdateClothingCommand_KeepsUnsetFields(t *testing.T) {
	store := newTestStore(t)
	item, err := store.Create(models.ClothingForm{
		Name: "Tee", Category: models.CategoryTop, Color: "blue",
	})
	require.NoError(t, err)

	err = UpdateClothingCommand(store, []string{"--name", "Red Tee", item.ClientID})
	require.NoError(t, err)

	got := store.GetByID(item.ClientID)
	require.NotNil(t, got)
	assert.Equal(t, "Red Tee", got.Name)
	assert.Equal(t, "blue", got.Color, "unset flags keep existing values")
}

func TestUpdateClothingCommand_UnknownItem(t *testing.T) {
	store := newTestStore(t)
	err := UpdateClothingCommand(store, []string{"--name", "X", "missing-id"})
	assert.ErrorContains(t, err, "item not found")
}

func TestDeleteClothingCommand(t *testing.T) {
	store := newTestStore(t)
	item, err := store.Create(models.ClothingForm{Name: "Tee", Category: models.CategoryTop})
	require.NoError(t, err)

	require.NoError(t, DeleteClothingCommand(store, []string{item.ClientID}))

	assert.Empty(t, store.GetAll(false))
	got := store.GetByID(item.ClientID)
	require.NotNil(t, got, "tombstone remains until synced")
	assert.True(t, got.IsDeleted)

	err = DeleteClothingCommand(store, []string{item.ClientID})
	assert.ErrorContains(t, err, "item not found", "double delete reports not found")
}

func TestOutfitCommands(t *testing.T) {
	store := newTestStore(t)
	item, err := store.Create(models.ClothingForm{Name: "Tee", Category: models.CategoryTop})
	require.NoError(t, err)

	err = AddOutfitCommand(store, []string{"--name", "Weekend", "--items", item.ClientID})
	require.NoError(t, err)

	outfits := store.Outfits()
	require.Len(t, outfits, 1)
	assert.Equal(t, "Weekend", outfits[0].Name)
	require.Len(t, outfits[0].Clothes, 1)

	err = UpdateOutfitCommand(store, []string{"--name", "Saturday", outfits[0].ID})
	require.NoError(t, err)
	updated := store.OutfitByID(outfits[0].ID)
	require.NotNil(t, updated)
	assert.Equal(t, "Saturday", updated.Name)
	assert.Len(t, updated.Clothes, 1, "items kept when --items is unset")

	require.NoError(t, DeleteOutfitCommand(store, []string{outfits[0].ID}))
	assert.Empty(t, store.Outfits())
}

func TestAddOutfitCommand_UnknownItem(t *testing.T) {
	store := newTestStore(t)
	err := AddOutfitCommand(store, []string{"--name", "Weekend", "--items", "nope"})
	assert.ErrorContains(t, err, "item not found")
}
