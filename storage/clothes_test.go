// ABOUTME: Tests for clothing accessors over the local store
// ABOUTME: Covers CRUD, soft-delete filtering, tombstones, and outfit purging
package storage

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/closet/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func shirtForm() models.ClothingForm {
	return models.ClothingForm{
		Name:      "White Tee",
		Category:  models.CategoryTop,
		Color:     "white",
		Seasons:   []models.Season{models.SeasonSummer},
		Occasions: []models.Occasion{models.OccasionCasual},
	}
}

func TestCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create(shirtForm())
	require.NoError(t, err)
	assert.NotEmpty(t, item.ClientID)
	assert.False(t, item.IsSynced)
	assert.False(t, item.CreatedAt.IsZero())
	assert.True(t, item.CreatedAt.Equal(item.UpdatedAt))

	got := store.GetByID(item.ClientID)
	require.NotNil(t, got)
	assert.Equal(t, "White Tee", got.Name)
	assert.Equal(t, models.CategoryTop, got.Category)

	assert.Nil(t, store.GetByID(uuid.NewString()))
}

func TestCreate_RejectsInvalidForm(t *testing.T) {
	store := newTestStore(t)

	form := shirtForm()
	form.Name = ""
	_, err := store.Create(form)
	assert.Error(t, err)

	form = shirtForm()
	form.Category = "HAT"
	_, err = store.Create(form)
	assert.Error(t, err)
}

func TestInsert_PreservesIdentityAndTimestamps(t *testing.T) {
	store := newTestStore(t)

	created := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	item := models.Clothing{
		ClientID:  uuid.NewString(),
		Name:      "Cloud Coat",
		Category:  models.CategoryOuterwear,
		CreatedAt: created,
		UpdatedAt: created,
		IsSynced:  true,
	}
	require.NoError(t, store.Insert(item))

	got := store.GetByID(item.ClientID)
	require.NotNil(t, got)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.True(t, got.UpdatedAt.Equal(created))
	assert.True(t, got.IsSynced)

	// Duplicate clientIds are rejected
	assert.Error(t, store.Insert(item))
}

func TestInsert_NormalizesLegacyEnumCasing(t *testing.T) {
	store := newTestStore(t)

	item := models.Clothing{
		ClientID: uuid.NewString(),
		Name:     "Old Shirt",
		Category: "top",
		Seasons:  []models.Season{"spring"},
	}
	require.NoError(t, store.Insert(item))

	got := store.GetByID(item.ClientID)
	require.NotNil(t, got)
	assert.Equal(t, models.CategoryTop, got.Category)
	assert.Equal(t, []models.Season{models.SeasonSpring}, got.Seasons)

	byCat := store.ByCategory(models.CategoryTop)
	require.Len(t, byCat, 1, "category filter must see normalized records")
}

func TestUpdate_RefreshesTimestampAndClearsSynced(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create(shirtForm())
	require.NoError(t, err)

	form := shirtForm()
	form.Name = "Grey Tee"
	form.Color = "grey"
	updated := store.Update(item.ClientID, form)
	require.NotNil(t, updated)
	assert.Equal(t, "Grey Tee", updated.Name)
	assert.False(t, updated.IsSynced)
	assert.False(t, updated.UpdatedAt.Before(item.UpdatedAt))

	assert.Nil(t, store.Update("missing", form))
}

func TestApplyRemote_KeepsCloudTimestamps(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create(shirtForm())
	require.NoError(t, err)

	cloudTime := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	cloud := *item
	cloud.Name = "Cloud Tee"
	cloud.UpdatedAt = cloudTime
	cloud.RemoteID = "srv-1"

	applied, err := store.ApplyRemote(cloud)
	require.NoError(t, err)
	assert.True(t, applied.IsSynced)

	got := store.GetByID(item.ClientID)
	require.NotNil(t, got)
	assert.Equal(t, "Cloud Tee", got.Name)
	assert.True(t, got.UpdatedAt.Equal(cloudTime))
	assert.True(t, got.IsSynced)

	cloud.ClientID = uuid.NewString()
	_, err = store.ApplyRemote(cloud)
	assert.Error(t, err, "applying to an absent record fails")
}

func TestDelete_SoftDeletesAndFilters(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create(shirtForm())
	require.NoError(t, err)

	require.True(t, store.Delete(item.ClientID))
	assert.False(t, store.Delete(item.ClientID), "double delete reports missing")

	assert.Empty(t, store.GetAll(false), "tombstones are hidden by default")
	all := store.GetAll(true)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsDeleted)
	assert.False(t, all[0].IsSynced)

	// GetByID still surfaces the tombstone for the syncer
	got := store.GetByID(item.ClientID)
	require.NotNil(t, got)
	assert.True(t, got.IsDeleted)
}

func TestHardDelete_RemovesRecord(t *testing.T) {
	store := newTestStore(t)

	item, err := store.Create(shirtForm())
	require.NoError(t, err)

	require.True(t, store.HardDelete(item.ClientID))
	assert.Nil(t, store.GetByID(item.ClientID))
	assert.False(t, store.HardDelete(item.ClientID))
}

func TestDelete_PurgesClothingFromOutfits(t *testing.T) {
	store := newTestStore(t)

	tee, err := store.Create(shirtForm())
	require.NoError(t, err)
	jeansForm := shirtForm()
	jeansForm.Name = "Jeans"
	jeansForm.Category = models.CategoryBottom
	jeans, err := store.Create(jeansForm)
	require.NoError(t, err)

	outfit, err := store.SaveOutfit(models.OutfitForm{
		Name:    "Weekend",
		Clothes: []models.Clothing{*tee, *jeans},
	})
	require.NoError(t, err)

	require.True(t, store.Delete(tee.ClientID))

	got := store.OutfitByID(outfit.ID)
	require.NotNil(t, got)
	require.Len(t, got.Clothes, 1)
	assert.Equal(t, jeans.ClientID, got.Clothes[0].ClientID, "other members stay untouched")
}

func TestByCategory(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Create(shirtForm())
	require.NoError(t, err)
	form := shirtForm()
	form.Name = "Jeans"
	form.Category = models.CategoryBottom
	_, err = store.Create(form)
	require.NoError(t, err)

	tops := store.ByCategory(models.CategoryTop)
	require.Len(t, tops, 1)
	assert.Equal(t, "White Tee", tops[0].Name)
	assert.Empty(t, store.ByCategory(models.CategoryShoes))
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir, nil)
	require.NoError(t, err)

	item, err := store.Create(shirtForm())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(dir, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got := reopened.GetByID(item.ClientID)
	require.NotNil(t, got)
	assert.Equal(t, item.Name, got.Name)
	assert.True(t, item.UpdatedAt.Equal(got.UpdatedAt), "timestamps survive the JSON round trip")
}
