// ABOUTME: Clothing accessors over the local store
// ABOUTME: CRUD with soft deletion, tombstone handling, and outfit purging
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harperreed/closet/models"
)

// GetAll returns every clothing item. Tombstoned items are excluded unless
// includeDeleted is set. Read failures are logged and degrade to an empty
// list.
func (s *Store) GetAll(includeDeleted bool) []models.Clothing {
	var clothes []models.Clothing
	if err := s.readList(keyClothes, &clothes); err != nil {
		s.log.Warn("failed to read clothes", zap.Error(err))
		return nil
	}
	if includeDeleted {
		return clothes
	}
	out := clothes[:0]
	for _, c := range clothes {
		if !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out
}

// GetByID looks an item up by clientId. Tombstones are returned too so the
// syncer can detect deletes that have not propagated yet. Returns nil when
// absent.
func (s *Store) GetByID(clientID string) *models.Clothing {
	for _, c := range s.GetAll(true) {
		if c.ClientID == clientID {
			item := c
			return &item
		}
	}
	return nil
}

// ByCategory returns all non-deleted items of a category.
func (s *Store) ByCategory(category models.Category) []models.Clothing {
	var out []models.Clothing
	for _, c := range s.GetAll(false) {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

// Create stamps and stores a new item from user-entered fields. The item
// gets a fresh clientId and starts unsynced.
func (s *Store) Create(form models.ClothingForm) (*models.Clothing, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}
	now := time.Now()
	item := models.Clothing{
		ClientID:  uuid.NewString(),
		Name:      form.Name,
		Category:  form.Category,
		Color:     form.Color,
		Brand:     form.Brand,
		ImageURL:  form.ImageURL,
		Seasons:   form.Seasons,
		Occasions: form.Occasions,
		CreatedAt: now,
		UpdatedAt: now,
		IsSynced:  false,
	}
	if err := s.Insert(item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Insert appends an item as-is, keeping its clientId and timestamps. The
// syncer uses this to clone cloud records locally without perturbing the
// reconciliation signal.
func (s *Store) Insert(item models.Clothing) error {
	if err := item.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var clothes []models.Clothing
	if err := s.readList(keyClothes, &clothes); err != nil {
		return err
	}
	for _, c := range clothes {
		if c.ClientID == item.ClientID {
			return fmt.Errorf("clothing %s already exists", item.ClientID)
		}
	}
	clothes = append(clothes, item)
	return s.writeList(keyClothes, clothes)
}

// Update overwrites the editable fields of an item, refreshes UpdatedAt,
// and marks it unsynced. Returns nil when the item is missing or the write
// fails.
func (s *Store) Update(clientID string, form models.ClothingForm) *models.Clothing {
	if err := form.Validate(); err != nil {
		s.log.Warn("rejected clothing update", zap.String("clientId", clientID), zap.Error(err))
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var clothes []models.Clothing
	if err := s.readList(keyClothes, &clothes); err != nil {
		s.log.Warn("failed to read clothes", zap.Error(err))
		return nil
	}
	for i := range clothes {
		if clothes[i].ClientID != clientID || clothes[i].IsDeleted {
			continue
		}
		clothes[i].Name = form.Name
		clothes[i].Category = form.Category
		clothes[i].Color = form.Color
		clothes[i].Brand = form.Brand
		clothes[i].ImageURL = form.ImageURL
		clothes[i].Seasons = form.Seasons
		clothes[i].Occasions = form.Occasions
		clothes[i].UpdatedAt = time.Now()
		clothes[i].IsSynced = false
		updated := clothes[i]
		if err := s.writeList(keyClothes, clothes); err != nil {
			s.log.Warn("failed to write clothes", zap.Error(err))
			return nil
		}
		return &updated
	}
	return nil
}

// ApplyRemote replaces the local copy of an item with its cloud version,
// keeping the cloud timestamps so a repeat sync sees both sides equal. The
// record comes back synced and undeleted.
func (s *Store) ApplyRemote(item models.Clothing) (*models.Clothing, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.IsSynced = true
	item.IsDeleted = false

	s.mu.Lock()
	defer s.mu.Unlock()

	var clothes []models.Clothing
	if err := s.readList(keyClothes, &clothes); err != nil {
		return nil, err
	}
	for i := range clothes {
		if clothes[i].ClientID == item.ClientID {
			clothes[i] = item
			if err := s.writeList(keyClothes, clothes); err != nil {
				return nil, err
			}
			return &item, nil
		}
	}
	return nil, fmt.Errorf("clothing %s not found", item.ClientID)
}

// Delete soft-deletes an item: it stays in the store as a tombstone until
// the syncer confirms the remote side no longer has it. Outfits referencing
// the item are purged right away. Returns false when the item is missing.
func (s *Store) Delete(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var clothes []models.Clothing
	if err := s.readList(keyClothes, &clothes); err != nil {
		s.log.Warn("failed to read clothes", zap.Error(err))
		return false
	}
	found := false
	for i := range clothes {
		if clothes[i].ClientID == clientID && !clothes[i].IsDeleted {
			clothes[i].IsDeleted = true
			clothes[i].IsSynced = false
			clothes[i].UpdatedAt = time.Now()
			found = true
			break
		}
	}
	if !found {
		return false
	}
	if err := s.writeList(keyClothes, clothes); err != nil {
		s.log.Warn("failed to write clothes", zap.Error(err))
		return false
	}
	if err := s.purgeFromOutfits(clientID); err != nil {
		s.log.Warn("failed to purge clothing from outfits", zap.String("clientId", clientID), zap.Error(err))
	}
	return true
}

// HardDelete removes a record entirely. The syncer calls this once a
// tombstone's deletion has propagated remotely. Returns false when absent.
func (s *Store) HardDelete(clientID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var clothes []models.Clothing
	if err := s.readList(keyClothes, &clothes); err != nil {
		s.log.Warn("failed to read clothes", zap.Error(err))
		return false
	}
	kept := clothes[:0]
	for _, c := range clothes {
		if c.ClientID != clientID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(clothes) {
		return false
	}
	if err := s.writeList(keyClothes, kept); err != nil {
		s.log.Warn("failed to write clothes", zap.Error(err))
		return false
	}
	return true
}

// purgeFromOutfits drops the clothing snapshot from every outfit so no
// outfit keeps a dangling reference. Caller holds s.mu.
func (s *Store) purgeFromOutfits(clientID string) error {
	var outfits []models.Outfit
	if err := s.readList(keyOutfits, &outfits); err != nil {
		return err
	}
	changed := false
	for i := range outfits {
		kept := outfits[i].Clothes[:0]
		for _, c := range outfits[i].Clothes {
			if c.ClientID != clientID {
				kept = append(kept, c)
			}
		}
		if len(kept) != len(outfits[i].Clothes) {
			outfits[i].Clothes = kept
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.writeList(keyOutfits, outfits)
}
