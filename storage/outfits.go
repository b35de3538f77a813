// ABOUTME: Outfit accessors over the local store
// ABOUTME: CRUD for outfits holding embedded clothing snapshots
package storage

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/harperreed/closet/models"
)

// newOutfitID generates a sortable ULID for a new outfit.
func newOutfitID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Outfits returns all stored outfits. Read failures degrade to an empty
// list.
func (s *Store) Outfits() []models.Outfit {
	var outfits []models.Outfit
	if err := s.readList(keyOutfits, &outfits); err != nil {
		s.log.Warn("failed to read outfits", zap.Error(err))
		return nil
	}
	return outfits
}

// OutfitByID returns an outfit by id, or nil when absent.
func (s *Store) OutfitByID(id string) *models.Outfit {
	for _, o := range s.Outfits() {
		if o.ID == id {
			outfit := o
			return &outfit
		}
	}
	return nil
}

// SaveOutfit stamps and stores a new outfit.
func (s *Store) SaveOutfit(form models.OutfitForm) (*models.Outfit, error) {
	if form.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	now := time.Now()
	outfit := models.Outfit{
		ID:        newOutfitID(),
		Name:      form.Name,
		ImageURL:  form.ImageURL,
		Clothes:   form.Clothes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var outfits []models.Outfit
	if err := s.readList(keyOutfits, &outfits); err != nil {
		return nil, err
	}
	outfits = append(outfits, outfit)
	if err := s.writeList(keyOutfits, outfits); err != nil {
		return nil, err
	}
	return &outfit, nil
}

// UpdateOutfit overwrites an outfit's fields and refreshes UpdatedAt.
// Returns nil when the outfit is missing or the write fails.
func (s *Store) UpdateOutfit(id string, form models.OutfitForm) *models.Outfit {
	s.mu.Lock()
	defer s.mu.Unlock()

	var outfits []models.Outfit
	if err := s.readList(keyOutfits, &outfits); err != nil {
		s.log.Warn("failed to read outfits", zap.Error(err))
		return nil
	}
	for i := range outfits {
		if outfits[i].ID != id {
			continue
		}
		outfits[i].Name = form.Name
		outfits[i].ImageURL = form.ImageURL
		outfits[i].Clothes = form.Clothes
		outfits[i].UpdatedAt = time.Now()
		updated := outfits[i]
		if err := s.writeList(keyOutfits, outfits); err != nil {
			s.log.Warn("failed to write outfits", zap.Error(err))
			return nil
		}
		return &updated
	}
	return nil
}

// DeleteOutfit removes an outfit. Returns false when absent.
func (s *Store) DeleteOutfit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	var outfits []models.Outfit
	if err := s.readList(keyOutfits, &outfits); err != nil {
		s.log.Warn("failed to read outfits", zap.Error(err))
		return false
	}
	kept := outfits[:0]
	for _, o := range outfits {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(outfits) {
		return false
	}
	if err := s.writeList(keyOutfits, kept); err != nil {
		s.log.Warn("failed to write outfits", zap.Error(err))
		return false
	}
	return true
}
