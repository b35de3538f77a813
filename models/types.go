// ABOUTME: Data models for wardrobe entities
// ABOUTME: Defines Clothing, Outfit, and User structs shared by storage, remote, and syncer
package models

import (
	"fmt"
	"time"
)

// Clothing is a single wardrobe item. ClientID is the client-generated UUID
// joining the local and remote copies of the item; RemoteID is the
// server-assigned primary key and is never used for matching.
type Clothing struct {
	ClientID  string     `json:"clientId"`
	RemoteID  string     `json:"_id,omitempty"`
	Name      string     `json:"name"`
	Category  Category   `json:"category"`
	Color     string     `json:"color,omitempty"`
	Brand     string     `json:"brand,omitempty"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	Seasons   []Season   `json:"seasons"`
	Occasions []Occasion `json:"occasions"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	IsSynced  bool       `json:"isSynced"`
	IsDeleted bool       `json:"isDeleted,omitempty"`
}

// ClothingForm carries the user-editable fields of a Clothing item.
type ClothingForm struct {
	Name      string     `json:"name"`
	Category  Category   `json:"category"`
	Color     string     `json:"color,omitempty"`
	Brand     string     `json:"brand,omitempty"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	Seasons   []Season   `json:"seasons"`
	Occasions []Occasion `json:"occasions"`
}

// Validate checks the required fields and enum membership of a form, and
// normalizes enum casing in place so legacy lowercase values never reach
// the store or the wire in mixed case.
func (f *ClothingForm) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	cat, err := ParseCategory(string(f.Category))
	if err != nil {
		return err
	}
	f.Category = cat
	seasons := make([]Season, 0, len(f.Seasons))
	seen := make(map[Season]struct{}, len(f.Seasons))
	for _, s := range f.Seasons {
		v, err := ParseSeason(string(s))
		if err != nil {
			return err
		}
		if _, dup := seen[v]; dup {
			return fmt.Errorf("duplicate season %q", s)
		}
		seen[v] = struct{}{}
		seasons = append(seasons, v)
	}
	if len(seasons) > 0 {
		f.Seasons = seasons
	}
	occs := make([]Occasion, 0, len(f.Occasions))
	seenOcc := make(map[Occasion]struct{}, len(f.Occasions))
	for _, o := range f.Occasions {
		v, err := ParseOccasion(string(o))
		if err != nil {
			return err
		}
		if _, dup := seenOcc[v]; dup {
			return fmt.Errorf("duplicate occasion %q", o)
		}
		seenOcc[v] = struct{}{}
		occs = append(occs, v)
	}
	if len(occs) > 0 {
		f.Occasions = occs
	}
	return nil
}

// Validate checks a stored or remote clothing record and normalizes its
// enum casing in place. A record without a clientId cannot be matched
// across stores and is rejected at the boundary.
func (c *Clothing) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("clientId is required")
	}
	form := ClothingForm{
		Name:      c.Name,
		Category:  c.Category,
		Seasons:   c.Seasons,
		Occasions: c.Occasions,
	}
	if err := form.Validate(); err != nil {
		return err
	}
	c.Category = form.Category
	c.Seasons = form.Seasons
	c.Occasions = form.Occasions
	return nil
}

// Outfit references a set of clothing items by embedded snapshot. When a
// clothing item is deleted its snapshot must be purged from every outfit.
type Outfit struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	Clothes   []Clothing `json:"clothes"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// OutfitForm carries the user-editable fields of an Outfit.
type OutfitForm struct {
	Name     string     `json:"name"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Clothes  []Clothing `json:"clothes"`
}

// User is the anonymous per-device identity row held by the remote service.
type User struct {
	ID        string    `json:"_id"`
	DeviceID  string    `json:"deviceId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
