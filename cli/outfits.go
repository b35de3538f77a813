// ABOUTME: Outfit CLI commands
// ABOUTME: Commands for composing and managing outfits from wardrobe items
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/closet/models"
	"github.com/harperreed/closet/storage"
)

// AddOutfitCommand composes a new outfit from existing clothing items.
func AddOutfitCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("add-outfit", flag.ExitOnError)
	name := fs.String("name", "", "Outfit name (required)")
	image := fs.String("image", "", "Image URL")
	itemsFlag := fs.String("items", "", "Comma-separated clothing item IDs")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}

	var clothes []models.Clothing
	for _, id := range splitList(*itemsFlag) {
		item := store.GetByID(id)
		if item == nil || item.IsDeleted {
			return fmt.Errorf("item not found: %s", id)
		}
		clothes = append(clothes, *item)
	}

	outfit, err := store.SaveOutfit(models.OutfitForm{
		Name:     *name,
		ImageURL: *image,
		Clothes:  clothes,
	})
	if err != nil {
		return fmt.Errorf("failed to create outfit: %w", err)
	}

	fmt.Printf("✓ Outfit created: %s (ID: %s)\n", outfit.Name, outfit.ID)
	fmt.Printf("  Items: %d\n", len(outfit.Clothes))
	return nil
}

// ListOutfitsCommand lists all outfits.
func ListOutfitsCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("list-outfits", flag.ExitOnError)
	_ = fs.Parse(args)

	outfits := store.Outfits()
	if len(outfits) == 0 {
		fmt.Println("No outfits found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tITEMS\tUPDATED\tID")
	_, _ = fmt.Fprintln(w, "----\t-----\t-------\t--")
	for _, outfit := range outfits {
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			outfit.Name, len(outfit.Clothes),
			outfit.UpdatedAt.Format("2006-01-02"), shortID(outfit.ID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d outfit(s)\n", len(outfits))
	return nil
}

// ShowOutfitCommand prints one outfit and the items it contains.
func ShowOutfitCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("show-outfit", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("outfit ID is required")
	}

	outfit := store.OutfitByID(fs.Args()[0])
	if outfit == nil {
		return fmt.Errorf("outfit not found: %s", fs.Args()[0])
	}

	fmt.Printf("Name:    %s\n", outfit.Name)
	if outfit.ImageURL != "" {
		fmt.Printf("Image:   %s\n", outfit.ImageURL)
	}
	fmt.Printf("Created: %s\n", outfit.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("ID:      %s\n", outfit.ID)

	if len(outfit.Clothes) == 0 {
		fmt.Println("\nNo items in this outfit")
		return nil
	}

	fmt.Println("\nItems:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, item := range outfit.Clothes {
		_, _ = fmt.Fprintf(w, "  %s\t%s\t%s\n", item.Name, item.Category, shortID(item.ClientID))
	}
	_ = w.Flush()
	return nil
}

// UpdateOutfitCommand renames an outfit or replaces its items. Flags left
// empty keep the outfit's current values.
func UpdateOutfitCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("update-outfit", flag.ExitOnError)
	name := fs.String("name", "", "Outfit name")
	image := fs.String("image", "", "Image URL")
	itemsFlag := fs.String("items", "", "Comma-separated clothing item IDs (replaces current items)")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("outfit ID is required")
	}
	id := fs.Args()[0]

	existing := store.OutfitByID(id)
	if existing == nil {
		return fmt.Errorf("outfit not found: %s", id)
	}

	form := models.OutfitForm{
		Name:     existing.Name,
		ImageURL: existing.ImageURL,
		Clothes:  existing.Clothes,
	}
	if *name != "" {
		form.Name = *name
	}
	if *image != "" {
		form.ImageURL = *image
	}
	if *itemsFlag != "" {
		var clothes []models.Clothing
		for _, itemID := range splitList(*itemsFlag) {
			item := store.GetByID(itemID)
			if item == nil || item.IsDeleted {
				return fmt.Errorf("item not found: %s", itemID)
			}
			clothes = append(clothes, *item)
		}
		form.Clothes = clothes
	}

	updated := store.UpdateOutfit(id, form)
	if updated == nil {
		return fmt.Errorf("failed to update outfit: %s", id)
	}

	fmt.Printf("✓ Outfit updated: %s (ID: %s)\n", updated.Name, id)
	return nil
}

// DeleteOutfitCommand removes an outfit. Outfits are local-only so no
// tombstone is kept.
func DeleteOutfitCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("delete-outfit", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("outfit ID is required")
	}

	if !store.DeleteOutfit(fs.Args()[0]) {
		return fmt.Errorf("outfit not found: %s", fs.Args()[0])
	}

	fmt.Printf("✓ Outfit deleted: %s\n", fs.Args()[0])
	return nil
}
