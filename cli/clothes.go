// ABOUTME: Clothing CLI commands
// ABOUTME: Human-friendly commands for managing wardrobe items
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/harperreed/closet/models"
	"github.com/harperreed/closet/storage"
)

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func formFromFlags(name, category, color, brand, imageURL, seasons, occasions string) (models.ClothingForm, error) {
	form := models.ClothingForm{
		Name:     name,
		Color:    color,
		Brand:    brand,
		ImageURL: imageURL,
	}

	cat, err := models.ParseCategory(category)
	if err != nil {
		return form, err
	}
	form.Category = cat

	form.Seasons, err = models.ParseSeasons(splitList(seasons))
	if err != nil {
		return form, err
	}
	form.Occasions, err = models.ParseOccasions(splitList(occasions))
	if err != nil {
		return form, err
	}
	return form, nil
}

// AddClothingCommand adds a new clothing item.
func AddClothingCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	name := fs.String("name", "", "Item name (required)")
	category := fs.String("category", "", "Category: TOP, BOTTOM, DRESS, SHOES, ACCESSORIES, OUTERWEAR, UNDERWEAR, SPORTSWEAR, SWIMWEAR, OTHER (required)")
	color := fs.String("color", "", "Color")
	brand := fs.String("brand", "", "Brand")
	image := fs.String("image", "", "Image URL")
	seasonsFlag := fs.String("seasons", "", "Comma-separated seasons: SPRING, SUMMER, AUTUMN, WINTER")
	occasionsFlag := fs.String("occasions", "", "Comma-separated occasions: CASUAL, FORMAL, SPORT, PARTY, WORK, HOME, TRAVEL")
	_ = fs.Parse(args)

	if *name == "" {
		return fmt.Errorf("--name is required")
	}
	if *category == "" {
		return fmt.Errorf("--category is required")
	}

	form, err := formFromFlags(*name, *category, *color, *brand, *image, *seasonsFlag, *occasionsFlag)
	if err != nil {
		return err
	}

	item, err := store.Create(form)
	if err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	fmt.Printf("✓ Item created: %s (ID: %s)\n", item.Name, item.ClientID)
	fmt.Printf("  Category: %s\n", item.Category)
	if item.Color != "" {
		fmt.Printf("  Color: %s\n", item.Color)
	}
	if item.Brand != "" {
		fmt.Printf("  Brand: %s\n", item.Brand)
	}
	return nil
}

// ListClothingCommand lists clothing items.
func ListClothingCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	category := fs.String("category", "", "Filter by category")
	_ = fs.Parse(args)

	var items []models.Clothing
	if *category != "" {
		cat, err := models.ParseCategory(*category)
		if err != nil {
			return err
		}
		items = store.ByCategory(cat)
	} else {
		items = store.GetAll(false)
	}

	if len(items) == 0 {
		fmt.Println("No clothing items found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCATEGORY\tCOLOR\tBRAND\tSYNCED\tID")
	_, _ = fmt.Fprintln(w, "----\t--------\t-----\t-----\t------\t--")

	for _, item := range items {
		color := item.Color
		if color == "" {
			color = "-"
		}
		brand := item.Brand
		if brand == "" {
			brand = "-"
		}
		synced := "no"
		if item.IsSynced {
			synced = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			item.Name, item.Category, color, brand, synced, shortID(item.ClientID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d item(s)\n", len(items))
	return nil
}

// ShowClothingCommand prints the full detail of one item.
func ShowClothingCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("item ID is required")
	}

	item := store.GetByID(fs.Args()[0])
	if item == nil || item.IsDeleted {
		return fmt.Errorf("item not found: %s", fs.Args()[0])
	}

	fmt.Printf("Name:      %s\n", item.Name)
	fmt.Printf("Category:  %s\n", item.Category)
	if item.Color != "" {
		fmt.Printf("Color:     %s\n", item.Color)
	}
	if item.Brand != "" {
		fmt.Printf("Brand:     %s\n", item.Brand)
	}
	if item.ImageURL != "" {
		fmt.Printf("Image:     %s\n", item.ImageURL)
	}
	if len(item.Seasons) > 0 {
		fmt.Printf("Seasons:   %s\n", joinSeasons(item.Seasons))
	}
	if len(item.Occasions) > 0 {
		fmt.Printf("Occasions: %s\n", joinOccasions(item.Occasions))
	}
	fmt.Printf("Created:   %s\n", item.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Updated:   %s\n", item.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("Synced:    %v\n", item.IsSynced)
	fmt.Printf("ID:        %s\n", item.ClientID)
	return nil
}

// UpdateClothingCommand updates an existing item. Flags left empty keep
// the item's current values.
func UpdateClothingCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	name := fs.String("name", "", "Item name")
	category := fs.String("category", "", "Category")
	color := fs.String("color", "", "Color")
	brand := fs.String("brand", "", "Brand")
	image := fs.String("image", "", "Image URL")
	seasonsFlag := fs.String("seasons", "", "Comma-separated seasons")
	occasionsFlag := fs.String("occasions", "", "Comma-separated occasions")
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("item ID is required")
	}
	clientID := fs.Args()[0]

	existing := store.GetByID(clientID)
	if existing == nil || existing.IsDeleted {
		return fmt.Errorf("item not found: %s", clientID)
	}

	form := models.ClothingForm{
		Name:      existing.Name,
		Category:  existing.Category,
		Color:     existing.Color,
		Brand:     existing.Brand,
		ImageURL:  existing.ImageURL,
		Seasons:   existing.Seasons,
		Occasions: existing.Occasions,
	}

	if *name != "" {
		form.Name = *name
	}
	if *category != "" {
		cat, err := models.ParseCategory(*category)
		if err != nil {
			return err
		}
		form.Category = cat
	}
	if *color != "" {
		form.Color = *color
	}
	if *brand != "" {
		form.Brand = *brand
	}
	if *image != "" {
		form.ImageURL = *image
	}
	if *seasonsFlag != "" {
		parsed, err := models.ParseSeasons(splitList(*seasonsFlag))
		if err != nil {
			return err
		}
		form.Seasons = parsed
	}
	if *occasionsFlag != "" {
		parsed, err := models.ParseOccasions(splitList(*occasionsFlag))
		if err != nil {
			return err
		}
		form.Occasions = parsed
	}

	updated := store.Update(clientID, form)
	if updated == nil {
		return fmt.Errorf("failed to update item: %s", clientID)
	}

	fmt.Printf("✓ Item updated: %s (ID: %s)\n", updated.Name, clientID)
	return nil
}

// DeleteClothingCommand soft-deletes an item so the next sync can
// propagate the deletion to the remote service.
func DeleteClothingCommand(store *storage.Store, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) < 1 {
		return fmt.Errorf("item ID is required")
	}
	clientID := fs.Args()[0]

	if !store.Delete(clientID) {
		return fmt.Errorf("item not found: %s", clientID)
	}

	fmt.Printf("✓ Item deleted: %s\n", clientID)
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func joinSeasons(seasons []models.Season) string {
	parts := make([]string, len(seasons))
	for i, s := range seasons {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func joinOccasions(occasions []models.Occasion) string {
	parts := make([]string, len(occasions))
	for i, o := range occasions {
		parts[i] = string(o)
	}
	return strings.Join(parts, ", ")
}
