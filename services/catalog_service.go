package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/wizreet/cocobakes/models"
	"gorm.io/gorm"
)

// DefaultCatalog is the embedded static menu: the brownie bases, the bounded
// topping and add-on groups, and the quantity presets with their promotional
// discounts. cmd/seed pushes this fixture into Postgres; the server falls
// back to it when the catalog tables are missing or empty, so a fresh
// checkout still serves the full builder.
func DefaultCatalog() *models.Catalog {
	return &models.Catalog{
		Base: models.CatalogCategory{
			ID:            "base",
			Name:          "Pick your brownie",
			Description:   "Every order starts with one of our signature bakes",
			Required:      true,
			MaxSelections: 1,
			Options: []models.CatalogItem{
				{ID: "classic", Name: "Classic Chocolate Brownie", Price: 150, Description: "Our original fudgy dark chocolate brownie"},
				{ID: "double-chocolate", Name: "Double Chocolate Brownie", Price: 180, Description: "Extra cocoa and molten chocolate chunks"},
				{ID: "blondie", Name: "Butterscotch Blondie", Price: 170, Description: "Golden brown butter blondie with butterscotch"},
				{ID: "red-velvet", Name: "Red Velvet Brownie", Price: 200, Description: "Red velvet swirled with cream cheese"},
				{ID: "biscoff", Name: "Biscoff Brownie", Price: 220, Description: "Lotus Biscoff spread and crushed biscuits"},
			},
		},
		Toppings: models.CatalogCategory{
			ID:            "toppings",
			Name:          "Toppings",
			Description:   "Pick up to three",
			MaxSelections: 3,
			Options: []models.CatalogItem{
				{ID: "walnuts", Name: "Roasted Walnuts", Price: 30},
				{ID: "oreo", Name: "Oreo Crumble", Price: 25},
				{ID: "choco-chips", Name: "Chocolate Chips", Price: 20},
				{ID: "caramel", Name: "Salted Caramel Drizzle", Price: 25},
				{ID: "sprinkles", Name: "Rainbow Sprinkles", Price: 15},
			},
		},
		Extras: models.CatalogCategory{
			ID:            "extras",
			Name:          "Add-ons",
			Description:   "Pick up to two",
			MaxSelections: 2,
			Options: []models.CatalogItem{
				{ID: "ice-cream", Name: "Vanilla Ice Cream Scoop", Price: 80},
				{ID: "gift-wrap", Name: "Gift Box Wrapping", Price: 50},
				{ID: "greeting-card", Name: "Handwritten Greeting Card", Price: 30},
			},
		},
		Quantity: models.QuantityOptions{
			Min:     1,
			Max:     24,
			Default: 4,
			Presets: []models.QuantityPreset{
				{Quantity: 6, Label: "Half Dozen Box", DiscountPercent: 5},
				{Quantity: 12, Label: "Dozen Box", DiscountPercent: 10},
				{Quantity: 24, Label: "Party Pack", DiscountPercent: 15},
			},
		},
	}
}

// LoadCatalog reads the seeded catalog tables into the in-memory registry.
// The result is read-only for the lifetime of the process; there is no
// runtime mutation API for the menu. Any problem with the stored catalog
// (missing tables, empty menu, bad shape) falls back to the embedded fixture
// rather than failing startup.
func LoadCatalog(ctx context.Context, db *gorm.DB) *models.Catalog {
	if db == nil {
		log.Println("⚠️ [catalog] no database handle, serving embedded catalog")
		return DefaultCatalog()
	}

	var rows []models.CatalogCategoryRow
	if err := db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		Find(&rows).Error; err != nil {
		log.Printf("⚠️ [catalog] failed to read catalog tables (%v), serving embedded catalog", err)
		return DefaultCatalog()
	}
	if len(rows) == 0 {
		log.Println("⚠️ [catalog] catalog tables empty (run cmd/seed), serving embedded catalog")
		return DefaultCatalog()
	}

	catalog := &models.Catalog{Quantity: DefaultCatalog().Quantity}
	for _, row := range rows {
		cat := models.CatalogCategory{
			ID:            row.Key,
			Name:          row.Name,
			Description:   row.Description,
			Required:      row.Required,
			MaxSelections: row.MaxSelections,
		}
		for _, item := range row.Items {
			cat.Options = append(cat.Options, models.CatalogItem{
				ID:          item.Key,
				Name:        item.Name,
				Price:       item.Price,
				Description: item.Description,
			})
		}
		switch row.Key {
		case "base":
			catalog.Base = cat
		case "toppings":
			catalog.Toppings = cat
		case "extras":
			catalog.Extras = cat
		default:
			log.Printf("⚠️ [catalog] skipping unknown category %q", row.Key)
		}
	}

	var rule models.QuantityRuleRow
	if err := db.WithContext(ctx).First(&rule).Error; err != nil {
		log.Printf("⚠️ [catalog] no quantity rule row (%v), keeping embedded quantity options", err)
	} else {
		var presets []models.QuantityPreset
		if err := json.Unmarshal(rule.Presets, &presets); err != nil {
			log.Printf("⚠️ [catalog] bad presets JSON (%v), keeping embedded presets", err)
			presets = DefaultCatalog().Quantity.Presets
		}
		catalog.Quantity = models.QuantityOptions{
			Min:     rule.MinQuantity,
			Max:     rule.MaxQuantity,
			Default: rule.DefaultQuantity,
			Presets: presets,
		}
	}

	if err := ValidateCatalog(catalog); err != nil {
		log.Printf("⚠️ [catalog] stored catalog invalid (%v), serving embedded catalog", err)
		return DefaultCatalog()
	}

	log.Printf("✅ Catalog loaded: %d bases, %d toppings, %d extras, %d presets",
		len(catalog.Base.Options), len(catalog.Toppings.Options),
		len(catalog.Extras.Options), len(catalog.Quantity.Presets))
	return catalog
}

// ValidateCatalog enforces the registry invariants: non-empty option lists,
// maxSelections >= 1, unique item ids per category, sane quantity bounds and
// preset percentages.
func ValidateCatalog(catalog *models.Catalog) error {
	for _, cat := range []*models.CatalogCategory{&catalog.Base, &catalog.Toppings, &catalog.Extras} {
		if len(cat.Options) == 0 {
			return fmt.Errorf("category %q has no options", cat.ID)
		}
		if cat.MaxSelections < 1 {
			return fmt.Errorf("category %q has max_selections %d", cat.ID, cat.MaxSelections)
		}
		seen := make(map[string]bool, len(cat.Options))
		for _, item := range cat.Options {
			if item.ID == "" {
				return fmt.Errorf("category %q has an item with no id", cat.ID)
			}
			if seen[item.ID] {
				return fmt.Errorf("category %q has duplicate item %q", cat.ID, item.ID)
			}
			if item.Price < 0 {
				return fmt.Errorf("item %q has negative price %d", item.ID, item.Price)
			}
			seen[item.ID] = true
		}
	}

	q := catalog.Quantity
	if q.Min < 1 || q.Max < q.Min {
		return fmt.Errorf("quantity bounds [%d, %d] invalid", q.Min, q.Max)
	}
	if q.Default < q.Min || q.Default > q.Max {
		return fmt.Errorf("default quantity %d outside [%d, %d]", q.Default, q.Min, q.Max)
	}
	for _, p := range q.Presets {
		if p.Quantity < q.Min || p.Quantity > q.Max {
			return fmt.Errorf("preset %q quantity %d outside [%d, %d]", p.Label, p.Quantity, q.Min, q.Max)
		}
		if p.DiscountPercent < 0 || p.DiscountPercent > 100 {
			return fmt.Errorf("preset %q discount %d%% out of range", p.Label, p.DiscountPercent)
		}
	}
	return nil
}
