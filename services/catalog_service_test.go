package services

import (
	"testing"

	"github.com/wizreet/cocobakes/models"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := ValidateCatalog(DefaultCatalog()); err != nil {
		t.Fatalf("embedded catalog must validate: %v", err)
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	catalog := DefaultCatalog()

	if !catalog.Base.Required || catalog.Base.MaxSelections != 1 {
		t.Fatalf("base must be required single-select, got %+v", catalog.Base)
	}
	if catalog.Toppings.MaxSelections != 3 {
		t.Fatalf("expected 3 topping slots, got %d", catalog.Toppings.MaxSelections)
	}
	if catalog.Extras.MaxSelections != 2 {
		t.Fatalf("expected 2 add-on slots, got %d", catalog.Extras.MaxSelections)
	}
	if catalog.Quantity.Min != 1 || catalog.Quantity.Max != 24 || catalog.Quantity.Default != 4 {
		t.Fatalf("unexpected quantity options %+v", catalog.Quantity)
	}
}

func TestValidateCatalogRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name  string
		mutate func(c *models.Catalog)
	}{
		{"empty category", func(c *models.Catalog) { c.Toppings.Options = nil }},
		{"zero max selections", func(c *models.Catalog) { c.Extras.MaxSelections = 0 }},
		{"duplicate item id", func(c *models.Catalog) {
			c.Base.Options = append(c.Base.Options, models.CatalogItem{ID: "classic", Name: "Dup", Price: 1})
		}},
		{"negative price", func(c *models.Catalog) { c.Base.Options[0].Price = -1 }},
		{"inverted bounds", func(c *models.Catalog) { c.Quantity.Max = 0 }},
		{"default out of range", func(c *models.Catalog) { c.Quantity.Default = 99 }},
		{"preset out of range", func(c *models.Catalog) {
			c.Quantity.Presets = append(c.Quantity.Presets, models.QuantityPreset{Quantity: 100, Label: "Too big"})
		}},
		{"preset discount over 100", func(c *models.Catalog) { c.Quantity.Presets[0].DiscountPercent = 120 }},
	}

	for _, tt := range tests {
		catalog := DefaultCatalog()
		tt.mutate(catalog)
		if err := ValidateCatalog(catalog); err == nil {
			t.Fatalf("%s: expected validation error", tt.name)
		}
	}
}

func TestCategoryLookup(t *testing.T) {
	catalog := DefaultCatalog()

	if catalog.Category(models.GroupToppings) != &catalog.Toppings {
		t.Fatalf("toppings group resolves to wrong category")
	}
	if catalog.Category(models.GroupExtras) != &catalog.Extras {
		t.Fatalf("extras group resolves to wrong category")
	}

	if _, ok := catalog.Base.Find("classic"); !ok {
		t.Fatalf("classic base missing from fixture")
	}
	if _, ok := catalog.Base.Find("no-such"); ok {
		t.Fatalf("unknown id must not resolve")
	}
}
