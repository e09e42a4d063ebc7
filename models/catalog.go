package models

// CatalogItem is one priced option in a builder category. Items are defined
// by the catalog fixture (or the seeded catalog tables) at startup and never
// change at runtime.
type CatalogItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price" example:"150"` // whole NPR, no minor units
	Description string `json:"description,omitempty"`
}

// CatalogCategory is a named, bounded group of catalog items.
type CatalogCategory struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Required      bool          `json:"required"`
	MaxSelections int           `json:"max_selections"`
	Options       []CatalogItem `json:"options"` // insertion order is display order
}

// Find returns the option with the given id, if present.
func (c *CatalogCategory) Find(itemID string) (CatalogItem, bool) {
	for _, item := range c.Options {
		if item.ID == itemID {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// QuantityPreset pairs a curated order quantity with a promotional discount.
type QuantityPreset struct {
	Quantity        int    `json:"quantity"`
	Label           string `json:"label"`
	DiscountPercent int    `json:"discount_percent"`
}

// QuantityOptions bounds the order quantity and carries the preset shortcuts.
type QuantityOptions struct {
	Min     int              `json:"min"`
	Max     int              `json:"max"`
	Default int              `json:"default"`
	Presets []QuantityPreset `json:"presets"`
}

// Clamp forces raw into [Min, Max].
func (q QuantityOptions) Clamp(raw int) int {
	if raw < q.Min {
		return q.Min
	}
	if raw > q.Max {
		return q.Max
	}
	return raw
}

// DiscountFor returns the discount percent of the preset whose quantity
// equals the given quantity exactly, or 0 when none matches. A quantity that
// overshoots a preset still gets nothing; presets are deals on curated box
// sizes, not volume tiers.
func (q QuantityOptions) DiscountFor(quantity int) int {
	for _, p := range q.Presets {
		if p.Quantity == quantity {
			return p.DiscountPercent
		}
	}
	return 0
}

// Catalog is the full read-only registry the storefront builder works from.
type Catalog struct {
	Base     CatalogCategory `json:"base"`
	Toppings CatalogCategory `json:"toppings"`
	Extras   CatalogCategory `json:"extras"`
	Quantity QuantityOptions `json:"quantity"`
}

// Category returns the multi-select category addressed by group.
func (c *Catalog) Category(group OptionGroup) *CatalogCategory {
	if group == GroupExtras {
		return &c.Extras
	}
	return &c.Toppings
}
