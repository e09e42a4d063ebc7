package services

import "github.com/wizreet/cocobakes/models"

// ComputeBreakdown derives the price breakdown for the current selection.
// Pure and deterministic: the same selection against the same catalog always
// yields the same breakdown, so the storefront can memoize on state alone.
//
// Discounts come from the quantity presets by exact quantity match. The
// discount amount is truncated toward zero in integer arithmetic, and the
// final price is taken as subtotal minus that amount, so the identity
// finalPrice + discountAmount == subtotal holds exactly.
func ComputeBreakdown(sel *models.SelectionState, catalog *models.Catalog) models.PriceBreakdown {
	unit := 0
	if item, ok := catalog.Base.Find(sel.BaseID); ok {
		unit += item.Price
	}
	for _, id := range sel.ToppingIDs {
		if item, ok := catalog.Toppings.Find(id); ok {
			unit += item.Price
		}
	}
	for _, id := range sel.ExtraIDs {
		if item, ok := catalog.Extras.Find(id); ok {
			unit += item.Price
		}
	}

	subtotal := unit * sel.Quantity
	percent := catalog.Quantity.DiscountFor(sel.Quantity)
	discount := subtotal * percent / 100

	return models.PriceBreakdown{
		UnitPrice:       unit,
		Subtotal:        subtotal,
		DiscountPercent: percent,
		DiscountAmount:  discount,
		FinalPrice:      subtotal - discount,
	}
}

// OrderLines resolves the selection into display names: the base name and the
// ordered topping and add-on names. Stale ids (items no longer in the
// catalog) are skipped rather than surfaced.
func OrderLines(sel *models.SelectionState, catalog *models.Catalog) (base string, toppings, extras []string) {
	if item, ok := catalog.Base.Find(sel.BaseID); ok {
		base = item.Name
	}
	for _, id := range sel.ToppingIDs {
		if item, ok := catalog.Toppings.Find(id); ok {
			toppings = append(toppings, item.Name)
		}
	}
	for _, id := range sel.ExtraIDs {
		if item, ok := catalog.Extras.Find(id); ok {
			extras = append(extras, item.Name)
		}
	}
	return base, toppings, extras
}
