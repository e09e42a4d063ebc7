package services

import (
	"reflect"
	"testing"

	"github.com/wizreet/cocobakes/models"
)

func TestComputeBreakdownWithoutDiscount(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("classic") // NPR 150
	// quantity 4 matches no preset

	got := ComputeBreakdown(sel, catalog)

	want := models.PriceBreakdown{
		UnitPrice:       150,
		Subtotal:        600,
		DiscountPercent: 0,
		DiscountAmount:  0,
		FinalPrice:      600,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeBreakdownWithPresetDiscount(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("classic")                                            // NPR 150
	sel.ToggleOption(models.GroupToppings, "walnuts", catalog.Toppings.MaxSelections) // NPR 30
	sel.SetQuantity(12, catalog.Quantity)                                // Dozen Box, 10% off

	got := ComputeBreakdown(sel, catalog)

	want := models.PriceBreakdown{
		UnitPrice:       180,
		Subtotal:        2160,
		DiscountPercent: 10,
		DiscountAmount:  216,
		FinalPrice:      1944,
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestComputeBreakdownWithoutBase(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.ToggleOption(models.GroupExtras, "ice-cream", catalog.Extras.MaxSelections) // NPR 80

	got := ComputeBreakdown(sel, catalog)

	if got.UnitPrice != 80 {
		t.Fatalf("expected unit price 80 with no base, got %d", got.UnitPrice)
	}
	if got.Subtotal != 320 {
		t.Fatalf("expected subtotal 320, got %d", got.Subtotal)
	}
}

func TestComputeBreakdownIsDeterministic(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("biscoff")
	sel.ToggleOption(models.GroupToppings, "caramel", catalog.Toppings.MaxSelections)
	sel.ToggleOption(models.GroupExtras, "gift-wrap", catalog.Extras.MaxSelections)
	sel.SetQuantity(6, catalog.Quantity)

	first := ComputeBreakdown(sel, catalog)
	second := ComputeBreakdown(sel, catalog)

	if first != second {
		t.Fatalf("repeated pricing differs: %+v vs %+v", first, second)
	}
}

func TestDiscountExactness(t *testing.T) {
	catalog := DefaultCatalog()

	// cover every preset and a spread of quantities, including ones where
	// subtotal × percent is not divisible by 100
	for _, base := range catalog.Base.Options {
		for quantity := catalog.Quantity.Min; quantity <= catalog.Quantity.Max; quantity++ {
			sel := models.NewSelectionState(catalog.Quantity)
			sel.SelectBase(base.ID)
			sel.ToggleOption(models.GroupToppings, "sprinkles", catalog.Toppings.MaxSelections) // NPR 15, odd sums
			sel.SetQuantity(quantity, catalog.Quantity)

			got := ComputeBreakdown(sel, catalog)
			if got.FinalPrice+got.DiscountAmount != got.Subtotal {
				t.Fatalf("base %s qty %d: final %d + discount %d != subtotal %d",
					base.ID, quantity, got.FinalPrice, got.DiscountAmount, got.Subtotal)
			}
			if got.DiscountAmount < 0 || got.FinalPrice < 0 {
				t.Fatalf("base %s qty %d: negative amount in %+v", base.ID, quantity, got)
			}
		}
	}
}

func TestComputeBreakdownSkipsStaleIDs(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("classic")
	sel.ToppingIDs = []string{"walnuts", "discontinued-item"}

	got := ComputeBreakdown(sel, catalog)

	if got.UnitPrice != 180 {
		t.Fatalf("stale id should price as 0, got unit price %d", got.UnitPrice)
	}
}

func TestOrderLinesPreservesSelectionOrder(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("double-chocolate")
	sel.ToggleOption(models.GroupToppings, "oreo", 3)
	sel.ToggleOption(models.GroupToppings, "walnuts", 3)
	sel.ToggleOption(models.GroupExtras, "greeting-card", 2)

	base, toppings, extras := OrderLines(sel, catalog)

	if base != "Double Chocolate Brownie" {
		t.Fatalf("unexpected base %q", base)
	}
	if !reflect.DeepEqual(toppings, []string{"Oreo Crumble", "Roasted Walnuts"}) {
		t.Fatalf("toppings out of selection order: %v", toppings)
	}
	if !reflect.DeepEqual(extras, []string{"Handwritten Greeting Card"}) {
		t.Fatalf("unexpected extras: %v", extras)
	}
}
