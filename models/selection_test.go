package models

import (
	"reflect"
	"testing"
)

var testQuantity = QuantityOptions{
	Min:     1,
	Max:     24,
	Default: 4,
	Presets: []QuantityPreset{
		{Quantity: 6, Label: "Half Dozen Box", DiscountPercent: 5},
		{Quantity: 12, Label: "Dozen Box", DiscountPercent: 10},
	},
}

func TestNewSelectionStateStartsEmpty(t *testing.T) {
	sel := NewSelectionState(testQuantity)

	if sel.HasBase() {
		t.Fatalf("new selection should have no base")
	}
	if len(sel.ToppingIDs) != 0 || len(sel.ExtraIDs) != 0 {
		t.Fatalf("new selection should have no options, got %v / %v", sel.ToppingIDs, sel.ExtraIDs)
	}
	if sel.Quantity != 4 {
		t.Fatalf("expected default quantity 4, got %d", sel.Quantity)
	}
}

func TestSelectBaseReplacesUnconditionally(t *testing.T) {
	sel := NewSelectionState(testQuantity)

	sel.SelectBase("classic")
	sel.SelectBase("blondie")

	if sel.BaseID != "blondie" {
		t.Fatalf("expected base to be replaced, got %q", sel.BaseID)
	}
}

func TestSetQuantityClampsToBounds(t *testing.T) {
	tests := []struct {
		raw  int
		want int
	}{
		{raw: 99, want: 24},
		{raw: 0, want: 1},
		{raw: -5, want: 1},
		{raw: 12, want: 12},
		{raw: 1, want: 1},
		{raw: 24, want: 24},
	}

	for _, tt := range tests {
		sel := NewSelectionState(testQuantity)
		sel.SetQuantity(tt.raw, testQuantity)
		if sel.Quantity != tt.want {
			t.Fatalf("SetQuantity(%d): expected %d, got %d", tt.raw, tt.want, sel.Quantity)
		}
	}
}

func TestSetQuantityIsIdempotent(t *testing.T) {
	for raw := -10; raw <= 40; raw++ {
		once := testQuantity.Clamp(raw)
		twice := testQuantity.Clamp(once)
		if once != twice {
			t.Fatalf("clamp not idempotent for %d: %d vs %d", raw, once, twice)
		}
		if once < testQuantity.Min || once > testQuantity.Max {
			t.Fatalf("clamp(%d) = %d outside bounds", raw, once)
		}
	}
}

func TestToggleOptionAddsAndRemoves(t *testing.T) {
	sel := NewSelectionState(testQuantity)

	sel.ToggleOption(GroupToppings, "walnuts", 3)
	if !reflect.DeepEqual(sel.ToppingIDs, []string{"walnuts"}) {
		t.Fatalf("expected walnuts selected, got %v", sel.ToppingIDs)
	}

	// toggling the same item again is its own inverse
	sel.ToggleOption(GroupToppings, "walnuts", 3)
	if len(sel.ToppingIDs) != 0 {
		t.Fatalf("expected walnuts removed, got %v", sel.ToppingIDs)
	}
}

func TestToggleOptionEnforcesCap(t *testing.T) {
	sel := NewSelectionState(testQuantity)

	sel.ToggleOption(GroupToppings, "walnuts", 3)
	sel.ToggleOption(GroupToppings, "oreo", 3)
	sel.ToggleOption(GroupToppings, "sprinkles", 3)

	// a fourth distinct add at the cap is silently ignored
	sel.ToggleOption(GroupToppings, "caramel", 3)

	want := []string{"walnuts", "oreo", "sprinkles"}
	if !reflect.DeepEqual(sel.ToppingIDs, want) {
		t.Fatalf("expected %v after over-limit add, got %v", want, sel.ToppingIDs)
	}

	// removal is always allowed at the cap
	sel.ToggleOption(GroupToppings, "oreo", 3)
	if !reflect.DeepEqual(sel.ToppingIDs, []string{"walnuts", "sprinkles"}) {
		t.Fatalf("expected oreo removed, got %v", sel.ToppingIDs)
	}
}

func TestToggleOptionBoundHoldsUnderAnySequence(t *testing.T) {
	sel := NewSelectionState(testQuantity)
	items := []string{"a", "b", "c", "d", "e", "a", "c", "f", "b", "g", "a", "h"}

	for _, id := range items {
		sel.ToggleOption(GroupExtras, id, 2)
		if len(sel.ExtraIDs) > 2 {
			t.Fatalf("cap of 2 violated: %v", sel.ExtraIDs)
		}
	}
}

func TestToggleOptionGroupsAreIndependent(t *testing.T) {
	sel := NewSelectionState(testQuantity)

	sel.ToggleOption(GroupToppings, "walnuts", 3)
	sel.ToggleOption(GroupExtras, "ice-cream", 2)

	if !reflect.DeepEqual(sel.ToppingIDs, []string{"walnuts"}) {
		t.Fatalf("unexpected toppings %v", sel.ToppingIDs)
	}
	if !reflect.DeepEqual(sel.ExtraIDs, []string{"ice-cream"}) {
		t.Fatalf("unexpected extras %v", sel.ExtraIDs)
	}
}

func TestResetReturnsToInitialState(t *testing.T) {
	sel := NewSelectionState(testQuantity)
	sel.SelectBase("classic")
	sel.ToggleOption(GroupToppings, "walnuts", 3)
	sel.ToggleOption(GroupExtras, "ice-cream", 2)
	sel.SetQuantity(12, testQuantity)

	sel.Reset(testQuantity)

	fresh := NewSelectionState(testQuantity)
	if !reflect.DeepEqual(sel, fresh) {
		t.Fatalf("reset state %+v differs from fresh state %+v", sel, fresh)
	}
}

func TestParseOptionGroup(t *testing.T) {
	if g, ok := ParseOptionGroup("toppings"); !ok || g != GroupToppings {
		t.Fatalf("expected toppings group, got %v %v", g, ok)
	}
	if g, ok := ParseOptionGroup("extras"); !ok || g != GroupExtras {
		t.Fatalf("expected extras group, got %v %v", g, ok)
	}
	if _, ok := ParseOptionGroup("base"); ok {
		t.Fatalf("base must not parse as a multi-select group")
	}
	if _, ok := ParseOptionGroup(""); ok {
		t.Fatalf("empty string must not parse")
	}
}

func TestDiscountForMatchesExactQuantityOnly(t *testing.T) {
	if got := testQuantity.DiscountFor(12); got != 10 {
		t.Fatalf("expected 10%% for exactly 12, got %d", got)
	}
	// one past the preset gets nothing; exact-match is the catalog rule
	if got := testQuantity.DiscountFor(13); got != 0 {
		t.Fatalf("expected 0%% for 13, got %d", got)
	}
	if got := testQuantity.DiscountFor(4); got != 0 {
		t.Fatalf("expected 0%% for 4, got %d", got)
	}
}
