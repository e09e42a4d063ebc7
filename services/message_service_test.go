package services

import (
	"strings"
	"testing"

	"github.com/wizreet/cocobakes/models"
)

var testMsgOpts = MessageOptions{
	BusinessName: "CocoBakes",
	DeliveryArea: "Kathmandu Valley",
}

func TestGenerateOrderMessageWithoutBaseIsEmpty(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.ToggleOption(models.GroupToppings, "walnuts", 3)

	breakdown := ComputeBreakdown(sel, catalog)
	if msg := GenerateOrderMessage(sel, catalog, breakdown, testMsgOpts); msg != "" {
		t.Fatalf("expected empty message with no base, got %q", msg)
	}
}

func TestGenerateOrderMessageFullOrder(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("classic")
	sel.ToggleOption(models.GroupToppings, "walnuts", 3)
	sel.ToggleOption(models.GroupToppings, "oreo", 3)
	sel.ToggleOption(models.GroupExtras, "ice-cream", 2)
	sel.SetQuantity(12, catalog.Quantity)

	breakdown := ComputeBreakdown(sel, catalog)
	msg := GenerateOrderMessage(sel, catalog, breakdown, testMsgOpts)

	// unit 150+30+25+80 = 285, subtotal 3420, 10% off = 342, total 3078
	wantLines := []string{
		"Hi! I would like to order from CocoBakes 🍫",
		"I'd like 12 pieces of Classic Chocolate Brownie with Roasted Walnuts, Oreo Crumble as toppings, and Vanilla Ice Cream Scoop as add-ons.",
		"Order Summary:",
		"- Base: Classic Chocolate Brownie",
		"- Toppings: Roasted Walnuts, Oreo Crumble",
		"- Add-ons: Vanilla Ice Cream Scoop",
		"- Quantity: 12 pieces",
		"- Price per piece: NPR 285",
		"- Discount: 10% off",
		"- Total: NPR 3078",
		"Delivery to Kathmandu Valley.",
		"Thank you! 😊",
	}

	rest := msg
	for _, line := range wantLines {
		idx := strings.Index(rest, line)
		if idx < 0 {
			t.Fatalf("message missing (or out of order) line %q\nmessage:\n%s", line, msg)
		}
		rest = rest[idx+len(line):]
	}
}

func TestGenerateOrderMessageSingularPiece(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("classic")
	sel.SetQuantity(1, catalog.Quantity)

	breakdown := ComputeBreakdown(sel, catalog)
	msg := GenerateOrderMessage(sel, catalog, breakdown, testMsgOpts)

	if !strings.Contains(msg, "I'd like 1 piece of Classic Chocolate Brownie") {
		t.Fatalf("expected singular phrasing, got:\n%s", msg)
	}
	if strings.Contains(msg, "1 pieces of") {
		t.Fatalf("plural leaked into singular sentence:\n%s", msg)
	}
}

func TestGenerateOrderMessageOmitsEmptySections(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("blondie")
	// quantity 4: no toppings, no extras, no discount

	breakdown := ComputeBreakdown(sel, catalog)
	msg := GenerateOrderMessage(sel, catalog, breakdown, testMsgOpts)

	if strings.Contains(msg, "- Toppings:") {
		t.Fatalf("toppings line present without toppings:\n%s", msg)
	}
	if strings.Contains(msg, "- Add-ons:") {
		t.Fatalf("add-ons line present without extras:\n%s", msg)
	}
	if strings.Contains(msg, "- Discount:") {
		t.Fatalf("discount line present at 0%%:\n%s", msg)
	}
	if strings.Contains(msg, " with ") || strings.Contains(msg, " as add-ons") {
		t.Fatalf("option clauses present without options:\n%s", msg)
	}
}

func TestGenerateOrderMessageExtrasOnlyClause(t *testing.T) {
	catalog := DefaultCatalog()
	sel := models.NewSelectionState(catalog.Quantity)
	sel.SelectBase("classic")
	sel.ToggleOption(models.GroupExtras, "gift-wrap", 2)

	breakdown := ComputeBreakdown(sel, catalog)
	msg := GenerateOrderMessage(sel, catalog, breakdown, testMsgOpts)

	if !strings.Contains(msg, "Classic Chocolate Brownie, and Gift Box Wrapping as add-ons.") {
		t.Fatalf("expected add-ons clause without toppings clause, got:\n%s", msg)
	}
}
