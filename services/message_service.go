package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/wizreet/cocobakes/models"
)

const currencyCode = "NPR"

// MessageOptions carries the storefront wording that varies per deployment.
// It is constructed once in main and passed down explicitly; the formatter
// itself keeps no ambient state.
type MessageOptions struct {
	BusinessName string
	DeliveryArea string
}

// MessageOptionsFromEnv reads the wording overrides, with the CocoBakes
// defaults.
func MessageOptionsFromEnv() MessageOptions {
	opts := MessageOptions{
		BusinessName: os.Getenv("BUSINESS_NAME"),
		DeliveryArea: os.Getenv("DELIVERY_AREA"),
	}
	if opts.BusinessName == "" {
		opts.BusinessName = "CocoBakes"
	}
	if opts.DeliveryArea == "" {
		opts.DeliveryArea = "Kathmandu Valley"
	}
	return opts
}

// GenerateOrderMessage renders the chat-ready order summary handed to the
// messaging channel. Returns "" when no base is selected — an order without
// a base is not dispatchable, and the caller must gate on that before
// invoking any dispatch path.
func GenerateOrderMessage(sel *models.SelectionState, catalog *models.Catalog, breakdown models.PriceBreakdown, opts MessageOptions) string {
	base, toppings, extras := OrderLines(sel, catalog)
	if base == "" {
		return ""
	}

	pieces := "pieces"
	if sel.Quantity == 1 {
		pieces = "piece"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi! I would like to order from %s 🍫\n\n", opts.BusinessName)

	fmt.Fprintf(&b, "I'd like %d %s of %s", sel.Quantity, pieces, base)
	if len(toppings) > 0 {
		fmt.Fprintf(&b, " with %s as toppings", strings.Join(toppings, ", "))
	}
	if len(extras) > 0 {
		fmt.Fprintf(&b, ", and %s as add-ons", strings.Join(extras, ", "))
	}
	b.WriteString(".\n\n")

	b.WriteString("Order Summary:\n")
	fmt.Fprintf(&b, "- Base: %s\n", base)
	if len(toppings) > 0 {
		fmt.Fprintf(&b, "- Toppings: %s\n", strings.Join(toppings, ", "))
	}
	if len(extras) > 0 {
		fmt.Fprintf(&b, "- Add-ons: %s\n", strings.Join(extras, ", "))
	}
	fmt.Fprintf(&b, "- Quantity: %d pieces\n", sel.Quantity)
	fmt.Fprintf(&b, "- Price per piece: %s %d\n", currencyCode, breakdown.UnitPrice)
	if breakdown.DiscountPercent > 0 {
		fmt.Fprintf(&b, "- Discount: %d%% off\n", breakdown.DiscountPercent)
	}
	fmt.Fprintf(&b, "- Total: %s %d\n\n", currencyCode, breakdown.FinalPrice)

	fmt.Fprintf(&b, "Delivery to %s.\n\n", opts.DeliveryArea)
	b.WriteString("Thank you! 😊")

	return b.String()
}
