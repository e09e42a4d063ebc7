package models

// PriceBreakdown is derived from a SelectionState on every read; it is never
// stored. All amounts are whole NPR. DiscountAmount is truncated toward zero
// when subtotal × percent is not divisible by 100, which keeps
// FinalPrice + DiscountAmount == Subtotal exact in integer arithmetic.
type PriceBreakdown struct {
	UnitPrice       int `json:"unit_price"`
	Subtotal        int `json:"subtotal"`
	DiscountPercent int `json:"discount_percent"`
	DiscountAmount  int `json:"discount_amount"`
	FinalPrice      int `json:"final_price"`
}
