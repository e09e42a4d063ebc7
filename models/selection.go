package models

// OptionGroup addresses one of the two multi-select categories. Keeping this
// a closed enumeration (instead of raw "toppings"/"extras" strings) makes an
// invalid category unrepresentable past the HTTP boundary.
type OptionGroup int

const (
	GroupToppings OptionGroup = iota
	GroupExtras
)

// ParseOptionGroup maps the wire-level group name to its enum member.
func ParseOptionGroup(s string) (OptionGroup, bool) {
	switch s {
	case "toppings":
		return GroupToppings, true
	case "extras":
		return GroupExtras, true
	}
	return 0, false
}

func (g OptionGroup) String() string {
	if g == GroupExtras {
		return "extras"
	}
	return "toppings"
}

// SelectionState is the single mutable record of a configurator session:
// at most one base, bounded ordered sets of toppings and extras, and a
// clamped quantity. Items are held by id; the catalog resolves them.
//
// None of the mutation methods can fail. Invalid input is absorbed — clamped
// or ignored — because the storefront builder disables controls instead of
// surfacing errors.
type SelectionState struct {
	BaseID     string   `json:"base_id,omitempty"`
	ToppingIDs []string `json:"topping_ids"`
	ExtraIDs   []string `json:"extra_ids"`
	Quantity   int      `json:"quantity"`
}

// NewSelectionState returns the initial state of a session: no base, no
// add-ons, default quantity.
func NewSelectionState(opts QuantityOptions) *SelectionState {
	return &SelectionState{
		ToppingIDs: []string{},
		ExtraIDs:   []string{},
		Quantity:   opts.Clamp(opts.Default),
	}
}

// HasBase reports whether the selection is eligible for dispatch. A base is
// the only validity requirement; toppings, extras and quantity are always
// within bounds by construction.
func (s *SelectionState) HasBase() bool {
	return s.BaseID != ""
}

// SelectBase replaces the base unconditionally (single-select).
func (s *SelectionState) SelectBase(itemID string) {
	s.BaseID = itemID
}

// ToggleOption removes the item if it is already selected, otherwise adds it
// when the group is under maxSelections. An add at the cap is a silent no-op;
// the UI disables the control so a well-behaved caller never hits this path.
func (s *SelectionState) ToggleOption(group OptionGroup, itemID string, maxSelections int) {
	ids := s.optionIDs(group)
	for i, id := range *ids {
		if id == itemID {
			*ids = append((*ids)[:i], (*ids)[i+1:]...)
			return
		}
	}
	if len(*ids) >= maxSelections {
		return
	}
	*ids = append(*ids, itemID)
}

// SetQuantity clamps raw into the configured bounds before storing, so the
// quantity is never undefined or out of range.
func (s *SelectionState) SetQuantity(raw int, opts QuantityOptions) {
	s.Quantity = opts.Clamp(raw)
}

// Reset returns the state to its initial lifecycle values.
func (s *SelectionState) Reset(opts QuantityOptions) {
	s.BaseID = ""
	s.ToppingIDs = []string{}
	s.ExtraIDs = []string{}
	s.Quantity = opts.Clamp(opts.Default)
}

func (s *SelectionState) optionIDs(group OptionGroup) *[]string {
	if group == GroupExtras {
		return &s.ExtraIDs
	}
	return &s.ToppingIDs
}
