package checkout

import (
	"errors"

	"storefront/internal/options"
	"storefront/internal/pricing"
)

// MaxQuantity bounds one line; order_items.quantity is a 32-bit column.
const MaxQuantity = 999

var (
	ErrInvalidQuantity = errors.New("quantity must be between 1 and 999")
	ErrUnknownAction   = errors.New("action must be select or deselect")
)

type Action string

const (
	ActionSelect   Action = "select"
	ActionDeselect Action = "deselect"
)

// Event is one click in the option picker.
type Event struct {
	Action   Action `json:"action"`
	OptionID string `json:"option_id"`
	ChoiceID string `json:"choice_id"`
}

// Request is a checkout session for one menu item: the clicks in the
// order the customer made them, plus quantity and free-text note.
type Request struct {
	MenuItemID string  `json:"menu_item_id"`
	Events     []Event `json:"events"`
	Quantity   int     `json:"quantity"`
	Note       string  `json:"note"`
}

// Line is a priced, encoded order line ready to be stored.
type Line struct {
	ID         string               `json:"id"`
	MenuItemID string               `json:"menu_item_id"`
	ItemName   string               `json:"item_name"`
	Quantity   int                  `json:"quantity"`
	UnitPrice  options.Money        `json:"unit_price"`
	LineTotal  options.Money        `json:"line_total"`
	Notes      *string              `json:"notes"`
	Selection  options.SelectionSet `json:"selection"`
	Pricing    pricing.Breakdown    `json:"pricing"`
}
