package deals

import (
	"errors"
	"time"

	"storefront/internal/pricing"
)

var (
	ErrDealNotFound = errors.New("deal not found")
	ErrInvalidDeal  = errors.New("invalid deal")
)

// Deal types. FLAT is the older name for FIXED_AMOUNT and is still
// accepted on read.
const (
	TypePercentage  = "PERCENTAGE"
	TypeFixedAmount = "FIXED_AMOUNT"
	TypeFlat        = "FLAT"
	TypeCombo       = "COMBO"
)

const (
	StatusDraft    = "DRAFT"
	StatusPending  = "PENDING_APPROVAL"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// --------------------------------------------------
// DEAL (PERSISTED ENTITY)
// --------------------------------------------------

type Deal struct {
	ID         int    `json:"id"`
	TenantID   string `json:"tenant_id"`
	MenuItemID string `json:"menu_item_id"`

	Type  string `json:"type"` // PERCENTAGE | FIXED_AMOUNT | FLAT | COMBO
	Title string `json:"title"`

	DiscountValue float64 `json:"discount_value"`

	Status string `json:"status"` // DRAFT | PENDING_APPROVAL | APPROVED | REJECTED

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Discount converts the deal into the pricing engine's discount.
// COMBO and unknown types carry no per-item discount.
func (d *Deal) Discount() *pricing.Discount {
	if d == nil {
		return nil
	}
	switch d.Type {
	case TypePercentage:
		return &pricing.Discount{Type: pricing.Percentage, Value: d.DiscountValue}
	case TypeFixedAmount, TypeFlat:
		return &pricing.Discount{Type: pricing.FixedAmount, Value: d.DiscountValue}
	default:
		return nil
	}
}

func validStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
