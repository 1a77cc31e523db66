package pricing

import (
	"math"

	"storefront/internal/options"
)

type DiscountType string

const (
	Percentage  DiscountType = "PERCENTAGE"
	FixedAmount DiscountType = "FIXED_AMOUNT"
)

// Discount is attached to a menu item by the admin workflow.
// Value is a percent for PERCENTAGE and a money amount for FIXED_AMOUNT.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// ApplyDiscount reduces a base price. Out-of-range values are not rejected:
// percentages use the raw formula (so >100 goes negative), fixed amounts
// floor at zero. Unknown types leave the price untouched.
func ApplyDiscount(price options.Money, d *Discount) options.Money {
	if d == nil {
		return price
	}

	switch d.Type {
	case Percentage:
		return round(float64(price) * (100 - d.Value) / 100)
	case FixedAmount:
		off := round(d.Value)
		if off >= price {
			return 0
		}
		if off < 0 && price > math.MaxInt64+off {
			return math.MaxInt64
		}
		return price - off
	default:
		return price
	}
}

// round converts to Money, saturating at the int64 bounds. Converting an
// out-of-range float to int64 is implementation defined in Go.
func round(v float64) options.Money {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	switch {
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return options.Money(v)
}
