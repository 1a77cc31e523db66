package pricing

import (
	"errors"
	"math"

	"storefront/internal/options"
)

// ErrOverflow means a line total does not fit in Money.
var ErrOverflow = errors.New("pricing: line total overflows")

// LineItem is what the cart hands over at add-to-cart time.
type LineItem struct {
	BaseUnitPrice options.Money        `json:"base_unit_price"`
	Selection     options.SelectionSet `json:"selection"`
	Quantity      int                  `json:"quantity"`
	Note          string               `json:"note,omitempty"`
}

// Surcharge is the sum of every picked choice's additional price.
func Surcharge(set options.SelectionSet) options.Money {
	var total options.Money
	for _, e := range set.Entries() {
		for _, c := range e.Choices {
			total += c.AdditionalPrice
		}
	}
	return total
}

// UnitPrice discounts the base price, then adds option surcharges.
// Surcharges are never discounted.
func UnitPrice(item LineItem, d *Discount) options.Money {
	return ApplyDiscount(item.BaseUnitPrice, d) + Surcharge(item.Selection)
}

// LineTotal is UnitPrice times quantity. Integer money keeps the
// multiplication exact.
func LineTotal(item LineItem, d *Discount) (options.Money, error) {
	return Multiply(UnitPrice(item, d), item.Quantity)
}

// Multiply is unit * qty, or ErrOverflow when the product leaves the
// int64 range.
func Multiply(unit options.Money, qty int) (options.Money, error) {
	q := int64(qty)
	u := int64(unit)
	if u == 0 || q == 0 {
		return 0, nil
	}
	if (u == -1 && q == math.MinInt64) || (q == -1 && u == math.MinInt64) {
		return 0, ErrOverflow
	}
	p := u * q
	if p/q != u {
		return 0, ErrOverflow
	}
	return options.Money(p), nil
}

// Breakdown is the priced line with every intermediate step kept
// for receipts.
type Breakdown struct {
	BasePrice       options.Money `json:"base_price"`
	DiscountedPrice options.Money `json:"discounted_price"`
	Discount        *Discount     `json:"discount,omitempty"`
	Surcharge       options.Money `json:"surcharge"`
	UnitPrice       options.Money `json:"unit_price"`
	Quantity        int           `json:"quantity"`
	Total           options.Money `json:"line_total"`
}

// Quote prices a line item.
// PURE business logic, callers validate quantity beforehand.
func Quote(item LineItem, d *Discount) (Breakdown, error) {
	discounted := ApplyDiscount(item.BaseUnitPrice, d)
	surcharge := Surcharge(item.Selection)
	unit := discounted + surcharge
	if (surcharge > 0 && unit < discounted) || (surcharge < 0 && unit > discounted) {
		return Breakdown{}, ErrOverflow
	}

	total, err := Multiply(unit, item.Quantity)
	if err != nil {
		return Breakdown{}, err
	}

	return Breakdown{
		BasePrice:       item.BaseUnitPrice,
		DiscountedPrice: discounted,
		Discount:        d,
		Surcharge:       surcharge,
		UnitPrice:       unit,
		Quantity:        item.Quantity,
		Total:           total,
	}, nil
}
