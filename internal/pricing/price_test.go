package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/options"
)

var (
	sizeOpt = options.Option{ID: "size", Label: "Size", SelectionType: options.ExactlyOne}
	topsOpt = options.Option{ID: "tops", Label: "Toppings", SelectionType: options.UpToN, MaxSelections: 3}
	large   = options.Choice{ID: "large", OptionID: "size", Name: "Large", AdditionalPrice: 5000, IsAvailable: true}
	boba    = options.Choice{ID: "boba", OptionID: "tops", Name: "Boba", AdditionalPrice: 3000, IsAvailable: true}
	jelly   = options.Choice{ID: "jelly", OptionID: "tops", Name: "Jelly", AdditionalPrice: 2000, IsAvailable: true}
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name  string
		price options.Money
		d     *Discount
		want  options.Money
	}{
		{"no discount", 10000, nil, 10000},
		{"percentage", 10000, &Discount{Type: Percentage, Value: 20}, 8000},
		{"fixed", 10000, &Discount{Type: FixedAmount, Value: 2500}, 7500},
		{"fixed clamps at zero", 10000, &Discount{Type: FixedAmount, Value: 15000}, 0},
		{"percentage over 100 is not clamped", 10000, &Discount{Type: Percentage, Value: 150}, -5000},
		{"negative percentage raises price", 10000, &Discount{Type: Percentage, Value: -10}, 11000},
		{"negative fixed raises price", 10000, &Discount{Type: FixedAmount, Value: -500}, 10500},
		{"percentage rounds to nearest unit", 999, &Discount{Type: Percentage, Value: 15}, 849},
		{"unknown type ignored", 10000, &Discount{Type: "COMBO", Value: 50}, 10000},
		{"huge fixed saturates to zero", 10000, &Discount{Type: FixedAmount, Value: 1e30}, 0},
		{"huge negative fixed saturates high", 10000, &Discount{Type: FixedAmount, Value: -1e30}, math.MaxInt64},
		{"huge percentage saturates low", 10000, &Discount{Type: Percentage, Value: 1e300}, math.MinInt64},
		{"nan is zero", 10000, &Discount{Type: Percentage, Value: math.NaN()}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyDiscount(tt.price, tt.d))
		})
	}
}

func TestLineTotal_WithSurcharge(t *testing.T) {
	set := options.Select(options.NewSelectionSet(), sizeOpt, large)
	item := LineItem{BaseUnitPrice: 20000, Selection: set, Quantity: 3}

	assert.Equal(t, options.Money(25000), UnitPrice(item, nil))
	total, err := LineTotal(item, nil)
	require.NoError(t, err)
	assert.Equal(t, options.Money(75000), total)
}

func TestSurchargesAreNotDiscounted(t *testing.T) {
	set := options.NewSelectionSet()
	set = options.Select(set, topsOpt, boba)
	set = options.Select(set, topsOpt, jelly)

	item := LineItem{BaseUnitPrice: 10000, Selection: set, Quantity: 2}
	d := &Discount{Type: Percentage, Value: 50}

	assert.Equal(t, options.Money(5000+3000+2000), UnitPrice(item, d))
	total, err := LineTotal(item, d)
	require.NoError(t, err)
	assert.Equal(t, options.Money(20000), total)
}

func TestQuote(t *testing.T) {
	set := options.Select(options.NewSelectionSet(), sizeOpt, large)
	item := LineItem{BaseUnitPrice: 20000, Selection: set, Quantity: 2}
	d := &Discount{Type: FixedAmount, Value: 3000}

	b, err := Quote(item, d)
	require.NoError(t, err)
	assert.Equal(t, options.Money(20000), b.BasePrice)
	assert.Equal(t, options.Money(17000), b.DiscountedPrice)
	assert.Equal(t, options.Money(5000), b.Surcharge)
	assert.Equal(t, options.Money(22000), b.UnitPrice)
	assert.Equal(t, options.Money(44000), b.Total)
	total, err := LineTotal(item, d)
	require.NoError(t, err)
	assert.Equal(t, total, b.Total)
}

func TestMultiply(t *testing.T) {
	got, err := Multiply(25000, 4)
	require.NoError(t, err)
	assert.Equal(t, options.Money(100000), got)

	got, err = Multiply(-5000, 3)
	require.NoError(t, err)
	assert.Equal(t, options.Money(-15000), got)

	_, err = Multiply(30000, math.MaxInt64/10000)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = Multiply(math.MinInt64, -1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestQuote_Overflow(t *testing.T) {
	set := options.Select(options.NewSelectionSet(), sizeOpt, large)
	item := LineItem{BaseUnitPrice: 25000, Selection: set, Quantity: math.MaxInt64 / 10000}

	_, err := Quote(item, nil)
	assert.ErrorIs(t, err, ErrOverflow)
}
