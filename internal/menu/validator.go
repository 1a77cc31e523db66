package menu

import (
	"fmt"
	"strings"

	"storefront/internal/options"
)

// NormalizeOption checks an admin-submitted option and pins
// MaxSelections to 1 for single-choice types.
func NormalizeOption(o *options.Option) error {
	o.Label = strings.TrimSpace(o.Label)
	if o.Label == "" {
		return fmt.Errorf("%w: label is required", ErrInvalid)
	}

	switch o.SelectionType {
	case options.ExactlyOne, options.AtMostOne:
		o.MaxSelections = 1
	case options.UpToN:
		if o.MaxSelections < 1 {
			return fmt.Errorf("%w: max_selections must be at least 1", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: selection_type must be EXACTLY_ONE, AT_MOST_ONE or UP_TO_N", ErrInvalid)
	}

	return nil
}

func NormalizeChoice(c *options.Choice) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if c.AdditionalPrice < 0 {
		return fmt.Errorf("%w: additional_price must not be negative", ErrInvalid)
	}
	return nil
}
