package options

// Money is an amount in the smallest currency unit.
type Money int64

type SelectionType string

const (
	ExactlyOne SelectionType = "EXACTLY_ONE"
	AtMostOne  SelectionType = "AT_MOST_ONE"
	UpToN      SelectionType = "UP_TO_N"
)

// Option is a configurable attribute of a menu item (size, sugar level ...)
type Option struct {
	ID            string        `json:"id"`
	MenuItemID    string        `json:"menu_item_id"`
	Label         string        `json:"label"`
	SelectionType SelectionType `json:"selection_type"`
	MaxSelections int           `json:"max_selections"`
	IsRequired    bool          `json:"is_required"`
}

// Limit is the number of choices the option accepts.
// Only UP_TO_N honours MaxSelections; everything else is single-choice.
func (o Option) Limit() int {
	if o.SelectionType != UpToN {
		return 1
	}
	if o.MaxSelections < 1 {
		return 1
	}
	return o.MaxSelections
}

func (o Option) single() bool {
	return o.SelectionType != UpToN
}

// Choice is one pickable value of an Option.
type Choice struct {
	ID              string `json:"id"`
	OptionID        string `json:"option_id"`
	Name            string `json:"name"`
	AdditionalPrice Money  `json:"additional_price"`
	IsAvailable     bool   `json:"is_available"`
}

// Selected is the part of a Choice that survives into a selection.
type Selected struct {
	ChoiceID        string `json:"choice_id"`
	ChoiceName      string `json:"choice_name"`
	AdditionalPrice Money  `json:"additional_price"`
}

func selectedFrom(c Choice) Selected {
	return Selected{
		ChoiceID:        c.ID,
		ChoiceName:      c.Name,
		AdditionalPrice: c.AdditionalPrice,
	}
}

// OptionWithChoices groups an option with its offered choices.
type OptionWithChoices struct {
	Option
	Choices []Choice `json:"choices"`
}

// Catalog is the per-request snapshot of one menu item's options.
type Catalog struct {
	MenuItemID string              `json:"menu_item_id"`
	Options    []OptionWithChoices `json:"options"`
}

// Snapshot returns a copy of the catalog without unavailable choices.
func (c Catalog) Snapshot() Catalog {
	out := Catalog{
		MenuItemID: c.MenuItemID,
		Options:    make([]OptionWithChoices, 0, len(c.Options)),
	}
	for _, o := range c.Options {
		filtered := OptionWithChoices{Option: o.Option}
		for _, ch := range o.Choices {
			if ch.IsAvailable {
				filtered.Choices = append(filtered.Choices, ch)
			}
		}
		out.Options = append(out.Options, filtered)
	}
	return out
}

// Find returns the option and choice with the given ids.
func (c Catalog) Find(optionID, choiceID string) (Option, Choice, error) {
	for _, o := range c.Options {
		if o.ID != optionID {
			continue
		}
		for _, ch := range o.Choices {
			if ch.ID == choiceID {
				return o.Option, ch, nil
			}
		}
		return o.Option, Choice{}, ErrUnknownChoice
	}
	return Option{}, Choice{}, ErrUnknownOption
}

// OptionList returns the bare options in catalog order.
func (c Catalog) OptionList() []Option {
	out := make([]Option, 0, len(c.Options))
	for _, o := range c.Options {
		out = append(out, o.Option)
	}
	return out
}
