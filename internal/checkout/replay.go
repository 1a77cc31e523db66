package checkout

import (
	"fmt"

	"storefront/internal/options"
)

// Replay applies events to an empty selection strictly in order.
// Single-choice options are last-click-wins, so order matters.
func Replay(cat options.Catalog, events []Event) (options.SelectionSet, error) {
	set := options.NewSelectionSet()

	for i, ev := range events {
		option, choice, err := cat.Find(ev.OptionID, ev.ChoiceID)
		if err != nil {
			return set, fmt.Errorf("event %d: %w", i, err)
		}

		switch ev.Action {
		case ActionSelect:
			set = options.Select(set, option, choice)
		case ActionDeselect:
			set = options.Deselect(set, option, choice)
		default:
			return set, fmt.Errorf("event %d: %w", i, ErrUnknownAction)
		}
	}

	return set, nil
}
