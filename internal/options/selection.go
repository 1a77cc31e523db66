package options

import "encoding/json"

// Entry is one option's slot in a SelectionSet.
type Entry struct {
	OptionID    string     `json:"option_id"`
	OptionLabel string     `json:"option_label"`
	Choices     []Selected `json:"choices"`
}

// SelectionSet maps option id to the choices picked for it.
// Options keep the position of their first mutation, so encoding order is
// stable even when a slot is emptied and refilled.
//
// A SelectionSet is never modified in place: Select and Deselect return a
// new set. The zero value is an empty set.
type SelectionSet struct {
	order   []string
	entries map[string]Entry
}

func NewSelectionSet() SelectionSet {
	return SelectionSet{}
}

// Get returns the choices picked for an option (nil if none).
func (s SelectionSet) Get(optionID string) []Selected {
	e, ok := s.entries[optionID]
	if !ok {
		return nil
	}
	out := make([]Selected, len(e.Choices))
	copy(out, e.Choices)
	return out
}

func (s SelectionSet) Count(optionID string) int {
	return len(s.entries[optionID].Choices)
}

// Has reports whether the choice is currently picked for the option.
func (s SelectionSet) Has(optionID, choiceID string) bool {
	for _, c := range s.entries[optionID].Choices {
		if c.ChoiceID == choiceID {
			return true
		}
	}
	return false
}

// Entries returns the non-empty option slots in order.
func (s SelectionSet) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		e := s.entries[id]
		if len(e.Choices) == 0 {
			continue
		}
		choices := make([]Selected, len(e.Choices))
		copy(choices, e.Choices)
		e.Choices = choices
		out = append(out, e)
	}
	return out
}

// Empty reports whether no choice is picked at all.
func (s SelectionSet) Empty() bool {
	for _, e := range s.entries {
		if len(e.Choices) > 0 {
			return false
		}
	}
	return true
}

func (s SelectionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Entries())
}

// with returns a copy of s where the option's slot holds choices.
func (s SelectionSet) with(option Option, choices []Selected) SelectionSet {
	next := SelectionSet{
		order:   make([]string, len(s.order), len(s.order)+1),
		entries: make(map[string]Entry, len(s.entries)+1),
	}
	copy(next.order, s.order)
	for k, v := range s.entries {
		next.entries[k] = v
	}
	if _, ok := next.entries[option.ID]; !ok {
		next.order = append(next.order, option.ID)
	}
	next.entries[option.ID] = Entry{
		OptionID:    option.ID,
		OptionLabel: option.Label,
		Choices:     choices,
	}
	return next
}

// Select picks choice for option.
//
// Single-choice options (EXACTLY_ONE, AT_MOST_ONE) replace whatever was
// picked before. UP_TO_N appends while under the cap and is a no-op once
// the cap is reached. Picking an already-picked choice, an unavailable
// choice or a choice of another option leaves the set unchanged.
func Select(set SelectionSet, option Option, choice Choice) SelectionSet {
	if !choice.IsAvailable || (choice.OptionID != "" && choice.OptionID != option.ID) {
		return set
	}

	if option.single() {
		if set.Count(option.ID) == 1 && set.Has(option.ID, choice.ID) {
			return set
		}
		return set.with(option, []Selected{selectedFrom(choice)})
	}

	if set.Has(option.ID, choice.ID) {
		return set
	}
	current := set.entries[option.ID].Choices
	if len(current) >= option.Limit() {
		return set
	}
	next := make([]Selected, 0, len(current)+1)
	next = append(next, current...)
	next = append(next, selectedFrom(choice))
	return set.with(option, next)
}

// Deselect removes choice from option's slot if it is there. Requiredness
// is not checked here; see ValidateRequired.
func Deselect(set SelectionSet, option Option, choice Choice) SelectionSet {
	if !set.Has(option.ID, choice.ID) {
		return set
	}
	current := set.entries[option.ID].Choices
	next := make([]Selected, 0, len(current))
	for _, c := range current {
		if c.ChoiceID != choice.ID {
			next = append(next, c)
		}
	}
	return set.with(option, next)
}

// IsChoiceSelectable reports whether the UI should offer the choice:
// it is already picked, or the option still has room.
func IsChoiceSelectable(set SelectionSet, option Option, choice Choice) bool {
	if set.Has(option.ID, choice.ID) {
		return true
	}
	if !choice.IsAvailable {
		return false
	}
	if option.single() {
		// replace-on-select keeps single options always clickable
		return true
	}
	return set.Count(option.ID) < option.Limit()
}

// ValidateRequired is called once at submission. It returns a
// *MissingRequiredOptionError naming every required option with no pick.
func ValidateRequired(set SelectionSet, opts []Option) error {
	var missing []MissingOption
	for _, o := range opts {
		if o.IsRequired && set.Count(o.ID) == 0 {
			missing = append(missing, MissingOption{ID: o.ID, Label: o.Label})
		}
	}
	if len(missing) > 0 {
		return &MissingRequiredOptionError{Missing: missing}
	}
	return nil
}
