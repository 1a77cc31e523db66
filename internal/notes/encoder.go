package notes

import (
	"strings"

	"storefront/internal/options"
)

const (
	optionsPrefix   = "OPTIONS:"
	userNotesPrefix = "USER_NOTES:"

	pairSep   = "; "
	labelSep  = ": "
	valuesSep = ", "
)

// EncodeNotes flattens a finished selection and the customer's note into
// the single notes column:
//
//	OPTIONS:Size: Large; Toppings: Boba, Jelly; USER_NOTES:no straw
//
// Choice names, not ids, are written so receipts keep the name the
// customer saw even after a rename. An empty result means "no notes" and
// must be stored as NULL (see Nullable).
func EncodeNotes(set options.SelectionSet, note string) string {
	var pairs []string
	for _, e := range set.Entries() {
		names := make([]string, 0, len(e.Choices))
		for _, c := range e.Choices {
			names = append(names, c.ChoiceName)
		}
		pairs = append(pairs, e.OptionLabel+labelSep+strings.Join(names, valuesSep))
	}

	var b strings.Builder
	if len(pairs) > 0 {
		b.WriteString(optionsPrefix)
		b.WriteString(strings.Join(pairs, pairSep))
	}

	note = strings.TrimSpace(note)
	if note != "" {
		if b.Len() > 0 {
			b.WriteString(pairSep)
		}
		b.WriteString(userNotesPrefix)
		b.WriteString(note)
	}

	return b.String()
}

// Nullable maps the encoder's empty result to nil for storage.
func Nullable(encoded string) *string {
	if encoded == "" {
		return nil
	}
	return &encoded
}
