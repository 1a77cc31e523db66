package notes

import "storefront/internal/options"

// Item is a choice as the decoder sees it.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// OptionEntry is one option as the decoder sees it.
type OptionEntry struct {
	Label string `json:"label"`
	Items []Item `json:"items"`
}

// Lookup maps option id to its label and choices. It is only consulted for
// the id-based JSON records; a nil Lookup is valid and resolves nothing.
type Lookup map[string]OptionEntry

// NewLookup builds a Lookup from catalogs. Unavailable choices are kept:
// old orders may reference them.
func NewLookup(catalogs ...options.Catalog) Lookup {
	l := make(Lookup)
	for _, cat := range catalogs {
		for _, o := range cat.Options {
			entry := OptionEntry{Label: o.Label}
			for _, c := range o.Choices {
				entry.Items = append(entry.Items, Item{ID: c.ID, Name: c.Name})
			}
			l[o.ID] = entry
		}
	}
	return l
}

func (l Lookup) option(id string) (OptionEntry, bool) {
	e, ok := l[id]
	return e, ok
}

func (e OptionEntry) item(id string) (Item, bool) {
	for _, it := range e.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
