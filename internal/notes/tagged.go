package notes

import (
	"encoding/json"
	"strings"

	"storefront/internal/options"
)

// TaggedPrefix marks the versioned notes format. Decoders dispatch on it
// before trying any legacy shape.
const TaggedPrefix = "NOTESv2:"

const taggedVersion = 2

type taggedOption struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

type taggedNotes struct {
	Version int            `json:"v"`
	Options []taggedOption `json:"options,omitempty"`
	Note    string         `json:"note,omitempty"`
}

// EncodeTagged writes the versioned form. Names travel as JSON strings, so
// "; " or ": " inside a choice name no longer corrupts the record. Like
// EncodeNotes it returns "" when there is nothing to store.
func EncodeTagged(set options.SelectionSet, note string) (string, error) {
	doc := taggedNotes{Version: taggedVersion, Note: strings.TrimSpace(note)}
	for _, e := range set.Entries() {
		opt := taggedOption{Label: e.OptionLabel}
		for _, c := range e.Choices {
			opt.Values = append(opt.Values, c.ChoiceName)
		}
		doc.Options = append(doc.Options, opt)
	}
	if len(doc.Options) == 0 && doc.Note == "" {
		return "", nil
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return TaggedPrefix + string(data), nil
}

func decodeTagged(raw string, _ Lookup) (Summary, bool) {
	if !strings.HasPrefix(raw, TaggedPrefix) {
		return Summary{}, false
	}
	var doc taggedNotes
	if err := json.Unmarshal([]byte(strings.TrimPrefix(raw, TaggedPrefix)), &doc); err != nil {
		return Summary{}, false
	}
	if doc.Version != taggedVersion {
		return Summary{}, false
	}

	s := Summary{Strategy: StrategyTagged, Note: doc.Note}
	for _, o := range doc.Options {
		s.Pairs = append(s.Pairs, Pair{Label: o.Label, Value: strings.Join(o.Values, valuesSep)})
	}
	return s, true
}

// Format selects the encoder used for new order lines.
type Format string

const (
	FormatLegacy Format = "legacy"
	FormatTagged Format = "v2"
)

// ParseFormat defaults to the legacy grammar.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatTagged)) {
		return FormatTagged
	}
	return FormatLegacy
}

// Encode dispatches on f.
func (f Format) Encode(set options.SelectionSet, note string) (string, error) {
	if f == FormatTagged {
		return EncodeTagged(set, note)
	}
	return EncodeNotes(set, note), nil
}
