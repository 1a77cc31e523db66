package notes

import "strings"

type Strategy string

const (
	StrategyNone        Strategy = "NONE"
	StrategyTagged      Strategy = "TAGGED_V2"
	StrategyPrefixed    Strategy = "OPTIONS_PREFIX"
	StrategyUserNotes   Strategy = "USER_NOTES_ONLY"
	StrategyBareJSON    Strategy = "BARE_JSON"
	StrategyLegacyColon Strategy = "LEGACY_COLON"
	StrategyPlain       Strategy = "PLAIN"
)

// NotesHeading labels free text in display lines.
const NotesHeading = "Notes"

// DetailsUnavailable is shown when an id record holds nothing to resolve.
const DetailsUnavailable = "Option details not available"

// Pair is one display line.
type Pair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary is the decoded, display-ready form of a notes string.
// Note holds customer free text, or the raw string for the plain fallback.
type Summary struct {
	Strategy Strategy `json:"strategy"`
	Pairs    []Pair   `json:"pairs,omitempty"`
	Note     string   `json:"note,omitempty"`
}

// Lines flattens the summary for rendering; free text comes last under
// NotesHeading.
func (s Summary) Lines() []Pair {
	out := make([]Pair, 0, len(s.Pairs)+1)
	out = append(out, s.Pairs...)
	if s.Note != "" {
		out = append(out, Pair{Label: NotesHeading, Value: s.Note})
	}
	return out
}

type decodeFunc func(raw string, lookup Lookup) (Summary, bool)

// legacyChain is tried in order; each entry reads one historical record
// shape. Keep every step even where two overlap: persisted rows depend on
// all of them.
var legacyChain = []decodeFunc{
	decodePrefixed,
	decodeUserNotesOnly,
	decodeBareJSON,
	decodeLegacyColon,
}

// DecodeNotes turns a stored notes string back into display lines. It
// never fails: anything unreadable ends up verbatim under the plain
// fallback, and unknown ids become truncated placeholders.
func DecodeNotes(raw string, lookup Lookup) Summary {
	if strings.TrimSpace(raw) == "" {
		return Summary{Strategy: StrategyNone}
	}

	if s, ok := safely(decodeTagged, raw, lookup); ok {
		return s
	}

	for _, fn := range legacyChain {
		if s, ok := safely(fn, raw, lookup); ok {
			return s
		}
	}

	return Summary{Strategy: StrategyPlain, Note: raw}
}

// DecodeNullable decodes a nullable column value.
func DecodeNullable(raw *string, lookup Lookup) Summary {
	if raw == nil {
		return Summary{Strategy: StrategyNone}
	}
	return DecodeNotes(*raw, lookup)
}

// safely turns a panic inside one strategy into "not applicable" so one
// corrupt row cannot take down an order listing.
func safely(fn decodeFunc, raw string, lookup Lookup) (s Summary, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s, ok = Summary{}, false
		}
	}()
	return fn(raw, lookup)
}

// 1. "OPTIONS:" followed by either an id object or readable pairs.
func decodePrefixed(raw string, lookup Lookup) (Summary, bool) {
	if !strings.HasPrefix(raw, optionsPrefix) {
		return Summary{}, false
	}
	body, note := cutUserNotes(strings.TrimPrefix(raw, optionsPrefix))

	// Braces are legal inside choice names, so text that does not parse
	// as an id object is read as pairs.
	if obj, found := jsonObject(body); found {
		if ids, err := parseIDObject(obj); err == nil {
			pairs, _ := resolve(ids, lookup)
			if len(pairs) == 0 {
				return Summary{}, false
			}
			return Summary{Strategy: StrategyPrefixed, Pairs: pairs, Note: note}, true
		}
	}

	pairs := splitPairs(body)
	if len(pairs) == 0 {
		return Summary{}, false
	}
	return Summary{Strategy: StrategyPrefixed, Pairs: pairs, Note: note}, true
}

// 2. "USER_NOTES:" only; the rest is one untouched note.
func decodeUserNotesOnly(raw string, _ Lookup) (Summary, bool) {
	if !strings.HasPrefix(raw, userNotesPrefix) {
		return Summary{}, false
	}
	return Summary{
		Strategy: StrategyUserNotes,
		Note:     strings.TrimPrefix(raw, userNotesPrefix),
	}, true
}

// 3. An unprefixed id object.
func decodeBareJSON(raw string, lookup Lookup) (Summary, bool) {
	if strings.HasPrefix(raw, optionsPrefix) || strings.HasPrefix(raw, userNotesPrefix) {
		return Summary{}, false
	}
	obj, found := jsonObject(raw)
	if !found {
		return Summary{}, false
	}
	ids, err := parseIDObject(obj)
	if err != nil {
		return Summary{}, false
	}

	if len(ids) == 0 {
		return Summary{Strategy: StrategyBareJSON, Note: DetailsUnavailable}, true
	}

	// Nothing matched exactly: retry with the loose scan before settling
	// for placeholders.
	pairs, resolved := resolve(ids, lookup)
	if resolved == 0 {
		if scanned, n := resolveByScan(ids, lookup); n > 0 {
			pairs = scanned
		}
	}
	return Summary{Strategy: StrategyBareJSON, Pairs: pairs}, true
}

// 4. "label: value; label: value" without the OPTIONS: prefix.
func decodeLegacyColon(raw string, _ Lookup) (Summary, bool) {
	if !strings.Contains(raw, ":") || strings.Contains(raw, "{") {
		return Summary{}, false
	}
	body, note := cutUserNotes(raw)
	pairs := splitPairs(body)
	if len(pairs) == 0 && note == "" {
		return Summary{}, false
	}
	return Summary{Strategy: StrategyLegacyColon, Pairs: pairs, Note: note}, true
}

// cutUserNotes splits a trailing "; USER_NOTES:..." segment off. The note
// may itself contain delimiters, so it is cut before any splitting.
func cutUserNotes(s string) (body, note string) {
	idx := strings.Index(s, userNotesPrefix)
	if idx < 0 {
		return s, ""
	}
	body = strings.TrimSpace(s[:idx])
	body = strings.TrimSpace(strings.TrimSuffix(body, ";"))
	return body, s[idx+len(userNotesPrefix):]
}

// splitPairs reads already human-readable "label: value" segments.
func splitPairs(body string) []Pair {
	var pairs []Pair
	for _, seg := range strings.Split(body, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		label, value, ok := strings.Cut(seg, ":")
		if !ok {
			pairs = append(pairs, Pair{Value: seg})
			continue
		}
		pairs = append(pairs, Pair{
			Label: strings.TrimSpace(label),
			Value: strings.TrimSpace(value),
		})
	}
	return pairs
}
