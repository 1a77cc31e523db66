package notes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// idPair is one "optionId: choiceId(s)" entry of an id record, in the
// order it was written.
type idPair struct {
	optionID  string
	choiceIDs []string
}

var errNotObject = errors.New("notes: id record is not a JSON object")

// jsonObject returns the text between the first '{' and the last '}'.
func jsonObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return "", false
	}
	return s[start : end+1], true
}

// parseIDObject reads {optionId: choiceId | [choiceId...]} keeping key
// order. Old records were sometimes hand-patched, so comments and
// trailing commas are tolerated.
func parseIDObject(obj string) ([]idPair, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON([]byte(obj))))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errNotObject
	}

	var pairs []idPair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, errNotObject
		}

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		pairs = append(pairs, idPair{optionID: key, choiceIDs: flattenIDs(v)})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return pairs, nil
}

func flattenIDs(v any) []string {
	switch t := v.(type) {
	case string:
		return []string{t}
	case json.Number:
		return []string{t.String()}
	case bool:
		return []string{strconv.FormatBool(t)}
	case []any:
		var out []string
		for _, x := range t {
			out = append(out, flattenIDs(x)...)
		}
		return out
	default:
		return nil
	}
}

// resolve maps ids to labels/names through the lookup. Unknown ids are
// kept as truncated placeholders rather than dropped. The count is the
// number of ids that matched a catalog entry.
func resolve(ids []idPair, lookup Lookup) ([]Pair, int) {
	return resolveWith(ids, func(id string) (OptionEntry, bool) {
		return lookup.option(id)
	}, func(e OptionEntry, id string) (Item, bool) {
		return e.item(id)
	})
}

// resolveByScan is the second pass for bare id records. It walks the
// lookup in id order and matches loosely (case, surrounding space), so
// records written by hand still resolve.
func resolveByScan(ids []idPair, lookup Lookup) ([]Pair, int) {
	keys := make([]string, 0, len(lookup))
	for id := range lookup {
		keys = append(keys, id)
	}
	sort.Strings(keys)

	return resolveWith(ids, func(id string) (OptionEntry, bool) {
		want := normalizeID(id)
		for _, k := range keys {
			if normalizeID(k) == want {
				return lookup[k], true
			}
		}
		return OptionEntry{}, false
	}, func(e OptionEntry, id string) (Item, bool) {
		want := normalizeID(id)
		for _, it := range e.Items {
			if normalizeID(it.ID) == want {
				return it, true
			}
		}
		return Item{}, false
	})
}

func resolveWith(
	ids []idPair,
	findOption func(id string) (OptionEntry, bool),
	findItem func(e OptionEntry, id string) (Item, bool),
) ([]Pair, int) {
	pairs := make([]Pair, 0, len(ids))
	resolved := 0
	for _, p := range ids {
		entry, ok := findOption(p.optionID)
		label := entry.Label
		if ok {
			resolved++
		} else {
			label = fmt.Sprintf("Option (%s...)", shortID(p.optionID))
		}

		names := make([]string, 0, len(p.choiceIDs))
		for _, cid := range p.choiceIDs {
			if it, found := findItem(entry, cid); found {
				names = append(names, it.Name)
				continue
			}
			names = append(names, unknownChoice(cid))
		}
		pairs = append(pairs, Pair{Label: label, Value: strings.Join(names, valuesSep)})
	}
	return pairs, resolved
}

func unknownChoice(id string) string {
	return fmt.Sprintf("Unknown (%s...)", shortID(id))
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// shortID is the first 8 characters of an id.
func shortID(id string) string {
	r := []rune(id)
	if len(r) > 8 {
		r = r[:8]
	}
	return string(r)
}
