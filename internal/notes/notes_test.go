package notes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/options"
)

var (
	sugar = options.Option{ID: "7f3c9a10-aaaa-bbbb-cccc-000000000001", Label: "Sugar", SelectionType: options.ExactlyOne}
	temp  = options.Option{ID: "7f3c9a10-aaaa-bbbb-cccc-000000000002", Label: "Temperature", SelectionType: options.AtMostOne}
	tops  = options.Option{ID: "7f3c9a10-aaaa-bbbb-cccc-000000000003", Label: "Toppings", SelectionType: options.UpToN, MaxSelections: 3}

	lessSugar = options.Choice{ID: "c0ffee00-0000-0000-0000-000000000001", OptionID: sugar.ID, Name: "Less Sugar", IsAvailable: true}
	hot       = options.Choice{ID: "c0ffee00-0000-0000-0000-000000000002", OptionID: temp.ID, Name: "Hot", IsAvailable: true}
	boba      = options.Choice{ID: "c0ffee00-0000-0000-0000-000000000003", OptionID: tops.ID, Name: "Boba", IsAvailable: true}
	jelly     = options.Choice{ID: "c0ffee00-0000-0000-0000-000000000004", OptionID: tops.ID, Name: "Jelly", IsAvailable: true}
)

func testCatalog() options.Catalog {
	return options.Catalog{
		MenuItemID: "milk-tea",
		Options: []options.OptionWithChoices{
			{Option: sugar, Choices: []options.Choice{lessSugar}},
			{Option: temp, Choices: []options.Choice{hot}},
			{Option: tops, Choices: []options.Choice{boba, jelly}},
		},
	}
}

func sugarAndHot() options.SelectionSet {
	set := options.Select(options.NewSelectionSet(), sugar, lessSugar)
	return options.Select(set, temp, hot)
}

func TestEncodeNotes(t *testing.T) {
	assert.Equal(t,
		"OPTIONS:Sugar: Less Sugar; Temperature: Hot",
		EncodeNotes(sugarAndHot(), ""),
	)

	assert.Equal(t,
		"OPTIONS:Sugar: Less Sugar; Temperature: Hot; USER_NOTES:no straw",
		EncodeNotes(sugarAndHot(), "  no straw "),
	)

	assert.Equal(t, "USER_NOTES:extra napkins", EncodeNotes(options.NewSelectionSet(), "extra napkins"))
	assert.Equal(t, "", EncodeNotes(options.NewSelectionSet(), "   "))
}

func TestEncodeNotes_MultiValueInSelectionOrder(t *testing.T) {
	set := options.Select(options.NewSelectionSet(), tops, jelly)
	set = options.Select(set, tops, boba)

	assert.Equal(t, "OPTIONS:Toppings: Jelly, Boba", EncodeNotes(set, ""))
}

func TestEncodeNotes_SkipsEmptiedOptions(t *testing.T) {
	set := options.Deselect(sugarAndHot(), sugar, lessSugar)
	assert.Equal(t, "OPTIONS:Temperature: Hot", EncodeNotes(set, ""))
}

func TestNullable(t *testing.T) {
	assert.Nil(t, Nullable(""))
	got := Nullable("USER_NOTES:x")
	require.NotNil(t, got)
	assert.Equal(t, "USER_NOTES:x", *got)
}

func TestDecode_LegacyTextualWithoutCatalog(t *testing.T) {
	s := DecodeNotes("OPTIONS:Sugar: Less Sugar; Temperature: Hot", nil)

	assert.Equal(t, StrategyPrefixed, s.Strategy)
	assert.Equal(t, []Pair{
		{Label: "Sugar", Value: "Less Sugar"},
		{Label: "Temperature", Value: "Hot"},
	}, s.Pairs)
	assert.Empty(t, s.Note)
}

func TestDecode_RoundTrip(t *testing.T) {
	set := options.Select(sugarAndHot(), tops, boba)
	set = options.Select(set, tops, jelly)

	s := DecodeNotes(EncodeNotes(set, "less ice please; thanks: a lot"), NewLookup(testCatalog()))

	assert.Equal(t, []Pair{
		{Label: "Sugar", Value: "Less Sugar"},
		{Label: "Temperature", Value: "Hot"},
		{Label: "Toppings", Value: "Boba, Jelly"},
	}, s.Pairs)
	assert.Equal(t, "less ice please; thanks: a lot", s.Note)
}

func TestDecode_Idempotent(t *testing.T) {
	inputs := []string{
		"OPTIONS:Sugar: Less Sugar; Temperature: Hot",
		`{"` + sugar.ID + `":"` + lessSugar.ID + `"}`,
		"{garbage",
		"USER_NOTES:hello",
		"Size: Large; Ice: None",
	}
	lookup := NewLookup(testCatalog())
	for _, in := range inputs {
		assert.Equal(t, DecodeNotes(in, lookup), DecodeNotes(in, lookup), in)
	}
}

func TestDecode_PrefixedIDObject(t *testing.T) {
	raw := `OPTIONS:{"` + sugar.ID + `":"` + lessSugar.ID + `","` + tops.ID + `":["` + boba.ID + `","deadbeefcafe"]}`

	s := DecodeNotes(raw, NewLookup(testCatalog()))

	assert.Equal(t, StrategyPrefixed, s.Strategy)
	assert.Equal(t, []Pair{
		{Label: "Sugar", Value: "Less Sugar"},
		{Label: "Toppings", Value: "Boba, Unknown (deadbeef...)"},
	}, s.Pairs)
}

func TestDecode_UnresolvedIDsBecomePlaceholders(t *testing.T) {
	raw := `OPTIONS:{"0123456789abcdef":"fedcba9876543210"}`

	s := DecodeNotes(raw, nil)

	require.Len(t, s.Pairs, 1)
	assert.Equal(t, "Option (01234567...)", s.Pairs[0].Label)
	assert.Equal(t, "Unknown (fedcba98...)", s.Pairs[0].Value)
}

func TestDecode_UserNotesOnlyIsNotSplit(t *testing.T) {
	s := DecodeNotes("USER_NOTES:Size: small; no {sugar}", nil)

	assert.Equal(t, StrategyUserNotes, s.Strategy)
	assert.Empty(t, s.Pairs)
	assert.Equal(t, "Size: small; no {sugar}", s.Note)
}

func TestDecode_BareJSON(t *testing.T) {
	raw := `{"` + temp.ID + `": "` + hot.ID + `", /* patched */ }`

	s := DecodeNotes(raw, NewLookup(testCatalog()))

	assert.Equal(t, StrategyBareJSON, s.Strategy)
	assert.Equal(t, []Pair{{Label: "Temperature", Value: "Hot"}}, s.Pairs)
}

func TestDecode_BareJSONEmptyObject(t *testing.T) {
	s := DecodeNotes("{}", NewLookup(testCatalog()))

	assert.Equal(t, StrategyBareJSON, s.Strategy)
	assert.Empty(t, s.Pairs)
	assert.Equal(t, DetailsUnavailable, s.Note)
}

func TestDecode_ScanPassMatchesLoosely(t *testing.T) {
	ids := []idPair{{optionID: "  " + strings.ToUpper(temp.ID), choiceIDs: []string{strings.ToUpper(hot.ID)}}}
	lookup := NewLookup(testCatalog())

	exact, n := resolve(ids, lookup)
	assert.Zero(t, n)
	assert.Equal(t, "Option (  7F3C9A...)", exact[0].Label)

	scanned, n := resolveByScan(ids, lookup)
	assert.Equal(t, 1, n)
	assert.Equal(t, []Pair{{Label: "Temperature", Value: "Hot"}}, scanned)
}

func TestDecode_BareJSONFallsBackToScan(t *testing.T) {
	raw := `{" ` + strings.ToUpper(temp.ID) + `": "` + strings.ToUpper(hot.ID) + `"}`

	s := DecodeNotes(raw, NewLookup(testCatalog()))

	assert.Equal(t, StrategyBareJSON, s.Strategy)
	assert.Equal(t, []Pair{{Label: "Temperature", Value: "Hot"}}, s.Pairs)
}

func TestDecode_BareJSONUnknownIDsKeepPlaceholders(t *testing.T) {
	s := DecodeNotes(`{"0123456789abcdef":"fedcba9876543210"}`, NewLookup(testCatalog()))

	assert.Equal(t, StrategyBareJSON, s.Strategy)
	assert.Equal(t, []Pair{{Label: "Option (01234567...)", Value: "Unknown (fedcba98...)"}}, s.Pairs)
}

func TestDecode_RoundTripWithBracesInName(t *testing.T) {
	extra := options.Option{ID: "extra", Label: "Extra", SelectionType: options.UpToN, MaxSelections: 2}
	cheese := options.Choice{ID: "cheese", OptionID: "extra", Name: "Cheese {double}", IsAvailable: true}
	set := options.Select(options.NewSelectionSet(), extra, cheese)

	raw := EncodeNotes(set, "cut in half")
	require.Equal(t, "OPTIONS:Extra: Cheese {double}; USER_NOTES:cut in half", raw)

	s := DecodeNotes(raw, nil)
	assert.Equal(t, StrategyPrefixed, s.Strategy)
	assert.Equal(t, []Pair{{Label: "Extra", Value: "Cheese {double}"}}, s.Pairs)
	assert.Equal(t, "cut in half", s.Note)
}

func TestDecode_LegacyColon(t *testing.T) {
	s := DecodeNotes("Size: Large ;  Ice: None ; ", nil)

	assert.Equal(t, StrategyLegacyColon, s.Strategy)
	assert.Equal(t, []Pair{
		{Label: "Size", Value: "Large"},
		{Label: "Ice", Value: "None"},
	}, s.Pairs)
}

func TestDecode_PlainFallback(t *testing.T) {
	for _, raw := range []string{"{garbage", "just a note", "{bad: json"} {
		s := DecodeNotes(raw, nil)
		assert.Equal(t, StrategyPlain, s.Strategy, raw)
		assert.Equal(t, raw, s.Note)
		assert.Equal(t, []Pair{{Label: NotesHeading, Value: raw}}, s.Lines())
	}
}

func TestDecode_Empty(t *testing.T) {
	assert.Equal(t, StrategyNone, DecodeNotes("", nil).Strategy)
	assert.Equal(t, StrategyNone, DecodeNullable(nil, nil).Strategy)
	assert.Empty(t, DecodeNotes("  ", nil).Lines())
}

func TestTagged_RoundTripSurvivesDelimiters(t *testing.T) {
	weird := options.Option{ID: "w", Label: "Temp: pick one", SelectionType: options.ExactlyOne}
	hotCold := options.Choice{ID: "hc", OptionID: "w", Name: "Hot; Cold", IsAvailable: true}
	set := options.Select(options.NewSelectionSet(), weird, hotCold)

	enc, err := EncodeTagged(set, "USER_NOTES: literally")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(enc, TaggedPrefix))

	s := DecodeNotes(enc, nil)
	assert.Equal(t, StrategyTagged, s.Strategy)
	assert.Equal(t, []Pair{{Label: "Temp: pick one", Value: "Hot; Cold"}}, s.Pairs)
	assert.Equal(t, "USER_NOTES: literally", s.Note)
}

func TestTagged_EmptyIsAbsent(t *testing.T) {
	enc, err := EncodeTagged(options.NewSelectionSet(), " ")
	require.NoError(t, err)
	assert.Equal(t, "", enc)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, FormatTagged, ParseFormat("V2"))
	assert.Equal(t, FormatLegacy, ParseFormat(""))
	assert.Equal(t, FormatLegacy, ParseFormat("whatever"))

	enc, err := FormatLegacy.Encode(sugarAndHot(), "")
	require.NoError(t, err)
	assert.Equal(t, "OPTIONS:Sugar: Less Sugar; Temperature: Hot", enc)
}
