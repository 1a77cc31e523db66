package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	size = Option{ID: "opt-size", Label: "Size", SelectionType: ExactlyOne, IsRequired: true}
	ice  = Option{ID: "opt-ice", Label: "Ice", SelectionType: AtMostOne}
	tops = Option{ID: "opt-top", Label: "Toppings", SelectionType: UpToN, MaxSelections: 2}

	small = Choice{ID: "c-small", OptionID: "opt-size", Name: "Small", IsAvailable: true}
	large = Choice{ID: "c-large", OptionID: "opt-size", Name: "Large", AdditionalPrice: 5000, IsAvailable: true}
	noIce = Choice{ID: "c-noice", OptionID: "opt-ice", Name: "No Ice", IsAvailable: true}
	boba  = Choice{ID: "c-boba", OptionID: "opt-top", Name: "Boba", AdditionalPrice: 3000, IsAvailable: true}
	jelly = Choice{ID: "c-jelly", OptionID: "opt-top", Name: "Jelly", AdditionalPrice: 2000, IsAvailable: true}
	cream = Choice{ID: "c-cream", OptionID: "opt-top", Name: "Cream", AdditionalPrice: 4000, IsAvailable: true}
)

func TestSelect_ExactlyOneLastClickWins(t *testing.T) {
	set := NewSelectionSet()
	assert.Equal(t, 0, set.Count(size.ID))

	set = Select(set, size, small)
	set = Select(set, size, large)
	set = Select(set, size, small)

	got := set.Get(size.ID)
	require.Len(t, got, 1)
	assert.Equal(t, "c-small", got[0].ChoiceID)
}

func TestSelect_ExactlyOneNeverExceedsOne(t *testing.T) {
	seq := []Choice{small, large, large, small, large}
	set := NewSelectionSet()
	for _, c := range seq {
		set = Select(set, size, c)
		assert.Equal(t, 1, set.Count(size.ID))
	}
}

func TestSelect_UpToNCapIsNoOp(t *testing.T) {
	set := NewSelectionSet()
	set = Select(set, tops, boba)
	set = Select(set, tops, jelly)
	require.Equal(t, 2, set.Count(tops.ID))

	before := set.Get(tops.ID)
	set = Select(set, tops, cream)
	assert.Equal(t, before, set.Get(tops.ID))
	assert.False(t, IsChoiceSelectable(set, tops, cream))
	assert.True(t, IsChoiceSelectable(set, tops, boba))
}

func TestSelect_UpToNKeepsSelectionOrder(t *testing.T) {
	set := Select(Select(NewSelectionSet(), tops, jelly), tops, boba)
	got := set.Get(tops.ID)
	require.Len(t, got, 2)
	assert.Equal(t, "Jelly", got[0].ChoiceName)
	assert.Equal(t, "Boba", got[1].ChoiceName)
}

func TestSelect_DuplicatePickIgnored(t *testing.T) {
	set := Select(Select(NewSelectionSet(), tops, boba), tops, boba)
	assert.Equal(t, 1, set.Count(tops.ID))
}

func TestSelect_UnavailableChoiceRejected(t *testing.T) {
	soldOut := cream
	soldOut.IsAvailable = false

	set := Select(NewSelectionSet(), tops, soldOut)
	assert.True(t, set.Empty())
	assert.False(t, IsChoiceSelectable(set, tops, soldOut))
}

func TestSelect_ForeignChoiceRejected(t *testing.T) {
	set := Select(NewSelectionSet(), size, boba)
	assert.True(t, set.Empty())
}

func TestSelect_DoesNotMutateInput(t *testing.T) {
	base := Select(NewSelectionSet(), tops, boba)
	_ = Select(base, tops, jelly)
	_ = Deselect(base, tops, boba)

	assert.Equal(t, 1, base.Count(tops.ID))
}

func TestDeselect(t *testing.T) {
	set := Select(Select(NewSelectionSet(), tops, boba), tops, jelly)
	set = Deselect(set, tops, boba)

	got := set.Get(tops.ID)
	require.Len(t, got, 1)
	assert.Equal(t, "c-jelly", got[0].ChoiceID)

	set = Select(NewSelectionSet(), size, large)
	set = Deselect(set, size, large)
	assert.Equal(t, 0, set.Count(size.ID))

	// removing something never picked is a no-op
	set = Deselect(set, ice, noIce)
	assert.True(t, set.Empty())
}

func TestEntries_KeepFirstMutationOrder(t *testing.T) {
	set := NewSelectionSet()
	set = Select(set, ice, noIce)
	set = Select(set, size, large)
	set = Deselect(set, ice, noIce)
	set = Select(set, ice, noIce)

	entries := set.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "Ice", entries[0].OptionLabel)
	assert.Equal(t, "Size", entries[1].OptionLabel)
}

func TestIsChoiceSelectable_SingleOptionsStayClickable(t *testing.T) {
	set := Select(NewSelectionSet(), size, small)
	assert.True(t, IsChoiceSelectable(set, size, large))
	assert.True(t, IsChoiceSelectable(set, size, small))
}

func TestValidateRequired(t *testing.T) {
	opts := []Option{size, ice, tops}

	err := ValidateRequired(NewSelectionSet(), opts)
	var missing *MissingRequiredOptionError
	require.True(t, errors.As(err, &missing))
	require.Len(t, missing.Missing, 1)
	assert.Equal(t, "opt-size", missing.Missing[0].ID)
	assert.Contains(t, err.Error(), "Size")

	set := Select(NewSelectionSet(), size, large)
	assert.NoError(t, ValidateRequired(set, opts))

	// deselecting a required single option is allowed, but fails submission
	set = Deselect(set, size, large)
	assert.Error(t, ValidateRequired(set, opts))
}

func TestOptionLimit(t *testing.T) {
	assert.Equal(t, 1, size.Limit())
	assert.Equal(t, 1, Option{SelectionType: AtMostOne, MaxSelections: 5}.Limit())
	assert.Equal(t, 2, tops.Limit())
	assert.Equal(t, 1, Option{SelectionType: UpToN}.Limit())
}

func TestCatalogSnapshotAndFind(t *testing.T) {
	soldOut := cream
	soldOut.IsAvailable = false

	cat := Catalog{
		MenuItemID: "item-1",
		Options: []OptionWithChoices{
			{Option: size, Choices: []Choice{small, large}},
			{Option: tops, Choices: []Choice{boba, soldOut}},
		},
	}

	snap := cat.Snapshot()
	require.Len(t, snap.Options, 2)
	assert.Len(t, snap.Options[1].Choices, 1)
	assert.Len(t, cat.Options[1].Choices, 2, "snapshot must not alter the source")

	o, c, err := snap.Find("opt-size", "c-large")
	require.NoError(t, err)
	assert.Equal(t, "Size", o.Label)
	assert.Equal(t, Money(5000), c.AdditionalPrice)

	_, _, err = snap.Find("opt-top", "c-cream")
	assert.ErrorIs(t, err, ErrUnknownChoice)

	_, _, err = snap.Find("nope", "c-cream")
	assert.ErrorIs(t, err, ErrUnknownOption)

	assert.Equal(t, []Option{size, tops}, snap.OptionList())
}
