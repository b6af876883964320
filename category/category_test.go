package category

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoriesOfOverlappingBoundaries(t *testing.T) {
	rules := []Rule{
		{Name: NameDefault},
		{Name: NameKanji},
		{Name: NameKanjiNum},
	}
	def := NewDefinition(rules, nil)
	kanjiID, _ := def.ByName(NameKanji)
	kanjiNumID, _ := def.ByName(NameKanjiNum)

	// A wide KANJI range added first, then a narrower KANJINUMERIC range
	// nested entirely inside it — AddBoundary only sorts by Lo, so Hi is
	// not monotonic across the resulting slice.
	def.AddBoundary(0x3400, 0x9FFF, kanjiID)
	def.AddBoundary(0x3500, 0x3600, kanjiNumID)

	// A code point inside the nested range must match BOTH categories,
	// not just the first (narrower) boundary whose Hi a naive binary
	// search would have found.
	got := def.CategoriesOf(0x3550)
	require.ElementsMatch(t, []ID{kanjiID, kanjiNumID}, got)

	// A code point inside the wide range but outside the nested one
	// matches only KANJI.
	got = def.CategoriesOf(0x3450)
	require.Equal(t, []ID{kanjiID}, got)
}

func TestCategoriesOfDefaultFallback(t *testing.T) {
	def := DefaultIPADICDefinition()
	defaultID, _ := def.ByName(NameDefault)

	got := def.CategoriesOf(0x2600) // miscellaneous symbol, no boundary covers it
	require.Equal(t, []ID{defaultID}, got)
}

func TestCategoriesOfKanjiAndHiragana(t *testing.T) {
	def := DefaultIPADICDefinition()
	kanjiID, _ := def.ByName(NameKanji)
	hiraganaID, _ := def.ByName(NameHiragana)

	require.Equal(t, kanjiID, def.Primary('東'))
	require.Equal(t, hiraganaID, def.Primary('あ'))
}

func TestIsSpace(t *testing.T) {
	def := DefaultIPADICDefinition()
	require.True(t, def.IsSpace(' '))
	require.True(t, def.IsSpace('　'))
	require.False(t, def.IsSpace('東'))
}

func TestByNameUnknown(t *testing.T) {
	def := DefaultIPADICDefinition()
	_, ok := def.ByName("NOT_A_CATEGORY")
	require.False(t, ok)
}

func TestRuleOutOfRangeFallsBackToDefault(t *testing.T) {
	def := DefaultIPADICDefinition()
	r := def.Rule(ID(len(def.Rules) + 10))
	require.Equal(t, NameDefault, r.Name)
}
