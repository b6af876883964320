package lattice

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocjk/kotoba/category"
	"github.com/gocjk/kotoba/dictionary"
	"github.com/gocjk/kotoba/doublearray"
)

// buildDict wires a minimal but self-consistent dictionary: a two-entry
// system lexicon ("すもも", "もも") sharing context id 0 at zero connection
// cost, plus a DEFAULT-category unknown entry. Only characters whose
// category is DEFAULT get an unknown-word candidate from it; hiragana
// positions rely on the two lexicon entries.
func buildDict(t *testing.T) *dictionary.Dictionary {
	t.Helper()

	builder := dictionary.NewWordDetailsBuilder()
	sumomoID := builder.Add("すもも", "0", "0", "100", "名詞")
	momoID := builder.Add("もも", "0", "0", "50", "名詞")
	details, _, _ := builder.Build()

	trieBuilder := doublearray.NewBuilder()
	trieBuilder.Add([]byte("すもも"), doublearray.PackValue(sumomoID, 1))
	trieBuilder.Add([]byte("もも"), doublearray.PackValue(momoID, 1))
	trie := trieBuilder.Build()

	entries := []dictionary.WordEntry{
		{WordID: dictionary.WordId{ID: sumomoID, LexKind: dictionary.System}, WordCost: 100},
		{WordID: dictionary.WordId{ID: momoID, LexKind: dictionary.System}, WordCost: 50},
	}
	prefix := dictionary.NewPrefixDictionary(trie, entries, dictionary.System)

	matrix := dictionary.NewConnectionCostMatrix(1, 1, []int16{0})

	def := category.DefaultIPADICDefinition()
	defaultID, _ := def.ByName(category.NameDefault)
	unk := dictionary.NewUnknownDictionary(map[category.ID][]dictionary.WordEntry{
		defaultID: {{WordID: dictionary.WordId{LexKind: dictionary.Unknown}, WordCost: 5000}},
	})

	return &dictionary.Dictionary{
		Metadata: &dictionary.Metadata{Schema: []string{"surface", "l", "r", "cost", "pos1"}},
		CharDef:  def,
		Unknown:  unk,
		Prefix:   prefix,
		Matrix:   matrix,
		Details:  details,
	}
}

func TestSolvePrefersLowerCostDictionaryPath(t *testing.T) {
	dict := buildDict(t)
	l := New(dict, nil, NormalMode())

	path, err := l.Solve([]rune("すもも"))
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, 0, path[0].BeginChar)
	require.Equal(t, 3, path[0].EndChar)
}

func TestSolveFallsBackToUnknownWord(t *testing.T) {
	dict := buildDict(t)
	l := New(dict, nil, NormalMode())

	// U+263A is outside every boundary DefaultIPADICDefinition registers,
	// so it resolves to the DEFAULT category fallback and must be
	// covered by the DEFAULT unknown-word entry this test's dictionary
	// registers.
	path, err := l.Solve([]rune("☺"))
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, dictionary.Unknown, path[0].WordID.LexKind)
}

func TestSolveIsReusableAfterReset(t *testing.T) {
	dict := buildDict(t)
	l := New(dict, nil, NormalMode())

	_, err := l.Solve([]rune("すもも"))
	require.NoError(t, err)

	path, err := l.Solve([]rune("もも"))
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, 0, path[0].BeginChar)
	require.Equal(t, 2, path[0].EndChar)
}

func TestDecomposeModeSolvesNonKanjiInput(t *testing.T) {
	dict := buildDict(t)
	decomposeMode := DefaultDecomposeMode()
	l := New(dict, nil, decomposeMode)

	// "すもも" alone has no Kanji, so the decompose penalty never fires
	// here; this test only exercises that Decompose mode still produces
	// a valid path end-to-end. No test in this module covers the
	// Kanji-span decomposition itself.
	path, err := l.Solve([]rune("すもも"))
	require.NoError(t, err)
	require.NotEmpty(t, path)
}
