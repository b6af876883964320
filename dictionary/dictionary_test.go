package dictionary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocjk/kotoba/category"
	"github.com/gocjk/kotoba/doublearray"
	"github.com/gocjk/kotoba/errs"
)

func buildTinyDictionary(t *testing.T) *Dictionary {
	t.Helper()

	builder := NewWordDetailsBuilder()
	sushiID := builder.Add("すもも", "0", "0", "100", "名詞", "*", "*", "*", "すもも")
	details, wordsBytes, wordsidxBytes := builder.Build()
	_ = wordsBytes
	_ = wordsidxBytes

	trieBuilder := doublearray.NewBuilder()
	trieBuilder.Add([]byte("すもも"), doublearray.PackValue(sushiID, 1))
	trie := trieBuilder.Build()

	entries := []WordEntry{{WordID: WordId{ID: sushiID, LexKind: System}, LeftContextID: 0, RightContextID: 0, WordCost: 100}}
	prefix := NewPrefixDictionary(trie, entries, System)

	matrix := NewConnectionCostMatrix(1, 1, []int16{0})

	def := category.DefaultIPADICDefinition()
	unk := NewUnknownDictionary(map[category.ID][]WordEntry{})

	return &Dictionary{
		Metadata: &Metadata{Schema: []string{"surface", "l", "r", "cost", "pos1", "pos2", "pos3", "pos4", "base_form"}},
		CharDef:  def,
		Unknown:  unk,
		Prefix:   prefix,
		Matrix:   matrix,
		Details:  details,
	}
}

func TestPrefixDictionaryCommonPrefix(t *testing.T) {
	dict := buildTinyDictionary(t)
	matches := dict.Prefix.CommonPrefix([]byte("すもももももも"))
	require.Len(t, matches, 1)
	require.Equal(t, len("すもも"), matches[0].MatchedByteLen)
	require.Len(t, matches[0].Entries, 1)
	require.Equal(t, int16(100), matches[0].Entries[0].WordCost)
}

func TestPrefixDictionaryAbsentKeyYieldsNoMatches(t *testing.T) {
	dict := buildTinyDictionary(t)
	matches := dict.Prefix.CommonPrefix([]byte("東京"))
	require.Empty(t, matches)
}

func TestWordDetailsFields(t *testing.T) {
	dict := buildTinyDictionary(t)
	fields := dict.Details.Fields(0)
	require.Equal(t, []string{"すもも", "0", "0", "100", "名詞", "*", "*", "*", "すもも"}, fields)
}

func TestMetadataFieldCount(t *testing.T) {
	meta := &Metadata{Schema: []string{"surface", "l", "r", "cost", "pos1", "pos2", "pos3", "pos4", "base_form"}}
	require.Equal(t, 5, meta.FieldCount())
}

func TestLoadDictionaryUnknownEmbedded(t *testing.T) {
	_, err := LoadDictionary("embedded://does-not-exist")
	require.Error(t, err)
	require.True(t, errs.Is(err, errs.Load))
}

func TestConnectionCostMatrixRoundTrip(t *testing.T) {
	m := NewConnectionCostMatrix(2, 2, []int16{1, 2, 3, 4})
	b := m.Encode()
	decoded := DecodeMatrix(b)
	require.Equal(t, int16(1), decoded.Cost(0, 0))
	require.Equal(t, int16(4), decoded.Cost(1, 1))
}
