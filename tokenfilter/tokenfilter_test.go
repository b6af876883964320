package tokenfilter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gocjk/kotoba/dictionary"
	"github.com/gocjk/kotoba/doublearray"
	"github.com/gocjk/kotoba/token"
)

// tinyDict builds a one-entry-per-surface system dictionary whose details
// blob holds only the dictionary-specific remainder (pos1, pos2, pos3,
// pos4, base_form, reading) — per spec.md §8's schema-field-consistency
// property, Details() never includes the dropped surface/context-id/cost
// fields.
func tinyDict(t *testing.T, rows map[string][]string) *dictionary.Dictionary {
	t.Helper()
	builder := dictionary.NewWordDetailsBuilder()
	trieBuilder := doublearray.NewBuilder()

	var entries []dictionary.WordEntry
	for surface, fields := range rows {
		id := builder.Add(fields...)
		trieBuilder.Add([]byte(surface), doublearray.PackValue(id, 1))
		entries = append(entries, dictionary.WordEntry{WordID: dictionary.WordId{ID: id, LexKind: dictionary.System}})
	}
	sortEntriesByID(entries)

	details, _, _ := builder.Build()
	trie := trieBuilder.Build()
	prefix := dictionary.NewPrefixDictionary(trie, entries, dictionary.System)

	return &dictionary.Dictionary{
		Metadata: &dictionary.Metadata{Schema: []string{
			"surface", "l", "r", "cost", "pos1", "pos2", "pos3", "pos4", "base_form", "reading",
		}},
		Prefix:  prefix,
		Details: details,
	}
}

func sortEntriesByID(entries []dictionary.WordEntry) {
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].WordID.ID < entries[j-1].WordID.ID; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
}

func systemToken(dict *dictionary.Dictionary, surface string, id uint32, byteStart, byteEnd, position int) *token.Token {
	return token.New(surface, byteStart, byteEnd, position, 1, dictionary.WordId{ID: id, LexKind: dictionary.System}, dict, nil)
}

func TestLowercaseAndUppercaseFilters(t *testing.T) {
	toks := []*token.Token{token.New("ABC", 0, 3, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)}

	out, err := LowercaseFilter{}.Apply(toks)
	require.NoError(t, err)
	require.Equal(t, "abc", out[0].Surface)

	out, err = UppercaseFilter{}.Apply(out)
	require.NoError(t, err)
	require.Equal(t, "ABC", out[0].Surface)
}

func TestLengthFilterDropsOutOfRange(t *testing.T) {
	short := token.New("a", 0, 1, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)
	mid := token.New("abc", 1, 4, 1, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)
	long := token.New("abcdef", 4, 10, 2, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)

	min, max := 2, 5
	f := LengthFilter{Min: &min, Max: &max}
	out, err := f.Apply([]*token.Token{short, mid, long})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "abc", out[0].Surface)
}

func TestStopAndKeepWordsFilters(t *testing.T) {
	toks := []*token.Token{
		token.New("the", 0, 3, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil),
		token.New("cat", 3, 6, 1, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil),
	}

	stop := NewStopWordsFilter([]string{"the"})
	out, err := stop.Apply(toks)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "cat", out[0].Surface)

	keep := NewKeepWordsFilter([]string{"cat"})
	out, err = keep.Apply([]*token.Token{
		token.New("the", 0, 3, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil),
		token.New("cat", 3, 6, 1, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil),
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "cat", out[0].Surface)
}

func TestMappingFilterSubstitutesSurface(t *testing.T) {
	toks := []*token.Token{token.New("foo", 0, 3, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)}
	f := &MappingFilter{Table: map[string]string{"foo": "bar"}}
	out, err := f.Apply(toks)
	require.NoError(t, err)
	require.Equal(t, "bar", out[0].Surface)
}

func TestJapaneseStopTagsDropsMatchingPOS(t *testing.T) {
	dict := tinyDict(t, map[string][]string{
		"犬": {"名詞", "一般", "*", "*", "犬", "イヌ"},
		"走る": {"動詞", "*", "*", "*", "走る", "ハシル"},
	})

	var inu, hashiru uint32
	for _, e := range dict.Prefix.CommonPrefix([]byte("犬")) {
		inu = e.Entries[0].WordID.ID
	}
	for _, e := range dict.Prefix.CommonPrefix([]byte("走る")) {
		hashiru = e.Entries[0].WordID.ID
	}

	toks := []*token.Token{
		systemToken(dict, "犬", inu, 0, 3, 0),
		systemToken(dict, "走る", hashiru, 3, 9, 1),
	}

	f := NewJapaneseStopTagsFilter([]string{"名詞,一般"})
	out, err := f.Apply(toks)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "走る", out[0].Surface)
}

func TestJapaneseBaseFormAndReadingForm(t *testing.T) {
	dict := tinyDict(t, map[string][]string{
		"食べた": {"動詞", "*", "*", "*", "食べる", "タベタ"},
	})
	var id uint32
	for _, e := range dict.Prefix.CommonPrefix([]byte("食べた")) {
		id = e.Entries[0].WordID.ID
	}

	baseFormTok := systemToken(dict, "食べた", id, 0, 9, 0)
	out, err := JapaneseBaseFormFilter{}.Apply([]*token.Token{baseFormTok})
	require.NoError(t, err)
	require.Equal(t, "食べる", out[0].Surface)

	readingTok := systemToken(dict, "食べた", id, 0, 9, 0)
	out, err = JapaneseReadingFormFilter{}.Apply([]*token.Token{readingTok})
	require.NoError(t, err)
	require.Equal(t, "タベタ", out[0].Surface)

	hira := KanaToHiragana
	readingTok2 := systemToken(dict, "食べた", id, 0, 9, 0)
	out, err = JapaneseReadingFormFilter{Kana: &hira}.Apply([]*token.Token{readingTok2})
	require.NoError(t, err)
	require.Equal(t, "たべた", out[0].Surface)
}

func TestJapaneseKanaConvertsDirection(t *testing.T) {
	tok := token.New("たべる", 0, 9, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)
	kata := KanaToKatakana
	out, err := JapaneseKanaFilter{Direction: kata}.Apply([]*token.Token{tok})
	require.NoError(t, err)
	require.Equal(t, "タベル", out[0].Surface)
}

func TestJapaneseKatakanaStemStripsLongVowelMark(t *testing.T) {
	long := token.New("コンピューター", 0, 0, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)
	tooShort := token.New("ミー", 0, 0, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)

	f := JapaneseKatakanaStemFilter{Min: 3}
	out, err := f.Apply([]*token.Token{long, tooShort})
	require.NoError(t, err)
	require.Equal(t, "コンピュータ", out[0].Surface, "long-vowel mark stripped, remaining length >= Min")
	require.Equal(t, "ミー", out[1].Surface, "remaining length 1 < Min, left untouched")
}

func TestJapaneseNumberConvertsKanjiToArabic(t *testing.T) {
	tok := token.New("一千二百三十四", 0, 0, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)
	f := NewJapaneseNumberFilter(nil)
	out, err := f.Apply([]*token.Token{tok})
	require.NoError(t, err)
	require.Equal(t, "1234", out[0].Surface)
}

func TestJapaneseNumberCanonical24Digit(t *testing.T) {
	surface := "一千二百三十四垓五千六百七十八京九千十二兆三千四百五十六億七千八百九十万千二百三十四"
	tok := token.New(surface, 0, 0, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)
	f := NewJapaneseNumberFilter(nil)
	out, err := f.Apply([]*token.Token{tok})
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234", out[0].Surface)
}

func TestJapaneseNumberRespectsTagRestriction(t *testing.T) {
	dict := tinyDict(t, map[string][]string{
		"一千二百三十四": {"名詞", "数", "*", "*", "一千二百三十四", "*"},
	})
	var id uint32
	for _, e := range dict.Prefix.CommonPrefix([]byte("一千二百三十四")) {
		id = e.Entries[0].WordID.ID
	}
	tok := systemToken(dict, "一千二百三十四", id, 0, 0, 0)

	f := NewJapaneseNumberFilter([]string{"動詞"})
	out, err := f.Apply([]*token.Token{tok})
	require.NoError(t, err)
	require.Equal(t, "一千二百三十四", out[0].Surface, "tag restriction excludes this token's 名詞,数 tag")
}

func TestJapaneseCompoundWordMergesAdjacentRun(t *testing.T) {
	dict := tinyDict(t, map[string][]string{
		"東京": {"名詞", "固有名詞", "*", "*", "東京", "*"},
		"都":  {"名詞", "接尾", "*", "*", "都", "*"},
	})
	var tokyoID, miyakoID uint32
	for _, e := range dict.Prefix.CommonPrefix([]byte("東京")) {
		tokyoID = e.Entries[0].WordID.ID
	}
	for _, e := range dict.Prefix.CommonPrefix([]byte("都")) {
		miyakoID = e.Entries[0].WordID.ID
	}

	toks := []*token.Token{
		systemToken(dict, "東京", tokyoID, 0, 6, 0),
		systemToken(dict, "都", miyakoID, 6, 9, 1),
	}

	f := NewJapaneseCompoundWordFilter([]string{"名詞,固有名詞", "名詞,接尾"}, "名詞,複合")
	out, err := f.Apply(toks)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "東京都", out[0].Surface)
	require.Equal(t, 0, out[0].ByteStart)
	require.Equal(t, 9, out[0].ByteEnd)
	require.Equal(t, "名詞", out[0].Details()[0])
	require.Equal(t, "複合", out[0].Details()[1])
}

func TestJapaneseCompoundWordLeavesLoneMatchAlone(t *testing.T) {
	dict := tinyDict(t, map[string][]string{
		"東京": {"名詞", "固有名詞", "*", "*", "東京", "*"},
	})
	var tokyoID uint32
	for _, e := range dict.Prefix.CommonPrefix([]byte("東京")) {
		tokyoID = e.Entries[0].WordID.ID
	}
	tok := systemToken(dict, "東京", tokyoID, 0, 6, 0)

	f := NewJapaneseCompoundWordFilter([]string{"名詞,固有名詞"}, "名詞,複合")
	out, err := f.Apply([]*token.Token{tok})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "東京", out[0].Surface)
}

func TestStackRunsFiltersInOrder(t *testing.T) {
	toks := []*token.Token{token.New("FOO", 0, 3, 0, 1, dictionary.WordId{LexKind: dictionary.Unknown}, nil, nil)}
	stack := NewStack(LowercaseFilter{}, &MappingFilter{Table: map[string]string{"foo": "bar"}})
	out, err := stack.Apply(toks)
	require.NoError(t, err)
	require.Equal(t, "bar", out[0].Surface)
}
