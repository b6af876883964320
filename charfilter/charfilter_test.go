package charfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetDiffMapCorrectOffsetNoEntries(t *testing.T) {
	var m OffsetDiffMap
	assert.Equal(t, 5, CorrectOffset(5, m))
}

func TestOffsetDiffMapCorrectOffsetUsesLastDiffAtOrBeforeP(t *testing.T) {
	var m OffsetDiffMap
	m.Record(3, 2)
	m.Record(10, -1)

	assert.Equal(t, 0, CorrectOffset(0, m), "before the first recorded offset, no correction applies")
	assert.Equal(t, 3+2, CorrectOffset(3, m))
	assert.Equal(t, 7+2, CorrectOffset(7, m))
	assert.Equal(t, 12-1, CorrectOffset(12, m))
}

func TestUnicodeNormalizeFilterNFKCWidensHalfwidthKatakana(t *testing.T) {
	f := UnicodeNormalizeFilter{Form: NFKC}
	out, m, err := f.Apply("ﾘﾝﾃﾞﾗ")
	require.NoError(t, err)
	assert.Equal(t, "リンデラ", out)
	// ﾃﾞ (two halfwidth codepoints, 6 bytes) composes to デ (3 bytes): the
	// only segment whose length actually changes.
	require.Len(t, m.Offsets, 1)
	assert.Equal(t, int64(3), m.Diffs[0])
}

func TestMappingFilterReplacesLongestMatch(t *testing.T) {
	f := NewMappingFilter(map[string]string{
		"リンデラ": "Lindera",
		"リン":   "Rin",
	})
	out, m, err := f.Apply("リンデラは形態素解析エンジンです。")
	require.NoError(t, err)
	assert.Equal(t, "Linderaは形態素解析エンジンです。", out)
	require.Len(t, m.Offsets, 1)
	assert.Equal(t, int64(12-7), m.Diffs[0])
}

func TestMappingFilterNoMatchLeavesTextUnchanged(t *testing.T) {
	f := NewMappingFilter(map[string]string{"foo": "bar"})
	out, m, err := f.Apply("quux")
	require.NoError(t, err)
	assert.Equal(t, "quux", out)
	assert.Empty(t, m.Offsets)
}

func TestRegexFilterExpandsSubmatches(t *testing.T) {
	f, err := NewRegexFilter(`(\d+)-(\d+)`, "$2/$1")
	require.NoError(t, err)

	out, m, err := f.Apply("date 12-2024 end")
	require.NoError(t, err)
	assert.Equal(t, "date 2024/12 end", out)
	// "12-2024" and "2024/12" are both 7 bytes, so no offset is recorded.
	assert.Empty(t, m.Offsets)
}

func TestRegexFilterRejectsInvalidPattern(t *testing.T) {
	_, err := NewRegexFilter("(unclosed", "x")
	require.Error(t, err)
}

func TestIterationMarkFilterExpandsKanjiMark(t *testing.T) {
	f := IterationMarkFilter{NormalizeKanji: true}
	out, _, err := f.Apply("人々")
	require.NoError(t, err)
	assert.Equal(t, "人人", out)
}

func TestIterationMarkFilterLeavesKanjiMarkWhenDisabled(t *testing.T) {
	f := IterationMarkFilter{NormalizeKanji: false}
	out, m, err := f.Apply("人々")
	require.NoError(t, err)
	assert.Equal(t, "人々", out)
	assert.Empty(t, m.Offsets)
}

func TestIterationMarkFilterVoicesHiraganaMark(t *testing.T) {
	f := IterationMarkFilter{NormalizeKana: true}
	// か + ゞ -> かが (ゞ voices the preceding か into が).
	out, _, err := f.Apply("かゞ")
	require.NoError(t, err)
	assert.Equal(t, "かが", out)
}

func TestIterationMarkFilterUnvoicedMarkJustCopies(t *testing.T) {
	f := IterationMarkFilter{NormalizeKana: true}
	out, _, err := f.Apply("さゝ")
	require.NoError(t, err)
	assert.Equal(t, "ささ", out)
}

func TestIterationMarkFilterFallsBackWhenNoVoicedForm(t *testing.T) {
	f := IterationMarkFilter{NormalizeKana: true}
	// あ has no dakuten form, so ゞ after it just copies あ unvoiced.
	out, _, err := f.Apply("あゞ")
	require.NoError(t, err)
	assert.Equal(t, "ああ", out)
}

func TestIterationMarkFilterKatakanaVoicing(t *testing.T) {
	f := IterationMarkFilter{NormalizeKana: true}
	out, _, err := f.Apply("カヾ")
	require.NoError(t, err)
	assert.Equal(t, "カガ", out)
}

// TestStackComposesNormalizeAndMapping reproduces the NFKC-then-mapping
// scenario: a halfwidth-katakana run is normalized to fullwidth, then the
// fullwidth form is replaced by a mapping table entry, and a final position
// in the replaced text corrects all the way back to the original halfwidth
// input span.
func TestStackComposesNormalizeAndMapping(t *testing.T) {
	stack := NewStack(
		UnicodeNormalizeFilter{Form: NFKC},
		NewMappingFilter(map[string]string{"リンデラ": "Lindera"}),
	)

	out, err := stack.Apply("ﾘﾝﾃﾞﾗは形態素解析ｴﾝｼﾞﾝです。")
	require.NoError(t, err)
	require.Contains(t, out, "Lindera")

	start := 0
	end := len("Lindera")
	assert.Equal(t, 0, stack.Correct(start))
	assert.Equal(t, 15, stack.Correct(end), "ﾘﾝﾃﾞﾗ is 5 halfwidth katakana codepoints, 3 bytes each")
}
