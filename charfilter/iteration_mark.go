package charfilter

// Iteration marks recognized by the filter, per spec.md §4.8.
const (
	kanjiIterationMark          = '々'
	hiraganaIterationMark       = 'ゝ'
	hiraganaVoicedIterationMark = 'ゞ'
	katakanaIterationMark       = 'ヽ'
	katakanaVoicedIterationMark = 'ヾ'
)

// hiraganaVoicingBases lists every Hiragana code point this filter knows
// has a valid dakuten (+1) voiced form, per SPEC_FULL.md §6's resolution of
// spec.md §9's open question: voicing is arithmetic (+1) gated by an
// explicit allow-list, not applied to the whole block (あ+1 is not a
// voicing of あ, for instance).
var hiraganaVoicingBases = map[rune]bool{
	0x304B: true, 0x304D: true, 0x304F: true, 0x3051: true, 0x3053: true, // かきくけこ
	0x3055: true, 0x3057: true, 0x3059: true, 0x305B: true, 0x305D: true, // さしすせそ
	0x305F: true, 0x3061: true, 0x3064: true, 0x3066: true, 0x3068: true, // たちつてと
	0x306F: true, 0x3072: true, 0x3075: true, 0x3078: true, 0x307B: true, // はひふへほ
}

// katakanaHiraganaOffset is the constant distance between the Hiragana and
// Katakana blocks' corresponding code points (U+30A1 - U+3041).
const katakanaHiraganaOffset = 0x60

func voicedForm(r rune) (rune, bool) {
	if hiraganaVoicingBases[r] {
		return r + 1, true
	}
	if r >= 0x30A1 && r <= 0x30FF && hiraganaVoicingBases[r-katakanaHiraganaOffset] {
		return r + 1, true
	}
	return r, false
}

// IterationMarkFilter expands 々/ゝ/ゞ/ヽ/ヾ by copying the preceding
// character, voicing it when the mark is a dakuten variant and the
// preceding character has a valid voiced form.
type IterationMarkFilter struct {
	NormalizeKanji bool
	NormalizeKana  bool
}

func (f IterationMarkFilter) Name() string { return "japanese_iteration_mark" }

func (f IterationMarkFilter) Apply(text string) (string, OffsetDiffMap, error) {
	runes := []rune(text)
	var out []rune
	var m OffsetDiffMap
	var diff int64
	outByteLen := 0

	var prev rune
	hasPrev := false

	for _, r := range runes {
		markByteLen := runeLen(r)
		var replacement rune
		expand := false

		switch r {
		case kanjiIterationMark:
			if f.NormalizeKanji && hasPrev {
				replacement = prev
				expand = true
			}
		case hiraganaIterationMark, katakanaIterationMark:
			if f.NormalizeKana && hasPrev {
				replacement = prev
				expand = true
			}
		case hiraganaVoicedIterationMark, katakanaVoicedIterationMark:
			if f.NormalizeKana && hasPrev {
				if v, ok := voicedForm(prev); ok {
					replacement = v
				} else {
					replacement = prev
				}
				expand = true
			}
		}

		if !expand {
			out = append(out, r)
			outByteLen += markByteLen
			prev = r
			hasPrev = true
			continue
		}

		replacementByteLen := runeLen(replacement)
		if replacementByteLen != markByteLen {
			diff += int64(markByteLen) - int64(replacementByteLen)
			m.Record(outByteLen+replacementByteLen, diff)
		}
		out = append(out, replacement)
		outByteLen += replacementByteLen
		prev = replacement
		hasPrev = true
	}

	m.Len = outByteLen
	return string(out), m, nil
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
