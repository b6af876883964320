package tokenfilter

import (
	"strings"

	"github.com/gocjk/kotoba/token"
)

// hiraganaKatakanaOffset is the constant distance between the Hiragana
// and Katakana blocks' corresponding code points (U+30A1 - U+3041),
// shared with charfilter's iteration-mark voicing arithmetic.
const hiraganaKatakanaOffset = 0x60

const (
	hiraganaLo, hiraganaHi = 0x3041, 0x3096
	katakanaLo, katakanaHi = 0x30A1, 0x30F6
)

func toKatakanaRune(r rune) rune {
	if r >= hiraganaLo && r <= hiraganaHi {
		return r + hiraganaKatakanaOffset
	}
	return r
}

func toHiraganaRune(r rune) rune {
	if r >= katakanaLo && r <= katakanaHi {
		return r - hiraganaKatakanaOffset
	}
	return r
}

// KanaDirection selects which way japanese_kana converts.
type KanaDirection string

const (
	KanaToHiragana KanaDirection = "hiragana"
	KanaToKatakana KanaDirection = "katakana"
)

func convertKana(s string, dir KanaDirection) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if dir == KanaToKatakana {
			r = toKatakanaRune(r)
		} else {
			r = toHiraganaRune(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// JapaneseKanaFilter converts a token's surface between hiragana and
// katakana, per spec.md §4.9.
type JapaneseKanaFilter struct {
	Direction KanaDirection
}

func (JapaneseKanaFilter) Name() string { return "japanese_kana" }

func (f JapaneseKanaFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, t := range tokens {
		t.Surface = convertKana(t.Surface, f.Direction)
	}
	return tokens, nil
}

const longVowelMark = 'ー'

// JapaneseKatakanaStemFilter strips a trailing long-vowel mark from a
// katakana-only surface, as long as the surface without it is still at
// least Min characters long.
type JapaneseKatakanaStemFilter struct {
	Min int
}

func (JapaneseKatakanaStemFilter) Name() string { return "japanese_katakana_stem" }

func (f JapaneseKatakanaStemFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, t := range tokens {
		if !isKatakanaOnly(t.Surface) {
			continue
		}
		runes := []rune(t.Surface)
		if len(runes) == 0 || runes[len(runes)-1] != longVowelMark {
			continue
		}
		if len(runes)-1 < f.Min {
			continue
		}
		t.Surface = string(runes[:len(runes)-1])
	}
	return tokens, nil
}

func isKatakanaOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == longVowelMark {
			continue
		}
		if r < katakanaLo || r > katakanaHi {
			return false
		}
	}
	return true
}
