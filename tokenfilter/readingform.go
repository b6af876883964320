package tokenfilter

import "github.com/gocjk/kotoba/token"

// JapaneseReadingFormFilter replaces a token's surface with its
// dictionary reading field, optionally transliterated to the configured
// kana flavor. A nil KanaDirection leaves the reading field's own script
// (katakana, for both IPADIC and UniDic) untouched.
type JapaneseReadingFormFilter struct {
	Kana *KanaDirection
}

func (JapaneseReadingFormFilter) Name() string { return "japanese_reading_form" }

func (f JapaneseReadingFormFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, t := range tokens {
		meta := t.Metadata()
		if meta == nil {
			continue
		}
		idx, ok := meta.ReadingIndex()
		if !ok {
			continue
		}
		reading, ok := t.Field(idx)
		if !ok || reading == "" || reading == "*" {
			continue
		}
		if f.Kana != nil {
			reading = convertKana(reading, *f.Kana)
		}
		t.Surface = reading
	}
	return tokens, nil
}
