package tokenfilter

import "github.com/gocjk/kotoba/token"

// JapaneseNumberFilter converts a token's surface from Japanese numerals
// (full-width Arabic, Kanji, or old-form Kanji) to Arabic numerals, per
// spec.md §4.9. When Tags is non-nil, only tokens whose part-of-speech
// prefix matches a configured tag are converted; nil converts every
// token.
type JapaneseNumberFilter struct {
	Tags map[string]bool
}

// NewJapaneseNumberFilter builds a JapaneseNumberFilter restricted to the
// given raw "pos1,pos2,pos3,pos4"-shaped tags. Pass nil tags to convert
// every token regardless of its tag.
func NewJapaneseNumberFilter(tags []string) *JapaneseNumberFilter {
	if tags == nil {
		return &JapaneseNumberFilter{}
	}
	return &JapaneseNumberFilter{Tags: newTagSet(tags)}
}

func (*JapaneseNumberFilter) Name() string { return "japanese_number" }

func (f *JapaneseNumberFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, t := range tokens {
		if f.Tags != nil && !f.Tags[tokenTagKey(t)] {
			continue
		}
		t.Surface = toArabicNumerals(t.Surface)
	}
	return tokens, nil
}

var numeralDigits = map[rune]rune{
	'0': '0', '０': '0', '〇': '0', '零': '0',
	'1': '1', '１': '1', '一': '1', '壱': '1',
	'2': '2', '２': '2', '二': '2', '弐': '2',
	'3': '3', '３': '3', '三': '3', '参': '3',
	'4': '4', '４': '4', '四': '4',
	'5': '5', '５': '5', '五': '5',
	'6': '6', '６': '6', '六': '6',
	'7': '7', '７': '7', '七': '7',
	'8': '8', '８': '8', '八': '8',
	'9': '9', '９': '9', '九': '9',
}

func isOneOfRune(r rune, set ...rune) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}

// toArabicNumerals walks s right to left accumulating a decimal digit
// buffer, the same direction the unit characters (十 百 千 万 億 兆 京 垓)
// read in: each unit zero-pads the buffer out to its place value, then
// (unless a larger unit, or nothing, follows it to the left) inserts the
// implicit leading '1' a bare unit character represents (千二百 has no
// explicit '1' before 千, but means 1200).
func toArabicNumerals(s string) string {
	runes := []rune(s)
	var num []rune
	digit := ""

	prepend := func(r rune) { num = append([]rune{r}, num...) }
	padTo := func(base string) {
		target := len(base) + len(digit)
		if target > len(num) {
			pad := target - len(num)
			zeros := make([]rune, pad)
			for i := range zeros {
				zeros[i] = '0'
			}
			num = append(zeros, num...)
		}
	}

	for i := len(runes) - 1; i >= 0; i-- {
		c := runes[i]
		hasPeek := i-1 >= 0
		var peek rune
		if hasPeek {
			peek = runes[i-1]
		}

		if d, ok := numeralDigits[c]; ok {
			prepend(d)
			continue
		}

		switch c {
		case '十', '拾':
			padTo("0")
			if !hasPeek || isOneOfRune(peek, '百', '千', '万', '億', '兆', '京', '垓') {
				prepend('1')
			}
		case '百':
			padTo("00")
			if !hasPeek || isOneOfRune(peek, '千', '万', '億', '兆', '京', '垓') {
				prepend('1')
			}
		case '千':
			padTo("000")
			if !hasPeek || isOneOfRune(peek, '万', '億', '兆', '京', '垓') {
				prepend('1')
			}
		case '万':
			digit = "0000"
			padTo("")
			if !hasPeek || isOneOfRune(peek, '億', '兆', '京', '垓') {
				prepend('1')
			}
		case '億':
			digit = "00000000"
			padTo("")
			if !hasPeek || isOneOfRune(peek, '兆', '京', '垓') {
				prepend('1')
			}
		case '兆':
			digit = "000000000000"
			padTo("")
			if !hasPeek || isOneOfRune(peek, '京', '垓') {
				prepend('1')
			}
		case '京':
			digit = "0000000000000000"
			padTo("")
			if !hasPeek || peek == '垓' {
				prepend('1')
			}
		case '垓':
			digit = "00000000000000000000"
			padTo("")
			if !hasPeek {
				prepend('1')
			}
		default:
			prepend(c)
			digit = ""
		}
	}

	return string(num)
}
