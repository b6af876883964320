// Package category classifies Unicode code points into the character
// categories a CJK morphological dictionary defines (HIRAGANA, KATAKANA,
// KANJI, ALPHA, NUMERIC, SPACE, DEFAULT, ...), and holds the per-category
// unknown-word generation rules (invoke/group/length) that char_def.bin
// serializes.
//
// The boundary-range table is kept sorted by Lo the way the teacher's
// findChildGeneral keeps trie edges sorted for binary search, but the
// lookup itself is a bounded linear scan: unlike trie edges, code-point
// ranges from different categories may overlap, which rules out a binary
// search on Hi.
package category

import "sort"

// ID identifies a character category by its index into a Definition's
// Categories slice.
type ID int

// Built-in category names every IPADIC-family char_def.bin declares. A
// loaded Definition may carry additional dictionary-specific categories;
// these are the ones referenced by name elsewhere in this module.
const (
	NameDefault   = "DEFAULT"
	NameSpace     = "SPACE"
	NameHiragana  = "HIRAGANA"
	NameKatakana  = "KATAKANA"
	NameKanji     = "KANJI"
	NameKanjiNum  = "KANJINUMERIC"
	NameSymbol    = "SYMBOL"
	NameNumeric   = "NUMERIC"
	NameAlpha     = "ALPHA"
	NameGreek     = "GREEK"
	NameCyrillic  = "CYRILLIC"
)

// Rule is the per-category unknown-word generation policy (spec.md §3).
type Rule struct {
	Name   string
	Invoke bool // force unknown-word generation even when the lexicon matches
	Group  bool // group contiguous same-category code points into one span
	Length uint32 // cap on grouped span length in characters; 0 = unlimited
}

// boundary is one entry of the sorted code-point -> category-set table.
// Every code point in [Lo, Hi] belongs to every category in IDs.
type boundary struct {
	Lo, Hi rune
	IDs    []ID
}

// Definition is the runtime form of char_def.bin: an ordered rule list plus
// a sorted boundary-range table covering the full code-point space.
type Definition struct {
	Rules     []Rule
	boundaries []boundary
	defaultID  ID
}

// NewDefinition builds a Definition from rules and boundaries. Boundaries
// must be sorted by Lo and must together with the implicit DEFAULT category
// cover every code point (DEFAULT itself never needs an explicit boundary:
// CategoriesOf falls back to it when no boundary matches).
func NewDefinition(rules []Rule, boundaries []boundary) *Definition {
	def := &Definition{Rules: rules, boundaries: boundaries}
	for i, r := range rules {
		if r.Name == NameDefault {
			def.defaultID = ID(i)
		}
	}
	return def
}

// AddBoundary registers a code-point range (inclusive) as belonging to the
// given categories. Boundaries are kept sorted by Lo after insertion so
// CategoriesOf's forward scan can stop once Lo passes the code point.
func (d *Definition) AddBoundary(lo, hi rune, ids ...ID) {
	d.boundaries = append(d.boundaries, boundary{Lo: lo, Hi: hi, IDs: ids})
	sort.Slice(d.boundaries, func(i, j int) bool { return d.boundaries[i].Lo < d.boundaries[j].Lo })
}

// CategoriesOf returns every category ID matching c. Always non-empty: when
// no boundary covers c, the universal DEFAULT fallback is returned.
func (d *Definition) CategoriesOf(c rune) []ID {
	// Boundaries are sorted by Lo only, so a boundary's Hi is not
	// monotonic across the slice (a later, narrower boundary can nest
	// inside an earlier, wider one) and a binary search on Hi would be
	// unsound. Scan forward from the start, matching every boundary whose
	// range covers c (ranges may overlap across categories), stopping
	// once Lo has passed c — sorted-by-Lo still lets that bound the scan.
	var matched []ID
	for _, b := range d.boundaries {
		if b.Lo > c {
			break
		}
		if c <= b.Hi {
			matched = append(matched, b.IDs...)
		}
	}
	if len(matched) == 0 {
		return []ID{d.defaultID}
	}
	return matched
}

// Primary returns the first category matching c, used by the unknown-word
// generator to pick a single driving category per position.
func (d *Definition) Primary(c rune) ID {
	return d.CategoriesOf(c)[0]
}

// Rule returns the generation rule for a category ID.
func (d *Definition) Rule(id ID) Rule {
	if int(id) < 0 || int(id) >= len(d.Rules) {
		return Rule{Name: NameDefault}
	}
	return d.Rules[id]
}

// ByName returns the category ID with the given name, and whether it was
// found.
func (d *Definition) ByName(name string) (ID, bool) {
	for i, r := range d.Rules {
		if r.Name == name {
			return ID(i), true
		}
	}
	return 0, false
}

// IsSpace reports whether c belongs to the SPACE category, used by the
// segmenter's keep_whitespace handling (spec.md §4.6).
func (d *Definition) IsSpace(c rune) bool {
	spaceID, ok := d.ByName(NameSpace)
	if !ok {
		return false
	}
	for _, id := range d.CategoriesOf(c) {
		if id == spaceID {
			return true
		}
	}
	return false
}

// DefaultIPADICDefinition returns a Definition approximating IPADIC's
// char.def: the category set and boundary ranges every IPADIC-family
// dictionary ships, used when no char_def.bin is supplied (e.g. tests, or
// an analyzer built without a full dictionary bundle).
func DefaultIPADICDefinition() *Definition {
	rules := []Rule{
		{Name: NameDefault, Invoke: false, Group: true, Length: 0},
		{Name: NameSpace, Invoke: false, Group: true, Length: 0},
		{Name: NameKanji, Invoke: false, Group: false, Length: 2},
		{Name: NameSymbol, Invoke: true, Group: true, Length: 0},
		{Name: NameNumeric, Invoke: true, Group: true, Length: 0},
		{Name: NameAlpha, Invoke: true, Group: true, Length: 0},
		{Name: NameHiragana, Invoke: false, Group: true, Length: 2},
		{Name: NameKatakana, Invoke: true, Group: true, Length: 0},
		{Name: NameKanjiNum, Invoke: true, Group: true, Length: 0},
		{Name: NameGreek, Invoke: true, Group: true, Length: 0},
		{Name: NameCyrillic, Invoke: true, Group: true, Length: 0},
	}
	def := NewDefinition(rules, nil)
	id := func(n string) ID { i, _ := def.ByName(n); return i }
	def.AddBoundary(0x0020, 0x0020, id(NameSpace))
	def.AddBoundary(0x3000, 0x3000, id(NameSpace))
	def.AddBoundary(0x0009, 0x000D, id(NameSpace))
	def.AddBoundary(0x3041, 0x309F, id(NameHiragana))
	def.AddBoundary(0x30A1, 0x30FF, id(NameKatakana))
	def.AddBoundary(0x31F0, 0x31FF, id(NameKatakana))
	def.AddBoundary(0xFF66, 0xFF9D, id(NameKatakana))
	def.AddBoundary(0x4E00, 0x9FFF, id(NameKanji))
	def.AddBoundary(0x3400, 0x4DBF, id(NameKanji))
	def.AddBoundary(0xF900, 0xFAFF, id(NameKanji))
	def.AddBoundary(0x0030, 0x0039, id(NameNumeric))
	def.AddBoundary(0xFF10, 0xFF19, id(NameNumeric))
	def.AddBoundary(0x0041, 0x005A, id(NameAlpha))
	def.AddBoundary(0x0061, 0x007A, id(NameAlpha))
	def.AddBoundary(0xFF21, 0xFF3A, id(NameAlpha))
	def.AddBoundary(0xFF41, 0xFF5A, id(NameAlpha))
	def.AddBoundary(0x0391, 0x03A9, id(NameGreek))
	def.AddBoundary(0x03B1, 0x03C9, id(NameGreek))
	def.AddBoundary(0x0410, 0x044F, id(NameCyrillic))
	def.AddBoundary(0x3005, 0x3006, id(NameKanji)) // 々, 〆 iteration/kanji punctuation
	return def
}
