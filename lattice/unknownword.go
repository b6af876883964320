package lattice

import (
	"github.com/gocjk/kotoba/category"
	"github.com/gocjk/kotoba/dictionary"
)

// generateUnknown implements spec.md §4.4 for character position i (0-based
// char index) in runes. hasMatched reports whether the system lexicon's
// common-prefix lookup at i (step a of §4.5's population rule) produced any
// node; a category whose rule forces invoke still fires regardless.
//
// Returns candidate spans as (beginChar, endChar) pairs together with the
// WordEntries every span carries; spans share the same entry list since
// every span for a given position comes from the same firing category.
func generateUnknown(runes []rune, i int, hasMatched bool, def *category.Definition, unk *dictionary.UnknownDictionary) []unknownSpan {
	cat := def.Primary(runes[i])
	rule := def.Rule(cat)

	if hasMatched && !rule.Invoke {
		return nil
	}

	entries := unk.EntriesFor(cat)
	if len(entries) == 0 {
		return nil
	}

	var spans []unknownSpan

	groupEnd := i + 1
	if rule.Group {
		j := i + 1
		for j < len(runes) {
			if rule.Length > 0 && uint32(j-i) >= rule.Length {
				break
			}
			if def.Primary(runes[j]) != cat {
				break
			}
			j++
		}
		groupEnd = j
	}
	spans = append(spans, unknownSpan{beginChar: i, endChar: groupEnd, entries: entries})

	remaining := len(runes) - i
	for k := 1; k <= int(rule.Length) && k <= remaining; k++ {
		end := i + k
		if end == groupEnd {
			continue
		}
		spans = append(spans, unknownSpan{beginChar: i, endChar: end, entries: entries})
	}

	return spans
}

type unknownSpan struct {
	beginChar int
	endChar   int
	entries   []dictionary.WordEntry
}
