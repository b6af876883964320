package dictionary

import "github.com/gocjk/kotoba/doublearray"

// PrefixDictionary is the double-array trie over UTF-8 surfaces plus the
// WordEntry table its terminal values index into, per spec.md §3.
type PrefixDictionary struct {
	trie    *doublearray.Array
	entries []WordEntry
	lexKind LexKind
}

// NewPrefixDictionary wraps an already-built trie and entry table.
func NewPrefixDictionary(trie *doublearray.Array, entries []WordEntry, lexKind LexKind) *PrefixDictionary {
	return &PrefixDictionary{trie: trie, entries: entries, lexKind: lexKind}
}

// Match is one common-prefix hit: matchedByteLen bytes of the haystack
// matched a lexicon surface, whose WordEntries are Entries (a contiguous
// group_len-sized slice starting at base_id, per spec.md §3).
type Match struct {
	MatchedByteLen int
	Entries        []WordEntry
}

// CommonPrefix walks the trie from byte 0 of haystack, emitting one Match
// per accepting state reached, per spec.md §4.3. An absent key yields a nil
// slice, never an error.
func (p *PrefixDictionary) CommonPrefix(haystack []byte) []Match {
	hits := p.trie.CommonPrefixSearch(haystack)
	if len(hits) == 0 {
		return nil
	}
	out := make([]Match, len(hits))
	for i, h := range hits {
		baseID, groupLen := doublearray.UnpackValue(h.Value)
		lo := int(baseID)
		hi := lo + int(groupLen)
		if hi > len(p.entries) {
			hi = len(p.entries)
		}
		out[i] = Match{MatchedByteLen: h.MatchedByteLen, Entries: p.entries[lo:hi]}
	}
	return out
}

// LexKind reports whether this PrefixDictionary backs the system lexicon or
// a user dictionary.
func (p *PrefixDictionary) LexKind() LexKind { return p.lexKind }
