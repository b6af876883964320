// Package lattice builds the candidate-morpheme DAG over a character
// buffer and solves it with forward Viterbi, per spec.md §4.4/§4.5.
//
// Nodes are stored arena-style, bucketed by the character position they
// end at, with back pointers as indices into the predecessor bucket rather
// than pointers (spec.md §9's "Lattice storage" design note) — the same
// no-pointers, flat-array discipline the teacher applies to its
// FlatNode/FlatEdge arrays, here specialized to Viterbi's left-to-right
// dependency structure instead of a trie's parent-to-child structure.
package lattice

import (
	"github.com/google/uuid"

	"github.com/gocjk/kotoba/category"
	"github.com/gocjk/kotoba/dictionary"
	"github.com/gocjk/kotoba/errs"
)

// node is one candidate morpheme in the lattice, final once its cost and
// backIdx are set during the forward pass.
type node struct {
	beginChar int
	endChar   int
	entry     dictionary.WordEntry
	cost      int
	backIdx   int // index into buckets[beginChar]; -1 means the BOS sentinel
}

// PathEntry is one morpheme of the solved path: begin/end are character
// indices into the analyzed rune buffer; byte offsets are derived by the
// caller (segmenter) from its own rune->byte offset table, since Lattice
// itself is byte-offset-agnostic — it only ever sees a rune buffer.
type PathEntry struct {
	BeginChar int
	EndChar   int
	WordID    dictionary.WordId
}

// Lattice is reusable across calls by calling Reset.
type Lattice struct {
	id uuid.UUID

	dict     *dictionary.Dictionary
	userDict *dictionary.UserDictionary
	mode     Mode

	runes   []rune
	buckets [][]node // buckets[end] = nodes ending at char position end

	eosCost    int
	eosBackIdx int // index into buckets[n] of the chosen EOS predecessor
}

// New constructs a Lattice bound to a system dictionary, an optional user
// dictionary, and a solve Mode.
func New(dict *dictionary.Dictionary, userDict *dictionary.UserDictionary, mode Mode) *Lattice {
	return &Lattice{id: uuid.New(), dict: dict, userDict: userDict, mode: mode}
}

// ID returns this lattice instance's diagnostic correlation tag.
func (l *Lattice) ID() uuid.UUID { return l.id }

// Reset clears the lattice's buffers so it can be reused for the next
// call, per spec.md §4.5's "Reusability".
func (l *Lattice) Reset() {
	l.runes = l.runes[:0]
	for i := range l.buckets {
		l.buckets[i] = l.buckets[i][:0]
	}
	l.buckets = l.buckets[:0]
	l.eosCost = 0
	l.eosBackIdx = -1
}

// Solve populates the lattice over runes (Population, spec.md §4.5) and
// runs the forward Viterbi pass, returning the best path as an ordered
// slice of PathEntry (sentinels dropped). Fails with errs.Segmentation if
// and only if no node sequence reaches EOS.
func (l *Lattice) Solve(runes []rune) ([]PathEntry, error) {
	l.Reset()
	l.runes = runes
	n := len(runes)

	if cap(l.buckets) >= n+1 {
		l.buckets = l.buckets[:n+1]
	} else {
		l.buckets = make([][]node, n+1)
	}

	def := l.dict.CharDef
	unk := l.dict.Unknown
	matrix := l.dict.Matrix

	for i := 0; i < n; i++ {
		sysMatches := l.dict.Prefix.CommonPrefix([]byte(string(runes[i:])))
		hasMatched := len(sysMatches) > 0

		l.addDictionaryMatches(i, sysMatches, matrix, def)

		if l.userDict != nil {
			userMatches := l.userDict.Prefix.CommonPrefix([]byte(string(runes[i:])))
			l.addDictionaryMatches(i, userMatches, matrix, def)
		}

		for _, span := range generateUnknown(runes, i, hasMatched, def, unk) {
			for _, entry := range span.entries {
				l.addCandidate(span.beginChar, span.endChar, entry, matrix, def)
			}
		}
	}

	return l.finalize()
}

// addDictionaryMatches converts common-prefix matches (measured in bytes
// against the substring starting at char i) into lattice candidates
// (measured in chars), for either the system or user lexicon.
func (l *Lattice) addDictionaryMatches(i int, matches []dictionary.Match, matrix *dictionary.ConnectionCostMatrix, def *category.Definition) {
	for _, m := range matches {
		runeLen := len([]rune(string(l.runes[i:])[:m.MatchedByteLen]))
		end := i + runeLen
		for _, entry := range m.Entries {
			l.addCandidate(i, end, entry, matrix, def)
		}
	}
}

// addCandidate computes v's cost against every predecessor ending at
// v.beginChar (or the BOS sentinel when beginChar == 0), keeping the
// lowest-cost predecessor with first-encountered tie-breaking, then
// appends the finalized node to buckets[endChar].
func (l *Lattice) addCandidate(beginChar, endChar int, entry dictionary.WordEntry, matrix *dictionary.ConnectionCostMatrix, def *category.Definition) {
	penalty := l.decomposePenalty(beginChar, endChar, def)

	bestCost := 0
	bestBackIdx := -1
	found := false

	if beginChar == 0 {
		// BOS predecessor: cost 0, right-context id 0, per spec.md
		// §4.5's "BOS/EOS use context ID 0".
		e := matrix.Cost(0, entry.LeftContextID)
		bestCost = int(e) + int(entry.WordCost) + penalty
		bestBackIdx = -1
		found = true
	}

	for idx, u := range l.buckets[beginChar] {
		e := matrix.Cost(u.entry.RightContextID, entry.LeftContextID)
		c := u.cost + int(e) + int(entry.WordCost) + penalty
		if !found || c < bestCost {
			bestCost = c
			bestBackIdx = idx
			found = true
		}
	}

	if !found {
		// No predecessor available at all (beginChar > 0 and that
		// bucket is empty): this candidate cannot participate in any
		// path, so it is dropped rather than stored with a bogus cost.
		return
	}

	l.buckets[endChar] = append(l.buckets[endChar], node{
		beginChar: beginChar,
		endChar:   endChar,
		entry:     entry,
		cost:      bestCost,
		backIdx:   bestBackIdx,
	})
}

// decomposePenalty implements spec.md §4.5's Decompose-mode penalty: a
// span spelled entirely in Kanji uses the Kanji threshold/penalty; every
// other span uses the "other" threshold/penalty.
func (l *Lattice) decomposePenalty(beginChar, endChar int, def *category.Definition) int {
	if !l.mode.Decompose {
		return 0
	}
	span := endChar - beginChar

	kanjiID, hasKanji := def.ByName(category.NameKanji)
	allKanji := hasKanji
	if hasKanji {
		for c := beginChar; c < endChar; c++ {
			if def.Primary(l.runes[c]) != kanjiID {
				allKanji = false
				break
			}
		}
	}

	if allKanji {
		if span > l.mode.KanjiThreshold {
			return (span - l.mode.KanjiThreshold) * l.mode.KanjiPenalty
		}
		return 0
	}
	if span > l.mode.OtherThreshold {
		return (span - l.mode.OtherThreshold) * l.mode.OtherPenalty
	}
	return 0
}

// finalize computes cost[EOS] from buckets[n] and extracts the best path.
func (l *Lattice) finalize() ([]PathEntry, error) {
	n := len(l.runes)
	matrix := l.dict.Matrix

	found := false
	bestCost := 0
	bestBackIdx := -1
	for idx, u := range l.buckets[n] {
		e := matrix.Cost(u.entry.RightContextID, 0)
		c := u.cost + int(e)
		if !found || c < bestCost {
			bestCost = c
			bestBackIdx = idx
			found = true
		}
	}
	if !found {
		return nil, errs.New(errs.Segmentation, "no path to EOS (lattice %s)", l.id)
	}
	l.eosCost = bestCost
	l.eosBackIdx = bestBackIdx

	var reversed []PathEntry
	bucket := n
	idx := bestBackIdx
	for idx != -1 {
		nd := l.buckets[bucket][idx]
		reversed = append(reversed, PathEntry{
			BeginChar: nd.beginChar,
			EndChar:   nd.endChar,
			WordID:    nd.entry.WordID,
		})
		bucket = nd.beginChar
		idx = nd.backIdx
	}

	path := make([]PathEntry, len(reversed))
	for i, e := range reversed {
		path[len(reversed)-1-i] = e
	}
	return path, nil
}
