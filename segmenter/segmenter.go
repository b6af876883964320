// Package segmenter turns input text into an ordered token stream: split
// at hard delimiters, run the lattice per chunk, re-base offsets, and
// optionally drop whitespace-only tokens, per spec.md §4.6.
//
// The chunk-first, lattice-per-chunk control flow generalizes the
// teacher's Analyze (dictionary-hit-first, fallback-to-prediction): where
// the teacher tries one lookup strategy then another for a single word,
// this module tries the same lattice strategy repeatedly, once per
// delimiter-bounded chunk of a whole document.
package segmenter

import (
	"unicode/utf8"

	"github.com/gocjk/kotoba/category"
	"github.com/gocjk/kotoba/dictionary"
	"github.com/gocjk/kotoba/lattice"
	"github.com/gocjk/kotoba/token"
)

// hardDelimiters is the fixed, non-configurable split set (SPEC_FULL.md §6;
// spec.md §9 leaves configurability open, this implementation settles it).
var hardDelimiters = map[rune]bool{
	'。': true,
	'、': true,
	'\n': true,
	'\t': true,
}

// Segmenter holds the dictionaries and solve Mode a Segment call needs,
// plus a lattice reused across chunks within (and across) calls.
type Segmenter struct {
	dict           *dictionary.Dictionary
	userDict       *dictionary.UserDictionary
	mode           lattice.Mode
	keepWhitespace bool

	lat *lattice.Lattice
}

// New constructs a Segmenter.
func New(dict *dictionary.Dictionary, userDict *dictionary.UserDictionary, mode lattice.Mode, keepWhitespace bool) *Segmenter {
	return &Segmenter{
		dict:           dict,
		userDict:       userDict,
		mode:           mode,
		keepWhitespace: keepWhitespace,
		lat:            lattice.New(dict, userDict, mode),
	}
}

// chunk is one hard-delimiter-bounded span of text, named by its absolute
// byte start in the original input.
type chunk struct {
	byteStart int
	text      []byte
}

// splitChunks implements spec.md §4.6 step 1: split at hard delimiters,
// keeping each delimiter byte at the end of its preceding chunk.
func splitChunks(text []byte) []chunk {
	var chunks []chunk
	start := 0
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRune(text[i:])
		i += size
		if hardDelimiters[r] {
			chunks = append(chunks, chunk{byteStart: start, text: text[start:i]})
			start = i
		}
	}
	if start < len(text) {
		chunks = append(chunks, chunk{byteStart: start, text: text[start:]})
	}
	return chunks
}

// Segment runs the full segmentation pipeline over text (already
// character-filtered, if any filters are configured upstream) and returns
// an ordered token stream.
func (s *Segmenter) Segment(text []byte) ([]*token.Token, error) {
	var tokens []*token.Token

	for _, c := range splitChunks(text) {
		runes := []rune(string(c.text))
		byteOffsets := runeByteOffsets(c.text, runes)

		path, err := s.lat.Solve(runes)
		if err != nil {
			return nil, err
		}

		for _, p := range path {
			byteStart := c.byteStart + byteOffsets[p.BeginChar]
			byteEnd := c.byteStart + byteOffsets[p.EndChar]
			tokens = append(tokens, token.New(
				string(text[byteStart:byteEnd]),
				byteStart, byteEnd,
				0, 1,
				p.WordID, s.dict, s.userDict,
			))
		}
	}

	return s.finalizePositions(tokens), nil
}

// runeByteOffsets returns a length-(len(runes)+1) table mapping each
// character index to its byte offset within chunkText.
func runeByteOffsets(chunkText []byte, runes []rune) []int {
	offsets := make([]int, len(runes)+1)
	pos := 0
	for i, r := range runes {
		offsets[i] = pos
		pos += utf8.RuneLen(r)
	}
	offsets[len(runes)] = len(chunkText)
	return offsets
}

// finalizePositions applies spec.md §4.6 step 3 (drop SPACE-only tokens
// unless keep_whitespace) and assigns monotone Position values over
// whatever survives, per spec.md §8's "monotone positions" property.
// PositionLength is left as set at token construction.
func (s *Segmenter) finalizePositions(tokens []*token.Token) []*token.Token {
	kept := tokens[:0]
	for _, t := range tokens {
		if !s.keepWhitespace && isAllSpace(t.Surface, s.dict.CharDef) {
			continue
		}
		kept = append(kept, t)
	}
	for i, t := range kept {
		t.Position = i
	}
	return kept
}

func isAllSpace(surface string, def *category.Definition) bool {
	if surface == "" {
		return false
	}
	for _, r := range surface {
		if !def.IsSpace(r) {
			return false
		}
	}
	return true
}
