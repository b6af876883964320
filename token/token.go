// Package token implements the materialized morpheme: surface text, byte
// offsets into the analyzed text, and lazily-resolved dictionary
// attributes, per spec.md §3/§4.7.
//
// Details() resolving only on first access follows the teacher's lazy
// tag-bucketing in newParsed (tagset.go): a Parsed value there only
// classifies its grammeme string into named fields once, at construction;
// here the analogous resolution step (reading the details blob) is
// deferred past construction entirely, to the first caller that actually
// needs it.
package token

import "github.com/gocjk/kotoba/dictionary"

// unknownSentinel is the fixed one-element details vector every Unknown
// lex_kind token resolves to, per spec.md §4.7.
var unknownSentinel = []string{"UNK"}

// Token is one morpheme in a segmented token stream.
type Token struct {
	Surface        string
	ByteStart      int
	ByteEnd        int
	Position       int
	PositionLength int
	WordID         dictionary.WordId

	dict    *dictionary.Dictionary
	userDict *dictionary.UserDictionary
	details []string
	resolved bool
}

// New constructs a Token. dict resolves System word ids, userDict resolves
// User word ids; either may be nil if the corresponding lex_kind never
// occurs for this token stream.
func New(surface string, byteStart, byteEnd, position, positionLength int, wordID dictionary.WordId, dict *dictionary.Dictionary, userDict *dictionary.UserDictionary) *Token {
	return &Token{
		Surface:        surface,
		ByteStart:      byteStart,
		ByteEnd:        byteEnd,
		Position:       position,
		PositionLength: positionLength,
		WordID:         wordID,
		dict:           dict,
		userDict:       userDict,
	}
}

// Details resolves and caches the token's attribute vector, per spec.md
// §4.7: Unknown tokens yield the sentinel ["UNK"]; System/User tokens read
// the owning dictionary's word-details blob.
func (t *Token) Details() []string {
	if t.resolved {
		return t.details
	}
	t.resolved = true

	switch t.WordID.LexKind {
	case dictionary.Unknown:
		t.details = unknownSentinel
	case dictionary.System:
		if t.dict != nil {
			t.details = t.dict.Details.Fields(t.WordID.ID)
		}
	case dictionary.User:
		if t.userDict != nil {
			t.details = t.userDict.Details.Fields(t.WordID.ID)
		}
	}
	return t.details
}

// SetDetails overwrites the cached attribute vector, used by token filters
// that rewrite a token's details (e.g. japanese_compound_word).
func (t *Token) SetDetails(details []string) {
	t.details = details
	t.resolved = true
}

// schema returns the dictionary schema this token's details were resolved
// against, or nil for an Unknown token.
func (t *Token) schema() []string {
	switch t.WordID.LexKind {
	case dictionary.System:
		if t.dict != nil {
			return t.dict.Metadata.Schema
		}
	case dictionary.User:
		if t.userDict != nil && t.dict != nil {
			return t.dict.Metadata.Schema
		}
	}
	return nil
}

// Get resolves a named schema field per spec.md §4.7: index 0 is the
// token's surface (read off the Token itself, not the details blob),
// 1..=3 are the fields dropped after build (context ids, cost) and
// always report absent, and index >= 4 maps to Details()[index-4] — per
// spec.md §8's schema-field-consistency property, Details() holds only
// the dictionary-specific remainder (schema length minus 4), not the
// dropped surface/context-id/cost fields.
func (t *Token) Get(fieldName string) (string, bool) {
	schema := t.schema()
	index := -1
	for i, name := range schema {
		if name == fieldName {
			index = i
			break
		}
	}
	if index < 0 {
		return "", false
	}
	return t.getByIndex(index)
}

// Metadata returns the schema/metadata of the dictionary this token
// resolves against, or nil for a token built without a dictionary
// reference. An Unknown token that carries a dictionary reference gets
// that dictionary's metadata.
func (t *Token) Metadata() *dictionary.Metadata {
	if t.dict != nil {
		return t.dict.Metadata
	}
	return nil
}

// Field resolves the schema field at the given absolute schema index
// (0 = surface, 1-3 dropped, 4.. details), per the same rule Get uses by
// name. Used by token filters that already know a numeric schema index
// (e.g. the base-form field) rather than its name.
func (t *Token) Field(index int) (string, bool) {
	return t.getByIndex(index)
}

func (t *Token) getByIndex(index int) (string, bool) {
	switch {
	case index == 0:
		return t.Surface, true
	case index >= 1 && index <= 3:
		return "", false
	default:
		details := t.Details()
		i := index - 4
		if i < 0 || i >= len(details) {
			return "", false
		}
		return details[i], true
	}
}

// Clone returns a shallow copy of the token, used by the compound-word
// filter as the starting point of the merged token it builds.
func (t *Token) Clone() *Token {
	cp := *t
	return &cp
}
