package dictionary

import (
	"encoding/binary"

	"github.com/gocjk/kotoba/category"
)

// DecodeCharDef parses char_def.bin's decompressed bytes into a
// category.Definition: a rule table (name, invoke, group, length) followed
// by a boundary-range table (lo, hi, category-id set), both little-endian.
func DecodeCharDef(b []byte) *category.Definition {
	pos := 0
	numRules := int(binary.LittleEndian.Uint32(b[pos:]))
	pos += 4
	rules := make([]category.Rule, numRules)
	for i := 0; i < numRules; i++ {
		nameLen := int(binary.LittleEndian.Uint32(b[pos:]))
		pos += 4
		name := string(b[pos : pos+nameLen])
		pos += nameLen
		invoke := b[pos] != 0
		pos++
		group := b[pos] != 0
		pos++
		length := binary.LittleEndian.Uint32(b[pos:])
		pos += 4
		rules[i] = category.Rule{Name: name, Invoke: invoke, Group: group, Length: length}
	}

	def := category.NewDefinition(rules, nil)

	numBoundaries := int(binary.LittleEndian.Uint32(b[pos:]))
	pos += 4
	for i := 0; i < numBoundaries; i++ {
		lo := rune(binary.LittleEndian.Uint32(b[pos:]))
		pos += 4
		hi := rune(binary.LittleEndian.Uint32(b[pos:]))
		pos += 4
		numIDs := int(binary.LittleEndian.Uint32(b[pos:]))
		pos += 4
		ids := make([]category.ID, numIDs)
		for j := 0; j < numIDs; j++ {
			ids[j] = category.ID(binary.LittleEndian.Uint32(b[pos:]))
			pos += 4
		}
		def.AddBoundary(lo, hi, ids...)
	}
	return def
}

// EncodeCharDef is the inverse of DecodeCharDef: it writes a Definition
// and its boundaries in the on-disk format DecodeCharDef reads.
func EncodeCharDef(def *category.Definition, boundaries []CharDefBoundary) []byte {
	var out []byte
	var u32 [4]byte

	binary.LittleEndian.PutUint32(u32[:], uint32(len(def.Rules)))
	out = append(out, u32[:]...)
	for _, r := range def.Rules {
		binary.LittleEndian.PutUint32(u32[:], uint32(len(r.Name)))
		out = append(out, u32[:]...)
		out = append(out, []byte(r.Name)...)
		var b [2]byte
		if r.Invoke {
			b[0] = 1
		}
		if r.Group {
			b[1] = 1
		}
		out = append(out, b[:]...)
		binary.LittleEndian.PutUint32(u32[:], r.Length)
		out = append(out, u32[:]...)
	}

	binary.LittleEndian.PutUint32(u32[:], uint32(len(boundaries)))
	out = append(out, u32[:]...)
	for _, bd := range boundaries {
		binary.LittleEndian.PutUint32(u32[:], uint32(bd.Lo))
		out = append(out, u32[:]...)
		binary.LittleEndian.PutUint32(u32[:], uint32(bd.Hi))
		out = append(out, u32[:]...)
		binary.LittleEndian.PutUint32(u32[:], uint32(len(bd.IDs)))
		out = append(out, u32[:]...)
		for _, id := range bd.IDs {
			binary.LittleEndian.PutUint32(u32[:], uint32(id))
			out = append(out, u32[:]...)
		}
	}
	return out
}

// CharDefBoundary mirrors category's unexported boundary shape so callers
// outside the category package (the dictionary builder, tests) can supply
// boundary data to EncodeCharDef without category exporting its internal
// representation.
type CharDefBoundary struct {
	Lo, Hi rune
	IDs    []category.ID
}
