package dictionary

import (
	"encoding/binary"

	"github.com/gocjk/kotoba/category"
)

// UnknownDictionary holds, for each category, the WordEntries used as
// candidate nodes when that category's unknown-word generation rule fires
// (spec.md §3). Invariant: DEFAULT has at least one entry.
type UnknownDictionary struct {
	byCategory map[category.ID][]WordEntry
}

// NewUnknownDictionary wraps an already-populated per-category entry map.
func NewUnknownDictionary(byCategory map[category.ID][]WordEntry) *UnknownDictionary {
	return &UnknownDictionary{byCategory: byCategory}
}

// EntriesFor returns the candidate WordEntries registered for category id.
func (u *UnknownDictionary) EntriesFor(id category.ID) []WordEntry {
	return u.byCategory[id]
}

// DecodeUnknownDictionary parses unk.bin's decompressed bytes: a u32 count
// of categories, then per category a u32 category id followed by a u32
// entry count and that many valRecordSize-byte WordEntry records.
func DecodeUnknownDictionary(b []byte) *UnknownDictionary {
	byCategory := map[category.ID][]WordEntry{}
	if len(b) < 4 {
		return &UnknownDictionary{byCategory: byCategory}
	}
	pos := 0
	numCategories := binary.LittleEndian.Uint32(b[pos:])
	pos += 4
	for c := uint32(0); c < numCategories; c++ {
		if pos+8 > len(b) {
			break
		}
		catID := category.ID(binary.LittleEndian.Uint32(b[pos:]))
		pos += 4
		count := binary.LittleEndian.Uint32(b[pos:])
		pos += 4
		need := int(count) * valRecordSize
		if pos+need > len(b) {
			break
		}
		byCategory[catID] = DecodeVals(b[pos:pos+need], Unknown)
		pos += need
	}
	return &UnknownDictionary{byCategory: byCategory}
}

// Encode serializes the UnknownDictionary back to unk.bin's on-disk shape.
func (u *UnknownDictionary) Encode() []byte {
	var out []byte
	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(u.byCategory)))
	out = append(out, countBuf[:]...)
	for id, entries := range u.byCategory {
		var hdr [8]byte
		binary.LittleEndian.PutUint32(hdr[0:4], uint32(id))
		binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(entries)))
		out = append(out, hdr[:]...)
		out = append(out, EncodeVals(entries)...)
	}
	return out
}
