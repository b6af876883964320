package dictionary

import "encoding/binary"

const valRecordSize = 2 + 2 + 2 + 4 // cost i16, left u16, right u16, word_id u32

// DecodeVals parses dict.vals's decompressed bytes into WordEntry records,
// each `i16 cost, u16 left, u16 right, u32 word_id` little-endian, per
// spec.md §6. lexKind tags every decoded entry (System for dict.vals,
// User for a user dictionary's own vals file).
func DecodeVals(b []byte, lexKind LexKind) []WordEntry {
	n := len(b) / valRecordSize
	out := make([]WordEntry, n)
	for i := 0; i < n; i++ {
		rec := b[i*valRecordSize:]
		cost := int16(binary.LittleEndian.Uint16(rec[0:2]))
		left := binary.LittleEndian.Uint16(rec[2:4])
		right := binary.LittleEndian.Uint16(rec[4:6])
		wordID := binary.LittleEndian.Uint32(rec[6:10])
		out[i] = WordEntry{
			WordID:         WordId{ID: wordID, LexKind: lexKind},
			LeftContextID:  left,
			RightContextID: right,
			WordCost:       cost,
		}
	}
	return out
}

// EncodeVals serializes WordEntry records back to dict.vals's on-disk
// shape.
func EncodeVals(entries []WordEntry) []byte {
	out := make([]byte, valRecordSize*len(entries))
	for i, e := range entries {
		rec := out[i*valRecordSize:]
		binary.LittleEndian.PutUint16(rec[0:2], uint16(e.WordCost))
		binary.LittleEndian.PutUint16(rec[2:4], e.LeftContextID)
		binary.LittleEndian.PutUint16(rec[4:6], e.RightContextID)
		binary.LittleEndian.PutUint32(rec[6:10], e.WordID.ID)
	}
	return out
}
