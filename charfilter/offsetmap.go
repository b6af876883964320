// Package charfilter implements the pre-segmentation text-rewriting
// pipeline: each filter transforms text while recording an offset map back
// to its input, per spec.md §3/§4.8.
package charfilter

import "sort"

// OffsetDiffMap is what a character filter produces alongside its rewritten
// text: parallel offsets/diffs arrays plus the output text's byte length,
// per spec.md §3.
type OffsetDiffMap struct {
	Offsets []int
	Diffs   []int64
	Len     int
}

// Record appends one (offset, diff) pair. Callers must append in
// increasing offset order (spec.md §3's "offsets strictly increasing"
// invariant); Record does not re-sort.
func (m *OffsetDiffMap) Record(offset int, diff int64) {
	m.Offsets = append(m.Offsets, offset)
	m.Diffs = append(m.Diffs, diff)
}

// CorrectOffset implements spec.md §3's correct_offset: for byte position p
// in the filtered text, returns the corresponding position in the
// pre-filter text, `p + diff_at(p)` where diff_at(p) is the last diff whose
// offset is <= p, or 0 if none.
func CorrectOffset(p int, m OffsetDiffMap) int {
	if len(m.Offsets) == 0 {
		return p
	}
	i := sort.Search(len(m.Offsets), func(i int) bool { return m.Offsets[i] > p })
	if i == 0 {
		return p
	}
	return p + int(m.Diffs[i-1])
}
