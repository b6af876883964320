package charfilter

import (
	"unicode/utf8"

	"github.com/gocjk/kotoba/doublearray"
)

// MappingFilter replaces the longest matching key from Table at each
// position, per spec.md §4.8: "built as an auxiliary double-array trie".
type MappingFilter struct {
	replacements []string
	trie         *doublearray.Array
}

// NewMappingFilter builds the auxiliary trie over table's keys.
func NewMappingFilter(table map[string]string) *MappingFilter {
	f := &MappingFilter{}
	b := doublearray.NewBuilder()
	for key, value := range table {
		idx := uint32(len(f.replacements))
		f.replacements = append(f.replacements, value)
		b.Add([]byte(key), doublearray.PackValue(idx, 1))
	}
	f.trie = b.Build()
	return f
}

func (f *MappingFilter) Name() string { return "mapping" }

// Apply scans text left to right, replacing the longest matching key at
// each position and recording an offset/diff whenever the replacement's
// byte length differs from the matched key's.
func (f *MappingFilter) Apply(text string) (string, OffsetDiffMap, error) {
	input := []byte(text)
	var out []byte
	var m OffsetDiffMap
	var diff int64

	pos := 0
	for pos < len(input) {
		hits := f.trie.CommonPrefixSearch(input[pos:])
		if len(hits) == 0 {
			_, size := utf8.DecodeRune(input[pos:])
			out = append(out, input[pos:pos+size]...)
			pos += size
			continue
		}

		longest := hits[len(hits)-1]
		idx, _ := doublearray.UnpackValue(longest.Value)
		replacement := f.replacements[idx]

		if len(replacement) != longest.MatchedByteLen {
			diff += int64(longest.MatchedByteLen) - int64(len(replacement))
			m.Record(len(out)+len(replacement), diff)
		}

		out = append(out, replacement...)
		pos += longest.MatchedByteLen
	}

	m.Len = len(out)
	return string(out), m, nil
}
