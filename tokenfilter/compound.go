package tokenfilter

import (
	"strings"

	"github.com/gocjk/kotoba/token"
)

// JapaneseCompoundWordFilter concatenates runs of two or more adjacent
// tokens whose tag is in Tags into a single compound token, replacing the
// run's details with CompoundTag padded to the dictionary's own
// compound-tag width (9 fields for IPADIC, 17 for UniDic), per spec.md
// §4.9 and SPEC_FULL.md §5's per-dictionary padding-width supplement.
type JapaneseCompoundWordFilter struct {
	Tags        map[string]bool
	CompoundTag string
}

// NewJapaneseCompoundWordFilter builds a JapaneseCompoundWordFilter from
// raw "pos1,pos2,pos3,pos4"-shaped tags and the replacement compound tag
// (also comma-separated, padded to the dictionary's own field width at
// apply time).
func NewJapaneseCompoundWordFilter(tags []string, compoundTag string) *JapaneseCompoundWordFilter {
	return &JapaneseCompoundWordFilter{Tags: newTagSet(tags), CompoundTag: compoundTag}
}

func (*JapaneseCompoundWordFilter) Name() string { return "japanese_compound_word" }

func (f *JapaneseCompoundWordFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	var out []*token.Token

	i := 0
	for i < len(tokens) {
		if !f.Tags[tokenTagKey(tokens[i])] {
			out = append(out, tokens[i])
			i++
			continue
		}

		j := i
		var surface strings.Builder
		for j < len(tokens) && f.Tags[tokenTagKey(tokens[j])] {
			surface.WriteString(tokens[j].Surface)
			j++
		}

		if j == i+1 {
			// A lone matching token has no run partner to merge with.
			out = append(out, tokens[i])
			i = j
			continue
		}

		first, last := tokens[i], tokens[j-1]
		merged := first.Clone()
		merged.Surface = surface.String()
		merged.ByteEnd = last.ByteEnd
		merged.PositionLength = last.Position + last.PositionLength - first.Position

		width := 9
		if meta := first.Metadata(); meta != nil {
			width = meta.CompoundTagWidth()
		}
		merged.SetDetails(padCompoundTag(f.CompoundTag, width))

		out = append(out, merged)
		i = j
	}

	return out, nil
}

func padCompoundTag(raw string, width int) []string {
	fields := strings.Split(raw, ",")
	details := make([]string, width)
	for i := range details {
		if i < len(fields) {
			details[i] = fields[i]
		} else {
			details[i] = "*"
		}
	}
	return details
}
