package tokenfilter

import (
	"strings"

	"github.com/gocjk/kotoba/token"
)

// formatTagFields pads/truncates fields to the 4-slot "*,*,*,*" template
// spec.md §4.9 uses for both configured tag sets and a token's own
// part-of-speech prefix.
func formatTagFields(fields []string) string {
	tag := []string{"*", "*", "*", "*"}
	for i := 0; i < len(fields) && i < 4; i++ {
		tag[i] = fields[i]
	}
	return strings.Join(tag, ",")
}

// formatConfiguredTag normalizes a user-supplied "pos1,pos2,pos3,pos4"
// string (possibly shorter) into the same 4-slot template.
func formatConfiguredTag(raw string) string {
	return formatTagFields(strings.Split(raw, ","))
}

// tokenTagKey computes a token's comparison key: its first 4 details
// fields padded to the template, or just the first field when details has
// fewer than 4 entries (an Unknown token's ["UNK"] sentinel, for
// instance) — mirrors the reference implementation's asymmetric fallback
// rather than a plain min(4, len).
func tokenTagKey(t *token.Token) string {
	details := t.Details()
	n := 1
	if len(details) >= 4 {
		n = 4
	}
	if n > len(details) {
		n = len(details)
	}
	return formatTagFields(details[:n])
}

func newTagSet(tags []string) map[string]bool {
	set := make(map[string]bool, len(tags))
	for _, raw := range tags {
		set[formatConfiguredTag(raw)] = true
	}
	return set
}

// JapaneseStopTagsFilter drops tokens whose part-of-speech prefix matches
// a configured tag.
type JapaneseStopTagsFilter struct {
	Tags map[string]bool
}

// NewJapaneseStopTagsFilter builds a JapaneseStopTagsFilter from raw
// "pos1,pos2,pos3,pos4"-shaped tag strings.
func NewJapaneseStopTagsFilter(tags []string) *JapaneseStopTagsFilter {
	return &JapaneseStopTagsFilter{Tags: newTagSet(tags)}
}

func (*JapaneseStopTagsFilter) Name() string { return "japanese_stop_tags" }

func (f *JapaneseStopTagsFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		if f.Tags[tokenTagKey(t)] {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// JapaneseKeepTagsFilter is the inverse of JapaneseStopTagsFilter.
type JapaneseKeepTagsFilter struct {
	Tags map[string]bool
}

// NewJapaneseKeepTagsFilter builds a JapaneseKeepTagsFilter from raw
// "pos1,pos2,pos3,pos4"-shaped tag strings.
func NewJapaneseKeepTagsFilter(tags []string) *JapaneseKeepTagsFilter {
	return &JapaneseKeepTagsFilter{Tags: newTagSet(tags)}
}

func (*JapaneseKeepTagsFilter) Name() string { return "japanese_keep_tags" }

func (f *JapaneseKeepTagsFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		if !f.Tags[tokenTagKey(t)] {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
