package tokenfilter

import "github.com/gocjk/kotoba/token"

// StopWordsFilter drops tokens whose surface is in Words.
type StopWordsFilter struct {
	Words map[string]bool
}

// NewStopWordsFilter builds a StopWordsFilter from a word list.
func NewStopWordsFilter(words []string) *StopWordsFilter {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return &StopWordsFilter{Words: set}
}

func (*StopWordsFilter) Name() string { return "stop_words" }

func (f *StopWordsFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		if f.Words[t.Surface] {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// KeepWordsFilter is the inverse of StopWordsFilter: only tokens whose
// surface is in Words survive.
type KeepWordsFilter struct {
	Words map[string]bool
}

// NewKeepWordsFilter builds a KeepWordsFilter from a word list.
func NewKeepWordsFilter(words []string) *KeepWordsFilter {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return &KeepWordsFilter{Words: set}
}

func (*KeepWordsFilter) Name() string { return "keep_words" }

func (f *KeepWordsFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		if !f.Words[t.Surface] {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// MappingFilter substitutes a token's surface per Table, leaving tokens
// with no matching entry unchanged.
type MappingFilter struct {
	Table map[string]string
}

func (*MappingFilter) Name() string { return "mapping" }

func (f *MappingFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, t := range tokens {
		if replacement, ok := f.Table[t.Surface]; ok {
			t.Surface = replacement
		}
	}
	return tokens, nil
}
