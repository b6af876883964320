package tokenfilter

import (
	"unicode/utf8"

	"github.com/gocjk/kotoba/token"
)

// LengthFilter drops tokens whose surface falls outside [Min, Max]
// Unicode-scalar length. Either bound is optional (nil = unbounded).
type LengthFilter struct {
	Min *int
	Max *int
}

func (LengthFilter) Name() string { return "length" }

func (f LengthFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	out := tokens[:0]
	for _, t := range tokens {
		n := utf8.RuneCountInString(t.Surface)
		if f.Min != nil && n < *f.Min {
			continue
		}
		if f.Max != nil && n > *f.Max {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}
