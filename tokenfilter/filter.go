// Package tokenfilter implements the post-segmentation pipeline: each
// filter rewrites, drops, or merges tokens in place, per spec.md §4.9.
package tokenfilter

import "github.com/gocjk/kotoba/token"

// Filter is the shared capability every token filter implements. Unlike
// charfilter.Filter, a token filter's output length need not match its
// input: Stop/Keep-words drop tokens, japanese_compound_word merges them.
type Filter interface {
	Name() string
	Apply(tokens []*token.Token) ([]*token.Token, error)
}

// Stack runs filters in the configured order, per spec.md §4.9's "order
// matters" rule.
type Stack struct {
	filters []Filter
}

// NewStack constructs a Stack over filters, applied in the given order.
func NewStack(filters ...Filter) *Stack {
	return &Stack{filters: filters}
}

// Apply runs every filter in sequence.
func (s *Stack) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, f := range s.filters {
		var err error
		tokens, err = f.Apply(tokens)
		if err != nil {
			return nil, err
		}
	}
	return tokens, nil
}
