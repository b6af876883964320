package tokenfilter

import (
	"strings"

	"github.com/gocjk/kotoba/token"
)

// LowercaseFilter case-folds every token's surface to lowercase.
type LowercaseFilter struct{}

func (LowercaseFilter) Name() string { return "lowercase" }

func (LowercaseFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, t := range tokens {
		t.Surface = strings.ToLower(t.Surface)
	}
	return tokens, nil
}

// UppercaseFilter case-folds every token's surface to uppercase.
type UppercaseFilter struct{}

func (UppercaseFilter) Name() string { return "uppercase" }

func (UppercaseFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, t := range tokens {
		t.Surface = strings.ToUpper(t.Surface)
	}
	return tokens, nil
}
