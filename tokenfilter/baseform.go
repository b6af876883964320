package tokenfilter

import "github.com/gocjk/kotoba/token"

// JapaneseBaseFormFilter replaces a token's surface with its dictionary
// base-form field (the schema field named "base_form", else index 6, per
// Metadata.BaseFormIndex). Tokens with no resolvable base form (Unknown
// lex_kind, or a dictionary that never defines the field) are left
// unchanged.
type JapaneseBaseFormFilter struct{}

func (JapaneseBaseFormFilter) Name() string { return "japanese_base_form" }

func (JapaneseBaseFormFilter) Apply(tokens []*token.Token) ([]*token.Token, error) {
	for _, t := range tokens {
		meta := t.Metadata()
		if meta == nil {
			continue
		}
		idx, ok := meta.BaseFormIndex()
		if !ok {
			continue
		}
		if baseForm, ok := t.Field(idx); ok && baseForm != "" && baseForm != "*" {
			t.Surface = baseForm
		}
	}
	return tokens, nil
}
