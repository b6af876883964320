package analyzer

import (
	"encoding/json"

	"github.com/gocjk/kotoba/charfilter"
	"github.com/gocjk/kotoba/errs"
	"github.com/gocjk/kotoba/tokenfilter"
)

// buildCharFilters resolves each FilterSpec's Kind against the closed set
// of built-in character filters spec.md §9's "Filter polymorphism" design
// note mandates (a tagged variant enumerating every kind, not open
// dispatch).
func buildCharFilters(specs []FilterSpec) ([]charfilter.Filter, error) {
	filters := make([]charfilter.Filter, 0, len(specs))
	for _, spec := range specs {
		f, err := buildCharFilter(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func buildCharFilter(spec FilterSpec) (charfilter.Filter, error) {
	switch spec.Kind {
	case "unicode_normalize":
		var args struct {
			Form string `json:"form"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return charfilter.UnicodeNormalizeFilter{Form: charfilter.NormalizeForm(args.Form)}, nil

	case "mapping":
		var args struct {
			Mapping map[string]string `json:"mapping"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return charfilter.NewMappingFilter(args.Mapping), nil

	case "regex":
		var args struct {
			Pattern     string `json:"pattern"`
			Replacement string `json:"replacement"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return charfilter.NewRegexFilter(args.Pattern, args.Replacement)

	case "japanese_iteration_mark":
		var args struct {
			NormalizeKanji bool `json:"normalize_kanji"`
			NormalizeKana  bool `json:"normalize_kana"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return charfilter.IterationMarkFilter{NormalizeKanji: args.NormalizeKanji, NormalizeKana: args.NormalizeKana}, nil

	default:
		return nil, errs.New(errs.Filter, "character_filters: unknown kind %q", spec.Kind)
	}
}

// buildTokenFilters resolves each FilterSpec's Kind against the closed set
// of built-in token filters, per the same "Filter polymorphism" design
// note.
func buildTokenFilters(specs []FilterSpec) ([]tokenfilter.Filter, error) {
	filters := make([]tokenfilter.Filter, 0, len(specs))
	for _, spec := range specs {
		f, err := buildTokenFilter(spec)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func buildTokenFilter(spec FilterSpec) (tokenfilter.Filter, error) {
	switch spec.Kind {
	case "lowercase":
		return tokenfilter.LowercaseFilter{}, nil
	case "uppercase":
		return tokenfilter.UppercaseFilter{}, nil

	case "length":
		var args struct {
			Min *int `json:"min"`
			Max *int `json:"max"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return tokenfilter.LengthFilter{Min: args.Min, Max: args.Max}, nil

	case "stop_words":
		var args struct {
			Words []string `json:"words"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return tokenfilter.NewStopWordsFilter(args.Words), nil

	case "keep_words":
		var args struct {
			Words []string `json:"words"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return tokenfilter.NewKeepWordsFilter(args.Words), nil

	case "mapping":
		var args struct {
			Mapping map[string]string `json:"mapping"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return &tokenfilter.MappingFilter{Table: args.Mapping}, nil

	case "japanese_stop_tags":
		var args struct {
			Tags []string `json:"tags"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return tokenfilter.NewJapaneseStopTagsFilter(args.Tags), nil

	case "japanese_keep_tags":
		var args struct {
			Tags []string `json:"tags"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return tokenfilter.NewJapaneseKeepTagsFilter(args.Tags), nil

	case "japanese_base_form":
		return tokenfilter.JapaneseBaseFormFilter{}, nil

	case "japanese_reading_form":
		var args struct {
			Kana string `json:"kana"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		dir, err := parseKanaDirection(args.Kana)
		if err != nil {
			return nil, err
		}
		return tokenfilter.JapaneseReadingFormFilter{Kana: dir}, nil

	case "japanese_kana":
		var args struct {
			Direction string `json:"direction"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		dir, err := parseKanaDirection(args.Direction)
		if err != nil {
			return nil, err
		}
		if dir == nil {
			return nil, errs.New(errs.Filter, "japanese_kana: direction is required")
		}
		return tokenfilter.JapaneseKanaFilter{Direction: *dir}, nil

	case "japanese_katakana_stem":
		var args struct {
			Min int `json:"min"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return tokenfilter.JapaneseKatakanaStemFilter{Min: args.Min}, nil

	case "japanese_number":
		var args struct {
			Tags []string `json:"tags"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		var tags []string
		if len(args.Tags) > 0 {
			tags = args.Tags
		}
		return tokenfilter.NewJapaneseNumberFilter(tags), nil

	case "japanese_compound_word":
		var args struct {
			Tags   []string `json:"tags"`
			NewTag string   `json:"new_tag"`
		}
		if err := unmarshalArgs(spec, &args); err != nil {
			return nil, err
		}
		return tokenfilter.NewJapaneseCompoundWordFilter(args.Tags, args.NewTag), nil

	default:
		return nil, errs.New(errs.Filter, "token_filters: unknown kind %q", spec.Kind)
	}
}

func unmarshalArgs(spec FilterSpec, dst any) error {
	if len(spec.Args) == 0 {
		return nil
	}
	if err := json.Unmarshal(spec.Args, dst); err != nil {
		return errs.Wrap(errs.Parse, err, "%s: parsing args", spec.Kind)
	}
	return nil
}

func parseKanaDirection(s string) (*tokenfilter.KanaDirection, error) {
	switch s {
	case "":
		return nil, nil
	case string(tokenfilter.KanaToHiragana):
		d := tokenfilter.KanaToHiragana
		return &d, nil
	case string(tokenfilter.KanaToKatakana):
		d := tokenfilter.KanaToKatakana
		return &d, nil
	default:
		return nil, errs.New(errs.Filter, "unknown kana direction %q", s)
	}
}
