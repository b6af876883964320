package charfilter

import (
	"regexp"

	"github.com/gocjk/kotoba/errs"
)

// RegexFilter rewrites every match of Pattern to Replacement, per spec.md
// §4.8. No third-party regex engine appears as a direct dependency
// anywhere in the corpus this module draws on, so this stays on stdlib
// regexp (see DESIGN.md).
type RegexFilter struct {
	pattern     *regexp.Regexp
	replacement string
}

// NewRegexFilter compiles pattern, failing with errs.Filter if it is
// invalid.
func NewRegexFilter(pattern, replacement string) (*RegexFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errs.Wrap(errs.Filter, err, "compiling regex filter pattern %q", pattern)
	}
	return &RegexFilter{pattern: re, replacement: replacement}, nil
}

func (f *RegexFilter) Name() string { return "regex" }

// Apply replaces every match left to right, recording an offset/diff per
// match whose replacement length differs from the matched span's.
func (f *RegexFilter) Apply(text string) (string, OffsetDiffMap, error) {
	input := []byte(text)
	matches := f.pattern.FindAllSubmatchIndex(input, -1)

	var out []byte
	var m OffsetDiffMap
	var diff int64

	pos := 0
	for _, match := range matches {
		start, end := match[0], match[1]
		out = append(out, input[pos:start]...)

		replaced := f.pattern.Expand(nil, []byte(f.replacement), input, match)
		if len(replaced) != end-start {
			diff += int64(end-start) - int64(len(replaced))
			m.Record(len(out)+len(replaced), diff)
		}
		out = append(out, replaced...)
		pos = end
	}
	out = append(out, input[pos:]...)

	m.Len = len(out)
	return string(out), m, nil
}
