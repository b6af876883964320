package charfilter

// Filter is the shared capability every character filter implements, per
// spec.md §4.8: apply(text) -> (new_text, offsets, diffs). Filters must
// preserve UTF-8 validity and never throw across the pipeline — failures
// surface through the returned error instead (spec.md §9's "Filter error
// channel").
type Filter interface {
	Name() string
	Apply(text string) (newText string, offsetMap OffsetDiffMap, err error)
}

// Stack runs filters in order, composing their offset maps, per spec.md
// §4.8's composition rule: "each filter's output becomes the next
// filter's input; each filter's (offsets, diffs, len) is pushed onto a
// stack."
type Stack struct {
	filters []Filter
	maps    []OffsetDiffMap
}

// NewStack constructs a Stack over filters, applied in the given order.
func NewStack(filters ...Filter) *Stack {
	return &Stack{filters: filters}
}

// Apply runs every filter in sequence, returning the final text. The
// composed offset maps are retained on the Stack for Correct to use
// afterward.
func (s *Stack) Apply(text string) (string, error) {
	s.maps = s.maps[:0]
	for _, f := range s.filters {
		newText, m, err := f.Apply(text)
		if err != nil {
			return "", err
		}
		s.maps = append(s.maps, m)
		text = newText
	}
	return text, nil
}

// Correct rewrites a byte position in the final filtered text back to the
// original pre-filter input, by walking the offset-map stack in reverse,
// per spec.md §4.8's composition rule and §4.10 step 5.
func (s *Stack) Correct(p int) int {
	for i := len(s.maps) - 1; i >= 0; i-- {
		p = CorrectOffset(p, s.maps[i])
	}
	return p
}
