package charfilter

import "golang.org/x/text/unicode/norm"

// NormalizeForm names one of the four Unicode normalization forms spec.md
// §4.8 lists.
type NormalizeForm string

const (
	NFC  NormalizeForm = "NFC"
	NFD  NormalizeForm = "NFD"
	NFKC NormalizeForm = "NFKC"
	NFKD NormalizeForm = "NFKD"
)

func (f NormalizeForm) normForm() norm.Form {
	switch f {
	case NFD:
		return norm.NFD
	case NFKC:
		return norm.NFKC
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// UnicodeNormalizeFilter applies one of NFC/NFD/NFKC/NFKD, segment by
// segment, recording an (offset, diff) whenever a segment's normalized
// length differs from its input length.
type UnicodeNormalizeFilter struct {
	Form NormalizeForm
}

func (f UnicodeNormalizeFilter) Name() string { return "unicode_normalize" }

// Apply walks text in normalization-boundary segments (via the form's
// NextBoundary, the same incremental-segmentation primitive norm's own
// streaming Writer uses) so each segment is normalized independently and
// contributes its own offset/diff entry when its length changes.
func (f UnicodeNormalizeFilter) Apply(text string) (string, OffsetDiffMap, error) {
	form := f.Form.normForm()
	input := []byte(text)

	var out []byte
	var m OffsetDiffMap
	var diff int64

	pos := 0
	for pos < len(input) {
		n := form.NextBoundary(input[pos:], true)
		if n <= 0 {
			n = len(input) - pos
		}
		segment := input[pos : pos+n]
		normalized := form.Append(nil, segment)

		if len(normalized) != len(segment) {
			diff += int64(len(segment)) - int64(len(normalized))
			m.Record(len(out)+len(normalized), diff)
		}

		out = append(out, normalized...)
		pos += n
	}

	m.Len = len(out)
	return string(out), m, nil
}
