package dictionary

// Compression names the algorithm a dictionary artifact is wrapped in, per
// metadata.json's compression field.
type Compression string

const (
	CompressionDeflate Compression = "deflate"
	CompressionZlib    Compression = "zlib"
	CompressionGzip    Compression = "gzip"
	CompressionRaw     Compression = "raw"
)

// Metadata is the decoded form of metadata.json: the dictionary's field
// schema and the bits the loader needs to interpret the other seven binary
// artifacts.
type Metadata struct {
	// Schema lists the word-details field names in order; index 0 is
	// always "surface", 1-3 are the context/cost fields dropped after
	// build, 4.. are the dictionary-specific fields returned by
	// Token.Details().
	Schema []string `json:"schema"`

	// Compression is the algorithm every binary artifact in this
	// dictionary directory is wrapped in.
	Compression Compression `json:"compression"`

	// DefaultFieldValue fills schema fields a user-dictionary "simple"
	// CSV row does not supply.
	DefaultFieldValue string `json:"default_field_value"`

	// Encoding names the text encoding of the source CSV this
	// dictionary was built from; runtime artifacts are always UTF-8.
	Encoding string `json:"encoding"`

	// NormalizeUnicode, when set, records that the builder NFKC-folded
	// surfaces before indexing; the analyzer's own character filters are
	// configured independently and this flag is informational only.
	NormalizeUnicode bool `json:"normalize_unicode"`

	// DefaultLeftContextID / DefaultRightContextID / DefaultWordCost
	// fill a user dictionary's "simple" CSV shape, per spec.md §6.
	DefaultLeftContextID  uint16 `json:"default_left_context_id"`
	DefaultRightContextID uint16 `json:"default_right_context_id"`
	DefaultWordCost       int16  `json:"default_word_cost"`
}

// FieldCount is the number of details fields Token.Details() returns for a
// System or User entry built against this schema.
func (m *Metadata) FieldCount() int {
	if len(m.Schema) < 4 {
		return 0
	}
	return len(m.Schema) - 4
}

// FieldIndex returns the schema index of name, and whether it was found.
func (m *Metadata) FieldIndex(name string) (int, bool) {
	for i, n := range m.Schema {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// BaseFormIndex returns the schema index of the base-form field: the field
// named "base_form" if the schema has one, else position 6 (the IPADIC
// layout) when the schema is long enough. Position 10 (the UniDic layout)
// is not tried; a UniDic schema resolves only through the field name.
func (m *Metadata) BaseFormIndex() (int, bool) {
	if idx, ok := m.FieldIndex("base_form"); ok {
		return idx, true
	}
	if len(m.Schema) > 6 {
		return 6, true
	}
	return 0, false
}

// ReadingIndex returns the schema index of the reading field, trying the
// field's name first and falling back to the position one past base_form
// (the layout both IPADIC and UniDic schemas share).
func (m *Metadata) ReadingIndex() (int, bool) {
	if idx, ok := m.FieldIndex("reading"); ok {
		return idx, true
	}
	if baseIdx, ok := m.BaseFormIndex(); ok && baseIdx+1 < len(m.Schema) {
		return baseIdx + 1, true
	}
	return 0, false
}

// CompoundTagWidth is the per-dictionary padding width the
// japanese_compound_word token filter pads its synthesized tag to: IPADIC
// uses 9 fields, UniDic 17. Falls back to the schema's own field count.
func (m *Metadata) CompoundTagWidth() int {
	switch len(m.Schema) {
	case 13: // 4 + 9 (IPADIC)
		return 9
	case 21: // 4 + 17 (UniDic)
		return 17
	default:
		return m.FieldCount()
	}
}
