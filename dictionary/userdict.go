package dictionary

import (
	"encoding/csv"
	"io"

	"github.com/gocjk/kotoba/doublearray"
	"github.com/gocjk/kotoba/errs"
)

// UserDictionary has the same shape as the system dictionary (its own
// prefix trie, its own details blob) but is lexically separate; its
// WordIds all carry LexKind == User, per spec.md §3.
type UserDictionary struct {
	Prefix  *PrefixDictionary
	Details *WordDetails
}

// LoadUserDictionaryCSV parses a user-dictionary CSV against the owning
// dictionary's schema, accepting either the "simple" 3-field shape
// (surface, part_of_speech, reading) or the "detailed" shape with exactly
// schema.FieldCount()+4 fields, per spec.md §6. Invalid field counts fail
// with errs.Schema naming the expected counts.
func LoadUserDictionaryCSV(r io.Reader, meta *Metadata) (*UserDictionary, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	builder := NewWordDetailsBuilder()
	trieBuilder := doublearray.NewBuilder()

	// Details() holds only the dictionary-specific remainder (surface and
	// the dropped left/right-context-id/cost fields are not part of it),
	// per spec.md §8's schema-field-consistency property, so "fields"
	// here is always exactly meta.FieldCount() entries.
	detailFieldCount := meta.FieldCount()
	expectedDetailed := detailFieldCount + 4

	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(errs.Schema, err, "user dictionary CSV: row %d unreadable", row)
		}
		row++

		var surface string
		var fields []string

		switch len(record) {
		case 3:
			surface = record[0]
			pos := record[1]
			reading := record[2]
			fields = make([]string, detailFieldCount)
			for i := range fields {
				fields[i] = meta.DefaultFieldValue
			}
			// pos1 sits at absolute schema index 4, the reading at
			// meta.ReadingIndex(); both offset by -4 here since fields
			// excludes the dropped surface/context-id/cost slots entirely.
			if len(fields) > 0 {
				fields[0] = pos
			}
			if idx, ok := meta.ReadingIndex(); ok && idx-4 >= 0 && idx-4 < len(fields) {
				fields[idx-4] = reading
			}
		case expectedDetailed:
			surface = record[0]
			fields = append([]string(nil), record[4:]...)
		default:
			return nil, errs.New(errs.Schema,
				"user dictionary CSV: row %d has %d fields, expected 3 (simple) or %d (detailed)",
				row, len(record), expectedDetailed)
		}

		wordID := builder.Add(fields...)

		groupLen := uint8(1)
		trieBuilder.Add([]byte(surface), doublearray.PackValue(wordID, groupLen))
	}

	details, _, _ := builder.Build()
	trie := trieBuilder.Build()

	entries := make([]WordEntry, len(details.offsets))
	for i := range entries {
		entries[i] = WordEntry{
			WordID:         WordId{ID: uint32(i), LexKind: User},
			LeftContextID:  meta.DefaultLeftContextID,
			RightContextID: meta.DefaultRightContextID,
			WordCost:       meta.DefaultWordCost,
		}
	}

	prefix := NewPrefixDictionary(trie, entries, User)
	return &UserDictionary{Prefix: prefix, Details: details}, nil
}
