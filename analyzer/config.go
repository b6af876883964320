// Package analyzer is the library's façade: it builds a character-filter
// stack, a segmenter, and a token-filter stack from a declarative JSON
// configuration (spec.md §6) and orchestrates them into the five-step
// pipeline of spec.md §4.10.
package analyzer

import (
	"encoding/json"

	"github.com/gocjk/kotoba/errs"
	"github.com/gocjk/kotoba/lattice"
)

// Config is the JSON configuration object of spec.md §6.
type Config struct {
	CharacterFilters []FilterSpec    `json:"character_filters"`
	Tokenizer        TokenizerConfig `json:"tokenizer"`
	TokenFilters     []FilterSpec    `json:"token_filters"`
}

// FilterSpec names one filter and carries its raw, kind-specific
// arguments, deferred until the filter's own constructor parses them.
type FilterSpec struct {
	Kind string          `json:"kind"`
	Args json.RawMessage `json:"args"`
}

// TokenizerConfig is the required "tokenizer" object of spec.md §6.
type TokenizerConfig struct {
	// Dictionary is a URI: "embedded://<name>", a filesystem directory
	// path, or a path to a zip archive, per dictionary.LoadDictionary.
	Dictionary string `json:"dictionary"`

	// UserDictionary, when set, names a CSV file parsed against the
	// system dictionary's schema via dictionary.LoadUserDictionaryCSV.
	UserDictionary string `json:"user_dictionary,omitempty"`

	Mode ModeSpec `json:"mode"`

	// KeepWhitespace defaults to false (spec.md §8 scenario 3).
	KeepWhitespace bool `json:"keep_whitespace,omitempty"`
}

// ModeSpec decodes spec.md §6's "mode is normal, decompose, or an object
// carrying the four decomposition thresholds/penalties" rule: either a
// bare string naming a built-in mode, or a JSON object spelling out
// Decompose's four tunables explicitly.
type ModeSpec struct {
	Named  string
	Custom *decomposeThresholds
}

type decomposeThresholds struct {
	KanjiThreshold int `json:"kanji_threshold"`
	KanjiPenalty   int `json:"kanji_penalty"`
	OtherThreshold int `json:"other_threshold"`
	OtherPenalty   int `json:"other_penalty"`
}

func (m *ModeSpec) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		m.Named = name
		m.Custom = nil
		return nil
	}
	var custom decomposeThresholds
	if err := json.Unmarshal(b, &custom); err != nil {
		return errs.Wrap(errs.Parse, err, "tokenizer.mode: expected a string or a decomposition-threshold object")
	}
	m.Custom = &custom
	m.Named = ""
	return nil
}

// toLatticeMode resolves a ModeSpec to the lattice.Mode it names, failing
// with errs.Parse on an unrecognized string.
func (m ModeSpec) toLatticeMode() (lattice.Mode, error) {
	if m.Custom != nil {
		return lattice.Mode{
			Decompose:      true,
			KanjiThreshold: m.Custom.KanjiThreshold,
			KanjiPenalty:   m.Custom.KanjiPenalty,
			OtherThreshold: m.Custom.OtherThreshold,
			OtherPenalty:   m.Custom.OtherPenalty,
		}, nil
	}
	switch m.Named {
	case "", "normal":
		return lattice.NormalMode(), nil
	case "decompose":
		return lattice.DefaultDecomposeMode(), nil
	default:
		return lattice.Mode{}, errs.New(errs.Parse, "tokenizer.mode: unknown mode %q", m.Named)
	}
}

// ParseConfig decodes raw JSON per spec.md §6, failing with errs.Parse on
// malformed JSON or a missing tokenizer.dictionary. Enum values are not
// checked here: an unknown mode name is rejected by toLatticeMode and an
// unknown filter kind by the builders in filters.go, both when New runs.
func ParseConfig(raw []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errs.Wrap(errs.Parse, err, "parsing analyzer configuration")
	}
	if cfg.Tokenizer.Dictionary == "" {
		return Config{}, errs.New(errs.Parse, "tokenizer.dictionary is required")
	}
	return cfg, nil
}
