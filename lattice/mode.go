package lattice

// Mode selects between the two Viterbi cost functions spec.md §4.5 names.
type Mode struct {
	// Decompose enables the decomposition penalty below. When false this
	// is the Normal mode: no penalty, always the globally shortest path.
	Decompose bool

	KanjiThreshold int
	KanjiPenalty   int
	OtherThreshold int
	OtherPenalty   int
}

// NormalMode returns the no-penalty mode.
func NormalMode() Mode { return Mode{} }

// DefaultDecomposeMode returns Decompose mode with spec.md's stated
// defaults: Kanji span > 2 chars -> +3000/char, other span > 7 chars ->
// +1700/char.
func DefaultDecomposeMode() Mode {
	return Mode{
		Decompose:      true,
		KanjiThreshold: 2,
		KanjiPenalty:   3000,
		OtherThreshold: 7,
		OtherPenalty:   1700,
	}
}
