package analyzer

import (
	"os"
	"runtime"
	"sync"

	"github.com/gocjk/kotoba/charfilter"
	"github.com/gocjk/kotoba/dictionary"
	"github.com/gocjk/kotoba/errs"
	"github.com/gocjk/kotoba/lattice"
	"github.com/gocjk/kotoba/segmenter"
	"github.com/gocjk/kotoba/token"
	"github.com/gocjk/kotoba/tokenfilter"
)

// Analyzer orchestrates the character-filter stack, the segmenter, and
// the token-filter stack into the pipeline spec.md §4.10 describes. Not
// safe for concurrent use by multiple goroutines simultaneously (spec.md
// §5) — Analyze reuses one charfilter.Stack and one segmenter.Segmenter,
// both of which hold per-call mutable state; use AnalyzeBatch, or one
// Analyzer per goroutine, for concurrent analysis.
type Analyzer struct {
	dict           *dictionary.Dictionary
	userDict       *dictionary.UserDictionary
	mode           lattice.Mode
	keepWhitespace bool

	charFilters []charfilter.Filter
	tokenStack  *tokenfilter.Stack

	seg       *segmenter.Segmenter
	charStack *charfilter.Stack
}

// New builds an Analyzer from cfg: loads the system dictionary (and the
// optional user dictionary), resolves the solve mode, and constructs the
// character- and token-filter stacks named by cfg, per spec.md §6.
func New(cfg Config) (*Analyzer, error) {
	dict, err := dictionary.LoadDictionary(cfg.Tokenizer.Dictionary)
	if err != nil {
		return nil, err
	}

	var userDict *dictionary.UserDictionary
	if cfg.Tokenizer.UserDictionary != "" {
		userDict, err = loadUserDictionary(cfg.Tokenizer.UserDictionary, dict.Metadata)
		if err != nil {
			return nil, err
		}
	}

	mode, err := cfg.Tokenizer.Mode.toLatticeMode()
	if err != nil {
		return nil, err
	}

	charFilters, err := buildCharFilters(cfg.CharacterFilters)
	if err != nil {
		return nil, err
	}
	tokenFilters, err := buildTokenFilters(cfg.TokenFilters)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		dict:           dict,
		userDict:       userDict,
		mode:           mode,
		keepWhitespace: cfg.Tokenizer.KeepWhitespace,
		charFilters:    charFilters,
		tokenStack:     tokenfilter.NewStack(tokenFilters...),
		seg:            segmenter.New(dict, userDict, mode, cfg.Tokenizer.KeepWhitespace),
		charStack:      charfilter.NewStack(charFilters...),
	}, nil
}

func loadUserDictionary(path string, meta *dictionary.Metadata) (*dictionary.UserDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(errs.Load, err, "opening user dictionary %q", path)
	}
	defer f.Close()
	return dictionary.LoadUserDictionaryCSV(f, meta)
}

// Analyze runs the five-step pipeline of spec.md §4.10 over text:
//  1. run character filters, stacking offset maps;
//  2. run the segmenter on the transformed text;
//  3. materialize every token's attribute vector;
//  4. run token filters in order;
//  5. rewrite each surviving token's byte_start/byte_end back to the
//     original input by walking the offset-map stack in reverse.
func (a *Analyzer) Analyze(text string) ([]*token.Token, error) {
	return a.analyzeWith(a.charStack, a.seg, text)
}

func (a *Analyzer) analyzeWith(charStack *charfilter.Stack, seg *segmenter.Segmenter, text string) ([]*token.Token, error) {
	filtered, err := charStack.Apply(text)
	if err != nil {
		return nil, err
	}

	tokens, err := seg.Segment([]byte(filtered))
	if err != nil {
		return nil, err
	}

	// Step 3: resolve attributes before token filters run, so a filter
	// that both reads and rewrites details (japanese_compound_word) sees
	// every token's real attribute vector rather than an unresolved one.
	for _, t := range tokens {
		t.Details()
	}

	tokens, err = a.tokenStack.Apply(tokens)
	if err != nil {
		return nil, err
	}

	for _, t := range tokens {
		t.ByteStart = charStack.Correct(t.ByteStart)
		t.ByteEnd = charStack.Correct(t.ByteEnd)
	}

	return tokens, nil
}

// AnalyzeBatch analyzes texts concurrently, one worker pool sized to
// runtime.NumCPU(), adapted from the teacher's ParseList/InflectList
// dispatcher-worker-collector shape: where the teacher fans a word list
// out over chunked channels and re-sorts results alphabetically before
// returning, AnalyzeBatch instead assigns each input its own index and
// writes straight into a pre-sized result slice, since callers need
// results in input order, not lexical order. Each worker gets its own
// segmenter.Segmenter and charfilter.Stack (both hold per-call mutable
// state) but shares the Analyzer's dictionary and token-filter stack,
// neither of which is mutated by analysis.
func (a *Analyzer) AnalyzeBatch(texts []string) ([][]*token.Token, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(texts) {
		numWorkers = len(texts)
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	type job struct {
		index int
		text  string
	}

	jobs := make(chan job, numWorkers)
	results := make([][]*token.Token, len(texts))
	errs := make(chan error, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			charStack := charfilter.NewStack(a.charFilters...)
			seg := segmenter.New(a.dict, a.userDict, a.mode, a.keepWhitespace)
			for j := range jobs {
				tokens, err := a.analyzeWith(charStack, seg, j.text)
				if err != nil {
					errs <- err
					continue
				}
				results[j.index] = tokens
			}
		}()
	}

	go func() {
		for i, text := range texts {
			jobs <- job{index: i, text: text}
		}
		close(jobs)
	}()

	wg.Wait()
	close(errs)

	if err, ok := <-errs; ok {
		return nil, err
	}
	return results, nil
}
