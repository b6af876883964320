// Package dictionary holds the runtime dictionary store (prefix lexicon,
// connection-cost matrix, character definitions, unknown-word table,
// word-details blob) and its loader.
//
// The loader's shape — open, mmap what can be mmapped, decompress the
// rest, carve typed views with no extra copy where possible — follows the
// teacher's loadInternal in analyzer/analyzer.go, generalized from one
// merged file with an offset header to spec.md §6's one-file-per-artifact
// layout.
package dictionary

import (
	"encoding/json"
	"strings"

	"github.com/edsrzf/mmap-go"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gocjk/kotoba/category"
	"github.com/gocjk/kotoba/doublearray"
	"github.com/gocjk/kotoba/errs"
)

// Dictionary is a fully materialized, immutable dictionary bundle: the
// seven artifacts of spec.md §6 plus the decoded metadata. No operation
// after Load mutates any byte backing it (spec.md §8's "dictionary
// immutability" property).
type Dictionary struct {
	Metadata *Metadata
	CharDef  *category.Definition
	Unknown  *UnknownDictionary
	Prefix   *PrefixDictionary
	Matrix   *ConnectionCostMatrix
	Details  *WordDetails

	// mappings holds live mmap.MMap handles for artifacts read
	// zero-copy (dict.da / dict.vals under "raw" compression from a
	// directory source); kept for the dictionary's lifetime, same as
	// the teacher keeps mmapFile alive on MorphAnalyzer.
	mappings []mmap.MMap
}

var dictionaryCache *lru.Cache[string, *Dictionary]

func init() {
	c, err := lru.New[string, *Dictionary](16)
	if err != nil {
		panic(err)
	}
	dictionaryCache = c
}

// LoadDictionary materializes a Dictionary from uri, one of:
//   - "embedded://<name>" — a bundle previously registered via RegisterEmbedded
//   - a filesystem directory path containing the eight files of spec.md §6
//   - a path to a zip archive containing the same eight files
//
// Repeated calls with the same uri return the same cached *Dictionary
// without re-reading or re-decompressing (see SPEC_FULL.md §3).
func LoadDictionary(uri string) (*Dictionary, error) {
	if d, ok := dictionaryCache.Get(uri); ok {
		return d, nil
	}

	d, err := loadDictionary(uri)
	if err != nil {
		return nil, err
	}
	dictionaryCache.Add(uri, d)
	return d, nil
}

func loadDictionary(uri string) (*Dictionary, error) {
	var src source
	switch {
	case strings.HasPrefix(uri, "embedded://"):
		name := strings.TrimPrefix(uri, "embedded://")
		files, ok := lookupEmbedded(name)
		if !ok {
			return nil, errs.New(errs.Load, "no embedded dictionary registered as %q", name)
		}
		src = embeddedSource{files: files}
	case strings.HasSuffix(uri, ".zip"):
		a, err := openArchiveSource(uri)
		if err != nil {
			return nil, errs.Wrap(errs.Load, err, "opening archive dictionary %q", uri)
		}
		src = a
	default:
		src = dirSource{root: uri}
	}

	metaBytes, _, err := src.open("metadata.json")
	if err != nil {
		return nil, errs.Wrap(errs.Load, err, "reading metadata.json from %q", uri)
	}
	var meta Metadata
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, errs.Wrap(errs.Load, err, "parsing metadata.json from %q", uri)
	}

	readArtifact := func(name string) ([]byte, error) {
		raw, _, err := src.open(name)
		if err != nil {
			return nil, errs.Wrap(errs.Load, err, "reading %s from %q", name, uri)
		}
		out, err := decompress(raw, meta.Compression)
		if err != nil {
			return nil, errs.Wrap(errs.Load, err, "decompressing %s (%s) from %q", name, meta.Compression, uri)
		}
		return out, nil
	}

	var mappings []mmap.MMap

	// dict.da and dict.vals are the two artifacts large dictionaries
	// (IPADIC/UniDic-scale system lexicons) benefit most from avoiding a
	// heap copy of; mmap them directly when the source is a plain
	// directory and the bytes are stored uncompressed, per
	// SPEC_FULL.md §3. Any other combination falls back to
	// read-then-decompress like the remaining artifacts.
	readZeroCopyable := func(name string) ([]byte, error) {
		if src.mmappable() && meta.Compression == CompressionRaw {
			m, err := src.openMmap(name)
			if err != nil {
				return nil, errs.Wrap(errs.Load, err, "mmapping %s from %q", name, uri)
			}
			mappings = append(mappings, m)
			return []byte(m), nil
		}
		return readArtifact(name)
	}

	charDefBytes, err := readArtifact("char_def.bin")
	if err != nil {
		return nil, err
	}
	unkBytes, err := readArtifact("unk.bin")
	if err != nil {
		return nil, err
	}
	daBytes, err := readZeroCopyable("dict.da")
	if err != nil {
		return nil, err
	}
	valsBytes, err := readZeroCopyable("dict.vals")
	if err != nil {
		return nil, err
	}
	wordsBytes, err := readArtifact("dict.words")
	if err != nil {
		return nil, err
	}
	wordsidxBytes, err := readArtifact("dict.wordsidx")
	if err != nil {
		return nil, err
	}
	matrixBytes, err := readArtifact("matrix.mtx")
	if err != nil {
		return nil, err
	}

	if len(meta.Schema) == 0 {
		return nil, errs.New(errs.Load, "metadata.json schema is empty")
	}

	charDef := DecodeCharDef(charDefBytes)
	unk := DecodeUnknownDictionary(unkBytes)

	entries := DecodeVals(valsBytes, System)
	cellCount := len(daBytes) / 8
	trie := doublearray.Decode(daBytes, cellCount)
	prefix := NewPrefixDictionary(trie, entries, System)

	offsets := DecodeWordsIdx(wordsidxBytes)
	details := NewWordDetails(offsets, wordsBytes)

	matrix := DecodeMatrix(matrixBytes)

	return &Dictionary{
		Metadata: &meta,
		CharDef:  charDef,
		Unknown:  unk,
		Prefix:   prefix,
		Matrix:   matrix,
		Details:  details,
		mappings: mappings,
	}, nil
}
