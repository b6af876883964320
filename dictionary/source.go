package dictionary

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
	"github.com/gocjk/kotoba/errs"
)

// artifactNames lists the seven files every dictionary directory carries,
// per spec.md §6, plus metadata.json which is read separately (it is never
// compressed and never mmapped: the loader must parse it before it knows
// which compression algorithm the other seven are wrapped in).
var artifactNames = []string{
	"char_def.bin", "unk.bin", "dict.da", "dict.vals", "dict.words", "dict.wordsidx", "matrix.mtx",
}

// source abstracts where a dictionary's files come from: a plain
// directory, a zip archive, or the in-process embedded registry. mmappable
// reports whether openMmap can hand back a live mmap.MMap (directory sources
// only — archive and embedded entries are never individually addressable
// files on disk).
type source interface {
	open(name string) ([]byte, io.Closer, error)
	mmappable() bool
	openMmap(name string) (mmap.MMap, error)
}

// dirSource reads a dictionary from a plain filesystem directory.
type dirSource struct {
	root string
}

func (d dirSource) open(name string) ([]byte, io.Closer, error) {
	b, err := os.ReadFile(filepath.Join(d.root, name))
	if err != nil {
		return nil, nil, err
	}
	return b, nil, nil
}

func (d dirSource) mmappable() bool { return true }

func (d dirSource) openMmap(name string) (mmap.MMap, error) {
	f, err := os.Open(filepath.Join(d.root, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return mmap.Map(f, mmap.RDONLY, 0)
}

// archiveSource reads a dictionary bundled as a zip archive; no member is
// individually mmappable so open always materializes the member into
// memory.
type archiveSource struct {
	zr *zip.ReadCloser
}

func openArchiveSource(path string) (*archiveSource, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &archiveSource{zr: zr}, nil
}

func (a *archiveSource) open(name string) ([]byte, io.Closer, error) {
	for _, f := range a.zr.File {
		if f.Name == name || filepath.Base(f.Name) == name {
			rc, err := f.Open()
			if err != nil {
				return nil, nil, err
			}
			defer rc.Close()
			b, err := io.ReadAll(rc)
			if err != nil {
				return nil, nil, err
			}
			return b, nil, nil
		}
	}
	return nil, nil, os.ErrNotExist
}

func (a *archiveSource) mmappable() bool { return false }
func (a *archiveSource) openMmap(name string) (mmap.MMap, error) {
	return nil, errs.New(errs.Load, "archive dictionaries do not support mmap: %s", name)
}

// embeddedSource serves an in-memory dictionary bundle registered via
// RegisterEmbedded.
type embeddedSource struct {
	files map[string][]byte
}

func (e embeddedSource) open(name string) ([]byte, io.Closer, error) {
	b, ok := e.files[name]
	if !ok {
		return nil, nil, os.ErrNotExist
	}
	return b, nil, nil
}

func (e embeddedSource) mmappable() bool { return false }
func (e embeddedSource) openMmap(name string) (mmap.MMap, error) {
	return nil, errs.New(errs.Load, "embedded dictionaries do not support mmap: %s", name)
}

// decompress unwraps bytes read from disk according to the dictionary's
// declared compression algorithm, per spec.md §4.1: "the loader recognizes
// a small set of compression algorithms... and dispatches by the algorithm
// recorded in the metadata header. Decompression is eager."
func decompress(raw []byte, algo Compression) ([]byte, error) {
	switch algo {
	case CompressionRaw, "":
		return raw, nil
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case CompressionZlib:
		r, err := zlib.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case CompressionDeflate:
		r := flate.NewReader(bytes.NewReader(raw))
		defer r.Close()
		return io.ReadAll(r)
	default:
		return nil, errs.New(errs.Load, "unknown compression algorithm %q", algo)
	}
}
