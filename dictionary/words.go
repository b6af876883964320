package dictionary

import (
	"encoding/binary"
	"strings"
)

// WordDetails is the decoded dict.wordsidx/dict.words pair: an offset table
// plus a NUL-separated field buffer, addressed per word_id.
type WordDetails struct {
	offsets []uint32
	buf     []byte
}

// NewWordDetails wraps an already-decoded offset table and field buffer.
func NewWordDetails(offsets []uint32, buf []byte) *WordDetails {
	return &WordDetails{offsets: offsets, buf: buf}
}

// Fields returns the NUL-separated field list stored for word_id id, per
// spec.md §3's "offset = table[word_id]; len = u32 at offset; payload =
// bytes[offset+4 .. offset+4+len]; split on NUL".
func (d *WordDetails) Fields(id uint32) []string {
	if int(id) >= len(d.offsets) {
		return nil
	}
	offset := d.offsets[id]
	if int(offset)+4 > len(d.buf) {
		return nil
	}
	length := binary.LittleEndian.Uint32(d.buf[offset:])
	start := offset + 4
	end := start + length
	if int(end) > len(d.buf) {
		return nil
	}
	payload := d.buf[start:end]
	if len(payload) == 0 {
		return nil
	}
	return strings.Split(string(payload), "\x00")
}

// DecodeWordsIdx parses dict.wordsidx's decompressed bytes: u32[n] offsets,
// little-endian.
func DecodeWordsIdx(b []byte) []uint32 {
	n := len(b) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return out
}

// WordDetailsBuilder accumulates entries in insertion order (insertion
// order becomes word_id order) and emits dict.words/dict.wordsidx pairs.
type WordDetailsBuilder struct {
	offsets []uint32
	buf     []byte
}

// NewWordDetailsBuilder returns an empty builder.
func NewWordDetailsBuilder() *WordDetailsBuilder { return &WordDetailsBuilder{} }

// Add appends one entry's fields, returning its assigned word_id.
func (b *WordDetailsBuilder) Add(fields ...string) uint32 {
	id := uint32(len(b.offsets))
	b.offsets = append(b.offsets, uint32(len(b.buf)))
	payload := []byte(strings.Join(fields, "\x00"))
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	b.buf = append(b.buf, lenBuf[:]...)
	b.buf = append(b.buf, payload...)
	return id
}

// Build finalizes the builder into a WordDetails plus its two on-disk byte
// streams (dict.words, dict.wordsidx).
func (b *WordDetailsBuilder) Build() (*WordDetails, []byte, []byte) {
	idxBytes := make([]byte, 4*len(b.offsets))
	for i, off := range b.offsets {
		binary.LittleEndian.PutUint32(idxBytes[4*i:], off)
	}
	return &WordDetails{offsets: b.offsets, buf: b.buf}, b.buf, idxBytes
}
