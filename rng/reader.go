package rng

import (
	"encoding/binary"
	"io"
	"math/rand"
)

var _ io.Reader = &Reader{}

// Reader turns a rand.Source64 into a stream of bytes.
type Reader struct {
	src rand.Source64
	buf [8]byte
	n   int // unread bytes left in buf
}

// NewReader returns a Reader drawing from src.
func NewReader(src rand.Source64) *Reader {
	return &Reader{src: src}
}

// Read fills p completely. It never returns an error.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if r.n == 0 {
			binary.LittleEndian.PutUint64(r.buf[:], r.src.Uint64())
			r.n = len(r.buf)
		}
		c := copy(p[n:], r.buf[len(r.buf)-r.n:])
		r.n -= c
		n += c
	}
	return n, nil
}
