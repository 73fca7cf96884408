package trand

import (
	"io"
	"sync"

	"github.com/tutils/trand/rng"
	"golang.org/x/exp/constraints"
)

// SyncReader is concurrency safe reader
type SyncReader struct {
	r  io.Reader
	mu sync.Mutex
}

func (r *SyncReader) Read(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.Read(p)
}

// NewSyncReader create a new SyncReader
func NewSyncReader(r io.Reader) io.Reader {
	return &SyncReader{r: r}
}

// SyncGenerator is a concurrency safe LCG
type SyncGenerator[T constraints.Unsigned] struct {
	g  *rng.LCG[T]
	mu sync.Mutex
}

// Next returns the next value of the shared sequence
func (s *SyncGenerator[T]) Next() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Next()
}

// Range returns Next() % max, with the same bias as rng.LCG.Range
func (s *SyncGenerator[T]) Range(max T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Range(max)
}

// NewSyncGenerator wraps g. g must not be used directly afterwards.
func NewSyncGenerator[T constraints.Unsigned](g *rng.LCG[T]) *SyncGenerator[T] {
	return &SyncGenerator[T]{g: g}
}
