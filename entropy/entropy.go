// Package entropy talks to an external randomness authority.
//
// A Fetcher performs exactly one request/response exchange and returns the
// raw bytes. Nothing here retries; that is up to the caller.
package entropy

import (
	"context"
	"errors"
	"math/bits"
)

var (
	// ErrNoEntropy is returned when the authority answers with zero bytes.
	ErrNoEntropy = errors.New("entropy: empty response")
	// ErrFetch marks failures of the exchange itself.
	ErrFetch = errors.New("entropy: fetch failed")
)

// Fetcher obtains raw random bytes from an authority.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// Result is delivered by GenerateAsync.
type Result struct {
	Seed uint
	Err  error
}

// Generate performs one fetch and decodes the bytes into a machine word.
func Generate(ctx context.Context, f Fetcher) (uint, error) {
	b, err := f.Fetch(ctx)
	if err != nil {
		return 0, &fetchError{err: err}
	}
	if len(b) == 0 {
		return 0, ErrNoEntropy
	}
	return Word(b), nil
}

// GenerateAsync runs Generate on its own goroutine. The returned channel
// receives exactly one Result and is then closed.
func GenerateAsync(ctx context.Context, f Fetcher) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		seed, err := Generate(ctx, f)
		ch <- Result{Seed: seed, Err: err}
	}()
	return ch
}

// Word reads b as a big-endian unsigned integer of the platform word size.
// Only the first word-size bytes are used; shorter input is zero-padded on
// the most significant side.
func Word(b []byte) uint {
	if bits.UintSize == 32 {
		return uint(Uint32(b))
	}
	return uint(Uint64(b))
}

// Uint32 is Word for a 4-byte word.
func Uint32(b []byte) uint32 {
	return uint32(beUint(b, 4))
}

// Uint64 is Word for an 8-byte word.
func Uint64(b []byte) uint64 {
	return beUint(b, 8)
}

func beUint(b []byte, size int) uint64 {
	if len(b) > size {
		b = b[:size]
	}
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

type fetchError struct {
	err error
}

func (e *fetchError) Error() string {
	return ErrFetch.Error() + ": " + e.err.Error()
}

func (e *fetchError) Is(target error) bool {
	return target == ErrFetch
}

func (e *fetchError) Unwrap() error {
	return e.err
}
