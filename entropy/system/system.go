// Package system reads entropy from the operating system.
//
// It stands in for a remote authority where the platform has a usable
// source of its own.
package system

import (
	"context"
	crand "crypto/rand"
	"io"

	"github.com/pkg/errors"
	"github.com/tutils/trand/entropy"
)

var _ entropy.Fetcher = &fetcher{}

type fetcher struct {
	r    io.Reader
	size int
}

// Fetch implements entropy.Fetcher
func (f *fetcher) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := make([]byte, f.size)
	if _, err := io.ReadFull(f.r, b); err != nil {
		return nil, errors.Wrap(err, "read system entropy")
	}
	return b, nil
}

// NewFetcher creates a fetcher over crypto/rand. Only WithSize is honoured.
func NewFetcher(opts ...entropy.ClientOption) entropy.Fetcher {
	return NewReaderFetcher(crand.Reader, opts...)
}

// NewReaderFetcher creates a fetcher over an arbitrary reader.
func NewReaderFetcher(r io.Reader, opts ...entropy.ClientOption) entropy.Fetcher {
	opt := entropy.NewClientOptions("", opts...)
	return &fetcher{
		r:    r,
		size: opt.Size,
	}
}
