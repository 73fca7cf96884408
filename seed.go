package trand

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/tutils/trand/entropy"
	"github.com/tutils/trand/entropy/system"
	"github.com/tutils/trand/rng"
	"golang.org/x/exp/constraints"
)

// Origin tells where a seed came from
type Origin int

const (
	// OriginAuthority means the seed was fetched from an entropy authority
	OriginAuthority Origin = iota
	// OriginDerived means the seed came from rng.DeriveSeed
	OriginDerived
)

func (o Origin) String() string {
	switch o {
	case OriginAuthority:
		return "authority"
	case OriginDerived:
		return "derived"
	}
	return "unknown"
}

// Used by Generate
var (
	DefaultFetcher entropy.Fetcher = system.NewFetcher()
	DefaultTimeout                 = 10 * time.Second
)

var logger = zerolog.Nop()

// SetLogger sets the logger used to report seed fallbacks
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Generate fetches one seed from DefaultFetcher.
//
// It blocks the calling goroutine until the fetch resolves, fails or
// DefaultTimeout passes. Code that already has a context should call
// entropy.Generate or entropy.GenerateAsync instead.
func Generate() (uint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	// a late answer from a fetcher that ignores ctx is dropped
	select {
	case res := <-entropy.GenerateAsync(ctx, DefaultFetcher):
		return res.Seed, res.Err
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// Seed returns a seed from f, or from rng.DeriveSeed when f is nil or fails.
// It always succeeds.
func Seed(ctx context.Context, f entropy.Fetcher) (uint, Origin) {
	if f == nil {
		return rng.DeriveSeed(), OriginDerived
	}
	seed, err := entropy.Generate(ctx, f)
	if err != nil {
		logger.Warn().Err(err).Msg("entropy authority unavailable, deriving seed locally")
		return rng.DeriveSeed(), OriginDerived
	}
	return seed, OriginAuthority
}

// NewGenerator creates an LCG with the default parameters for T, seeded via
// Seed.
func NewGenerator[T constraints.Unsigned](ctx context.Context, f entropy.Fetcher) *rng.LCG[T] {
	seed, _ := Seed(ctx, f)
	return rng.NewSeeded[T](seed)
}
