package rng

import (
	"errors"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// ErrZeroModulus is returned when a generator is built with m == 0
var ErrZeroModulus = errors.New("rng: modulus must not be zero")

// LCG is a linear congruential generator over an unsigned integer width.
//
// Every call to Next computes seed = (a*seed + c) % m. The multiply and add
// wrap modulo 2^bits(T) before the reduction by m.
//
// The zero value has m == 0 and must not be used. LCG is not safe for
// concurrent use. It is not suitable for anything security sensitive.
type LCG[T constraints.Unsigned] struct {
	seed T
	a    T // multiplier
	c    T // increment
	m    T // modulus
}

// NewCustom creates a generator with caller supplied parameters.
// a and c are not validated; m must be non-zero.
func NewCustom[T constraints.Unsigned](seed, a, c, m T) (*LCG[T], error) {
	if m == 0 {
		return nil, ErrZeroModulus
	}
	return &LCG[T]{seed: seed, a: a, c: c, m: m}, nil
}

// MustCustom is like NewCustom but panics on a zero modulus.
func MustCustom[T constraints.Unsigned](seed, a, c, m T) *LCG[T] {
	g, err := NewCustom(seed, a, c, m)
	if err != nil {
		panic(err)
	}
	return g
}

// New creates a generator seeded by DeriveSeed with the default parameters
// for the width of T.
func New[T constraints.Unsigned]() *LCG[T] {
	return NewSeeded[T](DeriveSeed())
}

// NewSeeded creates a generator with the default parameters for the width of
// T, starting from seed. A seed that does not fit in T becomes zero.
func NewSeeded[T constraints.Unsigned](seed uint) *LCG[T] {
	a, c, m := Defaults[T]()
	return &LCG[T]{
		seed: Narrow[T](uint64(seed)),
		a:    a,
		c:    c,
		m:    m,
	}
}

// Next advances the generator and returns the new state.
func (g *LCG[T]) Next() T {
	g.seed = (g.a*g.seed + g.c) % g.m
	return g.seed
}

// Range returns Next() % max.
//
// The result is biased towards small values whenever m is not a multiple of
// max. Range(0) returns Next() unreduced.
func (g *LCG[T]) Range(max T) T {
	n := g.Next()
	if max == 0 {
		return n
	}
	return n % max
}

// State returns the current seed without advancing.
func (g *LCG[T]) State() T {
	return g.seed
}

// Params returns the multiplier, increment and modulus.
func (g *LCG[T]) Params() (a, c, m T) {
	return g.a, g.c, g.m
}

// Bits reports the bit width of T.
func Bits[T constraints.Unsigned]() int {
	return bits.OnesCount64(uint64(^T(0)))
}

// Narrow converts v into T. Values that T cannot represent yield T's
// minimum, which is zero for every unsigned type.
func Narrow[T constraints.Unsigned](v uint64) T {
	if v > uint64(^T(0)) {
		return 0
	}
	return T(v)
}
