package rng

import "golang.org/x/exp/constraints"

type params struct {
	a, c, m uint64
}

// Classic constants are only well studied for a few widths; every other
// width borrows the 32-bit multiplier and increment.
var (
	defaultParams = map[int]params{
		8:  {a: 13, c: 7, m: 31},
		16: {a: 25173, c: 13849, m: 1<<16 - 1},
		32: {a: 1664525, c: 1013904223, m: 1<<32 - 1},
	}

	// m = 2^32, not 2^32 - 1 like the rows above. Kept as is.
	fallbackParams = params{a: 1664525, c: 1013904223, m: 1 << 32}
)

// Defaults returns the multiplier, increment and modulus used by New for T.
func Defaults[T constraints.Unsigned]() (a, c, m T) {
	p, ok := defaultParams[Bits[T]()]
	if !ok {
		p = fallbackParams
	}
	return T(p.a), T(p.c), T(p.m)
}
