package rng

import "math/rand"

// 验证接口实现
var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts an LCG[uint64] with the default parameters to math/rand.
type Source struct {
	g *LCG[uint64]
}

// NewSource returns a rand.Source seeded with seed.
func NewSource(seed int64) rand.Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed implements rand.Source. The parameters are reset to the defaults.
func (s *Source) Seed(seed int64) {
	a, c, m := Defaults[uint64]()
	s.g = &LCG[uint64]{seed: uint64(seed), a: a, c: c, m: m}
}

// Uint64 implements rand.Source64. The default modulus keeps each state
// below 2^32, so two draws fill the high and low halves.
func (s *Source) Uint64() uint64 {
	hi := s.g.Next()
	lo := s.g.Next()
	return hi<<32 | lo&0xffffffff
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}
