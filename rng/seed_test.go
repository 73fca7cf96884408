package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeedVaries(t *testing.T) {
	seen := make(map[uint]struct{})
	for i := 0; i < 1000; i++ {
		seen[DeriveSeed()] = struct{}{}
	}
	// the call counter alone makes every input distinct
	assert.Len(t, seen, 1000)
}

func TestDeriveSeedHeapAddress(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() { DeriveSeed() })
	assert.GreaterOrEqual(t, allocs, float64(1))
}

func TestNewDiffers(t *testing.T) {
	g1 := New[uint64]()
	g2 := New[uint64]()
	assert.NotEqual(t, g1.State(), g2.State())
}

func TestMix64(t *testing.T) {
	assert.Equal(t, uint64(0), mix64(0))
	assert.NotEqual(t, mix64(1), mix64(2))
	// a single flipped input bit flips many output bits
	diff := mix64(1<<10) ^ mix64(1<<10|1)
	var n int
	for ; diff != 0; diff &= diff - 1 {
		n++
	}
	assert.Greater(t, n, 16)
}
