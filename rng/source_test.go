package rng

import (
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceDeterministic(t *testing.T) {
	s1 := NewSource(816559).(rand.Source64)
	s2 := NewSource(816559).(rand.Source64)
	for i := 0; i < 100; i++ {
		require.Equal(t, s1.Uint64(), s2.Uint64())
	}

	s1.Seed(1)
	s2.Seed(1)
	assert.Equal(t, s1.Int63(), s2.Int63())
}

func TestSourceUint64Halves(t *testing.T) {
	s := NewSource(7).(rand.Source64)
	g := NewSeeded[uint64](7)

	hi, lo := g.Next(), g.Next()
	assert.Equal(t, hi<<32|lo, s.Uint64())
}

func TestSourceInt63NonNegative(t *testing.T) {
	s := NewSource(-1)
	for i := 0; i < 1000; i++ {
		require.GreaterOrEqual(t, s.Int63(), int64(0))
	}
}

func TestSourceWithMathRand(t *testing.T) {
	r := rand.New(NewSource(544141))
	for i := 0; i < 100; i++ {
		n := r.Intn(10)
		require.True(t, n >= 0 && n < 10)
	}
}

func TestReader(t *testing.T) {
	whole := make([]byte, 20)
	n, err := NewReader(NewSource(33280939).(rand.Source64)).Read(whole)
	require.NoError(t, err)
	require.Equal(t, 20, n)

	r := NewReader(NewSource(33280939).(rand.Source64))
	parts := make([]byte, 20)
	_, err = io.ReadFull(r, parts[:3])
	require.NoError(t, err)
	_, err = io.ReadFull(r, parts[3:11])
	require.NoError(t, err)
	_, err = io.ReadFull(r, parts[11:])
	require.NoError(t, err)

	assert.Equal(t, whole, parts)
}
