package entropy

import (
	"context"
	"errors"
	"math/bits"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordPadding(t *testing.T) {
	tests := []struct {
		in  []byte
		u32 uint32
		u64 uint64
	}{
		{[]byte{0x01, 0x02}, 0x00000102, 0x0000000000000102},
		{[]byte{0xff}, 0xff, 0xff},
		{nil, 0, 0},
		{[]byte{0x01, 0x02, 0x03, 0x04}, 0x01020304, 0x01020304},
		{[]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}, 0x01020304, 0x0102030405060708},
	}
	for _, test := range tests {
		assert.Equal(t, test.u32, Uint32(test.in), "% x", test.in)
		assert.Equal(t, test.u64, Uint64(test.in), "% x", test.in)
		if bits.UintSize == 32 {
			assert.Equal(t, uint(test.u32), Word(test.in))
		} else {
			assert.Equal(t, uint(test.u64), Word(test.in))
		}
	}
}

func TestGenerate(t *testing.T) {
	f := FetcherFunc(func(ctx context.Context) ([]byte, error) {
		return []byte{0x01, 0x02}, nil
	})
	seed, err := Generate(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, uint(0x0102), seed)
}

func TestGenerateErrors(t *testing.T) {
	boom := errors.New("authority unreachable")
	failing := FetcherFunc(func(ctx context.Context) ([]byte, error) {
		return nil, boom
	})
	_, err := Generate(context.Background(), failing)
	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "authority unreachable")

	empty := FetcherFunc(func(ctx context.Context) ([]byte, error) {
		return []byte{}, nil
	})
	_, err = Generate(context.Background(), empty)
	assert.ErrorIs(t, err, ErrNoEntropy)
}

func TestGenerateNoRetry(t *testing.T) {
	var calls int
	f := FetcherFunc(func(ctx context.Context) ([]byte, error) {
		calls++
		return nil, errors.New("nope")
	})
	_, err := Generate(context.Background(), f)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGenerateAsync(t *testing.T) {
	release := make(chan struct{})
	f := FetcherFunc(func(ctx context.Context) ([]byte, error) {
		<-release
		return []byte{0xde, 0xad, 0xbe, 0xef}, nil
	})

	ch := GenerateAsync(context.Background(), f)
	select {
	case <-ch:
		t.Fatal("result delivered before the fetch completed")
	default:
	}
	close(release)

	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, uint(0xdeadbeef), res.Seed)

	_, ok = <-ch
	assert.False(t, ok)
}

func TestGenerateAsyncCancel(t *testing.T) {
	f := FetcherFunc(func(ctx context.Context) ([]byte, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	res := <-GenerateAsync(ctx, f)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}
