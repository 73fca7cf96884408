package system

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/trand/entropy"
)

func TestFetch(t *testing.T) {
	b, err := NewFetcher(entropy.WithSize(16)).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, b, 16)

	b, err = NewFetcher().Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, b, entropy.DefaultSize)
}

func TestFetchShortReader(t *testing.T) {
	f := NewReaderFetcher(bytes.NewReader([]byte{1, 2, 3}), entropy.WithSize(4))
	_, err := f.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFetcher().Fetch(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
