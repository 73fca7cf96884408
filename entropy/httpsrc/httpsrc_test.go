package httpsrc

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutils/trand/authority"
	"github.com/tutils/trand/entropy"
	"golang.org/x/time/rate"
)

func TestFetch(t *testing.T) {
	src := bytes.Repeat([]byte{0x01, 0x02}, 64)
	s := authority.NewServer(authority.WithSource(bytes.NewReader(src)), authority.WithRateLimit(rate.Inf, 1))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	f := NewFetcher(entropy.WithAddress(ts.URL), entropy.WithSize(2))
	b, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, b)

	seed, err := entropy.Generate(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, uint(0x0102), seed)
}

func TestFetchRejected(t *testing.T) {
	s := authority.NewServer(authority.WithMaxSize(8))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	f := NewFetcher(entropy.WithAddress(ts.URL+"/"), entropy.WithSize(9))
	_, err := f.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "size out of range")
}

func TestFetchNotJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := NewFetcher(entropy.WithAddress(ts.URL)).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := NewFetcher(entropy.WithAddress(ts.URL)).Fetch(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
