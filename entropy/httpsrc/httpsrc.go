// Package httpsrc fetches entropy from an authority over plain HTTP.
package httpsrc

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tutils/trand/entropy"
)

var _ entropy.Fetcher = &fetcher{}

type fetcher struct {
	opts entropy.ClientOptions
}

// Fetch implements entropy.Fetcher
func (f *fetcher) Fetch(ctx context.Context) ([]byte, error) {
	u, err := url.Parse(strings.TrimSuffix(f.opts.Address, "/") + entropy.RawRandPath)
	if err != nil {
		return nil, errors.Wrap(err, "parse authority address")
	}
	q := u.Query()
	q.Set("size", strconv.Itoa(f.opts.Size))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	resp, err := f.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request authority")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	var rr entropy.RawRandResponse
	if err := json.Unmarshal(body, &rr); err != nil {
		return nil, errors.Wrapf(err, "decode response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK || !rr.Success {
		return nil, errors.Errorf("authority rejected request: status %d: %s", resp.StatusCode, rr.Error)
	}
	if rr.Data == nil {
		return nil, nil
	}

	f.opts.Logger.Debug().Str("id", rr.Data.ID).Int("bytes", len(rr.Data.Bytes)).Msg("raw_rand")
	return rr.Data.Bytes, nil
}

// NewFetcher creates an HTTP authority fetcher
func NewFetcher(opts ...entropy.ClientOption) entropy.Fetcher {
	opt := entropy.NewClientOptions(entropy.DefaultHTTPAddress, opts...)

	return &fetcher{
		opts: *opt,
	}
}
