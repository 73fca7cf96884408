// Package websocket fetches entropy from an authority's stream endpoint.
package websocket

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/tutils/trand/entropy"
)

var _ entropy.Fetcher = &fetcher{}

type fetcher struct {
	opts entropy.ClientOptions
}

// Fetch implements entropy.Fetcher. Every call dials a fresh connection,
// sends one request and reads one reply.
func (f *fetcher) Fetch(ctx context.Context) ([]byte, error) {
	conn, _, err := f.opts.Dialer.DialContext(ctx, f.opts.Address, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dial authority")
	}
	defer conn.Close()

	deadline := time.Now().Add(f.opts.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	conn.SetWriteDeadline(deadline)
	conn.SetReadDeadline(deadline)

	// unblock the read below if ctx is cancelled first
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.SetReadDeadline(time.Now())
		case <-done:
		}
	}()

	if err := conn.WriteJSON(entropy.RawRandRequest{Size: f.opts.Size}); err != nil {
		return nil, errors.Wrap(err, "write request")
	}

	typ, p, err := conn.ReadMessage()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(err, "read reply")
	}
	if typ != websocket.BinaryMessage {
		return nil, errors.Errorf("authority rejected request: %s", p)
	}

	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))

	f.opts.Logger.Debug().Int("bytes", len(p)).Msg("stream raw_rand")
	return p, nil
}

// NewFetcher creates a websocket authority fetcher
func NewFetcher(opts ...entropy.ClientOption) entropy.Fetcher {
	opt := entropy.NewClientOptions(entropy.DefaultWebsocketAddress, opts...)

	return &fetcher{
		opts: *opt,
	}
}
