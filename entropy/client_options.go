package entropy

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// ClientOptions configures the authority fetchers
type ClientOptions struct {
	Address    string
	Size       int
	Timeout    time.Duration
	HTTPClient *http.Client
	Dialer     *websocket.Dialer
	Logger     zerolog.Logger
}

// ClientOption is option setter for fetchers
type ClientOption func(*ClientOptions)

// default client options
var (
	DefaultHTTPAddress      = "http://127.0.0.1:8080"
	DefaultWebsocketAddress = "ws://127.0.0.1:8080/stream"
	// 32 bytes per request, the same as the authority's default
	DefaultSize    = 32
	DefaultTimeout = 10 * time.Second
)

// NewClientOptions applies opts over the defaults. defaultAddr is used when
// no address is given.
func NewClientOptions(defaultAddr string, opts ...ClientOption) *ClientOptions {
	opt := &ClientOptions{
		Logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(opt)
	}

	if opt.Address == "" {
		opt.Address = defaultAddr
	}
	if opt.Size <= 0 {
		opt.Size = DefaultSize
	}
	if opt.Timeout <= 0 {
		opt.Timeout = DefaultTimeout
	}
	if opt.HTTPClient == nil {
		opt.HTTPClient = &http.Client{Timeout: opt.Timeout}
	}
	if opt.Dialer == nil {
		d := *websocket.DefaultDialer
		d.HandshakeTimeout = opt.Timeout
		opt.Dialer = &d
	}

	return opt
}

// WithAddress sets the authority address
func WithAddress(addr string) ClientOption {
	return func(opts *ClientOptions) {
		opts.Address = addr
	}
}

// WithSize sets how many bytes to request
func WithSize(n int) ClientOption {
	return func(opts *ClientOptions) {
		opts.Size = n
	}
}

// WithTimeout bounds a single exchange
func WithTimeout(d time.Duration) ClientOption {
	return func(opts *ClientOptions) {
		opts.Timeout = d
	}
}

// WithHTTPClient replaces the http client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(opts *ClientOptions) {
		opts.HTTPClient = c
	}
}

// WithDialer replaces the websocket dialer
func WithDialer(d *websocket.Dialer) ClientOption {
	return func(opts *ClientOptions) {
		opts.Dialer = d
	}
}

// WithLogger sets the logger
func WithLogger(l zerolog.Logger) ClientOption {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}
