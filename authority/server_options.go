package authority

import (
	crand "crypto/rand"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// ServerOptions is server options
type ServerOptions struct {
	addr     string
	source   io.Reader
	maxSize  int
	limit    rate.Limit
	burst    int
	logger   zerolog.Logger
	registry *prometheus.Registry
}

// ServerOption is option setter for server
type ServerOption func(*ServerOptions)

// default server options
var (
	DefaultListenAddress = "0.0.0.0:8080"
	DefaultSize          = 32
	DefaultMaxSize       = 1024
	DefaultRateLimit     = rate.Limit(50)
	DefaultBurst         = 100
)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{
		logger: zerolog.Nop(),
	}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.source == nil {
		opt.source = crand.Reader
	}
	if opt.maxSize <= 0 {
		opt.maxSize = DefaultMaxSize
	}
	if opt.limit <= 0 {
		opt.limit = DefaultRateLimit
	}
	if opt.burst <= 0 {
		opt.burst = DefaultBurst
	}
	if opt.registry == nil {
		opt.registry = prometheus.NewRegistry()
	}

	return opt
}

// WithListenAddress sets server listen address opt
func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

// WithSource sets where served bytes are read from
func WithSource(r io.Reader) ServerOption {
	return func(opts *ServerOptions) {
		opts.source = r
	}
}

// WithMaxSize caps the bytes handed out per request
func WithMaxSize(n int) ServerOption {
	return func(opts *ServerOptions) {
		opts.maxSize = n
	}
}

// WithRateLimit sets requests per second and burst. rate.Inf disables limiting.
func WithRateLimit(limit rate.Limit, burst int) ServerOption {
	return func(opts *ServerOptions) {
		opts.limit = limit
		opts.burst = burst
	}
}

// WithLogger sets the logger
func WithLogger(l zerolog.Logger) ServerOption {
	return func(opts *ServerOptions) {
		opts.logger = l
	}
}

// WithRegistry sets the registry metrics are registered with and served from
func WithRegistry(r *prometheus.Registry) ServerOption {
	return func(opts *ServerOptions) {
		opts.registry = r
	}
}
