// Package authority is a reference entropy authority.
//
// It hands out random bytes over HTTP and WebSocket to clients in the
// entropy package. Requests are rate limited because the source is assumed
// to be scarce.
package authority

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tutils/trand"
	"github.com/tutils/trand/counter"
	"github.com/tutils/trand/counter/period"
	"github.com/tutils/trand/entropy"
	"golang.org/x/time/rate"
)

var (
	// ErrSizeOutOfRange is returned for requests outside [1, max size]
	ErrSizeOutOfRange = errors.New("authority: size out of range")
	// ErrRateLimited is returned when the limiter rejects a request
	ErrRateLimited = errors.New("authority: rate limited")
)

// APIResponse 定义统一的API响应格式
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Stats is returned by StatsPath
type Stats struct {
	BytesServed int64 `json:"bytesServed"`
	BytesPerSec int64 `json:"bytesPerSec"`
}

// Server serves entropy
type Server struct {
	opts    ServerOptions
	source  io.Reader
	limiter *rate.Limiter
	served  counter.Counter
	metrics *metrics
	mux     *http.ServeMux
	srv     *http.Server
}

// NewServer creates an authority
func NewServer(opts ...ServerOption) *Server {
	opt := newServerOptions(opts...)

	s := &Server{
		opts:    *opt,
		source:  trand.NewSyncReader(opt.source),
		limiter: rate.NewLimiter(opt.limit, opt.burst),
		served:  period.NewPeriodCounter(time.Second),
		metrics: newMetrics(opt.registry),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc(entropy.RawRandPath, s.handleRawRand)
	s.mux.HandleFunc(entropy.StatsPath, s.handleStats)
	s.mux.HandleFunc(entropy.StreamPath, s.handleStream)
	s.mux.Handle("/metrics", promhttp.HandlerFor(opt.registry, promhttp.HandlerOpts{}))

	s.srv = &http.Server{
		Addr:              opt.addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the http handler of all endpoints
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe serves until Shutdown
func (s *Server) ListenAndServe() error {
	s.opts.logger.Info().Str("listen", s.opts.addr).Int("maxSize", s.opts.maxSize).
		Float64("rate", float64(s.opts.limit)).Int("burst", s.opts.burst).Msg("entropy authority started")
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// take reads size bytes from the source, subject to the limiter.
// size 0 means DefaultSize.
func (s *Server) take(size int) ([]byte, error) {
	if size == 0 {
		size = DefaultSize
	}
	if size < 0 || size > s.opts.maxSize {
		return nil, errors.Wrapf(ErrSizeOutOfRange, "size %d not in [1, %d]", size, s.opts.maxSize)
	}
	if !s.limiter.Allow() {
		return nil, ErrRateLimited
	}

	b := make([]byte, size)
	if _, err := io.ReadFull(s.source, b); err != nil {
		return nil, errors.Wrap(err, "read entropy source")
	}
	s.served.Add(int64(size))
	s.metrics.BytesTotal.Add(float64(size))
	return b, nil
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrSizeOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// handleRawRand 处理随机字节请求
func (s *Server) handleRawRand(w http.ResponseWriter, r *http.Request) {
	clientIP := r.RemoteAddr
	log := s.opts.logger.With().Str("client", clientIP).Logger()

	if r.Method != http.MethodGet {
		log.Warn().Str("method", r.Method).Msg("method not allowed")
		s.writeJSON(w, "http", http.StatusMethodNotAllowed, APIResponse{Error: "only GET is supported"})
		return
	}

	var size int
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			s.writeJSON(w, "http", http.StatusBadRequest, APIResponse{Error: "invalid size: " + v})
			return
		}
		if n == 0 {
			// only an absent size means the default
			err := errors.Wrapf(ErrSizeOutOfRange, "size %d not in [1, %d]", n, s.opts.maxSize)
			s.writeJSON(w, "http", http.StatusBadRequest, APIResponse{Error: err.Error()})
			return
		}
		size = n
	}

	b, err := s.take(size)
	if err != nil {
		log.Warn().Err(err).Msg("raw_rand rejected")
		s.writeJSON(w, "http", statusOf(err), APIResponse{Error: err.Error()})
		return
	}

	id := uuid.New().String()
	log.Debug().Str("id", id).Int("bytes", len(b)).Msg("raw_rand")
	s.writeJSON(w, "http", http.StatusOK, APIResponse{
		Success: true,
		Data:    entropy.RawRand{ID: id, Bytes: b},
	})
}

// handleStats 返回已发放的字节统计
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeJSON(w, "stats", http.StatusMethodNotAllowed, APIResponse{Error: "only GET is supported"})
		return
	}
	s.writeJSON(w, "stats", http.StatusOK, APIResponse{
		Success: true,
		Data: Stats{
			BytesServed: s.served.Value(),
			BytesPerSec: s.served.RatePerSec(),
		},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, transport string, code int, resp APIResponse) {
	s.metrics.observe(transport, code)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.opts.logger.Error().Err(err).Msg("encode response")
	}
}
