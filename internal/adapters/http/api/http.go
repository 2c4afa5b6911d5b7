// Package api exposes read-only game stats and metrics over HTTP.
package api

import (
	"context"
	"net/http"

	"github.com/okian/cribguess/pkg/logger"
	"github.com/okian/cribguess/pkg/metrics"
)

// Server wires HTTP routes for the stats API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	metrics       http.Handler
	logger        logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the logger used by the handlers.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{metrics: metrics.Handler()}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.logger = s.logger.Named("api")

	s.healthHandler = NewHealthHandler(s.logger)
	s.statsHandler = NewStatsHandler(statsProvider, s.logger)
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.Handle("/metrics", s.metrics)
}
