// Package metrics provides Prometheus metrics for the cribguess game.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager manages all Prometheus metrics for the game.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	customLabels   map[string]string
	registry       prometheus.Registerer

	// Guess Metrics - How players are doing
	guesses              *prometheus.CounterVec
	guessesNotUnderstood prometheus.Counter
	meldMismatches       *prometheus.CounterVec
	guessLatency         prometheus.Histogram

	// Turn Metrics
	handsDealt prometheus.Counter
	handScore  prometheus.Histogram
	streak     prometheus.Gauge
	bestStreak prometheus.Gauge

	// HTTP Metrics - stats endpoint
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// handScoreBuckets cover every possible show-hand score (0..29).
var handScoreBuckets = []float64{0, 2, 4, 6, 8, 10, 12, 14, 16, 20, 24, 29}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "cribguess",
		subsystem:      "game",
		latencyBuckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
		customLabels:   make(map[string]string),
		registry:       prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)
	labels := prometheus.Labels(m.customLabels)

	m.guesses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "guesses_total",
		Help:        "Total number of resolved guesses by kind and outcome",
		ConstLabels: labels,
	}, []string{"kind", "outcome"})

	m.guessesNotUnderstood = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "guesses_not_understood_total",
		Help:        "Total number of guesses that could not be parsed",
		ConstLabels: labels,
	})

	m.meldMismatches = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "meld_mismatches_total",
		Help:        "Melds overcounted or missed in notation guesses, by meld type",
		ConstLabels: labels,
	}, []string{"type", "direction"})

	m.guessLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "guess_evaluation_seconds",
		Help:        "Time spent evaluating a guess",
		Buckets:     m.latencyBuckets,
		ConstLabels: labels,
	})

	m.handsDealt = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "hands_dealt_total",
		Help:        "Total number of hands dealt",
		ConstLabels: labels,
	})

	m.handScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "hand_score",
		Help:        "Distribution of dealt hand scores",
		Buckets:     handScoreBuckets,
		ConstLabels: labels,
	})

	m.streak = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "streak",
		Help:        "Current run of consecutive correct guesses",
		ConstLabels: labels,
	})

	m.bestStreak = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "best_streak",
		Help:        "Longest run of consecutive correct guesses this session",
		ConstLabels: labels,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by endpoint and method",
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "http_request_duration_seconds",
		Help:        "HTTP request duration in seconds",
		Buckets:     prometheus.DefBuckets,
		ConstLabels: labels,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordGuess counts a resolved guess.
func (m *Manager) RecordGuess(kind, outcome string) {
	m.guesses.WithLabelValues(kind, outcome).Inc()
}

// RecordGuessNotUnderstood counts an unparseable guess.
func (m *Manager) RecordGuessNotUnderstood() {
	m.guessesNotUnderstood.Inc()
}

// RecordMeldMismatch counts a mismatched meld type. A positive delta is an
// overcount, a negative one a miss.
func (m *Manager) RecordMeldMismatch(meldType string, delta int) {
	direction, n := "overcounted", delta
	if delta < 0 {
		direction, n = "missed", -delta
	}
	m.meldMismatches.WithLabelValues(meldType, direction).Add(float64(n))
}

// RecordGuessLatency records guess evaluation time in seconds.
func (m *Manager) RecordGuessLatency(seconds float64) {
	m.guessLatency.Observe(seconds)
}

// RecordHandDealt counts a dealt hand and its score.
func (m *Manager) RecordHandDealt(score int) {
	m.handsDealt.Inc()
	m.handScore.Observe(float64(score))
}

// UpdateStreak sets the current and best streak gauges.
func (m *Manager) UpdateStreak(streak, best int) {
	m.streak.Set(float64(streak))
	m.bestStreak.Set(float64(best))
}

// RecordHTTPRequest records an HTTP request and its duration in seconds.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, seconds float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(seconds)
}

// Default returns the global metrics manager.
func Default() *Manager {
	return globalManager
}

// RecordHTTPRequest records an HTTP request on the global manager.
func RecordHTTPRequest(endpoint, method, statusCode string, seconds float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, seconds)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Handler serves the global registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}
