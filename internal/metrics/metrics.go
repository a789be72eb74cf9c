// Package metrics provides Prometheus instrumentation for the relay.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RelayRequests.
const (
	OutcomeSuccess          = "success"
	OutcomePreflight        = "preflight"
	OutcomeMethodNotAllowed = "method_not_allowed"
	OutcomeBadRequest       = "bad_request"
	OutcomeConfigError      = "config_error"
	OutcomeUpstreamError    = "upstream_error"
	OutcomeNoText           = "no_text"
	OutcomeError            = "error"
)

var (
	// RelayRequests counts relay invocations by how they ended.
	RelayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_requests_total",
			Help: "Total number of relay requests by outcome.",
		},
		[]string{"outcome"},
	)

	// UpstreamDuration tracks Cohere round-trip latency in seconds.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Cohere chat request latency in seconds.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"status"}, // upstream status code, or "error" when no response arrived
	)
)
