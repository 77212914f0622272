package metrics

import (
	"github.com/prometheus/client_golang/prometheus" // Prometheus collectors
)

// HTTP holds the request metrics exported on /metrics
type HTTP struct {
	// Counter for rate of requests by route and status
	Requests *prometheus.CounterVec
	// Histogram for response time by route
	Duration *prometheus.HistogramVec
}

// New creates the HTTP metrics and registers them on reg
func New(reg prometheus.Registerer) *HTTP {
	m := &HTTP{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notes_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "notes_http_request_duration_seconds",
				Help:    "HTTP response time in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
	reg.MustRegister(m.Requests, m.Duration)
	return m
}
