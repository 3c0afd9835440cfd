package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup sources
const (
	SourceDemo = "demo"
	SourceLive = "live"
)

// Lookup outcomes
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeSkipped  = "skipped"
)

var (
	Registry = prometheus.NewRegistry()

	httpBuckets = prometheus.ExponentialBuckets(0.005, 2, 12)

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Tracks the number of HTTP requests.",
	}, []string{"method", "route", "code"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Tracks the latencies for HTTP requests.",
		Buckets: httpBuckets,
	}, []string{"method", "route"})

	Lookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "weather_lookups_total",
		Help: "Weather operations by data source and outcome.",
	}, []string{"operation", "source", "outcome"})

	UpstreamUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "weather_upstream_up",
		Help: "1 when the last upstream check succeeded, 0 otherwise.",
	})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests,
		HTTPDuration,
		Lookups,
		UpstreamUp,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

// ObserveLookup counts one weather operation.
func ObserveLookup(operation, source, outcome string) {
	Lookups.WithLabelValues(operation, source, outcome).Inc()
}
