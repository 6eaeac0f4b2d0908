package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()
	once     sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of HTTP requests served by the gateway.",
		},
		[]string{"method", "route", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "Latency of HTTP requests served by the gateway.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	upstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_upstream_calls_total",
			Help: "Total number of calls made to the upstream broker.",
		},
		[]string{"method", "outcome"},
	)
	upstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_upstream_call_duration_seconds",
			Help:    "Latency of calls made to the upstream broker.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Init registers metrics with the registry once.
func Init() {
	once.Do(func() {
		registry.MustRegister(
			prometheus.NewGoCollector(),
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
			httpRequests,
			httpLatency,
			upstreamCalls,
			upstreamLatency,
		)
	})
}

// Handler exposes the Prometheus metrics endpoint handler.
func Handler() http.Handler {
	Init()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest records one served request. route is the matched route
// template, not the raw path, to keep label cardinality bounded.
func ObserveHTTPRequest(method, route, status string, d time.Duration) {
	Init()
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveUpstreamCall records one upstream broker call.
func ObserveUpstreamCall(method, outcome string, d time.Duration) {
	Init()
	upstreamCalls.WithLabelValues(method, outcome).Inc()
	upstreamLatency.WithLabelValues(method).Observe(d.Seconds())
}
