package providers

import (
	"time"

	"github.com/pbaille/blueprint/internal/structures"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncSubmissions(sign string)
	IncSubmissionFailures(stage string)
	IncCacheHits()
	IncCacheMisses()
}

type MetricsProvider struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
	submissionsTotal   *prometheus.CounterVec
	submissionFailures *prometheus.CounterVec
	cacheHits          prometheus.Counter
	cacheMisses        prometheus.Counter
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncSubmissions(sign string) {
	m.submissionsTotal.WithLabelValues(sign).Inc()
}

func (m *MetricsProvider) IncSubmissionFailures(stage string) {
	m.submissionFailures.WithLabelValues(stage).Inc()
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config, reg prometheus.Registerer) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	factory := promauto.With(reg)

	return &MetricsProvider{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blueprint_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "blueprint_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		submissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blueprint_submissions_total",
			Help: "Birth charts stored, by zodiac sign",
		}, []string{"sign"}),

		submissionFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "blueprint_submission_failures_total",
			Help: "Rejected or failed submissions, by stage",
		}, []string{"stage"}),

		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "blueprint_cache_hits_total",
			Help: "Total number of cache hits",
		}),

		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "blueprint_cache_misses_total",
			Help: "Total number of cache misses",
		}),
	}
}

// noopMetrics is used when metrics are disabled.
type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncSubmissions(_ string)                          {}
func (n *noopMetrics) IncSubmissionFailures(_ string)                   {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}

// NewNoopMetrics returns a provider that records nothing
func NewNoopMetrics() MetricsProviderInterface {
	return &noopMetrics{}
}
