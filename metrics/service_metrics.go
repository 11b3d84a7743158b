package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "price_proxy_"

// Service constants
const (
	ServiceCoins    = "coins"
	ServiceUpstream = "coingecko"
)

var (
	// Global upstream request counter (all services)
	// Cardinality: ~4 (success, error, timeout, rate_limited)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to the CoinGecko API",
		},
		[]string{"status"},
	)

	// Service-specific upstream request counter
	ServiceUpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_upstream_requests_total",
			Help: "Total number of HTTP requests to the CoinGecko API per service",
		},
		[]string{"service", "status"},
	)

	// Upstream fetch duration per service
	FetchDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "fetch_duration_seconds",
			Help: "Time taken to fetch data from the CoinGecko API",
		},
		[]string{"service"},
	)

	// Inbound request counter per endpoint and response code
	// Cardinality: ~8 endpoints x ~5 codes
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "http_requests_total",
			Help: "Total number of handled HTTP requests by endpoint and status code",
		},
		[]string{"endpoint", "code"},
	)

	// Requests rejected by the per-IP limiter
	RateLimitedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "rate_limited_requests_total",
			Help: "Total number of inbound requests rejected by the rate limiter",
		},
	)

	// Service cache size
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)
)

// MetricsWriter provides a unified interface for recording service metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// RecordUpstreamRequest records an upstream API request with its status
func (mw *MetricsWriter) RecordUpstreamRequest(status string) {
	UpstreamRequestsTotal.WithLabelValues(status).Inc()
	ServiceUpstreamRequestsTotal.WithLabelValues(mw.serviceName, status).Inc()
}

// RecordFetchDuration records the duration of an upstream fetch
func (mw *MetricsWriter) RecordFetchDuration(duration time.Duration) {
	FetchDurationHistogram.WithLabelValues(mw.serviceName).Observe(duration.Seconds())
}

// RecordCacheSize records the number of items in the service cache
func (mw *MetricsWriter) RecordCacheSize(size int) {
	ServiceCacheSizeGauge.WithLabelValues(mw.serviceName).Set(float64(size))
}

// OnRequest implements the upstream client's status handler interface
func (mw *MetricsWriter) OnRequest(status string) {
	mw.RecordUpstreamRequest(status)
}
