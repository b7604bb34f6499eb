package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "board_proxy_"

// Service constants
const (
	ServiceLeaderboard = "leaderboard"
	ServiceWallet      = "wallet"
	ServiceAuth        = "auth"
)

var (
	// Global trading API request counter (all services)
	// Cardinality: ~4 (success, error, rate_limited, timeout)
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "upstream_requests_total",
			Help: "Total number of HTTP requests to the trading API across all services",
		},
		[]string{"status"},
	)

	// Service-specific trading API request counter
	// Cardinality: ~12 (3 services x 4 statuses)
	ServiceUpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_upstream_requests_total",
			Help: "Total number of HTTP requests to the trading API per service",
		},
		[]string{"service", "status"},
	)

	// Retry attempts counter
	// Cardinality: ~3 (number of services)
	ServiceRetryCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "service_retry_attempts_total",
			Help: "Total number of retry attempts per service",
		},
		[]string{"service"},
	)

	// Data fetch cycle duration per service
	// Cardinality: ~3 (number of services)
	DataFetchCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "data_fetch_cycle_duration_seconds",
			Help: "Time taken to complete a full data fetch cycle",
		},
		[]string{"service"},
	)

	// Service cache size
	// Cardinality: ~3 (number of services)
	ServiceCacheSizeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "service_cache_size",
			Help: "Number of items in service cache",
		},
		[]string{"service"},
	)

	// Connected websocket update subscribers
	// Cardinality: 1
	UpdateSubscribersGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "update_subscribers",
			Help: "Number of connected leaderboard update websocket clients",
		},
	)

	// Served HTTP request latency per endpoint
	// Cardinality: ~8 (number of proxy endpoints)
	RequestLatencyHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "request_latency_seconds",
			Help: "HTTP request latency by endpoint",
		},
		[]string{"endpoint"},
	)
)

// RecordHTTPRequest records an upstream HTTP request with its status
func RecordHTTPRequest(service, status string) {
	UpstreamRequestsTotal.WithLabelValues(status).Inc()
	ServiceUpstreamRequestsTotal.WithLabelValues(service, status).Inc()
}

// RecordHTTPRetry records an upstream HTTP retry attempt
func RecordHTTPRetry(service string) {
	ServiceRetryCounter.WithLabelValues(service).Inc()
}

// RecordFetchCycle measures and records the duration of a data fetch cycle
func RecordFetchCycle(service string, start time.Time) {
	duration := time.Since(start)
	DataFetchCycleDuration.WithLabelValues(service).Observe(duration.Seconds())
	log.Printf("Metrics: %s fetch cycle took %.2fs", service, duration.Seconds())
}

// RecordCacheSize records the number of items in a service cache
func RecordCacheSize(service string, size int) {
	ServiceCacheSizeGauge.WithLabelValues(service).Set(float64(size))
}

// RecordRequestLatency records the latency of a served HTTP request
func RecordRequestLatency(endpoint string, start time.Time) {
	RequestLatencyHistogram.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

// UpdateSubscriberConnected increments the websocket subscriber gauge
func UpdateSubscriberConnected() {
	UpdateSubscribersGauge.Inc()
}

// UpdateSubscriberDisconnected decrements the websocket subscriber gauge
func UpdateSubscriberDisconnected() {
	UpdateSubscribersGauge.Dec()
}
