// Package metrics provides Prometheus metrics for the standings service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the standings service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Load metrics - health of the CSV ingestion path
	recordsLoaded  *prometheus.CounterVec
	parseErrors    *prometheus.CounterVec
	capacityDrops  *prometheus.CounterVec
	teamsTracked   prometheus.Gauge
	matchesTracked prometheus.Gauge

	// Aggregation metrics
	danglingReferences  prometheus.Counter
	aggregationDuration prometheus.Histogram

	// Query and export metrics
	queries      *prometheus.CounterVec
	exports      prometheus.Counter
	exportErrors prometheus.Counter

	// HTTP metrics for serve mode
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

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "placar",
		subsystem:        "standings",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.recordsLoaded = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_loaded_total",
		Help:      "Total number of records loaded, by source",
	}, []string{"source"})

	m.parseErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "parse_errors_total",
		Help:      "Total number of malformed records skipped, by source",
	}, []string{"source"})

	m.capacityDrops = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "capacity_drops_total",
		Help:      "Total number of loads truncated by a full registry, by source",
	}, []string{"source"})

	m.teamsTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "teams_tracked",
		Help:      "Number of teams currently registered",
	})

	m.matchesTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "matches_tracked",
		Help:      "Number of matches currently registered",
	})

	m.danglingReferences = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dangling_references_total",
		Help:      "Total number of matches skipped for referencing an unknown team",
	})

	m.aggregationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregation_duration_milliseconds",
		Help:      "Histogram of full aggregation pass duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.queries = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "match_queries_total",
		Help:      "Total number of match listings served, by filter mode",
	}, []string{"mode"})

	m.exports = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "standings_exports_total",
		Help:      "Total number of flat standings reports written",
	})

	m.exportErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "standings_export_errors_total",
		Help:      "Total number of failed standings report writes",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// Package-level helpers delegating to the global manager.

// RecordRecordsLoaded adds n to the loaded-record counter for a source.
func RecordRecordsLoaded(source string, n int) {
	globalManager.recordsLoaded.WithLabelValues(source).Add(float64(n))
}

// RecordTeamsLoaded records a completed team load of n records.
func RecordTeamsLoaded(n int) {
	RecordRecordsLoaded("teams", n)
	globalManager.teamsTracked.Set(float64(n))
}

// RecordMatchesLoaded records a completed match load of n records.
func RecordMatchesLoaded(n int) {
	RecordRecordsLoaded("matches", n)
	globalManager.matchesTracked.Set(float64(n))
}

// RecordParseError counts one skipped malformed record.
func RecordParseError(source string) {
	globalManager.parseErrors.WithLabelValues(source).Inc()
}

// RecordCapacityDrop counts one load truncated by a full registry.
func RecordCapacityDrop(source string) {
	globalManager.capacityDrops.WithLabelValues(source).Inc()
}

// RecordDanglingReference counts one match skipped during aggregation.
func RecordDanglingReference() {
	globalManager.danglingReferences.Inc()
}

// ObserveAggregationDuration records one full aggregation pass.
func ObserveAggregationDuration(ms float64) {
	globalManager.aggregationDuration.Observe(ms)
}

// RecordQuery counts one served match listing.
func RecordQuery(mode string) {
	globalManager.queries.WithLabelValues(mode).Inc()
}

// RecordExport counts one written standings report.
func RecordExport() {
	globalManager.exports.Inc()
}

// RecordExportError counts one failed standings report write.
func RecordExportError() {
	globalManager.exportErrors.Inc()
}

// RecordHTTPRequest counts one request by endpoint, method, and status.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one request's latency.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the registry backing the global manager, for the
// /metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
