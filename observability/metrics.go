// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the library.
type Metrics struct {
	// Shaping metrics
	SeriesResolved      prometheus.Counter
	DuplicateGroups     prometheus.Counter
	PointsAdjusted      prometheus.Counter
	SeriesSquashed      prometheus.Counter
	BoundaryPointsAdded prometheus.Counter
	InvalidInputErrors  *prometheus.CounterVec

	// Report metrics
	SeriesProcessed  prometheus.Counter
	ReportsGenerated prometheus.Counter

	// Latency metrics
	ShapingDuration *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with all metrics registered.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "stepseries"
	}

	return &Metrics{
		// Shaping metrics
		SeriesResolved: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shaping",
			Name:      "series_resolved_total",
			Help:      "Total number of series passed through duplicate resolution",
		}),
		DuplicateGroups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shaping",
			Name:      "duplicate_groups_total",
			Help:      "Total number of duplicate timestamp groups resolved",
		}),
		PointsAdjusted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shaping",
			Name:      "points_adjusted_total",
			Help:      "Total number of timestamps nudged during duplicate resolution",
		}),
		SeriesSquashed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shaping",
			Name:      "series_squashed_total",
			Help:      "Total number of series squashed into a window",
		}),
		BoundaryPointsAdded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shaping",
			Name:      "boundary_points_added_total",
			Help:      "Total number of synthetic boundary points added by squashing",
		}),
		InvalidInputErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shaping",
			Name:      "invalid_input_errors_total",
			Help:      "Total number of rejected inputs by operation",
		}, []string{"operation"}),

		// Report metrics
		SeriesProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "series_processed_total",
			Help:      "Total number of series processed by report generators",
		}),
		ReportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "reports_generated_total",
			Help:      "Total number of reports generated",
		}),

		// Latency metrics
		ShapingDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "shaping",
			Name:      "duration_seconds",
			Help:      "Shaping operation duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"operation"}),
	}
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// DefaultMetrics is the default metrics instance.
var DefaultMetrics = NewMetrics("")

// RecordResolve records one duplicate-resolution pass.
func RecordResolve(groups, adjusted int) {
	DefaultMetrics.SeriesResolved.Inc()
	DefaultMetrics.DuplicateGroups.Add(float64(groups))
	DefaultMetrics.PointsAdjusted.Add(float64(adjusted))
}

// RecordSquash records one window-squash pass.
func RecordSquash(boundaryPoints int) {
	DefaultMetrics.SeriesSquashed.Inc()
	DefaultMetrics.BoundaryPointsAdded.Add(float64(boundaryPoints))
}

// RecordInvalidInput records a rejected input for the given operation.
func RecordInvalidInput(operation string) {
	DefaultMetrics.InvalidInputErrors.WithLabelValues(operation).Inc()
}

// RecordSeriesProcessed increments the processed series counter.
func RecordSeriesProcessed() {
	DefaultMetrics.SeriesProcessed.Inc()
}

// RecordReportGenerated increments the generated reports counter.
func RecordReportGenerated() {
	DefaultMetrics.ReportsGenerated.Inc()
}

// RecordShapingDuration records the duration of a shaping operation.
func RecordShapingDuration(operation string, seconds float64) {
	DefaultMetrics.ShapingDuration.WithLabelValues(operation).Observe(seconds)
}
