package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	refreshCyclesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_refresh_cycles_total",
			Help: "Total number of catalog refresh cycles by outcome.",
		},
		[]string{"outcome"},
	)
	refreshCycleDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "catalog_refresh_cycle_duration_seconds",
			Help:    "Histogram of full refresh cycle durations.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
		},
	)
	replacedRows = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_replaced_rows",
			Help: "Rows written by the last table replacement.",
		},
		[]string{"table"},
	)
	junctionPairsSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_junction_pairs_skipped_total",
			Help: "Availability pairs rejected during junction rebuilds.",
		},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(refreshCyclesTotal)
	prometheus.MustRegister(refreshCycleDuration)
	prometheus.MustRegister(replacedRows)
	prometheus.MustRegister(junctionPairsSkipped)
}

// RecordRequest records metrics for one handled HTTP request.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordRefreshCycle records the outcome and duration of one refresh cycle.
func RecordRefreshCycle(succeeded bool, duration time.Duration) {
	outcome := "success"
	if !succeeded {
		outcome = "failure"
	}
	refreshCyclesTotal.WithLabelValues(outcome).Inc()
	refreshCycleDuration.Observe(duration.Seconds())
}

// RecordTableReplace records the row count of a completed table replacement.
func RecordTableReplace(table string, rows int) {
	replacedRows.WithLabelValues(table).Set(float64(rows))
}

// RecordJunctionSkips adds to the running count of rejected availability pairs.
func RecordJunctionSkips(count int) {
	junctionPairsSkipped.Add(float64(count))
}

func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler returns the HTTP handler exposing Prometheus metrics.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
