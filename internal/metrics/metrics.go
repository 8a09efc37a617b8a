// Package metrics exposes Prometheus metrics for the catalog service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the catalog's Prometheus collectors.
type Metrics struct {
	// QueriesTotal counts product queries by outcome (ok, error, cache_hit).
	QueriesTotal *prometheus.CounterVec
	// QueryDuration measures end-to-end query engine latency.
	QueryDuration prometheus.Histogram
	// ResultsPerQuery measures the post-filter result set size.
	ResultsPerQuery prometheus.Histogram
}

// New registers and returns the catalog metrics. Must be called once per
// process; collectors register on the default registry.
func New() *Metrics {
	return &Metrics{
		QueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "Total product listing queries by outcome",
		}, []string{"status"}),
		QueryDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Product query engine latency",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
		ResultsPerQuery: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "catalog_results_per_query",
			Help:    "Filtered result set size per query, before pagination",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
