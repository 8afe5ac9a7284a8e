package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchdeck",
			Name:      "searches_total",
			Help:      "Total number of executed searches",
		},
		[]string{"arm"}, // "fulltext" / "fallback_only"
	)

	SearchResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "searchdeck",
			Name:      "search_results",
			Help:      "Pre-pagination result counts per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"arm"},
	)

	RecordsIngestedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "searchdeck",
			Name:      "records_ingested_total",
			Help:      "Records accepted for indexing",
		},
		[]string{"source_app", "outcome"}, // outcome: "inserted" / "updated"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(RecordsIngestedTotal)
	searchMetricsRegistered = true
}
