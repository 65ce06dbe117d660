package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecordsIngestedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "density_records_ingested_total",
		Help: "Total raw records read from record sources",
	})
	RecordsMatchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "density_records_matched_total",
		Help: "Total records whose surname matched the catalogue",
	})
	RecordsUnmatchedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "density_records_unmatched_total",
		Help: "Total records dropped for not matching the surname catalogue",
	})
	RecordsResolvedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "density_records_resolved_total",
		Help: "Total records successfully geocoded",
	})
	RecordsUnresolvedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "density_records_unresolved_total",
		Help: "Total records skipped because resolution failed",
	})
	CellsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "density_cells_created_total",
		Help: "Total privacy cells produced across jobs",
	})
	SyntheticPointsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "density_synthetic_points_total",
		Help: "Total synthetic features generated by the sampler",
	})
	JobsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "density_jobs_total",
		Help: "Aggregation jobs by final status",
	}, []string{"status"})
	RequestDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "density_request_duration_ms",
		Help:    "API request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	})
)

// Register registers all collectors on the default registry.
func Register() {
	prometheus.MustRegister(
		RecordsIngestedTotal,
		RecordsMatchedTotal,
		RecordsUnmatchedTotal,
		RecordsResolvedTotal,
		RecordsUnresolvedTotal,
		CellsCreatedTotal,
		SyntheticPointsTotal,
		JobsTotal,
		RequestDurationMs,
	)
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
