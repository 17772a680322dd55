package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPartitionMetrics() {
	r.PartitionRunsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hpart_partition_runs_total",
			Help: "Total number of partitioning attempts",
		},
	)

	r.PartitionFailures = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hpart_partition_failures_total",
			Help: "Total number of failed partitioning attempts",
		},
	)

	r.PartitionDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hpart_partition_duration_seconds",
			Help:    "External solver runtime in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0, 60.0},
		},
	)

	r.PartitionCount = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hpart_partition_count",
			Help: "Partition count of the most recent attempt",
		},
	)

	r.PartitionCutEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hpart_partition_cut_edges",
			Help: "Cut hyperedges reported by the most recent successful attempt",
		},
	)
}
