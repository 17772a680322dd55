package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initMappingMetrics() {
	r.MappingNodesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hpart_mapping_nodes_total",
			Help: "Total number of nodes processed by the cut engine",
		},
		[]string{"strategy"},
	)

	r.MappingFallbacksTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "hpart_mapping_fallbacks_total",
			Help: "Nodes resolved by the trivial-cut fallback",
		},
	)

	r.MappingPassDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hpart_mapping_pass_duration_seconds",
			Help:    "Mapping pass duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0, 60.0},
		},
		[]string{"pass"},
	)

	r.MappingDelay = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hpart_mapping_delay",
			Help: "Arrival time of the slowest output in the most recent mapping",
		},
	)

	r.MappingArea = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hpart_mapping_area",
			Help: "LUT count of the most recent mapping",
		},
	)
}
