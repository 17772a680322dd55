package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initHypergraphMetrics() {
	r.HypergraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hpart_hypergraph_vertices",
			Help: "Vertex count of the most recently built hypergraph",
		},
	)

	r.HypergraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hpart_hypergraph_edges",
			Help: "Hyperedge count of the most recently built hypergraph",
		},
	)

	r.HypergraphPins = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "hpart_hypergraph_pins",
			Help: "Pin count of the most recently built hypergraph",
		},
	)

	r.HypergraphBuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "hpart_hypergraph_builds_total",
			Help: "Total number of hypergraph constructions",
		},
		[]string{"mode"},
	)

	r.HypergraphBuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hpart_hypergraph_build_duration_seconds",
			Help:    "Hypergraph construction duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"mode"},
	)
}
