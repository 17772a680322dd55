package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application. A nil *Registry is valid
// and disables recording, so callers never need to guard their metric calls.
type Registry struct {
	// Hypergraph Metrics
	HypergraphVertices      prometheus.Gauge
	HypergraphEdges         prometheus.Gauge
	HypergraphPins          prometheus.Gauge
	HypergraphBuildsTotal   *prometheus.CounterVec
	HypergraphBuildDuration *prometheus.HistogramVec

	// Partition Metrics
	PartitionRunsTotal prometheus.Counter
	PartitionFailures  prometheus.Counter
	PartitionDuration  prometheus.Histogram
	PartitionCount     prometheus.Gauge
	PartitionCutEdges  prometheus.Gauge

	// Mapping Metrics
	MappingNodesTotal     *prometheus.CounterVec
	MappingFallbacksTotal prometheus.Counter
	MappingPassDuration   *prometheus.HistogramVec
	MappingDelay          prometheus.Gauge
	MappingArea           prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initHypergraphMetrics()
	r.initPartitionMetrics()
	r.initMappingMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}
