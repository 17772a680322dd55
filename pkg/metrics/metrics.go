package metrics

import (
	"time"
)

// RecordHypergraphBuild records one hypergraph construction. mode is
// "uniform" or "timing".
func (r *Registry) RecordHypergraphBuild(mode string, vertices, edges, pins int, duration time.Duration) {
	if r == nil {
		return
	}
	r.HypergraphVertices.Set(float64(vertices))
	r.HypergraphEdges.Set(float64(edges))
	r.HypergraphPins.Set(float64(pins))
	r.HypergraphBuildsTotal.WithLabelValues(mode).Inc()
	r.HypergraphBuildDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// RecordPartition records one partitioning attempt with its solver runtime
func (r *Registry) RecordPartition(partitions, cutEdges int, success bool, duration time.Duration) {
	if r == nil {
		return
	}
	r.PartitionRunsTotal.Inc()
	r.PartitionDuration.Observe(duration.Seconds())
	r.PartitionCount.Set(float64(partitions))
	if !success {
		r.PartitionFailures.Inc()
		return
	}
	r.PartitionCutEdges.Set(float64(cutEdges))
}

// RecordMappedNode records one cut-engine node visit. strategy is
// "partition-aware" or "standard"; fallback marks trivial-cut recovery.
func (r *Registry) RecordMappedNode(strategy string, fallback bool) {
	if r == nil {
		return
	}
	r.MappingNodesTotal.WithLabelValues(strategy).Inc()
	if fallback {
		r.MappingFallbacksTotal.Inc()
	}
}

// RecordMappingPass records one completed mapping pass and its outcome
func (r *Registry) RecordMappingPass(pass string, delay float64, area int, duration time.Duration) {
	if r == nil {
		return
	}
	r.MappingPassDuration.WithLabelValues(pass).Observe(duration.Seconds())
	r.MappingDelay.Set(delay)
	r.MappingArea.Set(float64(area))
}
