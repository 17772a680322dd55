package partition

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/hypergraph"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/logging"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/metrics"
)

// Result is the outcome of one partitioning attempt. It is written once by
// Run and read-only afterwards; the session ID scopes every downstream
// consumer (interface derivation, partition-aware mapping) to this attempt.
//
// Success=false means the solver was unavailable or failed; Labels are all
// Unassigned in that case and the caller decides whether to proceed
// unpartitioned.
type Result struct {
	SessionID  string
	Solver     string
	Partitions int
	Labels     []int32
	CutEdges   int
	Success    bool
}

// PartitionSizes counts vertices per partition; labels outside
// [0, Partitions) are ignored.
func (r *Result) PartitionSizes() []int {
	sizes := make([]int, r.Partitions)
	for _, l := range r.Labels {
		if l >= 0 && int(l) < r.Partitions {
			sizes[l]++
		}
	}
	return sizes
}

// Run partitions a hypergraph.
//
// When cfg.Partitions is 1 the result assigns every vertex to partition 0
// with zero cut edges and the solver is not invoked. Otherwise the
// hypergraph is exported (an export inconsistency is fatal and aborts before
// the solver sees any data) and handed to the solver. Solver failure is not
// fatal; it yields a Result with Success=false.
func Run(h *hypergraph.Hypergraph, cfg Config, solver Solver, logger logging.Logger, reg *metrics.Registry) (*Result, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.Partitions < 1 {
		return nil, fmt.Errorf("invalid partition count %d", cfg.Partitions)
	}

	result := &Result{
		SessionID:  uuid.NewString(),
		Partitions: cfg.Partitions,
		Labels:     make([]int32, h.NumVertices()),
	}

	// Trivial case: one partition, nothing to cut, no solver involved.
	if cfg.Partitions == 1 {
		result.Success = true
		result.Solver = "trivial"
		return result, nil
	}

	for i := range result.Labels {
		result.Labels[i] = Unassigned
	}
	result.Solver = solver.Name()
	plog := logger.With(
		logging.Component("partition"),
		logging.Session(result.SessionID),
		logging.String("solver", result.Solver))

	csr, err := h.Export()
	if err != nil {
		return nil, fmt.Errorf("refusing to invoke solver: %w", err)
	}

	configPath := cfg.ConfigFile
	if configPath == "" {
		path, cleanup, err := WriteSolverConfigFile()
		if err != nil {
			return nil, err
		}
		defer cleanup()
		configPath = path
	}

	plog.Info("invoking partitioner",
		logging.Partitions(cfg.Partitions),
		logging.Vertices(csr.NumVertices),
		logging.Edges(csr.NumEdges()))

	start := time.Now()
	labels, objective, err := solver.Partition(newProblem(csr, cfg, configPath))
	elapsed := time.Since(start)
	if err != nil {
		// Solver unavailability is not fatal: the caller may proceed
		// unpartitioned.
		plog.Warn("partitioner failed", logging.Err(err))
		reg.RecordPartition(cfg.Partitions, 0, false, elapsed)
		return result, nil
	}

	copy(result.Labels, labels)
	result.CutEdges = objective
	result.Success = true

	plog.Info("partitioning completed",
		logging.CutEdges(result.CutEdges),
		logging.Any("sizes", result.PartitionSizes()),
		logging.Latency(elapsed))
	reg.RecordPartition(cfg.Partitions, result.CutEdges, true, elapsed)

	return result, nil
}
