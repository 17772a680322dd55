package partition

import (
	"errors"
)

// ErrEmptyProblem is returned when a solver is invoked on a zero-vertex problem.
var ErrEmptyProblem = errors.New("cannot partition an empty hypergraph")

// GreedyLevelSolver is a hermetic stand-in solver: it fills partitions with
// contiguous vertex-ID ranges balanced by vertex weight. Since IDs are
// topological in a strashed network, contiguous ranges roughly follow logic
// depth. It makes no attempt at min-cut quality; use a real external solver
// for that.
type GreedyLevelSolver struct{}

// Name identifies the solver in logs.
func (GreedyLevelSolver) Name() string {
	return "greedy-level"
}

// Partition assigns contiguous weight-balanced ID ranges and reports the
// exact cut-edge count of the resulting labeling.
func (s GreedyLevelSolver) Partition(p *Problem) ([]int32, int, error) {
	if p.NumVertices == 0 {
		return nil, 0, ErrEmptyProblem
	}

	weightOf := func(v int) int64 {
		if p.VertexWeights != nil {
			return int64(p.VertexWeights[v])
		}
		return 1
	}

	total := int64(0)
	for v := 0; v < p.NumVertices; v++ {
		total += weightOf(v)
	}
	target := total / int64(p.Partitions)
	if target == 0 {
		target = 1
	}

	labels := make([]int32, p.NumVertices)
	part := int32(0)
	acc := int64(0)
	for v := 0; v < p.NumVertices; v++ {
		labels[v] = part
		acc += weightOf(v)
		if acc >= target && int(part) < p.Partitions-1 {
			part++
			acc = 0
		}
	}

	return labels, p.CountCutEdges(labels), nil
}
