package partition

import (
	"github.com/SJZbenxiaohai/my-abc-project/pkg/hypergraph"
)

// Unassigned is the label of a vertex that belongs to no partition.
const Unassigned int32 = -1

// Problem is the flat input handed to a solver. VertexWeights and
// EdgeWeights are nil when the corresponding Config flag is off; ConfigPath
// always names a readable solver configuration file.
type Problem struct {
	Partitions    int
	Imbalance     float64
	NumVertices   int
	Pins          []int32
	Offsets       []int32
	EdgeWeights   []int32
	VertexWeights []int32
	ConfigPath    string
}

// Solver is the external min-cut hypergraph partitioner, consumed as a
// synchronous one-shot black box. Partition returns one label per vertex in
// [0, Partitions) and the number of cut hyperedges reported by the solver.
// Callers needing a timeout must wrap the call externally.
type Solver interface {
	Name() string
	Partition(p *Problem) (labels []int32, cutObjective int, err error)
}

// newProblem assembles a Problem from an exported CSR and a config.
func newProblem(csr *hypergraph.CSR, cfg Config, configPath string) *Problem {
	p := &Problem{
		Partitions:  cfg.Partitions,
		Imbalance:   cfg.Imbalance,
		NumVertices: csr.NumVertices,
		Pins:        csr.Pins,
		Offsets:     csr.Offsets,
		ConfigPath:  configPath,
	}
	if cfg.UseEdgeWeights {
		p.EdgeWeights = csr.EdgeWeights
	}
	if cfg.UseVertexWeights {
		p.VertexWeights = csr.VertexWeights
	}
	return p
}

// CountCutEdges returns the number of hyperedges whose pins span more than
// one partition under the given labels. Vertices labeled Unassigned are
// ignored.
func (p *Problem) CountCutEdges(labels []int32) int {
	cut := 0
	for e := 0; e+1 < len(p.Offsets); e++ {
		seen := Unassigned
		for _, v := range p.Pins[p.Offsets[e]:p.Offsets[e+1]] {
			if int(v) >= len(labels) {
				continue
			}
			l := labels[v]
			if l < 0 {
				continue
			}
			if seen == Unassigned {
				seen = l
			} else if l != seen {
				cut++
				break
			}
		}
	}
	return cut
}
