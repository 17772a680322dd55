// Package partition drives hypergraph partitioning: it feeds the exported
// CSR arrays to an external min-cut solver, and applies the resulting
// per-vertex labels back onto the network as per-partition interface sets.
package partition

import (
	"fmt"
	"os"
)

// Config holds the partitioning parameters handed to the solver.
//
// Imbalance is passed through to the solver unmodified: solvers disagree on
// whether smaller values mean tighter balance, so no interpretation is
// applied here. The default matches the reference tool configuration.
type Config struct {
	Partitions       int     `yaml:"partitions" validate:"required,min=1"`
	Imbalance        float64 `yaml:"imbalance" validate:"min=0"`
	UseVertexWeights bool    `yaml:"use_vertex_weights"`
	UseEdgeWeights   bool    `yaml:"use_edge_weights"`
	ConfigFile       string  `yaml:"config_file"`
	Verbose          bool    `yaml:"verbose"`
}

// DefaultConfig returns the default partitioning parameters.
func DefaultConfig() Config {
	return Config{
		Partitions: 2,
		Imbalance:  0.9,
	}
}

// DefaultSolverConfig is the built-in solver configuration text, used when
// Config.ConfigFile is empty. The keys follow the KaHyPar direct k-way
// preset tuned for netlist hypergraphs.
const DefaultSolverConfig = `# general
mode=direct
objective=km1
seed=-1
cmaxnet=1000
vcycles=0
# main -> preprocessing -> min hash sparsifier
p-use-sparsifier=true
p-sparsifier-min-median-he-size=28
p-sparsifier-max-hyperedge-size=1200
p-sparsifier-max-cluster-size=10
p-sparsifier-min-cluster-size=2
p-sparsifier-num-hash-func=5
p-sparsifier-combined-num-hash-func=100
# main -> preprocessing -> community detection
p-detect-communities=true
p-detect-communities-in-ip=true
p-reuse-communities=false
p-max-louvain-pass-iterations=100
p-min-eps-improvement=0.0001
p-louvain-edge-weight=hybrid
# main -> coarsening
c-type=ml_style
c-s=1
c-t=160
# main -> coarsening -> rating
c-rating-score=heavy_edge
c-rating-use-communities=true
c-rating-heavy_node_penalty=no_penalty
c-rating-acceptance-criterion=best_prefer_unmatched
c-fixed-vertex-acceptance-criterion=fixed_vertex_allowed
# main -> initial partitioning
i-mode=recursive
i-technique=multi
# initial partitioning -> coarsening
i-c-type=ml_style
i-c-s=1
i-c-t=150
# initial partitioning -> coarsening -> rating
i-c-rating-score=heavy_edge
i-c-rating-use-communities=true
i-c-rating-heavy_node_penalty=no_penalty
i-c-rating-acceptance-criterion=best_prefer_unmatched
i-c-fixed-vertex-acceptance-criterion=fixed_vertex_allowed
# initial partitioning -> initial partitioning
i-algo=pool
i-runs=20
# initial partitioning -> bin packing
i-bp-algorithm=worst_fit
i-bp-heuristic-prepacking=false
i-bp-early-restart=true
i-bp-late-restart=true
# initial partitioning -> local search
i-r-type=twoway_fm
i-r-runs=-1
i-r-fm-stop=simple
i-r-fm-stop-i=50
# main -> local search
r-type=kway_fm_hyperflow_cutter_km1
r-runs=-1
r-fm-stop=adaptive_opt
r-fm-stop-alpha=1
r-fm-stop-i=350
# local_search -> flow scheduling and heuristics
r-flow-execution-policy=exponential
# local_search -> hyperflowcutter configuration
r-hfc-size-constraint=mf-style
r-hfc-scaling=16
r-hfc-distance-based-piercing=true
r-hfc-mbc=true
`

// WriteSolverConfigFile materializes the built-in solver configuration into
// a temporary file and returns its path plus a cleanup function.
func WriteSolverConfigFile() (string, func(), error) {
	f, err := os.CreateTemp("", "hpart_solver_*.ini")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create solver config file: %w", err)
	}
	if _, err := f.WriteString(DefaultSolverConfig); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("failed to write solver config file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("failed to close solver config file: %w", err)
	}
	path := f.Name()
	return path, func() { os.Remove(path) }, nil
}
