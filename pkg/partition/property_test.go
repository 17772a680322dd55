package partition

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/hypergraph"
)

// randomNetwork builds a strashed network with the given shape from a seed.
func randomNetwork(numPIs, numAnds, numPOs int, seed int64) *aig.Network {
	rng := rand.New(rand.NewSource(seed))
	n := aig.NewNetwork()

	lits := make([]aig.Lit, 0, numPIs+numAnds)
	for i := 0; i < numPIs; i++ {
		lits = append(lits, n.AddCI())
	}
	for i := 0; i < numAnds; i++ {
		a := lits[rng.Intn(len(lits))]
		b := lits[rng.Intn(len(lits))]
		if rng.Intn(2) == 1 {
			a = a.Not()
		}
		if rng.Intn(2) == 1 {
			b = b.Not()
		}
		lits = append(lits, n.AddAnd(a, b))
	}
	for i := 0; i < numPOs; i++ {
		n.AddCO(lits[rng.Intn(len(lits))])
	}
	return n
}

// randomLabels assigns every object a label in [0, partitions) from a seed.
func randomLabels(n *aig.Network, partitions int, seed int64) []int32 {
	rng := rand.New(rand.NewSource(seed))
	labels := make([]int32, n.ObjNumMax())
	for i := range labels {
		labels[i] = int32(rng.Intn(partitions))
	}
	return labels
}

// TestPartitionInvariants verifies interface-set invariants over random
// networks and random label vectors.
func TestPartitionInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	caseGen := gopter.CombineGens(
		gen.IntRange(1, 8),
		gen.IntRange(0, 40),
		gen.IntRange(1, 6),
		gen.IntRange(2, 5),
		gen.Int64(),
	)

	properties.Property("no vertex is both input and output of one partition", prop.ForAll(
		func(vals []interface{}) bool {
			net := randomNetwork(vals[0].(int), vals[1].(int), vals[2].(int), vals[4].(int64))
			parts := vals[3].(int)
			ifc := Apply(net, randomLabels(net, parts, vals[4].(int64)), parts)
			for p := 0; p < parts; p++ {
				for _, id := range ifc.Inputs(p) {
					if !ifc.IsInput(p, id) {
						return false
					}
					for _, out := range ifc.Outputs(p) {
						if out == id {
							return false
						}
					}
				}
			}
			return true
		},
		caseGen,
	))

	properties.Property("outputs of a partition carry that partition's label", prop.ForAll(
		func(vals []interface{}) bool {
			net := randomNetwork(vals[0].(int), vals[1].(int), vals[2].(int), vals[4].(int64))
			parts := vals[3].(int)
			labels := randomLabels(net, parts, vals[4].(int64))
			ifc := Apply(net, labels, parts)
			for p := 0; p < parts; p++ {
				for _, id := range ifc.Outputs(p) {
					if labels[id] != int32(p) {
						return false
					}
				}
			}
			return true
		},
		caseGen,
	))

	properties.Property("cut edges equal the summed input-set sizes", prop.ForAll(
		func(vals []interface{}) bool {
			net := randomNetwork(vals[0].(int), vals[1].(int), vals[2].(int), vals[4].(int64))
			parts := vals[3].(int)
			ifc := Apply(net, randomLabels(net, parts, vals[4].(int64)), parts)
			sum := 0
			for p := 0; p < parts; p++ {
				sum += len(ifc.Inputs(p))
			}
			return ifc.CutEdges() == sum
		},
		caseGen,
	))

	properties.Property("greedy labels stay in range for any hypergraph", prop.ForAll(
		func(vals []interface{}) bool {
			net := randomNetwork(vals[0].(int), vals[1].(int), vals[2].(int), vals[4].(int64))
			h, err := hypergraph.Build(net, nil)
			if err != nil {
				return false
			}
			csr, err := h.Export()
			if err != nil {
				return false
			}
			parts := vals[3].(int)
			cfg := DefaultConfig()
			cfg.Partitions = parts
			labels, _, err := GreedyLevelSolver{}.Partition(newProblem(csr, cfg, ""))
			if err != nil {
				return false
			}
			for _, l := range labels {
				if l < 0 || int(l) >= parts {
					return false
				}
			}
			return true
		},
		caseGen,
	))

	properties.TestingRun(t)
}
