package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/hypergraph"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/mapping"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/partition"
)

// buildLayeredAIG generates a synthetic circuit: widthPIs inputs followed by
// depth layers of random 2-input AND nodes, the last layer driving the
// outputs.
func buildLayeredAIG(widthPIs, depth, layerWidth int, seed int64) *aig.Network {
	rng := rand.New(rand.NewSource(seed))
	n := aig.NewNetwork()

	layer := make([]aig.Lit, widthPIs)
	for i := range layer {
		layer[i] = n.AddCI()
	}

	for d := 0; d < depth; d++ {
		next := make([]aig.Lit, 0, layerWidth)
		for len(next) < layerWidth {
			a := layer[rng.Intn(len(layer))]
			b := layer[rng.Intn(len(layer))]
			if rng.Intn(2) == 1 {
				a = a.Not()
			}
			if rng.Intn(2) == 1 {
				b = b.Not()
			}
			next = append(next, n.AddAnd(a, b))
		}
		layer = next
	}

	for _, lit := range layer {
		n.AddCO(lit)
	}
	return n
}

func main() {
	pis := flag.Int("pis", 64, "Number of primary inputs")
	depth := flag.Int("depth", 12, "Number of logic layers")
	width := flag.Int("width", 64, "Nodes per layer")
	parts := flag.Int("parts", 4, "Number of partitions")
	lutSize := flag.Int("k", 6, "LUT size for mapping")
	seed := flag.Int64("seed", 1, "Random seed")
	flag.Parse()

	fmt.Printf("hpart - partitioning benchmark\n")
	fmt.Printf("==============================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Inputs: %d  Depth: %d  Width: %d\n", *pis, *depth, *width)
	fmt.Printf("  Partitions: %d  K: %d\n\n", *parts, *lutSize)

	fmt.Printf("Generating synthetic circuit...\n")
	start := time.Now()
	net := buildLayeredAIG(*pis, *depth, *width, *seed)
	fmt.Printf("Built %d nodes in %v\n\n", net.NodeNum(), time.Since(start))

	// Uniform vs timing-aware hypergraph construction.
	start = time.Now()
	plain, err := hypergraph.Build(net, nil)
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}
	plainTime := time.Since(start)

	start = time.Now()
	timed, err := hypergraph.BuildTimingAware(net, nil)
	if err != nil {
		log.Fatalf("Timing-aware build failed: %v", err)
	}
	timedTime := time.Since(start)

	fmt.Printf("Hypergraph construction:\n")
	fmt.Printf("  Uniform:      %v (%d edges, %d pins)\n", plainTime, plain.NumEdges(), plain.Pins())
	fmt.Printf("  Timing-aware: %v (%d edges, %d pins)\n", timedTime, timed.NumEdges(), timed.Pins())

	hist := timed.WeightHistogram()
	fmt.Printf("  Vertex weight histogram:")
	for w := hypergraph.MinWeight; w <= hypergraph.MaxWeight; w++ {
		fmt.Printf(" %d:%d", w, hist[w])
	}
	fmt.Printf("\n\n")

	for _, bench := range []struct {
		name    string
		h       *hypergraph.Hypergraph
		weights bool
	}{
		{"uniform", plain, false},
		{"timing-aware", timed, true},
	} {
		cfg := partition.DefaultConfig()
		cfg.Partitions = *parts
		cfg.UseVertexWeights = bench.weights
		cfg.UseEdgeWeights = bench.weights

		start = time.Now()
		res, err := partition.Run(bench.h, cfg, partition.GreedyLevelSolver{}, nil, nil)
		if err != nil {
			log.Fatalf("Partitioning failed: %v", err)
		}
		elapsed := time.Since(start)

		fmt.Printf("Partitioning (%s weights): %v\n", bench.name, elapsed)
		fmt.Printf("  Cut edges: %d\n", res.CutEdges)
		fmt.Printf("  Sizes:     %v\n", res.PartitionSizes())

		params := mapping.DefaultParams()
		params.LutSize = *lutSize

		m, err := mapping.NewManager(net, params, nil, nil)
		if err != nil {
			log.Fatalf("Mapper setup failed: %v", err)
		}
		start = time.Now()
		mapped, err := m.MapNetwork(mapping.NewSession(net, m, res))
		if err != nil {
			log.Fatalf("Mapping failed: %v", err)
		}
		fmt.Printf("  Mapping (%s): delay %.0f, area %d in %v\n\n",
			mapped.Strategy, mapped.Delay, mapped.Area, time.Since(start))
	}
}
