// Package hypergraph models a logic network's connectivity as a hypergraph:
// one hyperedge per eligible node, listing the node first and its immediate
// consumers after it. The flat CSR export feeds external min-cut partitioners.
package hypergraph

// Weight bounds for vertex and edge criticality weights.
const (
	MinWeight = 1
	MaxWeight = 10
)

// Hypergraph holds the connectivity model. Vertex IDs are the network's own
// object IDs; the vertex count is fixed at construction. Hyperedges are
// append-only during the single build pass and immutable afterwards.
type Hypergraph struct {
	nVertices     int
	edges         [][]int32
	edgeWeights   []int32
	vertexWeights []int32
	pins          int
}

// New creates an empty hypergraph over a fixed vertex-ID capacity.
// All vertex weights default to 1.
func New(nVertices int) *Hypergraph {
	h := &Hypergraph{
		nVertices:     nVertices,
		vertexWeights: make([]int32, nVertices),
	}
	for i := range h.vertexWeights {
		h.vertexWeights[i] = MinWeight
	}
	return h
}

// addEdge appends a hyperedge with the given weight. The slice is owned by
// the hypergraph afterwards. Hyperedges shorter than 2 entries are refused
// by the builders before reaching here.
func (h *Hypergraph) addEdge(edge []int32, weight int32) {
	h.edges = append(h.edges, edge)
	h.edgeWeights = append(h.edgeWeights, weight)
	h.pins += len(edge)
}

// NumVertices returns the vertex-ID capacity.
func (h *Hypergraph) NumVertices() int {
	return h.nVertices
}

// NumEdges returns the number of hyperedges.
func (h *Hypergraph) NumEdges() int {
	return len(h.edges)
}

// Pins returns the total pin count (sum of hyperedge lengths).
func (h *Hypergraph) Pins() int {
	return h.pins
}

// Edge returns hyperedge i. The first entry is the root vertex that produced
// the edge. The returned slice is owned by the hypergraph.
func (h *Hypergraph) Edge(i int) []int32 {
	return h.edges[i]
}

// EdgeWeight returns the weight of hyperedge i.
func (h *Hypergraph) EdgeWeight(i int) int32 {
	return h.edgeWeights[i]
}

// VertexWeight returns the weight of vertex v.
func (h *Hypergraph) VertexWeight(v int32) int32 {
	return h.vertexWeights[v]
}

// VertexWeights returns a copy of the vertex weight vector.
func (h *Hypergraph) VertexWeights() []int32 {
	out := make([]int32, len(h.vertexWeights))
	copy(out, h.vertexWeights)
	return out
}

// setVertexWeight clamps w to [MinWeight, MaxWeight] and stores it.
func (h *Hypergraph) setVertexWeight(v int32, w int32) {
	if w < MinWeight {
		w = MinWeight
	}
	if w > MaxWeight {
		w = MaxWeight
	}
	h.vertexWeights[v] = w
}

// Stats summarizes a hypergraph.
type Stats struct {
	Vertices   int
	Hyperedges int
	Pins       int
	AvgDegree  float64
}

// Stats returns summary statistics.
func (h *Hypergraph) Stats() Stats {
	s := Stats{
		Vertices:   h.nVertices,
		Hyperedges: len(h.edges),
		Pins:       h.pins,
	}
	if s.Hyperedges > 0 {
		s.AvgDegree = float64(s.Pins) / float64(s.Hyperedges)
	}
	return s
}

// WeightHistogram returns a histogram of vertex weights indexed 0..MaxWeight.
func (h *Hypergraph) WeightHistogram() [MaxWeight + 1]int {
	var hist [MaxWeight + 1]int
	for _, w := range h.vertexWeights {
		if w >= 0 && w <= MaxWeight {
			hist[w]++
		}
	}
	return hist
}
