package hypergraph

import (
	"fmt"
)

// CSR is the compressed edge-list layout consumed by external partitioners:
// Pins concatenates all hyperedges in order (roots included); Offsets has
// one entry per hyperedge plus a terminator, so hyperedge i spans
// Pins[Offsets[i]:Offsets[i+1]]. EdgeWeights and VertexWeights are copies of
// the hypergraph's weight vectors.
type CSR struct {
	NumVertices   int
	Pins          []int32
	Offsets       []int32
	EdgeWeights   []int32
	VertexWeights []int32
}

// Export converts the hypergraph into CSR form. The transform is pure: it
// depends only on the hypergraph and can be re-derived at any time. The
// resulting arrays are verified before being handed to a solver; a mismatch
// between offsets and pin count is an export-consistency failure and fatal.
func (h *Hypergraph) Export() (*CSR, error) {
	csr := &CSR{
		NumVertices:   h.nVertices,
		Pins:          make([]int32, 0, h.pins),
		Offsets:       make([]int32, 1, len(h.edges)+1),
		EdgeWeights:   make([]int32, len(h.edgeWeights)),
		VertexWeights: h.VertexWeights(),
	}
	copy(csr.EdgeWeights, h.edgeWeights)

	for _, edge := range h.edges {
		csr.Pins = append(csr.Pins, edge...)
		csr.Offsets = append(csr.Offsets, int32(len(csr.Pins)))
	}

	if err := csr.Validate(); err != nil {
		return nil, err
	}
	return csr, nil
}

// Validate checks the CSR invariants: offsets start at zero, never decrease,
// and terminate at the total pin count.
func (c *CSR) Validate() error {
	if len(c.Offsets) == 0 || c.Offsets[0] != 0 {
		return fmt.Errorf("%w: offsets must start at 0", ErrExportInconsistent)
	}
	for i := 1; i < len(c.Offsets); i++ {
		if c.Offsets[i] < c.Offsets[i-1] {
			return fmt.Errorf("%w: offsets decrease at %d", ErrExportInconsistent, i)
		}
	}
	if int(c.Offsets[len(c.Offsets)-1]) != len(c.Pins) {
		return fmt.Errorf("%w: offsets end at %d, have %d pins",
			ErrExportInconsistent, c.Offsets[len(c.Offsets)-1], len(c.Pins))
	}
	if len(c.EdgeWeights) != len(c.Offsets)-1 {
		return fmt.Errorf("%w: %d edge weights for %d hyperedges",
			ErrExportInconsistent, len(c.EdgeWeights), len(c.Offsets)-1)
	}
	return nil
}

// NumEdges returns the number of hyperedges in the export.
func (c *CSR) NumEdges() int {
	return len(c.Offsets) - 1
}
