package mapping

import (
	"math/bits"
)

// infeasibleDelay marks a cut whose arrival time could not be computed. It
// must be checked before any cost computation.
const infeasibleDelay float32 = -1

// Cut is one feasible cone boundary for a node: a sorted set of leaf ids
// capped at the LUT size, with a bitmask signature for cheap pruning and
// the cost annotations attached during generation.
type Cut struct {
	Leaves []int32
	Sign   uint64
	Delay  float32
	Area   float32
	Truth  uint64
}

// cutSign returns the signature bit of one leaf id.
func cutSign(id int32) uint64 {
	return 1 << (uint32(id) % 64)
}

// NumLeaves returns the leaf count.
func (c *Cut) NumLeaves() int {
	return len(c.Leaves)
}

// IsTrivial reports whether the cut is the single-leaf cut of its node.
func (c *Cut) IsTrivial() bool {
	return len(c.Leaves) == 1
}

func (c *Cut) clone() *Cut {
	leaves := make([]int32, len(c.Leaves))
	copy(leaves, c.Leaves)
	return &Cut{Leaves: leaves, Sign: c.Sign, Delay: c.Delay, Area: c.Area, Truth: c.Truth}
}

// trivialCut builds the single-leaf cut of a node.
func trivialCut(id int32) *Cut {
	return &Cut{
		Leaves: []int32{id},
		Sign:   cutSign(id),
	}
}

// signFeasible is the cheap pre-merge reject: if the union signature has
// more bits than the LUT size the merged cut cannot fit. The converse does
// not hold, so a passing pair still goes through the exact merge.
func signFeasible(a, b *Cut, lutSize int) bool {
	return bits.OnesCount64(a.Sign|b.Sign) <= lutSize
}

// mergeOrdered merges two sorted leaf sets into a new cut, failing when the
// union exceeds lutSize leaves.
func mergeOrdered(a, b *Cut, lutSize int) (*Cut, bool) {
	leaves := make([]int32, 0, lutSize)
	i, j := 0, 0
	for i < len(a.Leaves) && j < len(b.Leaves) {
		if len(leaves) == lutSize {
			return nil, false
		}
		switch {
		case a.Leaves[i] < b.Leaves[j]:
			leaves = append(leaves, a.Leaves[i])
			i++
		case a.Leaves[i] > b.Leaves[j]:
			leaves = append(leaves, b.Leaves[j])
			j++
		default:
			leaves = append(leaves, a.Leaves[i])
			i++
			j++
		}
	}
	for ; i < len(a.Leaves); i++ {
		if len(leaves) == lutSize {
			return nil, false
		}
		leaves = append(leaves, a.Leaves[i])
	}
	for ; j < len(b.Leaves); j++ {
		if len(leaves) == lutSize {
			return nil, false
		}
		leaves = append(leaves, b.Leaves[j])
	}

	merged := &Cut{Leaves: leaves}
	for _, l := range leaves {
		merged.Sign |= cutSign(l)
	}
	return merged, true
}

// dominates reports whether every leaf of c is also a leaf of other. The
// signature test is a pre-filter only; containment is decided on the exact
// sorted leaf sets.
func (c *Cut) dominates(other *Cut) bool {
	if len(c.Leaves) > len(other.Leaves) {
		return false
	}
	if c.Sign&^other.Sign != 0 {
		return false
	}
	j := 0
	for _, leaf := range c.Leaves {
		for j < len(other.Leaves) && other.Leaves[j] < leaf {
			j++
		}
		if j == len(other.Leaves) || other.Leaves[j] != leaf {
			return false
		}
		j++
	}
	return true
}
