package mapping

// varTruth[i] is the truth table of the i-th input variable over 6
// variables, packed into one 64-bit word.
var varTruth = [MaxTruthLutSize]uint64{
	0xAAAAAAAAAAAAAAAA,
	0xCCCCCCCCCCCCCCCC,
	0xF0F0F0F0F0F0F0F0,
	0xFF00FF00FF00FF00,
	0xFFFF0000FFFF0000,
	0xFFFFFFFF00000000,
}

// truthMask returns the mask of meaningful bits for an n-variable table.
func truthMask(n int) uint64 {
	if n >= MaxTruthLutSize {
		return ^uint64(0)
	}
	return (uint64(1) << (1 << uint(n))) - 1
}

// trivialTruth is the table of a single-leaf cut.
func trivialTruth() uint64 {
	return varTruth[0]
}

// expandTruth re-expresses a table over the from leaf set in the space of
// the to leaf set. Both sets are sorted and from is a subset of to.
func expandTruth(t uint64, from, to []int32) uint64 {
	// Position of each from-leaf within to.
	var pos [MaxTruthLutSize]int
	j := 0
	for i, leaf := range from {
		for to[j] != leaf {
			j++
		}
		pos[i] = j
	}

	var out uint64
	minterms := 1 << uint(len(to))
	for m := 0; m < minterms; m++ {
		idx := 0
		for i := range from {
			idx |= int((m>>uint(pos[i]))&1) << uint(i)
		}
		out |= ((t >> uint(idx)) & 1) << uint(m)
	}
	return out
}

// computeTruth derives the merged cut's table from its fanin cuts, applying
// the fanin complement flags. Requires |merged leaves| <= MaxTruthLutSize.
func computeTruth(merged, cut0, cut1 *Cut, compl0, compl1 bool) uint64 {
	t0 := expandTruth(cut0.Truth, cut0.Leaves, merged.Leaves)
	t1 := expandTruth(cut1.Truth, cut1.Leaves, merged.Leaves)
	if compl0 {
		t0 = ^t0
	}
	if compl1 {
		t1 = ^t1
	}
	return (t0 & t1) & truthMask(len(merged.Leaves))
}
