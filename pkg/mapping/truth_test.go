package mapping

import (
	"testing"
)

func TestExpandTruth_Identity(t *testing.T) {
	leaves := []int32{2, 5}
	// v0 & v1 over two variables.
	and2 := uint64(0x8)
	if got := expandTruth(and2, leaves, leaves); got != and2 {
		t.Errorf("Identity expansion changed the table: %x", got)
	}
}

func TestExpandTruth_InsertVariable(t *testing.T) {
	// v0 over {3} expanded into {3, 8}: variable keeps position 0.
	got := expandTruth(varTruth[0]&truthMask(1), []int32{3}, []int32{3, 8})
	if got != varTruth[0]&truthMask(2) {
		t.Errorf("Expected %x, got %x", varTruth[0]&truthMask(2), got)
	}

	// v0 over {8} expanded into {3, 8}: the variable moves to position 1.
	got = expandTruth(varTruth[0]&truthMask(1), []int32{8}, []int32{3, 8})
	if got != varTruth[1]&truthMask(2) {
		t.Errorf("Expected %x, got %x", varTruth[1]&truthMask(2), got)
	}
}

func TestComputeTruth_And(t *testing.T) {
	c0 := &Cut{Leaves: []int32{1}, Truth: trivialTruth()}
	c1 := &Cut{Leaves: []int32{2}, Truth: trivialTruth()}
	merged := &Cut{Leaves: []int32{1, 2}}

	if got := computeTruth(merged, c0, c1, false, false); got != 0x8 {
		t.Errorf("a & b: expected 0x8, got %x", got)
	}
	if got := computeTruth(merged, c0, c1, false, true); got != 0x2 {
		t.Errorf("a & !b: expected 0x2, got %x", got)
	}
	if got := computeTruth(merged, c0, c1, true, true); got != 0x1 {
		t.Errorf("!a & !b: expected 0x1, got %x", got)
	}
}

func TestComputeTruth_FourInputConjunction(t *testing.T) {
	ab := &Cut{Leaves: []int32{1, 2}, Truth: 0x8}
	cd := &Cut{Leaves: []int32{3, 4}, Truth: 0x8}
	merged := &Cut{Leaves: []int32{1, 2, 3, 4}}

	// (a&b)&(c&d) is exactly minterm 15.
	if got := computeTruth(merged, ab, cd, false, false); got != 0x8000 {
		t.Errorf("Expected 0x8000, got %x", got)
	}
}

func TestTruthMask(t *testing.T) {
	if truthMask(1) != 0x3 {
		t.Errorf("1-variable mask: got %x", truthMask(1))
	}
	if truthMask(2) != 0xF {
		t.Errorf("2-variable mask: got %x", truthMask(2))
	}
	if truthMask(6) != ^uint64(0) {
		t.Errorf("6-variable mask: got %x", truthMask(6))
	}
}
