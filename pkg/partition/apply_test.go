package partition

import (
	"testing"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
)

// setupCutNetwork creates: PIs a=1, b=2; AND c=3 (c = a & b); PO d=4 driven
// by c. Partitioned with {a,b} on side 0 and {c,d} on side 1, both PI
// signals cross the boundary.
func setupCutNetwork(t *testing.T) *aig.Network {
	t.Helper()

	n := aig.NewNetwork()
	a := n.AddCI()
	b := n.AddCI()
	c := n.AddAnd(a, b)
	n.AddCO(c)
	return n
}

func TestApply_TwoPartitionScenario(t *testing.T) {
	n := setupCutNetwork(t)

	// const=0, a=1, b=2, c=3, d=4
	labels := []int32{Unassigned, 0, 0, 1, 1}
	ifc := Apply(n, labels, 2)

	wantOut0 := []int32{1, 2}
	got := ifc.Outputs(0)
	if len(got) != len(wantOut0) || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected outputs[0]=%v, got %v", wantOut0, got)
	}

	wantIn1 := []int32{1, 2}
	got = ifc.Inputs(1)
	if len(got) != len(wantIn1) || got[0] != 1 || got[1] != 2 {
		t.Errorf("Expected inputs[1]=%v, got %v", wantIn1, got)
	}

	if len(ifc.Inputs(0)) != 0 {
		t.Errorf("Expected empty inputs[0], got %v", ifc.Inputs(0))
	}
	if ifc.CutEdges() != 2 {
		t.Errorf("Expected 2 cut edges, got %d", ifc.CutEdges())
	}

	// The driver pass registers c as an output of its partition.
	out1 := ifc.Outputs(1)
	if len(out1) != 1 || out1[0] != 3 {
		t.Errorf("Expected outputs[1]=[3], got %v", out1)
	}
}

func TestApply_NoCrossingWhenSameSide(t *testing.T) {
	n := setupCutNetwork(t)

	labels := []int32{Unassigned, 0, 0, 0, 0}
	ifc := Apply(n, labels, 2)

	if ifc.CutEdges() != 0 {
		t.Errorf("Expected 0 cut edges, got %d", ifc.CutEdges())
	}
	if len(ifc.Inputs(1))+len(ifc.Outputs(1)) != 0 {
		t.Errorf("Partition 1 should be empty, inputs=%v outputs=%v", ifc.Inputs(1), ifc.Outputs(1))
	}
	// The PO driver pass still records c as produced in partition 0.
	out0 := ifc.Outputs(0)
	if len(out0) != 1 || out0[0] != 3 {
		t.Errorf("Expected outputs[0]=[3], got %v", out0)
	}
}

func TestApply_InsertionIsIdempotent(t *testing.T) {
	// One PI feeding two nodes on the far side must appear once per set.
	n := aig.NewNetwork()
	a := n.AddCI()
	b := n.AddCI()
	c := n.AddCI()
	ab := n.AddAnd(a, b)
	ac := n.AddAnd(a, c)
	n.AddCO(ab)
	n.AddCO(ac)

	labels := make([]int32, n.ObjNumMax())
	for i := range labels {
		labels[i] = Unassigned
	}
	labels[a.ID()] = 0
	labels[b.ID()] = 1
	labels[c.ID()] = 1
	labels[ab.ID()] = 1
	labels[ac.ID()] = 1

	ifc := Apply(n, labels, 2)

	in1 := ifc.Inputs(1)
	if len(in1) != 1 || in1[0] != a.ID() {
		t.Errorf("Expected inputs[1]=[%d], got %v", a.ID(), in1)
	}
	if ifc.CutEdges() != 1 {
		t.Errorf("Expected 1 cut edge, got %d", ifc.CutEdges())
	}
}

func TestApply_OutOfRangeLabelsSkipped(t *testing.T) {
	n := setupCutNetwork(t)

	// Label vector shorter than the ID space, plus a label beyond the
	// partition count: neither may panic or register anything.
	labels := []int32{Unassigned, 7, 0}
	ifc := Apply(n, labels, 2)

	for p := 0; p < 2; p++ {
		if len(ifc.Inputs(p)) != 0 || len(ifc.Outputs(p)) != 0 {
			t.Errorf("Partition %d should be empty, inputs=%v outputs=%v",
				p, ifc.Inputs(p), ifc.Outputs(p))
		}
	}
	if ifc.CutEdges() != 0 {
		t.Errorf("Expected 0 cut edges, got %d", ifc.CutEdges())
	}
}

func TestApply_LatchOutputsIgnoredByDriverPass(t *testing.T) {
	n := aig.NewNetwork()
	a := n.AddCI()
	q := n.AddLatchOutput()
	c := n.AddAnd(a, q)
	n.AddLatchInput(c)

	labels := make([]int32, n.ObjNumMax())
	ifc := Apply(n, labels, 1)

	// Everything sits in partition 0 and the only CO is latch-type, so the
	// driver pass registers nothing.
	if len(ifc.Outputs(0)) != 0 {
		t.Errorf("Expected empty outputs[0], got %v", ifc.Outputs(0))
	}
}

func TestApply_PartitionSizesBucketed(t *testing.T) {
	n := setupCutNetwork(t)

	labels := []int32{Unassigned, 0, 0, 1, 1}
	ifc := Apply(n, labels, 2)

	sizes := ifc.Sizes()
	if sizes[0] != 2 || sizes[1] != 2 {
		t.Errorf("Expected sizes [2 2], got %v", sizes)
	}
}

func TestApplyRemapped_TranslatesIDs(t *testing.T) {
	n := setupCutNetwork(t)

	// Derived ID space shifts everything down by one and drops the
	// constant: a→0, b→1, c→2, d→3.
	idMap := []int32{-1, 0, 1, 2, 3}
	labels := []int32{Unassigned, 0, 0, 1, 1}

	ifc, remapped := ApplyRemapped(n, labels, idMap, 4, 2)

	wantLabels := []int32{0, 0, 1, 1}
	for i, want := range wantLabels {
		if remapped[i] != want {
			t.Errorf("remapped[%d]: expected %d, got %d", i, want, remapped[i])
		}
	}

	in1 := ifc.Inputs(1)
	if len(in1) != 2 || in1[0] != 0 || in1[1] != 1 {
		t.Errorf("Expected inputs[1]=[0 1] in the derived ID space, got %v", in1)
	}
	out1 := ifc.Outputs(1)
	if len(out1) != 1 || out1[0] != 2 {
		t.Errorf("Expected outputs[1]=[2] in the derived ID space, got %v", out1)
	}
	if ifc.CutEdges() != 2 {
		t.Errorf("Expected 2 cut edges, got %d", ifc.CutEdges())
	}
}

func TestApplyRemapped_SkipsUnmappedObjects(t *testing.T) {
	n := setupCutNetwork(t)

	// Only a and c have counterparts in the derived space.
	idMap := []int32{-1, 0, -1, 1, -1}
	labels := []int32{Unassigned, 0, 0, 1, 1}

	ifc, remapped := ApplyRemapped(n, labels, idMap, 2, 2)

	if remapped[0] != 0 || remapped[1] != 1 {
		t.Errorf("Expected remapped labels [0 1], got %v", remapped)
	}
	// b has no counterpart, so only a registers as a crossing into side 1.
	in1 := ifc.Inputs(1)
	if len(in1) != 1 || in1[0] != 0 {
		t.Errorf("Expected inputs[1]=[0], got %v", in1)
	}
}
