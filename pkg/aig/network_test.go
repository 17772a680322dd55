package aig

import (
	"testing"
)

// buildSmallNetwork creates: PIs a, b; c = a & b; PO driven by c.
func buildSmallNetwork(t *testing.T) (*Network, Lit, Lit, Lit) {
	t.Helper()

	n := NewNetwork()
	a := n.AddCI()
	b := n.AddCI()
	c := n.AddAnd(a, b)
	n.AddCO(c)
	return n, a, b, c
}

func TestNetwork_DenseIDs(t *testing.T) {
	n, a, b, c := buildSmallNetwork(t)

	if a.ID() != 1 || b.ID() != 2 || c.ID() != 3 {
		t.Errorf("Expected IDs 1,2,3, got %d,%d,%d", a.ID(), b.ID(), c.ID())
	}
	if n.ObjNumMax() != 5 {
		t.Errorf("Expected ObjNumMax 5 (const + 2 PIs + AND + PO), got %d", n.ObjNumMax())
	}
	if !n.Obj(0).IsConst() {
		t.Error("Object 0 should be the constant node")
	}
}

func TestNetwork_StructuralHashing(t *testing.T) {
	n := NewNetwork()
	a := n.AddCI()
	b := n.AddCI()

	c1 := n.AddAnd(a, b)
	c2 := n.AddAnd(b, a) // same gate, swapped fanins

	if c1 != c2 {
		t.Errorf("Structural hashing failed: %d != %d", c1, c2)
	}
	if n.NodeNum() != 1 {
		t.Errorf("Expected 1 AND gate, got %d", n.NodeNum())
	}
	if !n.IsStrashed() {
		t.Error("Hashed network should report IsStrashed")
	}
}

func TestNetwork_ConstantFolding(t *testing.T) {
	n := NewNetwork()
	a := n.AddCI()

	if got := n.AddAnd(a, ConstFalse); got != ConstFalse {
		t.Errorf("a & 0 should fold to const false, got %d", got)
	}
	if got := n.AddAnd(a, ConstTrue); got != a {
		t.Errorf("a & 1 should fold to a, got %d", got)
	}
	if got := n.AddAnd(a, a); got != a {
		t.Errorf("a & a should fold to a, got %d", got)
	}
	if got := n.AddAnd(a, a.Not()); got != ConstFalse {
		t.Errorf("a & !a should fold to const false, got %d", got)
	}
	if n.NodeNum() != 0 {
		t.Errorf("Folding should create no gates, got %d", n.NodeNum())
	}
}

func TestNetwork_RawNetworkSkipsHashing(t *testing.T) {
	n := NewRawNetwork()
	a := n.AddCI()
	b := n.AddCI()

	c1 := n.AddAnd(a, b)
	c2 := n.AddAnd(a, b)

	if c1 == c2 {
		t.Error("Raw network should not hash duplicate gates")
	}
	if n.IsStrashed() {
		t.Error("Raw network should not report IsStrashed")
	}
}

func TestNetwork_Fanouts(t *testing.T) {
	n := NewNetwork()
	a := n.AddCI()
	b := n.AddCI()
	c := n.AddAnd(a, b)
	d := n.AddAnd(a, c.Not())
	n.AddCO(d)

	aFanouts := n.Obj(a.ID()).Fanouts()
	if len(aFanouts) != 2 || aFanouts[0] != c.ID() || aFanouts[1] != d.ID() {
		t.Errorf("Expected a fanouts [%d %d], got %v", c.ID(), d.ID(), aFanouts)
	}
	if n.Obj(c.ID()).Refs() != 1 {
		t.Errorf("Expected c refs 1, got %d", n.Obj(c.ID()).Refs())
	}
}

func TestNetwork_ComputeLevels(t *testing.T) {
	n := NewNetwork()
	a := n.AddCI()
	b := n.AddCI()
	c := n.AddAnd(a, b)
	d := n.AddAnd(c, b.Not())
	po := n.AddCO(d)

	max := n.ComputeLevels()

	if max != 2 {
		t.Errorf("Expected max level 2, got %d", max)
	}
	if n.Obj(a.ID()).Level != 0 {
		t.Errorf("Expected PI level 0, got %d", n.Obj(a.ID()).Level)
	}
	if n.Obj(c.ID()).Level != 1 || n.Obj(d.ID()).Level != 2 {
		t.Errorf("Expected AND levels 1,2, got %d,%d", n.Obj(c.ID()).Level, n.Obj(d.ID()).Level)
	}
	if n.Obj(po).Level != 2 {
		t.Errorf("Expected CO level 2, got %d", n.Obj(po).Level)
	}
	if !n.HasLevels() {
		t.Error("HasLevels should be true after ComputeLevels")
	}
}

func TestNetwork_LatchBoundaries(t *testing.T) {
	n := NewNetwork()
	a := n.AddCI()
	q := n.AddLatchOutput()
	c := n.AddAnd(a, q)
	n.AddCO(c)
	li := n.AddLatchInput(c)

	if !n.Obj(q.ID()).IsCI() || n.Obj(q.ID()).IsPI() {
		t.Error("Latch output should be a CI but not a PI")
	}
	if !n.Obj(li).IsLatch() {
		t.Error("Latch input should be a latch-type output")
	}
	if n.PiNum() != 1 || n.PoNum() != 1 {
		t.Errorf("Expected 1 PI and 1 PO, got %d and %d", n.PiNum(), n.PoNum())
	}
}
