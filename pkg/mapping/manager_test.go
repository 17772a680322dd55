package mapping

import (
	"errors"
	"testing"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
)

// setupTreeNetwork creates: PIs a..d; e = a&b, f = c&d, g = e&f; PO g.
func setupTreeNetwork(t *testing.T) *aig.Network {
	t.Helper()

	n := aig.NewNetwork()
	a := n.AddCI()
	b := n.AddCI()
	c := n.AddCI()
	d := n.AddCI()
	e := n.AddAnd(a, b)
	f := n.AddAnd(c, d)
	g := n.AddAnd(e, f)
	n.AddCO(g)
	return n
}

func TestNewManager_TopologicalIDs(t *testing.T) {
	n := setupTreeNetwork(t)

	m, err := NewManager(n, DefaultParams(), nil, nil)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	// Constant, 4 inputs, 3 AND nodes.
	if m.NumObjs() != 8 {
		t.Errorf("Expected 8 mapper objects, got %d", m.NumObjs())
	}
	if m.NumAnds() != 3 {
		t.Errorf("Expected 3 AND nodes, got %d", m.NumAnds())
	}

	if !m.Node(0).IsConst() {
		t.Error("Mapper ID 0 must be the constant")
	}
	for id := int32(1); id <= 4; id++ {
		if !m.Node(id).IsCI() {
			t.Errorf("Mapper ID %d must be an input", id)
		}
	}
	for id := int32(5); id <= 7; id++ {
		if !m.Node(id).IsAnd() {
			t.Errorf("Mapper ID %d must be an AND node", id)
		}
	}

	// Fanins stay below their node in the mapper order.
	for _, id := range m.ands {
		node := m.Node(id)
		if node.Fanin0 >= id || node.Fanin1 >= id {
			t.Errorf("Node %d has non-topological fanin", id)
		}
	}
}

func TestNewManager_IDMapRoundTrip(t *testing.T) {
	n := setupTreeNetwork(t)

	m, err := NewManager(n, DefaultParams(), nil, nil)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	idMap := m.IDMap()
	if len(idMap) != int(n.ObjNumMax()) {
		t.Fatalf("Expected table length %d, got %d", n.ObjNumMax(), len(idMap))
	}

	seen := make(map[int32]bool)
	n.ForEachObj(func(obj *aig.Object) {
		mapped := idMap[obj.ID]
		if obj.IsCO() {
			if mapped != -1 {
				t.Errorf("Output %d must have no mapper counterpart, got %d", obj.ID, mapped)
			}
			return
		}
		if mapped < 0 || int(mapped) >= m.NumObjs() {
			t.Errorf("Object %d maps out of range: %d", obj.ID, mapped)
			return
		}
		if seen[mapped] {
			t.Errorf("Mapper ID %d assigned twice", mapped)
		}
		seen[mapped] = true
		if got := m.Node(mapped).AigID; got != obj.ID {
			t.Errorf("Correspondence mismatch: mapper %d points back to %d, want %d", mapped, got, obj.ID)
		}
	})
}

func TestNewManager_StructuralRefs(t *testing.T) {
	n := setupTreeNetwork(t)

	m, err := NewManager(n, DefaultParams(), nil, nil)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	// e and f each feed g once; g feeds the output.
	if got := m.Node(5).Refs; got != 1 {
		t.Errorf("Expected 1 ref on e, got %d", got)
	}
	if got := m.Node(7).Refs; got != 1 {
		t.Errorf("Expected 1 ref on g, got %d", got)
	}
}

func TestNewManager_RefusesUnstrashed(t *testing.T) {
	n := aig.NewRawNetwork()
	a := n.AddCI()
	b := n.AddCI()
	n.AddCO(n.AddAnd(a, b))

	_, err := NewManager(n, DefaultParams(), nil, nil)
	if !errors.Is(err, aig.ErrNotStrashed) {
		t.Errorf("Expected ErrNotStrashed, got %v", err)
	}
}

func TestNewManager_RefusesEmptyNetwork(t *testing.T) {
	n := aig.NewNetwork()
	n.AddCI()

	_, err := NewManager(n, DefaultParams(), nil, nil)
	if !errors.Is(err, ErrEmptyNetwork) {
		t.Errorf("Expected ErrEmptyNetwork, got %v", err)
	}
}

func TestNewManager_RejectsBadParams(t *testing.T) {
	n := setupTreeNetwork(t)

	p := DefaultParams()
	p.LutSize = 1
	if _, err := NewManager(n, p, nil, nil); !errors.Is(err, ErrBadLutSize) {
		t.Errorf("Expected ErrBadLutSize, got %v", err)
	}

	p = DefaultParams()
	p.LutSize = 8
	p.ComputeTruth = true
	if _, err := NewManager(n, p, nil, nil); !errors.Is(err, ErrTruthUnsupported) {
		t.Errorf("Expected ErrTruthUnsupported, got %v", err)
	}
}
