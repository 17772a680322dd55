package mapping

import (
	"fmt"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/logging"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/metrics"
)

// coRef ties one combinational output to its driver in mapper-ID space.
type coRef struct {
	AigID  int32
	Driver int32
	Compl  bool
	Latch  bool
}

// Manager holds the mapper's view of one network: nodes in its own dense
// topological ID space, the correspondence table back to the network's IDs,
// and the per-node state the passes update.
type Manager struct {
	params Params
	logger logging.Logger
	reg    *metrics.Registry

	nodes []*Node
	cis   []int32
	ands  []int32
	cos   []coRef

	// idMap[networkID] is the mapper ID, -1 for objects with no mapper
	// counterpart (combinational outputs and unreachable entries).
	idMap []int32

	fallbacks int
}

// NewManager builds the mapper objects from a structurally hashed network.
// Constant first, then combinational inputs, then AND nodes in network
// order, which is topological after hashing.
func NewManager(net *aig.Network, params Params, logger logging.Logger, reg *metrics.Registry) (*Manager, error) {
	if err := params.Check(); err != nil {
		return nil, err
	}
	if !net.IsStrashed() {
		return nil, &aig.NetworkError{Op: "mapping.NewManager", Cause: aig.ErrNotStrashed}
	}
	if len(net.COs()) == 0 {
		return nil, ErrEmptyNetwork
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	m := &Manager{
		params: params,
		logger: logger,
		reg:    reg,
		idMap:  make([]int32, net.ObjNumMax()),
	}
	for i := range m.idMap {
		m.idMap[i] = -1
	}

	addNode := func(aigID int32, typ nodeType) *Node {
		n := &Node{
			ID:     int32(len(m.nodes)),
			AigID:  aigID,
			Type:   typ,
			Fanin0: -1,
			Fanin1: -1,
		}
		m.nodes = append(m.nodes, n)
		m.idMap[aigID] = n.ID
		return n
	}

	addNode(0, nodeConst)
	for _, ciID := range net.CIs() {
		ci := addNode(ciID, nodeCI)
		m.cis = append(m.cis, ci.ID)
	}

	net.ForEachObj(func(obj *aig.Object) {
		if !obj.IsAnd() {
			return
		}
		n := addNode(obj.ID, nodeAnd)
		f0 := m.idMap[obj.Fanin0.ID()]
		f1 := m.idMap[obj.Fanin1.ID()]
		if f0 < 0 || f1 < 0 {
			// Cannot happen in a hashed network visited in ID order.
			panic(fmt.Sprintf("fanin of node %d not yet mapped", obj.ID))
		}
		n.Fanin0, n.Fanin1 = f0, f1
		n.Compl0, n.Compl1 = obj.Fanin0.Compl(), obj.Fanin1.Compl()
		n.Level = maxLevel(m.nodes[f0].Level, m.nodes[f1].Level) + 1
		m.nodes[f0].fanoutAnds++
		m.nodes[f1].fanoutAnds++
		m.nodes[f0].Refs++
		m.nodes[f1].Refs++
		m.ands = append(m.ands, n.ID)
	})

	for _, coID := range net.COs() {
		co := net.Obj(coID)
		driver := m.idMap[co.Fanin0.ID()]
		if driver < 0 {
			continue
		}
		m.nodes[driver].Refs++
		m.cos = append(m.cos, coRef{
			AigID:  coID,
			Driver: driver,
			Compl:  co.Fanin0.Compl(),
			Latch:  co.IsLatch(),
		})
	}

	return m, nil
}

func maxLevel(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// NumObjs returns the mapper object count.
func (m *Manager) NumObjs() int {
	return len(m.nodes)
}

// NumAnds returns the AND-node count.
func (m *Manager) NumAnds() int {
	return len(m.ands)
}

// Node returns the mapper object with the given mapper ID, nil when out of
// range.
func (m *Manager) Node(id int32) *Node {
	if id < 0 || int(id) >= len(m.nodes) {
		return nil
	}
	return m.nodes[id]
}

// IDMap returns a copy of the network-ID to mapper-ID correspondence table.
func (m *Manager) IDMap() []int32 {
	out := make([]int32, len(m.idMap))
	copy(out, m.idMap)
	return out
}
