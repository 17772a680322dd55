package hypergraph

import (
	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/logging"
)

// Build walks the network once and emits a hypergraph:
//   - for a non-output node, a hyperedge [node, consumer...] over its
//     AND-gate and primary-output consumers, in discovery order;
//   - for a non-latch primary output, a hyperedge [output, driver] unless the
//     driver is a constant;
//   - latch-type outputs and constants emit nothing.
//
// The network must be in canonical structurally-hashed form; otherwise
// construction is refused with aig.ErrNotStrashed.
func Build(net *aig.Network, logger logging.Logger) (*Hypergraph, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if !net.IsStrashed() {
		return nil, &aig.NetworkError{Op: "hypergraph.Build", Cause: aig.ErrNotStrashed}
	}

	timer := logging.StartTimer(logger, "hypergraph built", logging.Component("hypergraph"))
	h := New(int(net.ObjNumMax()))

	net.ForEachObj(func(obj *aig.Object) {
		if edge := collectEdge(net, obj); edge != nil {
			h.addEdge(edge, MinWeight)
		}
	})

	timer.End(
		logging.Vertices(h.NumVertices()),
		logging.Edges(h.NumEdges()),
		logging.Pins(h.Pins()))

	return h, nil
}

// collectEdge returns the hyperedge rooted at obj, or nil when the node is
// ineligible (constant, latch output, or no qualifying connections).
func collectEdge(net *aig.Network, obj *aig.Object) []int32 {
	if obj.IsConst() {
		return nil
	}

	if !obj.IsCO() {
		var edge []int32
		for _, fanoutID := range obj.Fanouts() {
			fanout := net.Obj(fanoutID)
			if fanout.IsAnd() || (fanout.IsCO() && !fanout.IsLatch()) {
				if edge == nil {
					edge = append(edge, obj.ID)
				}
				edge = append(edge, fanoutID)
			}
		}
		return edge
	}

	if obj.IsLatch() {
		return nil
	}
	driver := net.Obj(obj.Fanin0.ID())
	if driver.IsConst() {
		return nil
	}
	return []int32{obj.ID, driver.ID}
}
