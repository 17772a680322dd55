package hypergraph

import (
	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/logging"
)

// BuildTimingAware builds the same hypergraph as Build but weights vertices
// and hyperedges by timing criticality, so the partitioner avoids cutting
// likely critical paths. Topological levels are computed on demand.
func BuildTimingAware(net *aig.Network, logger logging.Logger) (*Hypergraph, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if !net.IsStrashed() {
		return nil, &aig.NetworkError{Op: "hypergraph.BuildTimingAware", Cause: aig.ErrNotStrashed}
	}

	if !net.HasLevels() {
		net.ComputeLevels()
	}
	maxLevel := net.MaxLevel()
	if maxLevel == 0 {
		maxLevel = 1
	}

	timer := logging.StartTimer(logger, "timing-aware hypergraph built",
		logging.Component("hypergraph"))
	h := New(int(net.ObjNumMax()))

	net.ForEachObj(func(obj *aig.Object) {
		if obj.IsConst() {
			return
		}
		h.setVertexWeight(obj.ID, nodeCriticality(obj, maxLevel))

		edge, weight := collectWeightedEdge(net, obj, maxLevel)
		if edge != nil {
			h.addEdge(edge, weight)
		}
	})

	timer.End(
		logging.Vertices(h.NumVertices()),
		logging.Edges(h.NumEdges()),
		logging.Pins(h.Pins()),
		logging.Int32("max_level", maxLevel))

	return h, nil
}

// nodeCriticality scores a node 1..10 from its normalized topological depth,
// boosted when the fanout count crosses small thresholds.
func nodeCriticality(obj *aig.Object, maxLevel int32) int32 {
	criticality := float64(obj.Level) / float64(maxLevel)

	fanouts := len(obj.Fanouts())
	switch {
	case fanouts > 10:
		criticality *= 1.5
	case fanouts > 5:
		criticality *= 1.2
	case fanouts > 2:
		criticality *= 1.1
	}

	return clampWeight(int32(criticality*9) + 1)
}

// edgeCriticality scores a driver→consumer connection. Only connections where
// the consumer sits exactly one level above the driver can lie on a critical
// path; everything else scores the minimum.
func edgeCriticality(driver, consumer *aig.Object, maxLevel int32) int32 {
	if consumer.Level != driver.Level+1 {
		return MinWeight
	}
	criticality := float64(consumer.Level) / float64(maxLevel)
	return clampWeight(int32(criticality*5) + 1)
}

// collectWeightedEdge mirrors collectEdge but also derives the edge weight:
// the maximum consumer edge criticality for fanout edges, and always the
// maximum weight for primary-output edges.
func collectWeightedEdge(net *aig.Network, obj *aig.Object, maxLevel int32) ([]int32, int32) {
	if !obj.IsCO() {
		var edge []int32
		weight := int32(MinWeight)
		for _, fanoutID := range obj.Fanouts() {
			fanout := net.Obj(fanoutID)
			if fanout.IsAnd() || (fanout.IsCO() && !fanout.IsLatch()) {
				if edge == nil {
					edge = append(edge, obj.ID)
				}
				edge = append(edge, fanoutID)
				if w := edgeCriticality(obj, fanout, maxLevel); w > weight {
					weight = w
				}
			}
		}
		return edge, weight
	}

	if obj.IsLatch() {
		return nil, 0
	}
	driver := net.Obj(obj.Fanin0.ID())
	if driver.IsConst() {
		return nil, 0
	}
	// Output connections are always critical.
	return []int32{obj.ID, driver.ID}, MaxWeight
}

func clampWeight(w int32) int32 {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}
