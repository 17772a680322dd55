package mapping

import (
	"github.com/SJZbenxiaohai/my-abc-project/pkg/logging"
)

// mapNode generates the cut set of one AND node and commits its best cut.
// mode 0 is the initial delay pass, mode 1 an area-flow refinement pass.
// aware enables partition legality filtering; it is decided once per pass,
// never per node.
//
// Topological order is a hard precondition: both fanins must have been
// processed in this pass. A violated precondition is recovered by the
// standard routine on the fanins' last committed cuts.
func (m *Manager) mapNode(n *Node, sess *Session, mode int, first, aware bool) {
	if mode == 0 {
		n.EstRefs = float32(n.Refs)
	} else {
		n.EstRefs = (2*n.EstRefs + float32(n.Refs)) / 3
	}

	if mode != 0 && n.Refs > 0 {
		m.cutAreaDeref(n.best)
	}

	f0 := m.nodes[n.Fanin0]
	f1 := m.nodes[n.Fanin1]

	if aware && (f0.cuts == nil || f1.cuts == nil) {
		m.logger.Warn("fanin cut sets missing, using standard cut generation",
			logging.Component("mapping"),
			logging.NodeID(n.ID))
		m.fallbacks++
		m.reg.RecordMappedNode("partition-aware", true)
		m.generateCuts(n, nil, mode, first)
		return
	}

	var target int32 = -1
	if aware {
		target = sess.labelOf(n.ID)
		if target >= 0 {
			// Fanins on the far side are frozen at the boundary before
			// merging: consumers here may only reference the node itself,
			// and its reference estimate is seeded so area flow never
			// divides by zero.
			for _, f := range [2]*Node{f0, f1} {
				fLabel := sess.labelOf(f.ID)
				if fLabel >= 0 && fLabel != target {
					m.LimitToTrivial(f)
				}
			}
		}
	}

	if aware {
		m.reg.RecordMappedNode("partition-aware", false)
	} else {
		m.reg.RecordMappedNode("standard", false)
	}
	m.generateCuts(n, sessionTarget(sess, target), mode, first)
}

// sessionTarget packages the legality check for generateCuts; nil disables
// partition filtering.
func sessionTarget(sess *Session, target int32) func(*Cut) bool {
	if !sess.Active() || target < 0 {
		return nil
	}
	return func(c *Cut) bool { return sess.cutLegal(c, target) }
}

// generateCuts runs the merge loop for one node and commits the result.
// legal, when non-nil, discards merged cuts that cross an unregistered
// partition boundary before any cost computation.
func (m *Manager) generateCuts(n *Node, legal func(*Cut) bool, mode int, first bool) {
	f0 := m.nodes[n.Fanin0]
	f1 := m.nodes[n.Fanin1]

	sort := sortByDelay
	if mode != 0 {
		sort = sortByFlow
	}
	set := newCutSet(m.params.CutsMax, sort)

	// Re-seed the set with the previously selected cut so refinement never
	// loses it.
	if !first && n.best != nil {
		prev := n.best.clone()
		prev.Delay = m.cutDelay(prev)
		prev.Area = m.cutAreaFlow(prev)
		if prev.Delay != infeasibleDelay && (!m.params.Preprocess || prev.NumLeaves() <= 1) {
			set.insert(prev)
		}
	}

	for _, c0 := range m.faninCuts(f0) {
		for _, c1 := range m.faninCuts(f1) {
			if !signFeasible(c0, c1, m.params.LutSize) {
				continue
			}
			merged, ok := mergeOrdered(c0, c1, m.params.LutSize)
			if !ok {
				continue
			}
			if legal != nil && !legal(merged) {
				continue
			}
			if !m.params.SkipCutFilter && set.filtered(merged) {
				continue
			}
			if m.params.ComputeTruth {
				merged.Truth = computeTruth(merged, c0, c1, n.Compl0, n.Compl1)
			}
			merged.Delay = m.cutDelay(merged)
			if merged.Delay == infeasibleDelay {
				continue
			}
			// Area flow throughout: exact reference counts are unreliable
			// across partition boundaries.
			merged.Area = m.cutAreaFlow(merged)
			set.insert(merged)
		}
	}

	// A node always keeps a usable cut.
	if set.size() == 0 {
		set.appendCut(m.makeTrivial(n))
	}

	best := set.best()
	if mode == 0 || best.Delay <= n.Required+m.params.Epsilon {
		n.best = best.clone()
	}

	if !n.SkipCut && n.best.NumLeaves() > 1 {
		triv := trivialCut(n.ID)
		triv.Delay = n.best.Delay
		triv.Area = 1
		if m.params.ComputeTruth {
			triv.Truth = trivialTruth()
		}
		set.appendCut(triv)
	}

	if mode != 0 && n.Refs > 0 {
		m.cutAreaRef(n.best)
	}

	n.cuts = set
	m.releaseFaninCutSets(n)
}

// faninCuts returns the cut candidates of one fanin, tolerating a released
// cut set by falling back to the committed best cut.
func (m *Manager) faninCuts(f *Node) []*Cut {
	if f.cuts != nil {
		return f.cuts.cuts
	}
	if f.best != nil {
		return []*Cut{f.best}
	}
	triv := trivialCut(f.ID)
	triv.Delay = 0
	if m.params.ComputeTruth {
		triv.Truth = trivialTruth()
	}
	return []*Cut{triv}
}

// makeTrivial synthesizes the single-leaf recovery cut for a node whose
// merge loop produced nothing.
func (m *Manager) makeTrivial(n *Node) *Cut {
	triv := trivialCut(n.ID)
	f0 := m.nodes[n.Fanin0]
	f1 := m.nodes[n.Fanin1]
	arrival := float32(0)
	for _, f := range [2]*Node{f0, f1} {
		if f.best != nil && f.best.Delay > arrival {
			arrival = f.best.Delay
		}
	}
	triv.Delay = arrival + 1
	triv.Area = 1
	if m.params.ComputeTruth {
		triv.Truth = trivialTruth()
	}
	return triv
}

// cutDelay is the unit-delay arrival of a cut: one level above the slowest
// leaf. Returns the infeasible sentinel when a leaf has no committed cut.
func (m *Manager) cutDelay(c *Cut) float32 {
	delay := float32(0)
	for _, leaf := range c.Leaves {
		ln := m.nodes[leaf]
		if ln.best == nil {
			return infeasibleDelay
		}
		if ln.best.Delay < 0 {
			return infeasibleDelay
		}
		if ln.best.Delay > delay {
			delay = ln.best.Delay
		}
	}
	return delay + 1
}

// cutAreaFlow is the sharing-insensitive cost: one LUT plus each logic
// leaf's flow divided by its estimated references.
func (m *Manager) cutAreaFlow(c *Cut) float32 {
	flow := float32(1)
	for _, leaf := range c.Leaves {
		ln := m.nodes[leaf]
		if !ln.IsAnd() || ln.best == nil {
			continue
		}
		refs := ln.EstRefs
		if refs <= m.params.Epsilon {
			refs = 1
		}
		flow += ln.best.Area / refs
	}
	return flow
}

// cutAreaDeref removes a selected cut's cone from the exact-area reference
// counts, returning the area released.
func (m *Manager) cutAreaDeref(c *Cut) int {
	area := 1
	for _, leaf := range c.Leaves {
		ln := m.nodes[leaf]
		if !ln.IsAnd() || ln.best == c {
			continue
		}
		ln.Refs--
		if ln.Refs == 0 && ln.best != nil {
			area += m.cutAreaDeref(ln.best)
		}
	}
	return area
}

// cutAreaRef adds a selected cut's cone back into the exact-area reference
// counts, returning the area acquired.
func (m *Manager) cutAreaRef(c *Cut) int {
	area := 1
	for _, leaf := range c.Leaves {
		ln := m.nodes[leaf]
		if !ln.IsAnd() || ln.best == c {
			continue
		}
		if ln.Refs == 0 && ln.best != nil {
			area += m.cutAreaRef(ln.best)
		}
		ln.Refs++
	}
	return area
}

// releaseFaninCutSets frees a fanin's temporary cut storage once its last
// AND consumer in this pass has been processed.
func (m *Manager) releaseFaninCutSets(n *Node) {
	for _, fid := range [2]int32{n.Fanin0, n.Fanin1} {
		f := m.nodes[fid]
		if !f.IsAnd() {
			continue
		}
		f.visits--
		if f.visits <= 0 {
			f.cuts = nil
		}
	}
}

// LimitToTrivial freezes a node at a partition boundary: its cut set is
// reduced to the single-leaf cut so consumers on the far side can only
// reference the node itself.
func (m *Manager) LimitToTrivial(n *Node) {
	if n.EstRefs <= m.params.Epsilon {
		if n.Refs > 0 {
			n.EstRefs = float32(n.Refs)
		} else {
			n.EstRefs = 1
		}
	}
	if n.cuts == nil {
		return
	}
	triv := trivialCut(n.ID)
	if n.best != nil {
		triv.Delay = n.best.Delay
	}
	triv.Area = 1
	if m.params.ComputeTruth {
		triv.Truth = trivialTruth()
	}
	n.cuts = newCutSet(m.params.CutsMax, n.cuts.mode)
	n.cuts.appendCut(triv)
}
