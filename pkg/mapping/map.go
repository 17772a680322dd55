package mapping

import (
	"math"
	"time"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/logging"
)

// MapResult summarizes one mapping run.
type MapResult struct {
	SessionID string
	Strategy  string
	Delay     float32
	Area      int
	Nodes     int
	Fallbacks int
}

// MapNetwork runs the mapper: one delay-oriented pass followed by the
// configured number of area-flow refinement passes. The strategy
// (partition-aware or standard) is decided here, once for the whole run.
func (m *Manager) MapNetwork(sess *Session) (*MapResult, error) {
	aware := sess.Active()
	strategy := "standard"
	if aware {
		strategy = "partition-aware"
	}
	sessionID := ""
	if sess != nil {
		sessionID = sess.ID
	}

	m.fallbacks = 0

	m.logger.Info("mapping started",
		logging.Component("mapping"),
		logging.Session(sessionID),
		logging.String("strategy", strategy),
		logging.LutSize(m.params.LutSize),
		logging.Count(len(m.ands)))

	var delay float32
	var area int
	for pass := 0; pass <= m.params.FlowIters; pass++ {
		mode := 0
		name := "delay"
		if pass > 0 {
			mode = 1
			name = "flow"
		}

		start := time.Now()
		m.runPass(sess, mode, pass == 0, aware)
		delay, area = m.computeRequired()
		elapsed := time.Since(start)

		m.reg.RecordMappingPass(name, float64(delay), area, elapsed)
		m.logger.Info("mapping pass completed",
			logging.Component("mapping"),
			logging.Session(sessionID),
			logging.String("pass", name),
			logging.Float64("delay", float64(delay)),
			logging.Int("area", area),
			logging.Latency(elapsed))
	}

	return &MapResult{
		SessionID: sessionID,
		Strategy:  strategy,
		Delay:     delay,
		Area:      area,
		Nodes:     len(m.ands),
		Fallbacks: m.fallbacks,
	}, nil
}

// runPass processes every AND node once, in topological order.
func (m *Manager) runPass(sess *Session, mode int, first, aware bool) {
	m.setupLeaves()
	for _, id := range m.ands {
		m.nodes[id].visits = m.nodes[id].fanoutAnds
	}
	for _, id := range m.ands {
		m.mapNode(m.nodes[id], sess, mode, first, aware)
	}
}

// setupLeaves gives the constant and every combinational input its unit cut
// for the pass.
func (m *Manager) setupLeaves() {
	for _, n := range m.nodes {
		if n.IsAnd() {
			continue
		}
		var cut *Cut
		if n.IsConst() {
			cut = &Cut{}
		} else {
			cut = trivialCut(n.ID)
			if m.params.ComputeTruth {
				cut.Truth = trivialTruth()
			}
		}
		n.best = cut
		set := newCutSet(m.params.CutsMax, sortByDelay)
		set.appendCut(cut)
		n.cuts = set
	}
}

// computeRequired rebuilds mapping reference counts from the selected cuts,
// counts the mapped area, and back-propagates required times. Returns the
// arrival of the slowest output and the LUT count.
func (m *Manager) computeRequired() (float32, int) {
	inf := float32(math.MaxFloat32)
	for _, n := range m.nodes {
		n.Required = inf
		if n.IsAnd() {
			n.Refs = 0
		}
	}

	var maxDelay float32
	for _, co := range m.cos {
		driver := m.nodes[co.Driver]
		if driver.best != nil && driver.best.Delay > maxDelay {
			maxDelay = driver.best.Delay
		}
	}

	for _, co := range m.cos {
		driver := m.nodes[co.Driver]
		if driver.Required > maxDelay {
			driver.Required = maxDelay
		}
		if driver.IsAnd() {
			driver.Refs++
		}
	}

	// Reverse topological order: every consumer of a node has a higher
	// mapper ID, so its references and required time are final when the
	// node is reached.
	area := 0
	for i := len(m.ands) - 1; i >= 0; i-- {
		n := m.nodes[m.ands[i]]
		if n.Refs == 0 || n.best == nil {
			continue
		}
		area++
		for _, leaf := range n.best.Leaves {
			if leaf == n.ID {
				continue
			}
			ln := m.nodes[leaf]
			if ln.IsAnd() {
				ln.Refs++
			}
			if r := n.Required - 1; r < ln.Required {
				ln.Required = r
			}
		}
	}

	return maxDelay, area
}
