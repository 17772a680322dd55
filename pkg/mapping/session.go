package mapping

import (
	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
	"github.com/SJZbenxiaohai/my-abc-project/pkg/partition"
)

// Session is the immutable partition view for one mapping run: labels and
// interface sets in mapper-ID space, derived once from a partitioning
// result and discarded with the run. A nil or inactive session makes the
// mapper run its standard strategy.
type Session struct {
	ID         string
	Partitions int
	Labels     []int32
	Ifaces     *partition.Interfaces
}

// NewSession re-keys a partitioning result into the manager's ID space
// through the explicit correspondence table. A failed or single-partition
// result yields an inactive session.
func NewSession(net *aig.Network, m *Manager, res *partition.Result) *Session {
	s := &Session{ID: res.SessionID, Partitions: res.Partitions}
	if !res.Success || res.Partitions < 2 {
		return s
	}
	s.Ifaces, s.Labels = applyRemapped(net, m, res)
	return s
}

func applyRemapped(net *aig.Network, m *Manager, res *partition.Result) (*partition.Interfaces, []int32) {
	ifc, labels := partition.ApplyRemapped(net, res.Labels, m.IDMap(), m.NumObjs(), res.Partitions)
	return ifc, labels
}

// Active reports whether partition constraints apply to this session.
func (s *Session) Active() bool {
	return s != nil && s.Labels != nil && s.Partitions > 1
}

// labelOf returns the partition of a mapper object, partition.Unassigned
// when the session is inactive or the ID is out of range.
func (s *Session) labelOf(id int32) int32 {
	if !s.Active() || id < 0 || int(id) >= len(s.Labels) {
		return partition.Unassigned
	}
	return s.Labels[id]
}

// cutLegal reports whether every leaf of the cut is usable by the target
// partition: same label, free, or registered as one of the target's
// interface inputs.
func (s *Session) cutLegal(c *Cut, target int32) bool {
	if !s.Active() || target < 0 {
		return true
	}
	for _, leaf := range c.Leaves {
		if int(leaf) >= len(s.Labels) {
			continue
		}
		label := s.Labels[leaf]
		if label == partition.Unassigned || label == target {
			continue
		}
		if !s.Ifaces.IsInput(int(target), leaf) {
			return false
		}
	}
	return true
}
