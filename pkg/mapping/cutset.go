package mapping

// sortMode selects the primary cut-ranking criterion for a pass.
type sortMode int

const (
	sortByDelay sortMode = iota
	sortByFlow
)

// cutSet is the bounded priority storage used while generating one node's
// cuts. At most max cuts survive, kept in increasing cost order; one extra
// slot holds the trivial cut appended after selection.
type cutSet struct {
	cuts []*Cut
	max  int
	mode sortMode
}

func newCutSet(max int, mode sortMode) *cutSet {
	return &cutSet{
		cuts: make([]*Cut, 0, max+1),
		max:  max,
		mode: mode,
	}
}

func (s *cutSet) size() int {
	return len(s.cuts)
}

func (s *cutSet) best() *Cut {
	if len(s.cuts) == 0 {
		return nil
	}
	return s.cuts[0]
}

// better reports whether a ranks strictly before b under the set's mode.
// Delay mode breaks ties on area then leaf count; flow mode ranks area
// first so refinement passes trade delay slack for sharing.
func (s *cutSet) better(a, b *Cut) bool {
	if s.mode == sortByFlow {
		if a.Area != b.Area {
			return a.Area < b.Area
		}
		if a.Delay != b.Delay {
			return a.Delay < b.Delay
		}
	} else {
		if a.Delay != b.Delay {
			return a.Delay < b.Delay
		}
		if a.Area != b.Area {
			return a.Area < b.Area
		}
	}
	return len(a.Leaves) < len(b.Leaves)
}

// filtered reports whether cut is dominated by a stored cut that is no
// worse in cost, and drops any stored cuts the new cut dominates.
func (s *cutSet) filtered(cut *Cut) bool {
	for _, stored := range s.cuts {
		if stored.dominates(cut) && !s.better(cut, stored) {
			return true
		}
	}
	kept := s.cuts[:0]
	for _, stored := range s.cuts {
		if cut.dominates(stored) && !s.better(stored, cut) {
			continue
		}
		kept = append(kept, stored)
	}
	s.cuts = kept
	return false
}

// insert places cut in cost order, evicting the worst cut when the set is
// full.
func (s *cutSet) insert(cut *Cut) {
	pos := len(s.cuts)
	for pos > 0 && s.better(cut, s.cuts[pos-1]) {
		pos--
	}
	if pos == s.max {
		return
	}
	s.cuts = append(s.cuts, nil)
	copy(s.cuts[pos+1:], s.cuts[pos:])
	s.cuts[pos] = cut
	if len(s.cuts) > s.max {
		s.cuts = s.cuts[:s.max]
	}
}

// appendCut adds a cut at the end without ranking; used for the trivial cut
// appended after selection.
func (s *cutSet) appendCut(cut *Cut) {
	s.cuts = append(s.cuts, cut)
}
