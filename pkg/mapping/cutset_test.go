package mapping

import (
	"testing"
)

func TestCutSet_InsertKeepsCostOrder(t *testing.T) {
	s := newCutSet(4, sortByDelay)
	s.insert(&Cut{Leaves: []int32{1, 2}, Delay: 3})
	s.insert(&Cut{Leaves: []int32{3}, Delay: 1})
	s.insert(&Cut{Leaves: []int32{4, 5}, Delay: 2})

	if s.size() != 3 {
		t.Fatalf("Expected 3 cuts, got %d", s.size())
	}
	for i := 1; i < s.size(); i++ {
		if s.cuts[i].Delay < s.cuts[i-1].Delay {
			t.Errorf("Cuts out of order at %d", i)
		}
	}
	if s.best().Delay != 1 {
		t.Errorf("Expected best delay 1, got %v", s.best().Delay)
	}
}

func TestCutSet_EvictsWorstWhenFull(t *testing.T) {
	s := newCutSet(2, sortByDelay)
	s.insert(&Cut{Leaves: []int32{1}, Delay: 5})
	s.insert(&Cut{Leaves: []int32{2}, Delay: 1})
	s.insert(&Cut{Leaves: []int32{3}, Delay: 3})

	if s.size() != 2 {
		t.Fatalf("Expected 2 cuts, got %d", s.size())
	}
	if s.cuts[0].Delay != 1 || s.cuts[1].Delay != 3 {
		t.Errorf("Expected delays [1 3], got [%v %v]", s.cuts[0].Delay, s.cuts[1].Delay)
	}

	// A cut worse than everything stored is dropped outright.
	s.insert(&Cut{Leaves: []int32{4}, Delay: 9})
	if s.size() != 2 || s.cuts[1].Delay != 3 {
		t.Error("Worst-ranked insert must not displace stored cuts")
	}
}

func TestCutSet_FlowModeRanksAreaFirst(t *testing.T) {
	s := newCutSet(4, sortByFlow)
	s.insert(&Cut{Leaves: []int32{1}, Delay: 1, Area: 5})
	s.insert(&Cut{Leaves: []int32{2}, Delay: 4, Area: 2})

	if s.best().Area != 2 {
		t.Errorf("Flow mode must rank by area, best area %v", s.best().Area)
	}
}

func TestCutSet_FilteredByDominatingCut(t *testing.T) {
	s := newCutSet(4, sortByDelay)
	small := &Cut{Leaves: []int32{1, 2}, Sign: cutSign(1) | cutSign(2), Delay: 1}
	s.insert(small)

	superset := &Cut{
		Leaves: []int32{1, 2, 3},
		Sign:   cutSign(1) | cutSign(2) | cutSign(3),
		Delay:  2,
	}
	if !s.filtered(superset) {
		t.Error("Superset with worse cost must be filtered")
	}
}

func TestCutSet_FilterDropsDominatedStoredCuts(t *testing.T) {
	s := newCutSet(4, sortByDelay)
	superset := &Cut{
		Leaves: []int32{1, 2, 3},
		Sign:   cutSign(1) | cutSign(2) | cutSign(3),
		Delay:  2,
	}
	s.insert(superset)

	small := &Cut{Leaves: []int32{1, 2}, Sign: cutSign(1) | cutSign(2), Delay: 1}
	if s.filtered(small) {
		t.Fatal("Better subset must not be filtered")
	}
	if s.size() != 0 {
		t.Errorf("Dominated stored cut must be dropped, %d remain", s.size())
	}
}
