package partition

import (
	"sort"

	"github.com/SJZbenxiaohai/my-abc-project/pkg/aig"
)

// Interfaces holds, per partition, the sets of boundary-crossing signals:
// inputs are signals produced by another partition and consumed here,
// outputs are signals produced here and consumed elsewhere. Derived once by
// Apply and read-only afterwards.
type Interfaces struct {
	partitions int
	inputs     []map[int32]struct{}
	outputs    []map[int32]struct{}
	sizes      []int
}

func newInterfaces(partitions int) *Interfaces {
	ifc := &Interfaces{
		partitions: partitions,
		inputs:     make([]map[int32]struct{}, partitions),
		outputs:    make([]map[int32]struct{}, partitions),
		sizes:      make([]int, partitions),
	}
	for p := 0; p < partitions; p++ {
		ifc.inputs[p] = make(map[int32]struct{})
		ifc.outputs[p] = make(map[int32]struct{})
	}
	return ifc
}

// NumPartitions returns the partition count.
func (ifc *Interfaces) NumPartitions() int {
	return ifc.partitions
}

// IsInput reports whether vertex id is a registered input of partition p.
func (ifc *Interfaces) IsInput(p int, id int32) bool {
	if p < 0 || p >= ifc.partitions {
		return false
	}
	_, ok := ifc.inputs[p][id]
	return ok
}

// Inputs returns the sorted input set of partition p.
func (ifc *Interfaces) Inputs(p int) []int32 {
	return sortedIDs(ifc.inputs[p])
}

// Outputs returns the sorted output set of partition p.
func (ifc *Interfaces) Outputs(p int) []int32 {
	return sortedIDs(ifc.outputs[p])
}

// Sizes returns the number of bucketed vertices per partition.
func (ifc *Interfaces) Sizes() []int {
	out := make([]int, len(ifc.sizes))
	copy(out, ifc.sizes)
	return out
}

// CutEdges returns the total crossing-signal count: each crossing signal is
// counted once per consuming partition.
func (ifc *Interfaces) CutEdges() int {
	total := 0
	for p := 0; p < ifc.partitions; p++ {
		total += len(ifc.inputs[p])
	}
	return total
}

// registerCrossing records a signal produced in partition from and consumed
// in partition to. Insertion is idempotent.
func (ifc *Interfaces) registerCrossing(id int32, from, to int32) {
	ifc.outputs[from][id] = struct{}{}
	ifc.inputs[to][id] = struct{}{}
}

func sortedIDs(set map[int32]struct{}) []int32 {
	out := make([]int32, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// labelOf returns the partition label of id, or Unassigned when the id falls
// outside the label vector (tolerated: assignments may be partial).
func labelOf(labels []int32, id int32) int32 {
	if id < 0 || int(id) >= len(labels) {
		return Unassigned
	}
	return labels[id]
}

func inRange(label int32, partitions int) bool {
	return label >= 0 && int(label) < partitions
}

// Apply derives per-partition interface sets from a label vector over the
// network's own IDs. The passes run in a fixed order so the interface sets
// are complete before anything reads them:
//
//  1. bucket vertices by label,
//  2. primary inputs consumed across a boundary,
//  3. internal-node fanins crossing a boundary,
//  4. drivers of non-latch primary outputs,
//
// then the cut statistic is the sum of all input-set sizes.
func Apply(net *aig.Network, labels []int32, partitions int) *Interfaces {
	ifc := newInterfaces(partitions)

	net.ForEachObj(func(obj *aig.Object) {
		if l := labelOf(labels, obj.ID); inRange(l, partitions) {
			ifc.sizes[l]++
		}
	})

	for _, piID := range net.CIs() {
		piLabel := labelOf(labels, piID)
		if !inRange(piLabel, partitions) {
			continue
		}
		for _, fanoutID := range net.Obj(piID).Fanouts() {
			foLabel := labelOf(labels, fanoutID)
			if inRange(foLabel, partitions) && foLabel != piLabel {
				ifc.registerCrossing(piID, piLabel, foLabel)
			}
		}
	}

	net.ForEachObj(func(obj *aig.Object) {
		if !obj.IsAnd() {
			return
		}
		nodeLabel := labelOf(labels, obj.ID)
		if !inRange(nodeLabel, partitions) {
			return
		}
		for _, fanin := range []aig.Lit{obj.Fanin0, obj.Fanin1} {
			faninID := fanin.ID()
			faninLabel := labelOf(labels, faninID)
			if inRange(faninLabel, partitions) && faninLabel != nodeLabel {
				ifc.registerCrossing(faninID, faninLabel, nodeLabel)
			}
		}
	})

	for _, coID := range net.COs() {
		co := net.Obj(coID)
		if co.IsLatch() {
			continue
		}
		driverID := co.Fanin0.ID()
		driverLabel := labelOf(labels, driverID)
		if inRange(driverLabel, partitions) {
			// The output leaves its partition regardless of the CO's own
			// label: COs are not hypergraph-partitioned internal nodes.
			ifc.outputs[driverLabel][driverID] = struct{}{}
		}
	}

	return ifc
}

// ApplyRemapped repeats the interface derivation in a second ID space, keyed
// through an explicit correspondence table: idMap[networkID] is the derived
// ID, negative for objects with no counterpart. destCap bounds the derived
// ID space. The remapped label vector is returned alongside the interfaces.
func ApplyRemapped(net *aig.Network, labels []int32, idMap []int32, destCap int, partitions int) (*Interfaces, []int32) {
	remapped := make([]int32, destCap)
	for i := range remapped {
		remapped[i] = Unassigned
	}

	mapID := func(id int32) int32 {
		if id < 0 || int(id) >= len(idMap) {
			return -1
		}
		return idMap[id]
	}

	net.ForEachObj(func(obj *aig.Object) {
		mapped := mapID(obj.ID)
		if mapped < 0 || int(mapped) >= destCap {
			return
		}
		remapped[mapped] = labelOf(labels, obj.ID)
	})

	ifc := newInterfaces(partitions)
	for p := range remapped {
		if inRange(remapped[p], partitions) {
			ifc.sizes[remapped[p]]++
		}
	}

	for _, piID := range net.CIs() {
		piMapped := mapID(piID)
		piLabel := labelOf(labels, piID)
		if piMapped < 0 || !inRange(piLabel, partitions) {
			continue
		}
		for _, fanoutID := range net.Obj(piID).Fanouts() {
			foLabel := labelOf(labels, fanoutID)
			if inRange(foLabel, partitions) && foLabel != piLabel {
				ifc.registerCrossing(piMapped, piLabel, foLabel)
			}
		}
	}

	net.ForEachObj(func(obj *aig.Object) {
		if !obj.IsAnd() {
			return
		}
		nodeLabel := labelOf(labels, obj.ID)
		if !inRange(nodeLabel, partitions) {
			return
		}
		for _, fanin := range []aig.Lit{obj.Fanin0, obj.Fanin1} {
			faninID := fanin.ID()
			faninMapped := mapID(faninID)
			faninLabel := labelOf(labels, faninID)
			if faninMapped >= 0 && inRange(faninLabel, partitions) && faninLabel != nodeLabel {
				ifc.registerCrossing(faninMapped, faninLabel, nodeLabel)
			}
		}
	})

	for _, coID := range net.COs() {
		co := net.Obj(coID)
		if co.IsLatch() {
			continue
		}
		driverID := co.Fanin0.ID()
		driverMapped := mapID(driverID)
		driverLabel := labelOf(labels, driverID)
		if driverMapped >= 0 && inRange(driverLabel, partitions) {
			ifc.outputs[driverLabel][driverMapped] = struct{}{}
		}
	}

	return ifc, remapped
}
