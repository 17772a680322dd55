package mapping

// nodeType classifies mapper objects. Primary outputs are not mapper nodes;
// they are tracked as driver references on the Manager.
type nodeType uint8

const (
	nodeConst nodeType = iota
	nodeCI
	nodeAnd
)

// Node is one mapper object. IDs are dense and assigned by the Manager in
// topological order (constant, combinational inputs, AND nodes), so they
// generally differ from the source network's object IDs.
//
// Refs counts references in the currently selected mapping and is rebuilt
// by the required-time scan after every pass. EstRefs is the smoothed
// estimate used by area-flow costing.
type Node struct {
	ID     int32
	AigID  int32
	Type   nodeType
	Fanin0 int32
	Fanin1 int32
	Compl0 bool
	Compl1 bool
	Level  int32

	Refs     int32
	EstRefs  float32
	Required float32
	SkipCut  bool

	fanoutAnds int32
	visits     int32
	best       *Cut
	cuts       *cutSet
}

func (n *Node) IsConst() bool {
	return n.Type == nodeConst
}

func (n *Node) IsCI() bool {
	return n.Type == nodeCI
}

func (n *Node) IsAnd() bool {
	return n.Type == nodeAnd
}

// BestCut returns the node's selected cut, nil before the first pass.
func (n *Node) BestCut() *Cut {
	return n.best
}
