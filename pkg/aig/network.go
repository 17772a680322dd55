// Package aig implements an in-memory And-Inverter Graph: the network
// representation consumed by the hypergraph, partition and mapping packages.
// Object IDs are dense integers starting at 0 (the constant node), so every
// derived structure can index by ID without hashing.
package aig

// Lit is an AIGER-style literal: 2*id + complement bit.
type Lit int32

const (
	// ConstFalse is the constant-false literal (variable 0).
	ConstFalse Lit = 0
	// ConstTrue is the constant-true literal (complement of variable 0).
	ConstTrue Lit = 1
)

// MakeLit builds a literal from an object ID and a complement flag.
func MakeLit(id int32, compl bool) Lit {
	if compl {
		return Lit(2*id + 1)
	}
	return Lit(2 * id)
}

// ID returns the object ID the literal refers to.
func (l Lit) ID() int32 {
	return int32(l) >> 1
}

// Compl reports whether the literal is complemented.
func (l Lit) Compl() bool {
	return l&1 == 1
}

// Not returns the complemented literal.
func (l Lit) Not() Lit {
	return l ^ 1
}

// ObjType classifies network objects.
type ObjType uint8

const (
	// TypeConst is the constant node (always object 0)
	TypeConst ObjType = iota
	// TypeCI is a combinational input (primary input or latch output)
	TypeCI
	// TypeCO is a combinational output (primary output or latch input)
	TypeCO
	// TypeAnd is a two-input AND gate
	TypeAnd
)

// Object is a single network node. COs use Fanin0 only.
type Object struct {
	ID      int32
	Type    ObjType
	Latch   bool // on a CI: driven by a latch; on a CO: feeds a latch
	Fanin0  Lit
	Fanin1  Lit
	Level   int32
	fanouts []int32
}

// IsConst reports whether the object is the constant node.
func (o *Object) IsConst() bool { return o.Type == TypeConst }

// IsCI reports whether the object is a combinational input.
func (o *Object) IsCI() bool { return o.Type == TypeCI }

// IsPI reports whether the object is a true primary input (not a latch output).
func (o *Object) IsPI() bool { return o.Type == TypeCI && !o.Latch }

// IsCO reports whether the object is a combinational output.
func (o *Object) IsCO() bool { return o.Type == TypeCO }

// IsLatch reports whether the object is a latch-type output.
func (o *Object) IsLatch() bool { return o.Type == TypeCO && o.Latch }

// IsAnd reports whether the object is an AND gate.
func (o *Object) IsAnd() bool { return o.Type == TypeAnd }

// FaninNum returns the number of fanins (0 for CIs, 1 for COs, 2 for ANDs).
func (o *Object) FaninNum() int {
	switch o.Type {
	case TypeAnd:
		return 2
	case TypeCO:
		return 1
	default:
		return 0
	}
}

// Fanouts returns the IDs of objects reading this object, in discovery order.
// The returned slice is owned by the network and must not be modified.
func (o *Object) Fanouts() []int32 {
	return o.fanouts
}

// Refs returns the fanout count.
func (o *Object) Refs() int32 {
	return int32(len(o.fanouts))
}

// Network holds the AIG. A network built through NewNetwork is structurally
// hashed (canonical form); NewRawNetwork skips hashing, which the hypergraph
// builders refuse.
type Network struct {
	objs      []*Object
	cis       []int32
	cos       []int32
	nAnds     int
	strashed  bool
	strash    map[uint64]Lit
	hasLevels bool
	maxLevel  int32
}

// NewNetwork creates an empty structurally-hashed network containing only
// the constant node.
func NewNetwork() *Network {
	n := &Network{
		strashed: true,
		strash:   make(map[uint64]Lit),
	}
	n.objs = append(n.objs, &Object{ID: 0, Type: TypeConst})
	return n
}

// NewRawNetwork creates a network without structural hashing. AddAnd appends
// gates verbatim, so the network is not in canonical form.
func NewRawNetwork() *Network {
	n := NewNetwork()
	n.strashed = false
	n.strash = nil
	return n
}

// IsStrashed reports whether the network is in canonical structurally-hashed form.
func (n *Network) IsStrashed() bool {
	return n.strashed
}

// ObjNumMax returns the object-ID capacity (one past the largest ID).
func (n *Network) ObjNumMax() int32 {
	return int32(len(n.objs))
}

// Obj returns the object with the given ID, or nil when out of range.
func (n *Network) Obj(id int32) *Object {
	if id < 0 || id >= int32(len(n.objs)) {
		return nil
	}
	return n.objs[id]
}

// ForEachObj calls f for every object in increasing ID order.
func (n *Network) ForEachObj(f func(*Object)) {
	for _, o := range n.objs {
		f(o)
	}
}

// CIs returns the IDs of all combinational inputs in creation order.
func (n *Network) CIs() []int32 { return n.cis }

// COs returns the IDs of all combinational outputs in creation order.
func (n *Network) COs() []int32 { return n.cos }

// PiNum returns the number of true primary inputs.
func (n *Network) PiNum() int {
	c := 0
	for _, id := range n.cis {
		if !n.objs[id].Latch {
			c++
		}
	}
	return c
}

// PoNum returns the number of non-latch primary outputs.
func (n *Network) PoNum() int {
	c := 0
	for _, id := range n.cos {
		if !n.objs[id].Latch {
			c++
		}
	}
	return c
}

// NodeNum returns the number of AND gates.
func (n *Network) NodeNum() int {
	return n.nAnds
}

func (n *Network) newObj(t ObjType) *Object {
	o := &Object{ID: int32(len(n.objs)), Type: t}
	n.objs = append(n.objs, o)
	n.hasLevels = false
	return o
}

func (n *Network) connect(from Lit, to int32) {
	src := n.objs[from.ID()]
	src.fanouts = append(src.fanouts, to)
}

// AddCI adds a combinational input and returns its literal.
func (n *Network) AddCI() Lit {
	o := n.newObj(TypeCI)
	n.cis = append(n.cis, o.ID)
	return MakeLit(o.ID, false)
}

// AddLatchOutput adds a latch-driven combinational input and returns its literal.
func (n *Network) AddLatchOutput() Lit {
	l := n.AddCI()
	n.objs[l.ID()].Latch = true
	return l
}

// AddCO adds a primary output driven by the given literal and returns its object ID.
func (n *Network) AddCO(driver Lit) int32 {
	o := n.newObj(TypeCO)
	o.Fanin0 = driver
	n.cos = append(n.cos, o.ID)
	n.connect(driver, o.ID)
	return o.ID
}

// AddLatchInput adds a latch-type output driven by the given literal and
// returns its object ID.
func (n *Network) AddLatchInput(driver Lit) int32 {
	id := n.AddCO(driver)
	n.objs[id].Latch = true
	return id
}

// AddAnd adds an AND gate over the two literals and returns its literal.
// On a hashed network, constant folding and structural hashing apply, so the
// returned literal may refer to an existing object.
func (n *Network) AddAnd(a, b Lit) Lit {
	if n.strashed {
		// Constant folding
		if a == ConstFalse || b == ConstFalse || a == b.Not() {
			return ConstFalse
		}
		if a == ConstTrue || a == b {
			return b
		}
		if b == ConstTrue {
			return a
		}
		// Canonical fanin order
		if a > b {
			a, b = b, a
		}
		key := uint64(uint32(a))<<32 | uint64(uint32(b))
		if lit, ok := n.strash[key]; ok {
			return lit
		}
		lit := n.addAndObj(a, b)
		n.strash[key] = lit
		return lit
	}
	return n.addAndObj(a, b)
}

func (n *Network) addAndObj(a, b Lit) Lit {
	o := n.newObj(TypeAnd)
	o.Fanin0 = a
	o.Fanin1 = b
	n.nAnds++
	n.connect(a, o.ID)
	n.connect(b, o.ID)
	return MakeLit(o.ID, false)
}

// HasLevels reports whether topological levels are up to date.
func (n *Network) HasLevels() bool {
	return n.hasLevels
}

// MaxLevel returns the maximum topological level after ComputeLevels.
func (n *Network) MaxLevel() int32 {
	return n.maxLevel
}

// ComputeLevels assigns to every object its topological level: 0 for CIs and
// the constant, max(fanin levels)+1 for AND gates, the driver level for COs.
// Returns the maximum level. Object IDs are topological by construction, so a
// single forward pass suffices.
func (n *Network) ComputeLevels() int32 {
	max := int32(0)
	for _, o := range n.objs {
		switch o.Type {
		case TypeConst, TypeCI:
			o.Level = 0
		case TypeAnd:
			l0 := n.objs[o.Fanin0.ID()].Level
			l1 := n.objs[o.Fanin1.ID()].Level
			if l1 > l0 {
				l0 = l1
			}
			o.Level = l0 + 1
			if o.Level > max {
				max = o.Level
			}
		case TypeCO:
			o.Level = n.objs[o.Fanin0.ID()].Level
		}
	}
	n.maxLevel = max
	n.hasLevels = true
	return max
}
