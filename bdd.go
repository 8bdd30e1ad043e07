// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Bdd is a self-contained, canonical Reduced Ordered Binary Decision
// Diagram: an array of nodes terminated by the function's root (the last
// entry of the array). The first two entries are always the terminals,
// False at index 0 and True at index 1.
//
// A Bdd is immutable after construction; every operator returns a new Bdd
// rather than mutating its operands. The array is owned exclusively by this
// value and shares nothing with any other Bdd, so a Bdd may be freely
// copied, cloned, or shared by reference across goroutines with no
// synchronization (see the package doc comment).
type Bdd struct {
	vars  *VariableSet
	nodes []node
}

// Vars returns the VariableSet this Bdd was built against.
func (f *Bdd) Vars() *VariableSet {
	return f.vars
}

// root returns the pointer to the root node: the last entry of the array,
// or ptrFalse for the (length-1) false Bdd.
func (f *Bdd) root() int32 {
	return int32(len(f.nodes) - 1)
}

func (f *Bdd) level(p int32) int32 {
	if isTerminalPtr(p) {
		return int32(f.vars.Len())
	}
	return f.nodes[p].Var
}

func (f *Bdd) low(p int32) int32 {
	return f.nodes[p].Low
}

func (f *Bdd) high(p int32) int32 {
	return f.nodes[p].High
}

// IsFalse reports whether f is exactly the constant false formula.
func (f *Bdd) IsFalse() bool {
	return len(f.nodes) == 1
}

// IsTrue reports whether f is exactly the constant true formula.
func (f *Bdd) IsTrue() bool {
	return len(f.nodes) == 2 && f.root() == ptrTrue
}

// IsTrivial reports whether f is one of the two constants.
func (f *Bdd) IsTrivial() bool {
	return f.IsFalse() || f.IsTrue()
}

// NodeCount returns the number of nodes in f's array, including the two
// terminals.
func (f *Bdd) NodeCount() int {
	return len(f.nodes)
}

// VariableCountUsed returns the number of distinct variable levels that
// actually appear in a decision node of f.
func (f *Bdd) VariableCountUsed() int {
	seen := make(map[int32]struct{})
	for _, n := range f.nodes[min2(len(f.nodes), 2):] {
		seen[n.Var] = struct{}{}
	}
	return len(seen)
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Clone returns a value holding an independent copy of f's node array; it
// shares no backing storage with f.
func (f *Bdd) Clone() *Bdd {
	nodes := make([]node, len(f.nodes))
	copy(nodes, f.nodes)
	return &Bdd{vars: f.vars, nodes: nodes}
}

// Equal reports whether f and g represent the same Boolean function. Since
// node arrays are canonical (reduced, ordered, and emitted in a
// deterministic order), this is plain structural equality of the two
// arrays.
func (f *Bdd) Equal(g *Bdd) bool {
	if f == g {
		return true
	}
	if !sameUniverse(f.vars, g.vars) {
		return false
	}
	if len(f.nodes) != len(g.nodes) {
		return false
	}
	for i := range f.nodes {
		if f.nodes[i] != g.nodes[i] {
			return false
		}
	}
	return true
}

// Var returns the literal Bdd for the positive occurrence of variable
// level. It fails with *UnknownVariableError if level is out of range.
func (v *VariableSet) Var(level int32) (*Bdd, error) {
	if err := v.checkLevel(level); err != nil {
		return nil, err
	}
	return &Bdd{
		vars: v,
		nodes: []node{
			{Var: int32(v.Len())},
			{Var: int32(v.Len())},
			{Var: level, Low: ptrFalse, High: ptrTrue},
		},
	}, nil
}

// NotVar returns the literal Bdd for the negated occurrence of variable
// level. It fails with *UnknownVariableError if level is out of range.
func (v *VariableSet) NotVar(level int32) (*Bdd, error) {
	if err := v.checkLevel(level); err != nil {
		return nil, err
	}
	return &Bdd{
		vars: v,
		nodes: []node{
			{Var: int32(v.Len())},
			{Var: int32(v.Len())},
			{Var: level, Low: ptrTrue, High: ptrFalse},
		},
	}, nil
}

// VarByName looks up name in v and returns its positive literal Bdd.
func (v *VariableSet) VarByName(name string) (*Bdd, error) {
	level, err := v.LevelOf(name)
	if err != nil {
		return nil, err
	}
	return v.Var(level)
}

// NotVarByName looks up name in v and returns its negated literal Bdd.
func (v *VariableSet) NotVarByName(name string) (*Bdd, error) {
	level, err := v.LevelOf(name)
	if err != nil {
		return nil, err
	}
	return v.NotVar(level)
}

// True returns the constant true Bdd over v.
func (v *VariableSet) True() *Bdd {
	return &Bdd{vars: v, nodes: []node{{Var: int32(v.Len())}, {Var: int32(v.Len())}}}
}

// False returns the constant false Bdd over v.
func (v *VariableSet) False() *Bdd {
	return &Bdd{vars: v, nodes: []node{{Var: int32(v.Len())}}}
}

// From returns the constant true or false Bdd over v, depending on val.
func (v *VariableSet) From(val bool) *Bdd {
	if val {
		return v.True()
	}
	return v.False()
}
