// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// arrayView abstracts over "a source of nodes the apply engine can cofactor
// against": a finished Bdd, or a builder's own in-progress node array (used
// when a trigger needs to keep combining already-emitted output nodes, as in
// the Exists/ForAll/RelProduct collapse in derived.go). Terminal pointers
// read the same way regardless of which view they come from.
type arrayView interface {
	level(p int32) int32
	low(p int32) int32
	high(p int32) int32
}

func (f *Bdd) asView() arrayView { return f }

// pairKey is the task-cache key for a binary apply call: a pointer from the
// left view paired with a pointer from the right view. Plain struct keys
// hash fine through Go's native map implementation; murmur3 is reserved for
// the reduction table below, which needs explicit bucket control to keep
// the original's chained, rehash-free dedup style (see the ancestor's
// hashing.go) without its shared, resizable table.
type pairKey struct {
	u, v int32
}

// builder accumulates the node array of a single apply, traverse, or
// restrict call. It owns exactly one reduction table (a hash-consing of
// (var, low, high) triples to the node that already represents them) so
// that the output stays reduced by construction: two calls to mk with the
// same triple always return the same pointer, never a duplicate node.
type builder struct {
	vars   *VariableSet
	nodes  []node
	unique map[uint32][]int32
}

func newBuilder(vars *VariableSet, sizeHint int) *builder {
	if sizeHint < 8 {
		sizeHint = 8
	}
	return &builder{
		vars:   vars,
		nodes:  []node{{Var: int32(vars.Len())}, {Var: int32(vars.Len())}},
		unique: make(map[uint32][]int32, sizeHint),
	}
}

func (bld *builder) level(p int32) int32 {
	if isTerminalPtr(p) {
		return int32(bld.vars.Len())
	}
	return bld.nodes[p].Var
}

func (bld *builder) low(p int32) int32  { return bld.nodes[p].Low }
func (bld *builder) high(p int32) int32 { return bld.nodes[p].High }

// hashTriple is the reduction table's hash function: murmur3 over the three
// packed fields, standing in for the hand-rolled pairing function the
// original shared unique table used. Each Bdd's table here is short-lived
// and private to one call, so a general-purpose, well-distributed hash is
// preferable to a bespoke perfect hash tuned for a long-lived, resizable
// shared table.
func hashTriple(v, low, high int32) uint32 {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(v))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(low))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(high))
	return murmur3.Sum32(buf[:])
}

// mk returns the pointer to the node (level, low, high) in this builder's
// array, reusing an existing node when one with the same triple already
// exists (the reduction rule: no duplicate nodes) and collapsing to low
// when low == high (the elimination rule: no redundant tests). low and high
// must already be valid pointers in this same builder's array, which keeps
// the invariant that a node's children always have a strictly greater level
// and appear earlier in the array.
func (bld *builder) mk(level, low, high int32) int32 {
	if low == high {
		return low
	}
	h := hashTriple(level, low, high)
	for _, idx := range bld.unique[h] {
		n := bld.nodes[idx]
		if n.Var == level && n.Low == low && n.High == high {
			return idx
		}
	}
	idx := int32(len(bld.nodes))
	bld.nodes = append(bld.nodes, node{Var: level, Low: low, High: high})
	bld.unique[h] = append(bld.unique[h], idx)
	return idx
}

// finish packages the builder's array as a Bdd rooted at root.
func (bld *builder) finish(root int32) *Bdd {
	if root == ptrFalse {
		return &Bdd{vars: bld.vars, nodes: []node{{Var: int32(bld.vars.Len())}}}
	}
	if root == ptrTrue {
		return &Bdd{vars: bld.vars, nodes: []node{{Var: int32(bld.vars.Len())}, {Var: int32(bld.vars.Len())}}}
	}
	// The builder's array may hold nodes no longer reachable from root (a
	// trigger or Permute's correctify discarded them), and root may not be
	// last: compact keeps only the reachable nodes, in one fixed order, so
	// equal functions always get identical arrays.
	return compact(bld.vars, bld.nodes, root)
}

// compact rebuilds a fresh, minimal node array containing only the nodes
// reachable from root, with root placed last. remap memoizes the
// old-index -> new-index translation so shared subtrees stay shared.
func compact(vars *VariableSet, nodes []node, root int32) *Bdd {
	remap := make(map[int32]int32)
	remap[ptrFalse] = ptrFalse
	remap[ptrTrue] = ptrTrue
	out := []node{{Var: int32(vars.Len())}, {Var: int32(vars.Len())}}

	var walk func(p int32) int32
	walk = func(p int32) int32 {
		if r, ok := remap[p]; ok {
			return r
		}
		n := nodes[p]
		lo := walk(n.Low)
		hi := walk(n.High)
		idx := int32(len(out))
		out = append(out, node{Var: n.Var, Low: lo, High: hi})
		remap[p] = idx
		return idx
	}
	newRoot := walk(root)

	last := int32(len(out) - 1)
	if newRoot != last {
		out[newRoot], out[last] = out[last], out[newRoot]
		for i := range out {
			if out[i].Low == newRoot {
				out[i].Low = last
			} else if out[i].Low == last {
				out[i].Low = newRoot
			}
			if out[i].High == newRoot {
				out[i].High = last
			} else if out[i].High == last {
				out[i].High = newRoot
			}
		}
	}
	return &Bdd{vars: vars, nodes: out}
}
