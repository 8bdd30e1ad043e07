// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// This file implements Bryant's apply algorithm: the single recursive
// engine that every derived operator in derived.go is built from. There are
// two entry shapes:
//
//   - genApply combines a pointer from a left view with a pointer from a
//     right view under a truth table, recursing on the cofactors of
//     whichever view has the smaller variable level at each step. It is
//     used directly for the ten named binary connectives, and with a non-nil
//     trigger for the fused conjunction-then-projection behind RelProduct.
//
//   - genTraverse walks a single view and is used by Restrict (trigger picks
//     low or high instead of emitting a decision node) and by Exists/ForAll
//     (trigger collapses the two cofactors with a nested genApply self-call
//     over the builder's own, already-emitted nodes).
//
// Both share one builder (and so one reduction table) per call, which is
// what keeps the result reduced and ordered without a second pass.

// binTrigger, if non-nil, is consulted after a binary recursive step has
// already produced the low/high cofactor results (lo, hi), before a
// decision node would be created for them at level w. If it reports
// handled, its returned pointer is used as-is instead of calling mk.
type binTrigger func(bld *builder, w int32, lo, hi int32) (result int32, handled bool)

// unaryTrigger plays the same role for genTraverse.
type unaryTrigger func(bld *builder, w int32, lo, hi int32) (result int32, handled bool)

// genApply is Bryant's apply, generalized over two arrayViews so the same
// code serves plain binary apply (left = one Bdd, right = another) and the
// self-composition a trigger needs when it has to combine two pointers that
// already live in the very array being built (left = right = bld).
func genApply(bld *builder, left, right arrayView, u, v int32, table truthTable, trig binTrigger, cache map[pairKey]int32) int32 {
	if isTerminalPtr(u) && isTerminalPtr(v) {
		a, b := int8(0), int8(0)
		if terminalValue(u) {
			a = 1
		}
		if terminalValue(v) {
			b = 1
		}
		return ptrFromBool(table[a][b] == 1)
	}
	if isTerminalPtr(u) {
		if val, ok := rowConst(table, terminalValue(u)); ok {
			return ptrFromBool(val)
		}
	} else if isTerminalPtr(v) {
		if val, ok := colConst(table, terminalValue(v)); ok {
			return ptrFromBool(val)
		}
	}

	key := pairKey{u, v}
	if res, ok := cache[key]; ok {
		return res
	}

	lu, lv := left.level(u), right.level(v)
	w := lu
	if lv < w {
		w = lv
	}
	ulow, uhigh := u, u
	if lu == w {
		ulow, uhigh = left.low(u), left.high(u)
	}
	vlow, vhigh := v, v
	if lv == w {
		vlow, vhigh = right.low(v), right.high(v)
	}

	lo := genApply(bld, left, right, ulow, vlow, table, trig, cache)
	hi := genApply(bld, left, right, uhigh, vhigh, table, trig, cache)

	var res int32
	if trig != nil {
		if r, handled := trig(bld, w, lo, hi); handled {
			cache[key] = r
			return r
		}
	}
	res = bld.mk(w, lo, hi)
	cache[key] = res
	return res
}

// genTraverse walks a single view (src), rebuilding it node-by-node into
// bld's array. At each decision node it gives trig a chance to replace the
// usual bld.mk(w, lo, hi) with something else entirely (returning one of
// the already-computed cofactors directly, for Restrict; or folding them
// together with a nested genApply, for Exists/ForAll).
func genTraverse(bld *builder, src arrayView, u int32, trig unaryTrigger, cache map[int32]int32) int32 {
	if isTerminalPtr(u) {
		return u
	}
	if res, ok := cache[u]; ok {
		return res
	}
	w := src.level(u)
	lo := genTraverse(bld, src, src.low(u), trig, cache)
	hi := genTraverse(bld, src, src.high(u), trig, cache)

	var res int32
	if trig != nil {
		if r, handled := trig(bld, w, lo, hi); handled {
			cache[u] = r
			return r
		}
	}
	res = bld.mk(w, lo, hi)
	cache[u] = res
	return res
}

// rowConst reports whether table's row for terminal a is constant (i.e. the
// connective's answer no longer depends on the other, non-terminal,
// operand), and what that constant is.
func rowConst(table truthTable, a bool) (bool, bool) {
	i := int8(0)
	if a {
		i = 1
	}
	row := table[i]
	if row[0] == row[1] {
		return row[0] == 1, true
	}
	return false, false
}

// colConst is rowConst's mirror image for the right operand.
func colConst(table truthTable, b bool) (bool, bool) {
	j := int8(0)
	if b {
		j = 1
	}
	if table[0][j] == table[1][j] {
		return table[0][j] == 1, true
	}
	return false, false
}

// apply is the shared implementation behind the exported binary connective
// functions in derived.go: build a fresh Bdd over f OP g.
func apply(f, g *Bdd, op Operator) (*Bdd, error) {
	if !sameUniverse(f.vars, g.vars) {
		return nil, ErrVariableSetMismatch
	}
	sizeHint := f.vars.cacheSizeHint(f.NodeCount() + g.NodeCount())
	bld := newBuilder(f.vars, sizeHint)
	cache := make(map[pairKey]int32, sizeHint)
	root := genApply(bld, f.asView(), g.asView(), f.root(), g.root(), truthTables[op], nil, cache)
	return shieldResult("apply", bld.finish(root), nil)
}
