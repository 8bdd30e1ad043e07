// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// This file builds every derived operator spec.md names on top of
// genApply/genTraverse (apply.go). The binary connectives below are the ten
// with a public Operator constant (see operator.go); negation is unary.
// Restrict, Exists, ForAll and RelProduct each get their own trigger, and
// Ite has its own three-operand recursion.

// Not returns the negation of f: the Bdd obtained by swapping every
// reference to the false terminal with the true terminal and vice versa. It
// never fails.
func (f *Bdd) Not() *Bdd {
	bld := newBuilder(f.vars, f.NodeCount())
	cache := make(map[int32]int32, f.NodeCount())
	var rec func(u int32) int32
	rec = func(u int32) int32 {
		if isTerminalPtr(u) {
			return ptrFromBool(!terminalValue(u))
		}
		if res, ok := cache[u]; ok {
			return res
		}
		lo := rec(f.low(u))
		hi := rec(f.high(u))
		res := bld.mk(f.level(u), lo, hi)
		cache[u] = res
		return res
	}
	root := rec(f.root())
	return shieldBdd("Not", bld.finish(root))
}

// And, Or, Xor, Nand, Nor, Imp, Iff, Diff, Less and InvImp are the ten named
// binary connectives. Each fails with ErrVariableSetMismatch if f and g were
// not built from the same VariableSet.
func (f *Bdd) And(g *Bdd) (*Bdd, error)    { return apply(f, g, And) }
func (f *Bdd) Or(g *Bdd) (*Bdd, error)     { return apply(f, g, Or) }
func (f *Bdd) Xor(g *Bdd) (*Bdd, error)    { return apply(f, g, Xor) }
func (f *Bdd) Nand(g *Bdd) (*Bdd, error)   { return apply(f, g, Nand) }
func (f *Bdd) Nor(g *Bdd) (*Bdd, error)    { return apply(f, g, Nor) }
func (f *Bdd) Imp(g *Bdd) (*Bdd, error)    { return apply(f, g, Imp) }
func (f *Bdd) Iff(g *Bdd) (*Bdd, error)    { return apply(f, g, Iff) }
func (f *Bdd) Diff(g *Bdd) (*Bdd, error)   { return apply(f, g, Diff) }
func (f *Bdd) Less(g *Bdd) (*Bdd, error)   { return apply(f, g, Less) }
func (f *Bdd) InvImp(g *Bdd) (*Bdd, error) { return apply(f, g, InvImp) }

// Apply exposes the generic binary entry point for callers that hold an
// Operator value directly (e.g. a driver iterating over all ten).
func Apply(f, g *Bdd, op Operator) (*Bdd, error) {
	if op == opNot {
		return nil, &InvariantError{Where: "Apply", What: "opNot is unary, use Not"}
	}
	return apply(f, g, op)
}

// Ite computes (f /\ g) \/ (not(f) /\ h) in one traversal instead of three
// separate applies. f, g and h must share a VariableSet.
func Ite(f, g, h *Bdd) (*Bdd, error) {
	if !sameUniverse(f.vars, g.vars) || !sameUniverse(f.vars, h.vars) {
		return nil, ErrVariableSetMismatch
	}
	sizeHint := f.vars.cacheSizeHint(f.NodeCount() + g.NodeCount() + h.NodeCount())
	bld := newBuilder(f.vars, sizeHint)
	type iteKey struct{ f, g, h int32 }
	cache := make(map[iteKey]int32, sizeHint)

	var rec func(u, v, w int32) int32
	rec = func(u, v, w int32) int32 {
		switch {
		case u == ptrTrue:
			return reemit(bld, g, v)
		case u == ptrFalse:
			return reemit(bld, h, w)
		case v == w && isTerminalPtr(v):
			return v
		}
		key := iteKey{u, v, w}
		if res, ok := cache[key]; ok {
			return res
		}
		lf, lg, lh := f.level(u), g.level(v), h.level(w)
		lvl := lf
		if lg < lvl {
			lvl = lg
		}
		if lh < lvl {
			lvl = lh
		}
		ul, uh := u, u
		if lf == lvl {
			ul, uh = f.low(u), f.high(u)
		}
		vl, vh := v, v
		if lg == lvl {
			vl, vh = g.low(v), g.high(v)
		}
		wl, wh := w, w
		if lh == lvl {
			wl, wh = h.low(w), h.high(w)
		}
		lo := rec(ul, vl, wl)
		hi := rec(uh, vh, wh)
		res := bld.mk(lvl, lo, hi)
		cache[key] = res
		return res
	}
	root := rec(f.root(), g.root(), h.root())
	return shieldResult("Ite", bld.finish(root), nil)
}

// reemit copies the subtree of src rooted at p into bld, reusing bld's
// reduction table so shared structure collapses. It is used by Ite whenever
// a branch resolves to "just g" or "just h" unchanged: since bld is a fresh,
// independent array, that subtree still has to be rebuilt node by node
// (terminal pointers are the only values valid across every array).
func reemit(bld *builder, src arrayView, p int32) int32 {
	if isTerminalPtr(p) {
		return p
	}
	var rec func(p int32) int32
	seen := make(map[int32]int32)
	rec = func(p int32) int32 {
		if isTerminalPtr(p) {
			return p
		}
		if r, ok := seen[p]; ok {
			return r
		}
		lo := rec(src.low(p))
		hi := rec(src.high(p))
		r := bld.mk(src.level(p), lo, hi)
		seen[p] = r
		return r
	}
	return rec(p)
}

// Restrict fixes the variables named by assign (level -> value) to
// constants, eliminating them from f. Levels absent from assign are left
// free.
func Restrict(f *Bdd, assign map[int32]bool) *Bdd {
	bld := newBuilder(f.vars, f.NodeCount())
	cache := make(map[int32]int32, f.NodeCount())
	trig := func(bld *builder, w int32, lo, hi int32) (int32, bool) {
		if b, ok := assign[w]; ok {
			if b {
				return hi, true
			}
			return lo, true
		}
		return 0, false
	}
	root := genTraverse(bld, f.asView(), f.root(), trig, cache)
	return shieldBdd("Restrict", bld.finish(root))
}

// quantify is shared by Exists and ForAll: it collapses every node whose
// variable is in vars by combining its two cofactors with combineOp (Or for
// Exists, And for ForAll) instead of emitting a decision node for it.
func quantify(f *Bdd, vars map[int32]bool, combineOp Operator) *Bdd {
	bld := newBuilder(f.vars, f.NodeCount())
	traverseCache := make(map[int32]int32, f.NodeCount())
	selfCache := make(map[pairKey]int32, f.NodeCount())
	table := truthTables[combineOp]
	trig := func(bld *builder, w int32, lo, hi int32) (int32, bool) {
		if !vars[w] {
			return 0, false
		}
		res := genApply(bld, bld, bld, lo, hi, table, nil, selfCache)
		return res, true
	}
	root := genTraverse(bld, f.asView(), f.root(), trig, traverseCache)
	return shieldBdd("quantify", bld.finish(root))
}

// Exists returns the existential quantification of f over the variable
// levels in vars: ∃vars. f.
func Exists(f *Bdd, vars []int32) *Bdd {
	return quantify(f, levelSet(vars), Or)
}

// ForAll returns the universal quantification of f over the variable levels
// in vars: ∀vars. f.
func ForAll(f *Bdd, vars []int32) *Bdd {
	return quantify(f, levelSet(vars), And)
}

func levelSet(vars []int32) map[int32]bool {
	m := make(map[int32]bool, len(vars))
	for _, v := range vars {
		m[v] = true
	}
	return m
}

// VarProjection returns the existential projection of f onto a single
// variable level, ∃level. f. It is a one-variable convenience over Exists.
func VarProjection(f *Bdd, level int32) *Bdd {
	return Exists(f, []int32{level})
}

// VarPick restricts f by setting level to true, the one-variable
// convenience over Restrict used to "pick" a branch while walking a
// decision tree interactively.
func VarPick(f *Bdd, level int32) *Bdd {
	return Restrict(f, map[int32]bool{level: true})
}

// VarSelect restricts f by fixing level to val, the general one-variable
// convenience over Restrict (VarPick is VarSelect(f, level, true)).
func VarSelect(f *Bdd, level int32, val bool) *Bdd {
	return Restrict(f, map[int32]bool{level: val})
}

// RelProduct computes the relational product ∃vars. (f /\ g): the
// conjunction of f and g with the variables in vars projected away,
// computed in one fused pass instead of an apply followed by a separate
// quantification.
func RelProduct(f, g *Bdd, vars []int32) (*Bdd, error) {
	if !sameUniverse(f.vars, g.vars) {
		return nil, ErrVariableSetMismatch
	}
	set := levelSet(vars)
	sizeHint := f.vars.cacheSizeHint(f.NodeCount() + g.NodeCount())
	bld := newBuilder(f.vars, sizeHint)
	cache := make(map[pairKey]int32, sizeHint)
	selfCache := make(map[pairKey]int32, sizeHint)
	orTable := truthTables[Or]
	trig := func(bld *builder, w int32, lo, hi int32) (int32, bool) {
		if !set[w] {
			return 0, false
		}
		res := genApply(bld, bld, bld, lo, hi, orTable, nil, selfCache)
		return res, true
	}
	root := genApply(bld, f.asView(), g.asView(), f.root(), g.root(), truthTables[And], trig, cache)
	return shieldResult("RelProduct", bld.finish(root), nil)
}
