// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"

	"golang.org/x/exp/maps"
)

// Valuation is a full assignment of every variable in a VariableSet, indexed
// by level.
type Valuation []bool

// PartialValuation is a cube: an assignment of some variables (by level),
// leaving the rest free. It corresponds to one root-to-True path of a Bdd.
type PartialValuation map[int32]bool

// Eval evaluates f under a full valuation (indexed by level) and returns
// the resulting Boolean value. val must have at least f.Vars().Len()
// entries; levels beyond the node actually tested are simply never read.
func (f *Bdd) Eval(val Valuation) bool {
	p := f.root()
	for !isTerminalPtr(p) {
		if val[f.level(p)] {
			p = f.high(p)
		} else {
			p = f.low(p)
		}
	}
	return terminalValue(p)
}

// FirstValuation returns the lexicographically first satisfying valuation of
// f (0 < 1, with the highest-level variable most significant), or ok=false
// if f is the constant false function.
func (f *Bdd) FirstValuation() (val Valuation, ok bool) {
	if f.IsFalse() {
		return nil, false
	}
	val = make(Valuation, f.vars.Len())
	p := f.root()
	for !isTerminalPtr(p) {
		if f.low(p) == ptrFalse {
			val[f.level(p)] = true
			p = f.high(p)
		} else {
			p = f.low(p)
		}
	}
	return val, true
}

// LastValuation returns the lexicographically last satisfying valuation of
// f, or ok=false if f is the constant false function.
func (f *Bdd) LastValuation() (val Valuation, ok bool) {
	if f.IsFalse() {
		return nil, false
	}
	val = make(Valuation, f.vars.Len())
	for i := range val {
		val[i] = true
	}
	p := f.root()
	for !isTerminalPtr(p) {
		if f.high(p) == ptrFalse {
			val[f.level(p)] = false
			p = f.low(p)
		} else {
			p = f.high(p)
		}
	}
	return val, true
}

// SatAny returns any single satisfying valuation of f as a partial cube
// (only the variables actually tested are set; the rest are free),
// descending from the root and preferring the high child whenever it is
// not the False terminal, or ok=false if f is the constant false
// function.
func (f *Bdd) SatAny() (PartialValuation, bool) {
	if f.IsFalse() {
		return nil, false
	}
	path := PartialValuation{}
	p := f.root()
	for !isTerminalPtr(p) {
		if f.high(p) != ptrFalse {
			path[f.level(p)] = true
			p = f.high(p)
		} else {
			path[f.level(p)] = false
			p = f.low(p)
		}
	}
	return path, true
}

// FirstPath returns the lexicographically first satisfying path of f as a
// conjunctive cube (only the variables actually tested along that path are
// set), or ok=false if f is the constant false function.
func (f *Bdd) FirstPath() (PartialValuation, bool) {
	if f.IsFalse() {
		return nil, false
	}
	path := PartialValuation{}
	p := f.root()
	for !isTerminalPtr(p) {
		if f.low(p) == ptrFalse {
			path[f.level(p)] = true
			p = f.high(p)
		} else {
			path[f.level(p)] = false
			p = f.low(p)
		}
	}
	return path, true
}

// LastPath returns the lexicographically last satisfying path of f as a
// conjunctive cube, or ok=false if f is the constant false function.
func (f *Bdd) LastPath() (PartialValuation, bool) {
	if f.IsFalse() {
		return nil, false
	}
	path := PartialValuation{}
	p := f.root()
	for !isTerminalPtr(p) {
		if f.high(p) == ptrFalse {
			path[f.level(p)] = false
			p = f.low(p)
		} else {
			path[f.level(p)] = true
			p = f.high(p)
		}
	}
	return path, true
}

// mostValuationEntry memoizes, for most{Positive,Negative}Valuation, the
// best depth found below a node and which child achieves it.
type mostValuationEntry struct {
	depth    int
	takeHigh bool
}

// MostPositiveValuation returns a satisfying valuation of f with the
// greatest number of true literals (ties broken lexicographically-first),
// or ok=false if f is the constant false function.
func (f *Bdd) MostPositiveValuation() (Valuation, bool) {
	if f.IsFalse() {
		return nil, false
	}
	cache := f.mostValuationCache(true)
	val := make(Valuation, f.vars.Len())
	for i := range val {
		val[i] = true
	}
	p := f.root()
	for !isTerminalPtr(p) {
		if cache[p].takeHigh {
			p = f.high(p)
		} else {
			val[f.level(p)] = false
			p = f.low(p)
		}
	}
	return val, true
}

// MostNegativeValuation returns a satisfying valuation of f with the
// greatest number of false literals (ties broken lexicographically-first),
// or ok=false if f is the constant false function.
func (f *Bdd) MostNegativeValuation() (Valuation, bool) {
	if f.IsFalse() {
		return nil, false
	}
	cache := f.mostValuationCache(false)
	val := make(Valuation, f.vars.Len())
	p := f.root()
	for !isTerminalPtr(p) {
		if cache[p].takeHigh {
			val[f.level(p)] = true
			p = f.high(p)
		} else {
			p = f.low(p)
		}
	}
	return val, true
}

// mostValuationCache walks f's array bottom-up (nodes are already stored
// children-before-parents, see builder.mk) computing, for each node, the
// number of "free" variables skipped on the path to a terminal that
// maximizes (for positive) or minimizes (for negative) the number of
// skipped variables set to true, and which branch achieves it.
func (f *Bdd) mostValuationCache(positive bool) []mostValuationEntry {
	cache := make([]mostValuationEntry, len(f.nodes))
	cache[ptrFalse] = mostValuationEntry{depth: 0, takeHigh: true}
	cache[ptrTrue] = mostValuationEntry{depth: 0, takeHigh: true}
	for i := 2; i < len(f.nodes); i++ {
		p := int32(i)
		lvl := f.level(p)
		lo, hi := f.low(p), f.high(p)
		loLevel, hiLevel := f.level(lo), f.level(hi)
		loDiff := cache[lo].depth + int(loLevel-lvl) - 1
		hiDiff := cache[hi].depth + int(hiLevel-lvl) - 1
		var entry mostValuationEntry
		switch {
		case lo == ptrFalse && hi == ptrFalse:
			panic("bdd: non-canonical node in mostValuationCache")
		case lo == ptrFalse && positive:
			entry = mostValuationEntry{depth: hiDiff + 1, takeHigh: true}
		case lo == ptrFalse:
			entry = mostValuationEntry{depth: hiDiff, takeHigh: true}
		case hi == ptrFalse && positive:
			entry = mostValuationEntry{depth: loDiff, takeHigh: false}
		case hi == ptrFalse:
			entry = mostValuationEntry{depth: loDiff + 1, takeHigh: false}
		case positive && hiDiff+1 > loDiff:
			entry = mostValuationEntry{depth: hiDiff + 1, takeHigh: true}
		case positive:
			entry = mostValuationEntry{depth: loDiff, takeHigh: false}
		case !positive && hiDiff > loDiff+1:
			entry = mostValuationEntry{depth: hiDiff, takeHigh: true}
		default:
			entry = mostValuationEntry{depth: loDiff + 1, takeHigh: false}
		}
		cache[p] = entry
	}
	return cache
}

// Cardinality returns the number of satisfying valuations of f over its
// full VariableSet, as an arbitrary-precision integer (the count can
// exceed 2^63 for wide variable sets).
func (f *Bdd) Cardinality() *big.Int {
	if f.IsFalse() {
		return big.NewInt(0)
	}
	res := big.NewInt(0)
	res.SetBit(res, int(f.level(f.root())), 1)
	memo := make(map[int32]*big.Int, len(f.nodes))
	return res.Mul(res, f.cardinality(f.root(), memo))
}

func (f *Bdd) cardinality(p int32, memo map[int32]*big.Int) *big.Int {
	if isTerminalPtr(p) {
		return big.NewInt(int64(boolToInt(terminalValue(p))))
	}
	if res, ok := memo[p]; ok {
		return res
	}
	lvl := f.level(p)
	lo, hi := f.low(p), f.high(p)
	res := big.NewInt(0)
	loWeight := new(big.Int).SetBit(big.NewInt(0), int(f.level(lo)-lvl-1), 1)
	res.Add(res, loWeight.Mul(loWeight, f.cardinality(lo, memo)))
	hiWeight := new(big.Int).SetBit(big.NewInt(0), int(f.level(hi)-lvl-1), 1)
	res.Add(res, hiWeight.Mul(hiWeight, f.cardinality(hi, memo)))
	memo[p] = res
	return res
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Paths calls yield once for every root-to-True path of f, represented as a
// cube (PartialValuation). It stops early if yield returns false. Unlike a
// full valuation enumeration, a path only fixes the variables actually
// tested, so this never suffers the 2^k blow-up of expanding don't-care
// variables.
func (f *Bdd) Paths(yield func(PartialValuation) bool) {
	path := PartialValuation{}
	var rec func(p int32) bool
	rec = func(p int32) bool {
		if isTerminalPtr(p) {
			if terminalValue(p) {
				return yield(clonePath(path))
			}
			return true
		}
		lvl := f.level(p)
		if lo := f.low(p); lo != ptrFalse {
			path[lvl] = false
			if !rec(lo) {
				return false
			}
			delete(path, lvl)
		}
		if hi := f.high(p); hi != ptrFalse {
			path[lvl] = true
			if !rec(hi) {
				return false
			}
			delete(path, lvl)
		}
		return true
	}
	rec(f.root())
}

func clonePath(p PartialValuation) PartialValuation {
	return maps.Clone(p)
}

// ToDNF collects every path of f (see Paths) into a slice, giving a
// disjunctive-normal-form cover of f: f is true exactly when one of the
// returned cubes is satisfied.
func (f *Bdd) ToDNF() []PartialValuation {
	var out []PartialValuation
	f.Paths(func(p PartialValuation) bool {
		out = append(out, p)
		return true
	})
	return out
}

// FromDNF builds the Bdd for the disjunction of the given cubes directly,
// without computing each cube's Bdd and Or-ing them together one at a
// time; it is the dual of ToDNF.
func FromDNF(vars *VariableSet, clauses []PartialValuation) *Bdd {
	if len(clauses) == 0 {
		return vars.False()
	}
	bld := newBuilder(vars, len(clauses)*2)

	var build func(level int32, dnf []PartialValuation) int32
	build = func(level int32, dnf []PartialValuation) int32 {
		for {
			if int(level) == vars.Len() {
				return ptrFromBool(len(dnf) != 0)
			}
			if len(dnf) == 0 {
				return ptrFalse
			}
			branches := false
			for _, clause := range dnf {
				if _, ok := clause[level]; ok {
					branches = true
					break
				}
			}
			if !branches {
				level++
				continue
			}
			var whenTrue, whenFalse []PartialValuation
			for _, clause := range dnf {
				switch v, ok := clause[level]; {
				case !ok:
					whenTrue = append(whenTrue, clause)
					whenFalse = append(whenFalse, clause)
				case v:
					whenTrue = append(whenTrue, clause)
				default:
					whenFalse = append(whenFalse, clause)
				}
			}
			high := build(level+1, whenTrue)
			low := build(level+1, whenFalse)
			return bld.mk(level, low, high)
		}
	}
	root := build(0, clauses)
	return shieldBdd("FromDNF", bld.finish(root))
}

// SatAllProjected returns the distinct combinations of values the levels in
// vars can take while f is satisfiable: the paths of ∃(V \ vars). f, the
// existential projection of f onto vars.
func SatAllProjected(f *Bdd, vars []int32) []PartialValuation {
	keep := levelSet(vars)
	var complement []int32
	for lvl := 0; lvl < f.vars.Len(); lvl++ {
		if !keep[int32(lvl)] {
			complement = append(complement, int32(lvl))
		}
	}
	projected := Exists(f, complement)
	return projected.ToDNF()
}
