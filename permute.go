// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import "fmt"

// Permuter describes a variable-level renaming: a (partial) bijection from
// old levels to new levels, identity on every level it does not mention.
// Unlike the sort implied by a dynamic-reordering heuristic, a Permuter is
// supplied by the caller outright (e.g. "primed" state variables folding
// back onto their unprimed counterparts after a relational step), so no
// search over orderings is ever performed.
type Permuter struct {
	image []int32
	last  int32
}

// NewPermuter builds a Permuter substituting oldLevels[k] with newLevels[k]
// for every k, leaving every other level fixed. It fails with
// *InvariantError if the two slices differ in length, if any level repeats
// within oldLevels, or if a level is out of range for vars.
func NewPermuter(vars *VariableSet, oldLevels, newLevels []int32) (*Permuter, error) {
	if len(oldLevels) != len(newLevels) {
		return nil, &InvariantError{Where: "NewPermuter", What: "oldLevels and newLevels have different lengths"}
	}
	n := int32(vars.Len())
	image := make([]int32, n)
	for i := range image {
		image[i] = int32(i)
	}
	seen := make(map[int32]bool, len(oldLevels))
	var last int32
	for k, old := range oldLevels {
		if old < 0 || old >= n || newLevels[k] < 0 || newLevels[k] >= n {
			return nil, &InvariantError{Where: "NewPermuter", What: fmt.Sprintf("level out of range (%d -> %d)", old, newLevels[k])}
		}
		if seen[old] {
			return nil, &InvariantError{Where: "NewPermuter", What: fmt.Sprintf("duplicate old level %d", old)}
		}
		seen[old] = true
		image[old] = newLevels[k]
		if old > last {
			last = old
		}
	}
	return &Permuter{image: image, last: last}, nil
}

// Permute renames f's variables according to p, rebuilding the array so it
// stays ordered even when p reorders levels relative to one another
// (correctify below interleaves the renamed node back into its new
// position, building directly into a fresh, private array).
func (f *Bdd) Permute(p *Permuter) *Bdd {
	bld := newBuilder(f.vars, f.NodeCount())
	replaced := make(map[int32]int32, f.NodeCount())

	var replace func(u int32) int32
	var correctify func(level, low, high int32) int32

	replace = func(u int32) int32 {
		if isTerminalPtr(u) {
			return u
		}
		if r, ok := replaced[u]; ok {
			return r
		}
		newLevel := p.imageOf(f.level(u))
		lo := replace(f.low(u))
		hi := replace(f.high(u))
		res := correctify(newLevel, lo, hi)
		replaced[u] = res
		return res
	}

	correctify = func(level, low, high int32) int32 {
		loLevel, hiLevel := bld.level(low), bld.level(high)
		switch {
		case level < loLevel && level < hiLevel:
			return bld.mk(level, low, high)
		case loLevel == hiLevel:
			l := correctify(level, bld.low(low), bld.low(high))
			h := correctify(level, bld.high(low), bld.high(high))
			return bld.mk(loLevel, l, h)
		case loLevel < hiLevel:
			l := correctify(level, bld.low(low), high)
			h := correctify(level, bld.high(low), high)
			return bld.mk(loLevel, l, h)
		default:
			l := correctify(level, low, bld.low(high))
			h := correctify(level, low, bld.high(high))
			return bld.mk(hiLevel, l, h)
		}
	}

	root := replace(f.root())
	return shieldBdd("Permute", bld.finish(root))
}

func (p *Permuter) imageOf(level int32) int32 {
	if int(level) >= len(p.image) {
		return level
	}
	return p.image[level]
}
