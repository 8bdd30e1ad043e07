// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// VariableSet is an immutable, ordered dictionary of named Boolean
// variables. It fixes the universe size n and the level order shared by
// every Bdd built from it: two Bdd values can only be combined if they come
// from the same VariableSet (in practice we only check that n matches, see
// ErrVariableSetMismatch).
type VariableSet struct {
	names      []string
	index      map[string]int32
	cacheRatio int // hint passed to the apply engine's per-call cache sizing
	cacheSize  int
}

// VariableSetOption configures a VariableSet at construction time. See
// WithCacheRatio and WithInitialCacheSize.
type VariableSetOption func(*VariableSet)

// WithInitialCacheSize sets the initial size used for the apply engine's
// per-call task cache and reduction table. A Bdd built from this
// VariableSet has no persistent cache of its own (caches live for the
// duration of a single operation, see apply.go), so this is only a
// starting-point hint; the underlying maps still grow as needed.
func WithInitialCacheSize(size int) VariableSetOption {
	return func(v *VariableSet) {
		if size > 0 {
			v.cacheSize = size
		}
	}
}

// WithCacheRatio sets a ratio (in percent) used to scale the apply engine's
// cache sizing relative to the size of the operand Bdd values, instead of
// the fixed size set by WithInitialCacheSize. A ratio of 25 allocates
// roughly one cache slot for every four nodes of the operands combined.
func WithCacheRatio(ratio int) VariableSetOption {
	return func(v *VariableSet) {
		if ratio > 0 {
			v.cacheRatio = ratio
		}
	}
}

// NewVariableSet builds a VariableSet from an ordered list of variable
// names. Names are matched for duplicates after normalization (exact,
// case-sensitive match); it fails with *DuplicateNameError on a collision
// and with *TooManyVariablesError if len(names) exceeds maxLevel.
func NewVariableSet(names []string, opts ...VariableSetOption) (*VariableSet, error) {
	if len(names) > maxLevel {
		return nil, &TooManyVariablesError{Requested: len(names)}
	}
	v := &VariableSet{
		names: make([]string, len(names)),
		index: make(map[string]int32, len(names)),
	}
	for k, name := range names {
		if _, ok := v.index[name]; ok {
			return nil, &DuplicateNameError{Name: name}
		}
		v.names[k] = name
		v.index[name] = int32(k)
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// NewAnonymousVariableSet builds a VariableSet of n variables named "0"
// through strconv form "n-1" (i.e. their level, as a decimal string).
func NewAnonymousVariableSet(n int, opts ...VariableSetOption) (*VariableSet, error) {
	if n < 0 || n > maxLevel {
		return nil, &TooManyVariablesError{Requested: n}
	}
	names := make([]string, n)
	for k := range names {
		names[k] = fmt.Sprintf("%d", k)
	}
	return NewVariableSet(names, opts...)
}

// Len returns n, the number of variables in the set.
func (v *VariableSet) Len() int {
	return len(v.names)
}

// LevelOf returns the level associated with a variable name. It fails with
// *UnknownNameError if name is not in the set.
func (v *VariableSet) LevelOf(name string) (int32, error) {
	level, ok := v.index[name]
	if !ok {
		return 0, &UnknownNameError{Name: name}
	}
	return level, nil
}

// NameOf returns the variable name at a given level. It fails with
// *UnknownVariableError if level is out of range.
func (v *VariableSet) NameOf(level int32) (string, error) {
	if level < 0 || int(level) >= len(v.names) {
		return "", &UnknownVariableError{Level: level}
	}
	return v.names[level], nil
}

// Names returns a copy of the variable names in level order. Safe to
// modify; it does not alias the VariableSet's internal state.
func (v *VariableSet) Names() []string {
	return slices.Clone(v.names)
}

func (v *VariableSet) checkLevel(level int32) error {
	if level < 0 || int(level) >= len(v.names) {
		return &UnknownVariableError{Level: level}
	}
	return nil
}

func sameUniverse(a, b *VariableSet) bool {
	return a == b || a.Len() == b.Len()
}

// cacheSizeHint returns a starting size for an apply call's task cache and
// reduction table, given the combined node count of the operands. It
// favors WithCacheRatio when set, falls back to WithInitialCacheSize, and
// otherwise scales with the operands themselves; this is only a hint, maps
// grow as needed regardless.
func (v *VariableSet) cacheSizeHint(combinedNodes int) int {
	if v.cacheRatio > 0 {
		return combinedNodes*v.cacheRatio/100 + 1
	}
	if v.cacheSize > 0 {
		return v.cacheSize
	}
	return combinedNodes + 1
}
