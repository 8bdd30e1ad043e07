// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"testing"
)

// milnerReachable computes the reachable state space of a system of n
// Milner cyclers, directly adapted from the examples distributed with the
// BuDDy library. Each cycler has three Boolean state variables and their
// primed counterparts (c, c', t, t', h, h'); for this system there is a
// closed-form formula for the size of the reachable state space, which lets
// the test check the fixpoint converges to the right answer.
func milnerReachable(n int) (*Bdd, error) {
	vars, err := NewAnonymousVariableSet(n * 6, WithCacheRatio(25))
	if err != nil {
		return nil, err
	}
	c := make([]*Bdd, n)
	cp := make([]*Bdd, n)
	t := make([]*Bdd, n)
	tp := make([]*Bdd, n)
	h := make([]*Bdd, n)
	hp := make([]*Bdd, n)
	for i := 0; i < n; i++ {
		c[i], _ = vars.Var(int32(i * 6))
		cp[i], _ = vars.Var(int32(i*6 + 1))
		t[i], _ = vars.Var(int32(i*6 + 2))
		tp[i], _ = vars.Var(int32(i*6 + 3))
		h[i], _ = vars.Var(int32(i*6 + 4))
		hp[i], _ = vars.Var(int32(i*6 + 5))
	}

	var primed, unprimed []int32
	for i := 0; i < n; i++ {
		primed = append(primed, int32(i*6+1), int32(i*6+3), int32(i*6+5))
		unprimed = append(unprimed, int32(i*6), int32(i*6+2), int32(i*6+4))
	}
	toUnprimed, err := NewPermuter(vars, primed, unprimed)
	if err != nil {
		return nil, err
	}

	// The initial state: every cycler idle.
	init := mustAndN(c[0], mustNot(h[0]), mustNot(t[0]))
	for i := 1; i < n; i++ {
		init = mustAnd(init, mustAndN(mustNot(c[i]), mustNot(h[i]), mustNot(t[i])))
	}

	// unchangedExcept builds the Bdd asserting that every cycler other than
	// z keeps its (x, y) pair of state variables equal.
	unchangedExcept := func(x, y []*Bdd, z int) *Bdd {
		res := vars.True()
		for i := 0; i < n; i++ {
			if i != z {
				res = mustAnd(res, mustIff(x[i], y[i]))
			}
		}
		return res
	}

	// The transition relation, one disjunct per cycler per local move.
	trans := vars.False()
	for i := 0; i < n; i++ {
		p1 := mustAndN(c[i], mustNot(cp[i]), tp[i], mustNot(t[i]), hp[i],
			unchangedExcept(c, cp, i), unchangedExcept(t, tp, i), unchangedExcept(h, hp, i))
		p2 := mustAndN(h[i], mustNot(hp[i]), cp[(i+1)%n],
			unchangedExcept(c, cp, (i+1)%n), unchangedExcept(h, hp, i), unchangedExcept(t, tp, n))
		e := mustAndN(t[i], mustNot(tp[i]), unchangedExcept(t, tp, i), unchangedExcept(h, hp, n), unchangedExcept(c, cp, n))
		trans = mustOrN(trans, p1, p2, e)
	}

	// Fixpoint: repeatedly fold in one relational step until nothing new is
	// reached. RelProduct fuses the conjunction with the unprimed variables'
	// projection; Permute then folds the primed successor state back onto
	// the unprimed variables so it can be compared and re-used as a source.
	reached := init
	for {
		step, err := RelProduct(reached, trans, unprimed)
		if err != nil {
			return nil, err
		}
		step = step.Permute(toUnprimed)
		next, err := reached.Or(step)
		if err != nil {
			return nil, err
		}
		if next.Equal(reached) {
			return reached, nil
		}
		reached = next
	}
}

func mustAnd(f, g *Bdd) *Bdd {
	r, err := f.And(g)
	if err != nil {
		panic(err)
	}
	return r
}

func mustOr(f, g *Bdd) *Bdd {
	r, err := f.Or(g)
	if err != nil {
		panic(err)
	}
	return r
}

func mustIff(f, g *Bdd) *Bdd {
	r, err := f.Iff(g)
	if err != nil {
		panic(err)
	}
	return r
}

func mustNot(f *Bdd) *Bdd { return f.Not() }

func mustAndN(fs ...*Bdd) *Bdd {
	r, err := AndAll(fs...)
	if err != nil {
		panic(err)
	}
	return r
}

func mustOrN(fs ...*Bdd) *Bdd {
	r, err := OrAll(fs...)
	if err != nil {
		panic(err)
	}
	return r
}

func TestMilner(t *testing.T) {
	for _, n := range []int{4, 5, 7} {
		reached, err := milnerReachable(n)
		if err != nil {
			t.Fatalf("milnerReachable(%d): %v", n, err)
		}
		expected := big.NewInt(int64(n))
		pow := big.NewInt(0)
		pow.SetBit(pow, 4*n+1, 1)
		expected.Mul(expected, pow)
		actual := reached.Cardinality()
		if actual.Cmp(expected) != 0 {
			t.Errorf("Milner(%d): expected %s reachable states, got %s", n, expected, actual)
		}
	}
}
