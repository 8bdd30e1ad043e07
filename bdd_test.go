// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"math/big"
	"testing"
)

func abcVars(t *testing.T) (*VariableSet, *Bdd, *Bdd, *Bdd) {
	t.Helper()
	vars, err := NewVariableSet([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("NewVariableSet: %v", err)
	}
	a, _ := vars.Var(0)
	b, _ := vars.Var(1)
	c, _ := vars.Var(2)
	return vars, a, b, c
}

func TestLiterals(t *testing.T) {
	vars, a, b, _ := abcVars(t)
	if !a.Equal(a.Clone()) {
		t.Error("Clone should produce an equal Bdd")
	}
	na, _ := vars.NotVar(0)
	if na.Equal(a) {
		t.Error("NotVar(0) should differ from Var(0)")
	}
	if a.Equal(b) {
		t.Error("distinct variables should not be equal")
	}
	if vars.True().IsFalse() || !vars.True().IsTrue() {
		t.Error("True() should be true and not false")
	}
	if vars.False().IsTrue() || !vars.False().IsFalse() {
		t.Error("False() should be false and not true")
	}
}

func TestNotInvolution(t *testing.T) {
	_, a, b, c := abcVars(t)
	f := mustAnd(mustOr(a, b), c.Not())
	if !f.Not().Not().Equal(f) {
		t.Error("not(not(f)) should equal f")
	}
}

func TestDeMorgan(t *testing.T) {
	_, a, b, _ := abcVars(t)
	lhs := mustAnd(a, b).Not()
	rhs := mustOr(a.Not(), b.Not())
	if !lhs.Equal(rhs) {
		t.Error("not(and(a,b)) should equal or(not a, not b)")
	}
}

func TestAndOrCommutativeAssociative(t *testing.T) {
	_, a, b, c := abcVars(t)
	if !mustAnd(a, b).Equal(mustAnd(b, a)) {
		t.Error("and should be commutative")
	}
	if !mustAnd(mustAnd(a, b), c).Equal(mustAnd(a, mustAnd(b, c))) {
		t.Error("and should be associative")
	}
	if !mustOr(a, b).Equal(mustOr(b, a)) {
		t.Error("or should be commutative")
	}
	if !mustOr(mustOr(a, b), c).Equal(mustOr(a, mustOr(b, c))) {
		t.Error("or should be associative")
	}
}

func TestIteLaw(t *testing.T) {
	_, a, b, c := abcVars(t)
	ite, err := Ite(a, b, c)
	if err != nil {
		t.Fatalf("Ite: %v", err)
	}
	want := mustOr(mustAnd(a, b), mustAnd(a.Not(), c))
	if !ite.Equal(want) {
		t.Error("ite(f,g,h) should equal or(and(f,g), and(not f, h))")
	}
	if ite.Cardinality().Cmp(big.NewInt(4)) != 0 {
		t.Errorf("ite(a,b,c) should have cardinality 4, got %s", ite.Cardinality())
	}
	if ite.ToString() != want.ToString() {
		t.Error("ite(f,g,h) and its expansion should share the same serialized form")
	}
}

func TestExistsForAllSingleVarLaw(t *testing.T) {
	_, a, b, _ := abcVars(t)
	f := mustAnd(a, b)
	lo := Restrict(f, map[int32]bool{1: false})
	hi := Restrict(f, map[int32]bool{1: true})
	if !Exists(f, []int32{1}).Equal(mustOr(lo, hi)) {
		t.Error("exists({v},f) should equal or(restrict(f,v=0), restrict(f,v=1))")
	}
	if !ForAll(f, []int32{1}).Equal(mustAnd(lo, hi)) {
		t.Error("for_all({v},f) should equal and(restrict(f,v=0), restrict(f,v=1))")
	}
}

func TestCardinalityLaws(t *testing.T) {
	vars, a, b, _ := abcVars(t)
	n := int64(1) << uint(vars.Len())
	f := mustAnd(a, b)
	sum := new(big.Int).Add(f.Cardinality(), f.Not().Cardinality())
	if sum.Cmp(big.NewInt(n)) != 0 {
		t.Errorf("cardinality(f)+cardinality(not f) should be %d, got %s", n, sum)
	}
	g := b
	lhs := new(big.Int).Add(mustOr(f, g).Cardinality(), mustAnd(f, g).Cardinality())
	rhs := new(big.Int).Add(f.Cardinality(), g.Cardinality())
	if lhs.Cmp(rhs) != 0 {
		t.Error("cardinality(or(f,g))+cardinality(and(f,g)) should equal cardinality(f)+cardinality(g)")
	}
}

func TestEvalCoherence(t *testing.T) {
	_, a, b, _ := abcVars(t)
	f := mustAnd(a, b)
	g := mustOr(a, b.Not())
	and, _ := f.And(g)
	for _, val := range []Valuation{{false, false, false}, {true, false, false}, {true, true, false}, {false, true, true}} {
		got := and.Eval(val)
		want := f.Eval(val) && g.Eval(val)
		if got != want {
			t.Errorf("eval(and(f,g), %v) = %v, want %v", val, got, want)
		}
	}
}

// Scenario 1 of the end-to-end examples: f := (a <=> !b) | (c xor a).
func TestScenarioOne(t *testing.T) {
	vars, a, b, c := abcVars(t)
	iff, _ := a.Iff(b.Not())
	xor, _ := c.Xor(a)
	f, _ := iff.Or(xor)

	if f.Cardinality().Cmp(big.NewInt(6)) != 0 {
		t.Errorf("cardinality(f) should be 6, got %s", f.Cardinality())
	}
	if !f.Eval(Valuation{true, false, false}) {
		t.Error("eval(f, a=1,b=0,c=0) should be true")
	}
	if f.Eval(Valuation{false, false, false}) {
		t.Error("eval(f, a=0,b=0,c=0) should be false")
	}

	parsed, err := vars.EvalExpressionString("(a <=> !b) | c ^ a")
	if err != nil {
		t.Fatalf("EvalExpressionString: %v", err)
	}
	if !parsed.Equal(f) {
		t.Error("parsed expression should equal the structurally-built scenario 1 Bdd")
	}

	structural := Bin{Op: Or, X: Bin{Op: Iff, X: VarLevel(0), Y: Not(VarLevel(1))}, Y: Bin{Op: Xor, X: VarLevel(2), Y: VarLevel(0)}}
	built, err := structural.Build(vars)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !built.Equal(f) {
		t.Error("structural builder should agree with eval_expression_string on the same tree")
	}
}

// Scenario 4: exists({b}, and(a, b)) = a.
func TestScenarioFourExists(t *testing.T) {
	_, a, b, _ := abcVars(t)
	g := mustAnd(a, b)
	if !Exists(g, []int32{1}).Equal(a) {
		t.Error("exists({b}, and(a,b)) should equal a")
	}
}

// Scenario 5: rel_product(and(a,b), or(b,c), {b}) equals a.
func TestScenarioFiveRelProduct(t *testing.T) {
	_, a, b, c := abcVars(t)
	f := mustAnd(a, b)
	g := mustOr(b, c)
	res, err := RelProduct(f, g, []int32{1})
	if err != nil {
		t.Fatalf("RelProduct: %v", err)
	}
	if !res.Equal(a) {
		t.Errorf("rel_product(and(a,b), or(b,c), {b}) should structurally equal a, got %s", res.ToString())
	}
}

// Scenario 6: ite(a,b,c) equals or(and(a,b), and(not a,c)), cardinality 4, same
// serialized form.
func TestScenarioSixIte(t *testing.T) {
	_, a, b, c := abcVars(t)
	ite, err := Ite(a, b, c)
	if err != nil {
		t.Fatalf("Ite: %v", err)
	}
	want := mustOr(mustAnd(a, b), mustAnd(a.Not(), c))
	if !ite.Equal(want) {
		t.Error("ite(a,b,c) should equal or(and(a,b), and(not a,c))")
	}
	if ite.Cardinality().Cmp(big.NewInt(4)) != 0 {
		t.Errorf("ite(a,b,c) should have cardinality 4, got %s", ite.Cardinality())
	}
	if ite.ToString() != want.ToString() {
		t.Error("ite(a,b,c) and its expansion should share the same serialized form")
	}
}

func TestVariableSetMismatch(t *testing.T) {
	vars1, _ := NewAnonymousVariableSet(3)
	vars2, _ := NewAnonymousVariableSet(4)
	f, _ := vars1.Var(0)
	g, _ := vars2.Var(0)
	if _, err := f.And(g); err != ErrVariableSetMismatch {
		t.Errorf("And across incompatible VariableSets should fail with ErrVariableSetMismatch, got %v", err)
	}
}
