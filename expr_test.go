// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"testing"

	"github.com/dalzilio/bdd"
)

func TestEvalExpressionStringAgreesWithDirectConstruction(t *testing.T) {
	vars, err := bdd.NewVariableSet([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("NewVariableSet: %v", err)
	}
	a, _ := vars.Var(0)
	b, _ := vars.Var(1)
	c, _ := vars.Var(2)

	iff, _ := a.Iff(b.Not())
	xor, _ := c.Xor(a)
	want, _ := iff.Or(xor)

	got, err := vars.EvalExpressionString("(a <=> !b) | c ^ a")
	if err != nil {
		t.Fatalf("EvalExpressionString: %v", err)
	}
	if !got.Equal(want) {
		t.Error("parsed expression should equal the directly-constructed Bdd")
	}
}

func TestEvalExpressionStringPrecedence(t *testing.T) {
	vars, _ := bdd.NewVariableSet([]string{"a", "b"})
	a, _ := vars.Var(0)
	b, _ := vars.Var(1)

	// & binds tighter than |.
	want, _ := a.Or(mustAnd2(a.Not(), b))
	got, err := vars.EvalExpressionString("a | !a & b")
	if err != nil {
		t.Fatalf("EvalExpressionString: %v", err)
	}
	if !got.Equal(want) {
		t.Error("'&' should bind tighter than '|'")
	}

	// => is right-associative: a => b => a means a => (b => a), a tautology.
	taut, err := vars.EvalExpressionString("a => b => a")
	if err != nil {
		t.Fatalf("EvalExpressionString: %v", err)
	}
	if !taut.IsTrue() {
		t.Error("'a => b => a' should be a tautology under right-associative '=>'")
	}
}

func mustAnd2(f, g *bdd.Bdd) *bdd.Bdd {
	r, err := f.And(g)
	if err != nil {
		panic(err)
	}
	return r
}

func TestEvalExpressionStringErrors(t *testing.T) {
	vars, _ := bdd.NewVariableSet([]string{"a", "b"})

	if _, err := vars.EvalExpressionString("a &"); err == nil {
		t.Error("trailing operator should fail to parse")
	} else if _, ok := err.(*bdd.ParseError); !ok {
		t.Errorf("expected *ParseError, got %T", err)
	}

	if _, err := vars.EvalExpressionString("a & zz"); err == nil {
		t.Error("unknown variable name should fail")
	} else if _, ok := err.(*bdd.UnknownNameError); !ok {
		t.Errorf("expected *UnknownNameError, got %T", err)
	}

	if _, err := vars.EvalExpressionString("(a & b"); err == nil {
		t.Error("unbalanced parenthesis should fail to parse")
	}
}

func TestStructuralBuilderMatchesExpressionFrontEnd(t *testing.T) {
	vars, _ := bdd.NewVariableSet([]string{"a", "b", "c"})

	expr := bdd.BinOp(bdd.Iff, bdd.VarName("a"), bdd.Not(bdd.VarName("b")))
	built, err := expr.Build(vars)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	parsed, err := vars.EvalExpressionString("a <=> !b")
	if err != nil {
		t.Fatalf("EvalExpressionString: %v", err)
	}
	if !built.Equal(parsed) {
		t.Error("structural builder should agree with the expression front end")
	}

	lit := bdd.Lit{Bdd: built}
	relit, err := lit.Build(vars)
	if err != nil {
		t.Fatalf("Lit.Build: %v", err)
	}
	if !relit.Equal(built) {
		t.Error("Lit should round-trip an already-built Bdd unchanged")
	}
}
