// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"fmt"
	"strings"
)

// ToDot renders f as a Graphviz dot graph: a filled box for each terminal
// reached from the root, a circle per decision node labeled with its
// variable name, a dashed edge to the low child and a solid edge to the high
// child. A terminal no node reaches (the False terminal of the constant true
// Bdd, for instance) is omitted.
func (f *Bdd) ToDot() string {
	var b strings.Builder
	b.WriteString("digraph G {\n")
	b.WriteString("  center = true;\n")

	trueUsed, falseUsed := false, false
	seen := make(map[int32]bool)
	var walk func(p int32)
	walk = func(p int32) {
		if seen[p] {
			return
		}
		seen[p] = true
		if isTerminalPtr(p) {
			if p == ptrTrue {
				trueUsed = true
			} else {
				falseUsed = true
			}
			return
		}
		fmt.Fprintf(&b, "  %d [shape=circle, label=%s];\n", p, dotLabel(f.vars, f.nodes[p].Var))
		lo, hi := f.low(p), f.high(p)
		fmt.Fprintf(&b, "  %d -> %d [style=dashed];\n", p, lo)
		fmt.Fprintf(&b, "  %d -> %d [style=solid];\n", p, hi)
		walk(lo)
		walk(hi)
	}
	if !f.IsTrivial() {
		walk(f.root())
	} else if f.IsTrue() {
		trueUsed = true
	} else {
		falseUsed = true
	}
	if trueUsed {
		fmt.Fprintf(&b, "  %d [shape=box, style=filled, label=\"1\"];\n", ptrTrue)
	}
	if falseUsed {
		fmt.Fprintf(&b, "  %d [shape=box, style=filled, label=\"0\"];\n", ptrFalse)
	}
	b.WriteString("}\n")
	return b.String()
}

// dotLabel produces an HTML-like label naming a variable by its level and,
// when the VariableSet gives it one, its name.
func dotLabel(vars *VariableSet, level int32) string {
	name, err := vars.NameOf(level)
	if err != nil {
		return fmt.Sprintf("<<FONT POINT-SIZE=\"20\">%d</FONT>>", level)
	}
	return fmt.Sprintf("<<FONT POINT-SIZE=\"20\">%s</FONT> <FONT POINT-SIZE=\"10\">[%d]</FONT>>", name, level)
}

// ToExpr converts f back into a structural Expr tree (builder.go), referring
// to the tested variable by its level (VarLevel) at every decision node and
// collapsing the two constants to Const. The result always Builds back to a
// Bdd equal to f.
func (f *Bdd) ToExpr() Expr {
	if f.IsFalse() {
		return Const(false)
	}
	if f.IsTrue() {
		return Const(true)
	}
	cache := make(map[int32]Expr, len(f.nodes))
	var rec func(p int32) Expr
	rec = func(p int32) Expr {
		if isTerminalPtr(p) {
			return Const(terminalValue(p))
		}
		if e, ok := cache[p]; ok {
			return e
		}
		level := f.nodes[p].Var
		var v Expr = VarLevel(level)
		lo, hi := rec(f.low(p)), rec(f.high(p))
		e := IteExpr(v, hi, lo)
		cache[p] = e
		return e
	}
	return rec(f.root())
}
