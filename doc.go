// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package bdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (ROBDD), a data structure used to represent Boolean functions over a
fixed, ordered set of propositional variables.

Basics

A Bdd is created against a VariableSet, an immutable, ordered dictionary of
variable names that fixes the universe and level order shared by every Bdd
built from it. Each variable is identified by its level, an integer in the
range [0..n) where n is the size of the VariableSet. Level 0 is closest to the
root.

Unlike BDD packages that borrow BuDDy's shared unique table and garbage
collector, a Bdd here owns its node array exclusively: there is no shared,
process-wide interning table and no reference counting. Combining two Bdd
built from the same VariableSet is always safe; a Bdd is immutable after
construction and may be freely shared, copied, or passed across goroutines
with no synchronization.

Construction

Bdd values come from four places: a literal constructed directly from a
VariableSet (Var, NotVar, True, False), the expression front end
(VariableSet.EvalExpressionString, parsing a textual formula), the structural builder (Build,
composing an Expr tree from existing Bdd leaves), or deserialization
(FromString, FromBytes).

Apply engine

Every binary operation (And, Or, Xor, ...) and every derived traversal
(Restrict, Exists, ForAll, RelProduct) funnels through a single apply engine
(see apply.go) parameterized by a truth table and, for the derived
traversals, a "trigger" callback that can short-circuit a subtree before it is
recursively rebuilt. The engine maintains two per-call tables: a task cache,
mapping pairs of input pointers to an output pointer (ensuring termination and
sharing of recursive calls), and a reduction table, ensuring at most one
output node exists for any (var, low, high) triple (ensuring canonicity).
Both tables are discarded when the call returns.

Use of build tags

Compiling with the `shields` build tag enables an additional safety envelope
around the exported operators that build a new Bdd: every result is checked
again for in-range pointers and for being reduced and ordered before it is
returned. Operand VariableSet compatibility is checked in every build. This
is intended for tests and development; production builds should omit it.
*/
package bdd
