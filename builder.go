// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// Expr is a structural Boolean-expression tree a host program can build up
// from Go values instead of a parsed string, then fold into a *Bdd with
// Build. It covers every connective EvalExpressionString's grammar exposes
// (expr.go), plus the other named Operators and if-then-else, and a string
// expression and the equivalent Expr tree always evaluate to the same Bdd.
type Expr interface {
	// Build folds the expression into a Bdd over v, recursively
	// evaluating children first.
	Build(v *VariableSet) (*Bdd, error)
}

// Lit wraps an already-built Bdd as a leaf of an Expr tree: the usual way
// to mix in a Bdd obtained some other way (deserialized, or itself the
// result of an earlier Build) into a larger structural expression.
type Lit struct{ Bdd *Bdd }

// Build returns the wrapped Bdd unchanged. It fails with
// ErrVariableSetMismatch if the literal was built from a different
// VariableSet than v.
func (l Lit) Build(v *VariableSet) (*Bdd, error) {
	if !sameUniverse(l.Bdd.vars, v) {
		return nil, ErrVariableSetMismatch
	}
	return l.Bdd, nil
}

// Const is the Boolean constant leaf.
type Const bool

func (c Const) Build(v *VariableSet) (*Bdd, error) { return v.From(bool(c)), nil }

// VarName is a leaf referring to a variable by name.
type VarName string

func (n VarName) Build(v *VariableSet) (*Bdd, error) { return v.VarByName(string(n)) }

// VarLevel is a leaf referring to a variable by level.
type VarLevel int32

func (n VarLevel) Build(v *VariableSet) (*Bdd, error) { return v.Var(int32(n)) }

// Not builds the negation of x; it is the only unary node the grammar
// needs.
func Not(x Expr) Expr { return unary{x} }

type unary struct{ x Expr }

func (u unary) Build(v *VariableSet) (*Bdd, error) {
	x, err := u.x.Build(v)
	if err != nil {
		return nil, err
	}
	return x.Not(), nil
}

// Bin is a binary expression node combining two sub-expressions with one of
// the named Operator connectives.
type Bin struct {
	Op   Operator
	X, Y Expr
}

func (b Bin) Build(v *VariableSet) (*Bdd, error) {
	x, err := b.X.Build(v)
	if err != nil {
		return nil, err
	}
	y, err := b.Y.Build(v)
	if err != nil {
		return nil, err
	}
	return apply(x, y, b.Op)
}

// BinOp builds a Bin node for the named connective. Named wrappers below
// (AndExpr, OrExpr, ...) exist so a structural expression reads like the
// direct *Bdd API without colliding with the Operator constants of the same
// name in operator.go.
func BinOp(op Operator, x, y Expr) Expr { return Bin{Op: op, X: x, Y: y} }

func AndExpr(x, y Expr) Expr    { return Bin{Op: And, X: x, Y: y} }
func OrExpr(x, y Expr) Expr     { return Bin{Op: Or, X: x, Y: y} }
func XorExpr(x, y Expr) Expr    { return Bin{Op: Xor, X: x, Y: y} }
func NandExpr(x, y Expr) Expr   { return Bin{Op: Nand, X: x, Y: y} }
func NorExpr(x, y Expr) Expr    { return Bin{Op: Nor, X: x, Y: y} }
func ImpExpr(x, y Expr) Expr    { return Bin{Op: Imp, X: x, Y: y} }
func IffExpr(x, y Expr) Expr    { return Bin{Op: Iff, X: x, Y: y} }
func DiffExpr(x, y Expr) Expr   { return Bin{Op: Diff, X: x, Y: y} }
func LessExpr(x, y Expr) Expr   { return Bin{Op: Less, X: x, Y: y} }
func InvImpExpr(x, y Expr) Expr { return Bin{Op: InvImp, X: x, Y: y} }

// IteExpr builds the structural if-then-else node.
func IteExpr(f, g, h Expr) Expr { return iteExpr{f, g, h} }

type iteExpr struct{ f, g, h Expr }

func (e iteExpr) Build(v *VariableSet) (*Bdd, error) {
	f, err := e.f.Build(v)
	if err != nil {
		return nil, err
	}
	g, err := e.g.Build(v)
	if err != nil {
		return nil, err
	}
	h, err := e.h.Build(v)
	if err != nil {
		return nil, err
	}
	return Ite(f, g, h)
}
