// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the kind of a failure without requiring a type
// assertion. Use errors.Is against these, or errors.As against the richer
// error types declared below for the failures that carry extra context.
var (
	// ErrVariableSetMismatch is returned when an operation combines Bdd
	// values built from incompatible VariableSets.
	ErrVariableSetMismatch = errors.New("bdd: operands come from incompatible variable sets")

	// ErrNotCanonical is returned by a deserializer when the decoded node
	// array fails the reduced-and-ordered check.
	ErrNotCanonical = errors.New("bdd: decoded node array is not reduced and ordered")
)

// DuplicateNameError reports that two variable names collided, after
// normalization, while building a VariableSet.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("bdd: duplicate variable name %q", e.Name)
}

// UnknownNameError reports a variable name that does not exist in the
// relevant VariableSet.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("bdd: unknown variable name %q", e.Name)
}

// UnknownVariableError reports a variable level outside [0, n), where n is
// the size of the VariableSet.
type UnknownVariableError struct {
	Level int32
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("bdd: unknown variable level %d", e.Level)
}

// TooManyVariablesError reports a requested VariableSet size exceeding the
// implementation's level-integer range.
type TooManyVariablesError struct {
	Requested int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("bdd: too many variables requested (%d, max %d)", e.Requested, maxLevel)
}

// ParseError reports a malformed Boolean expression.
type ParseError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bdd: parse error at position %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// SerializationError reports malformed textual or binary input while
// decoding a Bdd.
type SerializationError struct {
	Reason string
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("bdd: serialization error: %s", e.Reason)
}

// InvariantError reports a misused entry point (Apply given the unary
// negation operator, AndAll or OrAll given no operand, NewPermuter given
// invalid levels) or, when the package is built with the `shields` build
// tag, a safety-envelope check failing on a public entry point, which
// indicates an implementation bug.
type InvariantError struct {
	Where string
	What  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("bdd: invariant violated in %s: %s", e.Where, e.What)
}
