// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd_test

import (
	"fmt"

	"github.com/dalzilio/bdd"
)

// This example shows the basic usage of the package: create a VariableSet,
// parse a Boolean expression, project some variables away, and count the
// satisfying assignments of the result.
func Example_basic() {
	vars, _ := bdd.NewVariableSet([]string{"x0", "x1", "x2", "x3", "x4", "x5"})
	// f == x3 & (x1 | !x3 | x4)
	f, _ := vars.EvalExpressionString("x3 & (x1 | !x3 | x4)")
	// n3 == ∃x2,x3,x5 . f
	n3 := bdd.Exists(f, []int32{2, 3, 5})
	fmt.Printf("Number of sat. assignments: %s\n", n3.Cardinality())
	// Output:
	// Number of sat. assignments: 48
}
