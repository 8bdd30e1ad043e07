// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

// AndAll folds And over a sequence of Bdd values sharing a VariableSet. It
// requires at least one operand, since there is no VariableSet to build a
// trivial result from when given none; it fails with ErrVariableSetMismatch
// as soon as two operands disagree.
func AndAll(fs ...*Bdd) (*Bdd, error) {
	return foldBinary(And, fs)
}

// OrAll folds Or over a sequence of Bdd values sharing a VariableSet. It
// requires at least one operand, for the same reason as AndAll.
func OrAll(fs ...*Bdd) (*Bdd, error) {
	return foldBinary(Or, fs)
}

func foldBinary(op Operator, fs []*Bdd) (*Bdd, error) {
	if len(fs) == 0 {
		return nil, &InvariantError{Where: "foldBinary", What: "at least one operand is required to infer the VariableSet"}
	}
	acc := fs[0]
	for _, f := range fs[1:] {
		var err error
		acc, err = apply(acc, f, op)
		if err != nil {
			return nil, err
		}
	}
	return acc, nil
}
