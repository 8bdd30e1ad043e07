// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build shields

// +build shields

package bdd

// shieldBdd re-verifies the reduced-and-ordered invariant on a value about
// to leave a public entry point that has no error return of its own (Not,
// Restrict, Exists, ForAll, Permute, ...). A violation here can only mean a
// bug in the apply engine itself, so it panics rather than returning an
// error a caller could plausibly recover from.
func shieldBdd(where string, f *Bdd) *Bdd {
	if err := f.checkCanonical(); err != nil {
		panic(&InvariantError{Where: where, What: err.Error()})
	}
	return f
}

// shieldResult is the same check for entry points that already return an
// error (Apply, Ite, RelProduct, AndAll, OrAll, ...): a violation surfaces
// as an ordinary *InvariantError instead of a panic, since the caller is
// already set up to handle an error from this call.
func shieldResult(where string, f *Bdd, err error) (*Bdd, error) {
	if err != nil {
		return f, err
	}
	if cerr := f.checkCanonical(); cerr != nil {
		return nil, &InvariantError{Where: where, What: cerr.Error()}
	}
	return f, nil
}
