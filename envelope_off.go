// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !shields

// +build !shields

package bdd

// shieldBdd is a no-op pass-through in production builds; see envelope.go
// for the `shields` build.
func shieldBdd(where string, f *Bdd) *Bdd { return f }

// shieldResult is a no-op pass-through in production builds; see
// envelope.go for the `shields` build.
func shieldResult(where string, f *Bdd, err error) (*Bdd, error) { return f, err }
