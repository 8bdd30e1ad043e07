// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bdd

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// ToString renders f in the canonical textual format: one "V,L,H" record
// per node (including the two terminals), separated by "|", in array order
// (so the root is always the record just before the trailing separator).
// Two Bdd values denote the same function over the same VariableSet if and
// only if they produce the same string, since the array is already reduced
// and ordered (see bdd.go's Equal).
func (f *Bdd) ToString() string {
	var b strings.Builder
	for _, n := range f.nodes {
		fmt.Fprintf(&b, "%d,%d,%d|", n.Var, n.Low, n.High)
	}
	return b.String()
}

// FromString parses the canonical textual format produced by ToString and
// rebuilds the Bdd it encodes over vars. It fails with *SerializationError
// on malformed input and with ErrNotCanonical if the decoded array is not
// reduced and ordered (a corrupted or hand-edited file, for instance).
func FromString(vars *VariableSet, s string) (*Bdd, error) {
	records := strings.Split(s, "|")
	if len(records) > 0 && records[len(records)-1] == "" {
		records = records[:len(records)-1]
	}
	if len(records) < 1 {
		return nil, &SerializationError{Reason: "no records"}
	}
	nodes := make([]node, len(records))
	for i, rec := range records {
		fields := strings.Split(rec, ",")
		if len(fields) != 3 {
			return nil, &SerializationError{Reason: fmt.Sprintf("record %d: expected 3 fields, found %d", i, len(fields))}
		}
		v, err := strconv.ParseInt(fields[0], 10, 32)
		if err != nil {
			return nil, &SerializationError{Reason: fmt.Sprintf("record %d: bad variable field: %v", i, err)}
		}
		lo, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, &SerializationError{Reason: fmt.Sprintf("record %d: bad low field: %v", i, err)}
		}
		hi, err := strconv.ParseInt(fields[2], 10, 32)
		if err != nil {
			return nil, &SerializationError{Reason: fmt.Sprintf("record %d: bad high field: %v", i, err)}
		}
		nodes[i] = node{Var: int32(v), Low: int32(lo), High: int32(hi)}
	}
	f := &Bdd{vars: vars, nodes: nodes}
	if err := f.checkCanonical(); err != nil {
		return nil, err
	}
	return f, nil
}

// checkCanonical verifies the reduced-and-ordered invariant on a freshly
// decoded node array: every pointer is in range, every child has a
// strictly greater level than its parent (or is a terminal), low != high
// for every decision node, and no two decision nodes share a (var, low,
// high) triple. The one-node array of the constant false Bdd is accepted.
func (f *Bdd) checkCanonical() error {
	n := int32(f.vars.Len())
	if len(f.nodes) == 1 && f.nodes[0] == (node{Var: n}) {
		return nil
	}
	if len(f.nodes) < 2 || f.nodes[0] != (node{Var: n}) || f.nodes[1] != (node{Var: n}) {
		return ErrNotCanonical
	}
	seen := make(map[node]int32, len(f.nodes))
	for i := 2; i < len(f.nodes); i++ {
		p := int32(i)
		nd := f.nodes[p]
		if nd.Var < 0 || nd.Var >= n {
			return ErrNotCanonical
		}
		if nd.Low < 0 || int(nd.Low) >= len(f.nodes) || nd.High < 0 || int(nd.High) >= len(f.nodes) {
			return ErrNotCanonical
		}
		if nd.Low == nd.High {
			return ErrNotCanonical
		}
		if f.level(nd.Low) <= nd.Var || f.level(nd.High) <= nd.Var {
			return ErrNotCanonical
		}
		if prev, ok := seen[nd]; ok {
			_ = prev
			return ErrNotCanonical
		}
		seen[nd] = p
	}
	return nil
}

// binaryRecordSize is the byte size of one fixed-width record of the
// compact binary format: 16 bits for the variable (enough
// for spec.md's minimum universe size) and 32 bits each for the low/high
// indices, all little-endian.
const (
	binaryRecordSize = 2 + 4 + 4
)

// ToBytes renders f in the compact binary format: one fixed-width record
// per node (2-byte variable, 4-byte low index, 4-byte high index), all
// little-endian, with no length header; the node count is implicit in the
// byte length of the stream.
func (f *Bdd) ToBytes() []byte {
	out := make([]byte, len(f.nodes)*binaryRecordSize)
	off := 0
	for _, n := range f.nodes {
		binary.LittleEndian.PutUint16(out[off:off+2], uint16(n.Var))
		binary.LittleEndian.PutUint32(out[off+2:off+6], uint32(n.Low))
		binary.LittleEndian.PutUint32(out[off+6:off+10], uint32(n.High))
		off += binaryRecordSize
	}
	return out
}

// FromBytes parses the compact binary format produced by ToBytes and
// rebuilds the Bdd it encodes over vars, with the same canonicity checks
// as FromString. The node count is derived from len(data), not read from
// any header.
func FromBytes(vars *VariableSet, data []byte) (*Bdd, error) {
	if len(data)%binaryRecordSize != 0 {
		return nil, &SerializationError{Reason: fmt.Sprintf("length %d is not a multiple of the record size %d", len(data), binaryRecordSize)}
	}
	count := len(data) / binaryRecordSize
	nodes := make([]node, count)
	off := 0
	for i := range nodes {
		v := binary.LittleEndian.Uint16(data[off : off+2])
		lo := binary.LittleEndian.Uint32(data[off+2 : off+6])
		hi := binary.LittleEndian.Uint32(data[off+6 : off+10])
		nodes[i] = node{Var: int32(v), Low: int32(lo), High: int32(hi)}
		off += binaryRecordSize
	}
	f := &Bdd{vars: vars, nodes: nodes}
	if err := f.checkCanonical(); err != nil {
		return nil, err
	}
	return f, nil
}
