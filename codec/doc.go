// SPDX-License-Identifier: MIT

// Package codec fixes the canonical byte format of a graph.
//
// The format is a pure function of structure and content; no VertexID or
// EdgeID is ever written. Endpoints are written as positions in the vertex
// order chosen by the caller (normally a canonical ordering).
//
// Layout
//
//	graph   := "GSC1" uvarint(n) uvarint(m) vertex{n} edge{m}
//	vertex  := 'V' uvarint(#labels) string{#labels} props
//	edge    := 'E' string(label) uvarint(srcPos) uvarint(dstPos) props
//	props   := uvarint(#keys) (string(key) value){#keys}      keys ascending
//	string  := uvarint(len) bytes
//	value   := 'n'                                             null
//	         | 'f' | 't'                                       bool
//	         | 'd' uint64be(bits)                              number
//	         | 's' string
//	         | 'l' uvarint(count) value{count}
//	         | 'm' props
//
// Numbers are IEEE-754 bits in big-endian order with -0 folded into +0 and
// every NaN folded into one quiet NaN. Labels keep their stored order.
//
// Decode reverses the format into a fresh core.Graph whose vertices are
// numbered in record order.
package codec
