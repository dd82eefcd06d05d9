// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"math"

	"github.com/katalvlaran/graphseal/core"
)

// Magic opens every canonical graph encoding.
const Magic = "GSC1"

// Record and value tags.
const (
	tagVertex = 'V'
	tagEdge   = 'E'

	tagNull   = 'n'
	tagFalse  = 'f'
	tagTrue   = 't'
	tagNumber = 'd'
	tagString = 's'
	tagList   = 'l'
	tagMap    = 'm'
)

// canonicalNaN is the single NaN bit pattern written for any NaN.
const canonicalNaN = 0x7FF8000000000001

// Writer accumulates a canonical encoding.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Header writes the magic and the vertex/edge counts.
func (w *Writer) Header(vertices, edges int) {
	w.buf = append(w.buf, Magic...)
	w.buf = binary.AppendUvarint(w.buf, uint64(vertices))
	w.buf = binary.AppendUvarint(w.buf, uint64(edges))
}

// Vertex appends a vertex record.
func (w *Writer) Vertex(v *core.VertexData) { w.buf = AppendVertex(w.buf, v) }

// Edge appends an edge record with endpoints given as vertex positions.
func (w *Writer) Edge(e *core.EdgeData, srcPos, dstPos int) {
	w.buf = AppendEdge(w.buf, e, srcPos, dstPos)
}

// Record appends a record produced earlier by AppendVertex or AppendEdge.
func (w *Writer) Record(rec []byte) { w.buf = append(w.buf, rec...) }

// Bytes returns the accumulated encoding. The slice aliases the Writer.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// AppendVertex appends the record of v to dst.
func AppendVertex(dst []byte, v *core.VertexData) []byte {
	dst = append(dst, tagVertex)
	dst = binary.AppendUvarint(dst, uint64(len(v.Labels)))
	for _, l := range v.Labels {
		dst = AppendString(dst, l)
	}

	return AppendProperties(dst, v.Properties)
}

// AppendEdge appends the record of e to dst.
func AppendEdge(dst []byte, e *core.EdgeData, srcPos, dstPos int) []byte {
	dst = append(dst, tagEdge)
	dst = AppendString(dst, e.Label)
	dst = binary.AppendUvarint(dst, uint64(srcPos))
	dst = binary.AppendUvarint(dst, uint64(dstPos))

	return AppendProperties(dst, e.Properties)
}

// AppendEdgeContent appends an edge record without endpoints. It is the
// content key of an edge when positions are not yet known.
func AppendEdgeContent(dst []byte, e *core.EdgeData) []byte {
	dst = append(dst, tagEdge)
	dst = AppendString(dst, e.Label)

	return AppendProperties(dst, e.Properties)
}

// AppendProperties appends a property map with keys in ascending order.
func AppendProperties(dst []byte, props map[string]core.Value) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(props)))
	for _, k := range core.SortedKeys(props) {
		dst = AppendString(dst, k)
		dst = AppendValue(dst, props[k])
	}

	return dst
}

// AppendValue appends one tagged value.
func AppendValue(dst []byte, v core.Value) []byte {
	switch v.Kind() {
	case core.KindBool:
		if b, _ := v.AsBool(); b {
			return append(dst, tagTrue)
		}
		return append(dst, tagFalse)
	case core.KindNumber:
		f, _ := v.AsNumber()
		return binary.BigEndian.AppendUint64(append(dst, tagNumber), numberBits(f))
	case core.KindString:
		s, _ := v.AsString()
		return AppendString(append(dst, tagString), s)
	case core.KindList:
		items := v.Items()
		dst = binary.AppendUvarint(append(dst, tagList), uint64(len(items)))
		for _, it := range items {
			dst = AppendValue(dst, it)
		}
		return dst
	case core.KindMap:
		keys := v.Keys()
		dst = binary.AppendUvarint(append(dst, tagMap), uint64(len(keys)))
		for _, k := range keys {
			x, _ := v.Field(k)
			dst = AppendString(dst, k)
			dst = AppendValue(dst, x)
		}
		return dst
	default:
		return append(dst, tagNull)
	}
}

// AppendString appends a length-prefixed string.
func AppendString(dst []byte, s string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(s)))

	return append(dst, s...)
}

// AppendUvarint appends x in unsigned varint form.
func AppendUvarint(dst []byte, x uint64) []byte { return binary.AppendUvarint(dst, x) }

func numberBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return canonicalNaN
	case f == 0:
		return 0
	default:
		return math.Float64bits(f)
	}
}
