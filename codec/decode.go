// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphseal/core"
)

// ErrMalformed is returned by Decode for input that is not a canonical encoding.
var ErrMalformed = errors.New("codec: malformed canonical encoding")

// maxNesting bounds list/map recursion while decoding.
const maxNesting = 64

type reader struct {
	b   []byte
	off int
}

// Decode rebuilds a graph from its canonical encoding. Vertex IDs are
// assigned in record order, so position i becomes VertexID(i+1) on a
// default graph.
func Decode(b []byte, opts ...core.GraphOption) (*core.Graph, error) {
	r := &reader{b: b}
	if len(b) < len(Magic) || string(b[:len(Magic)]) != Magic {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformed)
	}
	r.off = len(Magic)
	n, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	m, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	// Every record takes at least two bytes; reject absurd counts early.
	if n > uint64(len(b)) || m > uint64(len(b)) {
		return nil, fmt.Errorf("%w: record count exceeds input", ErrMalformed)
	}

	g := core.NewGraph(opts...)
	ids := make([]core.VertexID, n)
	for i := range ids {
		v, err := r.vertex()
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		ids[i] = g.AddVertex(v)
	}
	for i := uint64(0); i < m; i++ {
		e, src, dst, err := r.edge()
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if src >= n || dst >= n {
			return nil, fmt.Errorf("%w: edge %d endpoint out of range", ErrMalformed, i)
		}
		e.Src, e.Dst = ids[src], ids[dst]
		if _, err := g.AddEdge(e); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	if r.off != len(b) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformed, len(b)-r.off)
	}

	return g, nil
}

func (r *reader) vertex() (core.VertexData, error) {
	var v core.VertexData
	if err := r.expect(tagVertex); err != nil {
		return v, err
	}
	k, err := r.uvarint()
	if err != nil {
		return v, err
	}
	if k > uint64(len(r.b)-r.off) {
		return v, fmt.Errorf("%w: label count", ErrMalformed)
	}
	v.Labels = make([]string, 0, k)
	for j := uint64(0); j < k; j++ {
		s, err := r.readString()
		if err != nil {
			return v, err
		}
		v.Labels = append(v.Labels, s)
	}
	v.Properties, err = r.props(0)

	return v, err
}

func (r *reader) edge() (core.EdgeData, uint64, uint64, error) {
	var e core.EdgeData
	if err := r.expect(tagEdge); err != nil {
		return e, 0, 0, err
	}
	label, err := r.readString()
	if err != nil {
		return e, 0, 0, err
	}
	src, err := r.uvarint()
	if err != nil {
		return e, 0, 0, err
	}
	dst, err := r.uvarint()
	if err != nil {
		return e, 0, 0, err
	}
	e.Label = label
	e.Properties, err = r.props(0)

	return e, src, dst, err
}

func (r *reader) props(depth int) (map[string]core.Value, error) {
	k, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	if k == 0 {
		return nil, nil
	}
	if k > uint64(len(r.b)-r.off) {
		return nil, fmt.Errorf("%w: property count", ErrMalformed)
	}
	m := make(map[string]core.Value, k)
	for j := uint64(0); j < k; j++ {
		key, err := r.readString()
		if err != nil {
			return nil, err
		}
		v, err := r.value(depth)
		if err != nil {
			return nil, err
		}
		m[key] = v
	}

	return m, nil
}

func (r *reader) value(depth int) (core.Value, error) {
	if depth > maxNesting {
		return core.Value{}, fmt.Errorf("%w: nesting too deep", ErrMalformed)
	}
	tag, err := r.readByte()
	if err != nil {
		return core.Value{}, err
	}
	switch tag {
	case tagNull:
		return core.Null(), nil
	case tagFalse:
		return core.Bool(false), nil
	case tagTrue:
		return core.Bool(true), nil
	case tagNumber:
		if r.off+8 > len(r.b) {
			return core.Value{}, fmt.Errorf("%w: short number", ErrMalformed)
		}
		bits := binary.BigEndian.Uint64(r.b[r.off:])
		r.off += 8
		return core.Number(math.Float64frombits(bits)), nil
	case tagString:
		s, err := r.readString()
		return core.String(s), err
	case tagList:
		k, err := r.uvarint()
		if err != nil {
			return core.Value{}, err
		}
		if k > uint64(len(r.b)-r.off) {
			return core.Value{}, fmt.Errorf("%w: list length", ErrMalformed)
		}
		items := make([]core.Value, 0, k)
		for j := uint64(0); j < k; j++ {
			it, err := r.value(depth + 1)
			if err != nil {
				return core.Value{}, err
			}
			items = append(items, it)
		}
		return core.List(items...), nil
	case tagMap:
		m, err := r.props(depth + 1)
		if err != nil {
			return core.Value{}, err
		}
		return core.Map(m), nil
	default:
		return core.Value{}, fmt.Errorf("%w: unknown value tag %q", ErrMalformed, tag)
	}
}

func (r *reader) expect(tag byte) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	if b != tag {
		return fmt.Errorf("%w: want record %q, got %q", ErrMalformed, tag, b)
	}

	return nil
}

func (r *reader) readByte() (byte, error) {
	if r.off >= len(r.b) {
		return 0, fmt.Errorf("%w: unexpected end", ErrMalformed)
	}
	b := r.b[r.off]
	r.off++

	return b, nil
}

func (r *reader) uvarint() (uint64, error) {
	x, n := binary.Uvarint(r.b[r.off:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad varint at %d", ErrMalformed, r.off)
	}
	r.off += n

	return x, nil
}

func (r *reader) readString() (string, error) {
	k, err := r.uvarint()
	if err != nil {
		return "", err
	}
	if k > uint64(len(r.b)-r.off) {
		return "", fmt.Errorf("%w: short string", ErrMalformed)
	}
	s := string(r.b[r.off : r.off+int(k)])
	r.off += int(k)

	return s, nil
}
