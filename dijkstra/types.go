// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphseal/core"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadWeight indicates a weight property that is not a finite number.
	ErrBadWeight = errors.New("dijkstra: weight property is not a finite number")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

const (
	// DefaultWeightKey is the edge property holding the weight.
	DefaultWeightKey = "weight"

	// DefaultWeight is charged for edges without a weight property.
	DefaultWeight = 1.0
)

// Options configures Dijkstra.
type Options struct {
	// WeightKey names the edge property read as the weight.
	WeightKey string

	// DefaultWeight is used when an edge lacks WeightKey.
	DefaultWeight float64

	// MaxDistance stops exploration beyond this distance (+Inf: no cap).
	MaxDistance float64

	// Undirected lets the walk traverse edges against their direction.
	Undirected bool

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns WeightKey "weight", DefaultWeight 1, no distance
// cap and directed traversal.
func DefaultOptions() Options {
	return Options{
		WeightKey:     DefaultWeightKey,
		DefaultWeight: DefaultWeight,
		MaxDistance:   math.Inf(1),
	}
}

// WithWeightKey reads weights from property key instead of "weight".
func WithWeightKey(key string) Option {
	return func(o *Options) { o.WeightKey = key }
}

// WithDefaultWeight sets the cost of edges without a weight property.
func WithDefaultWeight(w float64) Option {
	return func(o *Options) { o.DefaultWeight = w }
}

// WithMaxDistance skips vertices farther than limit from the source.
// A negative limit surfaces as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(limit float64) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: %g", ErrBadMaxDistance, limit)
			return
		}
		o.MaxDistance = limit
	}
}

// WithUndirected follows in-edges as well as out-edges.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// Result holds distances and the shortest-path tree.
type Result struct {
	Source core.VertexID

	// Dist maps every reached vertex to its distance. Unreached vertices
	// are absent.
	Dist map[core.VertexID]float64

	// Prev maps each reached vertex except the source to its predecessor.
	Prev map[core.VertexID]core.VertexID

	// Via records the edge taken into each reached vertex.
	Via map[core.VertexID]core.EdgeID
}

// PathTo returns the vertex sequence from the source to dst.
func (r *Result) PathTo(dst core.VertexID) ([]core.VertexID, bool) {
	if _, ok := r.Dist[dst]; !ok {
		return nil, false
	}
	path := []core.VertexID{dst}
	for cur := dst; cur != r.Source; {
		cur = r.Prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// EdgesTo returns the edges along PathTo(dst).
func (r *Result) EdgesTo(dst core.VertexID) ([]core.EdgeID, bool) {
	path, ok := r.PathTo(dst)
	if !ok {
		return nil, false
	}
	out := make([]core.EdgeID, 0, len(path)-1)
	for _, v := range path[1:] {
		out = append(out, r.Via[v])
	}

	return out, true
}
