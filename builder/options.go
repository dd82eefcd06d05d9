// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme writes fn(index) as the "name" property of every vertex.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithShuffle permutes vertex and edge insertion order using the configured
// RNG, producing a relabeled copy of the unshuffled graph. Without an RNG
// it has no effect.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) { c.shuffle = true }
}

// WithWeightFn writes fn(rng) as the numeric "weight" property of every
// edge. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithVertexLabel gives every vertex the label l (first in its label list).
func WithVertexLabel(l string) BuilderOption {
	return func(c *builderConfig) { c.vertexLabel = l }
}

// WithEdgeLabel gives every edge the label l.
func WithEdgeLabel(l string) BuilderOption {
	return func(c *builderConfig) { c.edgeLabel = l }
}

// WithPartitionPrefix sets the bipartite side labels (left/right).
// Empty values mean "use defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) { c.leftPrefix, c.rightPrefix = left, right }
}

// WithBidirectional emits every topology edge u–v as both u→v and v→u.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) { c.bidirectional = true }
}
