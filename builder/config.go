// SPDX-License-Identifier: MIT
// Package: graphseal/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn          = nil    (no "name" property)
//   • rng           = nil    (pure/deterministic unless seeded)
//   • shuffle       = false
//   • weightFn      = nil    (no "weight" property)
//   • vertexLabel   = ""     (unlabeled vertices)
//   • edgeLabel     = ""
//   • left/right    = "L" / "R"
//   • bidirectional = false

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphseal/core"
)

// Property keys written by the builder.
const (
	PropName   = "name"
	PropWeight = "weight"
)

// Deterministic defaults (named, no magic strings).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	shuffle  bool
	weightFn WeightFn

	vertexLabel string
	edgeLabel   string

	leftPrefix  string
	rightPrefix string

	bidirectional bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// vertexData renders the payload of topological index i.
func (c builderConfig) vertexData(i int, t topology) core.VertexData {
	var v core.VertexData
	if c.vertexLabel != "" {
		v.Labels = append(v.Labels, c.vertexLabel)
	}
	if l, ok := t.labels[i]; ok {
		v.Labels = append(v.Labels, l)
	}
	if c.idFn != nil {
		name, ok := t.names[i]
		if !ok {
			name = c.idFn(i)
		}
		v.Properties = map[string]core.Value{PropName: core.String(name)}
	}

	return v
}

// arc draws the weight of u→v, if weights are enabled.
func (c builderConfig) arc(u, v int) arc {
	a := arc{u: u, v: v}
	if c.weightFn != nil {
		a.props = map[string]core.Value{PropWeight: core.Number(c.weightFn(c.rng))}
	}

	return a
}
