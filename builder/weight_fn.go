// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is what stochastic WeightFns return without an RNG.
const DefaultEdgeWeight float64 = 1

// WeightFn draws an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}
	return func(*rand.Rand) float64 { return value }
}

// UniformIntWeightFn draws integers uniformly from [lo, hi].
// Panics unless 0 ≤ lo ≤ hi.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformIntWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}

// NormalWeightFn draws from N(mean, stddev), rounded and clipped at 0.
// Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return math.Max(0, math.Round(rng.NormFloat64()*stddev+mean))
	}
}

// WithConstantWeight sets a fixed edge weight.
func WithConstantWeight(w float64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformIntWeight draws integer weights from [lo, hi].
func WithUniformIntWeight(lo, hi int) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(lo, hi))
}
