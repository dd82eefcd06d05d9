// SPDX-License-Identifier: MIT

// Package iso answers "are these two graphs the same up to relabeling?".
//
// The checker first runs Weisfeiler-Lehman color refinement, which rejects
// most non-isomorphic pairs cheaply, and only then compares canonical
// hashes. A WL rejection is final. A hash match is as strong as the
// canonical search behind it: exhaustive searches make it exact, a search
// cut short by the leaf budget may report false for isomorphic inputs.
package iso

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/wl"
)

// Stage names which test decided a comparison.
type Stage string

const (
	// StageCounts rejects on differing vertex or edge counts.
	StageCounts Stage = "counts"
	// StageWL rejects on differing color histograms.
	StageWL Stage = "wl"
	// StageCanonical decides on canonical hash equality.
	StageCanonical Stage = "canonical"
)

// Verdict is the outcome of Compare.
type Verdict struct {
	Isomorphic bool
	// DecidedBy is the stage that produced the answer.
	DecidedBy Stage
	// Exhaustive is false when a canonical search was truncated.
	Exhaustive bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithIterations sets the WL refinement depth (default wl.DefaultIterations).
func WithIterations(n int) Option {
	return func(c *Checker) { c.iterations = n }
}

// WithCanonicalizer replaces the default bliss canonicalizer.
func WithCanonicalizer(gc *canon.GraphCanonicalizer) Option {
	return func(c *Checker) {
		if gc != nil {
			c.canon = gc
		}
	}
}

// WithLogger sets the diagnostics logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Checker) {
		if l != nil {
			c.log = l
		}
	}
}

// Checker composes WL rejection with canonical confirmation. It is safe for
// concurrent use.
type Checker struct {
	iterations int
	wl         *wl.WeisfeilerLehman
	canon      *canon.GraphCanonicalizer
	log        logrus.FieldLogger
}

// New returns a Checker with compressed WL colors.
func New(opts ...Option) *Checker {
	c := &Checker{
		iterations: wl.DefaultIterations,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.canon == nil {
		c.canon = canon.New(canon.Bliss, canon.WithLogger(c.log))
	}
	c.wl = wl.New(c.iterations, wl.WithCompression())

	return c
}

// AreIsomorphic reports whether g1 and g2 are isomorphic. Any graph is
// isomorphic to itself; graphs of different size never are.
func (c *Checker) AreIsomorphic(g1, g2 *core.Graph) bool {
	return c.Compare(g1, g2).Isomorphic
}

// Compare runs the staged test and reports which stage decided it.
// A nil graph compares as the empty graph.
func (c *Checker) Compare(g1, g2 *core.Graph) Verdict {
	g1, g2 = orEmpty(g1), orEmpty(g2)
	if g1 == g2 {
		return Verdict{Isomorphic: true, DecidedBy: StageCounts, Exhaustive: true}
	}
	if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		return Verdict{DecidedBy: StageCounts, Exhaustive: true}
	}
	if !c.wl.AreIsomorphic(g1, g2) {
		c.log.WithField("iterations", c.iterations).Debug("wl histograms differ")
		return Verdict{DecidedBy: StageWL, Exhaustive: true}
	}

	r1, r2 := c.canon.Canonicalize(g1), c.canon.Canonicalize(g2)

	return Verdict{
		Isomorphic: r1.Hash == r2.Hash,
		DecidedBy:  StageCanonical,
		Exhaustive: r1.Exhaustive && r2.Exhaustive,
	}
}

// CanonicalForm exposes the canonicalization result of g.
func (c *Checker) CanonicalForm(g *core.Graph) *canon.CanonicalizationResult {
	return c.canon.Canonicalize(g)
}

func orEmpty(g *core.Graph) *core.Graph {
	if g == nil {
		return core.NewGraph()
	}

	return g
}
