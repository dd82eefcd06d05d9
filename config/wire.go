// SPDX-License-Identifier: MIT

package config

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/iso"
	"github.com/katalvlaran/graphseal/merkle"
	"github.com/katalvlaran/graphseal/store"
)

// GraphOptions returns the core options for graphs read from input.
func (c Config) GraphOptions() []core.GraphOption {
	var opts []core.GraphOption
	if c.Graph.SimpleEdges {
		opts = append(opts, core.WithSimpleEdges())
	}
	if c.Graph.NoLoops {
		opts = append(opts, core.WithoutLoops())
	}

	return opts
}

// Canonicalizer builds the configured canonicalizer.
func (c Config) Canonicalizer(log logrus.FieldLogger) (*canon.GraphCanonicalizer, error) {
	alg, err := canon.ParseAlgorithm(c.Canonical.Algorithm)
	if err != nil {
		return nil, err
	}

	return canon.New(alg, canon.WithMaxLeaves(c.Canonical.MaxLeaves), canon.WithLogger(log)), nil
}

// Checker builds an isomorphism checker sharing gc.
func (c Config) Checker(gc *canon.GraphCanonicalizer, log logrus.FieldLogger) *iso.Checker {
	return iso.New(
		iso.WithIterations(c.Canonical.WLIterations),
		iso.WithCanonicalizer(gc),
		iso.WithLogger(log),
	)
}

// MerkleBuilder builds a tree builder sharing gc.
func (c Config) MerkleBuilder(gc *canon.GraphCanonicalizer, log logrus.FieldLogger) *merkle.Builder {
	return merkle.NewBuilder(
		merkle.WithCanonicalizer(gc),
		merkle.WithChunkSize(c.Merkle.ChunkSize),
		merkle.WithLogger(log),
	)
}

// OpenStore opens the configured record store.
func (c Config) OpenStore(log logrus.FieldLogger) (*store.Store, error) {
	if c.Store.InMemory {
		return store.OpenInMemory(store.WithLogger(log))
	}

	return store.Open(c.Store.Path, store.WithLogger(log))
}
