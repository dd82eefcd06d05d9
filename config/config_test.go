// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/config"
	"github.com/katalvlaran/graphseal/core"
)

// TestDefault_Valid keeps the built-in settings self-consistent.
func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "bliss", cfg.Canonical.Algorithm)
	assert.Equal(t, canon.DefaultMaxLeaves, cfg.Canonical.MaxLeaves)

	same, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, cfg, same)
}

// TestParse_OverlaysDefaults keeps unspecified fields at their defaults.
func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
canonical:
  algorithm: nauty
graph:
  simple_edges: true
store:
  in_memory: true
log:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, "nauty", cfg.Canonical.Algorithm)
	assert.Equal(t, config.Default().Canonical.WLIterations, cfg.Canonical.WLIterations)
	assert.True(t, cfg.Graph.SimpleEdges)
	assert.True(t, cfg.Store.InMemory)
	assert.Equal(t, "json", cfg.Log.Format)

	empty, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), empty)
}

// TestParse_Invalid rejects each bad section with ErrInvalidConfig.
func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "canonical:\n  speed: fast\n"},
		{"algorithm", "canonical:\n  algorithm: magic\n"},
		{"iterations", "canonical:\n  wl_iterations: 0\n"},
		{"leaves", "canonical:\n  max_leaves: -1\n"},
		{"chunk", "merkle:\n  chunk_size: 0\n"},
		{"store path", "store:\n  path: \"\"\n"},
		{"level", "log:\n  level: loud\n"},
		{"format", "log:\n  format: xml\n"},
		{"syntax", "canonical: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

// TestLoad_File reads from disk and reports a missing file.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphseal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("merkle:\n  chunk_size: 64\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Merkle.ChunkSize)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

// TestMarshal_RoundTrip re-parses the rendered defaults.
func TestMarshal_RoundTrip(t *testing.T) {
	data, err := config.Default().Marshal()
	require.NoError(t, err)
	back, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), back)
}

// TestNewLogger applies level and format.
func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	l, err := config.NewLogger(config.LogConfig{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())

	l.Info("hidden")
	l.WithField("k", "v").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)

	_, err = config.NewLogger(config.LogConfig{Level: "loud"}, &buf)
	assert.Error(t, err)
}

// TestWiring builds every component from one config.
func TestWiring(t *testing.T) {
	cfg := config.Default()
	cfg.Canonical.Algorithm = "custom"
	cfg.Graph.NoLoops = true
	cfg.Store.InMemory = true
	log, _ := test.NewNullLogger()

	g := core.NewGraph(cfg.GraphOptions()...)
	assert.False(t, g.Looped())
	assert.False(t, g.Simple())

	gc, err := cfg.Canonicalizer(log)
	require.NoError(t, err)
	assert.Equal(t, canon.Custom, gc.Algorithm())

	a := g.AddVertex(core.VertexData{Labels: []string{"A"}})
	b := g.AddVertex(core.VertexData{Labels: []string{"A"}})
	_, err = g.AddEdge(core.EdgeData{Src: a, Dst: b})
	require.NoError(t, err)

	assert.True(t, cfg.Checker(gc, log).AreIsomorphic(g, g.Clone()))
	root, ok := cfg.MerkleBuilder(gc, log).BuildFromGraph(g).RootHash()
	assert.True(t, ok)
	assert.False(t, root.IsZero())

	s, err := cfg.OpenStore(log)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}
