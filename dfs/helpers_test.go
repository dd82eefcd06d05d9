// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphseal/core"
)

// build returns a graph with n vertices (IDs 1..n) and the given edges.
func build(t testing.TB, n int, edges ...[2]core.VertexID) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		g.AddVertex(core.VertexData{})
	}
	for _, e := range edges {
		_, err := g.AddEdge(core.EdgeData{Src: e[0], Dst: e[1]})
		require.NoError(t, err)
	}

	return g
}
