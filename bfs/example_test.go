// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphseal/bfs"
	"github.com/katalvlaran/graphseal/core"
)

// ExampleShortestPath finds the fewest-hop route through a small network.
func ExampleShortestPath() {
	g := core.NewGraph()
	ids := make(map[string]core.VertexID)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		ids[name] = g.AddVertex(core.VertexData{Labels: []string{name}})
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "E"}, {"A", "D"}, {"D", "E"}} {
		_, _ = g.AddEdge(core.EdgeData{Label: "link", Src: ids[e[0]], Dst: ids[e[1]]})
	}

	path, ok := bfs.ShortestPath(g, ids["A"], ids["E"])
	fmt.Println(ok, path)
	// Output:
	// true [1 4 5]
}
