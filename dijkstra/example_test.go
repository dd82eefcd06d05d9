// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/dijkstra"
)

// ExampleDijkstra routes around an expensive direct edge.
func ExampleDijkstra() {
	g := core.NewGraph()
	a := g.AddVertex(core.VertexData{})
	b := g.AddVertex(core.VertexData{})
	c := g.AddVertex(core.VertexData{})
	w := func(x float64) map[string]core.Value { return map[string]core.Value{"weight": core.Number(x)} }
	_, _ = g.AddEdge(core.EdgeData{Src: a, Dst: c, Properties: w(10)})
	_, _ = g.AddEdge(core.EdgeData{Src: a, Dst: b, Properties: w(2)})
	_, _ = g.AddEdge(core.EdgeData{Src: b, Dst: c, Properties: w(3)})

	res, err := dijkstra.Dijkstra(g, a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(c)
	fmt.Println(res.Dist[c], path)
	// Output:
	// 5 [1 2 3]
}
