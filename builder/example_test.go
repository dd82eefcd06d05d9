// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/graphseal/builder"
)

// ExampleBuildGraph composes two rings into one graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithVertexLabel("Node"), builder.WithEdgeLabel("next")},
		builder.Cycle(3), builder.Cycle(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), len(g.VerticesByLabel("Node")))
	// Output:
	// 7 7 7
}
