// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/dijkstra"
	"github.com/katalvlaran/graphseal/graphjson"
)

// RouteCmd runs a weighted shortest-path search between two document ids.
type RouteCmd struct {
	File       string `arg:"" help:"Graph JSON file, or - for stdin"`
	From       string `arg:"" help:"Source vertex id as written in the document"`
	To         string `arg:"" help:"Target vertex id as written in the document"`
	WeightKey  string `default:"weight" help:"Edge property holding the weight"`
	Undirected bool   `help:"Traverse edges in both directions"`
}

// Run executes the route command. An unreachable target exits with status 1.
func (c *RouteCmd) Run(e *env) error {
	g, ids, err := e.readGraphIDs(c.File)
	if err != nil {
		return err
	}
	src, ok := ids.Vertices[graphjson.ID(c.From)]
	if !ok {
		return fmt.Errorf("no vertex %q", c.From)
	}
	dst, ok := ids.Vertices[graphjson.ID(c.To)]
	if !ok {
		return fmt.Errorf("no vertex %q", c.To)
	}

	opts := []dijkstra.Option{dijkstra.WithWeightKey(c.WeightKey)}
	if c.Undirected {
		opts = append(opts, dijkstra.WithUndirected())
	}
	res, err := dijkstra.Dijkstra(g, src, opts...)
	if err != nil {
		return err
	}
	path, ok := res.PathTo(dst)
	if !ok {
		e.fail("%s is unreachable from %s", c.To, c.From)
		return errMismatch
	}

	names := make(map[core.VertexID]string, len(ids.Vertices))
	for ext, id := range ids.Vertices {
		names[id] = string(ext)
	}
	hops := make([]string, len(path))
	for i, id := range path {
		hops[i] = names[id]
	}
	fmt.Fprintf(e.out, "cost: %g\n", res.Dist[dst])
	fmt.Fprintf(e.out, "path: %s\n", strings.Join(hops, " -> "))

	return nil
}
