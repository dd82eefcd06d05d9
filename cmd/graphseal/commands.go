// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/graphseal/builder"
	"github.com/katalvlaran/graphseal/codec"
	"github.com/katalvlaran/graphseal/digest"
	"github.com/katalvlaran/graphseal/graphjson"
	"github.com/katalvlaran/graphseal/merkle"
	"github.com/katalvlaran/graphseal/stats"
	"github.com/katalvlaran/graphseal/store"
)

// CanonCmd prints the canonical form of one graph.
type CanonCmd struct {
	File  string `arg:"" help:"Graph JSON file, or - for stdin"`
	Order bool   `help:"Also print the canonical vertex order"`
}

// Run executes the canon command.
func (c *CanonCmd) Run(e *env) error {
	g, err := e.readGraph(c.File)
	if err != nil {
		return err
	}
	gc, err := e.canonicalizer()
	if err != nil {
		return err
	}
	res := gc.Canonicalize(g)

	fmt.Fprintf(e.out, "class:      %s\n", res.IsomorphismClass)
	fmt.Fprintf(e.out, "size:       %s\n", humanize.Bytes(uint64(len(res.CanonicalGraph))))
	fmt.Fprintf(e.out, "leaves:     %d\n", res.Leaves)
	fmt.Fprintf(e.out, "symmetries: %d generators\n", len(res.Automorphisms))
	if !res.Exhaustive {
		e.fail("search truncated at the leaf budget; the form is deterministic but not canonical")
	}
	if c.Order {
		fmt.Fprintf(e.out, "order:      %v\n", res.CanonicalVertices(g))
	}

	return nil
}

// IsoCmd compares two graphs.
type IsoCmd struct {
	A string `arg:"" help:"First graph JSON file"`
	B string `arg:"" help:"Second graph JSON file"`
}

// Run executes the iso command. Non-isomorphic inputs exit with status 1.
func (c *IsoCmd) Run(e *env) error {
	g1, err := e.readGraph(c.A)
	if err != nil {
		return err
	}
	g2, err := e.readGraph(c.B)
	if err != nil {
		return err
	}
	gc, err := e.canonicalizer()
	if err != nil {
		return err
	}
	v := e.cfg.Checker(gc, e.log).Compare(g1, g2)
	if v.Isomorphic {
		e.ok("isomorphic (decided by %s)", v.DecidedBy)
		return nil
	}
	e.fail("not isomorphic (decided by %s)", v.DecidedBy)

	return errMismatch
}

// StatsCmd prints structural statistics.
type StatsCmd struct {
	File string `arg:"" help:"Graph JSON file, or - for stdin"`
	JSON bool   `help:"Emit JSON instead of text"`
}

// Run executes the stats command.
func (c *StatsCmd) Run(e *env) error {
	g, err := e.readGraph(c.File)
	if err != nil {
		return err
	}
	s := stats.Compute(g)
	if c.JSON {
		enc := json.NewEncoder(e.out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(e.out, "vertices:    %s\n", humanize.Comma(int64(s.VertexCount)))
	fmt.Fprintf(e.out, "edges:       %s\n", humanize.Comma(int64(s.EdgeCount)))
	fmt.Fprintf(e.out, "avg degree:  %.3f\n", s.AverageDegree)
	fmt.Fprintf(e.out, "density:     %.3f\n", s.Density)
	fmt.Fprintf(e.out, "connected:   %t\n", s.IsConnected)
	fmt.Fprintf(e.out, "cyclic:      %t\n", s.HasCycles)
	fmt.Fprintf(e.out, "components:  %d\n", s.ComponentCount)
	fmt.Fprintf(e.out, "sccs:        %d\n", s.SCCCount)
	fmt.Fprintf(e.out, "bridges:     %d\n", s.BridgeCount)

	return nil
}

// MerkleCmd prints the chunk tree of a graph.
type MerkleCmd struct {
	File string `arg:"" help:"Graph JSON file, or - for stdin"`
}

// Run executes the merkle command.
func (c *MerkleCmd) Run(e *env) error {
	gt, err := e.graphTree(c.File)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.out, "root:  %s\n", gt.RootHash())
	fmt.Fprintf(e.out, "class: %s\n", gt.Ref.CanonicalForm)
	for _, name := range gt.ComponentNames() {
		ch, _ := gt.Component(name)
		fmt.Fprintf(e.out, "  %-14s %s  %s\n", name, ch.Hash, humanize.Bytes(uint64(len(ch.Data))))
	}

	return nil
}

func (e *env) graphTree(path string) (*merkle.GraphTree, error) {
	g, err := e.readGraph(path)
	if err != nil {
		return nil, err
	}
	gc, err := e.canonicalizer()
	if err != nil {
		return nil, err
	}

	return merkle.NewGraphTree(g, e.cfg.MerkleBuilder(gc, e.log)), nil
}

// ProofCmd prints the inclusion proof of one named component.
type ProofCmd struct {
	File      string `arg:"" help:"Graph JSON file, or - for stdin"`
	Component string `arg:"" enum:"vertices,edges,adj_out,adj_in,vertex_labels,edge_labels" help:"Component name (${enum})"`
}

// Run executes the proof command.
func (c *ProofCmd) Run(e *env) error {
	gt, err := e.graphTree(c.File)
	if err != nil {
		return err
	}
	p, ok := gt.ComponentProof(c.Component)
	if !ok {
		return fmt.Errorf("no component %q", c.Component)
	}
	ch, _ := gt.Component(c.Component)

	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		Component string      `json:"component"`
		LeafHash  digest.Hash `json:"leaf_hash"`
		*merkle.Proof
	}{c.Component, ch.Hash, p})
}

// VerifyCmd checks a graph against a previously printed root.
type VerifyCmd struct {
	File string `arg:"" help:"Graph JSON file, or - for stdin"`
	Root string `required:"" help:"Expected Merkle root (hex)"`
}

// Run executes the verify command. A mismatch exits with status 1.
func (c *VerifyCmd) Run(e *env) error {
	want, err := digest.Parse(c.Root)
	if err != nil {
		return err
	}
	gt, err := e.graphTree(c.File)
	if err != nil {
		return err
	}
	if got := gt.RootHash(); got != want {
		e.fail("integrity check failed: root %s", got)
		return errMismatch
	}
	e.ok("integrity verified")

	return nil
}

// GenCmd writes a generated graph as JSON.
type GenCmd struct {
	Topology string  `arg:"" enum:"path,cycle,star,wheel,complete,bipartite,grid,random" help:"Topology (${enum})"`
	N        int     `arg:"" help:"Size parameter; grid and bipartite use N x N"`
	Seed     int64   `default:"1" help:"Random seed for shuffle and random topologies"`
	Shuffle  bool    `help:"Insert vertices and edges in shuffled order"`
	P        float64 `default:"0.3" help:"Edge probability for the random topology"`
	Out      string  `short:"o" type:"path" help:"Output file (default stdout)"`
}

// Run executes the gen command.
func (c *GenCmd) Run(e *env) error {
	var con builder.Constructor
	switch c.Topology {
	case "path":
		con = builder.Path(c.N)
	case "cycle":
		con = builder.Cycle(c.N)
	case "star":
		con = builder.Star(c.N)
	case "wheel":
		con = builder.Wheel(c.N)
	case "complete":
		con = builder.Complete(c.N)
	case "bipartite":
		con = builder.CompleteBipartite(c.N, c.N)
	case "grid":
		con = builder.Grid(c.N, c.N)
	case "random":
		con = builder.RandomSparse(c.N, c.P)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(c.Seed), builder.WithDefaultIDs()}
	if c.Shuffle {
		bopts = append(bopts, builder.WithShuffle())
	}
	g, err := builder.BuildGraph(e.cfg.GraphOptions(), bopts, con)
	if err != nil {
		return err
	}

	if c.Out == "" {
		return graphjson.Encode(e.out, g)
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := graphjson.Encode(f, g); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// StoreCmd groups the record store subcommands.
type StoreCmd struct {
	Put StorePutCmd `cmd:"" help:"Canonicalize a graph and store it"`
	Get StoreGetCmd `cmd:"" help:"Fetch a stored canonical form as JSON"`
	Ls  StoreLsCmd  `cmd:"" help:"List stored canonical hashes"`
}

// StorePutCmd stores one graph.
type StorePutCmd struct {
	File string `arg:"" help:"Graph JSON file, or - for stdin"`
}

// Run executes store put.
func (c *StorePutCmd) Run(e *env) error {
	g, err := e.readGraph(c.File)
	if err != nil {
		return err
	}
	gc, err := e.canonicalizer()
	if err != nil {
		return err
	}
	gt := merkle.NewGraphTree(g, e.cfg.MerkleBuilder(gc, e.log))
	rec := store.NewRecord(gc.Canonicalize(g), gt, g.VertexCount(), g.EdgeCount())

	s, err := e.cfg.OpenStore(e.log)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Put(context.Background(), rec); err != nil {
		return err
	}
	e.ok("stored %s", rec.Hash)
	fmt.Fprintf(e.out, "root: %s\n", rec.MerkleRoot)

	return nil
}

// StoreGetCmd fetches one record by canonical hash or Merkle root.
type StoreGetCmd struct {
	Hash   string `arg:"" help:"Canonical hash (hex)"`
	ByRoot bool   `help:"Treat the argument as a Merkle root"`
}

// Run executes store get, writing the decoded canonical graph as JSON.
func (c *StoreGetCmd) Run(e *env) error {
	h, err := digest.Parse(c.Hash)
	if err != nil {
		return err
	}
	s, err := e.cfg.OpenStore(e.log)
	if err != nil {
		return err
	}
	defer s.Close()

	var rec *store.Record
	if c.ByRoot {
		rec, err = s.LookupByRoot(context.Background(), h)
	} else {
		rec, err = s.Get(context.Background(), h)
	}
	if err != nil {
		return err
	}
	e.log.WithField("class", rec.IsomorphismClass).Debugf("stored %s", humanize.Time(rec.StoredAt))

	g, err := codec.Decode(rec.CanonicalGraph)
	if err != nil {
		return err
	}

	return graphjson.Encode(e.out, g)
}

// StoreLsCmd lists stored hashes.
type StoreLsCmd struct{}

// Run executes store ls.
func (c *StoreLsCmd) Run(e *env) error {
	s, err := e.cfg.OpenStore(e.log)
	if err != nil {
		return err
	}
	defer s.Close()

	hashes, err := s.List(context.Background())
	if err != nil {
		return err
	}
	for _, h := range hashes {
		fmt.Fprintln(e.out, h)
	}

	return nil
}
