// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/config"
	"github.com/katalvlaran/graphseal/core"
	"github.com/katalvlaran/graphseal/graphjson"
)

// errMismatch marks a failed comparison or integrity check; it exits 1
// without an error banner since the command already printed its verdict.
var errMismatch = errors.New("mismatch")

// CLI is the root kong command structure.
type CLI struct {
	Version kong.VersionFlag `help:"Show version information"`
	Config  string           `short:"c" type:"path" help:"YAML configuration file"`
	Verbose bool             `short:"v" help:"Enable debug logging"`

	Canon  CanonCmd  `cmd:"" help:"Print the canonical form of a graph"`
	Iso    IsoCmd    `cmd:"" help:"Decide whether two graphs are isomorphic"`
	Stats  StatsCmd  `cmd:"" help:"Print structural statistics"`
	Merkle MerkleCmd `cmd:"" help:"Print the Merkle root and component digests"`
	Proof  ProofCmd  `cmd:"" help:"Print the inclusion proof of one component"`
	Verify VerifyCmd `cmd:"" help:"Check a graph against an expected Merkle root"`
	Route  RouteCmd  `cmd:"" help:"Find the cheapest path between two vertices"`
	Gen    GenCmd    `cmd:"" help:"Generate a graph of a named topology"`
	Store  StoreCmd  `cmd:"" help:"Persist and fetch canonical forms"`
}

// env carries the loaded configuration into every command.
type env struct {
	cfg   config.Config
	log   *logrus.Logger
	stdin io.Reader
	out   io.Writer

	// plain disables color when out is not the process stdout.
	plain bool
}

func (e *env) canonicalizer() (*canon.GraphCanonicalizer, error) {
	return e.cfg.Canonicalizer(e.log)
}

// readGraph decodes a graphjson document from path, or stdin for "-".
func (e *env) readGraph(path string) (*core.Graph, error) {
	g, _, err := e.readGraphIDs(path)

	return g, err
}

// readGraphIDs is readGraph that also returns the external id mapping.
func (e *env) readGraphIDs(path string) (*core.Graph, *graphjson.IDMap, error) {
	var r io.Reader = e.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}
	g, ids, err := graphjson.Decode(r, e.cfg.GraphOptions()...)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return g, ids, nil
}

func (e *env) ok(format string, args ...any) { e.say(color.FgGreen, format, args...) }

func (e *env) fail(format string, args ...any) { e.say(color.FgRed, format, args...) }

func (e *env) say(attr color.Attribute, format string, args ...any) {
	c := color.New(attr)
	if e.plain {
		c.DisableColor()
	}
	c.Fprintf(e.out, format+"\n", args...)
}

// run parses args, wires the configured components and executes the
// selected command. It returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exit := -1
	parser, err := kong.New(&cli,
		kong.Name("graphseal"),
		kong.Description("Canonical forms, isomorphism and Merkle integrity for property graphs"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exit = code }),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": Version},
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if exit >= 0 {
		return exit
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if cli.Verbose {
		cfg.Log.Level = "debug"
	}
	log, err := config.NewLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	e := &env{cfg: cfg, log: log, stdin: stdin, out: stdout, plain: stdout != io.Writer(os.Stdout)}
	if err := kctx.Run(e); err != nil {
		if errors.Is(err, errMismatch) {
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
