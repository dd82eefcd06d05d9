// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes args and returns the exit code with both streams.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(""), &out, &errOut)

	return code, out.String(), errOut.String()
}

// gen writes a generated topology into dir and returns its path.
func gen(t *testing.T, dir, name string, args ...string) string {
	t.Helper()
	path := filepath.Join(dir, name+".json")
	code, _, stderr := runCLI(t, append(append([]string{"gen"}, args...), "-o", path)...)
	require.Equal(t, 0, code, stderr)

	return path
}

func TestCLI_GenAndCanon(t *testing.T) {
	dir := t.TempDir()
	path := gen(t, dir, "c5", "cycle", "5")

	code, out, stderr := runCLI(t, "canon", path, "--order")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "class:      bliss_")
	assert.Contains(t, out, "order:")
}

func TestCLI_Iso(t *testing.T) {
	dir := t.TempDir()
	a := gen(t, dir, "a", "cycle", "6")
	b := gen(t, dir, "b", "cycle", "6", "--shuffle", "--seed", "9")
	c := gen(t, dir, "c", "path", "6")

	code, out, _ := runCLI(t, "iso", a, b)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "isomorphic")

	code, out, _ = runCLI(t, "iso", a, c)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "not isomorphic")
}

func TestCLI_MerkleVerifyProof(t *testing.T) {
	dir := t.TempDir()
	path := gen(t, dir, "star", "star", "5")

	code, out, stderr := runCLI(t, "merkle", path)
	require.Equal(t, 0, code, stderr)
	first := strings.Fields(strings.SplitN(out, "\n", 2)[0])
	require.Len(t, first, 2)
	root := first[1]
	assert.Contains(t, out, "adj_out")

	code, out, _ = runCLI(t, "verify", path, "--root", root)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "integrity verified")

	other := gen(t, dir, "star6", "star", "6")
	code, _, _ = runCLI(t, "verify", other, "--root", root)
	assert.Equal(t, 1, code)

	code, out, stderr = runCLI(t, "proof", path, "edges")
	require.Equal(t, 0, code, stderr)
	var p struct {
		Component string `json:"component"`
		LeafIndex int    `json:"leaf_index"`
		LeafCount int    `json:"leaf_count"`
		RootHash  string `json:"root_hash"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "edges", p.Component)
	assert.Equal(t, 1, p.LeafIndex)
	assert.Equal(t, 6, p.LeafCount)
	assert.Equal(t, root, p.RootHash)
}

func TestCLI_Stats(t *testing.T) {
	dir := t.TempDir()
	path := gen(t, dir, "p4", "path", "4")

	code, out, stderr := runCLI(t, "stats", "--json", path)
	require.Equal(t, 0, code, stderr)
	var s map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, 4.0, s["vertex_count"])
	assert.Equal(t, 3.0, s["bridge_count"])
}

func TestCLI_Store(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "graphseal.yaml")
	require.NoError(t, os.WriteFile(cfgPath,
		[]byte("store:\n  path: "+filepath.Join(dir, "db")+"\nlog:\n  level: error\n"), 0o600))
	path := gen(t, dir, "w5", "wheel", "5")

	code, out, stderr := runCLI(t, "--config", cfgPath, "store", "put", path)
	require.Equal(t, 0, code, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	hash := strings.TrimPrefix(lines[0], "stored ")
	root := strings.TrimPrefix(lines[1], "root: ")

	code, out, stderr = runCLI(t, "--config", cfgPath, "store", "ls")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, hash, strings.TrimSpace(out))

	code, out, stderr = runCLI(t, "--config", cfgPath, "store", "get", hash)
	require.Equal(t, 0, code, stderr)
	fetched := filepath.Join(dir, "fetched.json")
	require.NoError(t, os.WriteFile(fetched, []byte(out), 0o600))

	code, _, _ = runCLI(t, "iso", path, fetched)
	assert.Equal(t, 0, code, "stored canonical form is isomorphic to the input")

	code, _, stderr = runCLI(t, "--config", cfgPath, "store", "get", "--by-root", root)
	assert.Equal(t, 0, code, stderr)
}

func TestCLI_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("canonical:\n  algorithm: magic\n"), 0o600))

	code, _, stderr := runCLI(t, "--config", bad, "stats", "-")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "invalid configuration")

	code, _, stderr = runCLI(t, "canon", filepath.Join(dir, "missing.json"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")

	code, _, _ = runCLI(t, "gen", "hypercube", "3")
	assert.Equal(t, 2, code)

	code, _, _ = runCLI(t, "gen", "cycle", "2")
	assert.Equal(t, 1, code)
}

func TestCLI_StdinAndHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	doc := `{"vertices": [{"id": "a"}, {"id": "b"}], "edges": [{"src": "a", "dst": "b"}]}`
	code := run([]string{"stats", "-"}, strings.NewReader(doc), &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "vertices:    2")

	code, out2, _ := runCLI(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out2, "graphseal")
}

func TestCLI_Route(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roads.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "vertices": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
  "edges": [
    {"src": "a", "dst": "c", "properties": {"weight": 10}},
    {"src": "a", "dst": "b", "properties": {"weight": 2}},
    {"src": "b", "dst": "c", "properties": {"weight": 3}}
  ]
}`), 0o600))

	code, out, stderr := runCLI(t, "route", path, "a", "c")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "cost: 5")
	assert.Contains(t, out, "path: a -> b -> c")

	code, _, _ = runCLI(t, "route", path, "c", "a")
	assert.Equal(t, 1, code)

	code, out, _ = runCLI(t, "route", path, "c", "a", "--undirected")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "path: c -> b -> a")
}
