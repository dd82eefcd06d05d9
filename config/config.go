// SPDX-License-Identifier: MIT

// Package config loads graphseal settings from YAML and turns them into
// configured components.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphseal/canon"
	"github.com/katalvlaran/graphseal/merkle"
	"github.com/katalvlaran/graphseal/wl"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Canonical CanonicalConfig `yaml:"canonical"`
	Graph     GraphConfig     `yaml:"graph"`
	Merkle    MerkleConfig    `yaml:"merkle"`
	Store     StoreConfig     `yaml:"store"`
	Log       LogConfig       `yaml:"log"`
}

// CanonicalConfig selects the canonical labeling and its budgets.
type CanonicalConfig struct {
	Algorithm    string `yaml:"algorithm"`
	WLIterations int    `yaml:"wl_iterations"`
	MaxLeaves    int    `yaml:"max_leaves"`
}

// GraphConfig sets the constraints applied to graphs read from input.
type GraphConfig struct {
	SimpleEdges bool `yaml:"simple_edges"`
	NoLoops     bool `yaml:"no_loops"`
}

// MerkleConfig sizes the byte chunks of canonical-bytes trees.
type MerkleConfig struct {
	ChunkSize int `yaml:"chunk_size"`
}

// StoreConfig locates the record store. InMemory wins over Path.
type StoreConfig struct {
	Path     string `yaml:"path"`
	InMemory bool   `yaml:"in_memory"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canonical: CanonicalConfig{
			Algorithm:    canon.Bliss.String(),
			WLIterations: wl.DefaultIterations,
			MaxLeaves:    canon.DefaultMaxLeaves,
		},
		Merkle: MerkleConfig{ChunkSize: merkle.DefaultChunkSize},
		Store:  StoreConfig{Path: "graphseal.db"},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := canon.ParseAlgorithm(c.Canonical.Algorithm); err != nil {
		return fmt.Errorf("%w: canonical.algorithm: %v", ErrInvalidConfig, err)
	}
	if c.Canonical.WLIterations < 1 {
		return fmt.Errorf("%w: canonical.wl_iterations must be >= 1, got %d", ErrInvalidConfig, c.Canonical.WLIterations)
	}
	if c.Canonical.MaxLeaves < 1 {
		return fmt.Errorf("%w: canonical.max_leaves must be >= 1, got %d", ErrInvalidConfig, c.Canonical.MaxLeaves)
	}
	if c.Merkle.ChunkSize < 1 {
		return fmt.Errorf("%w: merkle.chunk_size must be >= 1, got %d", ErrInvalidConfig, c.Merkle.ChunkSize)
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is required unless store.in_memory is set", ErrInvalidConfig)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }
