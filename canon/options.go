// SPDX-License-Identifier: MIT

package canon

import "github.com/sirupsen/logrus"

const (
	// DefaultMaxLeaves bounds the individualization search.
	DefaultMaxLeaves = 4096

	// DefaultLabel stands in for the first label of unlabeled vertices
	// under the custom algorithm.
	DefaultLabel = "Node"
)

// Options tunes a GraphCanonicalizer.
type Options struct {
	// MaxLeaves caps how many discrete leaves the search may serialize.
	MaxLeaves int

	// DefaultLabel is the custom algorithm's first label for unlabeled vertices.
	DefaultLabel string

	// Logger receives search diagnostics.
	Logger logrus.FieldLogger
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns MaxLeaves=DefaultMaxLeaves, DefaultLabel="Node"
// and the logrus standard logger.
func DefaultOptions() Options {
	return Options{
		MaxLeaves:    DefaultMaxLeaves,
		DefaultLabel: DefaultLabel,
		Logger:       logrus.StandardLogger(),
	}
}

// WithMaxLeaves sets the leaf budget; values below 1 are ignored.
func WithMaxLeaves(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.MaxLeaves = n
		}
	}
}

// WithDefaultLabel overrides the custom algorithm's default first label.
func WithDefaultLabel(l string) Option {
	return func(o *Options) { o.DefaultLabel = l }
}

// WithLogger sets the diagnostics logger; nil is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
