// SPDX-License-Identifier: MIT

package canon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned when parsing an unrecognized algorithm name.
var ErrUnknownAlgorithm = errors.New("canon: unknown algorithm")

// Algorithm selects the initial coloring heuristic.
type Algorithm uint8

const (
	// Bliss orders vertices by degree first.
	Bliss Algorithm = iota
	// Nauty orders vertices by content and relies on adjacency refinement.
	Nauty
	// Custom orders vertices by first label, then by degree descending.
	Custom
)

var algorithmNames = [...]string{"bliss", "nauty", "custom"}

// String returns the algorithm tag used in isomorphism classes.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}

	return fmt.Sprintf("algorithm(%d)", uint8(a))
}

// ParseAlgorithm maps a tag (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	for i, name := range algorithmNames {
		if strings.EqualFold(s, name) {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(b []byte) error {
	p, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = p

	return nil
}
