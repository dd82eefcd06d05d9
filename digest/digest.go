// SPDX-License-Identifier: MIT

// Package digest defines the 256-bit SHA-256 digest shared by canonical
// hashing and Merkle tree construction.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// Size is the digest length in bytes.
const Size = sha256.Size

// ErrBadDigest is returned by Parse for malformed hex input.
var ErrBadDigest = errors.New("digest: malformed hex digest")

// Hash is a SHA-256 digest.
type Hash [Size]byte

// Sum hashes data.
func Sum(data []byte) Hash { return sha256.Sum256(data) }

// Combine returns H(left || right), the Merkle interior node rule.
func Combine(left, right Hash) Hash {
	var buf [2 * Size]byte
	copy(buf[:Size], left[:])
	copy(buf[Size:], right[:])

	return sha256.Sum256(buf[:])
}

// Hex returns the lower-case hex encoding.
func (h Hash) Hex() string { return hex.EncodeToString(h[:]) }

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// IsZero reports whether h is all zero bytes.
func (h Hash) IsZero() bool { return h == Hash{} }

// Parse decodes a 64-character hex string.
func Parse(s string) (Hash, error) {
	var h Hash
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("%w: %v", ErrBadDigest, err)
	}
	if len(b) != Size {
		return h, fmt.Errorf("%w: want %d bytes, got %d", ErrBadDigest, Size, len(b))
	}
	copy(h[:], b)

	return h, nil
}

// MarshalText encodes h as hex, so digests read naturally in JSON and YAML.
func (h Hash) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

// UnmarshalText decodes a hex digest.
func (h *Hash) UnmarshalText(b []byte) error {
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*h = p

	return nil
}
