// SPDX-License-Identifier: MIT

// Package store persists canonicalization results in an embedded BadgerDB
// keyed by canonical hash.
//
// Layout:
//
//	c:<hex canonical hash>  JSON Record metadata
//	b:<hex canonical hash>  xz-compressed canonical bytes
//	m:<hex merkle root>     hex canonical hash (root index)
//
// The store treats canonical bytes and digests as opaque content: it never
// re-canonicalizes, so a record is only as trustworthy as the result that was
// put. Two isomorphic graphs canonicalized with the same algorithm share one
// record.
package store
