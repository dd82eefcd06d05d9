// SPDX-License-Identifier: MIT

// Package graphjson reads and writes core.Graph values as JSON documents:
//
//	{
//	  "vertices": [{"id": "a", "labels": ["Person"], "properties": {"age": 41}}],
//	  "edges":    [{"id": "e1", "label": "knows", "src": "a", "dst": "b"}]
//	}
//
// External identifiers may be strings or numbers. core.Graph assigns its own
// identifiers, so Decode returns an IDMap from external to assigned ids and
// rewrites every edge endpoint through it; an edge naming an unknown vertex
// is rejected rather than silently attached to whatever vertex happens to
// own that number.
//
// Encode is deterministic: vertices and edges in ascending identifier order
// and property keys sorted, so identical graphs serialize byte-identically.
package graphjson
