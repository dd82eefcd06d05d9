// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names a vertex from its zero-based topological index. It must be
// pure: the same idx always yields the same name. Shuffled builds call it
// with the topological index, never with the assigned VertexID.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// PrefixIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// ExcelColumnIDFn returns the spreadsheet column name for idx, e.g.
// 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
//
// Complexity: O(log₂₆ idx).
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// WithDefaultIDs names vertices "0", "1", ...
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithPrefixIDs names vertices prefix+"0", prefix+"1", ...
func WithPrefixIDs(prefix string) BuilderOption { return WithIDScheme(PrefixIDFn(prefix)) }

// WithExcelColumnIDs names vertices "A", "B", ..., "AA", ...
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }
