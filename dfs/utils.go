// SPDX-License-Identifier: MIT

package dfs

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/graphseal/core"
)

// compareIDs lexicographically compares two ID sequences.
func compareIDs(a, b []core.VertexID) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}

	return len(a) - len(b)
}

// joinSig renders s as a comma-separated signature.
func joinSig(s []core.VertexID) string {
	var sb strings.Builder
	for i, x := range s {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(x), 10))
	}

	return sb.String()
}

// MinimalRotation implements Booth's algorithm: it returns a new slice
// holding the lexicographically minimal rotation of s in O(n) time.
func MinimalRotation(s []core.VertexID) []core.VertexID {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]core.VertexID, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	res := make([]core.VertexID, n)
	copy(res, doubled[k:k+n])

	return res
}
