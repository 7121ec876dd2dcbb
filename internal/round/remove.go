package round

import "slices"

// removeIndices deletes the elements at the given indices from s.
// Indices are applied in descending order so earlier removals never shift
// later ones; duplicates and out-of-range indices are ignored. idx is sorted
// in place.
func removeIndices[T any](s []T, idx []int) []T {
	if len(idx) == 0 {
		return s
	}
	slices.Sort(idx)

	prev := -1
	for i := len(idx) - 1; i >= 0; i-- {
		at := idx[i]
		if at == prev || at < 0 || at >= len(s) {
			continue
		}
		s = slices.Delete(s, at, at+1)
		prev = at
	}
	return s
}

// resetFlags returns a zeroed flag slice of length n, reusing buf when it is large enough.
func resetFlags(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	clear(buf)
	return buf
}
