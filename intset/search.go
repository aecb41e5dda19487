package intset

// Search performs a binary search for target in the ascending, duplicate-free
// slice data. If found, it returns the index (always >= 0). If not found, it
// returns the bitwise complement of the index at which target would need to
// be inserted to keep data ascending; since that insertion index is always
// >= 0, its complement is always < 0, which is how callers distinguish a hit
// from a miss: `if idx := Search(data, x); idx >= 0 { ... found at idx ... }
// else { insertAt := ^idx }`.
func Search(data []int, target int) int {
	lo, hi := 0, len(data)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case data[mid] < target:
			lo = mid + 1
		case data[mid] > target:
			hi = mid
		default:
			return mid
		}
	}
	return ^lo
}

// Found is a small ergonomic wrapper over Search's found/not-found
// convention, returning the index and whether target was present.
func Found(data []int, target int) (int, bool) {
	idx := Search(data, target)
	if idx >= 0 {
		return idx, true
	}
	return ^idx, false
}
