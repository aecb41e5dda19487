package intset

// IntSet is an immutable set of non-negative integers (row-ids) with
// ascending iteration and set algebra. The three concrete representations
// (RangeIntSet, SortedArrayIntSet, BitmapIntSet) all satisfy it, and any
// pair of them may be unioned or intersected with each other.
type IntSet interface {
	// Has reports whether i is a member of the set.
	Has(i int) bool
	// Min returns the smallest member, or -1 if the set is empty.
	Min() int
	// Max returns the largest member, or -1 if the set is empty.
	Max() int
	// Size returns the number of members.
	Size() int
	// Each calls fn with every member in ascending order, stopping early
	// if fn returns false.
	Each(fn func(i int) bool)
	// Iterator returns a fresh ascending OrderedIterator over the set.
	Iterator() OrderedIterator
	// Union returns the set-theoretic union of the receiver and other.
	Union(other IntSet) IntSet
	// Intersection returns the set-theoretic intersection of the receiver
	// and other.
	Intersection(other IntSet) IntSet
	// Equals reports whether other enumerates the same members.
	Equals(other IntSet) bool
}

// OrderedIterator produces a set's members in strictly ascending order.
type OrderedIterator interface {
	// HasNext reports whether Next would return another value.
	HasNext() bool
	// Next returns the next value in ascending order. Calling Next when
	// HasNext is false returns the iterator's zero-value sentinel (-1)
	// rather than panicking; callers must check HasNext first.
	Next() int
	// SkipTo advances the iterator so the next call to Next returns the
	// first element >= target. SkipTo to a value <= the current position
	// is a no-op.
	SkipTo(target int)
}

// Empty is the canonical empty IntSet.
var Empty IntSet = RangeIntSet{}

// EqualIntSets reports whether a and b enumerate identical ascending
// sequences of members. It is the implementation backing every concrete
// type's Equals method, so cross-variant comparisons (e.g. a Bitmap versus
// a SortedArray holding the same members) are always correct.
func EqualIntSets(a, b IntSet) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Size() != b.Size() {
		return false
	}
	ai, bi := a.Iterator(), b.Iterator()
	for ai.HasNext() {
		if !bi.HasNext() {
			return false
		}
		if ai.Next() != bi.Next() {
			return false
		}
	}
	return !bi.HasNext()
}

// Collect materializes every member of s into an ascending slice.
func Collect(s IntSet) []int {
	out := make([]int, 0, s.Size())
	s.Each(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// MostEfficientIntSet picks the cheapest concrete representation of the
// members of s, after the set has already been materialized:
//
//   - a contiguous run becomes a RangeIntSet,
//   - otherwise the byte footprint of a sorted array (one int per member)
//     is compared against a bitmap's (one bit per slot in [min, max]), and
//     the smaller representation wins. As a heuristic this favors a bitmap
//     once density (size / (max-min+1)) reaches 1/32.
func MostEfficientIntSet(s IntSet) IntSet {
	n := s.Size()
	if n == 0 {
		return Empty
	}
	min, max := s.Min(), s.Max()
	if max-min+1 == n {
		return RangeIntSet{minValue: min, length: n}
	}

	members := Collect(s)
	width := max - min + 1
	// Bitmap cost: one word per 32 positions in range. Array cost: one
	// int-sized slot per member. Prefer the bitmap once density >= 1/32,
	// i.e. when n*32 >= width.
	if n*wordBits >= width {
		return newBitmapFromSorted(members)
	}
	return newSortedArrayFromSorted(members)
}
