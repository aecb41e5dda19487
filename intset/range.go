package intset

// RangeIntSet represents the contiguous set [minValue, minValue+length). It
// is the cheapest possible representation and is what a fresh ColumnStore's
// whole-store row-id set (spec §3, "[0, size)") is built from.
type RangeIntSet struct {
	minValue int
	length   int
}

// NewRangeIntSet returns the contiguous set [min, min+length).  A length of
// 0 (or less) yields the empty set.
func NewRangeIntSet(min, length int) RangeIntSet {
	if length <= 0 {
		return RangeIntSet{}
	}
	return RangeIntSet{minValue: min, length: length}
}

func (r RangeIntSet) Has(i int) bool {
	return r.length > 0 && i >= r.minValue && i < r.minValue+r.length
}

func (r RangeIntSet) Min() int {
	if r.length == 0 {
		return -1
	}
	return r.minValue
}

func (r RangeIntSet) Max() int {
	if r.length == 0 {
		return -1
	}
	return r.minValue + r.length - 1
}

func (r RangeIntSet) Size() int {
	return r.length
}

func (r RangeIntSet) Each(fn func(i int) bool) {
	for i := r.minValue; i < r.minValue+r.length; i++ {
		if !fn(i) {
			return
		}
	}
}

func (r RangeIntSet) Iterator() OrderedIterator {
	return &rangeIterator{r: r, next: r.minValue}
}

func (r RangeIntSet) Equals(other IntSet) bool {
	if o, ok := other.(RangeIntSet); ok {
		if r.length == 0 || o.length == 0 {
			return r.length == 0 && o.length == 0
		}
		return r.minValue == o.minValue && r.length == o.length
	}
	return EqualIntSets(r, other)
}

// Union returns the union of r and other. When other lies entirely within r,
// the result is r unchanged (spec §4.B range shortcut).
func (r RangeIntSet) Union(other IntSet) IntSet {
	if r.length == 0 {
		return other
	}
	if o, ok := other.(RangeIntSet); ok {
		if o.length == 0 {
			return r
		}
		// Adjacent or overlapping ranges merge into one range.
		lo, hi := r.minValue, r.Max()
		oLo, oHi := o.minValue, o.Max()
		if oLo <= hi+1 && lo <= oHi+1 {
			newLo := min(lo, oLo)
			newHi := max(hi, oHi)
			return NewRangeIntSet(newLo, newHi-newLo+1)
		}
	}
	if other.Min() >= r.minValue && other.Max() <= r.Max() {
		return r
	}
	return unionGeneral(r, other)
}

// Intersection returns the subset of other within [r.min, r.max] (spec §4.B
// range shortcut). Two ranges intersect to a range; otherwise the result's
// representation is chosen via MostEfficientIntSet over the filtered
// members and need not match other's concrete type.
func (r RangeIntSet) Intersection(other IntSet) IntSet {
	if r.length == 0 {
		return Empty
	}
	if o, ok := other.(RangeIntSet); ok {
		if o.length == 0 {
			return Empty
		}
		lo := max(r.minValue, o.minValue)
		hi := min(r.Max(), o.Max())
		return NewRangeIntSet(lo, hi-lo+1)
	}
	return intersectGeneral(r, other)
}

type rangeIterator struct {
	r    RangeIntSet
	next int
}

func (it *rangeIterator) HasNext() bool {
	return it.next < it.r.minValue+it.r.length
}

func (it *rangeIterator) Next() int {
	if !it.HasNext() {
		return -1
	}
	v := it.next
	it.next++
	return v
}

func (it *rangeIterator) SkipTo(target int) {
	if target > it.next {
		it.next = target
	}
}
