package intset

// unionGeneral computes a ∪ b via a k-way merge of ordered iterators and
// chooses the cheapest output representation. It is the fallback used by
// any pair of concrete types that doesn't have a dedicated fast path (range
// shortcuts, bitmap-bitmap word-parallel).
func unionGeneral(a, b IntSet) IntSet {
	return MostEfficientIntSet(unionOfOrderedIterators(a.Iterator(), b.Iterator()))
}

// intersectGeneral computes a ∩ b via ordered-iterator merge.
func intersectGeneral(a, b IntSet) IntSet {
	return MostEfficientIntSet(intersectionOfOrderedIterators(a.Iterator(), b.Iterator()))
}

// materialized is an already-sorted, already-deduplicated slice presented
// as an IntSet so MostEfficientIntSet can operate uniformly on merge
// results before picking a final representation.
type materialized struct {
	data []int
}

func (m materialized) Has(i int) bool {
	return Search(m.data, i) >= 0
}
func (m materialized) Min() int {
	if len(m.data) == 0 {
		return -1
	}
	return m.data[0]
}
func (m materialized) Max() int {
	if len(m.data) == 0 {
		return -1
	}
	return m.data[len(m.data)-1]
}
func (m materialized) Size() int { return len(m.data) }
func (m materialized) Each(fn func(int) bool) {
	for _, v := range m.data {
		if !fn(v) {
			return
		}
	}
}
func (m materialized) Iterator() OrderedIterator    { return &sortedArrayIterator{data: m.data} }
func (m materialized) Union(other IntSet) IntSet    { return unionGeneral(m, other) }
func (m materialized) Intersection(o IntSet) IntSet { return intersectGeneral(m, o) }
func (m materialized) Equals(other IntSet) bool     { return EqualIntSets(m, other) }

// unionOfOrderedIterators performs a classic k-way (here two-way) merge:
// at each step, emit the smallest head, skipping duplicates, and advance
// every iterator whose head equaled the emitted value.
func unionOfOrderedIterators(a, b OrderedIterator) IntSet {
	var out []int
	aHas, bHas := a.HasNext(), b.HasNext()
	var av, bv int
	if aHas {
		av = a.Next()
	}
	if bHas {
		bv = b.Next()
	}
	for aHas || bHas {
		switch {
		case aHas && (!bHas || av < bv):
			out = append(out, av)
			if aHas = a.HasNext(); aHas {
				av = a.Next()
			}
		case bHas && (!aHas || bv < av):
			out = append(out, bv)
			if bHas = b.HasNext(); bHas {
				bv = b.Next()
			}
		default: // av == bv
			out = append(out, av)
			if aHas = a.HasNext(); aHas {
				av = a.Next()
			}
			if bHas = b.HasNext(); bHas {
				bv = b.Next()
			}
		}
	}
	return materialized{data: out}
}

// intersectionOfOrderedIterators advances whichever iterator's head is
// smaller until both heads agree, emits, advances both, and repeats.
func intersectionOfOrderedIterators(a, b OrderedIterator) IntSet {
	var out []int
	if !a.HasNext() || !b.HasNext() {
		return materialized{}
	}
	av, bv := a.Next(), b.Next()
	aHas, bHas := true, true
	for aHas && bHas {
		switch {
		case av < bv:
			a.SkipTo(bv)
			if aHas = a.HasNext(); aHas {
				av = a.Next()
			}
		case bv < av:
			b.SkipTo(av)
			if bHas = b.HasNext(); bHas {
				bv = b.Next()
			}
		default:
			out = append(out, av)
			if aHas = a.HasNext(); aHas {
				av = a.Next()
			}
			if bHas = b.HasNext(); bHas {
				bv = b.Next()
			}
		}
	}
	return materialized{data: out}
}
