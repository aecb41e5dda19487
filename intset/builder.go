package intset

import "github.com/killzin666/ozone/errors"

// Builder is a one-shot reducer that accepts row-ids via OnItem, in strictly
// ascending order, and yields a finished IntSet via OnEnd. Builders are not
// safe for concurrent use and produce exactly one IntSet each (spec §5).
type Builder interface {
	// OnItem feeds the next member. i must be strictly greater than every
	// previously fed value; violating that order is a programming error
	// and OnItem panics.
	OnItem(i int)
	// OnEnd seals the builder and returns the finished IntSet. Calling
	// OnItem after OnEnd is undefined.
	OnEnd() IntSet
}

// noHint is the sentinel used for an unspecified min/max hint.
const noHint = -1

func checkAscending(last, i int) {
	if i <= last {
		panic(errors.New(errors.ErrCodePrecondition,
			"intset builder: OnItem called with non-ascending value"))
	}
}

// --- default builder -------------------------------------------------

// defaultBuilder accumulates into a growable slice and picks the final
// representation via MostEfficientIntSet on OnEnd. This is what field
// builders use when constructing per-value IntSets (spec §4.D): no single
// representation is committed to up front, so the best one can be chosen
// once the member count is known.
type defaultBuilder struct {
	data []int
	last int
}

// NewBuilder returns a general-purpose builder. min and max are sizing
// hints only (pass noHint/-1 if unknown); OnEnd always picks the cheapest
// representation for whatever was actually fed, regardless of the hints.
func NewBuilder(min, max int) Builder {
	b := &defaultBuilder{last: noHint}
	if min >= 0 && max >= min {
		b.data = make([]int, 0, max-min+1)
	}
	return b
}

func (b *defaultBuilder) OnItem(i int) {
	checkAscending(b.last, i)
	b.data = append(b.data, i)
	b.last = i
}

func (b *defaultBuilder) OnEnd() IntSet {
	if len(b.data) == 0 {
		return Empty
	}
	return MostEfficientIntSet(materialized{data: b.data})
}

// --- range builder -----------------------------------------------------

// rangeBuilder builds a RangeIntSet. It assumes (and does not separately
// validate beyond the strictly-ascending precondition common to all
// builders) that the fed members form a contiguous run; callers that don't
// already know their input is contiguous should use NewBuilder instead.
type rangeBuilder struct {
	started bool
	min     int
	count   int
	last    int
}

// NewRangeBuilder returns a builder that produces a RangeIntSet. min/max are
// sizing hints only.
func NewRangeBuilder(min, max int) Builder {
	return &rangeBuilder{last: noHint}
}

func (b *rangeBuilder) OnItem(i int) {
	checkAscending(b.last, i)
	if !b.started {
		b.min = i
		b.started = true
	}
	b.count++
	b.last = i
}

func (b *rangeBuilder) OnEnd() IntSet {
	if b.count == 0 {
		return Empty
	}
	return NewRangeIntSet(b.min, b.count)
}

// --- sorted array builder ------------------------------------------------

type sortedArrayBuilder struct {
	data []int
	last int
}

// NewSortedArrayBuilder returns a builder that always produces a
// SortedArrayIntSet, regardless of density. min/max size the backing slice.
func NewSortedArrayBuilder(min, max int) Builder {
	b := &sortedArrayBuilder{last: noHint}
	if min >= 0 && max >= min {
		b.data = make([]int, 0, max-min+1)
	}
	return b
}

func (b *sortedArrayBuilder) OnItem(i int) {
	checkAscending(b.last, i)
	b.data = append(b.data, i)
	b.last = i
}

func (b *sortedArrayBuilder) OnEnd() IntSet {
	if len(b.data) == 0 {
		return Empty
	}
	return newSortedArrayFromSorted(b.data)
}

// --- bitmap builder ------------------------------------------------------

// bitmapBuilder builds a BitmapIntSet directly. max sizes the initial word
// array and min sets the initial wordOffset; per spec §9 these are sizing
// advice only — OnItem always grows the word slice as needed for values
// outside the hinted [min, max].
type bitmapBuilder struct {
	words      []uint32
	wordOffset int
	offsetSet  bool
	count      int
	last       int
}

// NewBitmapBuilder returns a builder that always produces a BitmapIntSet.
func NewBitmapBuilder(min, max int) Builder {
	b := &bitmapBuilder{last: noHint}
	if min >= 0 {
		b.wordOffset = InWord(min)
		b.offsetSet = true
	}
	if min >= 0 && max >= min {
		b.words = make([]uint32, InWord(max)-b.wordOffset+1)
	}
	return b
}

func (b *bitmapBuilder) OnItem(i int) {
	checkAscending(b.last, i)
	wi := InWord(i)
	if !b.offsetSet {
		b.wordOffset = wi
		b.offsetSet = true
	}
	if wi < b.wordOffset {
		// Grow to the left: prepend empty words and shift the offset down.
		shift := b.wordOffset - wi
		grown := make([]uint32, len(b.words)+shift)
		copy(grown[shift:], b.words)
		b.words = grown
		b.wordOffset = wi
	}
	idx := wi - b.wordOffset
	if idx >= len(b.words) {
		grown := make([]uint32, idx+1)
		copy(grown, b.words)
		b.words = grown
	}
	b.words[idx] = SetBit(InWordOffset(i), b.words[idx])
	b.count++
	b.last = i
}

func (b *bitmapBuilder) OnEnd() IntSet {
	if b.count == 0 {
		return Empty
	}
	return BitmapIntSet{words: b.words, wordOffset: b.wordOffset, cardinality: b.count}
}
