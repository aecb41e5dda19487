package intset

// BitmapIntSet is a packed, one-bit-per-row-id representation. words[i] bit b
// represents row-id (wordOffset+i)*32 + b. wordOffset skips leading all-zero
// words so a bitmap over a high, narrow range doesn't pay for the unused
// prefix.
type BitmapIntSet struct {
	words       []uint32
	wordOffset  int
	cardinality int
}

// IsPacked always reports true for BitmapIntSet, matching the spec's
// isPacked marker for packed representations. The bitmap-bitmap fast path
// selects on the concrete type rather than calling IsPacked.
func (b BitmapIntSet) IsPacked() bool { return true }

func newBitmapFromSorted(ascending []int) BitmapIntSet {
	if len(ascending) == 0 {
		return BitmapIntSet{}
	}
	min, max := ascending[0], ascending[len(ascending)-1]
	wordOffset := InWord(min)
	words := make([]uint32, InWord(max)-wordOffset+1)
	for _, v := range ascending {
		wi := InWord(v) - wordOffset
		words[wi] = SetBit(InWordOffset(v), words[wi])
	}
	return BitmapIntSet{words: words, wordOffset: wordOffset, cardinality: len(ascending)}
}

func (b BitmapIntSet) wordAt(wi int) uint32 {
	idx := wi - b.wordOffset
	if idx < 0 || idx >= len(b.words) {
		return 0
	}
	return b.words[idx]
}

func (b BitmapIntSet) Has(i int) bool {
	if i < 0 {
		return false
	}
	return HasBit(InWordOffset(i), b.wordAt(InWord(i)))
}

func (b BitmapIntSet) Min() int {
	for i, w := range b.words {
		if mb := MinBit(w); mb >= 0 {
			return (b.wordOffset+i)*wordBits + mb
		}
	}
	return -1
}

func (b BitmapIntSet) Max() int {
	for i := len(b.words) - 1; i >= 0; i-- {
		if mb := MaxBit(b.words[i]); mb >= 0 {
			return (b.wordOffset+i)*wordBits + mb
		}
	}
	return -1
}

func (b BitmapIntSet) Size() int {
	return b.cardinality
}

func (b BitmapIntSet) Each(fn func(i int) bool) {
	for i, w := range b.words {
		if w == 0 {
			continue
		}
		base := (b.wordOffset + i) * wordBits
		for w != 0 {
			bit := MinBit(w)
			if !fn(base + bit) {
				return
			}
			w = UnsetBit(bit, w)
		}
	}
}

func (b BitmapIntSet) Iterator() OrderedIterator {
	return &bitmapIterator{b: b, wordIdx: 0}
}

func (b BitmapIntSet) Equals(other IntSet) bool {
	if o, ok := other.(BitmapIntSet); ok {
		if b.cardinality != o.cardinality {
			return false
		}
		if b.wordOffset == o.wordOffset && len(b.words) == len(o.words) {
			for i := range b.words {
				if b.words[i] != o.words[i] {
					return false
				}
			}
			return true
		}
	}
	return EqualIntSets(b, other)
}

func (b BitmapIntSet) Union(other IntSet) IntSet {
	if r, ok := other.(RangeIntSet); ok {
		return r.Union(b)
	}
	if o, ok := other.(BitmapIntSet); ok {
		return packedBitwiseOp(b, o, false)
	}
	return unionGeneral(b, other)
}

func (b BitmapIntSet) Intersection(other IntSet) IntSet {
	if r, ok := other.(RangeIntSet); ok {
		return r.Intersection(b)
	}
	if o, ok := other.(BitmapIntSet); ok {
		return packedBitwiseOp(b, o, true)
	}
	return intersectGeneral(b, other)
}

// packedBitwiseOp implements the bitmap-bitmap fast path (spec §4.B): for
// every word position present in either operand, apply the bitwise op
// word-parallel, honoring each operand's wordOffset, and accumulate the
// result directly rather than falling back to iterator merges.
func packedBitwiseOp(a, b BitmapIntSet, intersect bool) IntSet {
	var lo, hi int
	if intersect {
		lo = max(a.wordOffset, b.wordOffset)
		hi = min(a.wordOffset+len(a.words), b.wordOffset+len(b.words)) - 1
		if hi < lo {
			return Empty
		}
	} else {
		lo = min(a.wordOffset, b.wordOffset)
		hi = max(a.wordOffset+len(a.words), b.wordOffset+len(b.words)) - 1
	}

	words := make([]uint32, hi-lo+1)
	cardinality := 0
	firstNonZero := -1
	for wi := lo; wi <= hi; wi++ {
		var out uint32
		if intersect {
			out = a.wordAt(wi) & b.wordAt(wi)
		} else {
			out = a.wordAt(wi) | b.wordAt(wi)
		}
		words[wi-lo] = out
		if out != 0 {
			cardinality += CountBits(out)
			if firstNonZero == -1 {
				firstNonZero = wi - lo
			}
		}
	}
	if cardinality == 0 {
		return Empty
	}
	return BitmapIntSet{
		words:       words[firstNonZero:],
		wordOffset:  lo + firstNonZero,
		cardinality: cardinality,
	}
}

type bitmapIterator struct {
	b         BitmapIntSet
	wordIdx   int
	remaining uint32
	loaded    bool
}

func (it *bitmapIterator) advanceToNonEmpty() {
	for !it.loaded || it.remaining == 0 {
		if it.wordIdx >= len(it.b.words) {
			it.remaining = 0
			return
		}
		it.remaining = it.b.words[it.wordIdx]
		it.loaded = true
		if it.remaining == 0 {
			it.wordIdx++
			it.loaded = false
		}
	}
}

func (it *bitmapIterator) HasNext() bool {
	it.advanceToNonEmpty()
	return it.remaining != 0
}

func (it *bitmapIterator) Next() int {
	if !it.HasNext() {
		return -1
	}
	bit := MinBit(it.remaining)
	v := (it.b.wordOffset+it.wordIdx)*wordBits + bit
	it.remaining = UnsetBit(bit, it.remaining)
	if it.remaining == 0 {
		it.wordIdx++
		it.loaded = false
	}
	return v
}

func (it *bitmapIterator) SkipTo(target int) {
	if it.HasNext() && it.peek() >= target {
		return
	}
	targetWord := InWord(target) - it.b.wordOffset
	if targetWord > it.wordIdx {
		it.wordIdx = targetWord
		it.loaded = false
	}
	for it.HasNext() && it.peek() < target {
		it.Next()
	}
}

func (it *bitmapIterator) peek() int {
	bit := MinBit(it.remaining)
	return (it.b.wordOffset+it.wordIdx)*wordBits + bit
}
