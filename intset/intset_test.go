package intset_test

import (
	"math/rand"
	"testing"

	"github.com/killzin666/ozone/intset"
)

func buildSorted(vals []int) intset.IntSet {
	b := intset.NewSortedArrayBuilder(-1, -1)
	for _, v := range vals {
		b.OnItem(v)
	}
	return b.OnEnd()
}

func buildBitmap(vals []int) intset.IntSet {
	b := intset.NewBitmapBuilder(-1, -1)
	for _, v := range vals {
		b.OnItem(v)
	}
	return b.OnEnd()
}

func buildDefault(vals []int) intset.IntSet {
	b := intset.NewBuilder(-1, -1)
	for _, v := range vals {
		b.OnItem(v)
	}
	return b.OnEnd()
}

func TestEmptySet(t *testing.T) {
	for _, s := range []intset.IntSet{
		intset.Empty,
		buildSorted(nil),
		buildBitmap(nil),
		intset.NewRangeIntSet(5, 0),
	} {
		if s.Min() != -1 || s.Max() != -1 || s.Size() != 0 {
			t.Fatalf("expected empty set invariants, got min=%d max=%d size=%d", s.Min(), s.Max(), s.Size())
		}
	}
}

func TestRangeIntSet(t *testing.T) {
	r := intset.NewRangeIntSet(10, 5) // [10,15)
	if r.Min() != 10 || r.Max() != 14 || r.Size() != 5 {
		t.Fatalf("unexpected range bounds: min=%d max=%d size=%d", r.Min(), r.Max(), r.Size())
	}
	if !r.Has(10) || !r.Has(14) || r.Has(15) || r.Has(9) {
		t.Fatalf("range membership incorrect")
	}
}

func TestBuilderOrderPreserved(t *testing.T) {
	vals := []int{2, 7, 8, 15, 16, 100}
	for _, build := range []func([]int) intset.IntSet{buildSorted, buildBitmap, buildDefault} {
		s := build(vals)
		got := intset.Collect(s)
		if len(got) != len(vals) {
			t.Fatalf("size mismatch: got %v want %v", got, vals)
		}
		for i := range vals {
			if got[i] != vals[i] {
				t.Fatalf("order mismatch at %d: got %v want %v", i, got, vals)
			}
		}
	}
}

func TestBuilderRejectsNonAscending(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on non-ascending OnItem")
		}
	}()
	b := intset.NewSortedArrayBuilder(-1, -1)
	b.OnItem(5)
	b.OnItem(5)
}

func TestCrossVariantUnionIntersection(t *testing.T) {
	// S3 from spec: bitmap [5,37,38,100] union sortedarray [37,200].
	bm := buildBitmap([]int{5, 37, 38, 100})
	sa := buildSorted([]int{37, 200})

	u := bm.Union(sa)
	want := []int{5, 37, 38, 100, 200}
	got := intset.Collect(u)
	if !equalSlices(got, want) {
		t.Fatalf("union mismatch: got %v want %v", got, want)
	}

	// S4: range [10..20] intersect sortedarray [5,12,18,25] -> [12,18].
	r := intset.NewRangeIntSet(10, 11) // [10,21) i.e. 10..20 inclusive
	sa2 := buildSorted([]int{5, 12, 18, 25})
	i := r.Intersection(sa2)
	wantI := []int{12, 18}
	gotI := intset.Collect(i)
	if !equalSlices(gotI, wantI) {
		t.Fatalf("intersection mismatch: got %v want %v", gotI, wantI)
	}
}

func TestMostEfficientIntSetRoundTrips(t *testing.T) {
	vals := []int{1, 2, 3, 4, 5}
	s := buildSorted(vals)
	m := intset.MostEfficientIntSet(s)
	if !m.Equals(s) {
		t.Fatalf("MostEfficientIntSet changed membership")
	}
	if _, ok := m.(intset.RangeIntSet); !ok {
		t.Fatalf("expected contiguous run to become a RangeIntSet, got %T", m)
	}
}

func TestSearch(t *testing.T) {
	data := []int{2, 4, 6, 8, 10}
	if idx := intset.Search(data, 6); idx != 2 {
		t.Fatalf("expected index 2, got %d", idx)
	}
	idx := intset.Search(data, 5)
	if idx >= 0 {
		t.Fatalf("expected miss for 5, got hit at %d", idx)
	}
	if ip := ^idx; ip != 2 {
		t.Fatalf("expected insertion point 2, got %d", ip)
	}
}

func equalSlices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Property-based checks (spec §8).
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		av := randomAscending(rng, 30)
		bv := randomAscending(rng, 30)
		a := buildDefault(av)
		b := buildDefault(bv)

		union := a.Union(b)
		inter := a.Intersection(b)

		if union.Size() < maxInt(a.Size(), b.Size()) {
			t.Fatalf("union size invariant violated")
		}
		if inter.Size() > minInt(a.Size(), b.Size()) {
			t.Fatalf("intersection size invariant violated")
		}
		if !union.Equals(b.Union(a)) {
			t.Fatalf("union not commutative")
		}
		if !inter.Equals(b.Intersection(a)) {
			t.Fatalf("intersection not commutative")
		}
		if !a.Union(a).Equals(a) {
			t.Fatalf("union not idempotent")
		}
		if !a.Intersection(a).Equals(a) {
			t.Fatalf("intersection not idempotent")
		}
		for _, x := range av {
			if !a.Has(x) {
				t.Fatalf("Has false negative for %d", x)
			}
		}
	}
}

func randomAscending(rng *rand.Rand, n int) []int {
	seen := map[int]bool{}
	for len(seen) < n {
		seen[rng.Intn(500)] = true
	}
	out := make([]int, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	// insertion sort; n is small.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
