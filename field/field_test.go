package field_test

import (
	"testing"

	"github.com/killzin666/ozone/field"
)

func TestIndexedFieldBuilderBasic(t *testing.T) {
	// S2 from spec: values ["a","b","a","c","a"] at rows 0..4.
	rows := [][]interface{}{
		{"a"}, {"b"}, {"a"}, {"c"}, {"a"},
	}
	d := field.NewDescriptor(field.TypeString, field.WithIdentifier("letter"))
	b := field.NewIndexedFieldBuilder(d, field.IndexedFieldBuilderParams{})
	for row, vals := range rows {
		b.OnRow(row, vals)
	}
	f := b.OnEnd()

	if got := intsetToSlice(f.IntSetForValue("a")); !sliceEq(got, []int{0, 2, 4}) {
		t.Fatalf("intSetForValue(a) = %v", got)
	}
	if got := intsetToSlice(f.IntSetForValue("b")); !sliceEq(got, []int{1}) {
		t.Fatalf("intSetForValue(b) = %v", got)
	}
	if !f.RowHasValue(3, "c") {
		t.Fatalf("expected row 3 to have value c")
	}
	if f.DistinctValueEstimate() != 3 {
		t.Fatalf("expected 3 distinct values, got %d", f.DistinctValueEstimate())
	}
}

func TestIndexedFieldBuilderExplicitValues(t *testing.T) {
	// S6 from spec: explicit value order includes an unobserved value.
	d := field.NewDescriptor(field.TypeString, field.WithIdentifier("month"))
	b := field.NewIndexedFieldBuilder(d, field.IndexedFieldBuilderParams{
		Values: []interface{}{"Jan", "Feb", "Mar"},
	})
	b.OnRow(0, []interface{}{"Jan"})
	b.OnRow(1, []interface{}{"Mar"})
	f := b.OnEnd()

	all := f.AllValues()
	if len(all) != 3 || all[0] != "Jan" || all[1] != "Feb" || all[2] != "Mar" {
		t.Fatalf("unexpected allValues order: %v", all)
	}
	if f.IntSetForValue("Feb").Size() != 0 {
		t.Fatalf("expected Feb to be empty, got size %d", f.IntSetForValue("Feb").Size())
	}
}

func TestUnIndexedFieldBuilder(t *testing.T) {
	d := field.NewDescriptor(field.TypeNumber, field.WithIdentifier("age"))
	b := field.NewUnIndexedFieldBuilder(d, field.UnIndexedFieldBuilderParams{NullProxy: nil})
	b.OnRow(2, 30) // leading nulls at rows 0,1 trimmed
	b.OnRow(3, nil)
	b.OnRow(4, 40)
	f := b.OnEnd()

	if f.FirstRowToken() != 2 {
		t.Fatalf("expected offset 2, got %d", f.FirstRowToken())
	}
	if f.Value(0) != nil {
		t.Fatalf("expected row 0 to be null (out of range)")
	}
	if f.Value(2) != 30 {
		t.Fatalf("expected row 2 = 30, got %v", f.Value(2))
	}
	if f.Value(3) != nil {
		t.Fatalf("expected row 3 = nil, got %v", f.Value(3))
	}
	if len(f.Values(3)) != 0 {
		t.Fatalf("expected Values(3) empty for null row")
	}
	if len(f.Values(4)) != 1 || f.Values(4)[0] != 40 {
		t.Fatalf("expected Values(4) = [40], got %v", f.Values(4))
	}
}

func sliceEq(a, b []int) bool {
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

func intsetToSlice(s interface{ Each(func(int) bool) }) []int {
	var out []int
	s.Each(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}
