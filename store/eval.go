package store

import (
	"fmt"

	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/intset"
)

// evaluateFilter matches spec §4.F's "Filter evaluation strategy": for an
// IndexedField, fetch intSetForValue and intersect with the current row
// set directly, with no per-row scan; for an UnIndexedField, scan the
// current row set and keep the rows whose value equals the filter's.
func evaluateFilter(f Filter, within intset.IntSet, fld Field) intset.IntSet {
	value := f.Value()
	switch ff := fld.(type) {
	case *field.IndexedField:
		return within.Intersection(ff.IntSetForValue(value))
	default:
		b := intset.NewBuilder(within.Min(), within.Max())
		within.Each(func(row int) bool {
			if fld.RowHasValue(row, value) {
				b.OnItem(row)
			}
			return true
		})
		return b.OnEnd()
	}
}

// partitionField groups within by fld's distinct values, returning a map
// from the value's string key to its IntSet intersected with within. Values
// whose intersected set is empty are omitted (spec §4.F).
//
// For an IndexedField this is a direct walk of its value->IntSet map; for
// an UnIndexedField, rows are scanned to build per-value IntSets first.
func partitionField(within intset.IntSet, fld Field) map[string]partitionEntry {
	out := make(map[string]partitionEntry)
	switch ff := fld.(type) {
	case *field.IndexedField:
		for _, v := range ff.AllValues() {
			s := within.Intersection(ff.IntSetForValue(v))
			if s.Size() == 0 {
				continue
			}
			out[keyOf(v)] = partitionEntry{value: v, rows: s}
		}
	default:
		builders := map[string]intset.Builder{}
		values := map[string]interface{}{}
		var order []string
		within.Each(func(row int) bool {
			for _, v := range fld.Values(row) {
				key := keyOf(v)
				b, ok := builders[key]
				if !ok {
					b = intset.NewBuilder(-1, -1)
					builders[key] = b
					values[key] = v
					order = append(order, key)
				}
				b.OnItem(row)
			}
			return true
		})
		for _, key := range order {
			s := builders[key].OnEnd()
			if s.Size() == 0 {
				continue
			}
			out[key] = partitionEntry{value: values[key], rows: s}
		}
	}
	return out
}

type partitionEntry struct {
	value interface{}
	rows  intset.IntSet
}

func keyOf(v interface{}) string {
	return fmt.Sprint(v)
}
