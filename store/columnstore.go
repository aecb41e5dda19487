// Package store implements the column store engine (spec §4.F/G): an
// immutable container of per-column fields plus the store-wide row-id set,
// filter composition, partitioning, and the filtered-view abstraction.
package store

import "github.com/killzin666/ozone/intset"

// ColumnStore is an immutable aggregate of fields plus a row count. Its
// row-id set is logically [0, size) (spec §3).
type ColumnStore struct {
	size       int
	fieldOrder []string
	fieldsByID map[string]Field
}

// NewColumnStore builds a ColumnStore. order controls Fields()'s iteration
// order; fields must contain an entry for every identifier in order.
func NewColumnStore(size int, order []string, fields map[string]Field) *ColumnStore {
	return &ColumnStore{
		size:       size,
		fieldOrder: append([]string(nil), order...),
		fieldsByID: fields,
	}
}

// Size returns the row count.
func (cs *ColumnStore) Size() int { return cs.size }

// IntSet returns the store-wide row-id set, RangeIntSet(0, size).
func (cs *ColumnStore) IntSet() intset.IntSet {
	return intset.NewRangeIntSet(0, cs.size)
}

// Field returns the field with the given identifier, and whether it exists.
func (cs *ColumnStore) Field(id string) (Field, bool) {
	f, ok := cs.fieldsByID[id]
	return f, ok
}

// Fields returns every field, in declaration order.
func (cs *ColumnStore) Fields() []Field {
	out := make([]Field, 0, len(cs.fieldOrder))
	for _, id := range cs.fieldOrder {
		out = append(out, cs.fieldsByID[id])
	}
	return out
}

// Filters returns the empty list: a raw ColumnStore has no applied filters.
func (cs *ColumnStore) Filters() []Filter { return nil }

// FilterByValue constructs a ValueFilter(fieldID, value) and applies it,
// evaluated against the full row range.
func (cs *ColumnStore) FilterByValue(fieldID string, value interface{}) *FilteredView {
	return cs.Filter(NewValueFilter(fieldID, value))
}

// Filter applies f against the full row range and returns the resulting
// FilteredView. Filtering a raw store by f is equivalent to filtering the
// empty view by f: there's nothing yet to dedupe against.
func (cs *ColumnStore) Filter(f Filter) *FilteredView {
	base := cs.IntSet()
	fld, ok := cs.fieldsByID[f.FieldIdentifier()]
	var matched intset.IntSet = intset.Empty
	if ok {
		matched = evaluateFilter(f, base, fld)
	}
	return &FilteredView{
		source:      cs,
		filterArray: []Filter{f},
		filterBits:  matched,
	}
}

// Partition groups the store's rows by fieldID's distinct values. Values
// whose row set would be empty are omitted from the result.
func (cs *ColumnStore) Partition(fieldID string) map[string]*FilteredView {
	fld, ok := cs.fieldsByID[fieldID]
	if !ok {
		return map[string]*FilteredView{}
	}
	return cs.partitionView(fieldID, fld, cs.IntSet(), nil)
}

func (cs *ColumnStore) partitionView(fieldID string, fld Field, within intset.IntSet, baseFilters []Filter) map[string]*FilteredView {
	entries := partitionField(within, fld)
	out := make(map[string]*FilteredView, len(entries))
	for key, entry := range entries {
		filters := append(append([]Filter(nil), baseFilters...), NewValueFilter(fieldID, entry.value))
		out[key] = &FilteredView{
			source:      cs,
			filterArray: filters,
			filterBits:  entry.rows,
		}
	}
	return out
}

// EachRow invokes action for every row-id in [0, size), ascending.
func (cs *ColumnStore) EachRow(action func(row int)) {
	for i := 0; i < cs.size; i++ {
		action(i)
	}
}
