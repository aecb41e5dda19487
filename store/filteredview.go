package store

import "github.com/killzin666/ozone/intset"

// FilteredView is a logical sub-store sharing a base ColumnStore's columns,
// narrowed by the intersection of every applied Filter's matching set (spec
// §3/§4.G). It never mutates the base store or any IntSet it shares with it.
type FilteredView struct {
	source      *ColumnStore
	filterArray []Filter
	filterBits  intset.IntSet
}

// Size returns the number of rows the view's filters leave matching.
func (v *FilteredView) Size() int { return v.filterBits.Size() }

// IntSet returns the view's precomputed, intersected row-id set.
func (v *FilteredView) IntSet() intset.IntSet { return v.filterBits }

// EachRow invokes action for every matching row, ascending.
func (v *FilteredView) EachRow(action func(row int)) {
	v.filterBits.Each(func(row int) bool {
		action(row)
		return true
	})
}

// Field delegates to the base store: fields are shared, and row-ids from
// the view are valid against them as long as they're members of the base
// store's full range.
func (v *FilteredView) Field(id string) (Field, bool) {
	return v.source.Field(id)
}

// Fields delegates to the base store.
func (v *FilteredView) Fields() []Field {
	return v.source.Fields()
}

// Filters returns a defensive copy of the applied filters, in application
// order.
func (v *FilteredView) Filters() []Filter {
	return append([]Filter(nil), v.filterArray...)
}

// SimplifiedFilters returns the applied filters with structurally redundant
// entries removed. The default policy is advisory, for display: it only
// removes exact duplicates (spec §4.G).
func (v *FilteredView) SimplifiedFilters() []Filter {
	var out []Filter
	for _, f := range v.filterArray {
		if !containsFilter(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// FilterByValue constructs a ValueFilter(fieldID, value) and applies it.
func (v *FilteredView) FilterByValue(fieldID string, value interface{}) *FilteredView {
	return v.Filter(NewValueFilter(fieldID, value))
}

// Filter applies newFilter on top of the view's existing filters. If an
// equal filter is already present, the view is returned unchanged
// (idempotence, spec §8 property 10). Otherwise newFilter is evaluated
// against the view's current filterBits and the result is intersected in.
func (v *FilteredView) Filter(newFilter Filter) *FilteredView {
	if containsFilter(v.filterArray, newFilter) {
		return v
	}
	fld, ok := v.source.Field(newFilter.FieldIdentifier())
	var added intset.IntSet = intset.Empty
	if ok {
		added = evaluateFilter(newFilter, v.filterBits, fld)
	}
	return &FilteredView{
		source:      v.source,
		filterArray: append(append([]Filter(nil), v.filterArray...), newFilter),
		filterBits:  v.filterBits.Intersection(added),
	}
}

// RemoveFilter rebuilds the view by re-applying every remaining filter, in
// order, to the base store. Intersection isn't easily invertible, so
// subtraction isn't attempted incrementally (spec §4.G, §9). If f isn't
// present, the view is returned unchanged.
func (v *FilteredView) RemoveFilter(f Filter) *FilteredView {
	if !containsFilter(v.filterArray, f) {
		return v
	}
	rebuilt := &FilteredView{source: v.source, filterBits: v.source.IntSet()}
	for _, existing := range v.filterArray {
		if existing.Equals(f) {
			continue
		}
		fld, ok := v.source.Field(existing.FieldIdentifier())
		var matched intset.IntSet = intset.Empty
		if ok {
			matched = evaluateFilter(existing, rebuilt.filterBits, fld)
		}
		rebuilt.filterArray = append(rebuilt.filterArray, existing)
		rebuilt.filterBits = rebuilt.filterBits.Intersection(matched)
	}
	return rebuilt
}

// Partition groups the view's rows by fieldID's distinct values, as
// ColumnStore.Partition does, but pre-intersected with the view's
// filterBits; values left with an empty row set are omitted.
func (v *FilteredView) Partition(fieldID string) map[string]*FilteredView {
	fld, ok := v.source.Field(fieldID)
	if !ok {
		return map[string]*FilteredView{}
	}
	return v.source.partitionView(fieldID, fld, v.filterBits, v.filterArray)
}
