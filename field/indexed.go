package field

import (
	"fmt"
	"sort"

	"github.com/killzin666/ozone/intset"
)

// IndexedField stores a column as an ordered list of distinct values plus a
// value-as-string -> IntSet-of-rows map. A row may appear in zero, one, or
// several values' sets; empty IntSets for declared-but-unobserved values are
// legal and preserved (spec §4.D).
type IndexedField struct {
	descriptor Descriptor
	order      []string
	valuesByID map[string]interface{}
	sets       map[string]intset.IntSet
}

// NewIndexedField constructs an IndexedField directly from already-built
// per-value sets, in the given display order. Unknown order entries with no
// corresponding set are stored with the canonical empty set.
func NewIndexedField(d Descriptor, order []string, values map[string]interface{}, sets map[string]intset.IntSet) *IndexedField {
	f := &IndexedField{
		descriptor: d,
		order:      append([]string(nil), order...),
		valuesByID: make(map[string]interface{}, len(order)),
		sets:       make(map[string]intset.IntSet, len(order)),
	}
	for _, key := range order {
		if v, ok := values[key]; ok {
			f.valuesByID[key] = v
		} else {
			f.valuesByID[key] = key
		}
		if s, ok := sets[key]; ok {
			f.sets[key] = s
		} else {
			f.sets[key] = intset.Empty
		}
	}
	return f
}

// Descriptor returns the field's metadata.
func (f *IndexedField) Descriptor() Descriptor { return f.descriptor }

// AllValues returns the ordered list of distinct values, in insertion or
// builder-specified order.
func (f *IndexedField) AllValues() []interface{} {
	out := make([]interface{}, len(f.order))
	for i, key := range f.order {
		out[i] = f.valuesByID[key]
	}
	return out
}

// DistinctValueEstimate is exactly len(AllValues()).
func (f *IndexedField) DistinctValueEstimate() int {
	return len(f.order)
}

// IntSetForValue returns the IntSet of rows holding v, or the canonical
// empty set if v is unknown to this field.
func (f *IndexedField) IntSetForValue(v interface{}) intset.IntSet {
	s, ok := f.sets[keyOf(v)]
	if !ok {
		return intset.Empty
	}
	return s
}

// RowHasValue reports whether row contains v, via a constant-time lookup on
// v's IntSet.
func (f *IndexedField) RowHasValue(row int, v interface{}) bool {
	return f.IntSetForValue(v).Has(row)
}

// Values returns every value row has for this field. Expected O(distinct
// values): it walks the field's value list checking membership, since an
// IndexedField is keyed by value, not by row.
func (f *IndexedField) Values(row int) []interface{} {
	var out []interface{}
	for _, key := range f.order {
		if f.sets[key].Has(row) {
			out = append(out, f.valuesByID[key])
		}
	}
	return out
}

// keyOf returns the stable string key used internally to index values.
func keyOf(v interface{}) string {
	return fmt.Sprint(v)
}

// IndexedFieldBuilder performs the one-pass reduction described in spec
// §4.D: for each row's values (drawn from a source field), it obtains or
// creates the per-value IntSet builder and feeds it the row's integer id.
type IndexedFieldBuilder struct {
	descriptor Descriptor
	whitelist  map[string]bool
	order      []string
	valuesByID map[string]interface{}
	builders   map[string]intset.Builder
	min, max   int
}

// IndexedFieldBuilderParams mirrors the optional {values, intSetSource}
// params accepted by the original builder.
type IndexedFieldBuilderParams struct {
	// Values, if non-nil, restricts and orders the output to exactly these
	// values; values outside it are ignored when observed.
	Values []interface{}
	// SizeHintMin/SizeHintMax size each value's IntSet builder.
	SizeHintMin, SizeHintMax int
}

// NewIndexedFieldBuilder starts a builder for d. params is optional; pass
// the zero value for default (first-seen order, no size hints).
func NewIndexedFieldBuilder(d Descriptor, params IndexedFieldBuilderParams) *IndexedFieldBuilder {
	b := &IndexedFieldBuilder{
		descriptor: d,
		valuesByID: make(map[string]interface{}),
		builders:   make(map[string]intset.Builder),
		min:        params.SizeHintMin,
		max:        params.SizeHintMax,
	}
	if params.Values != nil {
		b.whitelist = make(map[string]bool, len(params.Values))
		for _, v := range params.Values {
			key := keyOf(v)
			b.whitelist[key] = true
			b.order = append(b.order, key)
			b.valuesByID[key] = v
			b.builders[key] = intset.NewBuilder(b.min, b.max)
		}
	}
	return b
}

// OnRow feeds one source row: row is its integer id, values is every value
// the source field reports for that row (spec: source.values(rowToken)).
func (b *IndexedFieldBuilder) OnRow(row int, values []interface{}) {
	for _, v := range values {
		key := keyOf(v)
		if b.whitelist != nil && !b.whitelist[key] {
			continue
		}
		bld, ok := b.builders[key]
		if !ok {
			bld = intset.NewBuilder(b.min, b.max)
			b.builders[key] = bld
			b.order = append(b.order, key)
			b.valuesByID[key] = v
		}
		bld.OnItem(row)
	}
}

// OnEnd seals every per-value builder through MostEfficientIntSet and
// returns the finished IndexedField.
func (b *IndexedFieldBuilder) OnEnd() *IndexedField {
	sets := make(map[string]intset.IntSet, len(b.order))
	for key, bld := range b.builders {
		sets[key] = bld.OnEnd()
	}
	return NewIndexedField(b.descriptor, b.order, b.valuesByID, sets)
}

// SortValuesByString is a convenience for callers who built without an
// explicit whitelist and want a stable, human-friendly display order (e.g.
// alphabetic for strings) instead of arrival order. It's never called
// automatically: first-seen order is the documented default.
func SortValuesByString(values []interface{}) []interface{} {
	out := append([]interface{}(nil), values...)
	sort.SliceStable(out, func(i, j int) bool {
		return fmt.Sprint(out[i]) < fmt.Sprint(out[j])
	})
	return out
}
