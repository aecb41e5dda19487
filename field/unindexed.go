package field

// UnIndexedField stores a column as a dense array indexed by row-id, for
// wide-cardinality columns where a value->rows index would waste memory
// (spec §4.E). Always unary: at most one value per row.
type UnIndexedField struct {
	descriptor Descriptor
	data       []interface{}
	offset     int
	nullProxy  interface{}
}

// NewUnIndexedField wraps an already-built dense array. offset is the
// row-id that data[0] corresponds to (non-zero when leading nulls were
// trimmed at build time).
func NewUnIndexedField(d Descriptor, data []interface{}, offset int, nullProxy interface{}) *UnIndexedField {
	return &UnIndexedField{descriptor: d, data: data, offset: offset, nullProxy: nullProxy}
}

// Descriptor returns the field's metadata.
func (f *UnIndexedField) Descriptor() Descriptor { return f.descriptor }

// Value returns row's single value, or the nullProxy if row maps outside
// data or holds the null sentinel.
func (f *UnIndexedField) Value(row int) interface{} {
	idx := row - f.offset
	if idx < 0 || idx >= len(f.data) {
		return f.nullProxy
	}
	return f.data[idx]
}

// Values returns a zero- or one-element list: empty if row's value is the
// null sentinel, otherwise a single-element slice.
func (f *UnIndexedField) Values(row int) []interface{} {
	v := f.Value(row)
	if f.isNull(v) {
		return nil
	}
	return []interface{}{v}
}

// RowHasValue reports whether row's value equals v by direct comparison.
func (f *UnIndexedField) RowHasValue(row int, v interface{}) bool {
	return f.Value(row) == v
}

// FirstRowToken returns the row-id of data[0], for serialization.
func (f *UnIndexedField) FirstRowToken() int { return f.offset }

// DataArray returns the backing dense array, for serialization.
func (f *UnIndexedField) DataArray() []interface{} { return f.data }

// NullProxy returns the sentinel value used to denote "no value" for this
// field.
func (f *UnIndexedField) NullProxy() interface{} { return f.nullProxy }

func (f *UnIndexedField) isNull(v interface{}) bool {
	return v == f.nullProxy
}

// UnIndexedFieldBuilderParams mirrors the optional {nullValues, nullProxy}
// params accepted by the original builder.
type UnIndexedFieldBuilderParams struct {
	// NullValues lists source values that should be coerced to NullProxy.
	NullValues []interface{}
	// NullProxy is the sentinel for "no value"; defaults to nil.
	NullProxy interface{}
}

// UnIndexedFieldBuilder accumulates a dense array one row at a time,
// trimming leading nulls by recording the first non-null row's id as the
// offset (spec §4.E).
type UnIndexedFieldBuilder struct {
	descriptor Descriptor
	nullValues map[interface{}]bool
	nullProxy  interface{}
	data       []interface{}
	offset     int
	started    bool
	lastRow    int
}

// NewUnIndexedFieldBuilder starts a builder for d.
func NewUnIndexedFieldBuilder(d Descriptor, params UnIndexedFieldBuilderParams) *UnIndexedFieldBuilder {
	b := &UnIndexedFieldBuilder{
		descriptor: d,
		nullProxy:  params.NullProxy,
		lastRow:    -1,
	}
	if len(params.NullValues) > 0 {
		b.nullValues = make(map[interface{}]bool, len(params.NullValues))
		for _, v := range params.NullValues {
			b.nullValues[v] = true
		}
	}
	return b
}

// OnRow feeds row's single source value (or nil if the row had none).
func (b *UnIndexedFieldBuilder) OnRow(row int, value interface{}) {
	if row <= b.lastRow {
		panic("unindexed field builder: OnRow called with non-ascending row")
	}
	if b.nullValues != nil && b.nullValues[value] {
		value = b.nullProxy
	}
	if !b.started {
		if value == b.nullProxy {
			// Trim leading nulls: don't start the dense array yet.
			b.lastRow = row
			return
		}
		b.offset = row
		b.started = true
	} else {
		// Backfill any gap between the previous row and this one with
		// nullProxy so row-id arithmetic (row - offset) stays correct.
		for gap := b.lastRow + 1; gap < row; gap++ {
			b.data = append(b.data, b.nullProxy)
		}
	}
	b.data = append(b.data, value)
	b.lastRow = row
}

// OnEnd returns the finished UnIndexedField.
func (b *UnIndexedFieldBuilder) OnEnd() *UnIndexedField {
	return NewUnIndexedField(b.descriptor, b.data, b.offset, b.nullProxy)
}
