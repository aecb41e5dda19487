// Package ingest implements the row-store ingestion/reduction pipeline
// (spec §4.H): a one-pass reducer that consumes a row-oriented input and
// emits the columnar indexes (field.IndexedField / field.UnIndexedField)
// that a store.ColumnStore is built from.
package ingest

import "io"

// Row is one record from a row-oriented source: a mapping from column name
// to its raw value.
type Row map[string]interface{}

// RowSource yields Rows one at a time, in arrival order (row-id is inferred
// from that order). Next returns io.EOF when exhausted.
type RowSource interface {
	Next() (Row, error)
}

// RowTransformer normalizes a Row before it reaches the field reducers,
// e.g. CSV-string-to-typed-value coercion (spec §4.H). It is itself a
// one-shot reducer in the same OnItem/OnEnd shape as an IntSet builder.
type RowTransformer interface {
	// OnItem transforms row, returning the transformed row and whether it
	// should be kept. Returning false drops the row from ingestion
	// entirely (distinct from a field-level null).
	OnItem(row Row) (Row, bool)
	OnEnd()
}

// drainAll reads every row from source into memory. The spec characterizes
// ingestion as a single pass over the external row source (§4.H); deciding
// IndexedField vs. UnIndexedField per field (§4.C/§4.H) needs to see a
// field's value distribution, so this implementation buffers that one pass
// and walks the buffer a bounded number of times afterward, rather than
// re-reading the external source. That trade only works because the store
// this spec targets is explicitly "modest cardinality" and in-memory
// (spec §1).
func drainAll(source RowSource) ([]Row, error) {
	var rows []Row
	for {
		row, err := source.Next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
