package ingest

import (
	"github.com/killzin666/ozone/errors"
	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/logger"
	"github.com/killzin666/ozone/store"
)

// FieldClass overrides the automatic IndexedField/UnIndexedField choice for
// one field.
type FieldClass int

const (
	// ClassAuto lets buildFromStore pick based on the field's effective
	// distinctValueEstimate (spec §4.H).
	ClassAuto FieldClass = iota
	ClassIndexed
	ClassUnindexed
)

// FieldSpec declares one target column for BuildFromStore.
type FieldSpec struct {
	// Identifier names the source column (the Row key) and, unless
	// Rename is set, the resulting field's identifier too.
	Identifier string
	// Rename overrides the resulting field's identifier; useful when a
	// source column name isn't a legal/desired field identifier.
	Rename string
	// DisplayName is advisory metadata for the resulting descriptor.
	DisplayName string
	TypeOfValue field.ValueType
	Class       FieldClass
	// MultipleValuesPerRow marks a source column whose raw value should be
	// split into more than one logical value per row (e.g. a delimited
	// multi-value cell). Splitter is required when this is true.
	MultipleValuesPerRow bool
	Splitter             func(raw interface{}) []interface{}
	// Values, for an IndexedField, restricts and orders the distinct
	// value list (spec §4.D, S6 scenario).
	Values []interface{}
	// NullValues lists raw values that should be coerced to NullProxy for
	// an UnIndexedField.
	NullValues []interface{}
	NullProxy  interface{}
}

// BuildParams configures BuildFromStore.
type BuildParams struct {
	Fields []FieldSpec
	// RowTransformer, if set, normalizes every row before field reducers
	// see it (spec §4.H), e.g. CSV-string-to-typed-value coercion.
	RowTransformer RowTransformer
	Logger         logger.Logger
}

// BuildFromStore orchestrates the ingestion pipeline (spec §4.H): one pass
// over source, then per field a choice of IndexedField vs. UnIndexedField
// driven by the effective distinctValueEstimate and any class override.
func BuildFromStore(source RowSource, params BuildParams) (*store.ColumnStore, error) {
	log := params.Logger
	if log == nil {
		log = logger.NopLogger
	}

	rows, err := drainAll(source)
	if err != nil {
		return nil, errors.Wrap(err, "draining row source")
	}
	if params.RowTransformer != nil {
		kept := make([]Row, 0, len(rows))
		for _, row := range rows {
			transformed, ok := params.RowTransformer.OnItem(row)
			if ok {
				kept = append(kept, transformed)
			}
		}
		params.RowTransformer.OnEnd()
		rows = kept
	}

	order := make([]string, 0, len(params.Fields))
	fields := make(map[string]store.Field, len(params.Fields))

	for _, spec := range params.Fields {
		id := spec.Identifier
		if spec.Rename != "" {
			id = spec.Rename
		}
		order = append(order, id)

		rawValues := func(row Row) []interface{} {
			raw, ok := row[spec.Identifier]
			if !ok {
				return nil
			}
			if spec.MultipleValuesPerRow && spec.Splitter != nil {
				return spec.Splitter(raw)
			}
			return []interface{}{raw}
		}

		freq := NewValueFrequencyCalculator()
		rangeCalc := NewRangeCalculator()
		for _, row := range rows {
			for _, v := range rawValues(row) {
				freq.OnItem(v)
				if spec.TypeOfValue == field.TypeNumber {
					rangeCalc.OnItem(v)
				}
			}
		}

		descOpts := []field.Option{
			field.WithIdentifier(id),
			field.WithDisplayName(displayNameOr(spec.DisplayName, id)),
		}
		if spec.MultipleValuesPerRow {
			descOpts = append(descOpts, field.WithMultipleValuesPerRow())
		}
		if spec.TypeOfValue == field.TypeNumber {
			descOpts = append(descOpts, field.WithPrecomputedRange(rangeCalc.OnEnd()))
		}
		if freq.Unlimited() {
			descOpts = append(descOpts, field.WithUnlimitedValues())
		} else {
			descOpts = append(descOpts, field.WithDistinctValues(freq.DistinctCount()))
		}
		desc := field.NewDescriptor(spec.TypeOfValue, descOpts...)

		useIndexed := spec.Class == ClassIndexed ||
			(spec.Class == ClassAuto && !freq.Unlimited() && freq.DistinctCount() <= exactDistinctValueLimit)

		if useIndexed {
			b := field.NewIndexedFieldBuilder(desc, field.IndexedFieldBuilderParams{Values: spec.Values})
			for rowID, row := range rows {
				b.OnRow(rowID, rawValues(row))
			}
			fields[id] = b.OnEnd()
		} else {
			if spec.MultipleValuesPerRow {
				log.Warnf("field %q: multi-valued columns require an indexed field; forcing indexed", id)
				b := field.NewIndexedFieldBuilder(desc, field.IndexedFieldBuilderParams{Values: spec.Values})
				for rowID, row := range rows {
					b.OnRow(rowID, rawValues(row))
				}
				fields[id] = b.OnEnd()
				continue
			}
			b := field.NewUnIndexedFieldBuilder(desc, field.UnIndexedFieldBuilderParams{
				NullValues: spec.NullValues,
				NullProxy:  spec.NullProxy,
			})
			for rowID, row := range rows {
				vals := rawValues(row)
				var v interface{}
				if len(vals) > 0 {
					v = vals[0]
				} else {
					v = spec.NullProxy
				}
				b.OnRow(rowID, v)
			}
			fields[id] = b.OnEnd()
		}
	}

	return store.NewColumnStore(len(rows), order, fields), nil
}

func displayNameOr(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
