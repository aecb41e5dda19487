package serialize

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/killzin666/ozone/errors"
	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/intset"
	"github.com/killzin666/ozone/store"
)

// ReadStore decodes a StoreData payload from r and reconstructs a
// ColumnStore. Deserialization never partially constructs a store (spec
// §7): any structural problem aborts before NewColumnStore is called.
func ReadStore(r io.Reader) (*store.ColumnStore, error) {
	var data StoreData
	dec := json.NewDecoder(r)
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(err, "decoding store data")
	}
	return FromStoreData(data)
}

// FromStoreData reconstructs a ColumnStore from an already-decoded
// StoreData, validating every field's metadata before building anything.
func FromStoreData(data StoreData) (*store.ColumnStore, error) {
	if data.Size < 0 {
		return nil, errors.New(errors.ErrCodeMalformedStore, "store size is negative")
	}

	order := make([]string, 0, len(data.Fields))
	fields := make(map[string]store.Field, len(data.Fields))
	seen := make(map[string]bool, len(data.Fields))

	for _, fm := range data.Fields {
		if fm.Identifier == "" {
			return nil, errors.New(errors.ErrCodeMalformedStore, "field metadata missing identifier")
		}
		if seen[fm.Identifier] {
			return nil, errors.Wrapf(
				errors.New(errors.ErrCodeMalformedStore, "duplicate field identifier"),
				"field %q", fm.Identifier)
		}
		seen[fm.Identifier] = true

		fld, err := fieldFromMetaData(fm)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", fm.Identifier)
		}
		order = append(order, fm.Identifier)
		fields[fm.Identifier] = fld
	}

	return store.NewColumnStore(data.Size, order, fields), nil
}

func fieldFromMetaData(fm FieldMetaData) (store.Field, error) {
	opts := []field.Option{
		field.WithIdentifier(fm.Identifier),
		field.WithDisplayName(fm.DisplayName),
	}
	if fm.TypeConstructorName != "" {
		opts = append(opts, field.WithTypeConstructor(fm.TypeConstructorName))
	}
	if fm.Range != nil {
		opts = append(opts, field.WithPrecomputedRange(field.NumericRange{
			Min:         fm.Range.Min,
			Max:         fm.Range.Max,
			IntegerOnly: fm.Range.IntegerOnly,
		}))
	}
	if fm.DistinctValueEstimate == mustUnlimited {
		opts = append(opts, field.WithUnlimitedValues())
	} else {
		opts = append(opts, field.WithDistinctValues(fm.DistinctValueEstimate))
	}
	desc := field.NewDescriptor(field.ValueType(fm.TypeOfValue), opts...)

	switch fm.Type {
	case "indexed":
		order := make([]string, 0, len(fm.Values))
		values := make(map[string]interface{}, len(fm.Values))
		sets := make(map[string]intset.IntSet, len(fm.Values))
		for _, entry := range fm.Values {
			key := fmt.Sprint(entry.Value)
			s, err := deserializeIntSet(entry.Data)
			if err != nil {
				return nil, err
			}
			order = append(order, key)
			values[key] = entry.Value
			sets[key] = s
		}
		return field.NewIndexedField(desc, order, values, sets), nil

	case "unindexed":
		if fm.Offset == nil {
			return nil, errors.New(errors.ErrCodeMalformedStore, "unindexed field missing offset")
		}
		return field.NewUnIndexedField(desc, append([]interface{}(nil), fm.DataArray...), *fm.Offset, nil), nil

	default:
		return nil, errors.Wrapf(
			errors.New(errors.ErrCodeMalformedStore, "unrecognized field type"),
			"type %q", fm.Type)
	}
}

// mustUnlimited mirrors field.unlimitedDistinctValues: that constant is
// unexported, so the sentinel is re-declared here to recognize it on the
// wire. Both sides derive from the same math.MaxInt32 convention (spec §6).
const mustUnlimited = 1<<31 - 1

// deserializeIntSet reconstructs the IntSet a serializeIntSet call produced,
// rejecting any malformed shape outright (spec §7).
func deserializeIntSet(m IntSetMetaData) (intset.IntSet, error) {
	switch m.Type {
	case "empty":
		return intset.Empty, nil
	case "range":
		if m.Max < m.Min {
			return nil, errors.New(errors.ErrCodeMalformedStore, "range intset has max < min")
		}
		return intset.NewRangeIntSet(m.Min, m.Max-m.Min+1), nil
	case "array":
		if len(m.Data) == 0 {
			return nil, errors.New(errors.ErrCodeMalformedStore, "array intset has no data")
		}
		b := intset.NewBuilder(-1, -1)
		last := -1
		for _, v := range m.Data {
			if v <= last {
				return nil, errors.New(errors.ErrCodeMalformedStore, "array intset data not strictly ascending")
			}
			b.OnItem(v)
			last = v
		}
		return b.OnEnd(), nil
	default:
		return nil, errors.Wrapf(
			errors.New(errors.ErrCodeMalformedStore, "unrecognized intset type"),
			"type %q", m.Type)
	}
}
