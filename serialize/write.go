package serialize

import (
	"encoding/json"
	"io"

	"github.com/killzin666/ozone/errors"
	"github.com/killzin666/ozone/field"
	"github.com/killzin666/ozone/intset"
	"github.com/killzin666/ozone/store"
)

// WriteStore renders cs into its lossless JSON shape and writes it to w
// (spec §6).
func WriteStore(w io.Writer, cs *store.ColumnStore) error {
	data := ToStoreData(cs)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return errors.Wrap(err, "encoding store data")
	}
	return nil
}

// ToStoreData converts cs into its serialized representation without
// writing it anywhere, for callers who want to inspect or further transform
// it before encoding.
func ToStoreData(cs *store.ColumnStore) StoreData {
	fields := cs.Fields()
	out := StoreData{Size: cs.Size(), Fields: make([]FieldMetaData, 0, len(fields))}
	for _, fld := range fields {
		out.Fields = append(out.Fields, fieldMetaData(fld))
	}
	return out
}

func fieldMetaData(fld store.Field) FieldMetaData {
	d := fld.Descriptor()
	m := FieldMetaData{
		Identifier:            d.Identifier,
		DisplayName:           d.DisplayName,
		TypeOfValue:           string(d.TypeOfValue),
		DistinctValueEstimate: d.DistinctValueEstimate(),
		TypeConstructorName:   d.TypeConstructor,
	}
	if d.HasRange() {
		r := d.Range()
		m.Range = &RangeData{Min: r.Min, Max: r.Max, IntegerOnly: r.IntegerOnly}
	}

	switch f := fld.(type) {
	case *field.IndexedField:
		m.Type = "indexed"
		values := f.AllValues()
		m.Values = make([]IndexedValueEntry, 0, len(values))
		for _, v := range values {
			m.Values = append(m.Values, IndexedValueEntry{
				Value: v,
				Data:  serializeIntSet(f.IntSetForValue(v)),
			})
		}
	case *field.UnIndexedField:
		m.Type = "unindexed"
		offset := f.FirstRowToken()
		m.Offset = &offset
		m.DataArray = append([]interface{}(nil), f.DataArray()...)
	default:
		// Any store.Field implementation beyond the two built-in storage
		// shapes has no serialized form; callers extending store.Field must
		// extend this switch too.
		panic(errors.New(errors.ErrCodeMalformedStore, "serialize: unrecognized field storage shape"))
	}
	return m
}

// serializeIntSet renders s into its lossless metadata shape (spec §6): the
// canonical empty set, a contiguous range, or an explicit ascending member
// array as the fallback for anything else (sorted array or bitmap alike —
// the wire format doesn't distinguish them, since MostEfficientIntSet always
// picks the cheapest representation back on read).
func serializeIntSet(s intset.IntSet) IntSetMetaData {
	if s.Size() == 0 {
		return IntSetMetaData{Type: "empty"}
	}
	min, max := s.Min(), s.Max()
	if max-min+1 == s.Size() {
		return IntSetMetaData{Type: "range", Min: min, Max: max}
	}
	return IntSetMetaData{Type: "array", Data: intset.Collect(s)}
}
