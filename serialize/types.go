// Package serialize implements the lossless, language-neutral JSON
// persistence shape described in spec §6, and its round-trip to/from
// store.ColumnStore.
package serialize

import "strings"

// StoreData is the top-level serialized shape of a ColumnStore.
type StoreData struct {
	Size   int             `json:"size"`
	Fields []FieldMetaData `json:"fields"`
}

// FieldMetaData is the common envelope for both field storage shapes
// (spec §6): Type is "indexed" or "unindexed". Values is populated for an
// indexed field; Offset/DataArray for an unindexed one, as siblings of the
// base envelope fields rather than a nested payload, matching the spec's
// IndexedFieldData/UnIndexedFieldData "adds" language literally.
type FieldMetaData struct {
	Type                  string     `json:"type"`
	Identifier            string     `json:"identifier"`
	DisplayName           string     `json:"displayName"`
	TypeOfValue           string     `json:"typeOfValue"`
	DistinctValueEstimate int        `json:"distinctValueEstimate"`
	Range                 *RangeData `json:"range,omitempty"`
	TypeConstructorName   string     `json:"typeConstructorName,omitempty"`

	Values    []IndexedValueEntry `json:"values,omitempty"`
	Offset    *int                `json:"offset,omitempty"`
	DataArray []interface{}       `json:"dataArray,omitempty"`
}

// RangeData is a numeric field's serialized range.
type RangeData struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	IntegerOnly bool    `json:"integerOnly"`
}

// IndexedValueEntry pairs one distinct value with its row-id set.
type IndexedValueEntry struct {
	Value interface{}    `json:"value"`
	Data  IntSetMetaData `json:"data"`
}

// IntSetMetaData is the serialized shape of one intset.IntSet (spec §6).
// Type is one of "empty", "range", "array", or the reserved
// "type/subtype;hint" grammar for future bitmap encodings.
type IntSetMetaData struct {
	Type string `json:"type"`
	Min  int    `json:"min,omitempty"`
	Max  int    `json:"max,omitempty"`
	Data []int  `json:"data,omitempty"`
}

// ParsedTypeGrammar is a reserved "type/subtype;hint" IntSetMetaData.Type
// string split by ParseGrammar into its main type, '/'-separated subtypes,
// and ';'-separated hints (spec §6). It's reserved for future bitmap
// encodings; "empty", "range", and "array" never need it.
type ParsedTypeGrammar struct {
	MainType string
	SubTypes []string
	Hints    []string
}

// ParseGrammar splits s at ';' into the type part and its hints, then
// splits the type part at '/' into the main type and its subtypes.
func ParseGrammar(s string) ParsedTypeGrammar {
	parts := strings.Split(s, ";")
	types := strings.Split(parts[0], "/")
	return ParsedTypeGrammar{MainType: types[0], SubTypes: types[1:], Hints: parts[1:]}
}

// Next descends into the first subtype, returning a grammar with that
// subtype promoted to MainType and the rest shifted down. Calling Next on a
// grammar with no subtypes returns it unchanged.
func (g ParsedTypeGrammar) Next() ParsedTypeGrammar {
	if len(g.SubTypes) == 0 {
		return g
	}
	return ParsedTypeGrammar{MainType: g.SubTypes[0], SubTypes: g.SubTypes[1:], Hints: g.Hints}
}
