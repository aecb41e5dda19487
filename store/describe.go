package store

import "github.com/killzin666/ozone/field"

// FieldSummary is a human-facing summary of one field, used by the CLI's
// describe subcommand and by tests (spec DOMAIN STACK, grounded on the
// teacher's ctl/inspect.go "summarize a store" commands).
type FieldSummary struct {
	Identifier            string
	DisplayName           string
	TypeOfValue           field.ValueType
	Indexed               bool
	DistinctValueEstimate int
}

// Describe summarizes every field in cs, in declaration order.
func Describe(cs *ColumnStore) []FieldSummary {
	out := make([]FieldSummary, 0, len(cs.fieldOrder))
	for _, id := range cs.fieldOrder {
		f := cs.fieldsByID[id]
		d := f.Descriptor()
		_, indexed := f.(*field.IndexedField)
		out = append(out, FieldSummary{
			Identifier:            d.Identifier,
			DisplayName:           d.DisplayName,
			TypeOfValue:           d.TypeOfValue,
			Indexed:               indexed,
			DistinctValueEstimate: d.DistinctValueEstimate(),
		})
	}
	return out
}
