package store

import "fmt"

// Filter is a value-level predicate over one field. The only variant today
// is equality (ValueFilter); spec §1 names a query planner beyond equality
// filters as out of scope.
type Filter interface {
	// FieldIdentifier names the field this filter predicates over.
	FieldIdentifier() string
	// Value returns the value the filter matches in FieldIdentifier()'s
	// column. Matching is evaluated by the caller against a field lookup,
	// not by the filter itself, so Filter stays a pure value object.
	Value() interface{}
	// Equals is structural: same concrete type, same field identifier,
	// same value. Display name is advisory and never part of equality
	// (spec §3).
	Equals(other Filter) bool
	// String is an advisory display form; not part of equality.
	String() string
}

// ValueFilter matches rows where the named field contains value.
type ValueFilter struct {
	fieldIdentifier string
	value           interface{}
	displayName     string
}

// NewValueFilter builds a ValueFilter for fieldIdentifier == value. The
// third, optional displayName is advisory only.
func NewValueFilter(fieldIdentifier string, value interface{}, displayName ...string) ValueFilter {
	vf := ValueFilter{fieldIdentifier: fieldIdentifier, value: value}
	if len(displayName) > 0 {
		vf.displayName = displayName[0]
	}
	return vf
}

func (f ValueFilter) FieldIdentifier() string { return f.fieldIdentifier }
func (f ValueFilter) Value() interface{}      { return f.value }

func (f ValueFilter) Equals(other Filter) bool {
	o, ok := other.(ValueFilter)
	if !ok {
		return false
	}
	return f.fieldIdentifier == o.fieldIdentifier && f.value == o.value
}

func (f ValueFilter) String() string {
	if f.displayName != "" {
		return f.displayName
	}
	return fmt.Sprintf("%s = %v", f.fieldIdentifier, f.value)
}

// containsFilter reports whether filters already contains one structurally
// equal to f.
func containsFilter(filters []Filter, f Filter) bool {
	for _, existing := range filters {
		if existing.Equals(f) {
			return true
		}
	}
	return false
}
