// Package field implements the two column storage shapes (IndexedField,
// UnIndexedField) and the shared descriptor metadata (spec §4.C/D/E).
package field

import "math"

// ValueType is one of the primitive tags a field's values carry.
type ValueType string

const (
	TypeString  ValueType = "string"
	TypeNumber  ValueType = "number"
	TypeBoolean ValueType = "boolean"
	TypeObject  ValueType = "object"
)

// unlimitedDistinctValues is the distinctValueEstimate used in place of
// infinity: the spec calls for an "∞-equivalent" for wide-cardinality
// columns, and JSON has no literal infinity to round-trip (spec §6).
const unlimitedDistinctValues = math.MaxInt32

// NumericRange describes a numeric field's observed bounds.
type NumericRange struct {
	Min         float64
	Max         float64
	IntegerOnly bool
}

// Descriptor is the metadata shared between a row-store field and a
// column-store field: identifier, display name, value type, numeric range
// (when applicable), and a distinct-value estimate.
type Descriptor struct {
	Identifier      string
	DisplayName     string
	TypeOfValue     ValueType
	TypeConstructor string // TypeConstructorName, round-tripped but never dispatched on (spec §9 Open Question).

	hasRange             bool
	rangeFn              func() NumericRange
	distinctFn           func() int
	MultipleValuesPerRow bool
	unlimitedValues      bool
}

// Option configures a Descriptor at construction time. The spec's §9 design
// note suggests replacing the original's variadic, property-bag
// `mergeFieldDescriptors` with an explicit, typed builder in a strongly
// typed language; Option is that typed override.
type Option func(*Descriptor)

// WithIdentifier sets the descriptor's unique identifier.
func WithIdentifier(id string) Option {
	return func(d *Descriptor) { d.Identifier = id }
}

// WithDisplayName sets the descriptor's advisory display name.
func WithDisplayName(name string) Option {
	return func(d *Descriptor) { d.DisplayName = name }
}

// WithTypeConstructor records an object-typed field's constructor name.
// Accepted and round-tripped through serialization but otherwise ignored
// (spec §9 Open Question).
func WithTypeConstructor(name string) Option {
	return func(d *Descriptor) { d.TypeConstructor = name }
}

// WithMultipleValuesPerRow marks a field as potentially holding more than
// one value for a single row.
func WithMultipleValuesPerRow() Option {
	return func(d *Descriptor) { d.MultipleValuesPerRow = true }
}

// WithPrecomputedRange attaches an already-known numeric range as a
// constant.
func WithPrecomputedRange(r NumericRange) Option {
	return func(d *Descriptor) {
		d.hasRange = true
		d.rangeFn = func() NumericRange { return r }
	}
}

// WithRangeFunc attaches a callable range, e.g. one backed by a lazily
// computed RangeCalculator result.
func WithRangeFunc(fn func() NumericRange) Option {
	return func(d *Descriptor) {
		d.hasRange = true
		d.rangeFn = fn
	}
}

// WithDistinctValues sets an exact, already-known distinct-value count.
func WithDistinctValues(n int) Option {
	return func(d *Descriptor) {
		d.distinctFn = func() int { return n }
	}
}

// WithDistinctValuesFunc attaches a callable distinct-value estimate.
func WithDistinctValuesFunc(fn func() int) Option {
	return func(d *Descriptor) { d.distinctFn = fn }
}

// WithUnlimitedValues forces distinctValueEstimate to the unlimited
// sentinel and disables distinct-value scanning, for wide-cardinality
// columns where an exact count isn't worth computing.
func WithUnlimitedValues() Option {
	return func(d *Descriptor) {
		d.unlimitedValues = true
		d.distinctFn = nil
	}
}

// NewDescriptor builds a Descriptor. typeOfValue is required; all other
// metadata is supplied via Options.
func NewDescriptor(typeOfValue ValueType, opts ...Option) Descriptor {
	d := Descriptor{TypeOfValue: typeOfValue}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// HasRange reports whether the descriptor carries a numeric range. Only
// meaningful when TypeOfValue == TypeNumber.
func (d Descriptor) HasRange() bool {
	return d.hasRange
}

// Range returns the descriptor's numeric range. Panics if !HasRange(); check
// first.
func (d Descriptor) Range() NumericRange {
	return d.rangeFn()
}

// DistinctValueEstimate returns the distinct-value estimate: exact when the
// descriptor was built with a known count or function and unlimited values
// weren't forced; the unlimited sentinel otherwise.
func (d Descriptor) DistinctValueEstimate() int {
	if d.unlimitedValues || d.distinctFn == nil {
		return unlimitedDistinctValues
	}
	return d.distinctFn()
}

// Unlimited reports whether distinct-value scanning was disabled for this
// descriptor.
func (d Descriptor) Unlimited() bool {
	return d.unlimitedValues
}

// Merge composes partial descriptors left-to-right, later entries
// overwriting earlier non-zero fields. It mirrors the original
// mergeFieldDescriptors utility (spec §4.C); callable range/distinct
// functions delegate to the original's, non-empty plain values from earlier
// descriptors are preserved when a later descriptor leaves them unset.
func Merge(base Descriptor, overrides ...Descriptor) Descriptor {
	out := base
	for _, o := range overrides {
		if o.Identifier != "" {
			out.Identifier = o.Identifier
		}
		if o.DisplayName != "" {
			out.DisplayName = o.DisplayName
		}
		if o.TypeOfValue != "" {
			out.TypeOfValue = o.TypeOfValue
		}
		if o.TypeConstructor != "" {
			out.TypeConstructor = o.TypeConstructor
		}
		if o.hasRange {
			out.hasRange = true
			out.rangeFn = o.rangeFn
		}
		if o.distinctFn != nil {
			out.distinctFn = o.distinctFn
		}
		if o.unlimitedValues {
			out.unlimitedValues = true
			out.distinctFn = nil
		}
		if o.MultipleValuesPerRow {
			out.MultipleValuesPerRow = true
		}
	}
	return out
}
