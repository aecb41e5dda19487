package ingest

import (
	"fmt"
	"strconv"

	"github.com/killzin666/ozone/field"
)

// exactDistinctValueLimit is the spec's boundary (§4.C) for an exact
// distinctValueEstimate: at or below this many distinct values, the count
// is exact; beyond it, estimation gives up and reports the unlimited
// sentinel. It doubles as the default IndexedField/UnIndexedField class
// threshold in buildFromStore (spec §4.H).
const exactDistinctValueLimit = 1000

// RangeCalculator walks a numeric field's values to compute {min, max,
// integerOnly} (spec §4.H). Non-numeric values are skipped rather than
// aborting the scan (spec §7: "store as given, letting downstream range()
// skip non-numeric").
type RangeCalculator struct {
	min, max    float64
	integerOnly bool
	any         bool
}

// NewRangeCalculator returns a fresh RangeCalculator.
func NewRangeCalculator() *RangeCalculator {
	return &RangeCalculator{integerOnly: true}
}

// OnItem folds v into the running range if it's numeric.
func (c *RangeCalculator) OnItem(v interface{}) {
	f, isInt, ok := numericValue(v)
	if !ok {
		return
	}
	if !c.any {
		c.min, c.max = f, f
		c.any = true
	} else {
		if f < c.min {
			c.min = f
		}
		if f > c.max {
			c.max = f
		}
	}
	if !isInt {
		c.integerOnly = false
	}
}

// OnEnd returns the computed range. Min/Max are both 0 if no numeric value
// was ever observed.
func (c *RangeCalculator) OnEnd() field.NumericRange {
	return field.NumericRange{Min: c.min, Max: c.max, IntegerOnly: c.integerOnly && c.any}
}

// numericValue coerces v to a float64, reporting whether it represents an
// integer and whether coercion succeeded at all.
func numericValue(v interface{}) (value float64, isInt bool, ok bool) {
	switch t := v.(type) {
	case float64:
		return t, t == float64(int64(t)), true
	case float32:
		return float64(t), t == float32(int64(t)), true
	case int:
		return float64(t), true, true
	case int64:
		return float64(t), true, true
	case string:
		if t == "" {
			return 0, false, false
		}
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return float64(i), true, true
		}
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f, false, true
		}
		return 0, false, false
	default:
		return 0, false, false
	}
}

// ValueFrequencyCalculator tallies value occurrences for a field,
// stopping early once more than exactDistinctValueLimit distinct values
// have been seen (spec §4.C: the estimate is exact only up to that bound).
type ValueFrequencyCalculator struct {
	counts    map[string]int
	order     []string
	unlimited bool
}

// NewValueFrequencyCalculator returns a fresh calculator.
func NewValueFrequencyCalculator() *ValueFrequencyCalculator {
	return &ValueFrequencyCalculator{counts: make(map[string]int)}
}

// OnItem tallies one observed value.
func (c *ValueFrequencyCalculator) OnItem(v interface{}) {
	if c.unlimited {
		return
	}
	key := keyOf(v)
	if _, ok := c.counts[key]; !ok {
		if len(c.counts) >= exactDistinctValueLimit {
			c.unlimited = true
			return
		}
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// DistinctCount returns the exact number of distinct values seen, or
// exactDistinctValueLimit if the scan gave up early (use Unlimited to
// distinguish).
func (c *ValueFrequencyCalculator) DistinctCount() int {
	return len(c.counts)
}

// Unlimited reports whether the scan exceeded exactDistinctValueLimit and
// gave up on an exact count.
func (c *ValueFrequencyCalculator) Unlimited() bool {
	return c.unlimited
}

// Frequencies returns the observed count per value key, in first-seen
// order of the keys slice returned alongside it.
func (c *ValueFrequencyCalculator) Frequencies() (order []string, counts map[string]int) {
	return append([]string(nil), c.order...), c.counts
}

func keyOf(v interface{}) string {
	return fmt.Sprint(v)
}
