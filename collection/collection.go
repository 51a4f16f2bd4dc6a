package collection

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goclimate/header"
	"github.com/sartorproj/goclimate/stats"
)

// Collection pairs an ordered sequence of numeric values with matching
// datetimes and a physical header. Position i of the values and the
// datetimes jointly describe the value observed at that time; every
// operation that filters or derives a collection keeps the two in step.
//
// A collection always holds at least one value and exactly one datetime
// per value. It exclusively owns its header: deriving a new collection
// always duplicates the header first.
type Collection struct {
	header           *header.Header
	values           []float64
	datetimes        []time.Time
	validatedAPeriod bool
	collectionType   string
	mutable          bool
}

// New creates a base data collection. The values and datetimes must be
// non-empty and of equal length.
func New(h *header.Header, values []float64, datetimes []time.Time) (*Collection, error) {
	return newCollection(TypeBase, true, h, values, datetimes)
}

// NewHourly creates a discontinuous hourly collection.
func NewHourly(h *header.Header, values []float64, datetimes []time.Time) (*Collection, error) {
	return newCollection(TypeHourly, true, h, values, datetimes)
}

// NewDaily creates a daily collection.
func NewDaily(h *header.Header, values []float64, datetimes []time.Time) (*Collection, error) {
	return newCollection(TypeDaily, true, h, values, datetimes)
}

// NewMonthly creates a monthly collection.
func NewMonthly(h *header.Header, values []float64, datetimes []time.Time) (*Collection, error) {
	return newCollection(TypeMonthly, true, h, values, datetimes)
}

// NewVariant creates a collection of a registered variant, selecting
// the mutable or immutable form of the given collection type.
func NewVariant(collectionType string, mutable bool, h *header.Header, values []float64, datetimes []time.Time) (*Collection, error) {
	f, err := variantFactory(collectionType, mutable)
	if err != nil {
		return nil, err
	}
	return f(h, values, datetimes)
}

func newCollection(collectionType string, mutable bool, h *header.Header, values []float64, datetimes []time.Time) (*Collection, error) {
	if h == nil {
		return nil, errors.New("collection requires a header")
	}
	if len(datetimes) == 0 {
		return nil, errors.New("collection requires at least one datetime")
	}
	c := &Collection{
		header:         h,
		datetimes:      append([]time.Time(nil), datetimes...),
		collectionType: collectionType,
		mutable:        mutable,
	}
	if err := c.checkValues(values); err != nil {
		return nil, err
	}
	c.values = append([]float64(nil), values...)
	return c, nil
}

// checkValues guards every path that replaces the whole value sequence.
func (c *Collection) checkValues(values []float64) error {
	if len(values) != len(c.datetimes) {
		return errors.Newf("length of values must match length of datetimes: %d != %d",
			len(values), len(c.datetimes))
	}
	if len(values) == 0 {
		return errors.New("collection must include at least one value")
	}
	return nil
}

func (c *Collection) immutableError() error {
	return errors.Newf("%s collection is immutable; use ToMutable for an editable copy",
		c.collectionType)
}

// Header returns the header of the collection. The header is owned by
// this collection; callers must not mutate it.
func (c *Collection) Header() *header.Header { return c.header }

// CollectionType returns the variant tag of the collection, used for
// alignment comparison and registry dispatch.
func (c *Collection) CollectionType() string { return c.collectionType }

// IsMutable reports whether the collection accepts in-place mutation.
func (c *Collection) IsMutable() bool { return c.mutable }

// ValidatedAPeriod reports whether the header's analysis period has
// been checked for consistency with the datetimes. The flag is
// propagated on every derivation, never recomputed.
func (c *Collection) ValidatedAPeriod() bool { return c.validatedAPeriod }

// Len returns the number of values in the collection.
func (c *Collection) Len() int { return len(c.values) }

// Values returns a copy of the values, so external mutation can never
// bypass the SetValues guard.
func (c *Collection) Values() []float64 {
	values := make([]float64, len(c.values))
	copy(values, c.values)
	return values
}

// SetValues replaces all values. The new sequence must be non-empty and
// match the length of the datetimes.
func (c *Collection) SetValues(values []float64) error {
	if !c.mutable {
		return c.immutableError()
	}
	if err := c.checkValues(values); err != nil {
		return err
	}
	c.values = append([]float64(nil), values...)
	return nil
}

// Datetimes returns a copy of the datetimes.
func (c *Collection) Datetimes() []time.Time {
	datetimes := make([]time.Time, len(c.datetimes))
	copy(datetimes, c.datetimes)
	return datetimes
}

// Value returns the value at index i.
func (c *Collection) Value(i int) float64 { return c.values[i] }

// Datetime returns the datetime at index i.
func (c *Collection) Datetime(i int) time.Time { return c.datetimes[i] }

// SetValue replaces the value at index i. A single-element replace
// preserves the length invariant by construction.
func (c *Collection) SetValue(i int, v float64) error {
	if !c.mutable {
		return c.immutableError()
	}
	if i < 0 || i >= len(c.values) {
		return errors.Newf("index %d out of range for %d values", i, len(c.values))
	}
	c.values[i] = v
	return nil
}

// Contains reports whether the collection holds the exact value v.
func (c *Collection) Contains(v float64) bool {
	for _, x := range c.values {
		if x == v {
			return true
		}
	}
	return false
}

// Duplicate returns a copy of the collection with its own header.
// Mutating the duplicate never affects the original.
func (c *Collection) Duplicate() *Collection {
	dup := &Collection{
		header:           c.header.Duplicate(),
		values:           append([]float64(nil), c.values...),
		datetimes:        append([]time.Time(nil), c.datetimes...),
		validatedAPeriod: c.validatedAPeriod,
		collectionType:   c.collectionType,
		mutable:          c.mutable,
	}
	return dup
}

// ToMutable returns a mutable copy of the collection.
func (c *Collection) ToMutable() (*Collection, error) {
	if c.mutable {
		return c.Duplicate(), nil
	}
	return c.withMutability(true)
}

// ToImmutable returns an immutable copy of the collection.
func (c *Collection) ToImmutable() (*Collection, error) {
	if !c.mutable {
		return c.Duplicate(), nil
	}
	return c.withMutability(false)
}

func (c *Collection) withMutability(mutable bool) (*Collection, error) {
	f, err := variantFactory(c.collectionType, mutable)
	if err != nil {
		return nil, err
	}
	nc, err := f(c.header.Duplicate(), c.values, c.datetimes)
	if err != nil {
		return nil, err
	}
	nc.validatedAPeriod = c.validatedAPeriod
	return nc, nil
}

// Bounds returns the minimum and maximum values.
func (c *Collection) Bounds() (float64, float64) { return stats.Bounds(c.values) }

// Min returns the minimum value.
func (c *Collection) Min() float64 { return stats.Min(c.values) }

// Max returns the maximum value.
func (c *Collection) Max() float64 { return stats.Max(c.values) }

// Average returns the arithmetic mean of the values.
func (c *Collection) Average() float64 { return stats.Mean(c.values) }

// Total returns the sum of the values.
func (c *Collection) Total() float64 { return stats.Total(c.values) }

// Median returns the median of the values.
func (c *Collection) Median() float64 {
	// A collection is never empty, so the percentile routine cannot fail.
	m, _ := stats.Median(c.values)
	return m
}

// GetPercentile returns the value at the given percentile (0 to 100),
// linearly interpolated between order statistics.
func (c *Collection) GetPercentile(percent float64) (float64, error) {
	return stats.Percentile(c.values, percent)
}

// GetHighestValues returns the count highest values and their original
// indices, both ordered from highest to lowest. This is useful for
// finding the times of the year when the largest values occur.
func (c *Collection) GetHighestValues(count int) ([]float64, []int, error) {
	return stats.HighestValues(c.values, count)
}

// GetLowestValues returns the count lowest values and their original
// indices, both ordered from lowest to highest.
func (c *Collection) GetLowestValues(count int) ([]float64, []int, error) {
	return stats.LowestValues(c.values, count)
}

// String renders the collection for display.
func (c *Collection) String() string {
	return fmt.Sprintf("%s Data Collection\n%s\n...%d values...",
		c.collectionType, c.header, len(c.values))
}
