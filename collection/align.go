package collection

import (
	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goclimate/datatype"
	"github.com/sartorproj/goclimate/header"
)

// IsCollectionAligned reports whether this collection is aligned with
// another. Aligned collections are of the same collection type, have
// the same number of values and have matching datetimes.
func (c *Collection) IsCollectionAligned(other *Collection) bool {
	if c.collectionType != other.collectionType {
		return false
	}
	if len(c.values) != len(other.values) {
		return false
	}
	for i, dt := range c.datetimes {
		if !dt.Equal(other.datetimes[i]) {
			return false
		}
	}
	return true
}

// AreCollectionsAligned reports whether every collection in the list is
// aligned with the first. Lists of zero or one collections are aligned.
func AreCollectionsAligned(colls []*Collection) bool {
	return EnsureCollectionsAligned(colls) == nil
}

// EnsureCollectionsAligned returns an error naming the two offending
// data types when any collection in the list is not aligned with the
// first.
func EnsureCollectionsAligned(colls []*Collection) error {
	if len(colls) < 2 {
		return nil
	}
	first := colls[0]
	for _, coll := range colls[1:] {
		if !first.IsCollectionAligned(coll) {
			return errors.Newf("%s data collection is not aligned with %s data collection",
				first.header.DataType().Name(), coll.header.DataType().Name())
		}
	}
	return nil
}

// GetAlignedCollection returns a collection aligned with this one whose
// every value is the given scalar. A nil dataType keeps this
// collection's data type; an empty unit keeps this collection's unit,
// or the data type's base unit when a dataType override is supplied.
// The mutable tri-state selects the variant: nil keeps this
// collection's own mutability, true and false select the corresponding
// registry half for the same collection type.
func (c *Collection) GetAlignedCollection(value float64, dataType datatype.DataType, unit string, mutable *bool) (*Collection, error) {
	values := make([]float64, len(c.values))
	for i := range values {
		values[i] = value
	}
	return c.alignedCollection(values, dataType, unit, mutable)
}

// GetAlignedCollectionValues is GetAlignedCollection with a pre-sized
// value sequence instead of a broadcast scalar; its length must equal
// this collection's length.
func (c *Collection) GetAlignedCollectionValues(values []float64, dataType datatype.DataType, unit string, mutable *bool) (*Collection, error) {
	if len(values) != len(c.values) {
		return nil, errors.Newf("length of values (%d) must match the length of this collection (%d)",
			len(values), len(c.values))
	}
	return c.alignedCollection(values, dataType, unit, mutable)
}

func (c *Collection) alignedCollection(values []float64, dataType datatype.DataType, unit string, mutable *bool) (*Collection, error) {
	h, err := c.alignedHeader(dataType, unit)
	if err != nil {
		return nil, err
	}
	isMutable := c.mutable
	if mutable != nil {
		isMutable = *mutable
	}
	f, err := variantFactory(c.collectionType, isMutable)
	if err != nil {
		return nil, err
	}
	nc, err := f(h, values, c.datetimes)
	if err != nil {
		return nil, err
	}
	nc.validatedAPeriod = c.validatedAPeriod
	return nc, nil
}

func (c *Collection) alignedHeader(dataType datatype.DataType, unit string) (*header.Header, error) {
	if dataType != nil {
		if unit == "" {
			unit = dataType.Units()[0]
		}
	} else {
		dataType = c.header.DataType()
		if unit == "" {
			unit = c.header.Unit()
		}
	}
	return header.New(dataType, unit, c.header.AnalysisPeriod(), c.header.Metadata())
}

// AlignedFunc is a pure numeric function applied index-wise across
// aligned inputs by ComputeFunctionAligned.
type AlignedFunc func(args ...float64) float64

// ComputeFunctionAligned applies fn across a mixture of scalars and
// aligned collections. Each input must be a *Collection or a numeric
// scalar; scalars are broadcast to the collections' length. When at
// least one input is a collection, the result is a new collection
// aligned with it, carrying the given data type and unit, whose i-th
// value is fn applied to the i-th elements of all inputs. When no input
// is a collection, fn is applied once and the bare scalar is returned
// as a float64.
func ComputeFunctionAligned(fn AlignedFunc, inputs []any, dataType datatype.DataType, unit string) (any, error) {
	colls := make([]*Collection, 0, len(inputs))
	scalars := make([]float64, len(inputs))
	isColl := make([]bool, len(inputs))
	for i, input := range inputs {
		switch in := input.(type) {
		case *Collection:
			colls = append(colls, in)
			isColl[i] = true
		default:
			f, ok := toScalar(input)
			if !ok {
				return nil, errors.Newf("expected a number or a data collection for input %d, got %T",
					i, input)
			}
			scalars[i] = f
		}
	}

	if len(colls) == 0 {
		return fn(scalars...), nil
	}

	if err := EnsureCollectionsAligned(colls); err != nil {
		return nil, err
	}
	n := colls[0].Len()
	args := make([]float64, len(inputs))
	result := make([]float64, n)
	for i := 0; i < n; i++ {
		for j, input := range inputs {
			if isColl[j] {
				args[j] = input.(*Collection).values[i]
			} else {
				args[j] = scalars[j]
			}
		}
		result[i] = fn(args...)
	}
	return colls[0].GetAlignedCollectionValues(result, dataType, unit, nil)
}

func toScalar(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
