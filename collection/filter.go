package collection

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goclimate/expr"
)

// FilterByConditionalStatement returns a new collection containing only
// the samples for which the statement holds. The statement binds this
// collection's values to the variable "a" (e.g. "a > 25 and a % 5 == 0").
// A statement that no sample satisfies is an error: filtered
// collections may never be empty.
func (c *Collection) FilterByConditionalStatement(statement string) (*Collection, error) {
	st, err := expr.Parse(statement, 1)
	if err != nil {
		return nil, err
	}
	filtValues := make([]float64, 0, len(c.values))
	filtDatetimes := make([]time.Time, 0, len(c.datetimes))
	vars := make([]float64, 1)
	for i, v := range c.values {
		vars[0] = v
		keep, err := st.Eval(vars)
		if err != nil {
			return nil, err
		}
		if keep {
			filtValues = append(filtValues, v)
			filtDatetimes = append(filtDatetimes, c.datetimes[i])
		}
	}
	nc, err := c.deriveMutable(filtValues, filtDatetimes)
	if err != nil {
		return nil, errors.Wrap(err, "no value meets the conditional statement")
	}
	return nc, nil
}

// FilterByPattern returns a new collection containing only the samples
// at indices where the pattern is true. A pattern shorter than the
// collection is applied cyclically (index mod pattern length), so
// periodic selections can be expressed compactly. The pattern must not
// be empty.
func (c *Collection) FilterByPattern(pattern []bool) (*Collection, error) {
	if len(pattern) == 0 {
		return nil, errors.New("pattern must contain at least one boolean")
	}
	filtValues := make([]float64, 0, len(c.values))
	filtDatetimes := make([]time.Time, 0, len(c.datetimes))
	for i, v := range c.values {
		if pattern[i%len(pattern)] {
			filtValues = append(filtValues, v)
			filtDatetimes = append(filtDatetimes, c.datetimes[i])
		}
	}
	return c.deriveMutable(filtValues, filtDatetimes)
}

// deriveMutable builds a filtered collection of the same collection
// type through the mutable half of the registry, with a duplicated
// header. The validatedAPeriod flag is propagated, not recomputed:
// removing samples does not affect whether the analysis period was
// validated.
func (c *Collection) deriveMutable(values []float64, datetimes []time.Time) (*Collection, error) {
	f, err := variantFactory(c.collectionType, true)
	if err != nil {
		return nil, err
	}
	nc, err := f(c.header.Duplicate(), values, datetimes)
	if err != nil {
		return nil, err
	}
	nc.validatedAPeriod = c.validatedAPeriod
	return nc, nil
}

// PatternFromCollectionsAndStatement evaluates a conditional statement
// across aligned collections and returns one boolean per sample index.
// The statement binds the collections in argument order to the
// variables a, b, c, … (e.g. "a > 25 and b < 0.5" for two collections).
func PatternFromCollectionsAndStatement(colls []*Collection, statement string) ([]bool, error) {
	if len(colls) == 0 {
		return nil, errors.New("at least one data collection is required")
	}
	if err := EnsureCollectionsAligned(colls); err != nil {
		return nil, err
	}
	st, err := expr.Parse(statement, len(colls))
	if err != nil {
		return nil, err
	}
	pattern := make([]bool, colls[0].Len())
	vars := make([]float64, len(colls))
	for i := range pattern {
		for j, coll := range colls {
			vars[j] = coll.values[i]
		}
		keep, err := st.Eval(vars)
		if err != nil {
			return nil, err
		}
		pattern[i] = keep
	}
	return pattern, nil
}

// FilterCollectionsByStatement filters every collection in the list by
// a conditional statement over all of them, keeping the collections in
// step: a sample survives in all collections or in none.
func FilterCollectionsByStatement(colls []*Collection, statement string) ([]*Collection, error) {
	pattern, err := PatternFromCollectionsAndStatement(colls, statement)
	if err != nil {
		return nil, err
	}
	filtered := make([]*Collection, len(colls))
	for i, coll := range colls {
		nc, err := coll.FilterByPattern(pattern)
		if err != nil {
			return nil, errors.Wrap(err, "no value meets the conditional statement")
		}
		filtered[i] = nc
	}
	return filtered, nil
}
