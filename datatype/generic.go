package datatype

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Generic is a caller-named data type with a single declared unit and
// no conversions. It carries values whose physical type is not covered
// by a dedicated type.
type Generic struct {
	name string
	unit string
	min  float64
	max  float64
}

// NewGeneric creates a generic data type with the given name and unit.
func NewGeneric(name, unit string) *Generic {
	return &Generic{
		name: name,
		unit: unit,
		min:  math.Inf(-1),
		max:  math.Inf(1),
	}
}

// NewGenericWithRange creates a generic data type with explicit
// minimum and maximum possible values.
func NewGenericWithRange(name, unit string, min, max float64) *Generic {
	return &Generic{name: name, unit: unit, min: min, max: max}
}

// Name returns the display name of the data type.
func (g *Generic) Name() string { return g.name }

// Units returns the single declared unit.
func (g *Generic) Units() []string { return []string{g.unit} }

// ToUnit converts values between units. A generic type declares one
// unit only, so anything but the identity conversion is an error.
func (g *Generic) ToUnit(values []float64, unit, fromUnit string) ([]float64, error) {
	if unit != g.unit || fromUnit != g.unit {
		return nil, errors.Newf("%s has no conversion from %q to %q; its only unit is %q",
			g.name, fromUnit, unit, g.unit)
	}
	out := make([]float64, len(values))
	copy(out, values)
	return out, nil
}

// ToIP returns the values unchanged in the declared unit.
func (g *Generic) ToIP(values []float64, fromUnit string) ([]float64, string, error) {
	converted, err := g.ToUnit(values, g.unit, fromUnit)
	if err != nil {
		return nil, "", err
	}
	return converted, g.unit, nil
}

// ToSI returns the values unchanged in the declared unit.
func (g *Generic) ToSI(values []float64, fromUnit string) ([]float64, string, error) {
	converted, err := g.ToUnit(values, g.unit, fromUnit)
	if err != nil {
		return nil, "", err
	}
	return converted, g.unit, nil
}

// IsInRange reports whether every value is within the declared range.
func (g *Generic) IsInRange(values []float64, unit string) (bool, error) {
	if unit != g.unit {
		return false, errors.Newf("%s has no unit %q; its only unit is %q", g.name, unit, g.unit)
	}
	for i, v := range values {
		if v < g.min || v > g.max {
			return false, errors.Newf(
				"%s value %v at index %d is outside the possible range [%v, %v] %s",
				g.name, v, i, g.min, g.max, unit)
		}
	}
	return true, nil
}

// ToDict returns the serializable representation of the type.
func (g *Generic) ToDict() map[string]any {
	d := map[string]any{
		"name":      g.name,
		"data_type": "GenericType",
		"base_unit": g.unit,
	}
	if !math.IsInf(g.min, -1) {
		d["min"] = g.min
	}
	if !math.IsInf(g.max, 1) {
		d["max"] = g.max
	}
	return d
}
