package datatype

import (
	"math"

	"github.com/cockroachdb/errors"
)

// DataType describes a physical quantity: its declared units, unit
// conversion, and the physically possible value range.
//
// The first entry of Units is the default (base) unit of the type.
type DataType interface {
	// Name returns the display name of the data type.
	Name() string

	// Units returns the declared units, base unit first.
	Units() []string

	// ToUnit converts values from fromUnit to unit.
	ToUnit(values []float64, unit, fromUnit string) ([]float64, error)

	// ToIP converts values from fromUnit to the IP unit of the type.
	// The unit is determined by the data type, not the caller.
	ToIP(values []float64, fromUnit string) ([]float64, string, error)

	// ToSI converts values from fromUnit to the SI unit of the type.
	ToSI(values []float64, fromUnit string) ([]float64, string, error)

	// IsInRange reports whether every value is physically possible for
	// this data type in the given unit. When it returns false, the
	// error describes the first offending value.
	IsInRange(values []float64, unit string) (bool, error)

	// ToDict returns the serializable representation of the type.
	ToDict() map[string]any
}

// IsUnitAcceptable reports whether unit is among the declared units of dt.
func IsUnitAcceptable(dt DataType, unit string) bool {
	for _, u := range dt.Units() {
		if u == unit {
			return true
		}
	}
	return false
}

// baseType implements the shared parts of a DataType whose units relate
// to the base unit by constant factors.
type baseType struct {
	name         string
	units        []string
	siUnit       string
	ipUnit       string
	abbreviation string
	min          float64
	max          float64

	// toBase maps each declared unit to the factor that converts a
	// value in that unit into the base unit.
	toBase map[string]float64
}

func (b *baseType) Name() string { return b.name }

func (b *baseType) Units() []string {
	units := make([]string, len(b.units))
	copy(units, b.units)
	return units
}

// Abbreviation returns the short label for the type (e.g. "Ev").
func (b *baseType) Abbreviation() string { return b.abbreviation }

func (b *baseType) ToUnit(values []float64, unit, fromUnit string) ([]float64, error) {
	fromFactor, ok := b.toBase[fromUnit]
	if !ok {
		return nil, errors.Newf("%s has no unit %q; units are %v", b.name, fromUnit, b.units)
	}
	toFactor, ok := b.toBase[unit]
	if !ok {
		return nil, errors.Newf("%s has no unit %q; units are %v", b.name, unit, b.units)
	}
	converted := make([]float64, len(values))
	for i, v := range values {
		converted[i] = v * fromFactor / toFactor
	}
	return converted, nil
}

func (b *baseType) ToIP(values []float64, fromUnit string) ([]float64, string, error) {
	if fromUnit == b.ipUnit {
		out := make([]float64, len(values))
		copy(out, values)
		return out, fromUnit, nil
	}
	converted, err := b.ToUnit(values, b.ipUnit, fromUnit)
	if err != nil {
		return nil, "", err
	}
	return converted, b.ipUnit, nil
}

func (b *baseType) ToSI(values []float64, fromUnit string) ([]float64, string, error) {
	if fromUnit == b.siUnit {
		out := make([]float64, len(values))
		copy(out, values)
		return out, fromUnit, nil
	}
	converted, err := b.ToUnit(values, b.siUnit, fromUnit)
	if err != nil {
		return nil, "", err
	}
	return converted, b.siUnit, nil
}

func (b *baseType) IsInRange(values []float64, unit string) (bool, error) {
	if _, ok := b.toBase[unit]; !ok {
		return false, errors.Newf("%s has no unit %q; units are %v", b.name, unit, b.units)
	}
	// Range limits are declared in the base unit.
	minimum, maximum := b.min, b.max
	if unit != b.units[0] {
		if !math.IsInf(minimum, -1) {
			converted, err := b.ToUnit([]float64{minimum}, unit, b.units[0])
			if err != nil {
				return false, err
			}
			minimum = converted[0]
		}
		if !math.IsInf(maximum, 1) {
			converted, err := b.ToUnit([]float64{maximum}, unit, b.units[0])
			if err != nil {
				return false, err
			}
			maximum = converted[0]
		}
	}
	for i, v := range values {
		if v < minimum || v > maximum {
			return false, errors.Newf(
				"%s value %v at index %d is outside the possible range [%v, %v] %s",
				b.name, v, i, minimum, maximum, unit)
		}
	}
	return true, nil
}
