package datatype

import (
	"math"
	"testing"
)

func TestIlluminanceToUnit(t *testing.T) {
	dt := NewIlluminance()

	fc, err := dt.ToUnit([]float64{10763.9, 0}, "fc", "lux")
	if err != nil {
		t.Fatalf("ToUnit returned error: %v", err)
	}
	if math.Abs(fc[0]-1000) > 1e-6 {
		t.Errorf("Expected 1000 fc, got %f", fc[0])
	}
	if fc[1] != 0 {
		t.Errorf("Expected 0 fc, got %f", fc[1])
	}

	lux, err := dt.ToUnit(fc, "lux", "fc")
	if err != nil {
		t.Fatalf("ToUnit returned error: %v", err)
	}
	if math.Abs(lux[0]-10763.9) > 1e-6 {
		t.Errorf("Round trip should restore 10763.9 lux, got %f", lux[0])
	}
}

func TestIlluminanceToIPAndSI(t *testing.T) {
	dt := NewIlluminance()

	ip, unit, err := dt.ToIP([]float64{10.7639}, "lux")
	if err != nil {
		t.Fatalf("ToIP returned error: %v", err)
	}
	if unit != "fc" {
		t.Errorf("Expected fc, got %q", unit)
	}
	if math.Abs(ip[0]-1) > 1e-10 {
		t.Errorf("Expected 1 fc, got %f", ip[0])
	}

	// Already in IP: values unchanged, unit unchanged.
	same, unit, err := dt.ToIP([]float64{5}, "fc")
	if err != nil {
		t.Fatalf("ToIP returned error: %v", err)
	}
	if unit != "fc" || same[0] != 5 {
		t.Errorf("Expected no-op conversion, got %f %q", same[0], unit)
	}

	si, unit, err := dt.ToSI([]float64{1}, "fc")
	if err != nil {
		t.Fatalf("ToSI returned error: %v", err)
	}
	if unit != "lux" {
		t.Errorf("Expected lux, got %q", unit)
	}
	if math.Abs(si[0]-10.7639) > 1e-10 {
		t.Errorf("Expected 10.7639 lux, got %f", si[0])
	}
}

func TestIlluminanceUnknownUnit(t *testing.T) {
	dt := NewIlluminance()
	if _, err := dt.ToUnit([]float64{1}, "cd", "lux"); err == nil {
		t.Error("Expected error for unknown target unit")
	}
	if _, err := dt.ToUnit([]float64{1}, "lux", "cd"); err == nil {
		t.Error("Expected error for unknown source unit")
	}
}

func TestIlluminanceIsInRange(t *testing.T) {
	dt := NewIlluminance()

	ok, err := dt.IsInRange([]float64{0, 5000}, "lux")
	if !ok || err != nil {
		t.Errorf("Expected values in range, got ok=%v err=%v", ok, err)
	}

	ok, err = dt.IsInRange([]float64{100, -1}, "lux")
	if ok {
		t.Error("Expected negative illuminance to be out of range")
	}
	if err == nil {
		t.Error("Expected a descriptive error for out-of-range value")
	}

	// The zero lower bound holds in fc as well.
	ok, _ = dt.IsInRange([]float64{-0.1}, "fc")
	if ok {
		t.Error("Expected negative fc illuminance to be out of range")
	}
}

func TestIlluminanceUnits(t *testing.T) {
	dt := NewIlluminance()
	units := dt.Units()
	if len(units) != 2 || units[0] != "lux" || units[1] != "fc" {
		t.Errorf("Expected [lux fc] with base unit first, got %v", units)
	}
	if !IsUnitAcceptable(dt, "fc") {
		t.Error("fc should be acceptable")
	}
	if IsUnitAcceptable(dt, "cd") {
		t.Error("cd should not be acceptable")
	}
}

func TestGeneric(t *testing.T) {
	dt := NewGeneric("Occupancy", "people")

	if dt.Name() != "Occupancy" {
		t.Errorf("Expected name Occupancy, got %q", dt.Name())
	}

	out, err := dt.ToUnit([]float64{1, 2}, "people", "people")
	if err != nil {
		t.Fatalf("Identity conversion returned error: %v", err)
	}
	if out[0] != 1 || out[1] != 2 {
		t.Errorf("Identity conversion changed values: %v", out)
	}

	if _, err := dt.ToUnit([]float64{1}, "persons", "people"); err == nil {
		t.Error("Expected error converting to undeclared unit")
	}

	_, unit, err := dt.ToIP([]float64{1}, "people")
	if err != nil || unit != "people" {
		t.Errorf("Expected identity ToIP, got unit=%q err=%v", unit, err)
	}
}

func TestGenericRange(t *testing.T) {
	dt := NewGenericWithRange("Fraction", "fraction", 0, 1)

	if ok, _ := dt.IsInRange([]float64{0, 0.5, 1}, "fraction"); !ok {
		t.Error("Expected values in range")
	}
	if ok, _ := dt.IsInRange([]float64{1.5}, "fraction"); ok {
		t.Error("Expected 1.5 to be out of range")
	}
}

func TestFromDictRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		dt   DataType
	}{
		{"illuminance", NewIlluminance()},
		{"generic", NewGenericWithRange("Fraction", "fraction", 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restored, err := FromDict(tt.dt.ToDict())
			if err != nil {
				t.Fatalf("FromDict returned error: %v", err)
			}
			if restored.Name() != tt.dt.Name() {
				t.Errorf("Expected name %q, got %q", tt.dt.Name(), restored.Name())
			}
			if restored.Units()[0] != tt.dt.Units()[0] {
				t.Errorf("Expected base unit %q, got %q", tt.dt.Units()[0], restored.Units()[0])
			}
		})
	}
}

func TestFromDictErrors(t *testing.T) {
	if _, err := FromDict(map[string]any{}); err == nil {
		t.Error("Expected error for missing data_type")
	}
	if _, err := FromDict(map[string]any{"data_type": "Voltage"}); err == nil {
		t.Error("Expected error for unknown data_type")
	}
}

func TestRegisterType(t *testing.T) {
	RegisterType("TestOnlyType", func(map[string]any) (DataType, error) {
		return NewGeneric("TestOnly", "u"), nil
	})
	dt, err := FromDict(map[string]any{"data_type": "TestOnlyType"})
	if err != nil {
		t.Fatalf("FromDict returned error: %v", err)
	}
	if dt.Name() != "TestOnly" {
		t.Errorf("Expected registered constructor to run, got %q", dt.Name())
	}
}
