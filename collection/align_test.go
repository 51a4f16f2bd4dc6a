package collection

import (
	"math"
	"testing"
	"time"

	"github.com/sartorproj/goclimate/datatype"
)

func TestIsCollectionAligned(t *testing.T) {
	a := hourlyCollection(t, []float64{1, 2, 3})
	b := hourlyCollection(t, []float64{4, 5, 6})

	if !a.IsCollectionAligned(a) {
		t.Error("Alignment must be reflexive")
	}
	if !a.IsCollectionAligned(b) || !b.IsCollectionAligned(a) {
		t.Error("Alignment must hold both ways for matching collections")
	}

	// Different length.
	short := hourlyCollection(t, []float64{1, 2})
	if a.IsCollectionAligned(short) {
		t.Error("Collections of different lengths must not align")
	}

	// Different collection type.
	daily, err := NewDaily(illuminanceHeader(t, "lux"), []float64{1, 2, 3}, hourlyDatetimes(3))
	if err != nil {
		t.Fatalf("NewDaily returned error: %v", err)
	}
	if a.IsCollectionAligned(daily) {
		t.Error("Collections of different types must not align")
	}

	// Different datetimes.
	shifted := hourlyDatetimes(3)
	shifted[2] = shifted[2].Add(time.Minute)
	c, err := NewHourly(illuminanceHeader(t, "lux"), []float64{1, 2, 3}, shifted)
	if err != nil {
		t.Fatalf("NewHourly returned error: %v", err)
	}
	if a.IsCollectionAligned(c) {
		t.Error("Collections with different datetimes must not align")
	}
}

func TestAreCollectionsAligned(t *testing.T) {
	a := hourlyCollection(t, []float64{1, 2, 3})
	b := hourlyCollection(t, []float64{4, 5, 6})

	if !AreCollectionsAligned([]*Collection{a}) {
		t.Error("A single-element list is always aligned")
	}
	if !AreCollectionsAligned([]*Collection{a, b}) {
		t.Error("Expected aligned collections")
	}

	short := hourlyCollection(t, []float64{1, 2})
	if AreCollectionsAligned([]*Collection{a, b, short}) {
		t.Error("Expected misaligned collections")
	}

	err := EnsureCollectionsAligned([]*Collection{a, short})
	if err == nil {
		t.Fatal("Expected an alignment error")
	}
}

func TestGetAlignedCollection(t *testing.T) {
	c := hourlyCollection(t, []float64{1, 2, 3, 4})
	c.validatedAPeriod = true

	aligned, err := c.GetAlignedCollection(5, nil, "", nil)
	if err != nil {
		t.Fatalf("GetAlignedCollection returned error: %v", err)
	}
	if aligned.Len() != 4 {
		t.Fatalf("Expected 4 values, got %d", aligned.Len())
	}
	for i, v := range aligned.Values() {
		if v != 5 {
			t.Errorf("Expected 5 at index %d, got %f", i, v)
		}
		if !aligned.Datetime(i).Equal(c.Datetime(i)) {
			t.Errorf("Datetime mismatch at index %d", i)
		}
	}
	if !c.IsCollectionAligned(aligned) {
		t.Error("The synthesized collection must align with its source")
	}
	if aligned.Header().Unit() != "lux" {
		t.Errorf("Expected inherited unit lux, got %q", aligned.Header().Unit())
	}
	if !aligned.ValidatedAPeriod() {
		t.Error("validated_a_period must be propagated")
	}
	if aligned.Header() == c.Header() {
		t.Error("The synthesized collection must not alias the source header")
	}
}

func TestGetAlignedCollectionHeaderResolution(t *testing.T) {
	c := hourlyCollection(t, []float64{1, 2, 3})

	// A data type override defaults the unit to its base unit.
	fraction := datatype.NewGenericWithRange("Fraction", "fraction", 0, 1)
	aligned, err := c.GetAlignedCollection(0.5, fraction, "", nil)
	if err != nil {
		t.Fatalf("GetAlignedCollection returned error: %v", err)
	}
	if aligned.Header().DataType().Name() != "Fraction" {
		t.Errorf("Expected Fraction, got %q", aligned.Header().DataType().Name())
	}
	if aligned.Header().Unit() != "fraction" {
		t.Errorf("Expected base unit fraction, got %q", aligned.Header().Unit())
	}

	// The unit is overridable without a data type override.
	aligned, err = c.GetAlignedCollection(1, nil, "fc", nil)
	if err != nil {
		t.Fatalf("GetAlignedCollection returned error: %v", err)
	}
	if aligned.Header().Unit() != "fc" {
		t.Errorf("Expected fc, got %q", aligned.Header().Unit())
	}
	if aligned.Header().DataType().Name() != "Illuminance" {
		t.Errorf("Expected inherited Illuminance, got %q", aligned.Header().DataType().Name())
	}
}

func TestGetAlignedCollectionMutability(t *testing.T) {
	c := hourlyCollection(t, []float64{1, 2, 3})

	inherit, err := c.GetAlignedCollection(0, nil, "", nil)
	if err != nil {
		t.Fatalf("GetAlignedCollection returned error: %v", err)
	}
	if !inherit.IsMutable() {
		t.Error("nil mutability must inherit from the source")
	}

	immutable := false
	frozen, err := c.GetAlignedCollection(0, nil, "", &immutable)
	if err != nil {
		t.Fatalf("GetAlignedCollection returned error: %v", err)
	}
	if frozen.IsMutable() {
		t.Error("Expected an immutable aligned collection")
	}
	if frozen.CollectionType() != c.CollectionType() {
		t.Errorf("Expected collection type %q, got %q", c.CollectionType(), frozen.CollectionType())
	}

	mutable := true
	thawed, err := frozen.GetAlignedCollection(0, nil, "", &mutable)
	if err != nil {
		t.Fatalf("GetAlignedCollection returned error: %v", err)
	}
	if !thawed.IsMutable() {
		t.Error("Expected a mutable aligned collection")
	}
}

func TestGetAlignedCollectionValues(t *testing.T) {
	c := hourlyCollection(t, []float64{1, 2, 3})

	aligned, err := c.GetAlignedCollectionValues([]float64{7, 8, 9}, nil, "", nil)
	if err != nil {
		t.Fatalf("GetAlignedCollectionValues returned error: %v", err)
	}
	if aligned.Value(2) != 9 {
		t.Errorf("Expected 9 at index 2, got %f", aligned.Value(2))
	}

	if _, err := c.GetAlignedCollectionValues([]float64{7, 8}, nil, "", nil); err == nil {
		t.Error("Expected error for a value sequence of the wrong length")
	}
}

func TestComputeFunctionAlignedScalarsOnly(t *testing.T) {
	result, err := ComputeFunctionAligned(
		func(args ...float64) float64 { return args[0] + args[1] },
		[]any{2, 3.5},
		datatype.NewGeneric("Sum", "u"), "u")
	if err != nil {
		t.Fatalf("ComputeFunctionAligned returned error: %v", err)
	}
	scalar, ok := result.(float64)
	if !ok {
		t.Fatalf("Expected a bare float64, got %T", result)
	}
	if math.Abs(scalar-5.5) > 1e-10 {
		t.Errorf("Expected 5.5, got %f", scalar)
	}
}

func TestComputeFunctionAlignedWithCollections(t *testing.T) {
	a := hourlyCollection(t, []float64{1, 2, 3})
	b := hourlyCollection(t, []float64{10, 20, 30})

	result, err := ComputeFunctionAligned(
		func(args ...float64) float64 { return args[0]*args[1] + args[2] },
		[]any{a, b, 100},
		datatype.NewGeneric("Score", "pt"), "pt")
	if err != nil {
		t.Fatalf("ComputeFunctionAligned returned error: %v", err)
	}
	coll, ok := result.(*Collection)
	if !ok {
		t.Fatalf("Expected a collection, got %T", result)
	}
	expected := []float64{110, 140, 190}
	for i, want := range expected {
		if math.Abs(coll.Value(i)-want) > 1e-10 {
			t.Errorf("Expected %f at index %d, got %f", want, i, coll.Value(i))
		}
	}
	if coll.Header().DataType().Name() != "Score" {
		t.Errorf("Expected Score data type, got %q", coll.Header().DataType().Name())
	}
	if coll.Header().Unit() != "pt" {
		t.Errorf("Expected unit pt, got %q", coll.Header().Unit())
	}
	if !a.IsCollectionAligned(coll) {
		t.Error("The result must align with the collection inputs")
	}
}

func TestComputeFunctionAlignedErrors(t *testing.T) {
	a := hourlyCollection(t, []float64{1, 2, 3})
	short := hourlyCollection(t, []float64{1, 2})

	if _, err := ComputeFunctionAligned(
		func(args ...float64) float64 { return args[0] },
		[]any{a, "not a number"}, nil, ""); err == nil {
		t.Error("Expected a type error for a non-numeric input")
	}

	if _, err := ComputeFunctionAligned(
		func(args ...float64) float64 { return args[0] + args[1] },
		[]any{a, short}, nil, ""); err == nil {
		t.Error("Expected an alignment error for misaligned collections")
	}
}
