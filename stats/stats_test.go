package stats

import (
	"math"
	"testing"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mean(tt.values)
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	result := Total([]float64{1, 2, 3, 4})
	if math.Abs(result-10) > 1e-10 {
		t.Errorf("Expected total 10, got %f", result)
	}
}

func TestBounds(t *testing.T) {
	min, max := Bounds([]float64{5, 2, 8, 1, 9, 3})
	if min != 1 {
		t.Errorf("Expected min 1, got %f", min)
	}
	if max != 9 {
		t.Errorf("Expected max 9, got %f", max)
	}
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		percent  float64
		expected float64
	}{
		{"p0", []float64{1, 2, 3, 4}, 0, 1},
		{"p100", []float64{1, 2, 3, 4}, 100, 4},
		{"p50 even", []float64{1, 2, 3, 4}, 50, 2.5},
		{"p50 odd", []float64{1, 3, 5}, 50, 3},
		{"p25", []float64{1, 2, 3, 4}, 25, 1.75},
		{"p75", []float64{1, 2, 3, 4}, 75, 3.25},
		{"unsorted input", []float64{4, 1, 3, 2}, 50, 2.5},
		{"single", []float64{7}, 50, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Percentile(tt.values, tt.percent)
			if err != nil {
				t.Fatalf("Percentile returned error: %v", err)
			}
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected percentile %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestPercentileMonotonic(t *testing.T) {
	values := []float64{12, 3, 45, 6, 21, 9, 30}
	p25, _ := Percentile(values, 25)
	p50, _ := Percentile(values, 50)
	p75, _ := Percentile(values, 75)

	if p25 > p50 || p50 > p75 {
		t.Errorf("Percentiles not monotonic: p25=%f p50=%f p75=%f", p25, p50, p75)
	}

	med, _ := Median(values)
	if math.Abs(med-p50) > 1e-10 {
		t.Errorf("Median %f does not equal 50th percentile %f", med, p50)
	}
}

func TestPercentileErrors(t *testing.T) {
	if _, err := Percentile([]float64{1, 2}, -1); err == nil {
		t.Error("Expected error for percentile below 0")
	}
	if _, err := Percentile([]float64{1, 2}, 101); err == nil {
		t.Error("Expected error for percentile above 100")
	}
	if _, err := Percentile(nil, 50); err == nil {
		t.Error("Expected error for empty values")
	}
}

func TestHighestValues(t *testing.T) {
	values := []float64{5, 1, 9, 3}
	highest, indices, err := HighestValues(values, 2)
	if err != nil {
		t.Fatalf("HighestValues returned error: %v", err)
	}

	expectedValues := []float64{9, 5}
	expectedIndices := []int{2, 0}
	for i := range expectedValues {
		if highest[i] != expectedValues[i] {
			t.Errorf("Expected value %f at position %d, got %f", expectedValues[i], i, highest[i])
		}
		if indices[i] != expectedIndices[i] {
			t.Errorf("Expected index %d at position %d, got %d", expectedIndices[i], i, indices[i])
		}
	}
}

func TestLowestValues(t *testing.T) {
	values := []float64{5, 1, 9, 3}
	lowest, indices, err := LowestValues(values, 2)
	if err != nil {
		t.Fatalf("LowestValues returned error: %v", err)
	}

	expectedValues := []float64{1, 3}
	expectedIndices := []int{1, 3}
	for i := range expectedValues {
		if lowest[i] != expectedValues[i] {
			t.Errorf("Expected value %f at position %d, got %f", expectedValues[i], i, lowest[i])
		}
		if indices[i] != expectedIndices[i] {
			t.Errorf("Expected index %d at position %d, got %d", expectedIndices[i], i, indices[i])
		}
	}
}

func TestExtremeValuesCountBounds(t *testing.T) {
	values := []float64{1, 2, 3}

	if _, _, err := HighestValues(values, 0); err == nil {
		t.Error("Expected error for count 0")
	}
	if _, _, err := HighestValues(values, 4); err == nil {
		t.Error("Expected error for count above length")
	}
	if _, _, err := LowestValues(values, -1); err == nil {
		t.Error("Expected error for negative count")
	}
	if _, _, err := HighestValues(values, 3); err != nil {
		t.Errorf("Expected count equal to length to succeed, got %v", err)
	}
}
