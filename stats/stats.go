package stats

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// Mean calculates the arithmetic mean of the values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Total(values) / float64(len(values))
}

// Total calculates the sum of the values.
func Total(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// Min returns the minimum value.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Bounds returns the minimum and maximum values.
func Bounds(values []float64) (float64, float64) {
	return Min(values), Max(values)
}

// Percentile returns the value at the given percentile of the values,
// using linear interpolation between order statistics: with the values
// sorted, rank k = (N-1) * percent/100 selects the k-th order statistic
// when k is integral and otherwise interpolates between the floor and
// ceiling order statistics weighted by fractional distance.
func Percentile(values []float64, percent float64) (float64, error) {
	if percent < 0 || percent > 100 {
		return 0, errors.Newf("percentile must be between 0 and 100, got %v", percent)
	}
	if len(values) == 0 {
		return 0, errors.New("percentile requires at least one value")
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	k := float64(len(sorted)-1) * percent / 100
	f := math.Floor(k)
	c := math.Ceil(k)
	if f == c {
		return sorted[int(k)], nil
	}
	d0 := sorted[int(f)] * (c - k)
	d1 := sorted[int(c)] * (k - f)
	return d0 + d1, nil
}

// Median returns the 50th percentile of the values.
func Median(values []float64) (float64, error) {
	return Percentile(values, 50)
}

// HighestValues returns the count highest values together with their
// indices in the original slice, both ordered from highest to lowest.
// Ties carry no ordering guarantee since the sort is a plain value sort.
func HighestValues(values []float64, count int) ([]float64, []int, error) {
	indices, err := extremeIndices(values, count, func(a, b float64) bool { return a > b })
	if err != nil {
		return nil, nil, err
	}
	highest := make([]float64, count)
	for i, idx := range indices {
		highest[i] = values[idx]
	}
	return highest, indices, nil
}

// LowestValues returns the count lowest values together with their
// indices in the original slice, both ordered from lowest to highest.
func LowestValues(values []float64, count int) ([]float64, []int, error) {
	indices, err := extremeIndices(values, count, func(a, b float64) bool { return a < b })
	if err != nil {
		return nil, nil, err
	}
	lowest := make([]float64, count)
	for i, idx := range indices {
		lowest[i] = values[idx]
	}
	return lowest, indices, nil
}

func extremeIndices(values []float64, count int, before func(a, b float64) bool) ([]int, error) {
	if count <= 0 {
		return nil, errors.Newf("count must be greater than 0, got %d", count)
	}
	if count > len(values) {
		return nil, errors.Newf("count must be smaller than or equal to the number of values: %d > %d",
			count, len(values))
	}
	indices := make([]int, len(values))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return before(values[indices[i]], values[indices[j]])
	})
	return indices[:count], nil
}
