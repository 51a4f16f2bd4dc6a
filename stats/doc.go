// Package stats provides the order statistics used by data collections:
// linear-interpolation percentiles, basic O(N) reductions, and extremal
// value lookups that report original indices.
//
// Percentiles interpolate between order statistics:
//
//	p75, err := stats.Percentile(values, 75)
//	med, err := stats.Median(values)
//
// Extremal lookups return values and their original indices in
// parallel, highest-first or lowest-first:
//
//	top, idx, err := stats.HighestValues(values, 10)
package stats
