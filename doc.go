// Package goclimate provides physically-typed, time-stamped data
// collections for building-performance and climate analysis.
//
// GoClimate models "data collections": ordered numeric values paired
// one-to-one with datetimes under a header that gives them physical
// meaning (data type, unit, analysis period, metadata). Collections
// convert between units, align with one another, filter by conditional
// statements or boolean patterns, and report order statistics.
//
// # Quick Start
//
// Build an hourly illuminance collection and work with it:
//
//	dt := datatype.NewIlluminance()
//	h, _ := header.New(dt, "lux", nil, nil)
//	lux, _ := collection.NewHourly(h, values, datetimes)
//
//	fc, _ := lux.ToIP()                                  // lux -> fc
//	bright, _ := lux.FilterByConditionalStatement("a > 10000")
//	p95, _ := lux.GetPercentile(95)
//
// Combine aligned collections:
//
//	pattern, _ := collection.PatternFromCollectionsAndStatement(
//	    []*collection.Collection{temp, rh}, "a > 25 and b > 80")
//
// # Packages
//
// The library is organized into the following packages:
//
//   - collection: the aligned-collection core (container, alignment,
//     filtering, statistics, variant registry, serialization)
//   - header: the metadata bundle attached to every collection
//   - datatype: physical data types, units and range validation
//   - expr: the restricted conditional-statement engine
//   - stats: order statistics over raw value slices
package goclimate
