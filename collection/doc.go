// Package collection implements aligned data collections: ordered
// numeric values paired one-to-one with datetimes under a physical
// header (data type, unit, analysis period, metadata).
//
// # Creating a collection
//
//	dt := datatype.NewIlluminance()
//	h, _ := header.New(dt, "lux", nil, nil)
//	c, err := collection.NewHourly(h, values, datetimes)
//
// A collection always holds at least one value and exactly one datetime
// per value; constructors and SetValues enforce this, and Values
// returns a defensive copy so the guard cannot be bypassed.
//
// # Unit conversion
//
// Conversion delegates to the header's data type. The Convert* methods
// mutate in place (immutable collections reject them); the To* methods
// return a converted copy:
//
//	err := c.ConvertToIP()       // in place, header unit updated
//	fc, err := c.ToUnit("fc")    // new collection, original untouched
//
// # Alignment
//
// Two collections are aligned when they share a collection type, a
// length and identical datetimes. Alignment gates every
// multi-collection operation:
//
//	aligned := a.IsCollectionAligned(b)
//	zeros, err := a.GetAlignedCollection(0, nil, "", nil)
//
// # Filtering
//
// Collections filter by conditional statements over variables a, b,
// c, … (one per collection) or by boolean patterns, which repeat
// cyclically when shorter than the collection:
//
//	hot, err := temp.FilterByConditionalStatement("a > 25")
//	both, err := collection.FilterCollectionsByStatement(
//	    []*collection.Collection{temp, rh}, "a > 25 and b > 80")
//	every3rd, err := temp.FilterByPattern([]bool{true, false, false})
//
// A filter that retains zero samples is an error: collections are
// never empty.
//
// # Variants
//
// Concrete collection kinds (hourly, daily, monthly, …) are registered
// per type tag in mutable and immutable forms; operations that derive
// a collection look the right kind up in the registry, so kinds defined
// outside this package take part through RegisterVariant.
package collection
