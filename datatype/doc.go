// Package datatype defines the physical data types carried by data
// collections: their declared units, unit conversion, and physically
// possible value ranges.
//
// # The DataType interface
//
// A collection delegates all unit work to its DataType:
//
//	dt := datatype.NewIlluminance()
//	fc, _ := dt.ToUnit(luxValues, "fc", "lux")
//	si, unit, _ := dt.ToSI(fcValues, "fc")
//
// The first entry of Units is the default (base) unit of the type.
//
// # Generic types
//
// Quantities with no dedicated type use Generic, which declares a
// single unit and performs no conversion:
//
//	dt := datatype.NewGeneric("Occupancy", "people")
//
// # Serialization
//
// Types round-trip through ToDict and FromDict. FromDict dispatches on
// the dictionary's "data_type" tag; types defined outside this package
// participate by calling RegisterType.
package datatype
