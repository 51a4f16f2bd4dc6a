// Package header defines the metadata bundle attached to every data
// collection: a physical data type, the unit its values are currently
// expressed in, the nominal analysis period the datetimes should cover,
// and free-form metadata.
//
// Create a header for hourly illuminance readings:
//
//	dt := datatype.NewIlluminance()
//	h, err := header.New(dt, "lux", nil, map[string]string{"city": "Denver"})
//
// Headers are duplicated, never shared, when collections are derived
// from one another; see Header.Duplicate.
package header
