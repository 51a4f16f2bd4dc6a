package header

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goclimate/datatype"
)

// Header bundles the metadata that gives a collection's values physical
// meaning: the data type, its unit, the nominal analysis period, and
// free-form metadata.
//
// A header is exclusively owned by one collection at a time; every
// operation that derives a new collection duplicates the header first,
// so mutating the unit during in-place conversion can never be observed
// through another collection.
type Header struct {
	dataType       datatype.DataType
	unit           string
	analysisPeriod *AnalysisPeriod
	metadata       map[string]string
}

// New creates a header. The unit must be among the data type's declared
// units. A nil analysis period defaults to the full year; a nil
// metadata map defaults to empty.
func New(dt datatype.DataType, unit string, ap *AnalysisPeriod, metadata map[string]string) (*Header, error) {
	if dt == nil {
		return nil, errors.New("header requires a data type")
	}
	if !datatype.IsUnitAcceptable(dt, unit) {
		return nil, errors.Newf("%q is not a unit of %s; units are %v", unit, dt.Name(), dt.Units())
	}
	if ap == nil {
		ap = DefaultAnalysisPeriod()
	}
	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}
	return &Header{
		dataType:       dt,
		unit:           unit,
		analysisPeriod: ap.Duplicate(),
		metadata:       meta,
	}, nil
}

// DataType returns the physical data type of the header.
func (h *Header) DataType() datatype.DataType { return h.dataType }

// Unit returns the current unit of the header.
func (h *Header) Unit() string { return h.unit }

// SetUnit replaces the unit. This is mutated cooperatively by the
// owning collection during in-place unit conversion; the new unit is
// trusted to come from the data type's own conversion methods.
func (h *Header) SetUnit(unit string) { h.unit = unit }

// AnalysisPeriod returns the nominal analysis period.
func (h *Header) AnalysisPeriod() *AnalysisPeriod { return h.analysisPeriod }

// Metadata returns a copy of the free-form metadata.
func (h *Header) Metadata() map[string]string {
	meta := make(map[string]string, len(h.metadata))
	for k, v := range h.metadata {
		meta[k] = v
	}
	return meta
}

// Duplicate returns a deep copy of the header.
func (h *Header) Duplicate() *Header {
	return &Header{
		dataType:       h.dataType,
		unit:           h.unit,
		analysisPeriod: h.analysisPeriod.Duplicate(),
		metadata:       h.Metadata(),
	}
}

// ToDict returns the serializable representation of the header.
func (h *Header) ToDict() map[string]any {
	meta := make(map[string]any, len(h.metadata))
	for k, v := range h.metadata {
		meta[k] = v
	}
	return map[string]any{
		"data_type":       h.dataType.ToDict(),
		"unit":            h.unit,
		"analysis_period": h.analysisPeriod.ToDict(),
		"metadata":        meta,
		"type":            "Header",
	}
}

// FromDict reconstructs a header from a dictionary produced by ToDict.
// data_type and unit are required; a missing key is reported by name.
func FromDict(data map[string]any) (*Header, error) {
	rawType, ok := data["data_type"]
	if !ok {
		return nil, errors.New(`required keyword "data_type" is missing`)
	}
	typeDict, ok := toStringMap(rawType)
	if !ok {
		return nil, errors.Newf("header data_type must be a dictionary, got %T", rawType)
	}
	dt, err := datatype.FromDict(typeDict)
	if err != nil {
		return nil, err
	}
	unit, ok := data["unit"].(string)
	if !ok {
		return nil, errors.New(`required keyword "unit" is missing`)
	}
	var ap *AnalysisPeriod
	if rawAP, ok := data["analysis_period"]; ok {
		apDict, ok := toStringMap(rawAP)
		if !ok {
			return nil, errors.Newf("header analysis_period must be a dictionary, got %T", rawAP)
		}
		if ap, err = AnalysisPeriodFromDict(apDict); err != nil {
			return nil, err
		}
	}
	metadata := make(map[string]string)
	if rawMeta, ok := data["metadata"]; ok {
		metaDict, ok := toStringMap(rawMeta)
		if !ok {
			return nil, errors.Newf("header metadata must be a dictionary, got %T", rawMeta)
		}
		for k, v := range metaDict {
			metadata[k] = fmt.Sprint(v)
		}
	}
	return New(dt, unit, ap, metadata)
}

func toStringMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// String renders the header as "DataType (unit)".
func (h *Header) String() string {
	return fmt.Sprintf("%s (%s)", h.dataType.Name(), h.unit)
}
