package collection

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goclimate/header"
)

// typeTag is the serialized "type" field: "BaseCollection" for the base
// type, "<Type>Collection" for variants.
func (c *Collection) typeTag() string {
	return c.collectionType + "Collection"
}

// ToDict returns the serializable representation of the collection.
func (c *Collection) ToDict() map[string]any {
	return map[string]any{
		"header":             c.header.ToDict(),
		"values":             c.Values(),
		"datetimes":          c.Datetimes(),
		"validated_a_period": c.validatedAPeriod,
		"type":               c.typeTag(),
	}
}

// FromDict reconstructs a collection from a dictionary produced by
// ToDict (or decoded from its JSON form). header, values and datetimes
// are required; a missing key is reported by name. The "type" tag
// selects the registered mutable variant; an absent or unknown tag
// falls back to the base collection.
func FromDict(data map[string]any) (*Collection, error) {
	rawHeader, ok := data["header"]
	if !ok {
		return nil, errors.New(`required keyword "header" is missing`)
	}
	rawValues, ok := data["values"]
	if !ok {
		return nil, errors.New(`required keyword "values" is missing`)
	}
	rawDatetimes, ok := data["datetimes"]
	if !ok {
		return nil, errors.New(`required keyword "datetimes" is missing`)
	}

	headerDict, ok := rawHeader.(map[string]any)
	if !ok {
		return nil, errors.Newf("header must be a dictionary, got %T", rawHeader)
	}
	h, err := header.FromDict(headerDict)
	if err != nil {
		return nil, err
	}
	values, err := valuesFromDict(rawValues)
	if err != nil {
		return nil, err
	}
	datetimes, err := datetimesFromDict(rawDatetimes)
	if err != nil {
		return nil, err
	}

	collectionType := TypeBase
	if tag, ok := data["type"].(string); ok {
		candidate := strings.TrimSuffix(tag, "Collection")
		if _, err := variantFactory(candidate, true); err == nil {
			collectionType = candidate
		}
	}
	c, err := NewVariant(collectionType, true, h, values, datetimes)
	if err != nil {
		return nil, err
	}
	if validated, ok := data["validated_a_period"].(bool); ok {
		c.validatedAPeriod = validated
	}
	return c, nil
}

// ToJSON encodes the collection's dictionary form as JSON.
func (c *Collection) ToJSON() ([]byte, error) {
	return json.Marshal(c.ToDict())
}

// FromJSON reconstructs a collection from its JSON form.
func FromJSON(data []byte) (*Collection, error) {
	var dict map[string]any
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, errors.Wrap(err, "decoding collection JSON")
	}
	return FromDict(dict)
}

func valuesFromDict(raw any) ([]float64, error) {
	switch vs := raw.(type) {
	case []float64:
		out := make([]float64, len(vs))
		copy(out, vs)
		return out, nil
	case []any:
		out := make([]float64, len(vs))
		for i, v := range vs {
			f, ok := toScalar(v)
			if !ok {
				return nil, errors.Newf("values[%d] must be a number, got %T", i, v)
			}
			out[i] = f
		}
		return out, nil
	default:
		return nil, errors.Newf("values must be an array of numbers, got %T", raw)
	}
}

func datetimesFromDict(raw any) ([]time.Time, error) {
	switch ts := raw.(type) {
	case []time.Time:
		out := make([]time.Time, len(ts))
		copy(out, ts)
		return out, nil
	case []string:
		return parseDatetimes(ts)
	case []any:
		strs := make([]string, len(ts))
		for i, t := range ts {
			s, ok := t.(string)
			if !ok {
				return nil, errors.Newf("datetimes[%d] must be an RFC 3339 string, got %T", i, t)
			}
			strs[i] = s
		}
		return parseDatetimes(strs)
	default:
		return nil, errors.Newf("datetimes must be an array of timestamps, got %T", raw)
	}
}

func parseDatetimes(strs []string) ([]time.Time, error) {
	out := make([]time.Time, len(strs))
	for i, s := range strs {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing datetimes[%d]", i)
		}
		out[i] = t
	}
	return out, nil
}
