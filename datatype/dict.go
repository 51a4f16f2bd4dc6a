package datatype

import (
	"math"
	"sync"

	"github.com/cockroachdb/errors"
)

// FromDictFunc reconstructs a DataType from its dictionary form.
type FromDictFunc func(data map[string]any) (DataType, error)

var fromDictRegistry = struct {
	sync.RWMutex
	funcs map[string]FromDictFunc
}{funcs: make(map[string]FromDictFunc)}

// RegisterType registers a FromDict constructor under a data_type tag.
// Types defined outside this package register themselves the same way
// the built-in types do.
func RegisterType(tag string, f FromDictFunc) {
	fromDictRegistry.Lock()
	defer fromDictRegistry.Unlock()
	fromDictRegistry.funcs[tag] = f
}

// FromDict reconstructs a DataType from a dictionary produced by ToDict.
func FromDict(data map[string]any) (DataType, error) {
	tag, ok := data["data_type"].(string)
	if !ok {
		return nil, errors.New(`required keyword "data_type" is missing`)
	}
	fromDictRegistry.RLock()
	f, ok := fromDictRegistry.funcs[tag]
	fromDictRegistry.RUnlock()
	if !ok {
		return nil, errors.Newf("unknown data type %q", tag)
	}
	return f(data)
}

func init() {
	RegisterType("Illuminance", func(map[string]any) (DataType, error) {
		return NewIlluminance(), nil
	})
	RegisterType("GenericType", genericFromDict)
}

func genericFromDict(data map[string]any) (DataType, error) {
	name, ok := data["name"].(string)
	if !ok {
		return nil, errors.New(`required keyword "name" is missing`)
	}
	unit, ok := data["base_unit"].(string)
	if !ok {
		return nil, errors.New(`required keyword "base_unit" is missing`)
	}
	min, max := math.Inf(-1), math.Inf(1)
	if m, ok := toFloat(data["min"]); ok {
		min = m
	}
	if m, ok := toFloat(data["max"]); ok {
		max = m
	}
	return NewGenericWithRange(name, unit, min, max), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
