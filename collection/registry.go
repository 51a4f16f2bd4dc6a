package collection

import (
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/sartorproj/goclimate/header"
)

// Built-in collection type tags.
const (
	TypeBase    = "Base"
	TypeHourly  = "Hourly"
	TypeDaily   = "Daily"
	TypeMonthly = "Monthly"
)

// Factory constructs a collection of one concrete variant.
type Factory func(h *header.Header, values []float64, datetimes []time.Time) (*Collection, error)

// The variant registry maps a collection type tag to the factory for
// its mutable and immutable forms. It is consulted whenever an
// operation must materialize "the same kind of collection, but
// possibly with a different mutability". Variants defined outside this
// package join the open set by calling RegisterVariant.
var variants = struct {
	sync.RWMutex
	mutable   map[string]Factory
	immutable map[string]Factory
}{
	mutable:   make(map[string]Factory),
	immutable: make(map[string]Factory),
}

// RegisterVariant registers a factory for a collection type tag in the
// mutable or immutable half of the registry. Re-registering a tag
// replaces the previous factory.
func RegisterVariant(collectionType string, mutable bool, f Factory) {
	variants.Lock()
	defer variants.Unlock()
	if mutable {
		variants.mutable[collectionType] = f
	} else {
		variants.immutable[collectionType] = f
	}
}

func variantFactory(collectionType string, mutable bool) (Factory, error) {
	variants.RLock()
	defer variants.RUnlock()
	half := variants.mutable
	kind := "mutable"
	if !mutable {
		half = variants.immutable
		kind = "immutable"
	}
	f, ok := half[collectionType]
	if !ok {
		return nil, errors.Newf("no %s variant registered for collection type %q", kind, collectionType)
	}
	return f, nil
}

func builtinFactory(collectionType string, mutable bool) Factory {
	return func(h *header.Header, values []float64, datetimes []time.Time) (*Collection, error) {
		return newCollection(collectionType, mutable, h, values, datetimes)
	}
}

func init() {
	for _, tag := range []string{TypeBase, TypeHourly, TypeDaily, TypeMonthly} {
		RegisterVariant(tag, true, builtinFactory(tag, true))
		RegisterVariant(tag, false, builtinFactory(tag, false))
	}
}
