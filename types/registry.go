package types

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Registry maps type tags to conversion entries. Registration order is
// preserved so introspection reports tags the way they were declared.
//
// A Registry has no internal locking: register everything before any
// concurrent parsing starts. Lookups during a parse are read-only.
type Registry struct {
	entries *orderedmap.OrderedMap
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: orderedmap.New(),
	}
}

// Register stores entry under every tag in kinds. The last registration
// for a tag wins, which is how callers override built-in handlers.
func (r *Registry) Register(entry Entry, kinds ...Kind) {
	for _, kind := range kinds {
		r.entries.Set(kind, entry)
	}
}

// RegisterConverter stores a converter without a type-level default under
// every tag in kinds.
func (r *Registry) RegisterConverter(convert Converter, kinds ...Kind) {
	r.Register(Entry{Convert: convert}, kinds...)
}

// Lookup returns the entry registered under kind. An unregistered kind is
// a configuration defect, reported as an error wrapping ErrNoHandler.
func (r *Registry) Lookup(kind Kind) (Entry, error) {
	value, found := r.entries.Get(kind)
	if !found {
		return Entry{}, fmt.Errorf("%w: '%s'", ErrNoHandler, kind)
	}

	return value.(Entry), nil
}

// DefaultFor returns the type-level default for kind. The second return
// value is false when kind is unregistered or its entry has no default
// supplier.
func (r *Registry) DefaultFor(kind Kind) (any, bool) {
	entry, err := r.Lookup(kind)
	if err != nil || entry.Default == nil {
		return nil, false
	}

	return entry.Default(), true
}

// Kinds returns the registered tags in registration order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		kinds = append(kinds, pair.Key.(Kind))
	}

	return kinds
}

var defaultRegistry = NewBuiltinRegistry()

// Default returns the process-wide registry used by parsers which were
// not handed their own. It starts out with all built-in entries.
func Default() *Registry {
	return defaultRegistry
}

// Register stores entry in the default registry.
func Register(entry Entry, kinds ...Kind) {
	defaultRegistry.Register(entry, kinds...)
}

// RegisterConverter stores a converter without a default in the default
// registry.
func RegisterConverter(convert Converter, kinds ...Kind) {
	defaultRegistry.RegisterConverter(convert, kinds...)
}

// Lookup consults the default registry.
func Lookup(kind Kind) (Entry, error) {
	return defaultRegistry.Lookup(kind)
}

// Kinds lists the default registry's tags in registration order.
func Kinds() []Kind {
	return defaultRegistry.Kinds()
}
