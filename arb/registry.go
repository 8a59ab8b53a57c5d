package arb

import (
	"math/rand/v2"
	"reflect"
)

// Registry maps concrete types to generators for reflective dispatch.
//
// It is intentionally:
// - explicit (passed to Resolve, never global)
// - consulted before Arbitrary methods and kind rules, at every nesting level
//   reached through slices, arrays, maps, pointers, struct fields and the
//   arb wrapper types (Option, Result, NonEmpty, TupleN)
//
// Registering an interface type lets struct fields of that interface be
// generated, which the kind rules cannot do on their own.
//
// A Registry is not safe for concurrent mutation. Register everything up
// front, then share it read-only.
type Registry struct {
	gens map[reflect.Type]func(r *rand.Rand, size int) reflect.Value
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{gens: map[reflect.Type]func(*rand.Rand, int) reflect.Value{}}
}

// Register stores g as the generator for T and returns reg for chaining.
// A later registration for the same type replaces the earlier one.
// The zero Registry is ready to use.
func Register[T any](reg *Registry, g Gen[T]) *Registry {
	if reg.gens == nil {
		reg.gens = map[reflect.Type]func(*rand.Rand, int) reflect.Value{}
	}
	reg.gens[reflect.TypeFor[T]()] = func(r *rand.Rand, size int) reflect.Value {
		v := g(r, size)
		// Elem keeps the static type, so interface types survive.
		return reflect.ValueOf(&v).Elem()
	}
	return reg
}

// Has reports whether a generator is registered for t.
func (reg *Registry) Has(t reflect.Type) bool {
	_, ok := reg.lookup(t)
	return ok
}

// Len returns the number of registered types.
func (reg *Registry) Len() int {
	if reg == nil {
		return 0
	}
	return len(reg.gens)
}

// lookup is nil-safe: a nil registry holds nothing.
func (reg *Registry) lookup(t reflect.Type) (func(*rand.Rand, int) reflect.Value, bool) {
	if reg == nil || reg.gens == nil {
		return nil, false
	}
	g, ok := reg.gens[t]
	return g, ok
}
