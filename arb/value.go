package arb

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"strconv"
)

// ErrUnsupportedType is matched (via errors.Is) by every UnsupportedTypeError.
var ErrUnsupportedType = errors.New("arb: unsupported type")

// UnsupportedTypeError is returned when reflective dispatch reaches a type it
// cannot generate: channels, functions, unsafe pointers and unregistered
// interfaces.
type UnsupportedTypeError struct {
	// Type is reflect.Type.String() of the offending type.
	Type string
}

// Error implements the error interface.
func (e UnsupportedTypeError) Error() string {
	// Example: arb: unsupported type "chan int"
	return "arb: unsupported type " + strconv.Quote(e.Type)
}

// Is makes errors.Is(err, ErrUnsupportedType) hold.
func (e UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Value returns an arbitrary T, scaled by size.
//
// T resolves, in order, through its Arbitrary method (value or pointer
// receiver) and then through the kind rules described on [Resolve].
// Value panics with an [UnsupportedTypeError] when T cannot be generated.
// Pointers are never nil, so a type that reaches itself only through
// pointers recurses without bound; break such cycles with Option, a
// slice, a map or a registered generator.
func Value[T any](r *rand.Rand, size int) T {
	return MustResolve[T](nil, r, size)
}

// TryValue is [Value] returning the error instead of panicking.
func TryValue[T any](r *rand.Rand, size int) (T, error) {
	return Resolve[T](nil, r, size)
}

// Resolve returns an arbitrary T, consulting reg first.
//
// At every nesting level the first match wins:
//   - a generator registered in reg for the exact type
//   - an Arbitrary(*rand.Rand, int) T method on the type
//   - the kind rules: primitives, string (String), slice (SliceOf),
//     array (each element), map (MapOf), pointer (BoxOf) and struct
//     (each exported field in order; unexported fields stay zero)
//
// The wrapper types (Option, Result, NonEmpty, TupleN) resolve their parts
// with reg and return unsupported parts as errors. Other Arbitrary methods
// resolve their own parts and do not see reg. A nil reg is an empty registry.
func Resolve[T any](reg *Registry, r *rand.Rand, size int) (T, error) {
	var out T
	t := reflect.TypeFor[T]()
	if _, wrapper := asComposite(t); !wrapper && !reg.Has(t) {
		if a, ok := any(out).(Arbitrary[T]); ok {
			return a.Arbitrary(r, size), nil
		}
		if a, ok := any(&out).(Arbitrary[T]); ok {
			return a.Arbitrary(r, size), nil
		}
	}
	return resolveAs[T](resolver{reg: reg, r: r, size: normSize(size)})
}

// MustResolve is [Resolve] that panics on error.
func MustResolve[T any](reg *Registry, r *rand.Rand, size int) T {
	v, err := Resolve[T](reg, r, size)
	if err != nil {
		panic(err)
	}
	return v
}

var (
	randPtrType = reflect.TypeFor[*rand.Rand]()
	intType     = reflect.TypeFor[int]()
)

type resolver struct {
	reg  *Registry
	r    *rand.Rand
	size int
}

// composite is implemented by the arb wrapper types. Dispatch prefers it over
// their Arbitrary methods so parts see the caller's registry and report
// unsupported types as errors instead of panicking.
type composite interface {
	resolveWith(rs resolver) (reflect.Value, error)
}

// resolveAs resolves T through rs.
func resolveAs[T any](rs resolver) (T, error) {
	var out T
	v, err := rs.value(reflect.TypeFor[T]())
	if err != nil {
		return out, err
	}
	reflect.ValueOf(&out).Elem().Set(v)
	return out, nil
}

// mustCompose backs the Arbitrary methods of the wrapper types.
func mustCompose[T composite](r *rand.Rand, size int) T {
	var zero T
	v, err := zero.resolveWith(resolver{r: r, size: normSize(size)})
	if err != nil {
		panic(err)
	}
	return v.Interface().(T)
}

func (rs resolver) value(t reflect.Type) (reflect.Value, error) {
	if g, ok := rs.reg.lookup(t); ok {
		return g(rs.r, rs.size), nil
	}
	if c, ok := asComposite(t); ok {
		return c.resolveWith(rs)
	}
	if m, ok := arbitraryMethod(t); ok {
		return m.Call([]reflect.Value{reflect.ValueOf(rs.r), reflect.ValueOf(rs.size)})[0], nil
	}

	r, size := rs.r, rs.size
	switch t.Kind() {
	case reflect.Bool:
		return reflect.ValueOf(Bool(r, size)).Convert(t), nil
	case reflect.Int:
		return reflect.ValueOf(Int(r, size)).Convert(t), nil
	case reflect.Int8:
		return reflect.ValueOf(Int8(r, size)).Convert(t), nil
	case reflect.Int16:
		return reflect.ValueOf(Int16(r, size)).Convert(t), nil
	case reflect.Int32:
		return reflect.ValueOf(Int32(r, size)).Convert(t), nil
	case reflect.Int64:
		return reflect.ValueOf(Int64(r, size)).Convert(t), nil
	case reflect.Uint:
		return reflect.ValueOf(Uint(r, size)).Convert(t), nil
	case reflect.Uint8:
		return reflect.ValueOf(Uint8(r, size)).Convert(t), nil
	case reflect.Uint16:
		return reflect.ValueOf(Uint16(r, size)).Convert(t), nil
	case reflect.Uint32:
		return reflect.ValueOf(Uint32(r, size)).Convert(t), nil
	case reflect.Uint64:
		return reflect.ValueOf(Uint64(r, size)).Convert(t), nil
	case reflect.Uintptr:
		return reflect.ValueOf(Uintptr(r, size)).Convert(t), nil
	case reflect.Float32:
		return reflect.ValueOf(Float32(r, size)).Convert(t), nil
	case reflect.Float64:
		return reflect.ValueOf(Float64(r, size)).Convert(t), nil
	case reflect.Complex64:
		return reflect.ValueOf(Complex64(r, size)).Convert(t), nil
	case reflect.Complex128:
		return reflect.ValueOf(Complex128(r, size)).Convert(t), nil
	case reflect.String:
		return reflect.ValueOf(String(r, size)).Convert(t), nil

	case reflect.Slice:
		n := SmallCount(r, size)
		out := reflect.MakeSlice(t, n, n)
		for i := range n {
			ev, err := rs.value(t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil

	case reflect.Array:
		out := reflect.New(t).Elem()
		for i := range t.Len() {
			ev, err := rs.value(t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.Index(i).Set(ev)
		}
		return out, nil

	case reflect.Map:
		n := SmallCount(r, size)
		out := reflect.MakeMapWithSize(t, n)
		for range n {
			kv, err := rs.value(t.Key())
			if err != nil {
				return reflect.Value{}, err
			}
			vv, err := rs.value(t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out.SetMapIndex(kv, vv)
		}
		return out, nil

	case reflect.Pointer:
		ev, err := rs.value(t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(t.Elem())
		out.Elem().Set(ev)
		return out, nil

	case reflect.Struct:
		return rs.fields(t)
	}

	return reflect.Value{}, UnsupportedTypeError{Type: t.String()}
}

// fields fills every exported field of struct type t in declaration order.
func (rs resolver) fields(t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv, err := rs.value(f.Type)
		if err != nil {
			return reflect.Value{}, err
		}
		out.Field(i).Set(fv)
	}
	return out, nil
}

// asComposite reports whether t is itself a wrapper type. Wrappers are
// structs or slices. Pointers to wrappers and structs embedding one carry the
// method as well; wrapper structs never embed, so any anonymous field rules
// t out.
func asComposite(t reflect.Type) (composite, bool) {
	switch t.Kind() {
	case reflect.Slice:
	case reflect.Struct:
		for i := range t.NumField() {
			if t.Field(i).Anonymous {
				return nil, false
			}
		}
	default:
		return nil, false
	}
	c, ok := reflect.Zero(t).Interface().(composite)
	return c, ok
}

// arbitraryMethod finds an Arbitrary(*rand.Rand, int) t method callable on a
// zero t (value receiver) or on a pointer to a zero t (pointer receiver).
func arbitraryMethod(t reflect.Type) (reflect.Value, bool) {
	if t.Kind() == reflect.Interface {
		return reflect.Value{}, false
	}
	candidates := []reflect.Value{reflect.New(t)}
	if t.Kind() == reflect.Pointer {
		candidates = append(candidates, reflect.Zero(t))
	}
	for _, recv := range candidates {
		m := recv.MethodByName("Arbitrary")
		if !m.IsValid() {
			continue
		}
		mt := m.Type()
		if mt.NumIn() == 2 && mt.In(0) == randPtrType && mt.In(1) == intType &&
			mt.NumOut() == 1 && mt.Out(0) == t {
			return m, true
		}
	}
	return reflect.Value{}, false
}
