package arb

import (
	"math/rand/v2"
	"reflect"
)

// repeat generates n values of g, each with the same size.
func repeat[T any](r *rand.Rand, size, n int, g Gen[T]) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = g(r, size)
	}
	return out
}

// SliceOf generates SmallCount(size) elements, each at the full size.
func SliceOf[T any](g Gen[T]) Gen[[]T] {
	return func(r *rand.Rand, size int) []T {
		return repeat(r, size, SmallCount(r, size), g)
	}
}

// NonEmpty is a slice that always holds at least one element.
type NonEmpty[T any] []T

// NonEmptyOf generates 1+SmallCount(size) elements.
func NonEmptyOf[T any](g Gen[T]) Gen[NonEmpty[T]] {
	return func(r *rand.Rand, size int) NonEmpty[T] {
		return repeat(r, size, 1+SmallCount(r, size), g)
	}
}

// Arbitrary implements [Arbitrary].
func (NonEmpty[T]) Arbitrary(r *rand.Rand, size int) NonEmpty[T] {
	return mustCompose[NonEmpty[T]](r, size)
}

func (NonEmpty[T]) resolveWith(rs resolver) (reflect.Value, error) {
	out := make(NonEmpty[T], 1+SmallCount(rs.r, rs.size))
	for i := range out {
		v, err := resolveAs[T](rs)
		if err != nil {
			return reflect.Value{}, err
		}
		out[i] = v
	}
	return reflect.ValueOf(out), nil
}

// MapOf performs SmallCount(size) insertions of generated key/value pairs.
// A later duplicate key overwrites the earlier value, so the map may end up
// with fewer entries than insertions.
func MapOf[K comparable, V any](kg Gen[K], vg Gen[V]) Gen[map[K]V] {
	return func(r *rand.Rand, size int) map[K]V {
		n := SmallCount(r, size)
		m := make(map[K]V, n)
		for range n {
			k := kg(r, size)
			m[k] = vg(r, size)
		}
		return m
	}
}
