package arb

import (
	"math/rand/v2"
)

// Gen produces an arbitrary value of T scaled by size.
//
// Primitive generators in this package are plain functions with this
// signature, so they can be passed wherever a Gen is expected.
type Gen[T any] func(r *rand.Rand, size int) T

// Arbitrary is implemented by types that can generate themselves.
//
// The receiver carries no state; implementations are typically declared on the
// value receiver and compose existing generators for their fields:
//
//	func (Point) Arbitrary(r *rand.Rand, size int) Point {
//		return Point{X: arb.Int(r, size), Y: arb.Int(r, size)}
//	}
type Arbitrary[T any] interface {
	Arbitrary(r *rand.Rand, size int) T
}

// Of returns the generator of a self-generating type.
func Of[T Arbitrary[T]]() Gen[T] {
	var zero T
	return zero.Arbitrary
}

// Map derives a generator by transforming the values of g.
func Map[T, U any](g Gen[T], f func(T) U) Gen[U] {
	return func(r *rand.Rand, size int) U {
		return f(g(r, size))
	}
}

// Sized fixes the size passed to g, ignoring the caller's size.
func Sized[T any](g Gen[T], size int) Gen[T] {
	return func(r *rand.Rand, _ int) T {
		return g(r, size)
	}
}

// NewRand returns a random handle seeded deterministically from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FromSource wraps an existing uniform bit source.
//
// Any type with a Uint64 method qualifies, including a math/rand (v1) *Rand.
func FromSource(src rand.Source) *rand.Rand {
	return rand.New(src)
}

// normSize maps negative sizes to zero.
func normSize(size int) int {
	if size < 0 {
		return 0
	}
	return size
}
