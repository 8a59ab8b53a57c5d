package arb

import (
	mathrand "math/rand"
	"math/rand/v2"

	fuzz "github.com/google/gofuzz"
)

// Random reuses a general-purpose fuzzer for T instead of a size-aware
// generator. Size is ignored.
type Random[T any] struct {
	Val T
}

// RandomOf returns the generator behind Random[T].
func RandomOf[T any]() Gen[Random[T]] {
	return Random[T]{}.Arbitrary
}

// Arbitrary implements [Arbitrary] by fuzzing a fresh T from r.
func (Random[T]) Arbitrary(r *rand.Rand, _ int) Random[T] {
	var v T
	fuzz.New().RandSource(fuzzSource{r: r}).Fuzz(&v)
	return Random[T]{Val: v}
}

// fuzzSource feeds a math/rand/v2 handle to code expecting a math/rand Source.
type fuzzSource struct {
	r *rand.Rand
}

var _ mathrand.Source64 = fuzzSource{}

func (fuzzSource) Seed(int64) {}

func (s fuzzSource) Int63() int64 {
	return s.r.Int64()
}

func (s fuzzSource) Uint64() uint64 {
	return s.r.Uint64()
}
