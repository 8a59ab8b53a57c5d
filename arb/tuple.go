package arb

import (
	"math/rand/v2"
	"reflect"
)

// Tuples generate every component independently, in order, with the same size.

// Tuple2 is an ordered pair.
type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Tuple3 holds 3 ordered components.
type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Tuple4 holds 4 ordered components.
type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Tuple5 holds 5 ordered components.
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Tuple6 holds 6 ordered components.
type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// Tuple2Of combines 2 generators into a Tuple2 generator.
func Tuple2Of[T1, T2 any](g1 Gen[T1], g2 Gen[T2]) Gen[Tuple2[T1, T2]] {
	return func(r *rand.Rand, size int) Tuple2[T1, T2] {
		return Tuple2[T1, T2]{V1: g1(r, size), V2: g2(r, size)}
	}
}

// Tuple3Of combines 3 generators into a Tuple3 generator.
func Tuple3Of[T1, T2, T3 any](g1 Gen[T1], g2 Gen[T2], g3 Gen[T3]) Gen[Tuple3[T1, T2, T3]] {
	return func(r *rand.Rand, size int) Tuple3[T1, T2, T3] {
		return Tuple3[T1, T2, T3]{V1: g1(r, size), V2: g2(r, size), V3: g3(r, size)}
	}
}

// Tuple4Of combines 4 generators into a Tuple4 generator.
func Tuple4Of[T1, T2, T3, T4 any](g1 Gen[T1], g2 Gen[T2], g3 Gen[T3], g4 Gen[T4]) Gen[Tuple4[T1, T2, T3, T4]] {
	return func(r *rand.Rand, size int) Tuple4[T1, T2, T3, T4] {
		return Tuple4[T1, T2, T3, T4]{
			V1: g1(r, size),
			V2: g2(r, size),
			V3: g3(r, size),
			V4: g4(r, size),
		}
	}
}

// Tuple5Of combines 5 generators into a Tuple5 generator.
func Tuple5Of[T1, T2, T3, T4, T5 any](
	g1 Gen[T1], g2 Gen[T2], g3 Gen[T3], g4 Gen[T4], g5 Gen[T5],
) Gen[Tuple5[T1, T2, T3, T4, T5]] {
	return func(r *rand.Rand, size int) Tuple5[T1, T2, T3, T4, T5] {
		return Tuple5[T1, T2, T3, T4, T5]{
			V1: g1(r, size),
			V2: g2(r, size),
			V3: g3(r, size),
			V4: g4(r, size),
			V5: g5(r, size),
		}
	}
}

// Tuple6Of combines 6 generators into a Tuple6 generator.
func Tuple6Of[T1, T2, T3, T4, T5, T6 any](
	g1 Gen[T1], g2 Gen[T2], g3 Gen[T3], g4 Gen[T4], g5 Gen[T5], g6 Gen[T6],
) Gen[Tuple6[T1, T2, T3, T4, T5, T6]] {
	return func(r *rand.Rand, size int) Tuple6[T1, T2, T3, T4, T5, T6] {
		return Tuple6[T1, T2, T3, T4, T5, T6]{
			V1: g1(r, size),
			V2: g2(r, size),
			V3: g3(r, size),
			V4: g4(r, size),
			V5: g5(r, size),
			V6: g6(r, size),
		}
	}
}

// Arbitrary implements [Arbitrary], resolving each component through [Value].
func (Tuple2[T1, T2]) Arbitrary(r *rand.Rand, size int) Tuple2[T1, T2] {
	return mustCompose[Tuple2[T1, T2]](r, size)
}

func (tp Tuple2[T1, T2]) resolveWith(rs resolver) (reflect.Value, error) {
	return rs.fields(reflect.TypeOf(tp))
}

// Arbitrary implements [Arbitrary].
func (Tuple3[T1, T2, T3]) Arbitrary(r *rand.Rand, size int) Tuple3[T1, T2, T3] {
	return mustCompose[Tuple3[T1, T2, T3]](r, size)
}

func (tp Tuple3[T1, T2, T3]) resolveWith(rs resolver) (reflect.Value, error) {
	return rs.fields(reflect.TypeOf(tp))
}

// Arbitrary implements [Arbitrary].
func (Tuple4[T1, T2, T3, T4]) Arbitrary(r *rand.Rand, size int) Tuple4[T1, T2, T3, T4] {
	return mustCompose[Tuple4[T1, T2, T3, T4]](r, size)
}

func (tp Tuple4[T1, T2, T3, T4]) resolveWith(rs resolver) (reflect.Value, error) {
	return rs.fields(reflect.TypeOf(tp))
}

// Arbitrary implements [Arbitrary].
func (Tuple5[T1, T2, T3, T4, T5]) Arbitrary(r *rand.Rand, size int) Tuple5[T1, T2, T3, T4, T5] {
	return mustCompose[Tuple5[T1, T2, T3, T4, T5]](r, size)
}

func (tp Tuple5[T1, T2, T3, T4, T5]) resolveWith(rs resolver) (reflect.Value, error) {
	return rs.fields(reflect.TypeOf(tp))
}

// Arbitrary implements [Arbitrary].
func (Tuple6[T1, T2, T3, T4, T5, T6]) Arbitrary(r *rand.Rand, size int) Tuple6[T1, T2, T3, T4, T5, T6] {
	return mustCompose[Tuple6[T1, T2, T3, T4, T5, T6]](r, size)
}

func (tp Tuple6[T1, T2, T3, T4, T5, T6]) resolveWith(rs resolver) (reflect.Value, error) {
	return rs.fields(reflect.TypeOf(tp))
}
