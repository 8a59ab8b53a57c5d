package arb

import (
	"math/rand/v2"
	"reflect"
)

// Option is a value that may be absent.
type Option[T any] struct {
	Value T
	Valid bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }

// None returns an absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }

// OptionOf flips a fair coin: heads generates the inner value, tails is None.
func OptionOf[T any](g Gen[T]) Gen[Option[T]] {
	return func(r *rand.Rand, size int) Option[T] {
		if Bool(r, size) {
			return Some(g(r, size))
		}
		return None[T]()
	}
}

// Arbitrary implements [Arbitrary], resolving T through [Value].
func (Option[T]) Arbitrary(r *rand.Rand, size int) Option[T] {
	return mustCompose[Option[T]](r, size)
}

func (Option[T]) resolveWith(rs resolver) (reflect.Value, error) {
	o := None[T]()
	if Bool(rs.r, rs.size) {
		v, err := resolveAs[T](rs)
		if err != nil {
			return reflect.Value{}, err
		}
		o = Some(v)
	}
	return reflect.ValueOf(o), nil
}

// Result holds either a success payload (OK) or a failure payload.
type Result[T, E any] struct {
	Value T
	Err   E
	OK    bool
}

// Ok returns a successful Result.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{Value: v, OK: true} }

// Fail returns a failed Result.
func Fail[T, E any](e E) Result[T, E] { return Result[T, E]{Err: e} }

// ResultOf flips a fair coin to pick the variant, then generates only that payload.
func ResultOf[T, E any](okGen Gen[T], errGen Gen[E]) Gen[Result[T, E]] {
	return func(r *rand.Rand, size int) Result[T, E] {
		if Bool(r, size) {
			return Ok[T, E](okGen(r, size))
		}
		return Fail[T](errGen(r, size))
	}
}

// Arbitrary implements [Arbitrary].
func (Result[T, E]) Arbitrary(r *rand.Rand, size int) Result[T, E] {
	return mustCompose[Result[T, E]](r, size)
}

func (Result[T, E]) resolveWith(rs resolver) (reflect.Value, error) {
	if Bool(rs.r, rs.size) {
		v, err := resolveAs[T](rs)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(Ok[T, E](v)), nil
	}
	e, err := resolveAs[E](rs)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(Fail[T](e)), nil
}

// BoxOf generates the inner value with the same size and returns a pointer to it.
func BoxOf[T any](g Gen[T]) Gen[*T] {
	return func(r *rand.Rand, size int) *T {
		v := g(r, size)
		return &v
	}
}
