package main

import (
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/sghaida/arbitrary/arb"
)

// point is the struct behind the random-point shape.
type point struct {
	X, Y  int16
	Label string
}

// shape is a named generator plus an optional measure used by stats.
type shape struct {
	desc string
	gen  func(r *rand.Rand, size int) any
	// measure returns a number summarising v (a length, or 1/0 for presence);
	// ok is false for shapes with nothing to measure.
	measure func(v any) (float64, bool)
}

// erase widens a typed generator to the shape signature.
func erase[T any](g arb.Gen[T]) func(*rand.Rand, int) any {
	return func(r *rand.Rand, size int) any { return g(r, size) }
}

func noMeasure(any) (float64, bool) { return 0, false }

func lenOf[T any](f func(T) int) func(any) (float64, bool) {
	return func(v any) (float64, bool) { return float64(f(v.(T))), true }
}

func presence[T any](f func(T) bool) func(any) (float64, bool) {
	return func(v any) (float64, bool) {
		if f(v.(T)) {
			return 1, true
		}
		return 0, true
	}
}

var shapes = map[string]shape{
	"bool":    {desc: "uniform bool", gen: erase(arb.Bool), measure: noMeasure},
	"int":     {desc: "uniform int", gen: erase(arb.Int), measure: noMeasure},
	"float64": {desc: "finite float64 over all bit patterns", gen: erase(arb.Float64), measure: noMeasure},
	"char":    {desc: "valid Unicode scalar value", gen: erase(arb.Char), measure: noMeasure},
	"smalln": {
		desc:    "SmallCount(size), at most 16*size",
		gen:     erase(arb.Of[arb.SmallN]()),
		measure: func(v any) (float64, bool) { return float64(v.(arb.SmallN)), true },
	},
	"string": {
		desc:    "SmallCount(size) code points",
		gen:     erase(arb.String),
		measure: lenOf(func(s string) int { return len([]rune(s)) }),
	},
	"unicode": {
		desc:    "multi-script sample text, at least SmallCount(size) bytes",
		gen:     erase(arb.Of[arb.Unicode]()),
		measure: lenOf(func(s arb.Unicode) int { return len(s) }),
	},
	"bytes": {
		desc:    "SmallCount(size) uniform bytes",
		gen:     erase(arb.Bytes),
		measure: lenOf(func(b []byte) int { return len(b) }),
	},
	"option-bool": {
		desc:    "optional bool, present on a fair coin",
		gen:     erase(arb.OptionOf(arb.Bool)),
		measure: presence(func(o arb.Option[bool]) bool { return o.Valid }),
	},
	"result-int-string": {
		desc:    "int on success, string on failure",
		gen:     erase(arb.ResultOf(arb.Int, arb.String)),
		measure: presence(func(res arb.Result[int, string]) bool { return res.OK }),
	},
	"slice-int": {
		desc:    "[]int of SmallCount(size) elements",
		gen:     erase(arb.SliceOf(arb.Int)),
		measure: lenOf(func(s []int) int { return len(s) }),
	},
	"nested-slice-int": {
		desc:    "[][]int, every level bounded by 16*size",
		gen:     erase(arb.SliceOf(arb.SliceOf(arb.Int))),
		measure: lenOf(func(s [][]int) int { return len(s) }),
	},
	"nonempty-int": {
		desc:    "[]int of 1+SmallCount(size) elements",
		gen:     erase(arb.NonEmptyOf(arb.Int)),
		measure: lenOf(func(s arb.NonEmpty[int]) int { return len(s) }),
	},
	"map-int8-bool": {
		desc:    "map[int8]bool after SmallCount(size) insertions",
		gen:     erase(arb.MapOf(arb.Int8, arb.Bool)),
		measure: lenOf(func(m map[int8]bool) int { return len(m) }),
	},
	"tuple-int-string": {
		desc:    "(int, string) drawn independently",
		gen:     erase(arb.Tuple2Of(arb.Int, arb.String)),
		measure: noMeasure,
	},
	"random-point": {
		desc:    "struct filled by the reuse fuzzer, size ignored",
		gen:     erase(arb.Map(arb.RandomOf[point](), func(p arb.Random[point]) point { return p.Val })),
		measure: noMeasure,
	},
}

// shapeNames lists shapes in stable order.
func shapeNames() []string {
	return slices.Sorted(maps.Keys(shapes))
}

func knownShape(name string) bool {
	_, ok := shapes[name]
	return ok
}
