package arb

import (
	"math"
	"math/rand/v2"
	"unicode/utf8"
)

// Primitive generators ignore size and draw over the type's full range.

// Bool flips a fair coin.
func Bool(r *rand.Rand, _ int) bool { return r.Uint64()&1 == 1 }

// Int draws any int.
func Int(r *rand.Rand, _ int) int { return int(r.Uint64()) }

// Int8 draws any int8.
func Int8(r *rand.Rand, _ int) int8 { return int8(r.Uint64()) }

// Int16 draws any int16.
func Int16(r *rand.Rand, _ int) int16 { return int16(r.Uint64()) }

// Int32 draws any int32.
func Int32(r *rand.Rand, _ int) int32 { return int32(r.Uint64()) }

// Int64 draws any int64.
func Int64(r *rand.Rand, _ int) int64 { return int64(r.Uint64()) }

// Uint draws any uint.
func Uint(r *rand.Rand, _ int) uint { return uint(r.Uint64()) }

// Uint8 draws any byte.
func Uint8(r *rand.Rand, _ int) uint8 { return uint8(r.Uint64()) }

// Uint16 draws any uint16.
func Uint16(r *rand.Rand, _ int) uint16 { return uint16(r.Uint64()) }

// Uint32 draws any uint32.
func Uint32(r *rand.Rand, _ int) uint32 { return r.Uint32() }

// Uint64 draws any uint64.
func Uint64(r *rand.Rand, _ int) uint64 { return r.Uint64() }

// Uintptr draws any uintptr; it is not a valid address.
func Uintptr(r *rand.Rand, _ int) uintptr { return uintptr(r.Uint64()) }

// Float64 draws a finite float64 uniformly over bit patterns.
// NaN and ±Inf are redrawn so values compare equal to themselves.
func Float64(r *rand.Rand, _ int) float64 {
	for {
		f := math.Float64frombits(r.Uint64())
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
}

// Float32 is the float32 counterpart of [Float64].
func Float32(r *rand.Rand, _ int) float32 {
	for {
		f := math.Float32frombits(r.Uint32())
		f64 := float64(f)
		if !math.IsNaN(f64) && !math.IsInf(f64, 0) {
			return f
		}
	}
}

// Complex64 draws finite real and imaginary parts with [Float32].
func Complex64(r *rand.Rand, size int) complex64 {
	return complex(Float32(r, size), Float32(r, size))
}

// Complex128 draws finite real and imaginary parts with [Float64].
func Complex128(r *rand.Rand, size int) complex128 {
	return complex(Float64(r, size), Float64(r, size))
}

// surrogates is the number of UTF-16 surrogate code points, which are not
// valid scalar values.
const surrogates = 0xE000 - 0xD800

// Char draws a valid Unicode scalar value uniformly.
func Char(r *rand.Rand, _ int) rune {
	c := rune(r.IntN(utf8.MaxRune + 1 - surrogates))
	if c >= 0xD800 {
		c += surrogates
	}
	return c
}

// Unit returns the empty struct; it consumes no entropy.
func Unit(*rand.Rand, int) struct{} { return struct{}{} }
