package arb

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Integers
// -----------------------------------------------------------------------------

// TestIntegers_IgnoreSize verifies primitives draw the same value regardless of size.
func TestIntegers_IgnoreSize(t *testing.T) {
	t.Parallel()

	a, b := NewRand(7), NewRand(7)
	for range 50 {
		assert.Equal(t, Int64(a, 0), Int64(b, 1_000_000))
	}
}

// TestInt8_CoversBothSigns verifies int8 draws reach negative and positive values.
func TestInt8_CoversBothSigns(t *testing.T) {
	t.Parallel()

	r := NewRand(8)
	var neg, pos bool
	for range 1000 {
		v := Int8(r, 0)
		neg = neg || v < 0
		pos = pos || v > 0
	}
	assert.True(t, neg)
	assert.True(t, pos)
}

// TestUint8_FullRange verifies every byte value shows up eventually.
func TestUint8_FullRange(t *testing.T) {
	t.Parallel()

	r := NewRand(9)
	seen := make(map[uint8]struct{})
	for range 20000 {
		seen[Uint8(r, 0)] = struct{}{}
	}
	assert.Len(t, seen, 256)
}

//
// -----------------------------------------------------------------------------
// Floats
// -----------------------------------------------------------------------------

// TestFloats_AlwaysFinite verifies NaN and infinities are never produced.
func TestFloats_AlwaysFinite(t *testing.T) {
	t.Parallel()

	r := NewRand(10)
	for range 10000 {
		f := Float64(r, 0)
		require.False(t, math.IsNaN(f))
		require.False(t, math.IsInf(f, 0))

		g := float64(Float32(r, 0))
		require.False(t, math.IsNaN(g))
		require.False(t, math.IsInf(g, 0))
	}
}

// TestComplex128_FiniteParts verifies both parts are finite.
func TestComplex128_FiniteParts(t *testing.T) {
	t.Parallel()

	r := NewRand(11)
	for range 1000 {
		c := Complex128(r, 0)
		require.False(t, math.IsNaN(real(c)) || math.IsNaN(imag(c)))
	}
}

//
// -----------------------------------------------------------------------------
// Char / Bool / Unit
// -----------------------------------------------------------------------------

// TestChar_ValidScalar verifies runes are valid and never surrogates.
func TestChar_ValidScalar(t *testing.T) {
	t.Parallel()

	r := NewRand(12)
	for range 100000 {
		c := Char(r, 0)
		require.True(t, utf8.ValidRune(c), "invalid rune %U", c)
	}
}

// TestBool_RoughlyFair verifies the coin is not biased far from 50/50.
func TestBool_RoughlyFair(t *testing.T) {
	t.Parallel()

	r := NewRand(13)
	heads := 0
	for range 10000 {
		if Bool(r, 0) {
			heads++
		}
	}
	assert.InDelta(t, 0.5, float64(heads)/10000, 0.03)
}

// TestUnit_ConsumesNoEntropy verifies Unit leaves the random stream untouched.
func TestUnit_ConsumesNoEntropy(t *testing.T) {
	t.Parallel()

	a, b := NewRand(14), NewRand(14)
	assert.Equal(t, struct{}{}, Unit(a, 3))
	assert.Equal(t, a.Uint64(), b.Uint64())
}
