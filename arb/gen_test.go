package arb

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

//
// -----------------------------------------------------------------------------
// Random handles
// -----------------------------------------------------------------------------

// TestNewRand_SameSeedSameStream verifies seeded handles replay exactly.
func TestNewRand_SameSeedSameStream(t *testing.T) {
	t.Parallel()

	a, b := NewRand(99), NewRand(99)
	for range 100 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}

	c := NewRand(100)
	assert.NotEqual(t, NewRand(99).Uint64(), c.Uint64())
}

// TestFromSource_UsesGivenSource verifies the handle draws from src.
func TestFromSource_UsesGivenSource(t *testing.T) {
	t.Parallel()

	seed := [32]byte{1, 2, 3}
	a := FromSource(rand.NewChaCha8(seed))
	b := FromSource(rand.NewChaCha8(seed))
	assert.Equal(t, SliceOf(Int)(a, 20), SliceOf(Int)(b, 20))
}

//
// -----------------------------------------------------------------------------
// Combinators
// -----------------------------------------------------------------------------

// TestMap_TransformsValues verifies Map applies f to every draw at the caller's size.
func TestMap_TransformsValues(t *testing.T) {
	t.Parallel()

	lengths := Map(SliceOf(Unit), func(s []struct{}) string { return strconv.Itoa(len(s)) })
	r := NewRand(5)
	for range 200 {
		n, err := strconv.Atoi(lengths(r, 2))
		assert.NoError(t, err)
		assert.LessOrEqual(t, n, 32)
	}
	assert.Equal(t, "0", lengths(r, 0))
}

// TestSized_IgnoresCallerSize verifies Sized pins the size.
func TestSized_IgnoresCallerSize(t *testing.T) {
	t.Parallel()

	g := Sized(SliceOf(Int), 0)
	r := NewRand(6)
	for range 50 {
		assert.Empty(t, g(r, 1000))
	}
}

// TestOf_MatchesMethod verifies Of returns the type's own Arbitrary method.
func TestOf_MatchesMethod(t *testing.T) {
	t.Parallel()

	a, b := NewRand(8), NewRand(8)
	assert.Equal(t, SmallN(0).Arbitrary(a, 7), Of[SmallN]()(b, 7))
}

// TestNegativeSize_IsZero verifies negative sizes behave as zero.
func TestNegativeSize_IsZero(t *testing.T) {
	t.Parallel()

	r := NewRand(9)
	assert.Empty(t, SliceOf(Int)(r, -5))
	assert.Empty(t, Value[[]int](r, -5))
	assert.Len(t, NonEmptyOf(Int)(r, -5), 1)
}
