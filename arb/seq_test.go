package arb

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// SliceOf
// -----------------------------------------------------------------------------

// TestSliceOf_ZeroSizeEmpty verifies size 0 always yields an empty slice.
func TestSliceOf_ZeroSizeEmpty(t *testing.T) {
	t.Parallel()

	r := NewRand(30)
	for range 100 {
		assert.Empty(t, SliceOf(Int)(r, 0))
	}
}

// TestSliceOf_NestedTerminates verifies [][]int at size 10 stays within 160 per level.
func TestSliceOf_NestedTerminates(t *testing.T) {
	t.Parallel()

	r := NewRand(31)
	g := SliceOf(SliceOf(Int))
	for range 50 {
		outer := g(r, 10)
		require.LessOrEqual(t, len(outer), 160)
		for _, inner := range outer {
			require.LessOrEqual(t, len(inner), 160)
		}
	}
}

// TestSliceOf_ElementsKeepSize verifies elements see the caller's size, not size/n.
func TestSliceOf_ElementsKeepSize(t *testing.T) {
	t.Parallel()

	var sizes []int
	probe := func(_ *randRand, size int) int {
		sizes = append(sizes, size)
		return size
	}

	r := NewRand(32)
	for len(sizes) == 0 {
		SliceOf(probe)(r, 7)
	}
	for _, s := range sizes {
		assert.Equal(t, 7, s)
	}
}

//
// -----------------------------------------------------------------------------
// NonEmptyOf
// -----------------------------------------------------------------------------

// TestNonEmpty_AtLeastOne verifies non-empty slices have length >= 1 for every size.
func TestNonEmpty_AtLeastOne(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)
	properties.Property("non-empty has len >= 1", prop.ForAll(
		func(size int, seed uint64) bool {
			ne := NonEmptyOf(Bool)(NewRand(seed), size)
			return len(ne) >= 1 && len(ne) <= 1+16*size
		},
		gen.IntRange(0, 200),
		gen.UInt64(),
	))
	properties.TestingRun(t)
}

// TestNonEmpty_ZeroSizeSingle verifies size 0 yields exactly one element.
func TestNonEmpty_ZeroSizeSingle(t *testing.T) {
	t.Parallel()

	r := NewRand(33)
	for range 50 {
		assert.Len(t, Value[NonEmpty[string]](r, 0), 1)
	}
}

//
// -----------------------------------------------------------------------------
// MapOf
// -----------------------------------------------------------------------------

// TestMapOf_SmallIntsToBools verifies map[int8]bool at size 5 holds at most 80 entries.
// Go maps cannot hold duplicate keys, so uniqueness is checked by re-counting.
func TestMapOf_SmallIntsToBools(t *testing.T) {
	t.Parallel()

	r := NewRand(34)
	g := MapOf(Int8, Bool)
	for range 500 {
		m := g(r, 5)
		require.LessOrEqual(t, len(m), 80)

		seen := make(map[int8]int, len(m))
		for k := range m {
			seen[k]++
		}
		for k, c := range seen {
			require.Equal(t, 1, c, "duplicate key %d", k)
		}
	}
}

// TestMapOf_DuplicatesOverwrite verifies colliding keys collapse into one entry.
func TestMapOf_DuplicatesOverwrite(t *testing.T) {
	t.Parallel()

	r := NewRand(35)
	constKey := func(*randRand, int) string { return "k" }

	sawEntry := false
	for range 100 {
		m := MapOf(constKey, Int)(r, 10)
		require.LessOrEqual(t, len(m), 1)
		sawEntry = sawEntry || len(m) == 1
	}
	assert.True(t, sawEntry)
}

// TestMapOf_ZeroSizeEmpty verifies size 0 yields an empty, non-nil map.
func TestMapOf_ZeroSizeEmpty(t *testing.T) {
	t.Parallel()

	m := MapOf(Int, Int)(NewRand(36), 0)
	require.NotNil(t, m)
	assert.Empty(t, m)
}
