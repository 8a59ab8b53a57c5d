package arb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fuzzed struct {
	Name  string
	Count int
	Tags  []string
	Attrs map[string]int
}

//
// -----------------------------------------------------------------------------
// Random
// -----------------------------------------------------------------------------

// TestRandom_SameSeedSameValue verifies the fuzzer is driven by the caller's handle.
func TestRandom_SameSeedSameValue(t *testing.T) {
	t.Parallel()

	a := Value[Random[fuzzed]](NewRand(70), 3)
	b := Value[Random[fuzzed]](NewRand(70), 3)
	assert.Equal(t, a, b)
}

// TestRandom_IgnoresSize verifies size has no effect on reused generation.
func TestRandom_IgnoresSize(t *testing.T) {
	t.Parallel()

	g := RandomOf[[]int]()
	assert.Equal(t, g(NewRand(71), 0), g(NewRand(71), 500))
}

// TestRandom_FillsValues verifies the fuzzer produces non-zero values over many draws.
func TestRandom_FillsValues(t *testing.T) {
	t.Parallel()

	r := NewRand(72)
	nonZero := false
	for range 20 {
		v := RandomOf[fuzzed]()(r, 0).Val
		if v.Count != 0 || v.Name != "" {
			nonZero = true
			break
		}
	}
	require.True(t, nonZero)
}

// TestFuzzSource_NonNegativeInt63 verifies the adapter honours the Int63 contract.
func TestFuzzSource_NonNegativeInt63(t *testing.T) {
	t.Parallel()

	src := fuzzSource{r: NewRand(73)}
	for range 1000 {
		require.GreaterOrEqual(t, src.Int63(), int64(0))
	}
}
