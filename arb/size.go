package arb

import (
	"math"
	"math/rand/v2"
)

// growth is the hard ceiling on SmallCount, as a multiple of size.
const growth = 16

// SmallCount draws a bounded element count for variable-length generators.
//
// The count is an exponential sample (rate 1) scaled by size and truncated,
// then clamped to 16*size, saturating at math.MaxInt for huge sizes.
// A size of zero (or less) always yields zero.
func SmallCount(r *rand.Rand, size int) int {
	size = normSize(size)
	if size == 0 {
		return 0
	}
	limit := math.MaxInt
	if size <= math.MaxInt/growth {
		limit = growth * size
	}
	f := r.ExpFloat64() * float64(size)
	// compare in float space so huge samples never overflow int conversion
	if f >= float64(limit) {
		return limit
	}
	return int(f)
}

// SmallN is a small non-negative number, never above 16*size.
type SmallN uint

// Arbitrary implements [Arbitrary].
func (SmallN) Arbitrary(r *rand.Rand, size int) SmallN {
	return SmallN(SmallCount(r, size))
}
