// Package arb generates arbitrary values for property-based tests.
//
// Every generator has the shape of [Gen]: it takes an explicit random handle
// and a size, and returns a value. Size is a rough scale ("how large should
// collections be"), never a hard length. Generators compose:
//
//   - primitives (Bool, Int, Float64, Char, ...) ignore size entirely
//   - composites (SliceOf, MapOf, OptionOf, Tuple2Of, ...) generate each part
//     with the same size and only bound how many repeated parts they draw
//   - user types opt in by implementing [Arbitrary] on their value receiver
//
// Variable-length generators draw their element count from [SmallCount],
// an exponential sample scaled by size and clamped to 16*size. Most
// collections come out small, some come out large, none exceed the clamp.
//
// Quick guidance
//
// Use the typed combinators when you want compile-time composition:
//
//	orders := arb.SliceOf(arb.Of[Order]())
//	got := orders(r, 10)
//
// Use [Value] when you just want "some T" and T is built from supported kinds:
//
//	m := arb.Value[map[int8]bool](r, 5)
//
// Random handles are never shared implicitly. Build one per goroutine with
// [NewRand] (seeded, reproducible) or [FromSource].
//
// Import
//
//	"github.com/sghaida/arbitrary/arb"
package arb
