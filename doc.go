// Package arbitrary is the root of a small toolkit for generating arbitrary,
// size-scaled values in property-based tests.
//
// The library lives in arb. The rest of the repository supports it:
//
//   - arb: generators, combinators, reflective Value and the gopter bridge
//   - cmd/arbgen: generates Arbitrary methods for struct types from a JSON/YAML spec
//   - cmd/arbsample: samples and summarises generator output from the command line
//   - examples/shop: an order model wired through arbgen
//
// Start with the arb package documentation.
package arbitrary
