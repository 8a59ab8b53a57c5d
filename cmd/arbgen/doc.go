// Command arbgen generates Arbitrary methods for struct types.
//
// A type opts into arb.Value and arb.Of by implementing
//
//	func (T) Arbitrary(r *rand.Rand, size int) T
//
// composing existing generators for its fields. For plain structs that method
// is boilerplate; arbgen writes it from a small spec that sits next to the type.
//
// There is no runtime registry and no reflection in the generated code path
// beyond what arb.Value does for each field type.
//
// Spec format (*.arb.yaml or *.arb.json)
//
//	package: shop
//	type: Order
//	fields:
//	  - name: ID
//	    type: uint64
//	  - name: Customer
//	    type: arb.Unicode
//	  - name: Lines
//	    gen: arb.NonEmptyOf(arb.Of[Line]())
//	partial: false
//
// Each field is generated either with arb.Value[<type>](r, size) or, when gen is
// set, with (<gen>)(r, size). Fields are generated in spec order, each with the
// caller's size.
//
// Checks performed before writing:
//
//   - package, type and at least one field are set; field names are unique
//   - the type is a non-generic struct declared in the output directory
//   - every spec field exists on the struct
//   - every struct field is listed, unless partial is true (unlisted fields stay zero)
//   - the type does not already declare an Arbitrary method in a non-generated file
//
// Typical go:generate usage
//
// Put this in the owner Go file (same package directory as the spec):
//
//	//go:generate go run ../../cmd/arbgen -spec ./specs/order.arb.yaml -out ./order_arb.gen.go
//
// Imports of the owner file are carried over when a field type or generator
// expression refers to them, so types like time.Duration resolve without
// extra configuration.
//
// Exit codes: 0 on success, 2 on usage errors, 1 when generation fails.
package main
