package arb

import (
	"math/rand/v2"

	"github.com/leanovate/gopter"
)

// Gopter adapts g to a gopter generator so it can drive prop.ForAll.
//
// GenParameters.MaxSize becomes the size and GenParameters.Rng the bit source.
// Values are never shrunk.
func Gopter[T any](g Gen[T]) gopter.Gen {
	return func(params *gopter.GenParameters) *gopter.GenResult {
		r := rand.New(params.Rng)
		return gopter.NewGenResult(g(r, params.MaxSize), gopter.NoShrinker)
	}
}

// GopterOf adapts [Value] for T.
func GopterOf[T any]() gopter.Gen {
	return Gopter(Value[T])
}
