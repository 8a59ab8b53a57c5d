package arb

import (
	"math/rand/v2"
	"reflect"
)

// randRand keeps probe generator literals short in tests.
type randRand = rand.Rand

func typeOf[T any]() reflect.Type { return reflect.TypeFor[T]() }
