package arith

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/monads/pkg/monad"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Squared[N Number](x N) N {
	return x * x
}

func Doubled[N Number](x N) N {
	return x * 2
}

func Square[N Number](x N) monad.Maybe[N] {
	return monad.Just(Squared(x))
}

func Doubler[N Number](x N) monad.Maybe[N] {
	return monad.Just(Doubled(x))
}

// Sqrt returns Nothing for x < 0.
func Sqrt[N Number](x N) monad.Maybe[float64] {
	if x < 0 {
		return monad.Nothing[float64]()
	}
	return monad.Just(math.Sqrt(float64(x)))
}
