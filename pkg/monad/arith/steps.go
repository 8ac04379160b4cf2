package arith

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ib-77/monads/pkg/monad"
)

var ErrUnknownStep = errors.New("unknown step")

// Step is a named chain step over float64 values
type Step func(x float64) monad.Maybe[float64]

var steps = map[string]Step{
	"square":  Square[float64],
	"doubler": Doubler[float64],
	"sqrt":    Sqrt[float64],
}

func Lookup(name string) (Step, error) {
	s, ok := steps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, name)
	}
	return s, nil
}

// LookupAll resolves names in order, stopping at the first unknown one
func LookupAll(names ...string) ([]Step, error) {
	out := make([]Step, 0, len(names))
	for _, n := range names {
		s, err := Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func Names() []string {
	names := make([]string, 0, len(steps))
	for n := range steps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Compose binds steps left to right into a single step
func Compose(ss ...Step) Step {
	return func(x float64) monad.Maybe[float64] {
		m := monad.Just(x)
		for _, s := range ss {
			m = m.Bind(s)
		}
		return m
	}
}
