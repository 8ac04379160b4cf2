package main

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/monads/internal/logutil"
	"github.com/ib-77/monads/pkg/monad"
	"github.com/ib-77/monads/pkg/monad/arith"
	"github.com/ib-77/monads/pkg/monad/chain"
	"github.com/ib-77/monads/pkg/monad/core"
)

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:   "demo",
		Usage:  "print the canonical Identity and Maybe chains (default)",
		Action: demo,
	}
}

func demo(c *cli.Context) error {
	ctx := core.WithLogger(c.Context, logutil.New(c))

	for _, line := range demoLines(ctx) {
		if _, err := fmt.Fprintln(c.App.Writer, line); err != nil {
			return err
		}
	}
	return nil
}

func demoLines(ctx context.Context) []string {
	// Identity(3) >>= square >>= doubler
	sm := monad.Of(3).
		Bind(monad.Unit(arith.Squared[int])).
		Bind(monad.Unit(arith.Doubled[int]))

	// Maybe(4) >>= square >>= doubler
	mm := chain.FromValue(ctx, 4).
		Bind(arith.Square[int]).
		Bind(arith.Doubler[int])

	// Maybe(5) >>= square >>= sqrt
	root := chain.Bind(chain.FromValue(ctx, 5).Bind(arith.Square[int]), arith.Sqrt[int])

	// Maybe(-3) >>= sqrt >>= doubler >>= doubler, ends absent without an error
	neg := chain.Bind(chain.FromValue(ctx, -3), arith.Sqrt[int]).
		Bind(arith.Doubler[float64]).
		Bind(arith.Doubler[float64])

	return []string{
		render[int](sm),
		render[int](mm.Result()),
		render[float64](root.Result()),
		render[float64](neg.Result()),
	}
}

func render[T any](v monad.ValueProvider[T]) string {
	if o, ok := v.(monad.Optional[T]); ok && !o.IsPresent() {
		return "absent"
	}

	switch x := any(v.Value()).(type) {
	case float64:
		return formatFloat(x)
	default:
		return fmt.Sprint(x)
	}
}

// formatFloat keeps at least one decimal so floats read as floats (5.0)
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
