package main

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/monads/internal/logutil"
	"github.com/ib-77/monads/pkg/monad/arith"
	"github.com/ib-77/monads/pkg/monad/core"
	"github.com/ib-77/monads/pkg/monad/lite"
)

func evalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "run seeds through a chain of named steps",
		ArgsUsage: "[--] <seed> [seed...]",
		Description: fmt.Sprintf("Steps are applied left to right with Maybe semantics; available steps: %v.\n"+
			"Use -- before negative seeds.", arith.Names()),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "step",
				Aliases:  []string{"s"},
				Usage:    "append a `name`d step to the chain",
				Required: true,
				EnvVars:  []string{"MONADS_STEPS"},
			},
			&cli.IntFlag{
				Name:    "lines",
				Aliases: []string{"n"},
				Usage:   "number of worker lines (0: one per CPU)",
				EnvVars: []string{"MONADS_LINES"},
			},
		},
		Action: eval,
	}
}

func eval(c *cli.Context) error {
	logger := logutil.New(c)

	names := c.StringSlice("step")
	steps, err := arith.LookupAll(names...)
	if err != nil {
		return err
	}

	seeds, err := parseSeeds(c.Args().Slice())
	if err != nil {
		return err
	}

	ctx := core.WithWorkerOptions(core.WithLogger(c.Context, logger), runtime.NumCPU())
	logger.WithField("steps", names).
		WithField("seeds", len(seeds)).
		Debug("evaluating")

	results, err := lite.Collect(ctx, seeds, lite.Step[float64, float64](arith.Compose(steps...)), c.Int("lines"))
	if err != nil {
		return err
	}

	for i, r := range results {
		if _, err := fmt.Fprintf(c.App.Writer, "%s: %s\n", formatSeed(seeds[i]), render[float64](r)); err != nil {
			return err
		}
	}
	return nil
}

func parseSeeds(args []string) ([]float64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no seeds given")
	}

	seeds := make([]float64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", a, err)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}

func formatSeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
