package main

import (
	"os"

	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func globalFlags() []cli.Flag {
	return []cli.Flag{
		// Logging
		&cli.StringFlag{
			Name:    "logfmt",
			Aliases: []string{"f"},
			Usage:   "`format` logs as text, json or none",
			Value:   "text",
			EnvVars: []string{"MONADS_LOGFMT"},
		},
		&cli.StringFlag{
			Name:    "loglvl",
			Usage:   "set logging `level` to trace, debug, info, warn, error or fatal",
			Value:   "info",
			EnvVars: []string{"MONADS_LOGLVL"},
		},
		// Misc.
		&cli.BoolFlag{
			Name:    "prettyprint",
			Aliases: []string{"pp"},
			Usage:   "pretty-print JSON output",
			Hidden:  true,
		},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "monads",
		Usage:     "chain computations through Identity and Maybe wrappers",
		UsageText: "monads [global options] [command [command options] [arguments...]]",
		Version:   version,
		Flags:     globalFlags(),
		Action:    demo,
		Commands: []*cli.Command{
			demoCommand(),
			evalCommand(),
		},
		Metadata: map[string]interface{}{
			"version": version,
		},
	}
}

func main() {
	run(newApp())
}

func run(app *cli.App) {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
