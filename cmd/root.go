package cmd

import (
	"github.com/urfave/cli/v3"
)

const debugFlag = "debug"

var metricsURLFlag = &cli.StringFlag{
	Name:  "metrics-url",
	Usage: "OTLP HTTP endpoint to push interaction metrics to (e.g. http://localhost:4318)",
}

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Usage:   "Path to the global config file",
}

func RootCommand() *cli.Command {
	return &cli.Command{
		Name:            "droplist",
		Usage:           "Pick one thing from a list, in your terminal",
		Description:     "A keyboard-driven dropdown selector.",
		HideHelpCommand: true,
		DefaultCommand:  "pick",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  debugFlag,
				Usage: "Enable debug output",
			},
		},
		Commands: []*cli.Command{
			PickCommand(),
			DemoCommand(),
		},
	}
}
