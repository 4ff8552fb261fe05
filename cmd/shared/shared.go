// Package shared provides CLI flag definitions used across hello's
// command-line interface.
package shared

import (
	"dominicbreuker/hello/pkg/config"
	"strings"

	"github.com/urfave/cli/v3"
)

const categoryGreet = "greet"

// CountFlag is the name of the flag setting how many greetings to print.
const CountFlag = "count"

// ColorFlag is the name of the flag controlling coloured output.
const ColorFlag = "color"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// GetGreetFlags returns the CLI flags of the greet command.
func GetGreetFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:     CountFlag,
			Aliases:  []string{"n"},
			Usage:    "Number of greetings to print",
			Category: categoryGreet,
			Value:    1,
			Required: false,
		},
		&cli.StringFlag{
			Name:     ColorFlag,
			Aliases:  []string{},
			Usage:    "Colour the greeting: " + strings.Join(colorModes(), "|"),
			Category: categoryGreet,
			Value:    string(config.ColorAuto),
			Required: false,
		},
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging",
			Category: categoryGreet,
			Value:    false,
			Required: false,
		},
	}
}

func colorModes() []string {
	return []string{
		string(config.ColorAuto),
		string(config.ColorAlways),
		string(config.ColorNever),
	}
}
