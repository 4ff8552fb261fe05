// Package greet implements the greet command, which prints the greeting
// one or more times.
package greet

import (
	"context"
	"dominicbreuker/hello/cmd/shared"
	"dominicbreuker/hello/pkg/config"
	"dominicbreuker/hello/pkg/greeter"
	"dominicbreuker/hello/pkg/log"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
)

// GetCommand returns the CLI command for greeting.
func GetCommand() *cli.Command {
	return NewCommand(nil)
}

// NewCommand returns the greet command writing through deps.
func NewCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "greet",
		Usage: "Print the greeting",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if args := cmd.Args(); args.Len() != 0 {
				return fmt.Errorf("greet takes no arguments, got %d (%s)", args.Len(), strings.Join(args.Slice(), ", "))
			}

			cfg := &config.Config{
				Count:   int(cmd.Int(shared.CountFlag)),
				Color:   config.ColorMode(cmd.String(shared.ColorFlag)),
				Verbose: cmd.Bool(shared.VerboseFlag),
			}

			return Run(ctx, cfg, deps)
		},
		Flags: shared.GetGreetFlags(),
	}
}

// Run validates cfg and prints cfg.Count greetings.
func Run(ctx context.Context, cfg *config.Config, deps *config.Dependencies) error {
	logger := log.New(config.GetStderrFunc(deps)(), cfg.Verbose)

	if errors := cfg.Validate(); len(errors) > 0 {
		logger.Errorf("Argument validation errors:\n")
		for _, err := range errors {
			logger.Errorf(" - %s\n", err)
		}
		return fmt.Errorf("exiting")
	}

	mode, _ := config.ParseColorMode(string(cfg.Color))
	g := greeter.New(deps, greeter.WithColor(mode))

	logger.Verbosef("Greeting %d time(s), color=%s\n", cfg.Count, mode)
	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("greeting interrupted after %d of %d: %w", i, cfg.Count, err)
		}
		g.Greet()
	}

	return nil
}
