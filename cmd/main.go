package main

import (
	"context"
	"dominicbreuker/hello/cmd/greet"
	"dominicbreuker/hello/cmd/version"
	"dominicbreuker/hello/pkg/config"
	"dominicbreuker/hello/pkg/greeter"
	"dominicbreuker/hello/pkg/log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(nil).Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}

// newApp builds the root command. Without a subcommand it greets once.
func newApp(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "hello",
		Usage: "print a friendly greeting",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			greeter.New(deps).Greet()
			return nil
		},
		Commands: []*cli.Command{
			greet.NewCommand(deps),
			version.NewCommand(deps),
		},
	}
}
