package version

import (
	"context"
	"dominicbreuker/hello/pkg/config"
	"fmt"

	"github.com/urfave/cli/v3"
)

var Version = "unknown"

func GetCommand() *cli.Command {
	return NewCommand(nil)
}

// NewCommand returns the version command printing to the stdout from deps.
func NewCommand(deps *config.Dependencies) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(config.GetStdoutFunc(deps)(), Version)
			return nil
		},
		Flags: []cli.Flag{},
	}
}
