package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/devrun/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(c.stdout, "devrun version %s (commit %s, built %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
