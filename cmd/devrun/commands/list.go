package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the scripts of the detected project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := c.app.List(options(cmd))
			if err != nil {
				return c.fail(err)
			}
			c.printer(c.stdout).List(rep)
			return nil
		},
	}
}
