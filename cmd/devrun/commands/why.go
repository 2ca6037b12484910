package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWhyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "why",
		Short: "Explain which runner is used and why",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := c.app.Why(options(cmd))
			if err != nil {
				return c.fail(err)
			}
			c.printer(c.stdout).Why(rep)
			return nil
		},
	}
}
