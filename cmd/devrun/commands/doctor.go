package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the detected runners are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := c.app.Doctor(cmd.Context(), options(cmd))
			if err != nil {
				return c.fail(err)
			}
			c.printer(c.stdout).Doctor(rep)
			return nil
		},
	}
}
