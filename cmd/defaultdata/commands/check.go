package commands

import (
	"github.com/defaultdata/defaultdata/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [investigation]",
		Short: "Validate the data directory structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmd.Flags().GetString("dir")
			if err != nil {
				return err
			}

			var investigation string
			if len(args) > 0 {
				investigation = args[0]
			}

			return c.app.Check(cmd.Context(), app.CheckOptions{
				Dir:           dir,
				Investigation: investigation,
			})
		},
	}
}
