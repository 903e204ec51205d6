package commands

import (
	"github.com/defaultdata/defaultdata/internal/app"
	"github.com/defaultdata/defaultdata/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "package [investigation]",
		Short: "Validate and write the datapackage.json descriptor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cmd.Flags().GetString("dir")
			if err != nil {
				return err
			}

			output, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}

			var investigation string
			if len(args) > 0 {
				investigation = args[0]
			}

			return c.app.Package(cmd.Context(), app.PackageOptions{
				Dir:           dir,
				Investigation: investigation,
				Output:        output,
			})
		},
	}
	cmd.Flags().StringP("output", "o", domain.DefaultDescriptorFile, "Descriptor output path")
	return cmd
}
