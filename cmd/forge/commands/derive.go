package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDeriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [targets...]",
		Short: "Derive build rules for the specified targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			platform, _ := cmd.Flags().GetString("platform")
			return c.app.Run(cmd.Context(), args, platform)
		},
	}
	cmd.Flags().StringP("platform", "p", "", "Platform flavor to derive against (defaults to the catalog default)")
	return cmd
}
