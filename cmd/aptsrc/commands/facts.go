package commands

import "github.com/spf13/cobra"

func (c *CLI) newFactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "Print the host facts used for defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), c.app.Facts())
		},
	}
}
