package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/aptsrc/internal/ui/style"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Write the declared sources and remove absent ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Apply(cmd.Context(), c.file)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Changed) == 0 {
				_, _ = fmt.Fprintf(out, "%s sources up to date\n", style.Check)
				return nil
			}
			for _, name := range result.Changed {
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Tilde, name)
			}
			if result.RefreshCache {
				_, _ = fmt.Fprintf(out, "%s package index refresh required\n", style.Warning)
			}
			return nil
		},
	}
}
