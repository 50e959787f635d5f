package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/zerr"
)

// stdinPath selects standard input for an output flag.
const stdinPath = "-"

func (c *CLI) newUpgradesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "upgrades",
		Short: "Summarize simulated apt-get upgrade and dist-upgrade output",
		Long: "Reads the output of `apt-get -s -o Debug::NoLocking=true upgrade` and, optionally,\n" +
			"of the matching dist-upgrade run, and prints the pending updates as JSON.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			upgradePath, _ := cmd.Flags().GetString("upgrade-output")
			distPath, _ := cmd.Flags().GetString("dist-output")

			upgrade, closeUpgrade, err := openOutput(cmd, upgradePath)
			if err != nil {
				return err
			}
			defer closeUpgrade()

			var dist io.Reader
			if distPath != "" {
				r, closeDist, err := openOutput(cmd, distPath)
				if err != nil {
					return err
				}
				defer closeDist()
				dist = r
			}

			summary, err := c.app.Upgrades(upgrade, dist)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().String("upgrade-output", stdinPath, "File with the simulated upgrade output, - for stdin")
	cmd.Flags().String("dist-output", "", "File with the simulated dist-upgrade output")
	return cmd
}

func openOutput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == stdinPath {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrUpgradeOutputReadFailed, err), "path", path)
	}
	return f, func() { _ = f.Close() }, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode output")
	}
	return nil
}
