package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/aptsrc/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	outputYAML    = "yaml"
	outputContent = "content"
)

// ErrUnknownOutput is returned for an unsupported --output value.
var ErrUnknownOutput = zerr.New("unknown output, expected 'yaml' or 'content'")

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the declared sources without writing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output, _ := cmd.Flags().GetString("output")
			if output != outputYAML && output != outputContent {
				return zerr.With(zerr.Wrap(ErrUnknownOutput, "invalid output"), "output", output)
			}

			decls, err := c.app.Render(cmd.Context(), c.file)
			if err != nil {
				return err
			}

			if output == outputContent {
				return writeContent(cmd.OutOrStdout(), decls)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(decls); err != nil {
				return zerr.Wrap(err, "failed to encode declarations")
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringP("output", "o", outputYAML, "Output: yaml (declarations) or content (file bodies)")
	return cmd
}

// writeContent prints each present entry under a header naming its file.
func writeContent(w io.Writer, decls []domain.Declaration) error {
	first := true
	for i := range decls {
		entry := decls[i].Entry
		if entry.Ensure == domain.EnsureAbsent {
			continue
		}
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if _, err := fmt.Fprintf(w, "==> %s <==\n%s", entry.Filename, entry.Content); err != nil {
			return err
		}
	}
	return nil
}
