// Package commands implements the CLI commands for aptsrc.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/aptsrc/internal/app"
	"go.trai.ch/aptsrc/internal/build"
	"go.trai.ch/aptsrc/internal/core/domain"
)

// DefaultSourcesFile is the sources file read when --file is not given.
const DefaultSourcesFile = "sources.yaml"

// CLI represents the command line interface for aptsrc.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	file     string
	jsonLogs bool
	setJSON  func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Render(ctx context.Context, path string) ([]domain.Declaration, error)
	Apply(ctx context.Context, path string) (app.ApplyResult, error)
	Upgrades(upgrade, dist io.Reader) (domain.UpgradeSummary, error)
	Facts() app.FactsReport
}

// Option configures the CLI.
type Option func(*CLI)

// WithLogFormat registers the hook that switches the logger to JSON output
// when --json-logs is set.
func WithLogFormat(setJSON func(bool)) Option {
	return func(c *CLI) { c.setJSON = setJSON }
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "aptsrc",
		Short:         "Render and manage APT source entries",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().StringVarP(&c.file, "file", "f", DefaultSourcesFile, "Path to the sources file")
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.setJSON != nil {
			c.setJSON(c.jsonLogs)
		}
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newApplyCmd())
	rootCmd.AddCommand(c.newUpgradesCmd())
	rootCmd.AddCommand(c.newFactsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
