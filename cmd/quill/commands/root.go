// Package commands implements the CLI commands for quill.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/quill/internal/build"
	"go.trai.ch/quill/internal/core/domain"
)

// CLI represents the command line interface for quill.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	setJSON func(bool)
}

// Application represents the application logic interface.
type Application interface {
	Deps(ctx context.Context, entries []string) ([]*domain.ImportGraph, error)
	Tree(ctx context.Context, entry string, expand bool, w io.Writer) error
}

// Option configures the CLI.
type Option func(*CLI)

// WithJSONLogging registers the switch toggled by the --json flag.
func WithJSONLogging(setJSON func(bool)) Option {
	return func(c *CLI) {
		c.setJSON = setJSON
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "quill",
		Short:         "Resolve and inspect stylesheet imports",
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

	rootCmd.PersistentFlags().Bool("json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.setJSON == nil {
			return
		}
		jsonLogs, _ := cmd.Flags().GetBool("json")
		c.setJSON(jsonLogs)
	}

	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newTreeCmd())
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
