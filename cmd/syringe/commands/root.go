// Package commands implements the CLI commands for syringe.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/syringe/internal/app"
	"go.trai.ch/syringe/internal/build"
)

// CLI represents the command line interface for syringe.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Requests(ctx context.Context, w io.Writer, opts app.RequestsOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "syringe",
		Short: "Inspect the dependency requests of Go injection sites",
		Long: `syringe reads the injection sites of Go packages and reports the dependency
requests each one makes.

Sites are declared with directive comments. //syringe:inject marks a constructor
and //syringe:members a members-injection type. Interfaces marked with
//syringe:component or //syringe:production_component are components whose
methods are accessors. Parameters and accessor
results are classified as instance, Provider, Lazy, Provider-of-Lazy,
MembersInjector, Producer or Produced requests, and keyed by their qualifier
and canonical type.

Wrapper types, the directive prefix and the qualifier annotations are read from
syringe.yaml, found by walking up from the working directory.`,
		Example: `  syringe requests ./...
  syringe requests -f yaml -C ./service ./internal/...`,
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

	rootCmd.AddCommand(c.newRequestsCmd())
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
