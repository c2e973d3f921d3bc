// Package commands implements the CLI commands for the forge build tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/build"
)

// CLI represents the command line interface for forge.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "forge",
		Short:         "A build tool that runs external commands with dependency tracking",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "forge.yaml", "Path to the build file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print full command lines before each build")
	rootCmd.PersistentFlags().Bool("show-output", false, "Dump process output even for successful builds")

	// The persistent flags must exist first so the version flag is
	// registered without the already-taken -v shorthand.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
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
