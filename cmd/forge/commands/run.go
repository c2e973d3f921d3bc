package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [targets...]",
		Short: "Build the specified targets",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			configPath, _ := cmd.Flags().GetString("config")
			verbose, _ := cmd.Flags().GetBool("verbose")
			showOutput, _ := cmd.Flags().GetBool("show-output")
			return c.app.Run(cmd.Context(), args, app.RunOptions{
				ConfigPath: configPath,
				Verbose:    verbose,
				ShowOutput: showOutput,
			})
		},
	}
}
