// Package cli defines the poziverse command line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/genpozi/poziverse/internal/app"
)

// NewRootCmd creates the root command. Without a subcommand it starts the
// workspace TUI.
func NewRootCmd() *cobra.Command {
	opts := &app.Options{}

	rootCmd := &cobra.Command{
		Use:   "poziverse",
		Short: "Terminal workspace dashboard",
		Long: `Poziverse is a keyboard-driven workspace dashboard for projects,
launchpad apps, team members, file sources, and stored resources.

Run without a subcommand to open the workspace.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), *opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/poziverse/config.toml)")
	rootCmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "catalog YAML file (default is the built-in dataset)")
	rootCmd.Flags().StringVar(&opts.Layout, "layout", "", "layout: auto, desktop, or compact")

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newTargetsCmd())
	rootCmd.AddCommand(newLogsCmd(opts))

	return rootCmd
}
