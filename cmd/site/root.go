package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Personal website and blog server",
		Long: `site serves a personal website and a blog written as Markdown/MDX files.

Configuration is read from site.yaml (or --config), SITE_* environment
variables, a .env file in the working directory, and command flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default ./site.yaml)")

	cmd.AddCommand(
		newServeCmd(opts),
		newRoutesCmd(opts),
		newNewCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "site %s\n", version)
			},
		},
	)
	return cmd
}
