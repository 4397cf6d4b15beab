package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/namick/site"
)

func newRoutesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Print every routable page path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := site.NewLogger("warn")
			if err != nil {
				return err
			}
			logger.SetOutput(cmd.ErrOrStderr())

			app, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.Init(); err != nil {
				return err
			}

			paths, err := app.Paths()
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	addContentFlags(cmd)
	return cmd
}
