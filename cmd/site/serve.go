package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/namick/site"
	"github.com/namick/site/views"
)

func addContentFlags(cmd *cobra.Command) {
	cmd.Flags().String("content", "", "content directory (default content/blog)")
	cmd.Flags().Bool("drafts", false, "include posts marked draft")
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := site.NewLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			_, flush, err := site.InitSentry(logger, site.SentrySettings{
				DSN:         cfg.SentryDSN,
				Environment: cfg.Environment,
				Release:     version,
			})
			if err != nil {
				return err
			}
			defer flush()

			app, err := newApp(cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.WithFields(logrus.Fields{
				"version": version,
				"content": cfg.ContentDir,
				"url":     cfg.URL,
			}).Info("starting site")
			return app.Start(ctx)
		},
	}
	cmd.Flags().String("addr", "", "listen address (default :3000)")
	cmd.Flags().String("public", "", "public assets directory (default public)")
	cmd.Flags().Bool("watch", false, "reload content when files change")
	addContentFlags(cmd)
	return cmd
}

func newApp(cfg config, logger *logrus.Logger) (*site.App, error) {
	v, err := views.New()
	if err != nil {
		return nil, eris.Wrap(err, "load views")
	}
	return site.New(cfg.Site(), v.Funcs(), site.WithLogger(logger)), nil
}
