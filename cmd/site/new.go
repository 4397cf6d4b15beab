package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/namick/site"
	"github.com/namick/site/scaffold"
)

func newNewCmd(opts *rootOptions) *cobra.Command {
	var (
		tags    []string
		summary string
		draft   bool
	)
	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new post",
		Example: `  site new "Writing Hooks, Simplified"
  site new "Notes on Go" --tags go,notes --draft`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configFile, cmd.Flags())
			if err != nil {
				return err
			}
			title := strings.TrimSpace(strings.Join(args, " "))
			slug := site.Slugify(title)
			if slug == "" {
				return eris.Errorf("cannot derive a file name from %q", title)
			}

			path := filepath.Join(cfg.ContentDir, slug+".mdx")
			if _, err := os.Stat(path); err == nil {
				return eris.Errorf("%s already exists", path)
			}
			if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
				return eris.Wrapf(err, "create %s", cfg.ContentDir)
			}

			f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
			if err != nil {
				return eris.Wrapf(err, "create %s", path)
			}
			defer f.Close()

			err = scaffold.WritePost(f, scaffold.Post{
				Title:       title,
				PublishedOn: time.Now().Format("2006-01-02"),
				Summary:     summary,
				Tags:        tags,
				Draft:       draft,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "preview at %s\n", site.BuildURL(cfg.URL, site.BlogPath, slug))
			return nil
		},
	}
	cmd.Flags().String("content", "", "content directory (default content/blog)")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "comma-separated tags")
	cmd.Flags().StringVar(&summary, "summary", "", "one-line summary")
	cmd.Flags().BoolVar(&draft, "draft", false, "mark the post as a draft")
	return cmd
}
