package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutesCmd_PrintsEveryPage(t *testing.T) {
	root := t.TempDir()
	blog := filepath.Join(root, "blog")
	require.NoError(t, os.MkdirAll(filepath.Join(blog, "guides"), 0o755))
	files := map[string]string{
		"index.mdx":       "---\ntitle: Writing\n---\nHello.\n",
		"hello-world.md":  "---\ntitle: Hello World\npublishedOn: 2024-01-02\n---\nHi.\n",
		"guides/setup.md": "---\ntitle: Setup\npublishedOn: 2023-04-05\n---\nSteps.\n",
		"secret.md":       "---\ntitle: Secret\ndraft: true\n---\nShh.\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(blog, name), []byte(body), 0o644))
	}
	cfgFile := writeConfig(t, fmt.Sprintf(
		"content_dir: %q\npublic_dir: %q\ndatabase_path: %q\n",
		blog, filepath.Join(root, "public"), filepath.Join(root, "data", "site.db"),
	))

	out, err := run(t, "routes", "--config", cfgFile)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/",
		"/blog/",
		"/blog/guides/setup/",
		"/blog/hello-world/",
		"/feed.xml",
		"/robots.txt",
		"/sitemap.xml",
		"/theme.css",
	}, strings.Fields(out))

	out, err = run(t, "routes", "--config", cfgFile, "--drafts")
	require.NoError(t, err)
	assert.Contains(t, strings.Fields(out), "/blog/secret/")
}
