package site

import (
	"io/fs"
	"time"

	"github.com/sirupsen/logrus"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string // Site name (default "Nathan Amick")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD
	NavTitle    string // Title shown in the navigation bar (default Author, then Name)

	Addr         string // Listen address (default ":3000")
	ContentDir   string // Blog content root (default "content/blog")
	PublicDir    string // Static assets, served under /public and /images (default "public")
	DatabasePath string // SQLite path for image placeholders (default "data/site.db")

	Theme     string // Color preset (default "catppuccin")
	CodeTheme string // Chroma style for code blocks (default "github-dark")

	Drafts  bool // Serve posts marked draft
	Watch   bool // Reload content when files under ContentDir change
	Metrics bool // Expose /metrics

	CacheTTL      time.Duration // Content cache TTL (default 5min)
	ShutdownGrace time.Duration // Graceful shutdown timeout (default 10s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Nathan Amick"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.NavTitle == "" {
		c.NavTitle = c.Author
	}
	if c.NavTitle == "" {
		c.NavTitle = c.Name
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content/blog"
	}
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 5 * time.Minute
	}
	if c.ShutdownGrace == 0 {
		c.ShutdownGrace = 10 * time.Second
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces the default logger.
func WithLogger(l *logrus.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithContentFS reads content from fsys instead of Config.ContentDir.
// The watcher is disabled for such apps.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}
