// Package site is a personal website and blog server built with Go, Echo,
// and templ. Posts are Markdown/MDX files on disk; the server renders a
// home page, a blog index, posts in an article or docs layout, RSS, and a
// sitemap.
//
// Templates are supplied through ViewFuncs, and site handles the handler
// logic, middleware, content loading, and image placeholders.
package site

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"

	"github.com/namick/site/content"
	"github.com/namick/site/markdown"
	"github.com/namick/site/theme"
)

// BlogPath is the URL prefix of every post.
const BlogPath = "/blog"

// ViewFuncs holds the templ components the handlers render. Every view
// receives the shared layout data in Page.
type ViewFuncs struct {
	Home        func(page Page, recent []*content.Post) templ.Component
	BlogIndex   func(page Page, intro *content.Post, posts []*content.Post, activeTag string, tags []string) templ.Component
	Article     func(page Page, post *content.Post, hero HeroImage, related []*content.Post) templ.Component
	Docs        func(page Page, post *content.Post, nav DocsNav) templ.Component
	NotFound    func(page Page) templ.Component
	ServerError func(page Page) templ.Component
}

// App is the central site application. It wires together the content
// cache, placeholder store, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ContentCache
	Images *Placeholders
	Theme  theme.Theme
	Views  ViewFuncs
	Logger *logrus.Logger

	metrics      *metrics
	contentFS    fs.FS
	customRoutes []func(*App)
	initialized  bool
}

// New creates an App with the given configuration and view functions.
// Call Init (or Start) before serving requests.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:  cfg,
		Echo:    e,
		Views:   views,
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Logger == nil {
		a.Logger = logrus.New()
	}
	return a
}

// Init opens the store, loads the content once, and registers middleware
// and routes. It is safe to call more than once.
func (a *App) Init() error {
	if a.initialized {
		return nil
	}

	t, err := theme.New(a.Config.Theme)
	if err != nil {
		return eris.Wrap(err, "site: theme")
	}
	a.Theme = t

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return eris.Wrap(err, "site: init store")
	}
	a.Store = store
	a.Images = NewPlaceholders(a.Config.PublicDir, store, a.Logger)
	if n, err := a.Images.Prune(); err != nil {
		a.Logger.WithError(err).Warn("placeholder prune failed")
	} else if n > 0 {
		a.Logger.WithField("removed", n).Info("pruned stale placeholders")
	}

	fsys := a.contentFS
	if fsys == nil {
		fsys = os.DirFS(a.Config.ContentDir)
	}
	renderer := markdown.New(markdown.Options{CodeTheme: a.Config.CodeTheme, Images: a.Images})
	a.Cache = NewContentCache(func() (*content.Source, error) {
		return content.Load(content.Options{
			FS:            fsys,
			BasePath:      BlogPath,
			Renderer:      renderer,
			IncludeDrafts: a.Config.Drafts,
			RootName:      "Blog",
		})
	}, a.Config.CacheTTL)
	a.Cache.OnLoad(func(src *content.Source) {
		a.metrics.observeLoad(src)
		a.Logger.WithField("posts", len(src.Pages())).Info("content loaded")
	})
	if _, err := a.Cache.Source(); err != nil {
		return eris.Wrap(err, "site: load content")
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}

	a.initialized = true
	return nil
}

// Start initializes the app and serves until ctx is cancelled, then shuts
// down gracefully within Config.ShutdownGrace.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}

	if a.watchesContent() {
		w, err := NewWatcher(a.Config.ContentDir, a.Cache.Invalidate, a.Logger)
		if err != nil {
			return eris.Wrap(err, "site: watch content")
		}
		defer w.Close()
		go w.Run(ctx)
		a.Logger.WithField("dir", a.Config.ContentDir).Info("watching content")
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.WithField("addr", a.Config.Addr).Info("listening")
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return eris.Wrap(err, "site: serve")
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownGrace)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return eris.Wrap(err, "site: shutdown")
	}
	return nil
}

// watchesContent reports whether Start runs a watcher over Config.ContentDir.
// Apps reading from WithContentFS are never watched.
func (a *App) watchesContent() bool {
	return a.Config.Watch && a.contentFS == nil
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
