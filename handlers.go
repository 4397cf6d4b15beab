package site

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/namick/site/content"
)

const recentPostsOnHome = 3

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded stylesheet, served ahead of the user's public directory.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.Config.PublicDir)
	e.Static("/images", filepath.Join(a.Config.PublicDir, "images"))
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/theme.css", a.handleThemeCSS)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	if a.Config.Metrics {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: a.metrics.registry,
		}))
	}

	e.GET("/", a.handleHome)
	e.GET(BlogPath+"/", a.handleBlogIndex)
	e.GET(BlogPath+"/*", a.handlePost)
}

// page assembles the layout data shared by every view.
func (a *App) page(c echo.Context, meta PageMeta) Page {
	p := Page{
		Meta:      meta,
		SiteName:  a.Config.Name,
		NavTitle:  a.Config.NavTitle,
		Path:      c.Request().URL.Path,
		HTMLClass: a.Theme.HTMLClass(),
		FontsURL:  a.Theme.Fonts.StylesheetURL(),
	}
	if a.Cache != nil {
		if tree, err := a.Cache.Tree(); err == nil {
			p.Tree = tree
		}
	}
	return p
}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	recent := content.Newest(posts)
	recent = recent[:min(recentPostsOnHome, len(recent))]
	page := a.page(c, PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL, "/"),
		OGType:      "website",
	})
	page.JSONLD = WebsiteJsonLD(a.Config)
	return Render(c, a.Views.Home(page, recent))
}

func (a *App) handleBlogIndex(c echo.Context) error {
	tag := c.QueryParam("tag")
	src, err := a.Cache.Source()
	if err != nil {
		return err
	}
	intro, _ := src.Index()

	title := src.PageTree().Name
	description := a.Config.Description
	if intro != nil {
		title = intro.Title
		if intro.Description != "" {
			description = intro.Description
		}
	}
	page := a.page(c, PageMeta{
		Title:       fmt.Sprintf("%s | %s", title, a.Config.Name),
		Description: description,
		URL:         BuildURL(a.Config.URL, BlogPath+"/"),
		OGType:      "website",
	})
	return Render(c, a.Views.BlogIndex(page, intro, src.PostsByTag(tag), tag, src.Tags()))
}

func (a *App) handlePost(c echo.Context) error {
	slugs, err := SplitSlug(c.Param("*"))
	if err != nil || len(slugs) == 0 {
		return a.renderNotFound(c)
	}
	post, err := a.Cache.GetPost(slugs)
	if errors.Is(err, ErrNotFound) {
		return a.renderNotFound(c)
	}
	if err != nil {
		return err
	}

	meta := PageMeta{
		Title:       fmt.Sprintf("%s | %s", post.Title, a.Config.Name),
		Description: post.Description,
		URL:         BuildURL(a.Config.URL, post.URL),
		OGType:      "article",
	}
	if hero := post.HeroImagePath(); hero != "" {
		meta.Image = BuildURL(a.Config.URL, hero)
	}
	page := a.page(c, meta)
	page.JSONLD = BlogPostingJsonLD(post, a.Config)

	if post.IsDocs() {
		return Render(c, a.Views.Docs(page, post, NewDocsNav(page.Tree, post.URL)))
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	hero := a.Images.Hero(post.HeroImagePath(), DefaultHeroAlt)
	return Render(c, a.Views.Article(page, post, hero, RelatedPosts(post, posts, 3)))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, content.Newest(posts))
}

func (a *App) handleThemeCSS(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", []byte(a.Theme.CSS()))
}

// publicFile returns the path of name under the public directory if it exists.
func (a *App) publicFile(name string) (string, bool) {
	p := filepath.Join(a.Config.PublicDir, name)
	info, err := os.Stat(p)
	return p, err == nil && !info.IsDir()
}

func (a *App) handleFavicon(c echo.Context) error {
	if p, ok := a.publicFile("favicon.svg"); ok {
		return c.File(p)
	}
	data, err := EmbeddedAssets.ReadFile("embedded/favicon.svg")
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/svg+xml", data)
}

func (a *App) handleRobots(c echo.Context) error {
	if p, ok := a.publicFile("robots.txt"); ok {
		return c.File(p)
	}
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", BuildURL(a.Config.URL, "/sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func (a *App) renderNotFound(c echo.Context) error {
	page := a.page(c, PageMeta{Title: "Page not found | " + a.Config.Name, OGType: "website"})
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(page))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if (ok && he.Code == http.StatusNotFound) || errors.Is(err, ErrNotFound) {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= http.StatusInternalServerError {
		// error-level entries reach Sentry through the logger hook
		a.Logger.WithError(err).WithField("uri", c.Request().RequestURI).Error("server error")
		page := a.page(c, PageMeta{Title: "Something went wrong | " + a.Config.Name, OGType: "website"})
		_ = RenderStatus(c, code, a.Views.ServerError(page))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
