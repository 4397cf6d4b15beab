package site

import (
	"encoding/xml"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/namick/site/content"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category"`
}

func (a *App) buildFeed(posts []*content.Post) rssXML {
	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	var newest time.Time
	for _, p := range posts {
		postURL := BuildURL(base, p.URL)
		item := rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Description,
			GUID:        postURL,
			Categories:  p.Tags,
		}
		if p.HasDate() {
			item.PubDate = p.PublishedOn.Format(time.RFC1123Z)
			if p.PublishedOn.After(newest) {
				newest = p.PublishedOn
			}
		}
		items = append(items, item)
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        BuildURL(base),
			Description: a.Config.Description,
			Items:       items,
		},
	}
	if !newest.IsZero() {
		feed.Channel.LastBuildDate = newest.Format(time.RFC1123Z)
	}
	return feed
}

func (a *App) renderRSS(c echo.Context, posts []*content.Post) error {
	return renderXML(c, "application/rss+xml; charset=utf-8", a.buildFeed(posts))
}
