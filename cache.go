package site

import (
	"sync"
	"time"

	"github.com/namick/site/content"
)

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = content.ErrNotFound

// Loader builds a fresh snapshot of the content directory.
type Loader func() (*content.Source, error)

// ContentCache is an in-memory cache of the loaded content with TTL.
type ContentCache struct {
	mu      sync.RWMutex
	src     *content.Source
	fetched time.Time
	ttl     time.Duration
	load    Loader
	onLoad  func(*content.Source)
}

// NewContentCache creates a ContentCache that calls load on a miss.
func NewContentCache(load Loader, ttl time.Duration) *ContentCache {
	return &ContentCache{load: load, ttl: ttl}
}

// OnLoad registers fn to run after every successful load, under the write lock.
func (c *ContentCache) OnLoad(fn func(*content.Source)) {
	c.mu.Lock()
	c.onLoad = fn
	c.mu.Unlock()
}

func (c *ContentCache) valid() bool {
	return c.src != nil && (c.ttl <= 0 || time.Since(c.fetched) < c.ttl)
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.src = nil
	c.mu.Unlock()
}

func (c *ContentCache) reload() error {
	if c.valid() {
		return nil
	}
	src, err := c.load()
	if err != nil {
		return err
	}
	c.src = src
	c.fetched = time.Now()
	if c.onLoad != nil {
		c.onLoad(src)
	}
	return nil
}

// Source returns the cached snapshot after ensuring it is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *ContentCache) Source() (*content.Source, error) {
	c.mu.RLock()
	if c.valid() {
		src := c.src
		c.mu.RUnlock()
		return src, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.reload(); err != nil {
		return nil, err
	}
	return c.src, nil
}

// ListPosts returns posts newest first, optionally filtered by tag.
func (c *ContentCache) ListPosts(tag string) ([]*content.Post, error) {
	src, err := c.Source()
	if err != nil {
		return nil, err
	}
	return src.PostsByTag(tag), nil
}

// ListTags returns all unique tags.
func (c *ContentCache) ListTags() ([]string, error) {
	src, err := c.Source()
	if err != nil {
		return nil, err
	}
	return src.Tags(), nil
}

// GetPost returns a single post by slug segments.
func (c *ContentCache) GetPost(slugs []string) (*content.Post, error) {
	src, err := c.Source()
	if err != nil {
		return nil, err
	}
	post, ok := src.GetPage(slugs)
	if !ok {
		return nil, ErrNotFound
	}
	return post, nil
}

// Tree returns the navigation tree.
func (c *ContentCache) Tree() (*content.Tree, error) {
	src, err := c.Source()
	if err != nil {
		return nil, err
	}
	return src.PageTree(), nil
}
