package site

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/namick/site/markdown"
)

const (
	placeholderWidth = 10

	DefaultHeroWidth  = 1024
	DefaultHeroHeight = 575
	DefaultHeroAlt    = "hero image"
)

// ErrOutsidePublic is returned for image paths that escape the public directory.
var ErrOutsidePublic = eris.New("image path outside public directory")

// Placeholders computes and caches blur placeholders for images under the
// public directory. Results are kept in memory and, when a Store is
// attached, persisted across restarts.
type Placeholders struct {
	root   string
	store  *Store
	logger *logrus.Logger

	mu  sync.RWMutex
	mem map[string]Placeholder
}

// NewPlaceholders creates a Placeholders service for the public directory
// root. store may be nil.
func NewPlaceholders(root string, store *Store, logger *logrus.Logger) *Placeholders {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Placeholders{
		root:   root,
		store:  store,
		logger: logger,
		mem:    make(map[string]Placeholder),
	}
}

// localPath maps a public URL path such as /images/hero/a.png to a file
// under the public directory.
func (p *Placeholders) localPath(src string) (string, error) {
	if !strings.HasPrefix(src, "/") || strings.HasPrefix(src, "//") {
		return "", eris.Wrapf(ErrOutsidePublic, "%q is not a local path", src)
	}
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	for _, seg := range strings.Split(src, "/") {
		if seg == ".." {
			return "", eris.Wrapf(ErrOutsidePublic, "%q", src)
		}
	}
	clean := path.Clean(src)
	return filepath.Join(p.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

// Get returns the placeholder for the public image at src, computing it when
// the file changed since it was last seen.
func (p *Placeholders) Get(src string) (Placeholder, error) {
	file, err := p.localPath(src)
	if err != nil {
		return Placeholder{}, err
	}
	info, err := os.Stat(file)
	if errors.Is(err, fs.ErrNotExist) {
		p.forget(src)
	}
	if err != nil {
		return Placeholder{}, eris.Wrapf(err, "stat %s", src)
	}
	fresh := func(ph Placeholder) bool {
		return ph.Size == info.Size() && ph.ModTime.Equal(info.ModTime().UTC())
	}

	p.mu.RLock()
	ph, ok := p.mem[src]
	p.mu.RUnlock()
	if ok && fresh(ph) {
		return ph, nil
	}

	if p.store != nil {
		stored, ok, err := p.store.GetPlaceholder(src)
		if err != nil {
			p.logger.WithError(err).WithField("path", src).Warn("placeholder lookup failed")
		} else if ok && fresh(stored) {
			p.remember(stored)
			return stored, nil
		}
	}

	f, err := os.Open(file)
	if err != nil {
		return Placeholder{}, eris.Wrapf(err, "open %s", src)
	}
	defer f.Close()
	w, h, blur, err := GeneratePlaceholder(f)
	if err != nil {
		return Placeholder{}, eris.Wrapf(err, "placeholder for %s", src)
	}
	ph = Placeholder{
		Path:        src,
		Width:       w,
		Height:      h,
		BlurDataURL: blur,
		Size:        info.Size(),
		ModTime:     info.ModTime().UTC(),
	}
	p.remember(ph)
	if p.store != nil {
		if err := p.store.SavePlaceholder(ph); err != nil {
			p.logger.WithError(err).WithField("path", src).Warn("placeholder save failed")
		}
	}
	return ph, nil
}

func (p *Placeholders) remember(ph Placeholder) {
	p.mu.Lock()
	p.mem[ph.Path] = ph
	p.mu.Unlock()
}

// forget drops a placeholder whose image no longer exists.
func (p *Placeholders) forget(src string) {
	p.mu.Lock()
	delete(p.mem, src)
	p.mu.Unlock()
	if p.store == nil {
		return
	}
	if err := p.store.DeletePlaceholder(src); err != nil {
		p.logger.WithError(err).WithField("path", src).Warn("placeholder delete failed")
	}
}

// Prune removes stored placeholders whose image files are gone and returns
// how many were removed.
func (p *Placeholders) Prune() (int, error) {
	if p.store == nil {
		return 0, nil
	}
	stored, err := p.store.ListPlaceholders()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, ph := range stored {
		file, err := p.localPath(ph.Path)
		if err == nil {
			if _, err = os.Stat(file); err == nil {
				continue
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return removed, eris.Wrapf(err, "stat %s", ph.Path)
			}
		}
		p.forget(ph.Path)
		removed++
	}
	return removed, nil
}

// ResolveImage implements markdown.ImageResolver.
func (p *Placeholders) ResolveImage(src string) (markdown.ImageInfo, bool) {
	ph, err := p.Get(src)
	if err != nil {
		p.logger.WithError(err).WithField("path", src).Debug("no placeholder for image")
		return markdown.ImageInfo{}, false
	}
	return markdown.ImageInfo{Width: ph.Width, Height: ph.Height, BlurDataURL: ph.BlurDataURL}, true
}

// Hero builds the hero banner for src. Missing or undecodable images fall
// back to the default size without a blur placeholder.
func (p *Placeholders) Hero(src, alt string) HeroImage {
	if alt == "" {
		alt = DefaultHeroAlt
	}
	hero := HeroImage{Src: src, Alt: alt, Width: DefaultHeroWidth, Height: DefaultHeroHeight}
	if src == "" {
		return hero
	}
	ph, err := p.Get(src)
	if err != nil {
		p.logger.WithError(err).WithField("path", src).Warn("hero image placeholder unavailable")
		return hero
	}
	hero.BlurDataURL = ph.BlurDataURL
	return hero
}

// GeneratePlaceholder decodes an image and returns its intrinsic size and a
// data URL of the image scaled down to a few pixels wide.
func GeneratePlaceholder(r io.Reader) (width, height int, dataURL string, err error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return 0, 0, "", eris.Wrap(err, "decode image")
	}
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return 0, 0, "", eris.New("empty image")
	}

	h := height * placeholderWidth / width
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, placeholderWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return 0, 0, "", eris.Wrap(err, "encode png")
	}
	return width, height, "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
