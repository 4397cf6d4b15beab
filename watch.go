package site

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

// DefaultWatchDelay is how long the watcher waits for events to settle.
const DefaultWatchDelay = 200 * time.Millisecond

// Watcher calls onChange once a burst of filesystem events under a
// directory tree has settled.
type Watcher struct {
	fsw      *fsnotify.Watcher
	onChange func()
	delay    time.Duration
	logger   *logrus.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher watches root and every directory below it.
func NewWatcher(root string, onChange func(), logger *logrus.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, eris.Wrap(err, "create watcher")
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	w := &Watcher{fsw: fsw, onChange: onChange, delay: DefaultWatchDelay, logger: logger}
	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return eris.Wrapf(err, "walk %s", p)
		}
		if !d.IsDir() {
			return nil
		}
		if p != root && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		if err := w.fsw.Add(p); err != nil {
			return eris.Wrapf(err, "watch %s", p)
		}
		return nil
	})
}

// Run processes events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.WithError(err).Warn("content watcher error")
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, "~") || strings.HasSuffix(base, ".swp") {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			if err := w.addRecursive(ev.Name); err != nil {
				w.logger.WithError(err).WithField("dir", ev.Name).Warn("watch new directory failed")
			}
		}
	}
	w.logger.WithFields(logrus.Fields{"path": ev.Name, "op": ev.Op.String()}).Debug("content changed")
	w.trigger()
}

// trigger restarts the settle timer.
func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.onChange)
}

// Close stops watching and cancels a pending callback.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	return w.fsw.Close()
}
