// Package watcher reloads a program into a running machine when the program
// file changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrogolib/log"
)

// DefaultDelay is the time to wait after the last file event before the
// program is reloaded, editors often write a file in multiple steps.
const DefaultDelay = 100 * time.Millisecond

// Reloader receives reloaded programs.
type Reloader interface {
	Reload(program []byte)
}

// Watcher watches a program file and passes its content to a reloader
// after every change.
type Watcher struct {
	logger   *log.Logger
	path     string
	loader   *loader.Loader
	reloader Reloader
	delay    time.Duration

	watcher *fsnotify.Watcher
}

// New returns a watcher for the program file. The directory of the file is
// watched so that files replaced by a rename are detected as well.
func New(logger *log.Logger, path string, reloader Reloader) (*Watcher, error) {
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if err := watcher.Watch(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watching directory of %s: %w", path, err)
	}

	return &Watcher{
		logger:   logger,
		path:     path,
		loader:   loader.New(),
		reloader: reloader,
		delay:    DefaultDelay,
		watcher:  watcher,
	}, nil
}

// Run processes file events until the context is canceled. The file watcher
// is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-w.watcher.Event:
			if ev == nil || filepath.Clean(ev.Name) != w.path || ev.IsAttrib() {
				continue
			}
			reload = time.After(w.delay)

		case err := <-w.watcher.Error:
			if err != nil {
				w.logger.Error("File watcher failed", log.Err(err))
			}

		case <-reload:
			reload = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	program, err := w.loader.Load(w.path)
	if err != nil {
		w.logger.Error("Reloading program failed", log.String("file", w.path), log.Err(err))
		return
	}
	w.logger.Info("Program file changed", log.String("file", w.path))
	w.reloader.Reload(program)
}
