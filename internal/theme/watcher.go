package theme

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher follows a small text file holding a theme name and mirrors it into
// a Switch, so another process can change the backdrop theme.
type Watcher struct {
	path    string
	sw      *Switch
	watcher *fsnotify.Watcher
	logger  *zap.Logger
}

// NewWatcher prepares a watcher for path. The file's directory must exist;
// the file itself may appear later.
func NewWatcher(path string, sw *Switch, logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve theme file: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create theme watcher: %w", err)
	}
	// Watch the directory: editors replace files by renaming over them.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		path:    abs,
		sw:      sw,
		watcher: fw,
		logger:  logger,
	}, nil
}

// Run applies the file's current content, then every change to it, until
// ctx is done. It closes the underlying watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	w.reload()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("theme watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			w.logger.Warn("read theme file", zap.String("path", w.path), zap.Error(err))
		}
		return
	}
	t, err := Parse(string(data))
	if err != nil {
		w.logger.Warn("ignoring theme file", zap.String("path", w.path), zap.Error(err))
		return
	}
	if w.sw.Set(t) {
		w.logger.Info("theme changed", zap.Stringer("theme", t), zap.String("source", w.path))
	}
}
