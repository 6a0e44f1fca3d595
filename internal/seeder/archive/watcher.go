package archive

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

const watchOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher reports changes to the archive file. It watches the parent
// directory so replacing the file (rename over) is seen as well.
type Watcher struct {
	log     *slog.Logger
	path    string
	watcher *fsnotify.Watcher
}

// NewWatcher starts watching the directory that holds path.
func NewWatcher(logger *slog.Logger, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("archive watcher: resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("archive watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("archive watcher: watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		log:     logger.With("component", "archive_watcher"),
		path:    abs,
		watcher: w,
	}, nil
}

// Run calls onChange for every create, write, remove or rename of the
// archive file until ctx is done. It closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || event.Op&watchOps == 0 {
				continue
			}
			w.log.Info("archive changed", slog.String("op", event.Op.String()))
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("archive watcher error", slog.String("error", err.Error()))
		}
	}
}
