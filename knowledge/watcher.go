package knowledge

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a knowledge file and invokes a reload hook when it is
// rewritten. The hook is expected to perform an atomic full-replace of the
// base and its similarity index; the watcher itself never mutates anything.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
}

// NewWatcher creates a watcher for the knowledge file at path. The parent
// directory is watched so editors that replace the file via rename are
// still observed.
func NewWatcher(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, err
	}
	return &Watcher{watcher: w, path: path}, nil
}

// Watch blocks until ctx is cancelled, calling onChange after every write or
// create event touching the knowledge file. Watcher errors terminate the loop.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			onChange()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

// Close stops the underlying file system watcher.
func (w *Watcher) Close() error { return w.watcher.Close() }
