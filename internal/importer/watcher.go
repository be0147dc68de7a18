package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"tiermaker/internal/domain"
	"tiermaker/internal/logging"
)

// DefaultDebounce is how long the watcher waits for writes to settle
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads an import file whenever it changes on disk
type Watcher struct {
	path     string
	debounce time.Duration
	onChange func([]domain.Item)
	onError  func(error)

	fsWatcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for path. onChange receives the freshly parsed
// items; onError, which may be nil, receives load failures.
func NewWatcher(path string, onChange func([]domain.Item), onError func(error)) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("watcher: nil change handler: %w", domain.ErrInvalidArgument)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	// Editors often replace the file instead of writing it, so watch the directory.
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:      abs,
		debounce:  DefaultDebounce,
		onChange:  onChange,
		onError:   onError,
		fsWatcher: fsWatcher,
	}, nil
}

// SetDebounce changes the settle delay; call before Run
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Run processes file events until ctx is cancelled. It closes the
// underlying fsnotify watcher before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsWatcher.Close()
	log := logging.NewLogger("importer").WithField("path", w.path)
	log.Info("watching import file")

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
			w.reportError(err)

		case <-timer.C:
			items, err := Load(w.path)
			if err != nil {
				log.WithError(err).Warn("reload failed")
				w.reportError(err)
				continue
			}
			log.WithField("count", len(items)).Info("import file reloaded")
			w.onChange(items)
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.onError != nil {
		w.onError(err)
	}
}
