package index

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ybkit/resindex/pkg/util"
)

// defaultDebounce groups rapid change bursts into one invalidation.
const defaultDebounce = 200 * time.Millisecond

// Purger discards cached file contents; satisfied by libfs.Caching.
type Purger interface {
	Purge()
}

// Watcher invalidates the index when files under the library root change.
// The next query after an invalidation rebuilds from disk, so the watcher
// never races a rebuild against in-flight lookups.
type Watcher struct {
	fsw      *fsnotify.Watcher
	store    *Store
	cache    Purger
	log      *slog.Logger
	debounce time.Duration

	timerMu sync.Mutex
	timer   *time.Timer

	mu       sync.Mutex
	stopChan chan struct{}
	stopped  bool
}

// NewWatcher creates a watcher over store. cache may be nil when file
// contents are read uncached; logger may be nil for a no-op logger.
func NewWatcher(store *Store, cache Purger, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if logger == nil {
		logger = util.NopLogger()
	}
	return &Watcher{
		fsw:      fsw,
		store:    store,
		cache:    cache,
		log:      logger,
		debounce: defaultDebounce,
		stopChan: make(chan struct{}),
	}, nil
}

// Start watches root and its subdirectories and begins processing events
// in a background goroutine.
func (w *Watcher) Start(root string) error {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if shouldIgnoreDir(info.Name()) && path != root {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			w.log.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("setup watches: %w", err)
	}

	w.log.Info("file watcher started", "root", root)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.stopChan)

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timerMu.Unlock()

	err := w.fsw.Close()
	w.log.Info("file watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	base := filepath.Base(event.Name)
	if shouldIgnoreDir(base) || strings.HasPrefix(base, ".") {
		return
	}

	w.log.Debug("file event", "op", event.Op.String(), "file", event.Name)

	// New directories need their own watch; fsnotify is not recursive.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.fsw.Add(event.Name); err != nil {
				w.log.Warn("failed to watch directory", "path", event.Name, "error", err)
			}
		}
	}

	w.scheduleInvalidate()
}

// scheduleInvalidate resets the debounce timer; a burst of events yields
// a single invalidation after the window closes.
func (w *Watcher) scheduleInvalidate() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if w.cache != nil {
			w.cache.Purge()
		}
		w.store.Invalidate()
		w.log.Info("index invalidated after file changes")
	})
}

func shouldIgnoreDir(name string) bool {
	switch name {
	case "node_modules", ".git", "dist", "coverage":
		return true
	}
	return false
}
