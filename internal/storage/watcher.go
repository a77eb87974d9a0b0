package storage

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// DefaultDebounceInterval is how long to wait after the last filesystem
	// change before signalling, so one commit's burst of WAL writes
	// collapses into a single re-emission.
	DefaultDebounceInterval = 100 * time.Millisecond
)

// Watcher monitors the SQLite database file for changes made by other
// processes and forwards them to the store's change notifier. With WAL
// journaling a commit touches the -wal and -shm siblings rather than the
// database file itself, so the watch covers the whole directory and
// filters by file name prefix.
type Watcher struct {
	dbPath           string
	notifyFn         func()
	logf             LogFunc
	debounceInterval time.Duration

	watcher   *fsnotify.Watcher
	stopChan  chan struct{}
	doneChan  chan struct{}
	closeOnce sync.Once

	mu      sync.Mutex
	pending *time.Timer
}

// NewWatcher creates a watcher for the database at dbPath.
// notifyFn is called (debounced) when the database changes on disk.
// logf is called for logging (can be nil for no logging).
func NewWatcher(dbPath string, notifyFn func(), logf LogFunc) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logf == nil {
		logf = func(format string, args ...interface{}) {} // no-op
	}

	return &Watcher{
		dbPath:           dbPath,
		notifyFn:         notifyFn,
		logf:             logf,
		debounceInterval: DefaultDebounceInterval,
		watcher:          fsWatcher,
		stopChan:         make(chan struct{}),
		doneChan:         make(chan struct{}),
	}, nil
}

// Start begins watching for database file changes.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.dbPath)
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Close stops the watcher and cleans up resources.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		close(w.stopChan)
		w.watcher.Close()

		w.mu.Lock()
		if w.pending != nil {
			w.pending.Stop()
			w.pending = nil
		}
		w.mu.Unlock()

		<-w.doneChan
	})
}

// processEvents is the event loop that filters and debounces changes.
func (w *Watcher) processEvents() {
	defer close(w.doneChan)

	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isDatabaseFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleNotify()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logf("database watcher error: %v", err)
		}
	}
}

// isDatabaseFile reports whether path is the database file or one of its
// WAL siblings (base, base-wal, base-shm).
func (w *Watcher) isDatabaseFile(path string) bool {
	base := filepath.Base(w.dbPath)
	name := filepath.Base(path)
	return name == base || strings.HasPrefix(name, base+"-")
}

// scheduleNotify (re)arms the debounce timer.
func (w *Watcher) scheduleNotify() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounceInterval, func() {
		select {
		case <-w.stopChan:
			return
		default:
		}
		w.notifyFn()
	})
}
