// Package watch notifies interested parties when the record store changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"futsal/internal/logging"
)

// StoreWatcher watches the directory holding the SQLite database and emits
// a debounced notification whenever the database or its WAL files change.
type StoreWatcher struct {
	base      string
	changes   chan struct{}
	debouncer *Debouncer
	dir       string
	doneCh    chan struct{}
	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	watcher   *fsnotify.Watcher
}

// NewStoreWatcher creates a watcher for dbPath; delay <= 0 uses DefaultDelay
func NewStoreWatcher(dbPath string, delay time.Duration) (*StoreWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	sw := &StoreWatcher{
		base:    filepath.Base(dbPath),
		changes: make(chan struct{}, 1),
		dir:     filepath.Dir(dbPath),
		doneCh:  make(chan struct{}),
		stopCh:  make(chan struct{}),
		watcher: w,
	}
	sw.debouncer = NewDebouncer(delay, sw.notify)
	return sw, nil
}

// Changes delivers one value per debounced burst of store writes.
// Bursts that arrive while a value is pending are coalesced.
func (sw *StoreWatcher) Changes() <-chan struct{} {
	return sw.changes
}

// Start begins watching; it does not block
func (sw *StoreWatcher) Start(ctx context.Context) error {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.running {
		return nil
	}
	if err := sw.watcher.Add(sw.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", sw.dir, err)
	}
	sw.running = true

	logging.Logger.Debug("Store watcher started", "dir", sw.dir, "file", sw.base)
	go sw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit
func (sw *StoreWatcher) Stop() error {
	sw.mu.Lock()
	wasRunning := sw.running
	sw.running = false
	sw.mu.Unlock()

	if wasRunning {
		close(sw.stopCh)
		<-sw.doneCh
	}
	sw.debouncer.Stop()

	if err := sw.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close file watcher: %w", err)
	}
	logging.Logger.Debug("Store watcher stopped", "dir", sw.dir)
	return nil
}

func (sw *StoreWatcher) run(ctx context.Context) {
	defer close(sw.doneCh)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sw.stopCh:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if sw.relevant(event) {
				logging.Logger.Debug("Store file changed", "path", event.Name, "op", event.Op.String())
				sw.debouncer.Trigger()
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			logging.Logger.Warn("Store watcher error", "error", err)
		}
	}
}

// relevant matches the database file and its -wal/-shm/-journal siblings
func (sw *StoreWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.HasPrefix(filepath.Base(event.Name), sw.base)
}

func (sw *StoreWatcher) notify() {
	select {
	case sw.changes <- struct{}{}:
	default:
	}
}
