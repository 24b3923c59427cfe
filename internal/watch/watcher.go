package watch

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/wend-cli/wend/internal/logging"
)

// Watcher follows the browser's current directory and collapses filesystem
// events into refresh notifications. The notification channel has capacity
// one; bursts of events while a refresh is pending coalesce into it.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	changes   chan struct{}
	stopChan  chan struct{}

	mu      sync.Mutex
	watched string
}

// New creates a watcher and starts its event loop. Watch must be called to
// follow a directory.
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		changes:   make(chan struct{}, 1),
		stopChan:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch switches the watcher to dir, dropping the previously watched
// directory. Pending notifications for the old directory are discarded.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.watched == dir {
		return nil
	}
	if w.watched != "" {
		// The old directory may already be gone; nothing to do about it.
		_ = w.fsWatcher.Remove(w.watched)
	}
	w.watched = ""

	select {
	case <-w.changes:
	default:
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.watched = dir
	return nil
}

// Changes returns the refresh notification channel.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the event loop and releases the underlying watcher.
func (w *Watcher) Close() {
	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		logging.Debugf("watch: close: %v", err)
	}
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Write) ||
				event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
				select {
				case w.changes <- struct{}{}:
				default:
					// A refresh is already pending; this event rides along.
				}
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Debugf("watch: %v", err)
		case <-w.stopChan:
			return
		}
	}
}
