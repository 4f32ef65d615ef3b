package levelspec

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports edits to level yaml files, debounced, for live reload.
// Events and Errors are closed by the watcher goroutine after Close, so
// only the goroutine that sends on them ever closes them.
type Watcher struct {
	fs     *fsnotify.Watcher
	Events chan string
	Errors chan error

	done      chan struct{}
	closeOnce sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:     fs,
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)

	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !isLevelEdit(ev) {
				continue
			}
			now := time.Now()
			if last, hit := seen[ev.Name]; hit && now.Sub(last) < reloadDebounce {
				continue
			}
			seen[ev.Name] = now
			select {
			case w.Events <- ev.Name:
			case <-w.done:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.done:
				return
			}
		case <-w.done:
			return
		}
	}
}

func isLevelEdit(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	ext := strings.ToLower(filepath.Ext(ev.Name))
	return ext == ".yaml" || ext == ".yml"
}
