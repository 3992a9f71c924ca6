// Package watcher re-triggers detection when a watched codebase changes.
// It watches every directory under the root with fsnotify and debounces
// bursts of events (editor saves, git checkouts) into a single callback.
package watcher

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period required after the last filesystem
// event before the change callback fires.
const DefaultDebounce = 2 * time.Second

// Watcher watches one codebase root and invokes a callback after changes
// settle.
type Watcher struct {
	root     string
	debounce time.Duration
	onChange func()

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a Watcher for root. onChange runs on the watcher goroutine
// after each debounced batch of events. A non-positive debounce uses
// DefaultDebounce.
func New(root string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback cannot be nil")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		root:     root,
		debounce: debounce,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start registers the root and all its subdirectories and begins watching.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	w.fsw = fsw

	if err := w.addRecursive(w.root); err != nil {
		fsw.Close()
		return err
	}

	w.wg.Add(1)
	go w.run()
	return nil
}

// Stop halts the watcher. Pending debounced changes are discarded.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	w.wg.Wait()
	return w.fsw.Close()
}

func (w *Watcher) addRecursive(dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		return w.fsw.Add(path)
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return nil
}

func (w *Watcher) run() {
	defer w.wg.Done()

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			// New directories must be registered so edits inside them
			// keep triggering events.
			if event.Op.Has(fsnotify.Create) {
				// Ignore the error: the path may already be gone.
				_ = w.addRecursive(event.Name)
			}
			if !timer.Stop() && pending {
				<-timer.C
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			w.onChange()

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

		case <-w.stopCh:
			if pending && !timer.Stop() {
				<-timer.C
			}
			return
		}
	}
}
