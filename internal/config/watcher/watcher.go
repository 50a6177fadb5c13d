// Package watcher provides live reload for comment configuration files.
//
// The watcher monitors a single TOML configuration file and invokes a
// callback with the freshly parsed configurations whenever the file
// changes. Editors often replace files on save rather than writing in
// place, so the watcher observes the file's directory and filters
// events down to the configured path.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/linecomment/internal/config"
)

// Errors returned by watcher operations.
var (
	// ErrClosed indicates the watcher has been closed.
	ErrClosed = errors.New("watcher closed")
)

// ReloadFunc receives the reloaded configurations, or the error that
// prevented reloading.
type ReloadFunc func(configs []config.Config, err error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period between a file event and the
// reload, coalescing rapid write bursts.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// Watcher monitors one configuration file for changes.
type Watcher struct {
	mu sync.Mutex

	path     string
	reload   ReloadFunc
	debounce time.Duration

	fsw    *fsnotify.Watcher
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// New creates a watcher for the given configuration file and starts
// watching immediately.
func New(path string, reload ReloadFunc, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:     absPath,
		reload:   reload,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.fsw, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: saves that replace the file would otherwise
	// drop the watch.
	if err := w.fsw.Add(filepath.Dir(absPath)); err != nil {
		w.fsw.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

// loop drains fsnotify events, debounces them, and triggers reloads.
func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Stop()
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.reload(nil, err)

		case <-timerC:
			timerC = nil
			configs, err := config.LoadFile(w.path)
			w.reload(configs, err)
		}
	}
}

// relevant filters directory events down to mutations of the watched file.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Rename)
}
