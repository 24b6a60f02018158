package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay collapses the burst of filesystem events an editor
// save emits into a single reload.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads the configuration file when it changes on disk.
type Watcher struct {
	mu sync.Mutex

	path    string
	watcher *fsnotify.Watcher

	events chan *Config
	errs   chan error

	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Watch starts monitoring the configuration file at path. The file
// does not need to exist yet; creating it later triggers a reload.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting config watcher: %w", err)
	}

	// Watching the directory keeps the watch alive across saves
	// that replace the file by rename.
	dir := filepath.Dir(abs)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fsw,
		events:  make(chan *Config, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Events delivers a freshly loaded Config after each change to the
// watched file.
func (w *Watcher) Events() <-chan *Config { return w.events }

// Errors delivers reload failures. The previous configuration stays
// in effect after a failed reload.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher and closes both channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()
	close(w.events)
	close(w.errs)
	return w.watcher.Close()
}

// loop turns raw filesystem events into debounced reloads.
func (w *Watcher) loop() {
	defer w.wg.Done()

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.closeCh:
			if debounce != nil {
				debounce.Stop()
			}
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				fire = debounce.C
			} else {
				debounce.Reset(debounceDelay)
			}

		case <-fire:
			cfg, err := Load(w.path)
			if err != nil {
				w.sendError(err)
				continue
			}
			w.sendConfig(cfg)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// sendConfig delivers without blocking; a consumer that has not
// drained the previous reload keeps it and the newer one is dropped.
func (w *Watcher) sendConfig(cfg *Config) {
	select {
	case w.events <- cfg:
	default:
	}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
	}
}
