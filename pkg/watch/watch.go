// Package watch re-runs the enhancement transform whenever the watched
// input database changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/fsnotify.v1"

	"github.com/South-33/Elixer/pkg/enhance"
)

// DefaultDebounce is the quiet period after a change event before the
// enhancement re-runs. Editors often produce bursts of write events for a
// single save.
const DefaultDebounce = 500 * time.Millisecond

// Config holds watcher configuration.
type Config struct {
	// Input is the database file to watch.
	Input string

	// Output is where each enhanced copy is written.
	Output string

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// OnResult, if set, is called after every enhancement attempt with
	// the error from that run (nil on success).
	OnResult func(err error)
}

// Watcher monitors one input database and keeps its enhanced copy current.
type Watcher struct {
	enhancer *enhance.Enhancer
	input    string
	output   string
	debounce time.Duration
	onResult func(error)

	watcher *fsnotify.Watcher
	stopCh  chan struct{}

	mu      sync.Mutex
	pending *time.Timer
}

// New creates a watcher. Start must be called to begin monitoring.
func New(enhancer *enhance.Enhancer, cfg Config) (*Watcher, error) {
	if cfg.Input == "" {
		return nil, fmt.Errorf("no input path configured")
	}
	if cfg.Output == "" {
		return nil, fmt.Errorf("no output path configured")
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		enhancer: enhancer,
		input:    filepath.Clean(cfg.Input),
		output:   cfg.Output,
		debounce: debounce,
		onResult: cfg.OnResult,
	}, nil
}

// Start runs one enhancement immediately so the output exists, then begins
// watching the input file's directory. Watching the directory rather than
// the file itself survives editors that save by rename-and-replace.
func (w *Watcher) Start() error {
	w.runOnce()

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	w.watcher = fsw
	w.stopCh = make(chan struct{})

	go w.loop()

	dir := filepath.Dir(w.input)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	return nil
}

// Stop ends monitoring. Safe to call once after a successful Start.
func (w *Watcher) Stop() {
	close(w.stopCh)
	if w.watcher != nil {
		w.watcher.Close()
	}
	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.mu.Unlock()
}

// loop handles file system events until stopped.
func (w *Watcher) loop() {
	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event.Name, event.Op)

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// handleEvent schedules an enhancement run when the watched file is written
// or replaced. Events for other files in the directory are ignored, and
// rapid event bursts collapse into a single run per debounce window.
func (w *Watcher) handleEvent(name string, op fsnotify.Op) {
	if filepath.Clean(name) != w.input {
		return
	}
	if op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.debounce, w.runOnce)
}

func (w *Watcher) runOnce() {
	err := w.enhancer.EnhanceFile(w.input, w.output)
	if w.onResult != nil {
		w.onResult(err)
	}
}
