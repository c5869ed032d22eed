package audit

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/why3tools/prooflint/internal/session"
)

// debounce groups the write bursts editors produce into one re-check.
const debounce = 100 * time.Millisecond

// Watcher re-runs a check whenever a source file changes.
type Watcher struct {
	dir      string
	run      func(path string)
	watcher  *fsnotify.Watcher
	watching bool
	done     chan struct{}
}

// NewWatcher returns a Watcher over dir that calls run with the path of
// every *.mlw file written while watching.
func NewWatcher(dir string, run func(path string)) *Watcher {
	return &Watcher{dir: dir, run: run}
}

// Start begins watching. It returns once the watch is registered; the
// loop runs until Stop.
func (w *Watcher) Start() error {
	if w.watching {
		return fmt.Errorf("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}

	w.watcher = watcher
	w.watching = true
	w.done = make(chan struct{})
	go w.loop()
	return nil
}

// Stop ends the watch and waits for the loop to exit.
func (w *Watcher) Stop() error {
	if !w.watching {
		return nil
	}
	w.watching = false
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Op&fsnotify.Write != fsnotify.Write {
		return
	}
	if !strings.HasSuffix(event.Name, session.SourceExt) {
		return
	}
	// wait for a while after the change so a save burst counts once
	time.Sleep(debounce)
	w.run(event.Name)
}
