package dataset

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the hub when either CSV changes on disk. Events are
// debounced because editors and atomic-save tools emit several per save.
type Watcher struct {
	hub      *Hub
	debounce time.Duration
}

func NewWatcher(hub *Hub) *Watcher {
	return &Watcher{hub: hub, debounce: 500 * time.Millisecond}
}

// Run blocks until ctx is done, reloading after relevant file events.
// The parent directories are watched rather than the files themselves so
// rename-based saves keep working.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()

	src := w.hub.Source()
	targets := map[string]bool{
		filepath.Clean(src.WeatherPath): true,
		filepath.Clean(src.MatchesPath): true,
	}
	dirs := map[string]bool{}
	for path := range targets {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		log.Printf("dataset: watching %s", dir)
	}

	var (
		timer   *time.Timer
		reloadC <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			log.Println("dataset: watcher shutting down")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				reloadC = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-reloadC:
			timer = nil
			reloadC = nil
			log.Println("dataset: files changed, reloading")
			if _, err := w.hub.Reload(); err != nil {
				log.Printf("dataset: reload failed, keeping previous table: %v", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("dataset: watcher error: %v", err)
		}
	}
}
