package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors the store's backing file and reloads on external changes,
// typically an operator hand-editing the document. Bursts of writes collapse
// into a single reload after the debounce delay. Blocks until the context is
// canceled.
func Watch(ctx context.Context, store *Store, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory, editors and atomic saves replace the file inode
	dir := filepath.Dir(store.Path())
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add %s to watcher: %w", dir, err)
	}

	target := filepath.Clean(store.Path())
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] stopping config watcher for %s, %v", store.Path(), ctx.Err())
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			timerC = timer.C
		case <-timerC:
			timerC = nil
			if err := store.Reload(); err != nil {
				log.Printf("[WARN] failed to reload config %s: %v", store.Path(), err)
				continue
			}
			log.Printf("[INFO] config %s reloaded", store.Path())
		case e, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[WARN] config watcher error: %v", e)
		}
	}
}
