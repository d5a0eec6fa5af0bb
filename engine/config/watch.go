package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file whenever it is written or replaced and publishes each
// valid result. Invalid edits are logged and skipped. The channel closes when ctx ends.
//
// The parent directory is watched rather than the file so editors that save by
// renaming a temporary file are still seen.
//
// Parameters:
//   - ctx: stops the watch when done
//   - path: the config file
//
// Returns:
//   - <-chan Config: reloaded configurations
//   - error: an error if the watcher could not be started
func Watch(ctx context.Context, path string) (<-chan Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	out := make(chan Config, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					log.Printf("[Config] reload skipped: %v", err)
					continue
				}
				log.Printf("[Config] reloaded %s", abs)
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("[Config] watcher error: %v", err)
			}
		}
	}()
	return out, nil
}
