// SPDX-License-Identifier: GPL-3.0-only

package datasets

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"dialcodes-server/commons"

	"github.com/fsnotify/fsnotify"
)

// Watch evicts cached datasets whose files change until ctx is done. It
// blocks, so callers run it in its own goroutine.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("dataset watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.dir); err != nil {
		return fmt.Errorf("watch %s: %w", s.dir, err)
	}
	commons.Logger.Infof("Watching %s for dataset changes", s.dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			s.handleEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			commons.Logger.Warnf("Dataset watcher error: %v", err)
		}
	}
}

func (s *Store) handleEvent(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".json") {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	name := strings.TrimSuffix(filepath.Base(event.Name), ".json")
	commons.Logger.Debugf("Dataset file %s changed (%s)", event.Name, event.Op)
	s.Invalidate(name)
}
