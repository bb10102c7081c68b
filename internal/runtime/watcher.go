package runtime

import (
	"context"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/xdg/aliasgate/internal/alog"
)

// debouncePeriod coalesces the burst of filesystem events an editor
// produces for a single save into one catalog rebuild.
const debouncePeriod = 500 * time.Millisecond

// Watch refreshes the catalog when an alias file changes on disk. It
// supplements per-call hot reload for long-lived servers, so edits show
// up without waiting for the next list/get. Watch blocks until ctx is
// canceled; it is a no-op when no alias files are configured.
//
// Parent directories are watched rather than the files themselves, so
// files created after startup and atomic-rename saves are both seen.
func (r *Runtime) Watch(ctx context.Context) error {
	if len(r.cfg.AliasFiles) == 0 {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create alias file watcher")
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(r.cfg.AliasFiles))
	for _, f := range r.cfg.AliasFiles {
		watched[filepath.Clean(f)] = true
		dir := filepath.Dir(f)
		if err := watcher.Add(dir); err != nil {
			alog.Warnw("cannot watch alias file directory", "dir", dir, "error", err)
		}
	}

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debouncePeriod, func() {
				alog.Infow("alias file changed, refreshing catalog", "path", event.Name)
				r.Refresh()
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			alog.Warnw("alias file watcher error", "error", err)
		}
	}
}
