package profile

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch follows a profile file and sends the re-parsed File on every
// change. The initial load is delivered first; a load error at that point
// is returned directly so callers fail fast on a broken file. Later parse
// errors are skipped, keeping the last good configuration in effect.
//
// Uses fsnotify for efficient file watching with a polling fallback. The
// channel is closed when the context is cancelled.
func Watch(ctx context.Context, path string) (<-chan *File, error) {
	first, err := Load(path)
	if err != nil {
		return nil, err
	}

	ch := make(chan *File, 1)
	ch <- first

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			watchPolling(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory (more reliable than watching the file
		// directly, and survives editors that replace the file).
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			watcher.Close()
			watchPolling(ctx, ch, path)
			return
		}

		watchEvents(ctx, ch, path, watcher)
	}()

	return ch, nil
}

func watchEvents(ctx context.Context, ch chan<- *File, path string, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(ctx, ch, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable, keep watching.
			_ = err
		}
	}
}

func watchPolling(ctx context.Context, ch chan<- *File, path string) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	var lastMod time.Time
	var lastSize int64
	if info, err := os.Stat(path); err == nil {
		lastMod, lastSize = info.ModTime(), info.Size()
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) && info.Size() == lastSize {
				continue
			}
			lastMod, lastSize = info.ModTime(), info.Size()
			reload(ctx, ch, path)
		}
	}
}

func reload(ctx context.Context, ch chan<- *File, path string) {
	f, err := Load(path)
	if err != nil {
		return
	}
	select {
	case ch <- f:
	case <-ctx.Done():
	}
}
