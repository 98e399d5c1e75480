package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/phrazzld/scry-deck/internal/deck"
)

// Snapshot is one successfully parsed view of the watched deck file.
// Snapshots are immutable; the watcher swaps in a whole new one on each
// successful reload, so readers never observe a half-updated deck.
type Snapshot struct {
	Path     string
	File     *deck.ParsedFile
	LoadedAt time.Time
}

// Watcher keeps an in-memory snapshot of one deck file and refreshes it
// when the file changes on disk. A reload that fails to parse keeps the
// last good snapshot; the preview API stays serving while the user is
// mid-edit in their editor.
type Watcher struct {
	path    string
	svc     *DeckService
	logger  *slog.Logger
	current atomic.Pointer[Snapshot]
}

// NewWatcher loads the file once (the initial load must succeed) and
// returns a watcher holding that snapshot. Call Watch to start
// following changes.
func NewWatcher(svc *DeckService, path string, logger *slog.Logger) (*Watcher, error) {
	w := &Watcher{path: path, svc: svc, logger: logger}
	if err := w.Reload(); err != nil {
		return nil, err
	}
	return w, nil
}

// Snapshot returns the current snapshot. Safe for concurrent use.
func (w *Watcher) Snapshot() *Snapshot {
	return w.current.Load()
}

// Reload re-reads and re-parses the file, swapping the snapshot on
// success. On failure the previous snapshot stays current and the
// error is returned.
func (w *Watcher) Reload() error {
	f, err := w.svc.Load(w.path)
	if err != nil {
		return err
	}
	w.current.Store(&Snapshot{Path: w.path, File: f, LoadedAt: time.Now().UTC()})
	return nil
}

// Watch follows filesystem events for the deck file until ctx is done.
// The watch is registered on the parent directory: editors commonly
// replace a file by rename, which drops a watch registered on the file
// itself.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if err := w.Reload(); err != nil {
				w.logger.Warn("deck file changed but failed to parse, keeping last good snapshot",
					"path", w.path,
					"error", err)
				continue
			}
			w.logger.Info("deck file reloaded", "path", w.path)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "path", w.path, "error", err)
		}
	}
}
