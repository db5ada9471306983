package fs

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jot/pkg/core"
)

const (
	watchBuffer = 64

	// tailSize is how many consumed bytes are kept to detect in-place rewrites.
	tailSize = 256
)

// Watch follows the notebook like `tail -f`: every complete line appended
// after the call is emitted as an EventAppend. The parent directory is
// watched (and created if missing, like Append does) so the notebook does
// not need to exist yet.
func (r *Repository) Watch(ctx context.Context) (<-chan core.Event, error) {
	dir := filepath.Dir(r.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	events := make(chan core.Event, watchBuffer)
	w := &watchWorker{
		repo:    r,
		name:    filepath.Base(r.Path),
		watcher: watcher,
		events:  events,
	}
	if err := w.skipExisting(); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	r.setWatcherActive(true)
	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		if r.config.Logger != nil {
			r.config.Logger.Error("watcher panic", "error", err)
		}
	}))

	return events, nil
}

type watchWorker struct {
	repo    *Repository
	name    string
	watcher *fsnotify.Watcher
	events  chan<- core.Event

	offset  int64  // bytes of the notebook already consumed
	tail    []byte // last bytes consumed, ending at offset
	partial string // trailing bytes not yet terminated by '\n'
}

// skipExisting positions the worker at the current end of the notebook.
func (w *watchWorker) skipExisting() error {
	f, err := os.Open(w.repo.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open notebook: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat notebook: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("notebook path is a directory: %s", w.repo.Path)
	}

	n := min(info.Size(), tailSize)
	tail := make([]byte, n)
	if _, err := f.ReadAt(tail, info.Size()-n); err != nil && err != io.EOF {
		return fmt.Errorf("failed to read notebook: %w", err)
	}
	w.offset = info.Size()
	w.tail = tail
	return nil
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.repo.setWatcherActive(false)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.repo.config.Logger != nil {
				w.repo.config.Logger.Error("fsnotify error", "error", wErr)
			}
		}
	}
}

func (w *watchWorker) handle(ctx context.Context, event fsnotify.Event) {
	if filepath.Base(event.Name) != w.name {
		return
	}
	if w.repo.config.Logger != nil {
		w.repo.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		w.reset(ctx)
	case event.Has(fsnotify.Create):
		// A new inode: whatever we consumed before is gone.
		w.reset(ctx)
		w.drain(ctx)
	case event.Has(fsnotify.Write):
		w.drain(ctx)
	}
}

func (w *watchWorker) reset(ctx context.Context) {
	if w.offset == 0 && w.partial == "" {
		return
	}
	w.offset = 0
	w.tail = nil
	w.partial = ""
	w.send(ctx, core.Event{Type: core.EventReset, Timestamp: time.Now().Unix()})
}

// drain reads everything appended since the last offset and emits one event
// per complete line.
func (w *watchWorker) drain(ctx context.Context) {
	f, err := os.Open(w.repo.Path)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		w.logReadError(err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		w.logReadError(err)
		return
	}
	if info.Size() < w.offset || !w.tailMatches(f) {
		w.reset(ctx)
	}

	if _, err := f.Seek(w.offset, io.SeekStart); err != nil {
		w.logReadError(err)
		return
	}
	data, err := io.ReadAll(f)
	if err != nil {
		w.logReadError(err)
		return
	}
	w.offset += int64(len(data))
	w.tail = append(w.tail, data...)
	if len(w.tail) > tailSize {
		w.tail = append([]byte(nil), w.tail[len(w.tail)-tailSize:]...)
	}

	buf := w.partial + string(data)
	lines := strings.Split(buf, "\n")
	w.partial = lines[len(lines)-1]

	for _, line := range lines[:len(lines)-1] {
		w.send(ctx, core.Event{
			Type:      core.EventAppend,
			Note:      parseLine(line),
			Timestamp: time.Now().Unix(),
		})
	}
}

// tailMatches reports whether the bytes just before offset are still the
// ones consumed. A rewrite in place of the same or a larger size fails this.
func (w *watchWorker) tailMatches(f *os.File) bool {
	if len(w.tail) == 0 {
		return true
	}
	buf := make([]byte, len(w.tail))
	if _, err := f.ReadAt(buf, w.offset-int64(len(w.tail))); err != nil {
		return false
	}
	return bytes.Equal(buf, w.tail)
}

func (w *watchWorker) send(ctx context.Context, e core.Event) {
	select {
	case w.events <- e:
	case <-ctx.Done():
	}
}

func (w *watchWorker) logReadError(err error) {
	if w.repo.config.Logger != nil {
		w.repo.config.Logger.Error("failed to read appended notes", "path", w.repo.Path, "error", err)
	}
}
