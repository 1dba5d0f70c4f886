package prism

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a swatch palette source for changes and emits raw bytes
// on a channel. Implementations must emit the current contents immediately
// upon Watch() being called to support initial palette loading.
type Watcher interface {
	// Watch begins observing the source and returns a channel that emits
	// raw bytes when changes occur. The channel is closed when the context
	// is canceled or an unrecoverable error occurs.
	Watch(ctx context.Context) (<-chan []byte, error)
}

// ChannelWatcher wraps an existing byte channel as a Watcher.
// Useful for testing and custom palette sources that already produce
// bytes.
type ChannelWatcher struct {
	ch   <-chan []byte
	sync bool
}

// NewChannelWatcher creates a ChannelWatcher that forwards values from the
// given channel through an internal goroutine.
func NewChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch}
}

// NewSyncChannelWatcher creates a ChannelWatcher that returns the source
// channel directly without an intermediate goroutine.
// Use with SyncMode() for deterministic testing.
func NewSyncChannelWatcher(ch <-chan []byte) *ChannelWatcher {
	return &ChannelWatcher{ch: ch, sync: true}
}

// Watch returns a channel that emits values from the wrapped channel.
func (w *ChannelWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if w.sync {
		return w.ch, nil
	}

	out := make(chan []byte)
	go w.forward(ctx, out)
	return out, nil
}

func (w *ChannelWatcher) forward(ctx context.Context, out chan<- []byte) {
	defer close(out)
	for {
		var raw []byte
		select {
		case <-ctx.Done():
			return
		case v, ok := <-w.ch:
			if !ok {
				return
			}
			raw = v
		}
		select {
		case out <- raw:
		case <-ctx.Done():
			return
		}
	}
}

// FileWatcher watches a palette file and emits its contents on change.
//
// The containing directory is watched rather than the file itself: most
// editors save atomically by writing a temporary file and renaming it over
// the target, which replaces the inode a direct file watch is bound to.
// Events for other files in the directory are filtered out.
type FileWatcher struct {
	path string
}

// NewFileWatcher creates a FileWatcher for the given palette file.
func NewFileWatcher(path string) *FileWatcher {
	return &FileWatcher{path: filepath.Clean(path)}
}

// Watch begins watching the palette file and returns a channel that emits
// its contents whenever it is written or replaced. The current contents
// are emitted immediately to support initial palette loading; a missing
// palette file is an error.
func (w *FileWatcher) Watch(ctx context.Context) (<-chan []byte, error) {
	if _, err := os.Stat(w.path); err != nil {
		return nil, fmt.Errorf("palette file %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch palette directory %s: %w", dir, err)
	}

	out := make(chan []byte)
	go w.relay(ctx, fsw, out)
	return out, nil
}

// relay filters directory events down to the palette file and emits its
// contents for each relevant change.
func (w *FileWatcher) relay(ctx context.Context, fsw *fsnotify.Watcher, out chan<- []byte) {
	defer close(out)
	defer fsw.Close()

	emit := func() bool {
		data, err := os.ReadFile(w.path)
		if err != nil {
			// An atomic save leaves a short gap between the old file
			// disappearing and the new one landing; the rename that
			// completes it produces its own event.
			return true
		}
		select {
		case out <- data:
			return true
		case <-ctx.Done():
			return false
		}
	}

	// Initial contents, consumed by the synchronous first load.
	if !emit() {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !emit() {
				return
			}

		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
			// Keep watching despite transient errors.
		}
	}
}
