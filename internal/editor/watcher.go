package editor

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/leg100/tabbed/internal/logging"
	"github.com/leg100/tabbed/internal/pubsub"
)

// FileChangedMsg reports that a watched file changed on disk.
type FileChangedMsg struct {
	Path string
}

// Watcher notifies subscribers of changes to files on disk.
type Watcher struct {
	*pubsub.Broker[FileChangedMsg]

	fsw    *fsnotify.Watcher
	logger logging.Interface
}

func NewWatcher(logger logging.Interface) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		Broker: pubsub.NewBroker[FileChangedMsg](logger),
		fsw:    fsw,
		logger: logger,
	}, nil
}

// Start relays file system events until the context is canceled or the
// watcher is closed.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					w.Publish(FileChangedMsg{Path: filepath.Clean(ev.Name)})
				}
			case err, ok := <-w.fsw.Errors:
				if !ok {
					return
				}
				w.logger.Error("watching files", "error", err)
			}
		}
	}()
}

func (w *Watcher) Add(path string) error {
	return w.fsw.Add(path)
}

func (w *Watcher) Remove(path string) error {
	return w.fsw.Remove(path)
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}
