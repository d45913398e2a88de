package upload

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
)

// DropFolder turns files created in (or moved into) a directory into
// selections. It is the terminal stand-in for drag-and-drop.
type DropFolder struct {
	dir     string
	watcher *fsnotify.Watcher
	files   chan File
	errs    chan error
}

// WatchDropFolder starts watching dir, creating it when missing.
func WatchDropFolder(dir string) (*DropFolder, error) {
	if dir == "" {
		return nil, errors.New("drop folder path is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create drop folder: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch drop folder: %w", err)
	}
	return &DropFolder{
		dir:     dir,
		watcher: watcher,
		files:   make(chan File, 1),
		errs:    make(chan error, 1),
	}, nil
}

// Dir returns the watched directory.
func (d *DropFolder) Dir() string {
	return d.dir
}

// Files delivers dropped files. Only the newest pending drop is kept.
func (d *DropFolder) Files() <-chan File {
	return d.files
}

// Errors delivers watcher errors without blocking the watch loop.
func (d *DropFolder) Errors() <-chan error {
	return d.errs
}

// Run pumps watcher events until ctx is cancelled. It closes the watcher and
// both channels before returning.
func (d *DropFolder) Run(ctx context.Context) error {
	defer close(d.errs)
	defer close(d.files)
	defer func() { _ = d.watcher.Close() }()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-d.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Write) {
				continue
			}
			file, err := Stat(event.Name)
			if err != nil {
				// renamed away, a directory, or still being written
				continue
			}
			d.offer(file)
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return nil
			}
			select {
			case d.errs <- err:
			default:
			}
		}
	}
}

// offer replaces any undelivered drop with the newest one.
func (d *DropFolder) offer(file File) {
	for {
		select {
		case d.files <- file:
			return
		default:
		}
		select {
		case <-d.files:
		default:
		}
	}
}
