package upload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// ErrNotRegularFile is returned when a selection points at a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

// File is an opaque handle to a user-selected file. Only metadata is kept;
// the bytes stay on disk and are never read.
type File struct {
	Name string
	Size int64
	Path string
}

// Stat builds a File from a path without opening it.
func Stat(path string) (File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return File{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}
	return File{Name: info.Name(), Size: info.Size(), Path: abs}, nil
}

// HumanSize renders the size the way file dialogs do, eg. "1.2 kB".
func (f File) HumanSize() string {
	if f.Size < 0 {
		return ""
	}
	return humanize.Bytes(uint64(f.Size))
}
