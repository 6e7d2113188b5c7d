// Package fsutil reads and writes essay files safely: stale-write detection,
// atomic replacement and sidecar backups.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"
)

// Sentinel errors for errors.Is.
var (
	// ErrNotFound indicates the essay does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates the essay cannot be read or written.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path names a directory.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrStale indicates the essay changed on disk after it was read.
	ErrStale = errors.New("file changed since it was read")
)

// Stamp records the state of an essay when it was read.
type Stamp struct {
	Path    string
	Mode    os.FileMode
	ModTime time.Time
	Size    int64
	Sum     [sha256.Size]byte
}

// Read returns the content of path and a Stamp for later stale checks.
func Read(ctx context.Context, path string) ([]byte, Stamp, error) {
	if err := ctx.Err(); err != nil {
		return nil, Stamp{}, fmt.Errorf("read %s: %w", path, err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, Stamp{}, classify(path, err)
	}
	if stat.IsDir() {
		return nil, Stamp{}, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, Stamp{}, classify(path, err)
	}

	return content, Stamp{
		Path:    path,
		Mode:    stat.Mode().Perm(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Sum:     sha256.Sum256(content),
	}, nil
}

// Stale reports whether the file no longer matches the stamp.
// A deleted file is stale. Size and modification time are compared first;
// the content hash settles the rest.
func (s Stamp) Stale(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("stat %s: %w", s.Path, err)
	}

	stat, err := os.Stat(s.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return true, nil
	case err != nil:
		return false, classify(s.Path, err)
	}

	if stat.Size() != s.Size || !stat.ModTime().Equal(s.ModTime) {
		return true, nil
	}

	content, err := os.ReadFile(s.Path)
	if err != nil {
		return false, classify(s.Path, err)
	}
	return sha256.Sum256(content) != s.Sum, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("access %s: %w", path, err)
	}
}
