package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// BackupMode selects where backups go.
type BackupMode string

const (
	// BackupSidecar stores the backup next to the essay with BackupSuffix appended.
	BackupSidecar BackupMode = "sidecar"

	// BackupNone disables backups.
	BackupNone BackupMode = "none"
)

// BackupSuffix is appended to the essay path in sidecar mode.
const BackupSuffix = ".proofline.bak"

// Valid reports whether m is a known mode.
func (m BackupMode) Valid() bool {
	return m == BackupSidecar || m == BackupNone
}

// BackupPath returns where the backup of path lives, or "" in BackupNone mode.
func BackupPath(path string, mode BackupMode) string {
	if mode == BackupNone {
		return ""
	}
	return path + BackupSuffix
}

// Backup copies path to its backup location unless a backup already exists, so
// repeated applies keep the oldest content. It returns the backup path when one was
// written and "" otherwise.
func Backup(ctx context.Context, path string, mode BackupMode) (string, error) {
	target := BackupPath(path, mode)
	if target == "" {
		return "", nil
	}

	_, err := os.Stat(target)
	switch {
	case err == nil:
		return "", nil
	case !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("stat backup: %w", err)
	}

	content, stamp, err := Read(ctx, path)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read original for backup: %w", err)
	}

	if err := WriteAtomic(ctx, target, content, stamp.Mode); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return target, nil
}

// Restore writes the backup of path back over it. It reports false when there
// is no backup.
func Restore(ctx context.Context, path string, mode BackupMode) (bool, error) {
	source := BackupPath(path, mode)
	if source == "" {
		return false, nil
	}

	content, stamp, err := Read(ctx, source)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read backup: %w", err)
	}

	if err := WriteAtomic(ctx, path, content, stamp.Mode); err != nil {
		return false, fmt.Errorf("restore from backup: %w", err)
	}
	return true, nil
}
