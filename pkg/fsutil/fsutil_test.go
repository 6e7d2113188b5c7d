package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/fsutil"
)

func writeEssay(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "essay.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("content and stamp", func(t *testing.T) {
		t.Parallel()

		path := writeEssay(t, "I am very very happy")
		content, stamp, err := fsutil.Read(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, "I am very very happy", string(content))
		assert.Equal(t, path, stamp.Path)
		assert.Equal(t, int64(20), stamp.Size)
		assert.Equal(t, os.FileMode(0o600), stamp.Mode)
		assert.NotZero(t, stamp.Sum)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.Read(context.Background(), filepath.Join(t.TempDir(), "absent.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.Read(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.Read(ctx, "essay.md")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestStampStale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		change func(t *testing.T, path string)
		want   bool
	}{
		{
			name:   "untouched",
			change: func(*testing.T, string) {},
			want:   false,
		},
		{
			name: "rewritten",
			change: func(t *testing.T, path string) {
				t.Helper()
				require.NoError(t, os.WriteFile(path, []byte("I am extremely happy"), 0o600))
			},
			want: true,
		},
		{
			name: "same size, same mtime, different content",
			change: func(t *testing.T, path string) {
				t.Helper()
				stat, err := os.Stat(path)
				require.NoError(t, err)
				require.NoError(t, os.WriteFile(path, []byte("I am VERY very happy"), 0o600))
				require.NoError(t, os.Chtimes(path, time.Now(), stat.ModTime()))
			},
			want: true,
		},
		{
			name: "deleted",
			change: func(t *testing.T, path string) {
				t.Helper()
				require.NoError(t, os.Remove(path))
			},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			path := writeEssay(t, "I am very very happy")
			_, stamp, err := fsutil.Read(ctx, path)
			require.NoError(t, err)

			tc.change(t, path)

			stale, err := stamp.Stale(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, stale)
		})
	}
}

func TestReplace(t *testing.T) {
	t.Parallel()

	t.Run("writes fresh file and keeps mode", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := writeEssay(t, "old text")
		_, stamp, err := fsutil.Read(ctx, path)
		require.NoError(t, err)

		require.NoError(t, fsutil.Replace(ctx, stamp, []byte("new text")))

		content, after, err := fsutil.Read(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, "new text", string(content))
		assert.Equal(t, os.FileMode(0o600), after.Mode)
	})

	t.Run("refuses stale file", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		path := writeEssay(t, "old text")
		_, stamp, err := fsutil.Read(ctx, path)
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, []byte("edited elsewhere"), 0o600))

		err = fsutil.Replace(ctx, stamp, []byte("new text"))
		require.ErrorIs(t, err, fsutil.ErrStale)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "edited elsewhere", string(content))
	})
}

func TestWriteAtomic_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "essay.txt")
	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("text"), 0))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "essay.txt", entries[0].Name())

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, stat.Mode().Perm())
}
