package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# hi\n"), 0o600))

	content, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "# hi\n", string(content))
	assert.Equal(t, os.FileMode(0o600), info.Mode)

	_, _, err = fsutil.ReadFile(context.Background(), filepath.Join(dir, "missing.md"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.ReadFile(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("a"), 0))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not linger")
}

func TestWriteAtomic_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.md")
	require.ErrorIs(t, fsutil.WriteAtomic(ctx, path, []byte("a"), 0), context.Canceled)
	assert.NoFileExists(t, path)
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o640))

	_, info, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	written, err := fsutil.Rewrite(ctx, info, []byte("old"))
	require.NoError(t, err)
	assert.False(t, written, "unchanged content is not written")

	written, err = fsutil.Rewrite(ctx, info, []byte("new"))
	require.NoError(t, err)
	assert.True(t, written)

	stat, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), stat.Mode().Perm())

	_, err = fsutil.Rewrite(ctx, info, []byte("newer"))
	require.ErrorIs(t, err, fsutil.ErrModified, "snapshot is stale after the first rewrite")
}
