package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/runner"
)

// writeTree creates files (with parent directories) under dir.
func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()
	for _, f := range files {
		p := filepath.Join(dir, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("# "+f+"\n"), 0o644))
	}
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir,
		"readme.md",
		"docs/guide.md",
		"docs/api.MARKDOWN",
		"src/main.go",
		"notes.txt",
		".hidden/secret.md",
		"docs/.draft.md",
	)

	files, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "docs/api.MARKDOWN"),
		filepath.Join(dir, "docs/guide.md"),
		filepath.Join(dir, "readme.md"),
	}, files)
}

func TestDiscover_ExplicitFileAndDedup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "a.md", ".hidden.md")

	files, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"a.md", ".", filepath.Join(dir, "a.md"), ".hidden.md"},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, ".hidden.md"), filepath.Join(dir, "a.md")}, files)
}

func TestDiscover_Excludes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "keep.md", "vendor/x.md", "deep/node_modules/y.md", "CHANGELOG.md")

	files, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"vendor/**", "**/node_modules", "CHANGELOG.md"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "keep.md")}, files)
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		Paths:      []string{"nope.md"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.Options{WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"docs/a.md", "*.md", true},
		{"docs/a.md", "docs/*.md", true},
		{"docs/a.md", "other/*.md", false},
		{"vendor/x/y.md", "vendor/**", true},
		{"vendorx/y.md", "vendor/**", false},
		{"a/b/node_modules/c.md", "**/node_modules", true},
		{"a/b/c.md", "**/c.md", true},
		{"a/b/c.md", "**", true},
		{"a/b/c.md", "[", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, runner.MatchGlob(tt.path, tt.pattern))
		})
	}
}
