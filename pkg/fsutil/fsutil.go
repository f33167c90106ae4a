// Package fsutil reads markdown files with enough metadata to detect
// concurrent edits, and writes them back atomically.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
)

// Sentinel errors for errors.Is.
var (
	ErrNotFound    = errors.New("file not found")
	ErrIsDirectory = errors.New("path is a directory")
	ErrModified    = errors.New("file changed on disk since it was read")
)

// FileInfo is the state of a file when it was read.
type FileInfo struct {
	Path string
	Mode os.FileMode
	Hash [sha256.Size]byte
}

// ReadFile returns the content of path and a snapshot of its state.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	case stat.IsDir():
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, &FileInfo{Path: path, Mode: stat.Mode().Perm(), Hash: sha256.Sum256(content)}, nil
}

// Rewrite replaces the file described by info with content, keeping its
// mode. It refuses with ErrModified when the file no longer matches the
// snapshot, and does nothing when content is unchanged. It reports whether
// the file was written.
func Rewrite(ctx context.Context, info *FileInfo, content []byte) (bool, error) {
	current, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("re-read %s: %w", info.Path, err)
	}
	if sha256.Sum256(current) != info.Hash {
		return false, fmt.Errorf("%w: %s", ErrModified, info.Path)
	}
	if sha256.Sum256(content) == info.Hash {
		return false, nil
	}

	if err := WriteAtomic(ctx, info.Path, content, info.Mode); err != nil {
		return false, err
	}
	return true, nil
}
