package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// Discover returns the absolute, sorted, de-duplicated markdown files
// named by opts. Hidden files and directories are skipped during directory
// walks but honored when named explicitly.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	m := matcher{workDir: workDir, extensions: opts.extensions(), excludes: opts.ExcludeGlobs}

	seen := make(map[string]struct{})
	var files []string
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, input := range opts.paths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, abs)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			if m.file(abs) {
				add(abs)
			}
			continue
		}

		found, err := m.walk(ctx, abs)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}

	slices.Sort(files)
	return files, nil
}

func resolveWorkDir(dir string) (string, error) {
	if dir == "" {
		return os.Getwd()
	}
	return filepath.Abs(dir)
}

type matcher struct {
	workDir    string
	extensions []string
	excludes   []string
}

func (m matcher) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(p string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := p != root && strings.HasPrefix(entry.Name(), ".")
		if entry.IsDir() {
			if hidden || m.excluded(p) {
				return filepath.SkipDir
			}
			return nil
		}

		if !hidden && m.file(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

func (m matcher) file(p string) bool {
	ext := strings.ToLower(filepath.Ext(p))
	if !slices.Contains(m.extensions, ext) {
		return false
	}
	return !m.excluded(p)
}

func (m matcher) excluded(p string) bool {
	rel, err := filepath.Rel(m.workDir, p)
	if err != nil {
		rel = p
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range m.excludes {
		if MatchGlob(rel, pattern) {
			return true
		}
	}
	return false
}

// MatchGlob matches a slash-separated relative path against a glob.
// Besides path.Match syntax it understands "dir/**" (anything under dir),
// "**/name" (name as any path component or suffix) and patterns without a
// slash, which are also tried against the base name.
func MatchGlob(rel, pattern string) bool {
	pattern = filepath.ToSlash(pattern)

	switch {
	case pattern == "**":
		return true

	case strings.HasSuffix(pattern, "/**"):
		prefix := strings.TrimSuffix(pattern, "/**")
		return rel == prefix || strings.HasPrefix(rel, prefix+"/")

	case strings.HasPrefix(pattern, "**/"):
		suffix := strings.TrimPrefix(pattern, "**/")
		if strings.HasSuffix(rel, suffix) {
			return true
		}
		for _, part := range strings.Split(rel, "/") {
			if ok, _ := path.Match(suffix, part); ok {
				return true
			}
		}
		return false
	}

	if ok, _ := path.Match(pattern, rel); ok {
		return true
	}
	if !strings.Contains(pattern, "/") {
		ok, _ := path.Match(pattern, path.Base(rel))
		return ok
	}
	return false
}
