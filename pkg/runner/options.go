// Package runner discovers markdown files and runs a per-file processor
// over them with a bounded pool of workers.
package runner

// Options controls discovery and concurrency.
type Options struct {
	// Paths are files or directories to process. Empty means the working
	// directory.
	Paths []string

	// WorkingDir resolves relative Paths and glob patterns. Empty means the
	// process working directory.
	WorkingDir string

	// Extensions are the lowercase file extensions treated as markdown.
	// Empty means DefaultExtensions.
	Extensions []string

	// ExcludeGlobs skip matching files and directories.
	ExcludeGlobs []string

	// Jobs bounds concurrent workers. Zero or negative means runtime.NumCPU.
	Jobs int
}

// DefaultExtensions returns the default set of markdown file extensions.
func DefaultExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
