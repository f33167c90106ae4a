// Package reporter writes runner results as text, JSON or unified diffs.
package reporter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/runner"
)

// Reporter formats and writes a run result.
type Reporter interface {
	// Report writes output for result and returns the number of findings
	// reported.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatText    Format = "text"
	FormatSummary Format = "summary"
	FormatJSON    Format = "json"
	FormatDiff    Format = "diff"
)

// ParseFormat parses a format string. Empty means FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	format := Format(s)
	if !format.IsValid() {
		return "", fmt.Errorf("unknown format %q; valid formats: text, summary, json, diff", s)
	}
	return format, nil
}

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatSummary, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// Options configures a reporter.
type Options struct {
	// Writer receives the report. Nil means os.Stdout.
	Writer io.Writer

	Format Format

	// Styles renders terminal output. Nil means no color.
	Styles *pretty.Styles

	// WorkingDir shortens paths that lie inside it.
	WorkingDir string

	// Compact disables JSON indentation.
	Compact bool
}

// New creates a Reporter for opts.Format.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Styles == nil {
		opts.Styles = pretty.NewStyles(false)
	}

	switch opts.Format {
	case FormatText, "":
		return &textReporter{opts: opts, summarize: opts.Styles.FormatSummaryOneLine}, nil
	case FormatSummary:
		return &textReporter{opts: opts, summarize: opts.Styles.FormatSummary}, nil
	case FormatJSON:
		return &jsonReporter{opts: opts}, nil
	case FormatDiff:
		return &diffReporter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", opts.Format)
	}
}

// DisplayPath shortens path relative to workDir when it lies inside it.
func DisplayPath(workDir, path string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
