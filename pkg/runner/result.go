package runner

import (
	"errors"
	"fmt"

	"github.com/yaklabco/gomdedit/pkg/diff"
)

// Finding is one problem reported for a file.
type Finding struct {
	// Line is 1-based, or 0 when the finding is file-wide.
	Line int

	Message string
}

func (f Finding) String() string {
	if f.Line == 0 {
		return f.Message
	}
	return fmt.Sprintf("%d: %s", f.Line, f.Message)
}

// Report is what a processor returns for one file.
type Report struct {
	Findings []Finding

	// Modified reports whether the processor rewrote the file.
	Modified bool

	// Diff holds the change a processor would make without writing it.
	Diff *diff.File
}

// FileOutcome pairs a path with its report or error.
type FileOutcome struct {
	Path   string
	Report *Report
	Error  error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered   int
	FilesProcessed    int
	FilesErrored      int
	FilesWithFindings int
	FilesModified     int
	FindingsTotal     int
}

// Result is the overall run result. Files are in discovery order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFindings reports whether any file produced a finding.
func (r *Result) HasFindings() bool {
	return r != nil && r.Stats.FindingsTotal > 0
}

// Err joins the per-file errors, or returns nil.
func (r *Result) Err() error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, f := range r.Files {
		if f.Error != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Path, f.Error))
		}
	}
	return errors.Join(errs...)
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Report == nil {
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.FindingsTotal += len(outcome.Report.Findings)
	if len(outcome.Report.Findings) > 0 {
		r.Stats.FilesWithFindings++
	}
	if outcome.Report.Modified {
		r.Stats.FilesModified++
	}
}
