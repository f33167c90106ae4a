package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gomdedit/pkg/runner"
)

// jsonVersion is bumped when the output shape changes incompatibly.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult is one file's outcome.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Findings []JSONFinding `json:"findings"`
	Modified bool          `json:"modified,omitempty"`
	Diff     string        `json:"diff,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// JSONFinding is one finding. Line is omitted for file-wide findings.
type JSONFinding struct {
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

// JSONSummary mirrors runner.Stats.
type JSONSummary struct {
	FilesDiscovered   int `json:"filesDiscovered"`
	FilesChecked      int `json:"filesChecked"`
	FilesWithFindings int `json:"filesWithFindings"`
	FilesModified     int `json:"filesModified"`
	FilesErrored      int `json:"filesErrored"`
	TotalFindings     int `json:"totalFindings"`
}

type jsonReporter struct {
	opts Options
}

func (r *jsonReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := BuildJSON(result, r.opts.WorkingDir)

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFindings, nil
}

// BuildJSON converts a result to its JSON form. Paths are shortened
// against workDir.
func BuildJSON(result *runner.Result, workDir string) *JSONOutput {
	output := &JSONOutput{Version: jsonVersion, Files: make([]JSONFileResult, 0)}
	if result == nil {
		return output
	}

	output.Files = make([]JSONFileResult, 0, len(result.Files))
	for _, file := range result.Files {
		entry := JSONFileResult{
			Path:     DisplayPath(workDir, file.Path),
			Findings: make([]JSONFinding, 0),
		}
		if file.Error != nil {
			entry.Error = file.Error.Error()
		}
		if file.Report != nil {
			entry.Modified = file.Report.Modified
			for _, finding := range file.Report.Findings {
				entry.Findings = append(entry.Findings, JSONFinding{Line: finding.Line, Message: finding.Message})
			}
			if file.Report.Diff != nil {
				shown := *file.Report.Diff
				shown.Path = entry.Path
				entry.Diff = shown.String()
			}
		}
		output.Files = append(output.Files, entry)
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered:   stats.FilesDiscovered,
		FilesChecked:      stats.FilesProcessed,
		FilesWithFindings: stats.FilesWithFindings,
		FilesModified:     stats.FilesModified,
		FilesErrored:      stats.FilesErrored,
		TotalFindings:     stats.FindingsTotal,
	}
	return output
}
