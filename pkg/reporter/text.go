package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gomdedit/pkg/runner"
)

// bufWriterSize is the buffer size for report writers (64 KiB).
const bufWriterSize = 64 * 1024

// textReporter groups findings by file and ends with a summary.
type textReporter struct {
	opts      Options
	summarize func(runner.Stats) string
}

func (r *textReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	styles := r.opts.Styles
	total := 0
	for _, file := range result.Files {
		if file.Error != nil || file.Report == nil || len(file.Report.Findings) == 0 {
			continue
		}
		path := DisplayPath(r.opts.WorkingDir, file.Path)
		fmt.Fprintln(bw, styles.FormatFileHeader(path, len(file.Report.Findings)))
		for _, finding := range file.Report.Findings {
			fmt.Fprint(bw, styles.FormatFinding(path, finding))
			total++
		}
	}

	fmt.Fprint(bw, r.summarize(result.Stats))

	return total, nil
}
