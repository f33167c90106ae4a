package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/diff"
	"github.com/yaklabco/gomdedit/pkg/runner"
)

// diffReporter prints the pending change of every file as a git-style
// unified diff followed by a diffstat line.
type diffReporter struct {
	opts Options
}

func (r *diffReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		return 0, nil
	}

	var files, inserted, deleted int
	for _, file := range result.Files {
		if file.Error != nil || file.Report == nil || file.Report.Diff == nil {
			continue
		}
		shown := *file.Report.Diff
		shown.Path = DisplayPath(r.opts.WorkingDir, file.Path)
		r.write(bw, &shown)

		files++
		inserted += shown.Inserted
		deleted += shown.Deleted
	}

	if files > 0 {
		r.writeStat(bw, files, inserted, deleted)
	}

	return files, nil
}

func (r *diffReporter) write(bw *bufio.Writer, file *diff.File) {
	styles := r.opts.Styles

	fmt.Fprintln(bw, styles.DiffHeader.Render(file.Header()))
	for _, line := range strings.Split(strings.TrimSuffix(file.String(), "\n"), "\n") {
		var styled string
		switch {
		case strings.HasPrefix(line, "---"):
			styled = styles.DiffRemove.Render(line)
		case strings.HasPrefix(line, "+++"):
			styled = styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "@@"):
			styled = styles.DiffHunk.Render(line)
		case strings.HasPrefix(line, "+"):
			styled = styles.DiffAdd.Render(line)
		case strings.HasPrefix(line, "-"):
			styled = styles.DiffRemove.Render(line)
		default:
			styled = styles.DiffContext.Render(line)
		}
		fmt.Fprintln(bw, styled)
	}
	fmt.Fprintln(bw)
}

func (r *diffReporter) writeStat(bw *bufio.Writer, files, inserted, deleted int) {
	styles := r.opts.Styles

	parts := []string{fmt.Sprintf("%d %s changed", files, pick(files, "file", "files"))}
	if inserted > 0 {
		parts = append(parts, styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", inserted, pick(inserted, "insertion", "insertions"))))
	}
	if deleted > 0 {
		parts = append(parts, styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", deleted, pick(deleted, "deletion", "deletions"))))
	}
	fmt.Fprintln(bw, strings.Join(parts, ", "))
}

func pick(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
