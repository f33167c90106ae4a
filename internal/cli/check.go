package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/compat"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/reporter"
	"github.com/yaklabco/gomdedit/pkg/runner"
)

type checkFlags struct {
	ignore []string
	jobs   int
	format string
}

func newCheckCommand(flags *globalFlags) *cobra.Command {
	cf := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Compare line classification with a CommonMark/GFM parse",
		Long: `Parse Markdown files with goldmark (CommonMark plus GFM tables and task
lists) and report every line whose block type differs from the editor's
line classifier.

The line classifier is deliberately simpler than CommonMark, so some
divergences are expected (for example "1)" ordered markers or "~~~"
fences). The command exits non-zero when any divergence is found.

Examples:
  gomdedit check                 # Check the current directory
  gomdedit check docs/ README.md
  gomdedit check --format summary --jobs 4
  gomdedit check --format json > divergences.json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseReportFormat(cf.format, reporter.FormatText, reporter.FormatSummary, reporter.FormatJSON)
			if err != nil {
				return err
			}
			sess, err := newSession(cmd, flags, &config.Config{Ignore: cf.ignore, Jobs: cf.jobs})
			if err != nil {
				return err
			}

			checker := compat.New()
			process := runner.ProcessorFunc(func(ctx context.Context, path string) (*runner.Report, error) {
				content, _, err := fsutil.ReadFile(ctx, path)
				if err != nil {
					return nil, err
				}
				divergences, err := checker.Check(ctx, content)
				if err != nil {
					return nil, err
				}

				report := &runner.Report{Findings: make([]runner.Finding, 0, len(divergences))}
				for _, d := range divergences {
					report.Findings = append(report.Findings, runner.Finding{
						Line:    d.Line,
						Message: fmt.Sprintf("goldmark reads %s, classifier reads %s", d.Want, d.Got),
					})
				}
				sess.logger.Debug("file checked", logging.FieldPath, path, logging.FieldDivergences, len(divergences))
				return report, nil
			})

			return runFiles(sess, args, process, "check", format)
		},
	}

	cmd.Flags().StringSliceVar(&cf.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&cf.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&cf.format, "format", string(reporter.FormatText), "output format: text, summary, json")

	return cmd
}

// parseReportFormat parses a --format value and checks it against the
// formats a command supports.
func parseReportFormat(value string, allowed ...reporter.Format) (reporter.Format, error) {
	format, err := reporter.ParseFormat(value)
	if err == nil && !slices.Contains(allowed, format) {
		err = fmt.Errorf("format %q is not supported by this command", value)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	return format, nil
}

// runFiles runs process over the discovered files, writes the result with
// the reporter for format, and returns ErrChecksFailed when anything was
// found.
func runFiles(sess *session, paths []string, process runner.Processor, name string, format reporter.Format) error {
	workDir, err := workingDir()
	if err != nil {
		return err
	}

	opts := runner.Options{
		Paths:        paths,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: sess.cfg.Ignore,
		Jobs:         sess.cfg.Jobs,
	}
	sess.logger.Debug("starting "+name,
		logging.FieldPaths, opts.Paths,
		logging.FieldWorkingDir, opts.WorkingDir,
		logging.FieldJobs, opts.Jobs,
	)

	result, err := runner.New(process).Run(sess.ctx, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	for _, file := range result.Files {
		if file.Error != nil {
			sess.logger.Error("file failed",
				logging.FieldPath, reporter.DisplayPath(workDir, file.Path),
				logging.FieldError, file.Error,
			)
		}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:     sess.out,
		Format:     format,
		Styles:     sess.styles,
		WorkingDir: workDir,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	}
	if _, err := rep.Report(sess.ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	sess.logger.Debug(name+" finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesModified, result.Stats.FilesModified,
	)

	if err := result.Err(); err != nil {
		return err
	}
	if result.HasFindings() {
		return ErrChecksFailed
	}
	return nil
}
