package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/diff"
	"github.com/yaklabco/gomdedit/pkg/engine"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
	"github.com/yaklabco/gomdedit/pkg/reporter"
	"github.com/yaklabco/gomdedit/pkg/runner"
	"github.com/yaklabco/gomdedit/pkg/table"
)

func newTableCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Create and normalize pipe tables",
	}

	cmd.AddCommand(newTableNewCommand(flags))
	cmd.AddCommand(newTableFmtCommand(flags))

	return cmd
}

type tableNewFlags struct {
	rows    int
	columns int
	align   []string
	aligned bool
}

func newTableNewCommand(flags *globalFlags) *cobra.Command {
	tf := &tableNewFlags{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Print an empty table",
		Long: `Print an empty pipe table with "Column N" headers.

The size defaults to table.default_rows and table.default_columns from the
configuration; rows include the header row.

Examples:
  gomdedit table new
  gomdedit table new --rows 4 --columns 2 --align left,right`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCfg := &config.Config{}
			if cmd.Flags().Changed("aligned") {
				cliCfg.Table.Aligned = config.Bool(tf.aligned)
			}
			sess, err := newSession(cmd, flags, cliCfg)
			if err != nil {
				return err
			}

			rows, columns := sess.cfg.Table.DefaultRows, sess.cfg.Table.DefaultColumns
			if cmd.Flags().Changed("rows") {
				rows = tf.rows
			}
			if cmd.Flags().Changed("columns") {
				columns = tf.columns
			}
			if rows < 1 || columns < 1 || rows > config.MaxTableDimension || columns > config.MaxTableDimension {
				return fmt.Errorf("%w: rows and columns must be between 1 and %d",
					ErrInvalidUsage, config.MaxTableDimension)
			}

			model := table.NewSized(rows, columns)
			for i, name := range tf.align {
				if i >= columns {
					break
				}
				alignment, err := table.ParseAlignment(strings.TrimSpace(name))
				if err != nil {
					return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
				}
				model.SetAlignment(alignment, i)
			}

			_, err = io.WriteString(sess.out, renderTable(model, sess.cfg.Table.AlignedEnabled())+"\n")
			return err
		},
	}

	cmd.Flags().IntVar(&tf.rows, "rows", config.DefaultTableRows, "number of rows including the header")
	cmd.Flags().IntVar(&tf.columns, "columns", config.DefaultTableColumns, "number of columns")
	cmd.Flags().StringSliceVar(&tf.align, "align", nil, "per-column alignment: left, center, right")
	cmd.Flags().BoolVar(&tf.aligned, "aligned", false, "pad cells to the column width")

	return cmd
}

func renderTable(model *table.Model, aligned bool) string {
	if aligned {
		return model.Format()
	}
	return model.ToMarkdown()
}

type tableFmtFlags struct {
	write   bool
	aligned bool
	ignore  []string
	jobs    int
	format  string
}

func newTableFmtCommand(flags *globalFlags) *cobra.Command {
	tf := &tableFmtFlags{}

	cmd := &cobra.Command{
		Use:   "fmt [paths...]",
		Short: "Normalize every table in Markdown files",
		Long: `Rewrite every pipe table through the table model: ragged rows are padded
to the header's column count and separators are regenerated from the
column alignments.

Without --write, files whose tables would change are listed and the command
exits non-zero. With a single "-" argument the formatted document is read
from standard input and written to standard output.

Examples:
  gomdedit table fmt                 # List files needing formatting
  gomdedit table fmt --write docs/   # Rewrite files in place
  gomdedit table fmt --format diff   # Show the pending changes
  gomdedit table fmt --aligned -     # Filter stdin`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseReportFormat(tf.format,
				reporter.FormatText, reporter.FormatSummary, reporter.FormatJSON, reporter.FormatDiff)
			if err != nil {
				return err
			}
			cliCfg := &config.Config{Write: tf.write, Ignore: tf.ignore, Jobs: tf.jobs}
			if cmd.Flags().Changed("aligned") {
				cliCfg.Table.Aligned = config.Bool(tf.aligned)
			}
			sess, err := newSession(cmd, flags, cliCfg)
			if err != nil {
				return err
			}

			if len(args) == 1 && args[0] == stdinPath {
				return formatStdin(sess)
			}
			return formatFiles(sess, args, format)
		},
	}

	cmd.Flags().BoolVarP(&tf.write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&tf.aligned, "aligned", false, "pad cells to the column width")
	cmd.Flags().StringSliceVar(&tf.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&tf.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringVar(&tf.format, "format", string(reporter.FormatText), "output format: text, summary, json, diff")

	return cmd
}

func formatStdin(sess *session) error {
	doc, _, err := sess.openDocument(stdinPath)
	if err != nil {
		return err
	}
	if _, err := doc.FormatTables(sess.cfg.Table.AlignedEnabled()); err != nil {
		return fmt.Errorf("format tables: %w", err)
	}
	_, err = io.WriteString(sess.out, doc.Text())
	return err
}

func formatFiles(sess *session, paths []string, format reporter.Format) error {
	aligned := sess.cfg.Table.AlignedEnabled()
	write := sess.cfg.Write

	process := runner.ProcessorFunc(func(ctx context.Context, path string) (*runner.Report, error) {
		doc, info, err := sess.openDocument(path)
		if err != nil {
			return nil, err
		}
		original := doc.Text()
		changed, err := doc.FormatTables(aligned)
		if err != nil {
			return nil, fmt.Errorf("format tables: %w", err)
		}

		report := &runner.Report{}
		if changed == 0 {
			return report, nil
		}
		if !write {
			report.Findings = append(report.Findings, runner.Finding{
				Message: fmt.Sprintf("%d %s would be reformatted", changed, plural(changed, "table", "tables")),
			})
			report.Diff = diff.Compute(path, original, doc.Text())
			return report, nil
		}

		report.Modified, err = fsutil.Rewrite(ctx, info, []byte(doc.Text()))
		if err != nil {
			return nil, err
		}
		sess.logger.Debug("tables formatted", logging.FieldPath, path, logging.FieldTables, changed)
		return report, nil
	})

	return runFiles(sess, paths, process, "table fmt", format)
}

// renderDocument is shared by commands that print a whole document.
func renderDocument(w io.Writer, doc *engine.Document) error {
	_, err := io.WriteString(w, doc.Text())
	return err
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
