package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/engine"
)

// Output formats for the inspection commands.
const (
	formatTable = "table"
	formatYAML  = "yaml"
)

func validateFormat(format string) error {
	if format != formatTable && format != formatYAML {
		return fmt.Errorf("%w: unknown format %q (want table or yaml)", ErrInvalidUsage, format)
	}
	return nil
}

// blockEntry is the YAML form of one line block.
type blockEntry struct {
	Line  int    `yaml:"line"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Type  string `yaml:"type"`
	Text  string `yaml:"text"`
}

// spanEntry is the YAML form of a span or hidden range.
type spanEntry struct {
	Kind  string `yaml:"kind"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	URL   string `yaml:"url,omitempty"`
	Text  string `yaml:"text"`
}

func newBlocksCommand(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "blocks FILE",
		Short: "List the block type of every line",
		Long: `List the block type assigned to every line of a Markdown document.

Use "-" to read from standard input.

Examples:
  gomdedit blocks README.md
  gomdedit blocks --format yaml notes.md
  cat notes.md | gomdedit blocks -`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			sess, err := newSession(cmd, flags, nil)
			if err != nil {
				return err
			}
			doc, _, err := sess.openDocument(args[0])
			if err != nil {
				return err
			}
			return writeBlocks(sess, doc, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table, yaml")

	return cmd
}

func writeBlocks(sess *session, doc *engine.Document, format string) error {
	text := doc.Text()
	blocks := doc.LineBlocks()

	if format == formatYAML {
		entries := make([]blockEntry, 0, len(blocks))
		for i, lb := range blocks {
			entries = append(entries, blockEntry{
				Line:  i + 1,
				Start: lb.Range.Start,
				End:   lb.Range.End,
				Type:  lb.Type.String(),
				Text:  lb.Content(text),
			})
		}
		return writeYAML(sess.out, entries)
	}

	table := pretty.NewBlockTable(sess.styles, pretty.TerminalWidth(sess.out))
	_, err := io.WriteString(sess.out, table.FormatBlocks(text, blocks))
	return err
}

func newSpansCommand(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "spans FILE",
		Short: "List inline style spans and hidden marker ranges",
		Long: `List the inline style spans of a Markdown document and the marker ranges
an editor hides while rendering it.

Examples:
  gomdedit spans README.md
  echo '**bold** and ==marked==' | gomdedit spans --format yaml -`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			sess, err := newSession(cmd, flags, nil)
			if err != nil {
				return err
			}
			doc, _, err := sess.openDocument(args[0])
			if err != nil {
				return err
			}
			return writeSpans(sess, doc, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatTable, "output format: table, yaml")

	return cmd
}

func writeSpans(sess *session, doc *engine.Document, format string) error {
	text := doc.Text()
	spans := doc.StyleSpans()
	hidden := doc.HiddenRanges()

	if format == formatYAML {
		out := struct {
			Spans  []spanEntry `yaml:"spans"`
			Hidden []spanEntry `yaml:"hidden"`
		}{}
		for _, span := range spans {
			out.Spans = append(out.Spans, spanEntry{
				Kind:  span.Kind.String(),
				Start: span.Range.Start,
				End:   span.Range.End,
				URL:   span.URL,
				Text:  text[span.Range.Start:span.Range.End],
			})
		}
		for _, r := range hidden {
			out.Hidden = append(out.Hidden, spanEntry{
				Kind:  "Hidden",
				Start: r.Start,
				End:   r.End,
				Text:  text[r.Start:r.End],
			})
		}
		return writeYAML(sess.out, out)
	}

	table := pretty.NewBlockTable(sess.styles, pretty.TerminalWidth(sess.out))
	_, err := io.WriteString(sess.out, table.FormatSpans(text, spans, hidden))
	return err
}

func newShowCommand(flags *globalFlags) *cobra.Command {
	var lineNumbers bool
	var width int

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Preview a document with markers hidden and spans styled",
		Long: `Render a Markdown document the way the editor displays it: marker
characters such as ** and [](url) are hidden and inline spans are styled.

Lines are clipped to the terminal width when writing to a terminal, or to
--width when given.

Examples:
  gomdedit show README.md
  gomdedit show -n --width 60 notes.md`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags, nil)
			if err != nil {
				return err
			}
			doc, _, err := sess.openDocument(args[0])
			if err != nil {
				return err
			}

			if width == 0 && pretty.IsTerminal(sess.out) {
				width = pretty.TerminalWidth(sess.out)
			}
			preview := pretty.Preview{Styles: sess.styles, Width: width, LineNumbers: lineNumbers}
			_, err = io.WriteString(sess.out, preview.Render(doc))
			return err
		},
	}

	cmd.Flags().BoolVarP(&lineNumbers, "line-numbers", "n", false, "prefix lines with their number")
	cmd.Flags().IntVar(&width, "width", 0, "clip lines to this many columns (default: terminal width)")

	return cmd
}

func writeYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return encoder.Close()
}
