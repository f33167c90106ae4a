package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/inline"
	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// Table layout constants.
const (
	tablePadding    = 2
	minContentWidth = 20
	heavySeparator  = "="
)

// BlockTable lists line blocks or spans as a fixed-width table that fits
// the terminal.
type BlockTable struct {
	styles    *Styles
	termWidth int
}

// NewBlockTable creates a table formatter. A non-positive width falls back
// to DefaultTermWidth.
func NewBlockTable(styles *Styles, termWidth int) *BlockTable {
	if termWidth <= 0 {
		termWidth = DefaultTermWidth
	}
	return &BlockTable{styles: styles, termWidth: termWidth}
}

// tableRow is one row before layout.
type tableRow struct {
	cells   []string
	content string
}

// FormatBlocks renders one row per line block: line number, byte range,
// type and the line text.
func (t *BlockTable) FormatBlocks(text string, blocks []block.LineBlock) string {
	rows := make([]tableRow, 0, len(blocks))
	for i, lb := range blocks {
		rows = append(rows, tableRow{
			cells:   []string{strconv.Itoa(i + 1), lb.Range.String(), lb.Type.String()},
			content: lb.Content(text),
		})
	}
	return t.format([]string{"LINE", "RANGE", "TYPE"}, "CONTENT", rows)
}

// FormatSpans renders one row per span with its covered text, then one row
// per hidden range.
func (t *BlockTable) FormatSpans(text string, spans []inline.Span, hidden []textpos.Range) string {
	rows := make([]tableRow, 0, len(spans)+len(hidden))
	for _, span := range spans {
		content := text[span.Range.Start:span.Range.End]
		if span.URL != "" {
			content += " -> " + span.URL
		}
		rows = append(rows, tableRow{
			cells:   []string{span.Kind.String(), span.Range.String(), strconv.Itoa(textpos.GraphemeCount(content))},
			content: content,
		})
	}
	for _, r := range hidden {
		rows = append(rows, tableRow{
			cells:   []string{"Hidden", r.String(), strconv.Itoa(r.Len())},
			content: text[r.Start:r.End],
		})
	}
	return t.format([]string{"KIND", "RANGE", "CHARS"}, "TEXT", rows)
}

// format lays out rows with fixed columns followed by a content column
// that absorbs the remaining width.
func (t *BlockTable) format(headers []string, contentHeader string, rows []tableRow) string {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = len(header)
	}
	for _, row := range rows {
		for i, cell := range row.cells {
			widths[i] = max(widths[i], DisplayWidth(cell))
		}
	}

	fixed := 1
	for _, w := range widths {
		fixed += w + tablePadding
	}
	contentWidth := max(minContentWidth, t.termWidth-fixed)

	var b strings.Builder

	b.WriteString(t.styles.TableHeader.Render(t.line(headers, widths, contentHeader)))
	b.WriteString("\n")
	b.WriteString(t.styles.Separator.Render(strings.Repeat(heavySeparator, fixed+contentWidth)))
	b.WriteString("\n")

	for _, row := range rows {
		content := Truncate(strings.ReplaceAll(row.content, "\t", tabSpaces), contentWidth)
		b.WriteString(t.line(row.cells, widths, content))
		b.WriteString("\n")
	}

	return b.String()
}

func (t *BlockTable) line(cells []string, widths []int, content string) string {
	var b strings.Builder
	b.WriteByte(' ')
	for i, cell := range cells {
		b.WriteString(fmt.Sprintf("%-*s", widths[i]+tablePadding, cell))
	}
	b.WriteString(content)
	return strings.TrimRight(b.String(), " ")
}
