package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minSeparatorWidth is the dash count of a separator cell.
const minSeparatorWidth = 3

// ToMarkdown serializes the table as a GFM pipe table: the header row, a
// separator row encoding alignment, then one line per data row. The
// separator is always emitted regardless of HasHeader. No trailing
// newline is written.
func (m *Model) ToMarkdown() string {
	var b strings.Builder

	for r, row := range m.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		escaped := make([]string, len(row))
		for c, cell := range row {
			escaped[c] = escapeCell(cell)
		}
		writeRow(&b, escaped)

		if r == 0 {
			b.WriteByte('\n')
			writeSeparator(&b, m.alignments, nil)
		}
	}

	return b.String()
}

// Format serializes the table like ToMarkdown, padding every cell to its
// column's display width and aligning content per column alignment.
func (m *Model) Format() string {
	widths := make([]int, m.Columns())
	for c := range widths {
		widths[c] = minSeparatorWidth
		for _, row := range m.cells {
			widths[c] = max(widths[c], runewidth.StringWidth(escapeCell(row[c])))
		}
	}

	var b strings.Builder
	for r, row := range m.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		padded := make([]string, len(row))
		for c, cell := range row {
			padded[c] = pad(escapeCell(cell), widths[c], m.alignments[c])
		}
		writeRow(&b, padded)

		if r == 0 {
			b.WriteByte('\n')
			writeSeparator(&b, m.alignments, widths)
		}
	}

	return b.String()
}

// FromMarkdown parses a pipe table. Blank lines are dropped; at least a
// header and a separator line are required, otherwise it reports false.
// Data rows are padded with empty cells or truncated to the header's
// column count, so ragged input never fails.
func FromMarkdown(text string) (*Model, bool) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, false
	}

	header := SplitRow(lines[0])
	columns := len(header)

	model := &Model{
		cells:      [][]string{header},
		alignments: parseAlignments(SplitRow(lines[1]), columns),
		HasHeader:  true,
	}

	for _, line := range lines[2:] {
		model.cells = append(model.cells, fit(SplitRow(line), columns))
	}

	return model, true
}

// SplitRow splits one table line into trimmed cells. Leading and trailing
// pipes are stripped and escaped pipes (\|) stay inside their cell. A line
// with nothing between its pipes yields a single empty cell.
func SplitRow(line string) []string {
	row := strings.TrimSpace(line)
	row = strings.TrimPrefix(row, "|")
	if strings.HasSuffix(row, "|") && !strings.HasSuffix(row, `\|`) {
		row = row[:len(row)-1]
	}

	var cells []string
	var cell strings.Builder
	for i := 0; i < len(row); i++ {
		switch {
		case row[i] == '\\' && i+1 < len(row) && row[i+1] == '|':
			cell.WriteByte('|')
			i++
		case row[i] == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteByte(row[i])
		}
	}
	return append(cells, strings.TrimSpace(cell.String()))
}

// CountColumns returns the number of cells on a table line, or 0 when the
// line holds nothing between its outer pipes.
func CountColumns(line string) int {
	inner := strings.TrimSpace(line)
	inner = strings.TrimPrefix(inner, "|")
	inner = strings.TrimSuffix(inner, "|")
	if strings.TrimSpace(inner) == "" {
		return 0
	}
	return len(SplitRow(line))
}

// parseAlignments reads one alignment per column from separator cells.
func parseAlignments(cells []string, columns int) []Alignment {
	alignments := make([]Alignment, columns)
	for c := range alignments {
		if c >= len(cells) {
			break
		}
		cell := cells[c]
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":") && len(cell) > 1
		switch {
		case left && right:
			alignments[c] = AlignCenter
		case right:
			alignments[c] = AlignRight
		default:
			alignments[c] = AlignLeft
		}
	}
	return alignments
}

// fit pads or truncates cells to exactly columns entries.
func fit(cells []string, columns int) []string {
	if len(cells) > columns {
		return cells[:columns]
	}
	for len(cells) < columns {
		cells = append(cells, "")
	}
	return cells
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteByte('|')
	for _, cell := range cells {
		b.WriteByte(' ')
		b.WriteString(cell)
		b.WriteString(" |")
	}
}

// writeSeparator writes the alignment row. With nil widths every cell uses
// the canonical three-dash form: ---, :---: or ---:.
func writeSeparator(b *strings.Builder, alignments []Alignment, widths []int) {
	b.WriteByte('|')
	for c, alignment := range alignments {
		b.WriteByte(' ')
		if widths == nil {
			b.WriteString(separatorCell(alignment, minSeparatorWidth))
		} else {
			b.WriteString(paddedSeparatorCell(alignment, widths[c]))
		}
		b.WriteString(" |")
	}
}

// separatorCell returns a separator with the given number of dashes.
func separatorCell(alignment Alignment, dashes int) string {
	run := strings.Repeat("-", dashes)
	switch alignment {
	case AlignCenter:
		return ":" + run + ":"
	case AlignRight:
		return run + ":"
	default:
		return run
	}
}

// paddedSeparatorCell returns a separator exactly width characters wide.
func paddedSeparatorCell(alignment Alignment, width int) string {
	switch alignment {
	case AlignCenter:
		return separatorCell(alignment, max(width-2, 1))
	case AlignRight:
		return separatorCell(alignment, max(width-1, 2))
	default:
		return separatorCell(alignment, width)
	}
}

// cellEscaper makes cell text safe for a single table line.
//
//nolint:gochecknoglobals // Stateless replacer.
var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")

func escapeCell(cell string) string {
	return cellEscaper.Replace(cell)
}

func pad(cell string, width int, alignment Alignment) string {
	gap := width - runewidth.StringWidth(cell)
	if gap <= 0 {
		return cell
	}
	switch alignment {
	case AlignRight:
		return strings.Repeat(" ", gap) + cell
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	default:
		return cell + strings.Repeat(" ", gap)
	}
}
