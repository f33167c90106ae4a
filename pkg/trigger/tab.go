package trigger

import (
	"strings"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/edit"
	"github.com/yaklabco/gomdedit/pkg/textpos"
)

func (p *Processor) tab(text string, blocks []block.LineBlock, idx int, in Input) (edit.Mutation, bool) {
	current := blocks[idx]

	switch {
	case current.Type.Kind == block.KindTableRow:
		if in.Reverse {
			return previousCell(text, blocks, idx, in.Cursor), true
		}
		return nextCell(text, blocks, idx, in.Cursor), true

	case current.Type.IsList():
		if in.Reverse {
			return p.outdent(text, current, in.Cursor), true
		}
		return p.indent(current, in.Cursor), true

	default:
		return edit.Mutation{}, false
	}
}

func (p *Processor) indent(current block.LineBlock, cursor int) edit.Mutation {
	m := edit.Insert(current.Range.Start, strings.Repeat(" ", p.opts.ListIndent))
	m.Cursor = cursor + p.opts.ListIndent
	return m
}

// outdent removes up to ListIndent leading spaces. Tabs are left alone.
func (p *Processor) outdent(text string, current block.LineBlock, cursor int) edit.Mutation {
	line := current.Content(text)

	n := 0
	for n < len(line) && n < p.opts.ListIndent && line[n] == ' ' {
		n++
	}
	if n == 0 {
		return edit.MoveCursor(cursor, cursor)
	}

	m := edit.Delete(textpos.NewRange(current.Range.Start, current.Range.Start+n))
	m.Cursor = max(cursor-n, current.Range.Start)
	return m
}

// nextCell moves the cursor just after the next pipe on the line. Past the
// last cell it continues in the first cell of the next data row, skipping
// a separator line, and appends a fresh row when the table ends.
func nextCell(text string, blocks []block.LineBlock, idx, cursor int) edit.Mutation {
	current := blocks[idx]

	if pipe := strings.IndexByte(text[cursor:current.ContentEnd], '|'); pipe >= 0 {
		target := skipSpace(text, cursor+pipe+1, current.ContentEnd)
		if target < current.ContentEnd {
			return edit.MoveCursor(cursor, target)
		}
	}

	last := idx
	next := idx + 1
	if next < len(blocks) && blocks[next].Type.Kind == block.KindTableSeparator {
		last = next
		next++
	}
	if next < len(blocks) && blocks[next].Type.Kind == block.KindTableRow {
		if target, ok := firstCell(text, blocks[next]); ok {
			return edit.MoveCursor(cursor, target)
		}
	}

	return appendRow(text, blocks, last)
}

// previousCell moves the cursor to the start of the cell before the one
// holding it. From the first cell it continues in the last cell of the
// previous data row. At the top of the table the key is swallowed without
// moving.
func previousCell(text string, blocks []block.LineBlock, idx, cursor int) edit.Mutation {
	current := blocks[idx]
	start := current.Range.Start

	if own := strings.LastIndexByte(text[start:cursor], '|'); own >= 0 {
		if prev := strings.LastIndexByte(text[start:start+own], '|'); prev >= 0 {
			return edit.MoveCursor(cursor, skipSpace(text, start+prev+1, current.ContentEnd))
		}
	}

	prev := idx - 1
	if prev >= 0 && blocks[prev].Type.Kind == block.KindTableSeparator {
		prev--
	}
	if prev >= 0 && blocks[prev].Type.Kind == block.KindTableRow {
		if target, ok := lastCell(text, blocks[prev]); ok {
			return edit.MoveCursor(cursor, target)
		}
	}

	return edit.MoveCursor(cursor, cursor)
}

func firstCell(text string, row block.LineBlock) (int, bool) {
	pipe := strings.IndexByte(row.Content(text), '|')
	if pipe < 0 {
		return 0, false
	}
	return skipSpace(text, row.Range.Start+pipe+1, row.ContentEnd), true
}

func lastCell(text string, row block.LineBlock) (int, bool) {
	line := strings.TrimRight(row.Content(text), " \t")
	closing := strings.LastIndexByte(line, '|')
	if closing <= 0 {
		return 0, false
	}
	opening := strings.LastIndexByte(line[:closing], '|')
	if opening < 0 {
		return 0, false
	}
	return skipSpace(text, row.Range.Start+opening+1, row.ContentEnd), true
}

// skipSpace steps over a single space at pos when one is present before
// limit.
func skipSpace(text string, pos, limit int) int {
	if pos < limit && text[pos] == ' ' {
		return pos + 1
	}
	return pos
}
