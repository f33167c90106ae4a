package trigger

import (
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/edit"
	"github.com/yaklabco/gomdedit/pkg/table"
)

// DefaultListIndent is the number of spaces Tab adds to a list item.
const DefaultListIndent = 2

// Options configures the processor.
type Options struct {
	// ListIndent is the number of literal spaces Tab inserts at, or
	// Shift+Tab removes from, the start of a list line.
	ListIndent int

	// ContinueLists enables Enter continuation and exit for list items and
	// blockquotes.
	ContinueLists bool
}

// DefaultOptions returns the standard editing behavior.
func DefaultOptions() Options {
	return Options{ListIndent: DefaultListIndent, ContinueLists: true}
}

// Processor maps keystrokes to replacement edits. It holds no document
// state and is safe to reuse.
type Processor struct {
	opts Options
}

// New creates a Processor. A non-positive ListIndent falls back to the
// default.
func New(opts Options) *Processor {
	if opts.ListIndent <= 0 {
		opts.ListIndent = DefaultListIndent
	}
	return &Processor{opts: opts}
}

// Process runs a processor with default options.
func Process(text string, blocks []block.LineBlock, in Input) (edit.Mutation, bool) {
	return New(DefaultOptions()).Process(text, blocks, in)
}

// Process decides whether in should be replaced by a structural edit.
// blocks must be the classification of text. When the second result is
// false the caller inserts the key literally.
func (p *Processor) Process(text string, blocks []block.LineBlock, in Input) (edit.Mutation, bool) {
	if in.Cursor < 0 || in.Cursor > len(text) {
		return edit.Mutation{}, false
	}
	idx, ok := block.At(blocks, in.Cursor)
	if !ok {
		return edit.Mutation{}, false
	}
	// A cursor inside a CRLF ending acts as if it sat before the '\r'.
	in.Cursor = min(in.Cursor, blocks[idx].ContentEnd)

	switch in.Key {
	case KeyEnter:
		return p.enter(text, blocks, idx, in.Cursor)
	case KeyTab:
		return p.tab(text, blocks, idx, in)
	default:
		return edit.Mutation{}, false
	}
}

func (p *Processor) enter(text string, blocks []block.LineBlock, idx, cursor int) (edit.Mutation, bool) {
	current := blocks[idx]
	line := current.Content(text)

	switch current.Type.Kind {
	case block.KindTaskList, block.KindBulletList, block.KindOrderedList, block.KindBlockquote:
		if !p.opts.ContinueLists {
			return edit.Mutation{}, false
		}
		marker := block.ParseMarker(line, current.Type)
		if cursor < current.Range.Start+marker.Len {
			return edit.Mutation{}, false
		}
		if strings.TrimSpace(line[marker.Len:]) == "" {
			return exitBlock(current), true
		}
		return edit.Insert(cursor, "\n"+continuation(current.Type, marker)), true

	case block.KindTableRow, block.KindTableSeparator:
		return appendRow(text, blocks, idx), true

	default:
		return edit.Mutation{}, false
	}
}

// continuation returns the prefix of the line that follows a non-empty
// structured line.
func continuation(typ block.Type, marker block.Marker) string {
	switch typ.Kind {
	case block.KindTaskList:
		return marker.Indent + "- [ ] "
	case block.KindBulletList:
		return marker.Indent + string(marker.Bullet) + " "
	case block.KindOrderedList:
		return marker.Indent + strconv.Itoa(typ.Number+1) + ". "
	case block.KindBlockquote:
		return strings.Repeat("> ", typ.Depth)
	default:
		return ""
	}
}

// exitBlock replaces the line with a bare line ending and leaves the cursor
// at its start. A terminated line keeps its own ending.
func exitBlock(current block.LineBlock) edit.Mutation {
	m := edit.Delete(current.ContentRange())
	if current.ContentEnd == current.Range.End {
		m = edit.Replace(current.ContentRange(), "\n")
	}
	m.Cursor = current.Range.Start
	return m
}

// appendRow inserts an empty row after the line at idx and puts the
// cursor in its first cell.
func appendRow(text string, blocks []block.LineBlock, idx int) edit.Mutation {
	columns := columnCount(text, blocks, idx)
	at := blocks[idx].ContentEnd

	m := edit.Insert(at, "\n|"+strings.Repeat("  |", columns))
	m.Cursor = at + len("\n| ")
	return m
}

// columnCount returns the cell count of the line at idx, falling back to
// the first table row of the document, and never less than one.
func columnCount(text string, blocks []block.LineBlock, idx int) int {
	if n := table.CountColumns(blocks[idx].Content(text)); n > 0 {
		return n
	}
	for _, b := range blocks {
		if b.Type.Kind == block.KindTableRow {
			return max(table.CountColumns(b.Content(text)), 1)
		}
	}
	return 1
}
