// Package block classifies every line of a markdown document into exactly
// one block type.
package block

import (
	"fmt"

	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// Kind identifies the structural type of a line.
type Kind uint8

// Line block kinds.
const (
	KindParagraph Kind = iota
	KindHeading
	KindBulletList
	KindOrderedList
	KindTaskList
	KindBlockquote
	KindCodeFenceOpen
	KindCodeBlock
	KindCodeFenceClose
	KindHorizontalRule
	KindTableRow
	KindTableSeparator
)

var kindNames = [...]string{
	KindParagraph:      "Paragraph",
	KindHeading:        "Heading",
	KindBulletList:     "BulletList",
	KindOrderedList:    "OrderedList",
	KindTaskList:       "TaskList",
	KindBlockquote:     "Blockquote",
	KindCodeFenceOpen:  "CodeFenceOpen",
	KindCodeBlock:      "CodeBlock",
	KindCodeFenceClose: "CodeFenceClose",
	KindHorizontalRule: "HorizontalRule",
	KindTableRow:       "TableRow",
	KindTableSeparator: "TableSeparator",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Type is the classification of a single line. Only the fields relevant
// to Kind are set; the rest stay zero so that Type values compare with ==.
type Type struct {
	Kind Kind

	// Level is the heading level (1-6) for KindHeading.
	Level int

	// Indent is the nesting level for list kinds: leading width / 2, where
	// a tab counts as 4 columns.
	Indent int

	// Number is the item number for KindOrderedList.
	Number int

	// Checked is the checkbox state for KindTaskList.
	Checked bool

	// Depth is the number of '>' prefixes for KindBlockquote.
	Depth int
}

// Paragraph returns the fallback block type.
func Paragraph() Type { return Type{Kind: KindParagraph} }

// Heading returns an ATX heading type of the given level.
func Heading(level int) Type { return Type{Kind: KindHeading, Level: level} }

// BulletList returns a bullet list item type.
func BulletList(indent int) Type { return Type{Kind: KindBulletList, Indent: indent} }

// OrderedList returns an ordered list item type.
func OrderedList(indent, number int) Type {
	return Type{Kind: KindOrderedList, Indent: indent, Number: number}
}

// TaskList returns a task list item type.
func TaskList(indent int, checked bool) Type {
	return Type{Kind: KindTaskList, Indent: indent, Checked: checked}
}

// Blockquote returns a blockquote line type.
func Blockquote(depth int) Type { return Type{Kind: KindBlockquote, Depth: depth} }

// CodeFenceOpen returns the type of an opening ``` line.
func CodeFenceOpen() Type { return Type{Kind: KindCodeFenceOpen} }

// CodeBlock returns the type of a line inside a fenced code block.
func CodeBlock() Type { return Type{Kind: KindCodeBlock} }

// CodeFenceClose returns the type of a closing ``` line.
func CodeFenceClose() Type { return Type{Kind: KindCodeFenceClose} }

// HorizontalRule returns the thematic break type.
func HorizontalRule() Type { return Type{Kind: KindHorizontalRule} }

// TableRow returns the type of a pipe table row.
func TableRow() Type { return Type{Kind: KindTableRow} }

// TableSeparator returns the type of a pipe table delimiter row.
func TableSeparator() Type { return Type{Kind: KindTableSeparator} }

// IsList reports whether the type is a bullet, ordered or task list item.
func (t Type) IsList() bool {
	switch t.Kind {
	case KindBulletList, KindOrderedList, KindTaskList:
		return true
	default:
		return false
	}
}

// IsTable reports whether the type is a table row or separator.
func (t Type) IsTable() bool {
	return t.Kind == KindTableRow || t.Kind == KindTableSeparator
}

// IsCode reports whether the type belongs to a fenced code group.
func (t Type) IsCode() bool {
	switch t.Kind {
	case KindCodeFenceOpen, KindCodeBlock, KindCodeFenceClose:
		return true
	default:
		return false
	}
}

// String renders the type with its associated data, e.g. "Heading(2)".
func (t Type) String() string {
	switch t.Kind {
	case KindHeading:
		return fmt.Sprintf("Heading(%d)", t.Level)
	case KindBulletList:
		return fmt.Sprintf("BulletList(%d)", t.Indent)
	case KindOrderedList:
		return fmt.Sprintf("OrderedList(%d, %d)", t.Indent, t.Number)
	case KindTaskList:
		return fmt.Sprintf("TaskList(%d, %t)", t.Indent, t.Checked)
	case KindBlockquote:
		return fmt.Sprintf("Blockquote(%d)", t.Depth)
	default:
		return t.Kind.String()
	}
}

// LineBlock is the classification of one line of the document.
type LineBlock struct {
	// Range covers exactly one line including its trailing newline.
	Range textpos.Range

	// ContentEnd is the offset just past the line content, before any
	// line ending.
	ContentEnd int

	// Type is the block type assigned to the line.
	Type Type
}

// ContentRange returns the line range without its line ending.
func (b LineBlock) ContentRange() textpos.Range {
	return textpos.Range{Start: b.Range.Start, End: b.ContentEnd}
}

// Content returns the line text without its line ending.
func (b LineBlock) Content(text string) string {
	return text[b.Range.Start:b.ContentEnd]
}
