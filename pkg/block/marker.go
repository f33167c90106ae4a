package block

import "strings"

// Marker describes the structural prefix of a classified line.
type Marker struct {
	// Indent is the literal leading whitespace of the line.
	Indent string

	// Bullet is the list character ('-', '*' or '+') for bullet and task
	// items, zero otherwise.
	Bullet byte

	// Len is the byte length of the whole prefix, indentation included.
	// Inline content starts at this offset within the line.
	Len int
}

// ParseMarker returns the structural prefix of line given its block type.
// Kinds without a prefix report only their indentation and a zero Len.
func ParseMarker(line string, typ Type) Marker {
	indent, trimmed := splitIndent(line)
	marker := Marker{Indent: indent}

	switch typ.Kind {
	case KindHeading:
		n := typ.Level
		if n < len(trimmed) && trimmed[n] == ' ' {
			n++
		}
		marker.Len = len(indent) + n

	case KindTaskList:
		marker.Bullet = trimmed[0]
		n := len("- [ ]")
		if n < len(trimmed) {
			n++
		}
		marker.Len = len(indent) + n

	case KindBulletList:
		marker.Bullet = trimmed[0]
		marker.Len = len(indent) + 2

	case KindOrderedList:
		if _, n, ok := orderedMarker(trimmed); ok {
			marker.Len = len(indent) + n
		}

	case KindBlockquote:
		_, n := quotePrefix(trimmed)
		marker.Len = len(indent) + n

	case KindParagraph, KindCodeFenceOpen, KindCodeBlock, KindCodeFenceClose,
		KindHorizontalRule, KindTableRow, KindTableSeparator:
	}

	return marker
}

// ItemContent returns the text after the structural prefix of line.
func ItemContent(line string, typ Type) string {
	return line[ParseMarker(line, typ).Len:]
}

// FenceInfo returns the info string following the opening backticks of a
// fence line, e.g. "go" for "```go".
func FenceInfo(line string) string {
	_, trimmed := splitIndent(line)
	if !strings.HasPrefix(trimmed, fence) {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(trimmed, "`"))
}
