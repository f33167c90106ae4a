package block

import (
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/textpos"
)

const (
	fence = "```"

	// tabWidth is the column width of a tab when measuring indentation.
	tabWidth = 4

	// indentUnit is the number of columns per nesting level.
	indentUnit = 2

	maxHeadingLevel = 6

	// maxOrderedDigits bounds ordered list numbers to avoid overflow.
	maxOrderedDigits = 9
)

// Classify assigns a block type to every line of text.
//
// The result partitions the text: ranges are contiguous, ordered and
// their union is [0, len(text)). Empty text yields no blocks. The only
// state carried across lines is whether the scan is inside a fenced code
// block.
func Classify(text string) []LineBlock {
	lines := textpos.SplitLines(text)
	blocks := make([]LineBlock, 0, len(lines))

	inCode := false
	for _, line := range lines {
		var typ Type
		typ, inCode = classifyLine(text[line.Start:line.ContentEnd], inCode)
		blocks = append(blocks, LineBlock{
			Range:      line.Range(),
			ContentEnd: line.ContentEnd,
			Type:       typ,
		})
	}

	return blocks
}

// ClassifyLine classifies a single line in isolation, outside any fence.
func ClassifyLine(line string) Type {
	typ, _ := classifyLine(line, false)
	return typ
}

// classifyLine applies the precedence rules to one line and returns the
// updated fence state. The first matching rule wins.
func classifyLine(line string, inCode bool) (Type, bool) {
	indent, trimmed := splitIndent(line)

	if strings.HasPrefix(trimmed, fence) {
		if inCode {
			return CodeFenceClose(), false
		}
		return CodeFenceOpen(), true
	}

	if inCode {
		return CodeBlock(), true
	}

	if isHorizontalRule(trimmed) {
		return HorizontalRule(), false
	}

	if level, ok := headingLevel(trimmed); ok {
		return Heading(level), false
	}

	level := indentLevel(indent)

	if checked, ok := taskMarker(trimmed); ok {
		return TaskList(level, checked), false
	}

	if _, ok := bulletMarker(trimmed); ok {
		return BulletList(level), false
	}

	if number, _, ok := orderedMarker(trimmed); ok {
		return OrderedList(level, number), false
	}

	if depth, _ := quotePrefix(trimmed); depth > 0 {
		return Blockquote(depth), false
	}

	if row, ok := tableLine(trimmed); ok {
		if isTableSeparator(row) {
			return TableSeparator(), false
		}
		return TableRow(), false
	}

	return Paragraph(), false
}

// splitIndent splits a line into its leading whitespace and the rest.
func splitIndent(line string) (string, string) {
	trimmed := strings.TrimLeft(line, " \t")
	return line[:len(line)-len(trimmed)], trimmed
}

// IndentWidth returns the column width of leading whitespace, counting a
// tab as four columns.
func IndentWidth(indent string) int {
	width := 0
	for _, ch := range indent {
		switch ch {
		case '\t':
			width += tabWidth
		case ' ':
			width++
		default:
			return width
		}
	}
	return width
}

func indentLevel(indent string) int {
	return IndentWidth(indent) / indentUnit
}

// isHorizontalRule reports whether the line, with spaces removed, is a run
// of at least three '-', '*' or '_' characters.
func isHorizontalRule(trimmed string) bool {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, trimmed)

	if len(compact) < 3 {
		return false
	}

	marker := compact[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	return strings.Count(compact, string(marker)) == len(compact)
}

// headingLevel returns the ATX heading level: 1-6 '#' characters followed
// by a space or the end of the line.
func headingLevel(trimmed string) (int, bool) {
	level := 0
	for level < len(trimmed) && trimmed[level] == '#' {
		level++
	}
	if level == 0 || level > maxHeadingLevel {
		return 0, false
	}
	if level < len(trimmed) && trimmed[level] != ' ' {
		return 0, false
	}
	return level, true
}

// taskMarkers maps recognized checkbox prefixes to their checked state.
//
//nolint:gochecknoglobals // Read-only lookup table.
var taskMarkers = []struct {
	prefix  string
	checked bool
}{
	{"- [ ]", false},
	{"* [ ]", false},
	{"- [x]", true},
	{"- [X]", true},
	{"* [x]", true},
	{"* [X]", true},
}

// taskMarker matches "- [ ] " style prefixes, or the bare five-character
// form with nothing after it.
func taskMarker(trimmed string) (bool, bool) {
	for _, marker := range taskMarkers {
		if !strings.HasPrefix(trimmed, marker.prefix) {
			continue
		}
		rest := trimmed[len(marker.prefix):]
		if rest == "" || rest[0] == ' ' {
			return marker.checked, true
		}
	}
	return false, false
}

// bulletMarker matches "- ", "* " or "+ " and returns the bullet character.
func bulletMarker(trimmed string) (byte, bool) {
	if len(trimmed) < 2 || trimmed[1] != ' ' {
		return 0, false
	}
	switch trimmed[0] {
	case '-', '*', '+':
		return trimmed[0], true
	default:
		return 0, false
	}
}

// orderedMarker matches a leading integer, a '.', then a space. It returns
// the number and the byte length of the marker including the space.
func orderedMarker(trimmed string) (int, int, bool) {
	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits > maxOrderedDigits {
		return 0, 0, false
	}
	if !strings.HasPrefix(trimmed[digits:], ". ") {
		return 0, 0, false
	}

	number, err := strconv.Atoi(trimmed[:digits])
	if err != nil {
		return 0, 0, false
	}
	return number, digits + 2, true
}

// quotePrefix counts leading "> " / ">" prefixes and returns the depth and
// the byte length consumed.
func quotePrefix(trimmed string) (int, int) {
	depth := 0
	pos := 0
	for pos < len(trimmed) && trimmed[pos] == '>' {
		depth++
		pos++
		if pos < len(trimmed) && trimmed[pos] == ' ' {
			pos++
		}
	}
	return depth, pos
}

// tableLine returns the line without trailing whitespace when it starts
// and ends with a pipe.
func tableLine(trimmed string) (string, bool) {
	row := strings.TrimRight(trimmed, " \t")
	if len(row) < 2 || row[0] != '|' || row[len(row)-1] != '|' {
		return "", false
	}
	return row, true
}

// isTableSeparator reports whether the inner content of a pipe row holds
// only '-', '|', ':' and spaces, with at least one '-'.
func isTableSeparator(row string) bool {
	inner := strings.TrimSpace(row[1 : len(row)-1])
	if !strings.Contains(inner, "-") {
		return false
	}
	for _, ch := range inner {
		switch ch {
		case '-', '|', ':', ' ':
			continue
		default:
			return false
		}
	}
	return true
}

// At returns the index of the block holding offset. An offset on a line's
// newline, or at the very end of the text, belongs to that line.
func At(blocks []LineBlock, offset int) (int, bool) {
	if len(blocks) == 0 || offset < 0 {
		return -1, false
	}

	last := blocks[len(blocks)-1]
	if offset > last.Range.End {
		return -1, false
	}

	idx := sort.Search(len(blocks), func(i int) bool {
		return blocks[i].Range.End > offset
	})
	if idx >= len(blocks) {
		idx = len(blocks) - 1
	}
	return idx, true
}
