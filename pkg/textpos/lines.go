package textpos

import "sort"

// Line describes one newline-delimited line of text.
type Line struct {
	// Start is the byte offset of the first character of the line.
	Start int

	// ContentEnd is the byte offset just past the line content,
	// excluding the newline and any carriage return before it.
	ContentEnd int

	// End is the byte offset just past the trailing newline, or the end
	// of the text for the last line.
	End int
}

// Range returns the full line range including the trailing newline.
func (l Line) Range() Range {
	return Range{Start: l.Start, End: l.End}
}

// ContentRange returns the line range without its line ending.
func (l Line) ContentRange() Range {
	return Range{Start: l.Start, End: l.ContentEnd}
}

// HasNewline reports whether the line is terminated by a newline.
func (l Line) HasNewline() bool {
	return l.End > l.ContentEnd
}

// SplitLines constructs line metadata for text. It handles both LF and
// CRLF line endings.
//
// Empty text yields no lines. Text ending in a newline yields a final
// zero-length line at len(text), so that a cursor placed after the last
// newline always has a line to live on.
func SplitLines(text string) []Line {
	if len(text) == 0 {
		return []Line{}
	}

	lines := make([]Line, 0, 16)
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		if text[idx] != '\n' {
			continue
		}

		contentEnd := idx
		if idx > lineStart && text[idx-1] == '\r' {
			contentEnd = idx - 1
		}

		lines = append(lines, Line{
			Start:      lineStart,
			ContentEnd: contentEnd,
			End:        idx + 1,
		})
		lineStart = idx + 1
	}

	lines = append(lines, Line{
		Start:      lineStart,
		ContentEnd: len(text),
		End:        len(text),
	})

	return lines
}

// LineIndex returns the index of the line that holds offset. An offset
// sitting on a line's newline, or at the very end of the text, belongs to
// that line. Returns -1 when offset is outside the text.
func LineIndex(lines []Line, offset int) int {
	if len(lines) == 0 || offset < 0 || offset > lines[len(lines)-1].End {
		return -1
	}

	idx := sort.Search(len(lines), func(i int) bool {
		return lines[i].End > offset
	})
	if idx >= len(lines) {
		idx = len(lines) - 1
	}
	return idx
}
