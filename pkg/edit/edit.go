// Package edit provides the single text mutation type used to change a
// document, along with validation and application logic.
package edit

import (
	"strings"

	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// Mutation replaces a range of the document with new text and places the
// cursor afterwards.
type Mutation struct {
	// Range is the byte range [Start, End) being replaced.
	Range textpos.Range

	// Text is the replacement text.
	Text string

	// Cursor is the byte offset of the cursor after the mutation has been
	// applied, expressed in the coordinates of the new text.
	Cursor int
}

// Replace returns a mutation that replaces r with text and leaves the
// cursor at the end of the inserted text.
func Replace(r textpos.Range, text string) Mutation {
	return Mutation{Range: r, Text: text, Cursor: r.Start + len(text)}
}

// Insert returns a mutation that inserts text at offset.
func Insert(offset int, text string) Mutation {
	return Replace(textpos.Range{Start: offset, End: offset}, text)
}

// Delete returns a mutation that removes r.
func Delete(r textpos.Range) Mutation {
	return Replace(r, "")
}

// MoveCursor returns a mutation that changes nothing but the cursor.
func MoveCursor(from, to int) Mutation {
	return Mutation{Range: textpos.Range{Start: from, End: from}, Cursor: to}
}

// IsNoop reports whether applying the mutation leaves the text unchanged.
func (m Mutation) IsNoop() bool {
	return m.Range.IsEmpty() && m.Text == ""
}

// Delta returns the change in text length caused by the mutation.
func (m Mutation) Delta() int {
	return len(m.Text) - m.Range.Len()
}

// Apply validates m against text and returns the modified text.
// text is never modified in place.
func Apply(text string, m Mutation) (string, error) {
	if err := Validate(m, text); err != nil {
		return text, err
	}
	if m.IsNoop() {
		return text, nil
	}

	var out strings.Builder
	out.Grow(len(text) + m.Delta())
	out.WriteString(text[:m.Range.Start])
	out.WriteString(m.Text)
	out.WriteString(text[m.Range.End:])
	return out.String(), nil
}
