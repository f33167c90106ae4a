package engine

import (
	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/inline"
)

// Style is the look a character typed at a position should take before the
// next reformat.
type Style struct {
	// Block is the type of the line holding the position.
	Block block.Type

	// Inline lists the kinds of every span touching the position, outermost
	// first.
	Inline []inline.Kind

	// URL is the destination of an enclosing link, if any.
	URL string
}

// Has reports whether kind applies.
func (s Style) Has(kind inline.Kind) bool {
	for _, k := range s.Inline {
		if k == kind {
			return true
		}
	}
	return false
}

// StyleAt returns the style for a character inserted at pos. Span bounds
// are inclusive at both ends so that typing at the end of a bold word stays
// bold. Positions outside the document get a Paragraph style.
func (d *Document) StyleAt(pos int) Style {
	style := Style{Block: block.Paragraph()}

	if b, ok := d.BlockAt(pos); ok {
		style.Block = b.Type
	}

	for _, span := range d.spans {
		if span.Range.Start > pos {
			break
		}
		if pos > span.Range.End {
			continue
		}
		style.Inline = append(style.Inline, span.Kind)
		if span.Kind == inline.KindLink {
			style.URL = span.URL
		}
	}

	return style
}
