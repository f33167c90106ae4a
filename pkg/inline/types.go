// Package inline locates inline markup spans inside classified markdown
// lines and reports which marker characters should be hidden.
package inline

import (
	"fmt"

	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// Kind identifies the style of an inline span.
type Kind uint8

// Inline span kinds, in pass precedence order.
const (
	KindBoldItalic Kind = iota
	KindBold
	KindItalic
	KindUnderline
	KindHighlight
	KindStrikethrough
	KindCode
	KindLink
)

var kindNames = [...]string{
	KindBoldItalic:    "BoldItalic",
	KindBold:          "Bold",
	KindItalic:        "Italic",
	KindUnderline:     "Underline",
	KindHighlight:     "Highlight",
	KindStrikethrough: "Strikethrough",
	KindCode:          "InlineCode",
	KindLink:          "Link",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Span is a styled content range. Marker characters are never part of a
// span; they are reported separately as hidden ranges.
type Span struct {
	Range textpos.Range
	Kind  Kind

	// URL is the link destination for KindLink.
	URL string
}

// String renders the span for debugging, e.g. "Bold[2:6)".
func (s Span) String() string {
	if s.Kind == KindLink {
		return fmt.Sprintf("%s%s(%s)", s.Kind, s.Range, s.URL)
	}
	return fmt.Sprintf("%s%s", s.Kind, s.Range)
}

// Result holds the output of a formatting pass.
type Result struct {
	// Spans are the styled content ranges ordered by start offset.
	Spans []Span

	// Hidden are the marker ranges that must not be rendered, ordered by
	// start offset. They remain part of the text so cursor math is stable.
	Hidden []textpos.Range
}

// Options toggles the non-standard inline extensions.
type Options struct {
	// Underline enables the ++underline++ pass.
	Underline bool

	// Highlight enables the ==highlight== pass.
	Highlight bool
}

// DefaultOptions enables every pass.
func DefaultOptions() Options {
	return Options{Underline: true, Highlight: true}
}
