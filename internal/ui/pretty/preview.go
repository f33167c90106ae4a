package pretty

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/engine"
	"github.com/yaklabco/gomdedit/pkg/inline"
	"github.com/yaklabco/gomdedit/pkg/textpos"
)

const (
	ellipsis  = "…"
	tabSpaces = "    "
	ruleChar  = "─"
)

// Preview renders a document the way an editor would display it: hidden
// marker ranges removed and inline spans styled.
type Preview struct {
	Styles *Styles

	// Width clips each output line to this many columns. Zero disables
	// clipping.
	Width int

	// LineNumbers prefixes every line with its 1-based number.
	LineNumbers bool
}

type segment struct {
	text  string
	style lipgloss.Style
}

// Render returns the preview of doc. Every line, including the last, ends
// with a newline.
func (p *Preview) Render(doc *engine.Document) string {
	text := doc.Text()
	blocks := doc.LineBlocks()
	spans := doc.StyleSpans()
	hidden := doc.HiddenRanges()

	// A trailing newline produces an empty final block that has no
	// visible line of its own.
	if n := len(blocks); n > 1 && blocks[n-1].Range.IsEmpty() {
		blocks = blocks[:n-1]
	}

	digits := len(strconv.Itoa(len(blocks)))
	budget := p.Width
	if p.LineNumbers && budget > 0 {
		budget = max(budget-digits-1, 1)
	}

	var b strings.Builder
	for i, lb := range blocks {
		if p.LineNumbers {
			b.WriteString(p.Styles.LineNumber.Render(fmt.Sprintf("%*d", digits, i+1)))
			b.WriteByte(' ')
		}
		segments := p.segments(text, lb, spans, hidden, budget)
		b.WriteString(p.join(clip(segments, budget)))
		b.WriteByte('\n')
	}

	return b.String()
}

func (p *Preview) segments(
	text string,
	lb block.LineBlock,
	spans []inline.Span,
	hidden []textpos.Range,
	budget int,
) []segment {
	s := p.Styles
	content := lb.Content(text)

	switch lb.Type.Kind {
	case block.KindHorizontalRule:
		width := budget
		if width <= 0 {
			width = DefaultTermWidth
		}
		return []segment{{strings.Repeat(ruleChar, width), s.Rule}}
	case block.KindCodeFenceOpen, block.KindCodeFenceClose:
		return []segment{{content, s.Fence}}
	case block.KindCodeBlock:
		return []segment{{content, s.Code}}
	case block.KindTableSeparator:
		return []segment{{content, s.TableDelim}}
	}

	base := lipgloss.NewStyle()
	switch lb.Type.Kind {
	case block.KindHeading:
		base = s.Heading
	case block.KindBlockquote:
		base = s.Quote
	case block.KindTableRow:
		base = s.TableRow
	}

	var out []segment
	from := lb.Range.Start + block.ParseMarker(content, lb.Type).Len
	if from > lb.Range.Start {
		out = append(out, segment{text[lb.Range.Start:from], s.Marker})
	}

	to := lb.ContentEnd
	cuts := []int{from, to}
	for _, span := range spans {
		if span.Range.Start < to && span.Range.End > from {
			cuts = append(cuts, clamp(span.Range.Start, from, to), clamp(span.Range.End, from, to))
		}
	}
	for _, r := range hidden {
		if r.Start < to && r.End > from {
			cuts = append(cuts, clamp(r.Start, from, to), clamp(r.End, from, to))
		}
	}
	slices.Sort(cuts)
	cuts = slices.Compact(cuts)

	for i := 0; i+1 < len(cuts); i++ {
		piece := textpos.NewRange(cuts[i], cuts[i+1])
		if covered(hidden, piece) {
			continue
		}
		var kinds []inline.Kind
		for _, span := range spans {
			if span.Range.Covers(piece) {
				kinds = append(kinds, span.Kind)
			}
		}
		out = append(out, segment{text[piece.Start:piece.End], s.inline(base, kinds)})
	}

	return out
}

// inline layers span attributes over a block style.
func (s *Styles) inline(base lipgloss.Style, kinds []inline.Kind) lipgloss.Style {
	if !s.color {
		return base
	}

	style := base
	for _, kind := range kinds {
		switch kind {
		case inline.KindBoldItalic:
			style = style.Bold(true).Italic(true)
		case inline.KindBold:
			style = style.Bold(true)
		case inline.KindItalic:
			style = style.Italic(true)
		case inline.KindUnderline:
			style = style.Underline(true)
		case inline.KindHighlight:
			style = style.Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0"))
		case inline.KindStrikethrough:
			style = style.Strikethrough(true)
		case inline.KindCode:
			style = style.Foreground(lipgloss.Color("10"))
		case inline.KindLink:
			style = style.Foreground(lipgloss.Color("12")).Underline(true)
		}
	}
	return style
}

func (p *Preview) join(segments []segment) string {
	var b strings.Builder
	for _, seg := range segments {
		if p.Styles.color {
			b.WriteString(seg.style.Render(seg.text))
		} else {
			b.WriteString(seg.text)
		}
	}
	return b.String()
}

// clip expands tabs and shortens segments so their display width fits
// budget, ending in an ellipsis when anything was cut. A budget of zero
// or less disables clipping.
func clip(segments []segment, budget int) []segment {
	total := 0
	for i := range segments {
		segments[i].text = strings.ReplaceAll(segments[i].text, "\t", tabSpaces)
		total += DisplayWidth(segments[i].text)
	}
	if budget <= 0 || total <= budget {
		return segments
	}

	room := budget - runewidth.StringWidth(ellipsis)
	var out []segment
	for _, seg := range segments {
		cut, used := truncate(seg.text, room)
		room -= used
		if cut != "" {
			out = append(out, segment{cut, seg.style})
		}
		if cut != seg.text {
			break
		}
	}
	last := lipgloss.NewStyle()
	if len(out) > 0 {
		last = out[len(out)-1].style
	}
	return append(out, segment{ellipsis, last})
}

// truncate returns the longest prefix of s made of whole grapheme clusters
// whose display width is at most width, and that width.
func truncate(s string, width int) (string, int) {
	used := 0
	end := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := runewidth.StringWidth(cluster)
		if used+w > width {
			break
		}
		used += w
		end += len(cluster)
	}
	return s[:end], used
}

// DisplayWidth returns the terminal column width of s, measured per
// grapheme cluster.
func DisplayWidth(s string) int {
	width := 0
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width += runewidth.StringWidth(cluster)
	}
	return width
}

// Truncate shortens s to width columns, ending in an ellipsis when cut.
func Truncate(s string, width int) string {
	if width <= 0 || DisplayWidth(s) <= width {
		return s
	}
	cut, _ := truncate(s, width-runewidth.StringWidth(ellipsis))
	return cut + ellipsis
}

func covered(ranges []textpos.Range, piece textpos.Range) bool {
	for _, r := range ranges {
		if r.Covers(piece) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
