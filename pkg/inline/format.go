package inline

import (
	"sort"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// match is one recognized construct before it becomes a span.
type match struct {
	full    textpos.Range
	open    textpos.Range
	content textpos.Range
	close   textpos.Range
	kind    Kind
	url     string
}

// pass finds candidate matches inside one segment of text.
type pass func(text string, segment textpos.Range) []match

// Format scans the non-excluded lines of text for inline markup using the
// default options.
func Format(text string, blocks []block.LineBlock) Result {
	return FormatWith(text, blocks, DefaultOptions())
}

// FormatWith scans the non-excluded lines of text for inline markup.
//
// Passes run in a fixed precedence order: bold-italic, bold, italic,
// underline, highlight, strikethrough, inline code, links. A candidate is
// dropped when one of its markers overlaps a marker already claimed by an
// earlier match, or when it crosses an earlier match instead of nesting
// inside or around it. Matches may span line breaks within a run of
// scanned lines, but a line's structural prefix (bullet, heading hashes,
// quote markers) never acts as a marker.
func FormatWith(text string, blocks []block.LineBlock, opts Options) Result {
	segments, scanned := scanSegments(text, blocks)

	var accepted []match
	for _, run := range passes(opts) {
		for _, segment := range segments {
			for _, candidate := range run(scanned, segment) {
				if claimable(candidate, accepted) {
					accepted = append(accepted, candidate)
				}
			}
		}
	}

	return buildResult(accepted)
}

func passes(opts Options) []pass {
	list := []pass{
		delimited(KindBoldItalic, "***"),
		delimited(KindBold, "**", "__"),
		delimited(KindItalic, "*", "_"),
	}
	if opts.Underline {
		list = append(list, delimited(KindUnderline, "++"))
	}
	if opts.Highlight {
		list = append(list, delimited(KindHighlight, "=="))
	}
	return append(list,
		delimited(KindStrikethrough, "~~"),
		codeSpans,
		links,
	)
}

// Exclusions returns the ranges exempt from inline scanning: every fenced
// code group from its opening to its closing fence inclusive (to the end
// of the text when unterminated), and every table row or separator line.
func Exclusions(blocks []block.LineBlock) []textpos.Range {
	var out []textpos.Range

	fenceStart := -1
	for _, b := range blocks {
		switch b.Type.Kind {
		case block.KindCodeFenceOpen:
			fenceStart = b.Range.Start
		case block.KindCodeFenceClose:
			if fenceStart >= 0 {
				out = append(out, textpos.Range{Start: fenceStart, End: b.Range.End})
				fenceStart = -1
			}
		case block.KindTableRow, block.KindTableSeparator:
			out = append(out, b.Range)
		default:
		}
	}

	if fenceStart >= 0 && len(blocks) > 0 {
		out = append(out, textpos.Range{Start: fenceStart, End: blocks[len(blocks)-1].Range.End})
	}

	return out
}

// scanSegments joins every run of adjacent lines outside the exclusions
// into one segment, starting after the first line's structural prefix and
// ending at the last line's content end. It also returns a copy of text in
// which the prefix of every scanned line is blanked out.
func scanSegments(text string, blocks []block.LineBlock) ([]textpos.Range, string) {
	exclusions := Exclusions(blocks)
	scanned := []byte(text)

	var segments []textpos.Range
	open := false
	var current textpos.Range
	flush := func() {
		if open && !current.IsEmpty() {
			segments = append(segments, current)
		}
		open = false
	}

	for _, b := range blocks {
		if excluded(b.Range, exclusions) {
			flush()
			continue
		}
		marker := block.ParseMarker(b.Content(text), b.Type)
		prefixEnd := b.Range.Start + marker.Len
		for i := b.Range.Start; i < prefixEnd; i++ {
			scanned[i] = ' '
		}
		if !open {
			current = textpos.Range{Start: prefixEnd, End: prefixEnd}
			open = true
		}
		current.End = max(b.ContentEnd, current.Start)
	}
	flush()

	return segments, string(scanned)
}

func excluded(r textpos.Range, exclusions []textpos.Range) bool {
	for _, ex := range exclusions {
		if ex.Covers(r) || ex.Intersects(r) {
			return true
		}
	}
	return false
}

// claimable reports whether candidate may be accepted given the matches
// claimed by earlier passes.
func claimable(candidate match, accepted []match) bool {
	for _, prior := range accepted {
		if overlapsMarkers(candidate, prior) {
			return false
		}
		if crosses(candidate.full, prior.full) {
			return false
		}
	}
	return true
}

func overlapsMarkers(a, b match) bool {
	for _, am := range []textpos.Range{a.open, a.close} {
		for _, bm := range []textpos.Range{b.open, b.close} {
			if am.Intersects(bm) {
				return true
			}
		}
	}
	return false
}

// crosses reports whether two ranges overlap without one nesting in the
// other.
func crosses(a, b textpos.Range) bool {
	return a.Intersects(b) && !a.Covers(b) && !b.Covers(a)
}

func buildResult(accepted []match) Result {
	result := Result{
		Spans:  make([]Span, 0, len(accepted)),
		Hidden: make([]textpos.Range, 0, 2*len(accepted)),
	}

	for _, m := range accepted {
		result.Spans = append(result.Spans, Span{Range: m.content, Kind: m.kind, URL: m.url})
		result.Hidden = append(result.Hidden, m.open, m.close)
	}

	sort.SliceStable(result.Spans, func(i, j int) bool {
		return result.Spans[i].Range.Start < result.Spans[j].Range.Start
	})
	sort.Slice(result.Hidden, func(i, j int) bool {
		return result.Hidden[i].Start < result.Hidden[j].Start
	})

	return result
}
