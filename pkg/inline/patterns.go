package inline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// delimited returns a pass matching content wrapped in one of the given
// symmetric markers. A marker only counts when its run of marker
// characters has exactly the marker's length, so "**" never fires inside
// "***" and "*" never fires inside "**".
func delimited(kind Kind, markers ...string) pass {
	return func(text string, segment textpos.Range) []match {
		var out []match
		for _, marker := range markers {
			out = append(out, scanDelimited(text, segment, kind, marker)...)
		}
		if len(markers) > 1 {
			sortMatches(out)
		}
		return out
	}
}

func scanDelimited(text string, segment textpos.Range, kind Kind, marker string) []match {
	var out []match
	size := len(marker)

	for pos := segment.Start; pos+size <= segment.End; {
		if !isRun(text, segment, pos, marker) || !canOpen(text, segment, pos+size, marker) {
			pos++
			continue
		}

		closeAt := findClose(text, segment, pos+size, marker)
		if closeAt < 0 {
			pos += size
			continue
		}

		out = append(out, match{
			full:    textpos.Range{Start: pos, End: closeAt + size},
			open:    textpos.Range{Start: pos, End: pos + size},
			content: textpos.Range{Start: pos + size, End: closeAt},
			close:   textpos.Range{Start: closeAt, End: closeAt + size},
			kind:    kind,
		})
		pos = closeAt + size
	}

	return out
}

// isRun reports whether marker occurs at pos as a maximal run of exactly
// len(marker) marker characters.
func isRun(text string, segment textpos.Range, pos int, marker string) bool {
	if !strings.HasPrefix(text[pos:segment.End], marker) {
		return false
	}
	ch := marker[0]
	if pos > segment.Start && text[pos-1] == ch {
		return false
	}
	end := pos + len(marker)
	return end >= segment.End || text[end] != ch
}

// canOpen checks the character right after an opening marker.
func canOpen(text string, segment textpos.Range, contentStart int, marker string) bool {
	if contentStart >= segment.End {
		return false
	}
	if isSpaceAt(text, contentStart) {
		return false
	}
	if marker[0] == '_' {
		return !isWordBefore(text, segment, contentStart-len(marker))
	}
	return true
}

// findClose returns the offset of the first valid closing marker after a
// non-empty content, or -1.
func findClose(text string, segment textpos.Range, contentStart int, marker string) int {
	for pos := contentStart + 1; pos+len(marker) <= segment.End; pos++ {
		if !isRun(text, segment, pos, marker) {
			continue
		}
		if isSpaceBefore(text, pos) {
			continue
		}
		if marker[0] == '_' && isWordAt(text, segment, pos+len(marker)) {
			continue
		}
		return pos
	}
	return -1
}

// codeSpans matches `content` with single backticks.
func codeSpans(text string, segment textpos.Range) []match {
	var out []match

	for pos := segment.Start; pos < segment.End; {
		if !isRun(text, segment, pos, "`") {
			pos++
			continue
		}

		closeAt := -1
		for j := pos + 2; j < segment.End; j++ {
			if isRun(text, segment, j, "`") {
				closeAt = j
				break
			}
		}
		if closeAt < 0 {
			pos++
			continue
		}

		out = append(out, match{
			full:    textpos.Range{Start: pos, End: closeAt + 1},
			open:    textpos.Range{Start: pos, End: pos + 1},
			content: textpos.Range{Start: pos + 1, End: closeAt},
			close:   textpos.Range{Start: closeAt, End: closeAt + 1},
			kind:    KindCode,
		})
		pos = closeAt + 1
	}

	return out
}

// links matches [text](url). Image syntax (![alt](src)) is left alone.
func links(text string, segment textpos.Range) []match {
	var out []match

	for pos := segment.Start; pos < segment.End; pos++ {
		if text[pos] != '[' || (pos > segment.Start && text[pos-1] == '!') {
			continue
		}

		labelEnd := strings.IndexAny(text[pos+1:segment.End], "[]")
		if labelEnd <= 0 {
			continue
		}
		labelEnd += pos + 1
		if text[labelEnd] != ']' || labelEnd+1 >= segment.End || text[labelEnd+1] != '(' {
			continue
		}

		urlEnd := strings.IndexByte(text[labelEnd+2:segment.End], ')')
		if urlEnd < 0 {
			continue
		}
		urlEnd += labelEnd + 2

		out = append(out, match{
			full:    textpos.Range{Start: pos, End: urlEnd + 1},
			open:    textpos.Range{Start: pos, End: pos + 1},
			content: textpos.Range{Start: pos + 1, End: labelEnd},
			close:   textpos.Range{Start: labelEnd, End: urlEnd + 1},
			kind:    KindLink,
			url:     strings.TrimSpace(text[labelEnd+2 : urlEnd]),
		})
		pos = urlEnd
	}

	return out
}

func sortMatches(matches []match) {
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].full.Start < matches[j-1].full.Start; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
}

func isSpaceAt(text string, pos int) bool {
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return unicode.IsSpace(r)
}

func isSpaceBefore(text string, pos int) bool {
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return unicode.IsSpace(r)
}

func isWordBefore(text string, segment textpos.Range, pos int) bool {
	if pos <= segment.Start {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(text[segment.Start:pos])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isWordAt(text string, segment textpos.Range, pos int) bool {
	if pos >= segment.End {
		return false
	}
	r, _ := utf8.DecodeRuneInString(text[pos:segment.End])
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
