package textpos

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ByteToUTF16 converts a byte offset in text to a UTF-16 code unit offset.
// Offsets past the end of text are clamped.
func ByteToUTF16(text string, offset int) int {
	if offset > len(text) {
		offset = len(text)
	}

	units := 0
	for idx, r := range text {
		if idx >= offset {
			break
		}
		units += utf16.RuneLen(r)
	}
	return units
}

// UTF16ToByte converts a UTF-16 code unit offset to a byte offset in text.
// An offset that falls inside a surrogate pair resolves to the start of
// that character. Offsets past the end of text are clamped.
func UTF16ToByte(text string, units int) int {
	seen := 0
	for idx, r := range text {
		width := utf16.RuneLen(r)
		if seen+width > units {
			return idx
		}
		seen += width
	}
	return len(text)
}

// ValidOffset reports whether offset is within text and does not split a
// UTF-8 encoded character.
func ValidOffset(text string, offset int) bool {
	if offset < 0 || offset > len(text) {
		return false
	}
	if offset == len(text) {
		return true
	}
	return utf8.RuneStart(text[offset])
}

// GraphemeCount returns the number of user-perceived characters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
