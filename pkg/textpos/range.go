// Package textpos provides byte ranges and line metadata over document text.
//
// All offsets are byte indices into a UTF-8 string. Ranges are half-open:
// Start is inclusive and End is exclusive.
package textpos

import "fmt"

// Range represents a half-open byte range [Start, End) in document text.
type Range struct {
	// Start is the byte index where the range begins (inclusive).
	Start int

	// End is the byte index where the range ends (exclusive).
	End int
}

// NewRange returns the range [start, end).
func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

// Len returns the length of the range in bytes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Intersects reports whether the two ranges share at least one byte.
// Empty ranges never intersect anything.
func (r Range) Intersects(other Range) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.Start < other.End && other.Start < r.End
}

// Covers reports whether other lies entirely inside r.
func (r Range) Covers(other Range) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Shift returns the range moved by delta bytes.
func (r Range) Shift(delta int) Range {
	return Range{Start: r.Start + delta, End: r.End + delta}
}

// String formats the range as [start:end).
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}
