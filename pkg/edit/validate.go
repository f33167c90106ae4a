package edit

import (
	"fmt"

	"github.com/yaklabco/gomdedit/pkg/textpos"
)

// RangeError describes a mutation whose range cannot be applied.
type RangeError struct {
	Range   textpos.Range
	Message string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid range %s: %s", e.Range, e.Message)
}

// Validate checks that m has a valid range for text: non-negative,
// ordered, within bounds and not splitting a UTF-8 encoded character.
func Validate(m Mutation, text string) error {
	r := m.Range
	if r.Start < 0 {
		return &RangeError{Range: r, Message: "start offset is negative"}
	}
	if r.End < r.Start {
		return &RangeError{Range: r, Message: "end offset is before start offset"}
	}
	if r.End > len(text) {
		return &RangeError{
			Range:   r,
			Message: fmt.Sprintf("end offset %d exceeds text length %d", r.End, len(text)),
		}
	}
	if !textpos.ValidOffset(text, r.Start) || !textpos.ValidOffset(text, r.End) {
		return &RangeError{Range: r, Message: "offset splits a UTF-8 sequence"}
	}
	return nil
}
