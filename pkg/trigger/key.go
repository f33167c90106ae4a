// Package trigger intercepts Enter and Tab keystrokes before they are
// inserted and, where the line under the cursor is a structured block,
// returns the edit that continues, exits or navigates that block instead.
package trigger

import (
	"fmt"
	"strings"
)

// Key is a keystroke the processor may consume.
type Key uint8

// Recognized trigger keys.
const (
	KeyEnter Key = iota + 1
	KeyTab
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// Literal returns the text inserted when the key is not consumed.
func (k Key) Literal() string {
	switch k {
	case KeyEnter:
		return "\n"
	case KeyTab:
		return "\t"
	default:
		return ""
	}
}

// ParseKey parses a key name. "shift+tab" parses as KeyTab with reverse
// set.
func ParseKey(name string) (Key, bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "enter", "return", "\n":
		return KeyEnter, false, nil
	case "tab", "\t":
		return KeyTab, false, nil
	case "shift+tab", "backtab":
		return KeyTab, true, nil
	default:
		return 0, false, fmt.Errorf("unknown key %q", name)
	}
}

// Input is one keystroke at a cursor position.
type Input struct {
	Key Key

	// Reverse is set for Shift+Tab.
	Reverse bool

	// Cursor is the byte offset of the caret before the key is applied.
	Cursor int
}
