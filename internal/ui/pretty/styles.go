// Package pretty provides lipgloss-based terminal output for gomdedit.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultTermWidth is used when the writer is not a terminal.
const DefaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Block styles
	Heading    lipgloss.Style
	Quote      lipgloss.Style
	Marker     lipgloss.Style
	Code       lipgloss.Style
	Fence      lipgloss.Style
	Rule       lipgloss.Style
	TableRow   lipgloss.Style
	TableDelim lipgloss.Style

	// Gutter
	LineNumber lipgloss.Style
	BlockType  lipgloss.Style

	// Findings and summaries
	FilePath     lipgloss.Style
	Location     lipgloss.Style
	Message      lipgloss.Style
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	TableHeader  lipgloss.Style
	Separator    lipgloss.Style

	// Diffs
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	color bool
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// ColorEnabled reports whether the styles emit escape sequences.
func (s *Styles) ColorEnabled() bool {
	return s.color
}

func newColorStyles() *Styles {
	return &Styles{
		Heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
		Quote:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Italic(true),
		Marker:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Fence:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Rule:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableRow:   lipgloss.NewStyle(),
		TableDelim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		BlockType:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),

		FilePath:     lipgloss.NewStyle().Bold(true),
		Location:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:      lipgloss.NewStyle(),
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		TableHeader:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		DiffContext: lipgloss.NewStyle(),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),

		color: true,
	}
}

func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Heading:      plain,
		Quote:        plain,
		Marker:       plain,
		Code:         plain,
		Fence:        plain,
		Rule:         plain,
		TableRow:     plain,
		TableDelim:   plain,
		LineNumber:   plain,
		BlockType:    plain,
		FilePath:     plain,
		Location:     plain,
		Message:      plain,
		SummaryTitle: plain,
		SummaryValue: plain,
		Success:      plain,
		Failure:      plain,
		TableHeader:  plain,
		Separator:    plain,
		DiffHeader:   plain,
		DiffHunk:     plain,
		DiffAdd:      plain,
		DiffRemove:   plain,
		DiffContext:  plain,
		Dim:          plain,
		Bold:         plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		return IsTerminal(writer)
	}
}

// IsTerminal reports whether writer is a terminal.
func IsTerminal(writer io.Writer) bool {
	f, ok := writer.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// TerminalWidth returns the column count of writer when it is a terminal,
// or DefaultTermWidth.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(*os.File); ok && IsTerminal(writer) {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return DefaultTermWidth
}
