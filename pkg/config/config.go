// Package config defines the configuration types for gomdedit. These are
// plain data structures; discovery and merging live in the loader.
package config

// ColorMode controls terminal styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid reports whether m is a known color mode.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Defaults for the numeric settings.
const (
	DefaultListIndent     = 2
	DefaultTableColumns   = 3
	DefaultTableRows      = 2
	DefaultLogLevel       = "info"
	MaxListIndent         = 8
	MaxTableDimension     = 64
	defaultUnderline      = true
	defaultHighlight      = true
	defaultContinueLists  = true
	defaultAlignedTables  = false
)

// InlineConfig toggles the non-standard inline passes.
type InlineConfig struct {
	Underline *bool `yaml:"underline,omitempty"`
	Highlight *bool `yaml:"highlight,omitempty"`
}

// UnderlineEnabled reports whether ++underline++ is styled.
func (c InlineConfig) UnderlineEnabled() bool { return boolOr(c.Underline, defaultUnderline) }

// HighlightEnabled reports whether ==highlight== is styled.
func (c InlineConfig) HighlightEnabled() bool { return boolOr(c.Highlight, defaultHighlight) }

// EditorConfig controls Enter and Tab handling.
type EditorConfig struct {
	// ListIndent is the number of spaces Tab adds to a list item.
	ListIndent int `yaml:"list_indent,omitempty"`

	// ContinueLists enables list and quote continuation on Enter.
	ContinueLists *bool `yaml:"continue_lists,omitempty"`
}

// ContinueListsEnabled reports whether Enter continues lists.
func (c EditorConfig) ContinueListsEnabled() bool {
	return boolOr(c.ContinueLists, defaultContinueLists)
}

// TableConfig controls table output.
type TableConfig struct {
	// Aligned pads cells to their column width.
	Aligned *bool `yaml:"aligned,omitempty"`

	// DefaultColumns and DefaultRows size a new table.
	DefaultColumns int `yaml:"default_columns,omitempty"`
	DefaultRows    int `yaml:"default_rows,omitempty"`
}

// AlignedEnabled reports whether tables are written column-aligned.
func (c TableConfig) AlignedEnabled() bool { return boolOr(c.Aligned, defaultAlignedTables) }

// Config is the root configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level,omitempty"`

	// Color selects terminal styling.
	Color ColorMode `yaml:"color,omitempty"`

	Inline InlineConfig `yaml:"inline"`
	Editor EditorConfig `yaml:"editor"`
	Table  TableConfig  `yaml:"table"`

	// Ignore holds glob patterns skipped by multi-file commands.
	Ignore []string `yaml:"ignore,omitempty"`

	// Jobs bounds concurrent workers; 0 means one per CPU.
	Jobs int `yaml:"jobs,omitempty"`

	// Write makes rewriting commands update files in place. CLI only.
	Write bool `yaml:"-"`
}

// NewConfig returns a Config with every field set to its default.
func NewConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Color:    ColorAuto,
		Inline: InlineConfig{
			Underline: Bool(defaultUnderline),
			Highlight: Bool(defaultHighlight),
		},
		Editor: EditorConfig{
			ListIndent:    DefaultListIndent,
			ContinueLists: Bool(defaultContinueLists),
		},
		Table: TableConfig{
			Aligned:        Bool(defaultAlignedTables),
			DefaultColumns: DefaultTableColumns,
			DefaultRows:    DefaultTableRows,
		},
	}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
