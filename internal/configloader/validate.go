package configloader

import (
	"fmt"
	"path"
	"strings"

	"github.com/yaklabco/gomdedit/internal/logging"
	"github.com/yaklabco/gomdedit/pkg/config"
)

// ValidationError is a single invalid configuration value.
type ValidationError struct {
	// Field is the dotted path of the field, e.g. "editor.list_indent".
	Field string

	Value any

	Message string

	// FilePath is the config file holding the value, when known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult collects validation findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns every error then every warning, prefixed by kind.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf(format, args...),
	})
}

// Validate checks a resolved configuration.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.LogLevel != "" && !logging.ValidLevel(cfg.LogLevel) {
		result.fail("log_level", cfg.LogLevel,
			"invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel)
	}

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.fail("color", cfg.Color, "invalid color mode %q; must be one of: auto, always, never", cfg.Color)
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Editor.ListIndent < 0 || cfg.Editor.ListIndent > config.MaxListIndent {
		result.fail("editor.list_indent", cfg.Editor.ListIndent,
			"list_indent must be between 1 and %d", config.MaxListIndent)
	}

	validateDimension(result, "table.default_columns", cfg.Table.DefaultColumns)
	validateDimension(result, "table.default_rows", cfg.Table.DefaultRows)

	for i, pattern := range cfg.Ignore {
		field := fmt.Sprintf("ignore[%d]", i)
		if _, err := path.Match(pattern, ""); err != nil {
			result.fail(field, pattern, "invalid glob pattern: %v", err)
			continue
		}
		if strings.HasPrefix(pattern, "/") {
			result.Warnings = append(result.Warnings, ValidationError{
				Field:   field,
				Value:   pattern,
				Message: "patterns match paths relative to the working directory; a leading / never matches",
			})
		}
	}

	return result
}

func validateDimension(result *ValidationResult, field string, value int) {
	if value < 0 || value > config.MaxTableDimension {
		result.fail(field, value, "must be between 1 and %d", config.MaxTableDimension)
	}
}

// ValidateWithFile validates cfg and attributes findings to filePath.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
