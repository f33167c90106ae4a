package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// envVarPrefix prefixes every gomdedit environment variable.
const envVarPrefix = "GOMDEDIT_"

// envSetter applies one raw environment value.
type envSetter func(cfg *config.Config, value string) error

type envMapping struct {
	description string
	set         envSetter
}

// envMappings maps variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"LOG_LEVEL": {"Log level: debug, info, warn or error", func(cfg *config.Config, v string) error {
		cfg.LogLevel = v
		return nil
	}},
	"COLOR": {"Terminal styling: auto, always or never", func(cfg *config.Config, v string) error {
		cfg.Color = config.ColorMode(v)
		return nil
	}},
	"JOBS": {"Concurrent workers (0 = one per CPU)", intSetter(func(cfg *config.Config, n int) { cfg.Jobs = n })},
	"IGNORE": {"Comma-separated ignore globs", func(cfg *config.Config, v string) error {
		cfg.Ignore = parseSliceValue(v)
		return nil
	}},
	"INLINE_UNDERLINE": {"Style ++underline++: true or false", boolSetter(func(cfg *config.Config) **bool {
		return &cfg.Inline.Underline
	})},
	"INLINE_HIGHLIGHT": {"Style ==highlight==: true or false", boolSetter(func(cfg *config.Config) **bool {
		return &cfg.Inline.Highlight
	})},
	"LIST_INDENT": {"Spaces added by Tab on list lines", intSetter(func(cfg *config.Config, n int) {
		cfg.Editor.ListIndent = n
	})},
	"CONTINUE_LISTS": {"Continue lists on Enter: true or false", boolSetter(func(cfg *config.Config) **bool {
		return &cfg.Editor.ContinueLists
	})},
	"TABLE_ALIGNED": {"Pad table cells to column width: true or false", boolSetter(func(cfg *config.Config) **bool {
		return &cfg.Table.Aligned
	})},
}

func intSetter(set func(cfg *config.Config, n int)) envSetter {
	return func(cfg *config.Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		set(cfg, n)
		return nil
	}
}

func boolSetter(field func(cfg *config.Config) **bool) envSetter {
	return func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		*field(cfg) = config.Bool(b)
		return nil
	}
}

// LoadFromEnv applies GOMDEDIT_* overrides to cfg. Empty variables are
// treated as unset.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for suffix, mapping := range envMappings {
		name := envVarPrefix + suffix
		value := os.Getenv(name)
		if value == "" {
			continue
		}
		if err := mapping.set(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// parseSliceValue splits a comma-separated list, trimming and dropping
// empty elements.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Description string
}

// ListEnvVars returns the supported environment variables sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{Name: envVarPrefix + suffix, Description: mapping.description})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
