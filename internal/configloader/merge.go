package configloader

import (
	"slices"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// merge combines two configurations, override taking precedence:
//   - Scalars: override wins when non-zero
//   - Toggles (*bool): override wins when non-nil, so a file can turn a
//     default off
//   - Slices: override replaces base when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Write {
		result.Write = true
	}

	result.Inline.Underline = mergeBool(result.Inline.Underline, override.Inline.Underline)
	result.Inline.Highlight = mergeBool(result.Inline.Highlight, override.Inline.Highlight)

	if override.Editor.ListIndent != 0 {
		result.Editor.ListIndent = override.Editor.ListIndent
	}
	result.Editor.ContinueLists = mergeBool(result.Editor.ContinueLists, override.Editor.ContinueLists)

	result.Table.Aligned = mergeBool(result.Table.Aligned, override.Table.Aligned)
	if override.Table.DefaultColumns != 0 {
		result.Table.DefaultColumns = override.Table.DefaultColumns
	}
	if override.Table.DefaultRows != 0 {
		result.Table.DefaultRows = override.Table.DefaultRows
	}

	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return result
}

func mergeBool(base, override *bool) *bool {
	if override == nil {
		return base
	}
	return config.Bool(*override)
}

// MergeAll merges configurations in order; later ones take precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
