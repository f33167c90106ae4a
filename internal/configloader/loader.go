// Package configloader resolves the gomdedit configuration from defaults,
// config files, environment variables and command-line flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdedit/pkg/config"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// WorkingDir is where the project config search starts. Defaults to
	// the current working directory.
	WorkingDir string

	// ExplicitPath is a config file named with --config. It is loaded in
	// addition to discovered files, above them in precedence.
	ExplicitPath string

	IgnoreSystemConfig  bool
	IgnoreUserConfig    bool
	IgnoreProjectConfig bool
	IgnoreEnv           bool

	// CLIConfig holds values set by flags. Highest precedence.
	CLIConfig *config.Config
}

// LoadResult is the resolved configuration and where it came from.
type LoadResult struct {
	Config *config.Config

	// Paths are the discovered config file locations.
	Paths *ConfigPaths

	// LoadedFrom lists the files actually read, lowest precedence first.
	LoadedFrom []string

	// Warnings are non-fatal problems such as unknown keys.
	Warnings []string
}

// Load resolves the final configuration. Precedence, highest first:
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (GOMDEDIT_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.gomdedit.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/gomdedit/config.yaml)
//  6. System config (/etc/gomdedit/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	layers := []struct {
		name    string
		path    string
		skipped bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}
	for _, layer := range layers {
		if layer.skipped || layer.path == "" {
			continue
		}
		fileCfg, warnings, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		cfg = merge(cfg, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		result.Warnings = append(result.Warnings, warnings...)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile reads one YAML config file. Unknown keys are reported as
// warnings rather than errors so older binaries accept newer files.
func loadConfigFile(path string) (*config.Config, []string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	cfg, err := config.FromYAML(content)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, unknownKeys(path, content), nil
}

//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = map[string][]string{
	"":       {"log_level", "color", "inline", "editor", "table", "ignore", "jobs"},
	"inline": {"underline", "highlight"},
	"editor": {"list_indent", "continue_lists"},
	"table":  {"aligned", "default_columns", "default_rows"},
}

// unknownKeys walks the top two mapping levels and reports keys that no
// config field reads.
func unknownKeys(path string, content []byte) []string {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil || len(doc.Content) == 0 {
		return nil
	}

	var warnings []string
	var walk func(node *yaml.Node, section string)
	walk = func(node *yaml.Node, section string) {
		if node.Kind != yaml.MappingNode {
			return
		}
		allowed := knownKeys[section]
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			qualified := key.Value
			if section != "" {
				qualified = section + "." + key.Value
			}
			if !contains(allowed, key.Value) {
				warnings = append(warnings,
					fmt.Sprintf("%s:%d: unknown key %q is ignored", path, key.Line, qualified))
				continue
			}
			if section == "" {
				if _, nested := knownKeys[key.Value]; nested {
					walk(node.Content[i+1], key.Value)
				}
			}
		}
	}
	walk(doc.Content[0], "")

	return warnings
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
