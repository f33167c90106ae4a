package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/gomdedit/pkg/config"
)

func isolated(dir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         dir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	// A .git marker stops the upward search inside the temp dir.
	tmpDir := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmpDir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), isolated(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.LogLevel != config.DefaultLogLevel {
		t.Errorf("log level = %q, want %q", result.Config.LogLevel, config.DefaultLogLevel)
	}
	if result.Config.Editor.ListIndent != config.DefaultListIndent {
		t.Errorf("list indent = %d, want %d", result.Config.Editor.ListIndent, config.DefaultListIndent)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("LoadedFrom = %v, want none", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gomdedit.yml"), `
inline:
  underline: false
editor:
  list_indent: 4
table:
  aligned: true
`)

	sub := filepath.Join(tmpDir, "docs", "guide")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	result, err := Load(context.Background(), isolated(sub))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Inline.UnderlineEnabled() {
		t.Error("expected underline disabled by project config")
	}
	if !cfg.Inline.HighlightEnabled() {
		t.Error("expected highlight to keep its default")
	}
	if cfg.Editor.ListIndent != 4 {
		t.Errorf("list indent = %d, want 4", cfg.Editor.ListIndent)
	}
	if !cfg.Table.AlignedEnabled() {
		t.Error("expected aligned tables")
	}
	if len(result.LoadedFrom) != 1 || !strings.HasSuffix(result.LoadedFrom[0], ".gomdedit.yml") {
		t.Errorf("LoadedFrom = %v", result.LoadedFrom)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gomdedit.yml"), "log_level: warn\njobs: 2\n")
	explicit := filepath.Join(tmpDir, "custom.yml")
	writeConfig(t, explicit, "log_level: debug\n")

	opts := isolated(tmpDir)
	opts.ExplicitPath = explicit

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", result.Config.LogLevel)
	}
	if result.Config.Jobs != 2 {
		t.Errorf("jobs = %d, want 2 from project config", result.Config.Jobs)
	}
	if len(result.LoadedFrom) != 2 || result.LoadedFrom[1] != explicit {
		t.Errorf("LoadedFrom = %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gomdedit.yml"), "color: never\ntable:\n  aligned: true\n")

	opts := isolated(tmpDir)
	opts.CLIConfig = &config.Config{
		Color: config.ColorAlways,
		Table: config.TableConfig{Aligned: config.Bool(false)},
		Write: true,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Color != config.ColorAlways {
		t.Errorf("color = %q, want always", result.Config.Color)
	}
	if result.Config.Table.AlignedEnabled() {
		t.Error("expected CLI to turn aligned tables off")
	}
	if !result.Config.Write {
		t.Error("expected write from CLI")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad log level", "log_level: loud\n", "log_level"},
		{"bad color", "color: sometimes\n", "color"},
		{"negative jobs", "jobs: -1\n", "jobs"},
		{"huge indent", "editor:\n  list_indent: 40\n", "editor.list_indent"},
		{"bad glob", "ignore: ['[']\n", "ignore[0]"},
		{"malformed yaml", "editor: [\n", "parse yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tmpDir := t.TempDir()
			writeConfig(t, filepath.Join(tmpDir, ".gomdedit.yml"), tt.content)

			_, err := Load(context.Background(), isolated(tmpDir))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad_UnknownKeysWarn(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfig(t, filepath.Join(tmpDir, ".gomdedit.yml"), "flavor: gfm\neditor:\n  tab_width: 4\n")

	result, err := Load(context.Background(), isolated(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	joined := strings.Join(result.Warnings, "\n")
	for _, key := range []string{`"flavor"`, `"editor.tab_width"`} {
		if !strings.Contains(joined, key) {
			t.Errorf("warnings %v missing %s", result.Warnings, key)
		}
	}
}

func TestLoad_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, isolated(t.TempDir())); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

//nolint:paralleltest // Mutates process environment.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GOMDEDIT_LOG_LEVEL", "error")
	t.Setenv("GOMDEDIT_IGNORE", "a/**, ,b.md")
	t.Setenv("GOMDEDIT_INLINE_HIGHLIGHT", "0")
	t.Setenv("GOMDEDIT_LIST_INDENT", "3")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.LogLevel != "error" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if strings.Join(cfg.Ignore, "|") != "a/**|b.md" {
		t.Errorf("ignore = %v", cfg.Ignore)
	}
	if cfg.Inline.HighlightEnabled() {
		t.Error("expected highlight disabled")
	}
	if cfg.Editor.ListIndent != 3 {
		t.Errorf("list indent = %d", cfg.Editor.ListIndent)
	}
}

//nolint:paralleltest // Mutates process environment.
func TestLoadFromEnv_InvalidValue(t *testing.T) {
	t.Setenv("GOMDEDIT_TABLE_ALIGNED", "sure")

	err := LoadFromEnv(config.NewConfig())
	if err == nil || !strings.Contains(err.Error(), "GOMDEDIT_TABLE_ALIGNED") {
		t.Fatalf("error = %v, want one naming the variable", err)
	}
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	file := &config.Config{Editor: config.EditorConfig{ContinueLists: config.Bool(false)}, Ignore: []string{"x"}}
	cli := &config.Config{Jobs: 4}

	got := MergeAll(base, file, cli)

	if got.Editor.ContinueListsEnabled() {
		t.Error("expected continue_lists false")
	}
	if got.Jobs != 4 || got.Editor.ListIndent != config.DefaultListIndent {
		t.Errorf("jobs = %d, list indent = %d", got.Jobs, got.Editor.ListIndent)
	}

	file.Ignore[0] = "mutated"
	if got.Ignore[0] != "x" {
		t.Error("merge must not alias override slices")
	}
	if !base.Editor.ContinueListsEnabled() {
		t.Error("merge must not mutate base")
	}
}

func TestValidate_Warnings(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Ignore = []string{"/abs/**"}

	result := ValidateWithFile(cfg, "cfg.yml")
	if !result.Valid() || !result.HasWarnings() {
		t.Fatalf("result = %+v", result)
	}
	if got := result.AllMessages()[0]; !strings.HasPrefix(got, "warning: cfg.yml: ignore[0]") {
		t.Errorf("message = %q", got)
	}
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	if len(vars) != len(envMappings) {
		t.Fatalf("got %d vars", len(vars))
	}
	for i := 1; i < len(vars); i++ {
		if vars[i-1].Name >= vars[i].Name {
			t.Errorf("not sorted at %d", i)
		}
	}
}
