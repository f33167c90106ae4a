package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.True(t, cfg.Inline.UnderlineEnabled())
	assert.True(t, cfg.Inline.HighlightEnabled())
	assert.Equal(t, 2, cfg.Editor.ListIndent)
	assert.True(t, cfg.Editor.ContinueListsEnabled())
	assert.False(t, cfg.Table.AlignedEnabled())
	assert.Equal(t, 3, cfg.Table.DefaultColumns)
}

func TestUnsetTogglesUseDefaults(t *testing.T) {
	t.Parallel()

	var cfg config.Config
	assert.True(t, cfg.Inline.UnderlineEnabled())
	assert.True(t, cfg.Editor.ContinueListsEnabled())
	assert.False(t, cfg.Table.AlignedEnabled())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(`
log_level: debug
inline:
  highlight: false
editor:
  list_indent: 4
table:
  aligned: true
ignore: ["drafts/**"]
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Nil(t, cfg.Inline.Underline, "unset fields stay unset")
	require.NotNil(t, cfg.Inline.Highlight)
	assert.False(t, *cfg.Inline.Highlight)
	assert.Equal(t, 4, cfg.Editor.ListIndent)
	assert.True(t, cfg.Table.AlignedEnabled())
	assert.Equal(t, []string{"drafts/**"}, cfg.Ignore)

	_, err = config.FromYAML([]byte("log_level: [unclosed"))
	require.Error(t, err)
}

func TestToYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Editor.ListIndent = 3
	cfg.Write = true

	data, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "list_indent: 3")
	assert.NotContains(t, string(data), "write")

	back, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 3, back.Editor.ListIndent)
	assert.False(t, back.Write)
}

func TestClone(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Ignore = []string{"a"}

	clone := cfg.Clone()
	*clone.Inline.Underline = false
	clone.Ignore[0] = "b"

	assert.True(t, cfg.Inline.UnderlineEnabled())
	assert.Equal(t, []string{"a"}, cfg.Ignore)
	assert.Nil(t, (*config.Config)(nil).Clone())
}

func TestTemplateParses(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte(config.Template))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultListIndent, cfg.Editor.ListIndent)
	assert.True(t, cfg.Inline.UnderlineEnabled())
}

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
}
