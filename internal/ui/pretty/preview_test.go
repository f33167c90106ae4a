package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/engine"
)

func render(text string, preview pretty.Preview) string {
	preview.Styles = pretty.NewStyles(false)
	return preview.Render(engine.New(text, engine.DefaultOptions()))
}

func TestPreview_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		preview pretty.Preview
		want    string
	}{
		{
			name:    "markers hidden",
			text:    "# **Title**\n- item *x*\n---\n",
			preview: pretty.Preview{Width: 10},
			want:    "# Title\n- item x\n──────────\n",
		},
		{
			name: "code untouched",
			text: "```go\nx := **1**\n```",
			want: "```go\nx := **1**\n```\n",
		},
		{
			name: "link keeps label",
			text: "see [docs](https://x.dev) now",
			want: "see docs now\n",
		},
		{
			name:    "line numbers",
			text:    "a\nb",
			preview: pretty.Preview{LineNumbers: true},
			want:    "1 a\n2 b\n",
		},
		{
			name:    "clipped",
			text:    "abcdefghijkl",
			preview: pretty.Preview{Width: 8},
			want:    "abcdefg…\n",
		},
		{
			name: "tabs expanded",
			text: "\tx",
			want: "    x\n",
		},
		{
			name: "empty document",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, render(tt.text, tt.preview))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"日本語テキスト", 7, "日本語…"},
		{"anything", 0, "anything"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pretty.Truncate(tt.in, tt.width), tt.in)
	}
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, pretty.DisplayWidth("hello"))
	assert.Equal(t, 4, pretty.DisplayWidth("日本"))
	assert.Equal(t, 1, pretty.DisplayWidth("é"))
}

func TestIsColorEnabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf))
	assert.False(t, pretty.IsColorEnabled("never", &buf))
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "buffers are not terminals")
	assert.Equal(t, pretty.DefaultTermWidth, pretty.TerminalWidth(&buf))
}

func TestNewStyles(t *testing.T) {
	t.Parallel()

	assert.True(t, pretty.NewStyles(true).ColorEnabled())

	plain := pretty.NewStyles(false)
	assert.False(t, plain.ColorEnabled())
	assert.Equal(t, "text", plain.Heading.Render("text"))
}
