package inline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/inline"
	"github.com/yaklabco/gomdedit/pkg/textpos"
)

func format(text string) inline.Result {
	return inline.Format(text, block.Classify(text))
}

func spanStrings(spans []inline.Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.String()
	}
	return out
}

func rangeStrings(ranges []textpos.Range) []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.String()
	}
	return out
}

func TestFormat_Spans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		spans []string
	}{
		{"bold", "**bold**", []string{"Bold[2:6)"}},
		{"bold underscore", "__bold__", []string{"Bold[2:6)"}},
		{"italic", "*it*", []string{"Italic[1:3)"}},
		{"italic underscore", "_it_", []string{"Italic[1:3)"}},
		{"bold italic", "***both***", []string{"BoldItalic[3:7)"}},
		{"underline", "++under++", []string{"Underline[2:7)"}},
		{"highlight", "==mark==", []string{"Highlight[2:6)"}},
		{"strikethrough", "~~gone~~", []string{"Strikethrough[2:6)"}},
		{"inline code", "`x := 1`", []string{"InlineCode[1:7)"}},
		{"link", "[site](https://example.com)", []string{"Link[1:5)(https://example.com)"}},
		{"bold and italic", "**bold** and *it*", []string{"Bold[2:6)", "Italic[14:16)"}},
		{"italic nested in bold", "**not *nested* style**", []string{"Bold[2:20)", "Italic[7:13)"}},
		{"bold nested in italic", "*a **b** c*", []string{"Italic[1:10)", "Bold[5:6)"}},
		{"bold inside code span", "`**x**`", []string{"InlineCode[1:6)", "Bold[3:4)"}},
		{"crossing strike rejected", "**a ~~b** c~~", []string{"Bold[2:7)"}},
		{"bullet marker not italic", "* *item*", []string{"Italic[3:7)"}},
		{"heading prefix skipped", "# **Title**", []string{"Bold[4:9)"}},
		{"quote prefix skipped", "> ~~old~~", []string{"Strikethrough[4:7)"}},
		{"two matches on a line", "**a** **b**", []string{"Bold[2:3)", "Bold[8:9)"}},
		{"space after opener", "** not bold**", []string{}},
		{"space before closer", "*not it *", []string{}},
		{"loose asterisks", "a * b * c", []string{}},
		{"empty content", "****", []string{}},
		{"intraword underscore", "snake_case_name", []string{}},
		{"unclosed", "**never closed", []string{}},
		{"bold across lines", "**a\nb**", []string{"Bold[2:5)"}},
		{"italic across paragraphs", "*a\n\nb*", []string{"Italic[1:5)"}},
		{"run stops at table", "**a\n| x |\nb**", []string{}},
		{"run stops at fence", "**a\n```\nx\n```\nb**", []string{}},
		{"image left alone", "![alt](pic.png)", []string{}},
		{"empty link text", "[](x)", []string{}},
		{"horizontal rule", "***", []string{}},
		{"table row excluded", "| **a** | b |", []string{}},
		{"multibyte content", "**héllo**", []string{"Bold[2:8)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.spans, spanStrings(format(tt.text).Spans))
		})
	}
}

func TestFormat_HiddenRanges(t *testing.T) {
	t.Parallel()

	result := format("**bold** and *it* [l](u)")

	assert.Equal(t,
		[]string{"[0:2)", "[6:8)", "[13:14)", "[16:17)", "[18:19)", "[20:24)"},
		rangeStrings(result.Hidden))
}

func TestFormat_AcrossListItems(t *testing.T) {
	t.Parallel()

	text := "- **a\n- b**"
	result := format(text)

	assert.Equal(t, []string{"Bold[4:9)"}, spanStrings(result.Spans))
	assert.Equal(t, []string{"[2:4)", "[9:11)"}, rangeStrings(result.Hidden))
}

func TestFormat_CrossLineHiddenRanges(t *testing.T) {
	t.Parallel()

	result := format("**a\nb**")

	assert.Equal(t, []string{"Bold[2:5)"}, spanStrings(result.Spans))
	assert.Equal(t, []string{"[0:2)", "[5:7)"}, rangeStrings(result.Hidden))
}

func TestFormat_CodeFenceExcluded(t *testing.T) {
	t.Parallel()

	text := "```go\n**not bold**\n```\n**bold**"
	result := format(text)

	require.Len(t, result.Spans, 1)
	assert.Equal(t, "bold", text[result.Spans[0].Range.Start:result.Spans[0].Range.End])
}

func TestFormat_UnterminatedFenceExcludesRest(t *testing.T) {
	t.Parallel()

	assert.Empty(t, format("```\n**a**\n*b*").Spans)
}

func TestFormatWith_DisabledExtensions(t *testing.T) {
	t.Parallel()

	text := "++u++ ==h=="
	result := inline.FormatWith(text, block.Classify(text), inline.Options{})

	assert.Empty(t, result.Spans)
	assert.Empty(t, result.Hidden)
}

func TestFormat_InvariantsHold(t *testing.T) {
	t.Parallel()

	texts := []string{
		"**a *b* c** `d` [e](f) ~~g~~ ==h== ++i++",
		"- [ ] *task* with **bold**\n> quote `code`\n1. ***x***",
		"**a ~~b** c~~ __d__ _e_",
		"# **h\n> q** *r\n\n- s*",
	}

	for _, text := range texts {
		result := format(text)
		for _, span := range result.Spans {
			for _, hidden := range result.Hidden {
				assert.False(t, span.Range.Intersects(hidden) && !span.Range.Covers(hidden),
					"span %s partially overlaps hidden %s in %q", span, hidden, text)
			}
			assert.False(t, span.Range.IsEmpty(), "empty span in %q", text)
		}
		for i := 1; i < len(result.Hidden); i++ {
			assert.LessOrEqual(t, result.Hidden[i-1].End, result.Hidden[i].Start,
				"hidden ranges overlap in %q", text)
		}
	}
}

func TestFormat_Deterministic(t *testing.T) {
	t.Parallel()

	text := "**a** *b* `c` [d](e)\n# ==f=="
	assert.Equal(t, format(text), format(text))
}

func TestExclusions(t *testing.T) {
	t.Parallel()

	text := "a\n```\ncode\n```\n| x |\n|---|\nb"
	got := inline.Exclusions(block.Classify(text))

	assert.Equal(t, []string{"[2:15)", "[15:21)", "[21:27)"}, rangeStrings(got))
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "InlineCode", inline.KindCode.String())
	assert.Equal(t, "Kind(42)", inline.Kind(42).String())
}
