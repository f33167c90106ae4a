package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/table"
)

func TestToMarkdown_Default(t *testing.T) {
	t.Parallel()

	want := "| Column 1 | Column 2 | Column 3 |\n" +
		"| --- | --- | --- |\n" +
		"|  |  |  |"
	assert.Equal(t, want, table.New().ToMarkdown())
}

func TestToMarkdown_Alignments(t *testing.T) {
	t.Parallel()

	m := table.NewSized(1, 3)
	m.SetAlignment(table.AlignCenter, 1)
	m.SetAlignment(table.AlignRight, 2)
	m.HasHeader = false

	want := "| Column 1 | Column 2 | Column 3 |\n| --- | :---: | ---: |"
	assert.Equal(t, want, m.ToMarkdown(), "separator is emitted even without header styling")
}

func TestToMarkdown_EscapesPipes(t *testing.T) {
	t.Parallel()

	m := table.NewSized(2, 1)
	m.SetCell(1, 0, "a|b\nc")

	assert.Equal(t, "| Column 1 |\n| --- |\n| a\\|b c |", m.ToMarkdown())
}

func TestFromMarkdown(t *testing.T) {
	t.Parallel()

	text := "| Name | Qty | Price |\n" +
		"|:-----|:---:|------:|\n" +
		"\n" +
		"| apple | 3 | 1.20 |\n" +
		"| pear | 1 |\n" +
		"| plum | 2 | 0.50 | extra |\n"

	m, ok := table.FromMarkdown(text)
	require.True(t, ok)

	assert.Equal(t, [][]string{
		{"Name", "Qty", "Price"},
		{"apple", "3", "1.20"},
		{"pear", "1", ""},
		{"plum", "2", "0.50"},
	}, m.Cells())
	assert.Equal(t, []table.Alignment{table.AlignLeft, table.AlignCenter, table.AlignRight}, m.Alignments())
	assert.True(t, m.HasHeader)
	assert.False(t, m.HasHeaderColumn)
}

func TestFromMarkdown_TooShort(t *testing.T) {
	t.Parallel()

	tests := []string{"", "\n\n", "| only | header |", "| a |\n   \n"}
	for _, text := range tests {
		m, ok := table.FromMarkdown(text)
		assert.False(t, ok, "%q", text)
		assert.Nil(t, m)
	}
}

func TestFromMarkdown_ShortSeparator(t *testing.T) {
	t.Parallel()

	m, ok := table.FromMarkdown("| a | b | c |\n| ---: |")
	require.True(t, ok)
	assert.Equal(t, []table.Alignment{table.AlignRight, table.AlignLeft, table.AlignLeft}, m.Alignments())
}

func TestFromMarkdown_NoOuterPipes(t *testing.T) {
	t.Parallel()

	m, ok := table.FromMarkdown("a | b\n--- | ---\n1 | 2")
	require.True(t, ok)
	assert.Equal(t, [][]string{{"a", "b"}, {"1", "2"}}, m.Cells())
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	m := table.NewSized(3, 4)
	m.SetCell(1, 1, "x")
	m.SetCell(2, 3, "pipe | inside")
	m.SetCell(2, 0, `back\slash`)
	m.SetCell(1, 2, "  padded ")
	m.SetAlignment(table.AlignCenter, 1)
	m.SetAlignment(table.AlignRight, 3)
	m.HasHeaderColumn = true

	for _, serialized := range []string{m.ToMarkdown(), m.Format()} {
		parsed, ok := table.FromMarkdown(serialized)
		require.True(t, ok)
		assert.Equal(t, m.Cells(), parsed.Cells())
		assert.Equal(t, m.Alignments(), parsed.Alignments())
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	m, ok := table.FromMarkdown("| a | long header | c |\n| :-: | --- | -: |\n| 1 | 2 | 300 |")
	require.True(t, ok)

	want := "|  a  | long header |   c |\n" +
		"| :-: | ----------- | --: |\n" +
		"|  1  | 2           | 300 |"
	assert.Equal(t, want, m.Format())
}

func TestFormat_WideRunes(t *testing.T) {
	t.Parallel()

	m, ok := table.FromMarkdown("| 名前 | x |\n| --- | --- |\n| a | b |")
	require.True(t, ok)

	want := "| 名前 | x   |\n" +
		"| ---- | --- |\n" +
		"| a    | b   |"
	assert.Equal(t, want, m.Format())
}

func TestSplitRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want []string
	}{
		{"| a | b |", []string{"a", "b"}},
		{"|a|b", []string{"a", "b"}},
		{"||", []string{""}},
		{"| a \\| b | c |", []string{"a | b", "c"}},
		{"  | x |  ", []string{"x"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, table.SplitRow(tt.line), "%q", tt.line)
	}
}

func TestCountColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, table.CountColumns("| a | b |"))
	assert.Equal(t, 3, table.CountColumns("| --- | --- | --- |"))
	assert.Equal(t, 0, table.CountColumns("||"))
	assert.Equal(t, 0, table.CountColumns("|   |"))
}
