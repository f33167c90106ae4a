package block_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/pkg/block"
)

func TestParseMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		line       string
		wantIndent string
		wantBullet byte
		wantLen    int
		wantRest   string
	}{
		{"heading", "## Title", "", 0, 3, "Title"},
		{"bare heading", "##", "", 0, 2, ""},
		{"bullet", "  * item", "  ", '*', 4, "item"},
		{"task", "- [x] done", "", '-', 6, "done"},
		{"bare task", "- [ ]", "", '-', 5, ""},
		{"ordered", "\t12. twelve", "\t", 0, 5, "twelve"},
		{"quote", "> > nested", "", 0, 4, "nested"},
		{"paragraph", "  text", "  ", 0, 0, "  text"},
		{"table", "| a |", "", 0, 0, "| a |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			typ := block.ClassifyLine(tt.line)
			marker := block.ParseMarker(tt.line, typ)

			assert.Equal(t, tt.wantIndent, marker.Indent)
			assert.Equal(t, tt.wantBullet, marker.Bullet)
			assert.Equal(t, tt.wantLen, marker.Len)
			assert.Equal(t, tt.wantRest, block.ItemContent(tt.line, typ))
		})
	}
}

func TestFenceInfo(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "go", block.FenceInfo("```go"))
	assert.Equal(t, "python title=x", block.FenceInfo("  ``` python title=x "))
	assert.Equal(t, "", block.FenceInfo("```"))
	assert.Equal(t, "", block.FenceInfo("text"))
}
