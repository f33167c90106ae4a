package compat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/compat"
)

func TestCheck_Agreement(t *testing.T) {
	t.Parallel()

	doc := "# Title\n\nSome text.\n\n- a\n- b\n\n- [ ] todo\n- [x] done\n\n1. one\n\n> quote\n\n" +
		"```go\ncode\n```\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"

	got, err := compat.New().Check(context.Background(), []byte(doc))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheck_Divergences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		doc   string
		lines []int
		want  []block.Kind
	}{
		{"paren ordered marker", "1) item\n", []int{1}, []block.Kind{block.KindOrderedList}},
		{"tilde fence", "~~~\ncode\n~~~\n", []int{1, 2}, []block.Kind{block.KindCodeFenceOpen, block.KindCodeBlock}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := compat.New().Check(context.Background(), []byte(tt.doc))
			require.NoError(t, err)
			require.Len(t, got, len(tt.lines))
			for i, d := range got {
				assert.Equal(t, tt.lines[i], d.Line)
				assert.Equal(t, tt.want[i], d.Want.Kind)
				assert.Equal(t, block.KindParagraph, d.Got.Kind)
			}
		})
	}
}

func TestCheck_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := compat.New().Check(ctx, []byte("# x"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestDivergence_String(t *testing.T) {
	t.Parallel()

	d := compat.Divergence{Line: 3, Want: block.BulletList(0), Got: block.Paragraph()}
	assert.Equal(t, "line 3: goldmark reads BulletList(0), classifier reads Paragraph", d.String())
}
