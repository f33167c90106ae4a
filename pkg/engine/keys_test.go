package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/trigger"
)

func TestHandleKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		key        trigger.Key
		reverse    bool
		cursor     int
		wantText   string
		wantCursor int
	}{
		{"enter continues list", "- a", trigger.KeyEnter, false, 3, "- a\n- ", 6},
		{"enter exits empty item", "- a\n- ", trigger.KeyEnter, false, 6, "- a\n\n", 4},
		{"enter in paragraph is literal", "a", trigger.KeyEnter, false, 1, "a\n", 2},
		{"tab in paragraph is literal", "a", trigger.KeyTab, false, 1, "a\t", 2},
		{"tab indents list", "- a", trigger.KeyTab, false, 3, "  - a", 5},
		{"shift tab at top of table", "| a |\n|---|", trigger.KeyTab, true, 2, "| a |\n|---|", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := newDoc(tt.text)
			cursor, err := doc.HandleKey(tt.key, tt.reverse, tt.cursor)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, doc.Text())
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestProcessKey_DoesNotMutate(t *testing.T) {
	t.Parallel()

	doc := newDoc("1. a")
	m, ok := doc.ProcessKey(trigger.KeyEnter, false, 4)

	require.True(t, ok)
	assert.Equal(t, "\n2. ", m.Text)
	assert.Equal(t, "1. a", doc.Text())
}

func TestTypingSession(t *testing.T) {
	t.Parallel()

	doc := newDoc("")
	cursor := 0
	var err error

	for _, step := range []string{"- [ ] milk", "\n", "eggs", "\n", "\n", "done"} {
		if step == "\n" {
			cursor, err = doc.HandleKey(trigger.KeyEnter, false, cursor)
		} else {
			cursor, err = doc.Type(cursor, step)
		}
		require.NoError(t, err)
	}

	assert.Equal(t, "- [ ] milk\n- [ ] eggs\ndone\n", doc.Text())
	assert.Equal(t, len(doc.Text())-1, cursor, "the exit keeps the cursor on the emptied line")
}

func TestToggleTask(t *testing.T) {
	t.Parallel()

	doc := newDoc("intro\n- [ ] a")

	ok, err := doc.ToggleTask(1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "intro\n- [x] a", doc.Text())
	assert.Equal(t, block.TaskList(0, true), doc.LineBlocks()[1].Type)

	ok, err = doc.ToggleTask(0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = doc.ToggleTask(7)
	require.NoError(t, err)
	assert.False(t, ok)
}
