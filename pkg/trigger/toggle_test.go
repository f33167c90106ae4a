package trigger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/block"
	"github.com/yaklabco/gomdedit/pkg/edit"
	"github.com/yaklabco/gomdedit/pkg/trigger"
)

func TestToggleTask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		want    string
		handled bool
	}{
		{"check", "- [ ] a", "- [x] a", true},
		{"uncheck", "- [x] a", "- [ ] a", true},
		{"uncheck upper", "  * [X] b", "  * [ ] b", true},
		{"bare box", "- [ ]", "- [x]", true},
		{"bullet is not a task", "- a", "- a", false},
		{"paragraph", "[ ] a", "[ ] a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := block.Classify(tt.text)
			require.NotEmpty(t, blocks)

			m, ok := trigger.ToggleTask(tt.text, blocks[0])
			assert.Equal(t, tt.handled, ok)
			if !ok {
				return
			}
			got, err := edit.Apply(tt.text, m)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
