package textpos_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gomdedit/pkg/textpos"
)

func TestRange_Basics(t *testing.T) {
	t.Parallel()

	r := textpos.NewRange(2, 5)
	assert.Equal(t, 3, r.Len())
	assert.False(t, r.IsEmpty())
	assert.True(t, r.Contains(2))
	assert.True(t, r.Contains(4))
	assert.False(t, r.Contains(5))
	assert.Equal(t, "[2:5)", r.String())
	assert.Equal(t, textpos.NewRange(4, 7), r.Shift(2))
}

func TestRange_Intersects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b textpos.Range
		want bool
	}{
		{"overlap", textpos.NewRange(0, 3), textpos.NewRange(2, 4), true},
		{"adjacent", textpos.NewRange(0, 2), textpos.NewRange(2, 4), false},
		{"nested", textpos.NewRange(0, 10), textpos.NewRange(3, 4), true},
		{"disjoint", textpos.NewRange(0, 1), textpos.NewRange(5, 6), false},
		{"empty never intersects", textpos.NewRange(2, 2), textpos.NewRange(0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.a.Intersects(tt.b))
			assert.Equal(t, tt.want, tt.b.Intersects(tt.a))
		})
	}
}

func TestRange_Covers(t *testing.T) {
	t.Parallel()

	outer := textpos.NewRange(0, 10)
	assert.True(t, outer.Covers(textpos.NewRange(0, 10)))
	assert.True(t, outer.Covers(textpos.NewRange(3, 4)))
	assert.False(t, outer.Covers(textpos.NewRange(8, 11)))
}
