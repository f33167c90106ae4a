package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomdedit/pkg/edit"
	"github.com/yaklabco/gomdedit/pkg/textpos"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		mutation edit.Mutation
		want     string
	}{
		{
			name:     "replacement",
			text:     "hello world",
			mutation: edit.Replace(textpos.NewRange(0, 5), "hi"),
			want:     "hi world",
		},
		{
			name:     "insertion",
			text:     "hello world",
			mutation: edit.Insert(5, " beautiful"),
			want:     "hello beautiful world",
		},
		{
			name:     "deletion",
			text:     "hello world",
			mutation: edit.Delete(textpos.NewRange(5, 11)),
			want:     "hello",
		},
		{
			name:     "insert into empty text",
			text:     "",
			mutation: edit.Insert(0, "- "),
			want:     "- ",
		},
		{
			name:     "cursor move only",
			text:     "abc",
			mutation: edit.MoveCursor(1, 3),
			want:     "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := edit.Apply(tt.text, tt.mutation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_InvalidRangeLeavesTextUntouched(t *testing.T) {
	t.Parallel()

	got, err := edit.Apply("abc", edit.Insert(4, "x"))
	require.Error(t, err)
	assert.Equal(t, "abc", got)

	var rangeErr *edit.RangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, textpos.NewRange(4, 4), rangeErr.Range)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       textpos.Range
		wantErr string
	}{
		{"valid", textpos.NewRange(0, 3), ""},
		{"negative", textpos.NewRange(-1, 2), "start offset is negative"},
		{"inverted", textpos.NewRange(2, 1), "end offset is before start offset"},
		{"too long", textpos.NewRange(0, 9), "exceeds text length"},
		{"splits rune", textpos.NewRange(2, 2), "splits a UTF-8 sequence"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := edit.Validate(edit.Mutation{Range: tt.r}, "aé")
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMutation_Helpers(t *testing.T) {
	t.Parallel()

	m := edit.Replace(textpos.NewRange(2, 4), "xyz")
	assert.Equal(t, 5, m.Cursor)
	assert.Equal(t, 1, m.Delta())
	assert.False(t, m.IsNoop())

	move := edit.MoveCursor(3, 7)
	assert.True(t, move.IsNoop())
	assert.Equal(t, 7, move.Cursor)
}
