package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/transform"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []transform.TextEdit
		want    string
	}{
		{
			name:    "empty edits returns original",
			content: "hello world",
			want:    "hello world",
		},
		{
			name:    "single replacement",
			content: "I am *very very* happy",
			edits: []transform.TextEdit{
				{StartOffset: 6, EndOffset: 15, NewText: "extremely"},
			},
			want: "I am *extremely* happy",
		},
		{
			name:    "unsorted edits",
			content: "hello world",
			edits: []transform.TextEdit{
				{StartOffset: 6, EndOffset: 11, NewText: "there"},
				{StartOffset: 0, EndOffset: 5, NewText: "hi"},
			},
			want: "hi there",
		},
		{
			name:    "insertion",
			content: "ab",
			edits: []transform.TextEdit{
				{StartOffset: 1, EndOffset: 1, NewText: "-"},
			},
			want: "a-b",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := transform.ApplyEdits([]byte(tc.content), tc.edits)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestApplyEdits_Errors(t *testing.T) {
	t.Parallel()

	_, err := transform.ApplyEdits([]byte("abc"), []transform.TextEdit{{StartOffset: 2, EndOffset: 9}})
	var editErr *transform.EditError
	require.ErrorAs(t, err, &editErr)
	assert.Contains(t, err.Error(), "exceeds content length 3")

	_, err = transform.ApplyEdits([]byte("abc"), []transform.TextEdit{{StartOffset: -1, EndOffset: 1}})
	require.ErrorAs(t, err, &editErr)

	_, err = transform.ApplyEdits([]byte("abcdef"), []transform.TextEdit{
		{StartOffset: 0, EndOffset: 3},
		{StartOffset: 2, EndOffset: 4},
	})
	var conflict *transform.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 2, conflict.Edit2.StartOffset)
}
