package proof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/proof"
)

func TestStripCodeFences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fence", in: `[{"a":1}]`, want: `[{"a":1}]`},
		{name: "json fence", in: "```json\n[1, 2]\n```", want: "[1, 2]"},
		{name: "bare fence", in: "```\n{\"issues\": []}\n```\n", want: `{"issues": []}`},
		{name: "prose around fence", in: "Here you go:\n```json\n[3]\n```\nThanks", want: "[3]"},
		{name: "unterminated fence", in: "```json\n[4]", want: "[4]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, proof.StripCodeFences(tc.in))
		})
	}
}

func TestDecodeIssues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want []proof.Issue
	}{
		{
			name: "bare array with defaults",
			data: `[{"original":"very very","suggestion":"extremely","description":"Repeated modifier."}]`,
			want: []proof.Issue{{
				ID:          "0-very very-extremely",
				Category:    proof.DefaultCategory,
				Original:    "very very",
				Suggestion:  "extremely",
				Description: "Repeated modifier.",
			}},
		},
		{
			name: "wrapped object keeps explicit fields",
			data: `{"issues":[{"id":"a1","category":"Style","original":"x","suggestion":"y","description":"d"}]}`,
			want: []proof.Issue{{ID: "a1", Category: "Style", Original: "x", Suggestion: "y", Description: "d"}},
		},
		{
			name: "invalid entries dropped but indexes kept",
			data: `[
				{"original":"x","suggestion":"y"},
				"not an object",
				{"original":"","suggestion":"y","description":"d"},
				{"original":"p","suggestion":"q","description":"d","id":7}
			]`,
			want: []proof.Issue{{ID: "7", Category: proof.DefaultCategory, Original: "p", Suggestion: "q", Description: "d"}},
		},
		{
			name: "generated id uses position in payload",
			data: `[null, {"original":"p","suggestion":"q","description":"d"}]`,
			want: []proof.Issue{{ID: "1-p-q", Category: proof.DefaultCategory, Original: "p", Suggestion: "q", Description: "d"}},
		},
		{
			name: "fenced payload",
			data: "```json\n{\"issues\":[{\"original\":\"p\",\"suggestion\":\"q\",\"description\":\"d\",\"category\":\"Grammar\"}]}\n```",
			want: []proof.Issue{{ID: "0-p-q", Category: "Grammar", Original: "p", Suggestion: "q", Description: "d"}},
		},
		{name: "object without issues", data: `{"result":[]}`, want: []proof.Issue{}},
		{name: "scalar", data: `42`, want: []proof.Issue{}},
		{name: "empty", data: "  ", want: []proof.Issue{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := proof.DecodeIssues([]byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeIssues_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := proof.DecodeIssues([]byte(`[{"original":`))
	require.ErrorIs(t, err, proof.ErrInvalidPayload)
}

func TestEncodeIssues(t *testing.T) {
	t.Parallel()

	issues := []proof.Issue{
		{ID: "2", Category: "Spacing", Original: "happy  today", Suggestion: "happy today", Description: "Double space"},
	}

	data, err := proof.EncodeIssues(issues)
	require.NoError(t, err)

	decoded, err := proof.DecodeIssues(data)
	require.NoError(t, err)
	assert.Equal(t, issues, decoded)

	empty, err := proof.EncodeIssues(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(empty))
}
