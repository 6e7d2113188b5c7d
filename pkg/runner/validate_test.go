package runner_test

import (
	"context"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/runner"
)

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       runner.Options
		wantFields []string
	}{
		{name: "defaults", opts: runner.Options{}},
		{name: "issues with one essay", opts: runner.Options{Paths: []string{"a.md"}, IssuesPath: "a.json"}},
		{name: "negative jobs", opts: runner.Options{Jobs: -1}, wantFields: []string{"jobs"}},
		{
			name:       "issues with two essays",
			opts:       runner.Options{Paths: []string{"a.md", "b.md"}, IssuesPath: "a.json"},
			wantFields: []string{"issues_path"},
		},
		{
			name:       "bad extensions",
			opts:       runner.Options{Extensions: []string{".md", "txt", ".MD"}},
			wantFields: []string{"extensions[1]", "extensions[2]"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.opts.Validate()
			if len(tc.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, len(tc.wantFields))
			for i, field := range tc.wantFields {
				assert.Equal(t, field, fieldErrs[i].Field)
			}
		})
	}
}

func TestCommandOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		validate  func() error
		wantField string
	}{
		{name: "apply id", validate: runner.ApplyOptions{ID: "3"}.Validate},
		{name: "apply blank id", validate: runner.ApplyOptions{ID: "  "}.Validate, wantField: "id"},
		{name: "outline", validate: runner.OutlineOptions{Scroll: 10, Width: 40}.Validate},
		{name: "outline negative scroll", validate: runner.OutlineOptions{Scroll: -1}.Validate, wantField: "scroll"},
		{name: "outline negative width", validate: runner.OutlineOptions{Width: -5}.Validate, wantField: "width"},
		{name: "watch", validate: runner.WatchOptions{Debounce: time.Second}.Validate},
		{name: "watch negative debounce", validate: runner.WatchOptions{Debounce: -time.Second}.Validate, wantField: "debounce"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.validate()
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tc.wantField, fieldErrs[0].Field)
		})
	}
}

func TestCheck_RejectsInvalidOptions(t *testing.T) {
	t.Parallel()

	_, err := runner.New(plainConfig()).Check(context.Background(), runner.Options{Jobs: -2})
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
}
