package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/reporter"
	"github.com/yaklabco/proofline/pkg/runner"
	"github.com/yaklabco/proofline/pkg/session"
	"github.com/yaklabco/proofline/pkg/textrange"
)

var (
	repeated = proof.Issue{
		ID:          "1",
		Category:    "Style",
		Original:    "very very",
		Suggestion:  "extremely",
		Description: "Repeated modifier.",
	}
	missing = proof.Issue{ID: "2", Category: "General", Original: "missing", Suggestion: "found"}
)

func checkResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:       "/work/essay.md",
				IssuesPath: "/work/essay.md.issues.json",
				Flavor:     "markdown",
				Text:       "I am very very happy\ntoday",
				Issues:     []proof.Issue{repeated, missing},
				Highlights: []runner.Located{{
					Highlight: proof.Highlight{Issue: repeated, Range: textrange.Range{Start: 5, End: 14}},
					Line:      1,
					Column:    6,
				}},
				Unlocated: []proof.Issue{missing},
			},
			{
				Path:  "/work/broken.md",
				Error: errors.New("read essay: permission denied"),
			},
		},
		Stats: runner.Stats{Essays: 2, Errored: 1, Issues: 2, Highlights: 1, Unlocated: 1},
	}
}

func newReporter(t *testing.T, buf *bytes.Buffer, format config.OutputFormat) reporter.Reporter {
	t.Helper()

	opts := reporter.DefaultOptions()
	opts.Writer = buf
	opts.Format = format
	opts.Color = "never"
	opts.WorkingDir = "/work"

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	return rep
}

func TestNew_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "sarif"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestTextReporter_Check(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newReporter(t, &buf, config.FormatText).Check(context.Background(), checkResult()))

	want := "essay.md\n" +
		"  1:6  #1  Style  \"very very\" → \"extremely\"\n" +
		"      Repeated modifier.\n" +
		"      I am very very happy\n" +
		"           ^^^^^^^^^\n" +
		"  not found  #2  \"missing\"\n" +
		"\n" +
		"broken.md: error: read essay: permission denied\n" +
		"1 highlight from 2 issues in 2 essays, 1 not found, 1 failed\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_CheckEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newReporter(t, &buf, config.FormatText).Check(context.Background(), nil))
	assert.Equal(t, "No essays with issue lists found\n", buf.String())
}

func TestJSONReporter_Check(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newReporter(t, &buf, config.FormatJSON).Check(context.Background(), checkResult()))

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, reporter.JSONVersion, out.Version)
	assert.Equal(t, reporter.KindCheck, out.Kind)
	require.Len(t, out.Files, 2)
	assert.Equal(t, "essay.md", out.Files[0].Path)
	assert.Equal(t, "essay.md.issues.json", out.Files[0].IssuesPath)
	require.Len(t, out.Files[0].Highlights, 1)
	assert.Equal(t, reporter.JSONHighlight{Issue: repeated, Start: 5, End: 14, Line: 1, Column: 6}, out.Files[0].Highlights[0])
	assert.Equal(t, []proof.Issue{missing}, out.Files[0].Unlocated)
	assert.Equal(t, "read essay: permission denied", out.Files[1].Error)
	require.Len(t, out.Categories, 2)
	assert.Equal(t, "General", out.Categories[0].Name)
	require.NotNil(t, out.Summary)
	assert.Equal(t, 2, out.Summary.Essays)
	assert.Equal(t, 1, out.Summary.Errored)
	assert.Nil(t, out.Apply)
}

func applyResult(applied bool) *runner.ApplyResult {
	outcome := session.Outcome{Issue: repeated, Applied: applied, Status: session.StatusTextChanged}
	if applied {
		outcome.Status = session.StatusApplied
		outcome.Range = textrange.Range{Start: 5, End: 14}
	}
	return &runner.ApplyResult{
		Path:       "/work/essay.md",
		IssuesPath: "/work/essay.md.issues.json",
		Outcome:    outcome,
		Before:     "I am very very happy",
		After:      "I am extremely happy",
		Written:    applied,
		BackupPath: "/work/essay.md.proofline.bak",
	}
}

func TestTextReporter_Apply(t *testing.T) {
	t.Parallel()

	t.Run("applied and written", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, &buf, config.FormatText).Apply(context.Background(), applyResult(true)))

		want := "essay.md: applied #1 \"very very\" → \"extremely\"\n" +
			"      I am extremely happy\n" +
			"           ^^^^^^^^^\n" +
			"  wrote essay.md (backup essay.md.proofline.bak)\n" +
			"  no issues remaining\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("not applied", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, newReporter(t, &buf, config.FormatText).Apply(context.Background(), applyResult(false)))
		assert.Equal(t, "essay.md: not applied #1: Text already updated\n", buf.String())
	})
}

func TestJSONReporter_Apply(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newReporter(t, &buf, config.FormatJSON).Apply(context.Background(), applyResult(true)))

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, reporter.KindApply, out.Kind)
	require.NotNil(t, out.Apply)
	assert.True(t, out.Apply.Applied)
	assert.Equal(t, "applied", out.Apply.Status)
	assert.Equal(t, 5, out.Apply.Start)
	assert.Equal(t, 14, out.Apply.End)
	assert.Equal(t, "I am extremely happy", out.Apply.Text)
	assert.Equal(t, "essay.md.proofline.bak", out.Apply.BackupPath)
	assert.Empty(t, out.Apply.Remaining)
	assert.Empty(t, out.Files)
}

func outlineResult(t *testing.T, scroll float64) *runner.OutlineResult {
	t.Helper()

	dir := t.TempDir()
	essay := filepath.Join(dir, "essay.txt")
	require.NoError(t, os.WriteFile(essay, []byte("First paragraph about cats.\nSecond paragraph concludes."), 0o600))
	require.NoError(t, os.WriteFile(runner.SegmentsPathFor(essay), []byte(`[
  {"paragraph": "first paragraph about cats", "structure": "Intro"},
  {"paragraph": "second paragraph concludes", "structure": "Conclusion"},
  {"paragraph": "Not in the essay", "structure": "Aside"}
]`), 0o600))

	cfg := config.NewConfig()
	cfg.Flavor = config.FlavorPlain

	result, err := runner.New(cfg).Outline(context.Background(), essay, runner.OutlineOptions{Scroll: scroll})
	require.NoError(t, err)
	return result
}

func TestTextReporter_Outline(t *testing.T) {
	t.Parallel()

	for _, scroll := range []float64{0, 20} {
		var buf bytes.Buffer
		require.NoError(t, newReporter(t, &buf, config.FormatText).Outline(context.Background(), outlineResult(t, scroll)))

		out := buf.String()
		assert.Contains(t, out, "Intro      │ First paragraph about cats.\n")
		assert.Contains(t, out, "Conclusion │ Second paragraph concludes.\n")
		assert.Contains(t, out, "not placed  Aside \"Not in the essay\"\n")
	}
}

func TestJSONReporter_Outline(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, newReporter(t, &buf, config.FormatJSON).Outline(context.Background(), outlineResult(t, 0)))

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, reporter.KindOutline, out.Kind)
	require.NotNil(t, out.Outline)
	assert.Equal(t, []string{"First paragraph about cats.", "", "Second paragraph concludes."}, out.Outline.Lines)
	require.Len(t, out.Outline.Markers, 2)
	assert.Equal(t, "Conclusion", out.Outline.Markers[1].Structure)
	require.Len(t, out.Outline.Unplaced, 1)
}

func TestApply_Diff(t *testing.T) {
	t.Parallel()

	result := applyResult(true)
	result.Original = "# Draft\n\nI am very very happy\n"
	result.Source = "# Draft\n\nI am extremely happy\n"

	for _, format := range []config.OutputFormat{config.FormatText, config.FormatJSON} {
		var buf bytes.Buffer
		opts := reporter.DefaultOptions()
		opts.Writer = &buf
		opts.Format = format
		opts.Color = "never"
		opts.WorkingDir = "/work"
		opts.ShowDiff = true

		rep, err := reporter.New(opts)
		require.NoError(t, err)
		require.NoError(t, rep.Apply(context.Background(), result))

		diff := buf.String()
		if format == config.FormatJSON {
			var out reporter.JSONOutput
			require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
			diff = out.Apply.Diff
		}
		assert.Contains(t, diff, "--- a/essay.md\n+++ b/essay.md\n")
		assert.Contains(t, diff, "-I am very very happy\n+I am extremely happy\n")
	}
}

func TestTextReporter_Categories(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	opts := reporter.DefaultOptions()
	opts.Writer = &buf
	opts.Color = "never"
	opts.ShowExcerpt = false
	opts.ShowSummary = false
	opts.ShowCategories = true

	rep, err := reporter.New(opts)
	require.NoError(t, err)
	require.NoError(t, rep.Check(context.Background(), checkResult()))

	assert.Contains(t, buf.String(), "Categories\n  General  0 found, 1 not found\n  Style    1 found\n")
}
