package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/proofline/pkg/analysis"
	"github.com/yaklabco/proofline/pkg/outline"
	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/runner"
)

// JSONVersion is the version of the JSON output envelope.
const JSONVersion = "1.0.0"

// Kinds of JSON output.
const (
	KindCheck   = "check"
	KindApply   = "apply"
	KindOutline = "outline"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string `json:"version"`
	Kind    string `json:"kind"`

	Files      []JSONFileResult    `json:"files,omitempty"`
	Categories []analysis.Category `json:"categories,omitempty"`
	Summary    *JSONSummary        `json:"summary,omitempty"`
	Apply      *JSONApply          `json:"apply,omitempty"`
	Outline    *JSONOutline        `json:"outline,omitempty"`
}

// JSONFileResult represents a single essay's check results.
type JSONFileResult struct {
	Path       string          `json:"path"`
	IssuesPath string          `json:"issuesPath"`
	Flavor     string          `json:"flavor,omitempty"`
	Highlights []JSONHighlight `json:"highlights"`
	Unlocated  []proof.Issue   `json:"unlocated,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// JSONHighlight is an issue located in the essay's plain text.
type JSONHighlight struct {
	Issue  proof.Issue `json:"issue"`
	Start  int         `json:"start"`
	End    int         `json:"end"`
	Line   int         `json:"line"`
	Column int         `json:"column"`
}

// JSONSummary contains aggregate check statistics.
type JSONSummary struct {
	Essays     int `json:"essays"`
	Errored    int `json:"errored"`
	Issues     int `json:"issues"`
	Highlights int `json:"highlights"`
	Unlocated  int `json:"unlocated"`
}

// JSONApply describes an accepted suggestion.
type JSONApply struct {
	Path       string          `json:"path"`
	IssuesPath string          `json:"issuesPath"`
	Issue      proof.Issue     `json:"issue"`
	Applied    bool            `json:"applied"`
	Status     string          `json:"status"`
	Start      int             `json:"start"`
	End        int             `json:"end"`
	Text       string          `json:"text"`
	Diff       string          `json:"diff,omitempty"`
	Written    bool            `json:"written"`
	BackupPath string          `json:"backupPath,omitempty"`
	Remaining  []JSONHighlight `json:"remaining"`
	Unlocated  []proof.Issue   `json:"unlocated,omitempty"`
}

// JSONOutline describes placed outline markers.
type JSONOutline struct {
	Path     string            `json:"path"`
	Lines    []string          `json:"lines"`
	Markers  []outline.Marker  `json:"markers"`
	Unplaced []outline.Segment `json:"unplaced,omitempty"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

func (r *JSONReporter) encode(output *JSONOutput) (err error) {
	defer flush(r.bw, &err)

	output.Version = JSONVersion
	encoder := json.NewEncoder(r.bw)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// Check implements Reporter.
func (r *JSONReporter) Check(_ context.Context, result *runner.Result) error {
	output := &JSONOutput{
		Kind:    KindCheck,
		Files:   make([]JSONFileResult, 0),
		Summary: &JSONSummary{},
	}

	if result != nil {
		for _, file := range result.Files {
			output.Files = append(output.Files, r.fileResult(file))
		}
		output.Categories = analysis.Analyze(result, analysis.DefaultOptions())
		stats := result.Stats
		*output.Summary = JSONSummary{
			Essays:     stats.Essays,
			Errored:    stats.Errored,
			Issues:     stats.Issues,
			Highlights: stats.Highlights,
			Unlocated:  stats.Unlocated,
		}
	}

	return r.encode(output)
}

func (r *JSONReporter) fileResult(file runner.FileOutcome) JSONFileResult {
	result := JSONFileResult{
		Path:       r.opts.displayPath(file.Path),
		IssuesPath: r.opts.displayPath(file.IssuesPath),
		Flavor:     file.Flavor,
		Highlights: highlights(file.Highlights),
		Unlocated:  file.Unlocated,
	}
	if file.Error != nil {
		result.Error = file.Error.Error()
	}
	return result
}

func highlights(located []runner.Located) []JSONHighlight {
	out := make([]JSONHighlight, 0, len(located))
	for _, h := range located {
		out = append(out, JSONHighlight{
			Issue:  h.Issue,
			Start:  h.Range.Start,
			End:    h.Range.End,
			Line:   h.Line,
			Column: h.Column,
		})
	}
	return out
}

// Apply implements Reporter.
func (r *JSONReporter) Apply(_ context.Context, result *runner.ApplyResult) error {
	output := &JSONOutput{Kind: KindApply}
	if result != nil {
		path := r.opts.displayPath(result.Path)
		var diff string
		if r.opts.ShowDiff {
			var err error
			if diff, err = unifiedDiff(path, result.Original, result.Source); err != nil {
				return err
			}
		}
		output.Apply = &JSONApply{
			Path:       path,
			IssuesPath: r.opts.displayPath(result.IssuesPath),
			Issue:      result.Outcome.Issue,
			Applied:    result.Outcome.Applied,
			Status:     result.Outcome.Status.String(),
			Start:      result.Outcome.Range.Start,
			End:        result.Outcome.Range.End,
			Text:       result.After,
			Diff:       diff,
			Written:    result.Written,
			BackupPath: r.opts.displayPath(result.BackupPath),
			Remaining:  highlights(result.Remaining),
			Unlocated:  result.Unlocated,
		}
	}
	return r.encode(output)
}

// Outline implements Reporter.
func (r *JSONReporter) Outline(_ context.Context, result *runner.OutlineResult) error {
	output := &JSONOutput{Kind: KindOutline}
	if result != nil {
		out := &JSONOutline{
			Path:     r.opts.displayPath(result.Path),
			Lines:    []string{},
			Markers:  result.Markers,
			Unplaced: result.Unplaced,
		}
		if result.View != nil {
			out.Lines = result.View.Lines()
		}
		if out.Markers == nil {
			out.Markers = []outline.Marker{}
		}
		output.Outline = out
	}
	return r.encode(output)
}
