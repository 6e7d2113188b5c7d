package runner

import (
	"github.com/yaklabco/proofline/pkg/decoration"
	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/textrange"
)

// Located is a highlight with its line and column in the plain text.
type Located struct {
	proof.Highlight

	Line   int
	Column int
}

// FileOutcome is the check result of one essay.
type FileOutcome struct {
	Path       string
	IssuesPath string

	// Flavor is the parser flavor the essay resolved to.
	Flavor string

	// Text is the plain text the issues were matched against.
	Text string

	// Issues are all issues read from the issue list.
	Issues []proof.Issue

	// Highlights are the issues found in Text, in issue order.
	Highlights []Located

	// Unlocated are issues whose original text does not occur in Text.
	Unlocated []proof.Issue

	// Decorations are the highlights in document positions.
	Decorations []decoration.Decoration

	// Error is set when the essay could not be checked.
	Error error
}

// Stats aggregates a check.
type Stats struct {
	Essays     int
	Errored    int
	Issues     int
	Highlights int
	Unlocated  int
}

// Result is the outcome of a multi-essay check, ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any essay failed to be checked.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.Errored > 0
}

// HasHighlights reports whether any issue was found in its essay.
func (r *Result) HasHighlights() bool {
	return r != nil && r.Stats.Highlights > 0
}

// NewResult collects outcomes into a Result, in the order given.
func NewResult(outcomes ...FileOutcome) *Result {
	result := &Result{Files: make([]FileOutcome, 0, len(outcomes))}
	for _, outcome := range outcomes {
		result.accumulate(outcome)
	}
	return result
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.Essays++
	if outcome.Error != nil {
		r.Stats.Errored++
		return
	}
	r.Stats.Issues += len(outcome.Issues)
	r.Stats.Highlights += len(outcome.Highlights)
	r.Stats.Unlocated += len(outcome.Unlocated)
}

// locate attaches line and column numbers to highlights and lists the issues that
// were not found.
func locate(text string, issues []proof.Issue, highlights []proof.Highlight) ([]Located, []proof.Issue) {
	lines := textrange.NewLineIndex(text)
	found := make(map[string]struct{}, len(highlights))

	located := make([]Located, 0, len(highlights))
	for _, h := range highlights {
		line, col := lines.Position(h.Range.Start)
		located = append(located, Located{Highlight: h, Line: line, Column: col})
		found[h.Issue.ID] = struct{}{}
	}

	var unlocated []proof.Issue
	for _, issue := range issues {
		if _, ok := found[issue.ID]; !ok {
			unlocated = append(unlocated, issue)
		}
	}
	return located, unlocated
}
