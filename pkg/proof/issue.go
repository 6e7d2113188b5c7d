// Package proof models proofreading issues and locates them in plain text.
package proof

import (
	"github.com/yaklabco/proofline/pkg/textrange"
)

// DefaultCategory is assigned to issues that arrive without a category.
const DefaultCategory = "General"

// Issue is one proofreading suggestion.
type Issue struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Original    string `json:"original"`
	Suggestion  string `json:"suggestion"`
	Description string `json:"description"`
}

// MapIssue locates the first case-insensitive occurrence of the issue's original text.
func MapIssue(text string, issue Issue) (textrange.Range, bool) {
	return textrange.Find(text, issue.Original)
}

// BuildHighlightRanges maps every issue onto text, in issue order.
// Issues whose original text does not occur are skipped. Ranges of different
// issues may overlap.
func BuildHighlightRanges(text string, issues []Issue) []textrange.Range {
	ranges := make([]textrange.Range, 0, len(issues))
	for _, issue := range issues {
		if r, ok := MapIssue(text, issue); ok {
			ranges = append(ranges, r)
		}
	}
	return ranges
}

// Highlight pairs an issue with the range it currently occupies.
type Highlight struct {
	Issue Issue           `json:"issue"`
	Range textrange.Range `json:"range"`
}

// BuildHighlights is BuildHighlightRanges that keeps track of which issue each range belongs to.
func BuildHighlights(text string, issues []Issue) []Highlight {
	highlights := make([]Highlight, 0, len(issues))
	for _, issue := range issues {
		if r, ok := MapIssue(text, issue); ok {
			highlights = append(highlights, Highlight{Issue: issue, Range: r})
		}
	}
	return highlights
}

// IndexOf returns the position of the issue with id, or -1.
func IndexOf(issues []Issue, id string) int {
	for i, issue := range issues {
		if issue.ID == id {
			return i
		}
	}
	return -1
}

// Without returns a copy of issues with the issue at index i removed.
func Without(issues []Issue, i int) []Issue {
	out := make([]Issue, 0, len(issues))
	out = append(out, issues[:i]...)
	return append(out, issues[i+1:]...)
}
