package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/proofline/pkg/runner"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

// CheckSummary formats check statistics as one line, e.g.
// "4 highlights from 6 issues in 2 essays, 2 not found".
func (s *Styles) CheckSummary(stats runner.Stats) string {
	if stats.Essays == 0 {
		return s.Dim.Render("No essays with issue lists found") + "\n"
	}
	if stats.Issues == 0 && stats.Errored == 0 {
		return s.Success.Render("No issues") + s.Dim.Render(fmt.Sprintf(" (%s checked)", plural(stats.Essays, "essay", "essays"))) + "\n"
	}

	parts := []string{fmt.Sprintf("%s from %s in %s",
		s.Bold.Render(plural(stats.Highlights, "highlight", "highlights")),
		plural(stats.Issues, "issue", "issues"),
		plural(stats.Essays, "essay", "essays"),
	)}
	if stats.Unlocated > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d not found", stats.Unlocated)))
	}
	if stats.Errored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.Errored)))
	}
	return strings.Join(parts, ", ") + "\n"
}
