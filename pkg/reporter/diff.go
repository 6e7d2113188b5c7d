package reporter

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/yaklabco/proofline/internal/ui/pretty"
)

// diffContext is the number of unchanged lines around each hunk.
const diffContext = 3

// unifiedDiff returns a unified diff between the essay sources, or "" when they
// are equal.
func unifiedDiff(path, before, after string) (string, error) {
	if before == after {
		return "", nil
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContext,
	})
	if err != nil {
		return "", fmt.Errorf("diff %s: %w", path, err)
	}
	return diff, nil
}

// styleDiff colors the lines of a unified diff.
func styleDiff(styles *pretty.Styles, diff string) string {
	lines := strings.SplitAfter(diff, "\n")
	for i, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			lines[i] = styles.Bold.Render(body) + nl
		case strings.HasPrefix(body, "@@"):
			lines[i] = styles.Location.Render(body) + nl
		case strings.HasPrefix(body, "+"):
			lines[i] = styles.Success.Render(body) + nl
		case strings.HasPrefix(body, "-"):
			lines[i] = styles.Failure.Render(body) + nl
		}
	}
	return strings.Join(lines, "")
}
