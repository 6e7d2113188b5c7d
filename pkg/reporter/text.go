package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/proofline/internal/ui/pretty"
	"github.com/yaklabco/proofline/pkg/analysis"
	"github.com/yaklabco/proofline/pkg/outline"
	"github.com/yaklabco/proofline/pkg/runner"
)

// maxGutter caps the width of outline labels.
const maxGutter = 24

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Check implements Reporter.
func (r *TextReporter) Check(_ context.Context, result *runner.Result) (err error) {
	defer flush(r.bw, &err)

	if result == nil {
		result = &runner.Result{}
	}

	for _, file := range result.Files {
		r.writeFile(file)
	}

	if r.opts.ShowCategories {
		r.writeCategories(analysis.Analyze(result, analysis.DefaultOptions()))
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.CheckSummary(result.Stats))
	}
	return nil
}

func (r *TextReporter) writeFile(file runner.FileOutcome) {
	path := r.styles.Path.Render(r.opts.displayPath(file.Path))

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n", path, r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)))
		return
	}
	if len(file.Issues) == 0 {
		return
	}

	fmt.Fprintln(r.bw, path)

	var lines []string
	if r.opts.ShowExcerpt {
		lines = strings.Split(file.Text, "\n")
	}

	for _, h := range file.Highlights {
		r.writeHighlight(h)
		if r.opts.ShowExcerpt && h.Line-1 < len(lines) {
			start := h.Column - 1
			fmt.Fprint(r.bw, r.styles.Excerpt(lines[h.Line-1], start, start+h.Range.Len()))
		}
	}

	for _, issue := range file.Unlocated {
		fmt.Fprintf(r.bw, "  %s  %s  %s\n",
			r.styles.Warning.Render("not found"),
			r.styles.Dim.Render("#"+issue.ID),
			r.styles.Original.Render(fmt.Sprintf("%q", issue.Original)),
		)
	}
	fmt.Fprintln(r.bw)
}

func (r *TextReporter) writeCategories(categories []analysis.Category) {
	if len(categories) == 0 {
		return
	}

	width := 0
	for _, c := range categories {
		width = max(width, runewidth.StringWidth(c.Name))
	}

	fmt.Fprintln(r.bw, r.styles.Bold.Render("Categories"))
	for _, c := range categories {
		pad := strings.Repeat(" ", width-runewidth.StringWidth(c.Name))
		line := fmt.Sprintf("%d found", c.Highlights)
		if c.Unlocated > 0 {
			line += r.styles.Warning.Render(fmt.Sprintf(", %d not found", c.Unlocated))
		}
		fmt.Fprintf(r.bw, "  %s%s  %s\n", r.styles.Category.Render(c.Name), pad, line)
	}
	fmt.Fprintln(r.bw)
}

func (r *TextReporter) writeHighlight(h runner.Located) {
	fmt.Fprintf(r.bw, "  %s  %s  %s  %s\n",
		r.styles.Location.Render(fmt.Sprintf("%d:%d", h.Line, h.Column)),
		r.styles.Dim.Render("#"+h.Issue.ID),
		r.styles.Category.Render(h.Issue.Category),
		r.styles.Change(h.Issue.Original, h.Issue.Suggestion),
	)
	if h.Issue.Description != "" {
		fmt.Fprintf(r.bw, "      %s\n", r.styles.Description.Render(h.Issue.Description))
	}
}

// Apply implements Reporter.
func (r *TextReporter) Apply(_ context.Context, result *runner.ApplyResult) (err error) {
	defer flush(r.bw, &err)

	if result == nil {
		return nil
	}

	path := r.styles.Path.Render(r.opts.displayPath(result.Path))
	issue := result.Outcome.Issue

	if !result.Outcome.Applied {
		fmt.Fprintf(r.bw, "%s: %s %s: %s\n", path,
			r.styles.Failure.Render("not applied"),
			r.styles.Dim.Render("#"+issue.ID),
			result.Outcome.Status,
		)
		return nil
	}

	fmt.Fprintf(r.bw, "%s: %s %s %s\n", path,
		r.styles.Success.Render("applied"),
		r.styles.Dim.Render("#"+issue.ID),
		r.styles.Change(issue.Original, issue.Suggestion),
	)

	if r.opts.ShowExcerpt {
		r.writeEdited(result)
	}
	if r.opts.ShowDiff {
		diff, err := unifiedDiff(r.opts.displayPath(result.Path), result.Original, result.Source)
		if err != nil {
			return err
		}
		fmt.Fprint(r.bw, styleDiff(r.styles, diff))
	}

	switch {
	case result.Written && result.BackupPath != "":
		fmt.Fprintf(r.bw, "  wrote %s (backup %s)\n",
			r.opts.displayPath(result.Path), r.opts.displayPath(result.BackupPath))
	case result.Written:
		fmt.Fprintf(r.bw, "  wrote %s\n", r.opts.displayPath(result.Path))
	default:
		fmt.Fprintln(r.bw, r.styles.Dim.Render("  dry run, pass --write to update the essay"))
	}

	fmt.Fprintf(r.bw, "  %s\n", r.styles.Dim.Render(remaining(len(result.Remaining), len(result.Unlocated))))
	return nil
}

// writeEdited prints the edited line with the inserted text marked.
func (r *TextReporter) writeEdited(result *runner.ApplyResult) {
	lines := strings.Split(result.After, "\n")
	var offset int
	for _, line := range lines {
		n := len([]rune(line))
		if result.Outcome.Range.Start <= offset+n {
			start := result.Outcome.Range.Start - offset
			fmt.Fprint(r.bw, r.styles.Excerpt(line, start, start+result.Outcome.Range.Len()))
			return
		}
		offset += n + 1
	}
}

func remaining(found, unlocated int) string {
	var parts []string
	switch found {
	case 0:
		parts = append(parts, "no issues remaining")
	case 1:
		parts = append(parts, "1 issue remaining")
	default:
		parts = append(parts, fmt.Sprintf("%d issues remaining", found))
	}
	if unlocated > 0 {
		parts = append(parts, fmt.Sprintf("%d not found", unlocated))
	}
	return strings.Join(parts, ", ")
}

// Outline implements Reporter.
func (r *TextReporter) Outline(_ context.Context, result *runner.OutlineResult) (err error) {
	defer flush(r.bw, &err)

	if result == nil || result.View == nil {
		return nil
	}

	labels := make(map[int][]string)
	gutter := 0
	for _, m := range result.Markers {
		line := result.View.LineAt(result.Overlay.Top + m.Top)
		if line < 0 {
			continue
		}
		label := runewidth.Truncate(m.Structure, maxGutter, "…")
		labels[line] = append(labels[line], label)
		gutter = max(gutter, runewidth.StringWidth(label))
	}

	fmt.Fprintln(r.bw, r.styles.Path.Render(r.opts.displayPath(result.Path)))
	for i, line := range result.View.Lines() {
		label := strings.Join(labels[i], ", ")
		label = runewidth.Truncate(label, gutter, "…")
		pad := strings.Repeat(" ", gutter-runewidth.StringWidth(label))
		if gutter > 0 {
			fmt.Fprintf(r.bw, "%s%s %s ", r.styles.Marker.Render(label), pad, r.styles.Gutter.Render("│"))
		}
		fmt.Fprintln(r.bw, line)
	}

	for _, seg := range result.Unplaced {
		fmt.Fprintf(r.bw, "%s  %s %s\n",
			r.styles.Warning.Render("not placed"),
			r.styles.Marker.Render(seg.Structure),
			r.styles.Dim.Render(fmt.Sprintf("%q", excerpt(seg))),
		)
	}
	return nil
}

// excerpt shortens a segment's paragraph for display.
func excerpt(seg outline.Segment) string {
	return runewidth.Truncate(strings.Join(strings.Fields(seg.Paragraph), " "), 40, "…")
}
