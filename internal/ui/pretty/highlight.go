package pretty

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/proofline/pkg/textrange"
)

// excerptIndent aligns excerpts under issue lines.
const excerptIndent = "      "

// Highlight renders text with every range drawn in the Mark style. Overlapping
// ranges are drawn once.
func (s *Styles) Highlight(text string, ranges []textrange.Range) string {
	runes := []rune(text)
	merged := mergeRanges(ranges, len(runes))

	var b strings.Builder
	at := 0
	for _, r := range merged {
		b.WriteString(string(runes[at:r.Start]))
		b.WriteString(s.Mark.Render(string(runes[r.Start:r.End])))
		at = r.End
	}
	b.WriteString(string(runes[at:]))
	return b.String()
}

// Excerpt renders one line of text with the runes [start, end) marked, and a caret
// row beneath aligned by display width.
func (s *Styles) Excerpt(line string, start, end int) string {
	runes := []rune(line)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))

	pad := runewidth.StringWidth(string(runes[:start]))
	carets := max(runewidth.StringWidth(string(runes[start:end])), 1)

	var b strings.Builder
	b.WriteString(excerptIndent)
	b.WriteString(s.ExcerptText.Render(string(runes[:start])))
	b.WriteString(s.Mark.Render(string(runes[start:end])))
	b.WriteString(s.ExcerptText.Render(string(runes[end:])))
	b.WriteByte('\n')
	b.WriteString(excerptIndent)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(s.Caret.Render(strings.Repeat("^", carets)))
	b.WriteByte('\n')
	return b.String()
}

// Change renders "original → suggestion".
func (s *Styles) Change(original, suggestion string) string {
	return s.Original.Render(quote(original)) + s.Dim.Render(" → ") + s.Suggestion.Render(quote(suggestion))
}

func quote(text string) string {
	return `"` + text + `"`
}

func mergeRanges(ranges []textrange.Range, limit int) []textrange.Range {
	sorted := make([]textrange.Range, 0, len(ranges))
	for _, r := range ranges {
		r.Start = clamp(r.Start, 0, limit)
		r.End = clamp(r.End, r.Start, limit)
		if r.End > r.Start {
			sorted = append(sorted, r)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var merged []textrange.Range
	for _, r := range sorted {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
