package render

import (
	"math"
	"strings"

	"github.com/yaklabco/proofline/pkg/outline"
	"github.com/yaklabco/proofline/pkg/posmap"
)

// View is a laid-out document. It implements outline.Surface; each text leaf of the
// document is one text node, so text split by inline styling is split here too.
type View struct {
	opts    Options
	leaves  []posmap.Leaf
	places  [][]place
	lines   []line
	scrollY float64
}

// Options returns the options the view was laid out with.
func (v *View) Options() Options {
	return v.opts
}

// TextNodes returns one node per text leaf, in document order.
func (v *View) TextNodes() []outline.TextNode {
	nodes := make([]outline.TextNode, len(v.leaves))
	for i, leaf := range v.leaves {
		nodes[i] = outline.TextNode{Index: i, Text: leaf.Node.Text()}
	}
	return nodes
}

// RangeRect returns the bounding box of the runes [start, end) of node in viewport
// coordinates. A range made only of zero-width runes has zero height.
func (v *View) RangeRect(node outline.TextNode, start, end int) (outline.Rect, bool) {
	if node.Index < 0 || node.Index >= len(v.places) {
		return outline.Rect{}, false
	}
	places := v.places[node.Index]
	if start < 0 || end > len(places) || start >= end {
		return outline.Rect{}, false
	}

	firstLine, lastLine := math.MaxInt, -1
	left, right := math.MaxInt, 0
	for _, p := range places[start:end] {
		if p.width == 0 {
			continue
		}
		firstLine = min(firstLine, p.line)
		lastLine = max(lastLine, p.line)
		left = min(left, p.cell)
		right = max(right, p.cell+p.width)
	}

	if lastLine < 0 {
		p := places[start]
		return outline.Rect{
			Left: float64(p.cell) * v.opts.CellWidth,
			Top:  v.lineTop(p.line),
		}, true
	}

	return outline.Rect{
		Left:   float64(left) * v.opts.CellWidth,
		Top:    v.lineTop(firstLine),
		Width:  float64(right-left) * v.opts.CellWidth,
		Height: float64(lastLine-firstLine+1) * v.opts.LineHeight,
	}, true
}

// ScrollTo moves the viewport so that y is the document offset shown at its top.
func (v *View) ScrollTo(y float64) {
	v.scrollY = y
}

// ScrollY returns the current scroll offset.
func (v *View) ScrollY() float64 {
	return v.scrollY
}

// LineCount returns the number of visual lines, including block gaps.
func (v *View) LineCount() int {
	return len(v.lines)
}

// Height returns the laid-out height of the document.
func (v *View) Height() float64 {
	return float64(len(v.lines)) * v.opts.LineHeight
}

// LineAt returns the visual line drawn at viewport coordinate y, or -1.
func (v *View) LineAt(y float64) int {
	if v.opts.LineHeight <= 0 {
		return -1
	}
	n := int(math.Floor((y + v.scrollY - v.opts.Top) / v.opts.LineHeight))
	if n < 0 || n >= len(v.lines) {
		return -1
	}
	return n
}

// Lines returns the text of every visual line. Block gaps are empty strings.
func (v *View) Lines() []string {
	out := make([]string, len(v.lines))
	for i, l := range v.lines {
		var b strings.Builder
		for _, g := range l.glyphs {
			b.WriteRune(g.r)
		}
		out[i] = strings.TrimRight(b.String(), " \t")
	}
	return out
}

// String returns the laid-out text.
func (v *View) String() string {
	return strings.Join(v.Lines(), "\n")
}

func (v *View) lineTop(n int) float64 {
	return v.opts.Top + float64(n)*v.opts.LineHeight - v.scrollY
}
