// Package render lays a document out as wrapped monospace lines and reports where
// its text lands. A View is the geometry source the outline tracker measures against.
package render

import (
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/proofline/pkg/mdast"
	"github.com/yaklabco/proofline/pkg/posmap"
)

// Options controls the layout geometry.
type Options struct {
	// Width is the wrap width in terminal cells.
	Width int

	// LineHeight is the height of one visual line.
	LineHeight float64

	// CellWidth is the width of one terminal cell.
	CellWidth float64

	// BlockGap is the number of blank lines between text blocks.
	BlockGap int

	// Top is the viewport coordinate of the first line.
	Top float64
}

// DefaultOptions returns an 80-column layout with 20-unit lines and 8-unit cells.
func DefaultOptions() Options {
	return Options{
		Width:      80,
		LineHeight: 20,
		CellWidth:  8,
		BlockGap:   1,
	}
}

// glyph is one laid-out rune.
type glyph struct {
	r      rune
	node   int // index into View.nodes, or -1
	offset int // rune index within the node
	width  int
	space  bool
	brk    bool // forces a line break
}

// place records where a node's rune was drawn.
type place struct {
	line  int
	cell  int
	width int
}

type line struct {
	block  int
	glyphs []glyph
}

// Layout lays doc out with opts.
func Layout(doc *mdast.Node, opts Options) *View {
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}

	idx := posmap.Build(doc)
	view := &View{opts: opts}

	leafIndex := make(map[*mdast.Node]int, len(idx.Leaves()))
	for i, leaf := range idx.Leaves() {
		leafIndex[leaf.Node] = i
		view.leaves = append(view.leaves, leaf)
		view.places = append(view.places, make([]place, leaf.Len()))
	}

	for bi, block := range idx.Blocks() {
		if bi > 0 {
			for range opts.BlockGap {
				view.lines = append(view.lines, line{block: -1})
			}
		}

		glyphs := collectGlyphs(block.Node, leafIndex)
		for _, logical := range splitForced(glyphs) {
			segments := wrap(logical.glyphs, opts.Width)
			for i, seg := range segments {
				var brk *glyph
				if i == len(segments)-1 {
					brk = logical.brk
				}
				view.addLine(bi, seg, brk)
			}
		}
	}

	return view
}

func collectGlyphs(block *mdast.Node, leafIndex map[*mdast.Node]int) []glyph {
	var glyphs []glyph

	//nolint:errcheck // the callback only returns ErrSkipChildren
	mdast.Walk(block, func(n *mdast.Node) error {
		switch {
		case n.IsTextLeaf():
			node := leafIndex[n]
			offset := 0
			for _, r := range n.Text() {
				glyphs = append(glyphs, glyph{
					r:      r,
					node:   node,
					offset: offset,
					width:  max(runewidth.RuneWidth(r), 0),
					space:  unicode.IsSpace(r),
					brk:    r == '\n',
				})
				offset++
			}
		case n.Kind == mdast.NodeHardBreak:
			glyphs = append(glyphs, glyph{r: '\n', node: -1, brk: true})
		case n.IsAtom():
			return mdast.ErrSkipChildren
		}
		return nil
	})

	return glyphs
}

type logicalLine struct {
	glyphs []glyph
	brk    *glyph // the break glyph that ended this line, if any
}

// splitForced splits glyphs at forced breaks. A block always yields at least one line.
func splitForced(glyphs []glyph) []logicalLine {
	var out []logicalLine
	start := 0
	for i := range glyphs {
		if glyphs[i].brk {
			out = append(out, logicalLine{glyphs: glyphs[start:i], brk: &glyphs[i]})
			start = i + 1
		}
	}
	return append(out, logicalLine{glyphs: glyphs[start:]})
}

// wrap splits one logical line into visual segments no wider than width, breaking
// after whitespace when a word would overflow. Whitespace that overflows hangs at the
// end of its segment.
func wrap(glyphs []glyph, width int) [][]glyph {
	if len(glyphs) == 0 {
		return [][]glyph{nil}
	}

	var segments [][]glyph
	for start := 0; start < len(glyphs); {
		used := 0
		overflow := start
		for overflow < len(glyphs) {
			w := glyphs[overflow].width
			if used > 0 && used+w > width && !glyphs[overflow].space {
				break
			}
			used += w
			overflow++
		}

		end := overflow
		if overflow < len(glyphs) {
			for j := overflow - 1; j > start; j-- {
				if glyphs[j].space {
					end = j + 1
					break
				}
			}
		}
		if end <= start {
			end = start + 1
		}

		segments = append(segments, glyphs[start:end])
		start = end
	}
	return segments
}

func (v *View) addLine(block int, glyphs []glyph, brk *glyph) {
	lineNo := len(v.lines)
	cell := 0
	for _, g := range glyphs {
		if g.node >= 0 {
			v.places[g.node][g.offset] = place{line: lineNo, cell: cell, width: g.width}
		}
		cell += g.width
	}
	if brk != nil && brk.node >= 0 {
		v.places[brk.node][brk.offset] = place{line: lineNo, cell: cell}
	}
	v.lines = append(v.lines, line{block: block, glyphs: glyphs})
}
