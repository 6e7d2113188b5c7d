// Package outline places outline labels next to the rendered paragraphs they describe.
package outline

import (
	"github.com/yaklabco/proofline/pkg/textrange"
)

// Segment ties a structural label to a passage of the essay.
type Segment struct {
	Paragraph string `json:"paragraph"`
	Structure string `json:"structure"`
}

// Marker is a label positioned relative to the overlay that displays it.
type Marker struct {
	Structure string  `json:"structure"`
	Top       float64 `json:"top"`
	Height    float64 `json:"height"`
}

// Rect is an axis-aligned box in viewport coordinates.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TextNode is one run of rendered text.
type TextNode struct {
	// Index is the node's position in Surface.TextNodes.
	Index int

	// Text is the rendered text of the node.
	Text string
}

// Surface is a rendered document that can report where its text is drawn.
type Surface interface {
	// TextNodes returns the rendered text runs in document order.
	TextNodes() []TextNode

	// RangeRect returns the bounding box of the runes [start, end) of node.
	RangeRect(node TextNode, start, end int) (Rect, bool)
}

// FindParagraphRect returns the box of the first visible case-insensitive occurrence
// of paragraph that lies entirely within one text node. Occurrences whose box has no
// height are skipped. Passages spanning several nodes are not found.
func FindParagraphRect(surface Surface, paragraph string) (Rect, bool) {
	if surface == nil || paragraph == "" {
		return Rect{}, false
	}

	for _, node := range surface.TextNodes() {
		match, ok := textrange.Find(node.Text, paragraph)
		if !ok {
			continue
		}

		rect, ok := surface.RangeRect(node, match.Start, match.End)
		if ok && rect.Height > 0 {
			return rect, true
		}
	}

	return Rect{}, false
}

// MapSegments positions one marker per segment whose passage is found, centred
// vertically on the passage's box and relative to overlay. Order is preserved.
func MapSegments(surface Surface, overlay Rect, segments []Segment) []Marker {
	markers := make([]Marker, 0, len(segments))
	for _, seg := range segments {
		rect, ok := FindParagraphRect(surface, seg.Paragraph)
		if !ok {
			continue
		}

		markers = append(markers, Marker{
			Structure: seg.Structure,
			Top:       rect.Top - overlay.Top + rect.Height/2,
			Height:    rect.Height,
		})
	}
	return markers
}
