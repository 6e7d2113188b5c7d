package outline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/outline"
)

// fakeSurface lays each node on its own 10px line; a rune is 1px wide.
// Nodes listed in hidden report zero-height boxes.
type fakeSurface struct {
	texts   []string
	hidden  map[int]bool
	scrollY float64
}

func (s *fakeSurface) TextNodes() []outline.TextNode {
	nodes := make([]outline.TextNode, len(s.texts))
	for i, text := range s.texts {
		nodes[i] = outline.TextNode{Index: i, Text: text}
	}
	return nodes
}

func (s *fakeSurface) RangeRect(node outline.TextNode, start, end int) (outline.Rect, bool) {
	if node.Index < 0 || node.Index >= len(s.texts) {
		return outline.Rect{}, false
	}
	height := 10.0
	if s.hidden[node.Index] {
		height = 0
	}
	return outline.Rect{
		Left:   float64(start),
		Top:    float64(node.Index*10) - s.scrollY,
		Width:  float64(end - start),
		Height: height,
	}, true
}

func (s *fakeSurface) ScrollTo(y float64) {
	s.scrollY = y
}

func TestFindParagraphRect(t *testing.T) {
	t.Parallel()

	surface := &fakeSurface{
		texts:  []string{"Opening line.", "The thesis appears here.", "The THESIS again."},
		hidden: map[int]bool{},
	}

	rect, ok := outline.FindParagraphRect(surface, "the thesis")
	require.True(t, ok)
	assert.Equal(t, outline.Rect{Left: 0, Top: 10, Width: 10, Height: 10}, rect)

	surface.hidden[1] = true
	rect, ok = outline.FindParagraphRect(surface, "the thesis")
	require.True(t, ok)
	assert.InDelta(t, 20.0, rect.Top, 0.001)

	_, ok = outline.FindParagraphRect(surface, "line. The thesis")
	assert.False(t, ok, "passages spanning nodes are not found")

	_, ok = outline.FindParagraphRect(surface, "")
	assert.False(t, ok)

	_, ok = outline.FindParagraphRect(nil, "x")
	assert.False(t, ok)
}

func TestMapSegments(t *testing.T) {
	t.Parallel()

	surface := &fakeSurface{texts: []string{"Intro text", "Body one", "Body two"}}
	segments := []outline.Segment{
		{Paragraph: "body two", Structure: "Conclusion"},
		{Paragraph: "missing", Structure: "Ghost"},
		{Paragraph: "Intro", Structure: "Hook"},
	}

	got := outline.MapSegments(surface, outline.Rect{Top: 5}, segments)
	assert.Equal(t, []outline.Marker{
		{Structure: "Conclusion", Top: 20, Height: 10},
		{Structure: "Hook", Top: 0, Height: 10},
	}, got)

	assert.Empty(t, outline.MapSegments(surface, outline.Rect{}, nil))
}

func TestDecodeSegments(t *testing.T) {
	t.Parallel()

	data := "```json\n[" +
		`{"Paragraph":"First","Structure":"Hook"},` +
		`{"paragraph":"Second","structure":"Body"},` +
		`{"Paragraph":"","Structure":"Empty"},` +
		`{"Paragraph":"No structure"},` +
		`"junk"` +
		"]\n```"

	got, err := outline.DecodeSegments([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []outline.Segment{
		{Paragraph: "First", Structure: "Hook"},
		{Paragraph: "Second", Structure: "Body"},
	}, got)

	_, err = outline.DecodeSegments([]byte(`{"Paragraph":"x"}`))
	require.ErrorIs(t, err, outline.ErrInvalidPayload)
}
