package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/mdast"
	"github.com/yaklabco/proofline/pkg/outline"
	"github.com/yaklabco/proofline/pkg/render"
)

func text(s string) *mdast.Node {
	return mdast.NewText(s, mdast.NoSource)
}

func para(children ...*mdast.Node) *mdast.Node {
	return mdast.Build(mdast.NodeParagraph, children...)
}

func opts(width int) render.Options {
	return render.Options{Width: width, LineHeight: 10, CellWidth: 1, BlockGap: 1}
}

func TestLayoutWrapsAtWords(t *testing.T) {
	t.Parallel()

	doc := mdast.Build(mdast.NodeDocument,
		para(text("the quick brown fox jumps")),
		para(text("over")),
	)

	view := render.Layout(doc, opts(10))
	assert.Equal(t, []string{"the quick", "brown fox", "jumps", "", "over"}, view.Lines())
	assert.Equal(t, 5, view.LineCount())
	assert.InDelta(t, 50.0, view.Height(), 0.001)
}

func TestLayoutBreaksLongWords(t *testing.T) {
	t.Parallel()

	doc := mdast.Build(mdast.NodeDocument, para(text("abcdefghij")))
	view := render.Layout(doc, opts(4))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, view.Lines())
}

func TestLayoutHardBreaksAndWideRunes(t *testing.T) {
	t.Parallel()

	doc := mdast.Build(mdast.NodeDocument,
		para(text("one"), mdast.NewNode(mdast.NodeHardBreak), text("日本語です")),
	)
	view := render.Layout(doc, opts(6))
	assert.Equal(t, []string{"one", "日本語", "です"}, view.Lines())

	nodes := view.TextNodes()
	require.Len(t, nodes, 2)
	rect, ok := view.RangeRect(nodes[1], 2, 4)
	require.True(t, ok)
	assert.Equal(t, outline.Rect{Left: 0, Top: 10, Width: 6, Height: 20}, rect)
}

func TestRangeRect(t *testing.T) {
	t.Parallel()

	doc := mdast.Build(mdast.NodeDocument,
		mdast.Build(mdast.NodeHeading, text("Title")),
		para(text("I am "), mdast.Build(mdast.NodeEmphasis, text("very")), text(" happy")),
	)
	view := render.Layout(doc, render.Options{Width: 40, LineHeight: 20, CellWidth: 8, BlockGap: 1, Top: 100})

	nodes := view.TextNodes()
	require.Len(t, nodes, 4)
	assert.Equal(t, "very", nodes[2].Text)

	rect, ok := view.RangeRect(nodes[2], 0, 4)
	require.True(t, ok)
	assert.Equal(t, outline.Rect{Left: 40, Top: 140, Width: 32, Height: 20}, rect)

	view.ScrollTo(30)
	rect, ok = view.RangeRect(nodes[2], 0, 4)
	require.True(t, ok)
	assert.InDelta(t, 110.0, rect.Top, 0.001)
	assert.Equal(t, 2, view.LineAt(115))
	assert.Equal(t, -1, view.LineAt(0))

	_, ok = view.RangeRect(nodes[2], 3, 9)
	assert.False(t, ok)
	_, ok = view.RangeRect(outline.TextNode{Index: 9}, 0, 1)
	assert.False(t, ok)
}

func TestViewIsOutlineSurface(t *testing.T) {
	t.Parallel()

	doc := mdast.Build(mdast.NodeDocument,
		para(text("Thesis statement here.")),
		para(text("Supporting evidence follows.")),
	)
	view := render.Layout(doc, opts(80))

	markers := outline.MapSegments(view, outline.Rect{}, []outline.Segment{
		{Paragraph: "supporting evidence", Structure: "Body"},
		{Paragraph: "thesis", Structure: "Claim"},
		{Paragraph: "here. Supporting", Structure: "Across blocks"},
	})
	assert.Equal(t, []outline.Marker{
		{Structure: "Body", Top: 25, Height: 10},
		{Structure: "Claim", Top: 5, Height: 10},
	}, markers)
}

func TestCodeBlockNewlinesHaveNoHeight(t *testing.T) {
	t.Parallel()

	code := mdast.Build(mdast.NodeCodeBlock, text("a\nb"))
	view := render.Layout(mdast.Build(mdast.NodeDocument, code), opts(10))
	assert.Equal(t, []string{"a", "b"}, view.Lines())

	node := view.TextNodes()[0]
	rect, ok := view.RangeRect(node, 1, 2)
	require.True(t, ok)
	assert.Zero(t, rect.Height)

	_, ok = outline.FindParagraphRect(view, "\n")
	assert.False(t, ok)
}
