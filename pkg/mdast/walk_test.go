package mdast_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/proofline/pkg/mdast"
)

func kinds(nodes []*mdast.Node) []mdast.NodeKind {
	out := make([]mdast.NodeKind, len(nodes))
	for i, n := range nodes {
		out[i] = n.Kind
	}
	return out
}

func TestWalk(t *testing.T) {
	t.Parallel()

	var visited []*mdast.Node
	err := mdast.Walk(essay(), func(n *mdast.Node) error {
		visited = append(visited, n)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeHeading, mdast.NodeText,
		mdast.NodeParagraph, mdast.NodeText, mdast.NodeEmphasis, mdast.NodeText, mdast.NodeText,
		mdast.NodeList, mdast.NodeListItem, mdast.NodeParagraph,
		mdast.NodeText, mdast.NodeHardBreak, mdast.NodeText,
	}, kinds(visited))
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	called := false
	err := mdast.Walk(nil, func(_ *mdast.Node) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestWalk_StopsOnError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	count := 0
	err := mdast.Walk(essay(), func(n *mdast.Node) error {
		count++
		if n.Kind == mdast.NodeParagraph {
			return errBoom
		}
		return nil
	})
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 4, count)
}

func TestWalkWithContext_SkipChildren(t *testing.T) {
	t.Parallel()

	var entered, left []mdast.NodeKind
	err := mdast.WalkWithContext(essay(),
		func(n *mdast.Node) error {
			entered = append(entered, n.Kind)
			if n.Kind == mdast.NodeList || n.Kind == mdast.NodeParagraph {
				return mdast.ErrSkipChildren
			}
			return nil
		},
		func(n *mdast.Node) error {
			left = append(left, n.Kind)
			return nil
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []mdast.NodeKind{
		mdast.NodeDocument, mdast.NodeHeading, mdast.NodeText, mdast.NodeParagraph, mdast.NodeList,
	}, entered)
	assert.Equal(t, []mdast.NodeKind{
		mdast.NodeText, mdast.NodeHeading, mdast.NodeParagraph, mdast.NodeList, mdast.NodeDocument,
	}, left)
}

func TestWalkWithContext_AcceptsWalkFunc(t *testing.T) {
	t.Parallel()

	var headings int
	var enter mdast.WalkFunc = func(n *mdast.Node) error {
		if n.Kind == mdast.NodeHeading {
			headings++
		}
		return nil
	}
	require.NoError(t, mdast.WalkWithContext(essay(), enter, nil))
	assert.Equal(t, 1, headings)
}

func TestFindHelpers(t *testing.T) {
	t.Parallel()

	doc := essay()

	assert.Len(t, mdast.FindByKind(doc, mdast.NodeText), 6)
	assert.Equal(t, []mdast.NodeKind{
		mdast.NodeHeading, mdast.NodeParagraph, mdast.NodeParagraph,
	}, kinds(mdast.TextBlocks(doc)))

	first := mdast.FindFirst(doc, func(n *mdast.Node) bool { return n.Kind == mdast.NodeEmphasis })
	require.NotNil(t, first)
	assert.Equal(t, "very", first.TextContent())

	assert.Nil(t, mdast.FindFirst(doc, func(n *mdast.Node) bool { return n.Kind == mdast.NodeImage }))
}

func TestAppendAndRemoveChild(t *testing.T) {
	t.Parallel()

	para := mdast.NewNode(mdast.NodeParagraph)
	a, b, c := text("a"), text("b"), text("c")
	mdast.AppendChild(para, a)
	mdast.AppendChild(para, b)
	mdast.AppendChild(para, c)
	assert.Equal(t, 3, para.ChildCount())
	assert.Equal(t, "abc", para.TextContent())

	mdast.RemoveChild(para, b)
	assert.Equal(t, "ac", para.TextContent())
	assert.Same(t, c, a.Next)
	assert.Same(t, a, c.Prev)
	assert.Nil(t, b.Parent)

	other := mdast.NewNode(mdast.NodeParagraph)
	mdast.AppendChild(other, a)
	assert.Equal(t, "c", para.TextContent())
	assert.Same(t, c, para.FirstChild)
	assert.Same(t, other, a.Parent)
}
