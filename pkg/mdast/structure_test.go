package mdast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/proofline/pkg/mdast"
)

func text(s string) *mdast.Node {
	return mdast.NewText(s, mdast.NoSource)
}

// essay builds:
//
//	Document
//	  Heading "Intro"
//	  Paragraph "I am " Emphasis("very") " happy"
//	  List
//	    ListItem
//	      Paragraph "one" HardBreak "two"
func essay() *mdast.Node {
	return mdast.Build(mdast.NodeDocument,
		mdast.Build(mdast.NodeHeading, text("Intro")),
		mdast.Build(mdast.NodeParagraph,
			text("I am "),
			mdast.Build(mdast.NodeEmphasis, text("very")),
			text(" happy"),
		),
		mdast.Build(mdast.NodeList,
			mdast.Build(mdast.NodeListItem,
				mdast.Build(mdast.NodeParagraph,
					text("one"),
					mdast.NewNode(mdast.NodeHardBreak),
					text("two"),
				),
			),
		),
	)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *mdast.Node
		want string
	}{
		{name: "nil", doc: nil, want: ""},
		{name: "empty document", doc: mdast.NewDocument(), want: ""},
		{
			name: "single paragraph",
			doc:  mdast.Build(mdast.NodeDocument, mdast.Build(mdast.NodeParagraph, text("hello"))),
			want: "hello",
		},
		{
			name: "empty paragraphs keep their separators",
			doc: mdast.Build(mdast.NodeDocument,
				mdast.Build(mdast.NodeParagraph, text("a")),
				mdast.NewNode(mdast.NodeParagraph),
				mdast.Build(mdast.NodeParagraph, text("b")),
			),
			want: "a\n\nb",
		},
		{
			name: "marks, nesting and hard breaks",
			doc:  essay(),
			want: "Intro\nI am very happy\none\ntwo",
		},
		{
			name: "thematic break contributes nothing",
			doc: mdast.Build(mdast.NodeDocument,
				mdast.Build(mdast.NodeParagraph, text("a")),
				mdast.NewNode(mdast.NodeThematicBreak),
				mdast.Build(mdast.NodeParagraph, text("b")),
			),
			want: "a\nb",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, mdast.PlainText(tc.doc))
		})
	}
}

func TestSize(t *testing.T) {
	t.Parallel()

	doc := essay()
	blocks := doc.Children()

	// Heading: 2 + 5.
	assert.Equal(t, 7, blocks[0].Size())
	// Paragraph: 2 + 5 + 4 + 6; the emphasis mark is transparent.
	assert.Equal(t, 17, blocks[1].Size())
	// List(ListItem(Paragraph("one" br "two"))): 2 + 2 + 2 + 7.
	assert.Equal(t, 13, blocks[2].Size())
	assert.Equal(t, 37, doc.Size())
	assert.Equal(t, doc.ContentSize(), doc.Size())
}

func TestSizeCountsRunes(t *testing.T) {
	t.Parallel()

	para := mdast.Build(mdast.NodeParagraph, text("très"))
	assert.Equal(t, 6, para.Size())
	assert.Equal(t, 4, para.FirstChild.PlainLen())
}

func TestNodeClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind      mdast.NodeKind
		textBlock bool
		textLeaf  bool
		mark      bool
		atom      bool
	}{
		{kind: mdast.NodeParagraph, textBlock: true},
		{kind: mdast.NodeHeading, textBlock: true},
		{kind: mdast.NodeCodeBlock, textBlock: true},
		{kind: mdast.NodeBlockquote},
		{kind: mdast.NodeText, textLeaf: true},
		{kind: mdast.NodeCodeSpan, textLeaf: true},
		{kind: mdast.NodeEmphasis, mark: true},
		{kind: mdast.NodeStrong, mark: true},
		{kind: mdast.NodeLink, mark: true},
		{kind: mdast.NodeImage, atom: true},
		{kind: mdast.NodeHardBreak, atom: true},
		{kind: mdast.NodeThematicBreak, atom: true},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			t.Parallel()

			node := mdast.NewNode(tc.kind)
			assert.Equal(t, tc.textBlock, node.IsTextBlock())
			assert.Equal(t, tc.textLeaf, node.IsTextLeaf())
			assert.Equal(t, tc.mark, node.IsMark())
			assert.Equal(t, tc.atom, node.IsAtom())
		})
	}
}

func TestNewFileSnapshot(t *testing.T) {
	t.Parallel()

	snap := mdast.NewFileSnapshot("essay.md", []byte("# Intro"), essay())
	assert.Equal(t, "essay.md", snap.Path)
	assert.Equal(t, "Intro\nI am very happy\none\ntwo", snap.Text)
}
