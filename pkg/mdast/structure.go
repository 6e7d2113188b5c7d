package mdast

import (
	"strings"
	"unicode/utf8"
)

// IsTextBlock reports whether n is a block whose children are inline content.
// Text blocks are the units the plain-text serialization joins with '\n'.
func (n *Node) IsTextBlock() bool {
	switch n.Kind {
	case NodeParagraph, NodeHeading, NodeCodeBlock:
		return true
	default:
		return false
	}
}

// IsTextLeaf reports whether n carries text runes.
func (n *Node) IsTextLeaf() bool {
	return n.Kind == NodeText || n.Kind == NodeCodeSpan
}

// IsMark reports whether n only styles its children. Marks consume no address units.
func (n *Node) IsMark() bool {
	switch n.Kind {
	case NodeEmphasis, NodeStrong, NodeLink:
		return true
	default:
		return false
	}
}

// IsAtom reports whether n is an opaque leaf consuming exactly one address unit.
func (n *Node) IsAtom() bool {
	switch n.Kind {
	case NodeImage, NodeHardBreak, NodeHTMLInline, NodeThematicBreak, NodeHTMLBlock:
		return true
	default:
		return false
	}
}

// PlainLen returns how many runes n contributes to the plain-text serialization
// when n is a leaf. Hard breaks serialize as '\n'.
func (n *Node) PlainLen() int {
	switch {
	case n.IsTextLeaf() && n.Inline != nil:
		return utf8.RuneCount(n.Inline.Text)
	case n.Kind == NodeHardBreak:
		return 1
	default:
		return 0
	}
}

// Size returns the number of structural address units n occupies.
//
// Text leaves occupy one unit per rune, atoms occupy one unit, marks occupy the
// size of their children, and every other container adds an opening and a closing
// unit around its children. The document itself has no boundary tokens, so its size
// equals ContentSize.
func (n *Node) Size() int {
	switch {
	case n.Kind == NodeDocument:
		return n.ContentSize()
	case n.IsTextLeaf():
		return n.PlainLen()
	case n.IsAtom():
		return 1
	case n.IsMark():
		return n.ContentSize()
	default:
		return n.ContentSize() + 2
	}
}

// ContentSize returns the summed size of n's children.
func (n *Node) ContentSize() int {
	size := 0
	for child := n.FirstChild; child != nil; child = child.Next {
		size += child.Size()
	}
	return size
}

// TextContent returns the plain text of n's inline content.
func (n *Node) TextContent() string {
	var b strings.Builder
	writeTextContent(&b, n)
	return b.String()
}

func writeTextContent(b *strings.Builder, n *Node) {
	switch {
	case n.IsTextLeaf():
		b.WriteString(n.Text())
		return
	case n.Kind == NodeHardBreak:
		b.WriteByte('\n')
		return
	case n.IsAtom():
		return
	}

	for child := n.FirstChild; child != nil; child = child.Next {
		writeTextContent(b, child)
	}
}

// PlainText serializes root as the flat string that text matching operates on:
// the text content of every text block, joined with '\n'.
func PlainText(root *Node) string {
	if root == nil {
		return ""
	}

	blocks := TextBlocks(root)
	parts := make([]string, len(blocks))
	for i, block := range blocks {
		parts[i] = block.TextContent()
	}
	return strings.Join(parts, "\n")
}
