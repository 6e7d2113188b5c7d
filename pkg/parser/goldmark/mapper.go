package goldmark

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/yaklabco/proofline/pkg/mdast"
)

// mapper converts a goldmark AST into an mdast.Node tree.
type mapper struct {
	content []byte
}

// newMapper creates a new mapper for the given content.
func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument converts a goldmark document node to an mdast.Node tree.
func (m *mapper) mapDocument(gmDoc ast.Node) *mdast.Node {
	doc := mdast.NewDocument()
	m.mapChildren(gmDoc, doc)
	return doc
}

// mapChildren maps all children of a goldmark node onto parent.
func (m *mapper) mapChildren(gmParent ast.Node, parent *mdast.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		m.mapNode(child, parent)
	}
}

// mapNode converts a single goldmark node and appends the result to parent.
func (m *mapper) mapNode(gmNode ast.Node, parent *mdast.Node) {
	switch gmn := gmNode.(type) {
	// Block-level nodes.
	case *ast.Heading:
		node := mdast.NewNode(mdast.NodeHeading)
		node.Block = mdast.NewBlockAttrs().WithHeadingLevel(gmn.Level)
		m.appendContainer(parent, node, gmn)

	case *ast.Paragraph, *ast.TextBlock:
		m.appendContainer(parent, mdast.NewNode(mdast.NodeParagraph), gmNode)

	case *ast.List:
		node := mdast.NewNode(mdast.NodeList)
		node.Block = mdast.NewBlockAttrs().WithList(&mdast.ListAttrs{
			Ordered:     gmn.IsOrdered(),
			StartNumber: gmn.Start,
			Tight:       gmn.IsTight,
		})
		m.appendContainer(parent, node, gmn)

	case *ast.ListItem:
		m.appendContainer(parent, mdast.NewNode(mdast.NodeListItem), gmn)

	case *ast.Blockquote:
		m.appendContainer(parent, mdast.NewNode(mdast.NodeBlockquote), gmn)

	case *ast.FencedCodeBlock:
		node := m.mapCodeBlock(gmn)
		if gmn.Info != nil {
			node.Block = mdast.NewBlockAttrs().WithCodeInfo(string(gmn.Info.Segment.Value(m.content)))
		}
		mdast.AppendChild(parent, node)

	case *ast.CodeBlock:
		mdast.AppendChild(parent, m.mapCodeBlock(gmn))

	case *ast.ThematicBreak:
		mdast.AppendChild(parent, mdast.NewNode(mdast.NodeThematicBreak))

	case *ast.HTMLBlock:
		mdast.AppendChild(parent, mdast.NewNode(mdast.NodeHTMLBlock))

	// Inline-level nodes.
	case *ast.Text:
		m.mapText(gmn, parent)

	case *ast.String:
		mdast.AppendChild(parent, mdast.NewText(string(gmn.Value), mdast.NoSource))

	case *ast.Emphasis:
		kind := mdast.NodeEmphasis
		if gmn.Level == 2 {
			kind = mdast.NodeStrong
		}
		node := mdast.NewNode(kind)
		node.Inline = mdast.NewInlineAttrs().WithEmphasisLevel(gmn.Level)
		m.appendContainer(parent, node, gmn)

	case *ast.CodeSpan:
		mdast.AppendChild(parent, m.mapCodeSpan(gmn))

	case *ast.Link:
		node := mdast.NewNode(mdast.NodeLink)
		node.Inline = mdast.NewInlineAttrs().WithDestination(string(gmn.Destination))
		m.appendContainer(parent, node, gmn)

	case *ast.AutoLink:
		node := mdast.NewNode(mdast.NodeLink)
		node.Inline = mdast.NewInlineAttrs().WithDestination(string(gmn.URL(m.content)))
		mdast.AppendChild(node, mdast.NewText(string(gmn.Label(m.content)), mdast.NoSource))
		mdast.AppendChild(parent, node)

	case *ast.Image:
		node := mdast.NewNode(mdast.NodeImage)
		node.Inline = mdast.NewInlineAttrs().WithDestination(string(gmn.Destination))
		mdast.AppendChild(parent, node)

	case *ast.RawHTML:
		mdast.AppendChild(parent, mdast.NewNode(mdast.NodeHTMLInline))

	// GFM extension nodes.
	case *east.Strikethrough:
		node := mdast.NewNode(mdast.NodeEmphasis)
		node.Ext = map[string]any{"strikethrough": true}
		m.appendContainer(parent, node, gmn)

	case *east.TaskCheckBox:
		node := mdast.NewNode(mdast.NodeHTMLInline)
		node.Ext = map[string]any{"taskCheckbox": true, "checked": gmn.IsChecked}
		mdast.AppendChild(parent, node)

	case *east.Table, *east.TableHeader, *east.TableRow:
		node := mdast.NewNode(mdast.NodeRaw)
		node.Ext = map[string]any{"table": gmNode.Kind().String()}
		m.appendContainer(parent, node, gmNode)

	case *east.TableCell:
		// Each cell is its own run of prose.
		node := mdast.NewNode(mdast.NodeParagraph)
		node.Ext = map[string]any{"tableCell": true}
		m.appendContainer(parent, node, gmn)

	default:
		// Fallback for unknown node types.
		m.appendContainer(parent, mdast.NewNode(mdast.NodeRaw), gmNode)
	}
}

func (m *mapper) appendContainer(parent, node *mdast.Node, gmNode ast.Node) {
	m.mapChildren(gmNode, node)
	mdast.AppendChild(parent, node)
}

// mapText appends a text segment to parent, merging it into the previous text leaf
// when the two are adjacent in the source. A soft line break reads as a space. After
// "\n" the space covers the newline byte; after "\r\n" it becomes a leaf of its own
// with no source. A hard line break becomes its own node.
func (m *mapper) mapText(textNode *ast.Text, parent *mdast.Node) {
	seg := textNode.Segment
	value := seg.Value(m.content)
	src := mdast.NoSource
	if seg.Padding == 0 && seg.Start >= 0 && seg.Stop <= len(m.content) {
		src = mdast.SourceRange{StartOffset: seg.Start, EndOffset: seg.Stop}
	}

	text := make([]byte, 0, len(value)+1)
	text = append(text, value...)
	detachedBreak := false
	if textNode.SoftLineBreak() {
		if src.IsValid() && src.EndOffset < len(m.content) && m.content[src.EndOffset] == '\n' {
			text = append(text, ' ')
			src.EndOffset++
		} else {
			detachedBreak = true
		}
	}

	m.appendText(parent, text, src)
	if detachedBreak {
		m.appendText(parent, []byte{' '}, mdast.NoSource)
	}

	if textNode.HardLineBreak() {
		mdast.AppendChild(parent, mdast.NewNode(mdast.NodeHardBreak))
	}
}

func (m *mapper) appendText(parent *mdast.Node, text []byte, src mdast.SourceRange) {
	if len(text) == 0 {
		return
	}
	if last := parent.LastChild; last != nil && last.Kind == mdast.NodeText &&
		last.Source.IsValid() && src.IsValid() && last.Source.EndOffset == src.StartOffset {
		last.Inline.Text = append(last.Inline.Text, text...)
		last.Source.EndOffset = src.EndOffset
		return
	}
	leaf := mdast.NewNode(mdast.NodeText)
	leaf.Inline = mdast.NewInlineAttrs().WithText(text)
	leaf.Source = src
	mdast.AppendChild(parent, leaf)
}

// mapCodeSpan collects a code span's text into a single leaf.
func (m *mapper) mapCodeSpan(codeSpan *ast.CodeSpan) *mdast.Node {
	var (
		text       []byte
		start, end = -1, -1
		synthetic  bool
	)
	for child := codeSpan.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			text = append(text, c.Segment.Value(m.content)...)
			if start < 0 {
				start = c.Segment.Start
			}
			end = c.Segment.Stop
		case *ast.String:
			text = append(text, c.Value...)
			synthetic = true
		}
	}

	node := mdast.NewNode(mdast.NodeCodeSpan)
	node.Inline = mdast.NewInlineAttrs().WithText(text)
	if !synthetic {
		node.Source = m.verbatim(start, end, text)
	}
	return node
}

// mapCodeBlock collects a code block's lines into a single leaf, without the
// final line terminator.
func (m *mapper) mapCodeBlock(gmNode ast.Node) *mdast.Node {
	node := mdast.NewNode(mdast.NodeCodeBlock)

	lines := gmNode.Lines()
	if lines.Len() == 0 {
		return node
	}

	var text []byte
	for i := range lines.Len() {
		line := lines.At(i)
		text = append(text, line.Value(m.content)...)
	}
	start, end := lines.At(0).Start, lines.At(lines.Len()-1).Stop
	if bytes.HasSuffix(text, []byte("\n")) {
		text = text[:len(text)-1]
		end--
	}
	if len(text) == 0 {
		return node
	}

	leaf := mdast.NewNode(mdast.NodeText)
	leaf.Inline = mdast.NewInlineAttrs().WithText(text)
	leaf.Source = m.verbatim(start, end, text)
	mdast.AppendChild(node, leaf)
	return node
}

// verbatim returns [start, end) if the source there reads exactly text.
func (m *mapper) verbatim(start, end int, text []byte) mdast.SourceRange {
	if start < 0 || end < start || end > len(m.content) {
		return mdast.NoSource
	}
	if !bytes.Equal(m.content[start:end], text) {
		return mdast.NoSource
	}
	return mdast.SourceRange{StartOffset: start, EndOffset: end}
}
