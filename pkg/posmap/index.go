// Package posmap converts plain-text offsets into structural document positions.
//
// Plain text is the serialization produced by mdast.PlainText: the text blocks of a
// document joined with '\n'. Structural positions follow the mdast addressing scheme,
// where block containers consume an opening and a closing unit and every rune of text
// consumes one unit.
package posmap

import (
	"github.com/yaklabco/proofline/pkg/mdast"
)

// Leaf is a text leaf together with its place in both coordinate spaces.
type Leaf struct {
	// Node is the text leaf.
	Node *mdast.Node

	// Block is the index of the enclosing text block in Index.Blocks.
	Block int

	// TextStart and TextEnd bound the leaf in plain-text offsets.
	TextStart int
	TextEnd   int

	// Pos is the structural position of the leaf's first rune.
	Pos int
}

// Len returns the number of runes in the leaf.
func (l Leaf) Len() int {
	return l.TextEnd - l.TextStart
}

// Block is a text block together with its place in both coordinate spaces.
type Block struct {
	// Node is the text block.
	Node *mdast.Node

	// TextStart and TextEnd bound the block's content in plain-text offsets.
	TextStart int
	TextEnd   int

	// ContentStart and ContentEnd bound the block's content in structural positions,
	// just inside its opening and closing units.
	ContentStart int
	ContentEnd   int
}

// Index records where every text leaf and text block of a document lives.
type Index struct {
	leaves  []Leaf
	blocks  []Block
	size    int
	textLen int
}

// Build walks doc once and records its leaves and text blocks in document order.
func Build(doc *mdast.Node) *Index {
	idx := &Index{}
	if doc == nil {
		return idx
	}

	var (
		pos        int
		text       int
		blockDepth int
	)

	enter := func(n *mdast.Node) error {
		switch {
		case n.Kind == mdast.NodeDocument:
		case n.IsTextLeaf():
			size := n.PlainLen()
			if blockDepth > 0 {
				idx.leaves = append(idx.leaves, Leaf{
					Node:      n,
					Block:     len(idx.blocks) - 1,
					TextStart: text,
					TextEnd:   text + size,
					Pos:       pos,
				})
				text += size
			}
			pos += size
		case n.IsAtom():
			if n.Kind == mdast.NodeHardBreak && blockDepth > 0 {
				text++
			}
			pos++
			return mdast.ErrSkipChildren
		case n.IsMark():
		case n.IsTextBlock():
			if len(idx.blocks) > 0 {
				text++
			}
			pos++
			blockDepth++
			idx.blocks = append(idx.blocks, Block{
				Node:         n,
				TextStart:    text,
				ContentStart: pos,
			})
		default:
			pos++
		}
		return nil
	}

	leave := func(n *mdast.Node) error {
		switch {
		case n.Kind == mdast.NodeDocument, n.IsTextLeaf(), n.IsAtom(), n.IsMark():
		case n.IsTextBlock():
			blockDepth--
			block := &idx.blocks[len(idx.blocks)-1]
			block.TextEnd = text
			block.ContentEnd = pos
			pos++
		default:
			pos++
		}
		return nil
	}

	//nolint:errcheck // the callbacks only return ErrSkipChildren
	mdast.WalkWithContext(doc, enter, leave)

	idx.size = pos
	idx.textLen = text
	return idx
}

// Leaves returns the text leaves inside text blocks, in document order.
func (idx *Index) Leaves() []Leaf {
	return idx.leaves
}

// Blocks returns the text blocks, in document order.
func (idx *Index) Blocks() []Block {
	return idx.blocks
}

// Size returns the structural size of the document.
func (idx *Index) Size() int {
	return idx.size
}

// TextLen returns the rune length of the document's plain text.
func (idx *Index) TextLen() int {
	return idx.textLen
}

// Leaves is a convenience wrapper around Build(doc).Leaves().
func Leaves(doc *mdast.Node) []Leaf {
	return Build(doc).Leaves()
}
