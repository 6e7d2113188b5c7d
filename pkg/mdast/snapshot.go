// Package mdast provides the document tree shared by the parsers, the position
// mapper, and the renderer.
//
// Besides the tree itself it defines the structural addressing scheme: every block
// container consumes one address unit for its opening token and one for its closing
// token, every rune of text consumes one unit, and inline atoms consume one unit.
package mdast

// FileSnapshot is an immutable view of a parsed document at a specific time.
type FileSnapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full source bytes.
	Content []byte

	// Root is the tree root (Document).
	Root *Node

	// Text is the plain-text serialization of Root (see PlainText).
	Text string
}

// NewFileSnapshot wraps a parsed tree and caches its plain-text serialization.
func NewFileSnapshot(path string, content []byte, root *Node) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Root:    root,
		Text:    PlainText(root),
	}
}
