package mdast

// NewNode creates a new node of the specified kind.
// The node has no parent, children, or source span.
func NewNode(kind NodeKind) *Node {
	return &Node{
		Kind:   kind,
		Source: NoSource,
	}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return NewNode(NodeDocument)
}

// NewText creates a text leaf carrying text that was read from src.
// Pass NoSource for synthetic text.
func NewText(text string, src SourceRange) *Node {
	node := NewNode(NodeText)
	node.Inline = NewInlineAttrs().WithText([]byte(text))
	node.Source = src
	return node
}

// AppendChild appends a child node to a parent.
// It maintains the parent/child/sibling relationships correctly.
func AppendChild(parent, child *Node) {
	if parent == nil || child == nil {
		return
	}

	// Remove from previous parent if any.
	if child.Parent != nil {
		RemoveChild(child.Parent, child)
	}

	child.Parent = parent
	child.Prev = parent.LastChild
	child.Next = nil

	if parent.LastChild != nil {
		parent.LastChild.Next = child
	} else {
		parent.FirstChild = child
	}

	parent.LastChild = child
}

// RemoveChild removes a child from its parent.
func RemoveChild(parent, child *Node) {
	if parent == nil || child == nil || child.Parent != parent {
		return
	}

	if child.Prev != nil {
		child.Prev.Next = child.Next
	} else {
		parent.FirstChild = child.Next
	}

	if child.Next != nil {
		child.Next.Prev = child.Prev
	} else {
		parent.LastChild = child.Prev
	}

	child.Parent = nil
	child.Prev = nil
	child.Next = nil
}

// Build is a convenience constructor for tests and synthetic documents:
// it creates a node of kind with the given children appended in order.
func Build(kind NodeKind, children ...*Node) *Node {
	node := NewNode(kind)
	for _, child := range children {
		AppendChild(node, child)
	}
	return node
}
