// Package plain parses plain prose: every line is a paragraph.
package plain

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yaklabco/proofline/pkg/mdast"
)

// Parser splits content on '\n' into paragraphs, one text leaf per non-empty line.
// The plain text of the result equals the content with '\r' line endings removed.
type Parser struct{}

// New creates a plain-text parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts content into a FileSnapshot. Returns an error only if ctx is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	source := bytes.Clone(content)
	doc := mdast.NewDocument()

	start := 0
	for {
		end := bytes.IndexByte(source[start:], '\n')
		last := end < 0
		if last {
			end = len(source)
		} else {
			end += start
		}

		lineEnd := end
		if lineEnd > start && source[lineEnd-1] == '\r' {
			lineEnd--
		}

		para := mdast.NewNode(mdast.NodeParagraph)
		para.Source = mdast.SourceRange{StartOffset: start, EndOffset: end}
		if lineEnd > start {
			leaf := mdast.NewNode(mdast.NodeText)
			leaf.Inline = mdast.NewInlineAttrs().WithText(bytes.Clone(source[start:lineEnd]))
			leaf.Source = mdast.SourceRange{StartOffset: start, EndOffset: lineEnd}
			mdast.AppendChild(para, leaf)
		}
		mdast.AppendChild(doc, para)

		if last {
			break
		}
		start = end + 1
	}

	return mdast.NewFileSnapshot(path, source, doc), nil
}
