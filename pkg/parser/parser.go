// Package parser selects the parser that turns an essay into a document tree.
package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/proofline/pkg/langdetect"
	"github.com/yaklabco/proofline/pkg/mdast"
	"github.com/yaklabco/proofline/pkg/parser/goldmark"
	"github.com/yaklabco/proofline/pkg/parser/plain"
)

// Flavors accepted by ForContent.
const (
	FlavorAuto     = "auto"
	FlavorMarkdown = langdetect.FlavorMarkdown
	FlavorPlain    = langdetect.FlavorPlain
)

// Parser turns essay content into a snapshot of its document tree.
type Parser interface {
	Parse(ctx context.Context, path string, content []byte) (*mdast.FileSnapshot, error)
}

// ErrUnknownFlavor is returned for a flavor ForContent does not recognise.
var ErrUnknownFlavor = errors.New("unknown flavor")

// Option configures the parser ForContent builds.
type Option func(*options)

type options struct {
	dialect string
}

// WithDialect selects the goldmark dialect for Markdown essays. Unknown dialects
// fall back to GFM.
func WithDialect(dialect string) Option {
	return func(o *options) {
		o.dialect = dialect
	}
}

// ForContent returns the parser for flavor and the flavor it resolved to.
// FlavorAuto (or "") detects the flavor from path and content.
//
//nolint:ireturn // callers choose the parser at runtime
func ForContent(flavor, path string, content []byte, opts ...Option) (Parser, string, error) {
	o := options{dialect: goldmark.FlavorGFM}
	for _, opt := range opts {
		opt(&o)
	}

	switch flavor {
	case FlavorAuto, "":
		flavor = langdetect.DetectFlavor(path, content)
	case FlavorMarkdown, FlavorPlain:
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownFlavor, flavor)
	}

	if flavor == FlavorMarkdown {
		return goldmark.New(o.dialect), flavor, nil
	}
	return plain.New(), flavor, nil
}
