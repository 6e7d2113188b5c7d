// Package reporter prints check, apply and outline results.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/proofline/pkg/config"
	"github.com/yaklabco/proofline/pkg/runner"
)

// Reporter formats and writes runner results.
type Reporter interface {
	// Check writes the highlights found in a set of essays.
	Check(ctx context.Context, result *runner.Result) error

	// Apply writes the outcome of accepting one suggestion.
	Apply(ctx context.Context, result *runner.ApplyResult) error

	// Outline writes an essay with its outline markers.
	Outline(ctx context.Context, result *runner.OutlineResult) error
}

var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = config.FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case config.FormatJSON:
		return NewJSONReporter(opts), nil
	default:
		return NewTextReporter(opts), nil
	}
}

// flush flushes w into *err unless an earlier error is set.
func flush(w interface{ Flush() error }, err *error) {
	if flushErr := w.Flush(); *err == nil {
		*err = flushErr
	}
}
