// Package runner drives proofline over essays on disk: it discovers essays, checks
// them against their issue lists, applies accepted suggestions and places outlines.
package runner

import (
	"strings"

	"github.com/yaklabco/proofline/pkg/config"
)

// IssuesSuffix names the issue list that sits next to an essay.
const IssuesSuffix = ".issues.json"

// SegmentsSuffix names the outline that sits next to an essay.
const SegmentsSuffix = ".outline.json"

// IssuesPathFor returns the issue list path of essay.
func IssuesPathFor(essay string) string {
	return essay + IssuesSuffix
}

// SegmentsPathFor returns the outline path of essay.
func SegmentsPathFor(essay string) string {
	return essay + SegmentsSuffix
}

// Options controls a multi-essay check.
type Options struct {
	// Paths are essays or directories. Empty means the working directory.
	Paths []string

	// WorkingDir resolves relative Paths and ignore patterns. Empty means the
	// process working directory.
	WorkingDir string

	// Extensions are the essay extensions considered in directory walks, lowercase
	// with a leading dot. Empty means DefaultExtensions.
	Extensions []string

	// IssuesPath overrides the issue list of a single named essay.
	IssuesPath string

	// Jobs bounds the number of concurrent workers. Zero means NumCPU.
	Jobs int

	// Config is the resolved configuration. Its Ignore patterns apply to directory walks.
	Config *config.Config
}

// DefaultExtensions returns the essay extensions considered in directory walks.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".txt"}
}

func (o Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) paths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) ignore() []string {
	if o.Config == nil {
		return nil
	}
	return o.Config.Ignore
}

// isSidecar reports whether path is one of proofline's own files.
func isSidecar(path string) bool {
	return strings.HasSuffix(path, IssuesSuffix) ||
		strings.HasSuffix(path, SegmentsSuffix) ||
		strings.HasSuffix(path, ".bak")
}
