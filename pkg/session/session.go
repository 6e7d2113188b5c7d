// Package session ties an essay, its parsed document and its pending proofreading
// issues together, keeping highlight decorations current as the essay changes.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/proofline/pkg/decoration"
	"github.com/yaklabco/proofline/pkg/mdast"
	"github.com/yaklabco/proofline/pkg/parser"
	"github.com/yaklabco/proofline/pkg/posmap"
	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/textrange"
)

// Session is the editor view of one essay. It is not safe for concurrent use.
type Session struct {
	parser parser.Parser
	path   string

	source   []byte
	snapshot *mdast.FileSnapshot
	index    *posmap.Index

	issues     []proof.Issue
	highlights []proof.Highlight
	manager    *decoration.Manager
	version    int
}

// Option configures a Session.
type Option func(*Session)

// WithPath sets the path reported in snapshots.
func WithPath(path string) Option {
	return func(s *Session) {
		s.path = path
	}
}

// WithClass sets the style class of highlight decorations.
func WithClass(class string) Option {
	return func(s *Session) {
		s.manager = decoration.NewManager(class)
	}
}

// New creates a Session holding empty text.
func New(p parser.Parser, opts ...Option) (*Session, error) {
	s := &Session{
		parser:  p,
		manager: decoration.NewManager(""),
	}
	for _, opt := range opts {
		opt(s)
	}

	snapshot, err := s.parse(nil)
	if err != nil {
		return nil, err
	}
	s.install(nil, snapshot)
	return s, nil
}

// SetText replaces the essay source. Identical text is ignored.
//
// Existing decorations are first carried across the edit, then rebuilt from the
// pending issues. Text that is empty after trimming clears the issues.
func (s *Session) SetText(text string) error {
	if text == string(s.source) {
		return nil
	}

	snapshot, err := s.parse([]byte(text))
	if err != nil {
		return err
	}

	old := s.index
	oldText := s.snapshot.Text
	s.install([]byte(text), snapshot)

	if step := posmap.EditStep(old, s.index, diffText(oldText, snapshot.Text)); !step.IsNoop() {
		s.manager.Apply(decoration.Transaction{Meta: structuralEdit(step)})
	}

	if strings.TrimSpace(text) == "" {
		s.issues = nil
	}

	s.recompute()
	s.version++
	return nil
}

// SetIssues replaces the pending issues and rebuilds the highlights.
func (s *Session) SetIssues(issues []proof.Issue) {
	s.issues = append([]proof.Issue(nil), issues...)
	s.recompute()
	s.version++
}

// Dismiss drops the issue with id. It reports false for an unknown id.
func (s *Session) Dismiss(id string) bool {
	i := proof.IndexOf(s.issues, id)
	if i < 0 {
		return false
	}

	s.issues = proof.Without(s.issues, i)
	s.recompute()
	s.version++
	return true
}

// Text returns the plain text of the essay.
func (s *Session) Text() string {
	return s.snapshot.Text
}

// Source returns the essay source as last set.
func (s *Session) Source() string {
	return string(s.source)
}

// Snapshot returns the parsed essay.
func (s *Session) Snapshot() *mdast.FileSnapshot {
	return s.snapshot
}

// Document returns the root of the parsed essay.
func (s *Session) Document() *mdast.Node {
	return s.snapshot.Root
}

// Index returns the position index of the parsed essay.
func (s *Session) Index() *posmap.Index {
	return s.index
}

// Issues returns the pending issues.
func (s *Session) Issues() []proof.Issue {
	return append([]proof.Issue(nil), s.issues...)
}

// Highlights returns the pending issues that currently occur in the text, with
// their plain-text ranges.
func (s *Session) Highlights() []proof.Highlight {
	return append([]proof.Highlight(nil), s.highlights...)
}

// Ranges returns the plain-text ranges of the current highlights.
func (s *Session) Ranges() []textrange.Range {
	ranges := make([]textrange.Range, len(s.highlights))
	for i, h := range s.highlights {
		ranges[i] = h.Range
	}
	return ranges
}

// Decorations returns the highlight decorations in document positions.
func (s *Session) Decorations() []decoration.Decoration {
	return s.manager.Decorations()
}

// DecorationState reports whether any decorations are shown.
func (s *Session) DecorationState() decoration.State {
	return s.manager.State()
}

// Version counts the changes applied to the session.
func (s *Session) Version() int {
	return s.version
}

func (s *Session) parse(content []byte) (*mdast.FileSnapshot, error) {
	snapshot, err := s.parser.Parse(context.Background(), s.path, content)
	if err != nil {
		return nil, fmt.Errorf("parse essay: %w", err)
	}
	return snapshot, nil
}

func (s *Session) install(source []byte, snapshot *mdast.FileSnapshot) {
	s.source = source
	s.snapshot = snapshot
	s.index = posmap.Build(snapshot.Root)
}

// recompute rebuilds the highlights from scratch and replaces the decoration set.
func (s *Session) recompute() {
	s.highlights = proof.BuildHighlights(s.snapshot.Text, s.issues)
	s.manager.Apply(decoration.Transaction{Meta: decoration.Recompute{
		Ranges: s.index.Map(s.Ranges()),
	}})
}
