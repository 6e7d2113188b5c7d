package session

import (
	"github.com/yaklabco/proofline/pkg/decoration"
	"github.com/yaklabco/proofline/pkg/posmap"
	"github.com/yaklabco/proofline/pkg/proof"
	"github.com/yaklabco/proofline/pkg/textrange"
	"github.com/yaklabco/proofline/pkg/transform"
)

// Status describes what Accept did.
type Status int

const (
	// StatusApplied means the suggestion replaced the original text.
	StatusApplied Status = iota

	// StatusTextChanged means the original text no longer occurs. The issue stays pending.
	StatusTextChanged

	// StatusNotInSource means the original text occurs but spans formatting, so it
	// cannot be rewritten in the source. The issue stays pending.
	StatusNotInSource
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusTextChanged:
		return "Text already updated"
	case StatusNotInSource:
		return "Text spans formatting and cannot be replaced"
	default:
		return "unknown"
	}
}

// Outcome reports the result of accepting an issue.
type Outcome struct {
	Issue   proof.Issue
	Applied bool
	Status  Status

	// Match is where the original text was found, in the plain text before the edit.
	Match textrange.Range

	// Range is where the suggestion sits in the plain text after the edit.
	Range textrange.Range

	// Step is the document edit that was applied.
	Step transform.Step
}

// Accept replaces the first occurrence of the issue's original text with its
// suggestion and drops the issue. It reports false for an unknown id.
//
// When the original text cannot be found, or cannot be mapped onto the source, the
// text is left unchanged and the issue stays pending; Outcome.Applied is false.
func (s *Session) Accept(id string) (Outcome, bool) {
	i := proof.IndexOf(s.issues, id)
	if i < 0 {
		return Outcome{}, false
	}
	issue := s.issues[i]

	replaced := textrange.ReplaceFirst(s.snapshot.Text, issue.Original, issue.Suggestion)
	if !replaced.Found {
		return Outcome{Issue: issue, Status: StatusTextChanged}, true
	}
	match := textrange.Range{
		Start: replaced.Range.Start,
		End:   replaced.Range.Start + textrange.RuneLen(issue.Original),
	}

	leaf, edit, ok := s.sourceEdit(match, issue.Suggestion)
	if !ok {
		return Outcome{Issue: issue, Status: StatusNotInSource, Match: match}, true
	}

	content, err := transform.ApplyEdits(s.source, []transform.TextEdit{edit})
	if err != nil {
		return Outcome{Issue: issue, Status: StatusNotInSource, Match: match}, true
	}
	snapshot, err := s.parse(content)
	if err != nil {
		return Outcome{Issue: issue, Status: StatusNotInSource, Match: match}, true
	}

	old := s.index
	s.install(content, snapshot)

	from := leaf.Pos + (match.Start - leaf.TextStart)
	to := leaf.Pos + (match.End - leaf.TextStart)
	step := transform.Step{From: from, To: to, Size: s.index.Size() - old.Size() + (to - from)}
	s.manager.Apply(decoration.Transaction{Meta: structuralEdit(step)})

	s.issues = proof.Without(s.issues, i)
	s.recompute()
	s.version++

	return Outcome{
		Issue:   issue,
		Applied: true,
		Status:  StatusApplied,
		Match:   match,
		Range:   replaced.Range,
		Step:    step,
	}, true
}

// sourceEdit finds the text leaf holding all of match and converts match into a
// byte edit of the source.
func (s *Session) sourceEdit(match textrange.Range, replacement string) (posmap.Leaf, transform.TextEdit, bool) {
	for _, leaf := range s.index.Leaves() {
		if match.Start < leaf.TextStart || match.End > leaf.TextEnd {
			continue
		}
		if !leaf.Node.Source.IsValid() {
			return posmap.Leaf{}, transform.TextEdit{}, false
		}

		text := leaf.Node.Text()
		startByte := textrange.ByteOffset(text, match.Start-leaf.TextStart)
		endByte := textrange.ByteOffset(text, match.End-leaf.TextStart)
		return leaf, transform.TextEdit{
			StartOffset: leaf.Node.Source.StartOffset + startByte,
			EndOffset:   leaf.Node.Source.StartOffset + endByte,
			NewText:     replacement,
		}, true
	}
	return posmap.Leaf{}, transform.TextEdit{}, false
}

func structuralEdit(step transform.Step) decoration.StructuralEdit {
	return decoration.StructuralEdit{Mapping: transform.NewMapping(step)}
}

func diffText(oldText, newText string) transform.Change {
	return transform.Diff(oldText, newText)
}
