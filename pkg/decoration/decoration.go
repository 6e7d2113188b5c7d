// Package decoration holds the highlight decorations painted over a structured document.
//
// A Manager owns the current decoration set for one editor view. It changes only
// through Apply: a Recompute transaction replaces the set, a StructuralEdit transaction
// carries every range across a document edit.
package decoration

import "github.com/yaklabco/proofline/pkg/transform"

// DefaultClass is the style class given to highlight decorations.
const DefaultClass = "proofread-highlight"

// Range is a half-open span [From, To) of structural document positions.
type Range struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// IsEmpty reports whether the range covers no positions.
func (r Range) IsEmpty() bool {
	return r.From >= r.To
}

// Map carries r across mapping. From sticks after and To sticks before content
// inserted at them, so text typed at either edge is not highlighted.
func (r Range) Map(mapping transform.Mapping) Range {
	return Range{
		From: mapping.Map(r.From, transform.AssocAfter),
		To:   mapping.Map(r.To, transform.AssocBefore),
	}
}

// Decoration is an inline style applied to a document range.
type Decoration struct {
	Range
	Class string `json:"class"`
}
