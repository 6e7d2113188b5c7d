// Package transform describes document edits as position transforms.
//
// A Step replaces the structural span [From, To) of a document with Size new units.
// A Mapping is an ordered list of steps, each expressed in the coordinates produced
// by the steps before it. Positions are carried across a mapping with an association
// side that decides where a position lands when content is inserted right at it.
package transform

// Assoc selects which side a position sticks to when an edit touches it.
type Assoc int

const (
	// AssocBefore keeps a position before content inserted at it.
	AssocBefore Assoc = -1

	// AssocAfter moves a position past content inserted at it.
	AssocAfter Assoc = 1
)

// Step replaces the span [From, To) with Size new units.
type Step struct {
	// From is the first replaced position (inclusive).
	From int

	// To is the end of the replaced span (exclusive).
	To int

	// Size is the number of units that take the place of [From, To).
	Size int
}

// Delta returns the change in document size caused by the step.
func (s Step) Delta() int {
	return s.Size - (s.To - s.From)
}

// IsNoop reports whether the step changes nothing.
func (s Step) IsNoop() bool {
	return s.From == s.To && s.Size == 0
}

// MapResult is a mapped position plus whether its surroundings were removed.
type MapResult struct {
	// Pos is the mapped position.
	Pos int

	// Deleted is true when the position was strictly inside the replaced span.
	Deleted bool
}

// Map carries pos across the step.
func (s Step) Map(pos int, assoc Assoc) int {
	return s.MapResult(pos, assoc).Pos
}

// MapResult carries pos across the step and reports whether it was deleted.
//
// Positions before From are unchanged and positions after To shift by Delta.
// A position on the boundary of a replaced span stays on its own side of the
// replacement. For a pure insertion, assoc decides the side.
func (s Step) MapResult(pos int, assoc Assoc) MapResult {
	if pos < s.From {
		return MapResult{Pos: pos}
	}
	if pos > s.To {
		return MapResult{Pos: pos + s.Delta()}
	}

	side := assoc
	switch {
	case s.From == s.To:
		// Pure insertion; assoc decides.
	case pos == s.From:
		side = AssocBefore
	case pos == s.To:
		side = AssocAfter
	}

	result := s.From
	if side > 0 {
		result += s.Size
	}

	return MapResult{
		Pos:     result,
		Deleted: pos > s.From && pos < s.To,
	}
}
