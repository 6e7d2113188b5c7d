package decoration

import (
	"fmt"

	"github.com/yaklabco/proofline/pkg/transform"
)

// State describes whether a Manager currently holds decorations.
type State int

const (
	// Empty means the set holds no decorations.
	Empty State = iota

	// Populated means the set holds at least one decoration.
	Populated
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Populated:
		return "populated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Meta is the payload of a Transaction. It is one of Recompute or StructuralEdit.
type Meta interface {
	isMeta()
}

// Recompute replaces the decoration set with Ranges, verbatim.
type Recompute struct {
	Ranges []Range
}

// StructuralEdit maps the existing decoration set through Mapping.
type StructuralEdit struct {
	Mapping transform.Mapping
}

func (Recompute) isMeta()      {}
func (StructuralEdit) isMeta() {}

// Transaction is one update delivered to a Manager. A nil Meta leaves the set unchanged.
type Transaction struct {
	Meta Meta
}

// Manager owns the decoration set of one editor view.
// It is not safe for concurrent use; the view's owner serializes Apply calls.
type Manager struct {
	class  string
	ranges []Range
}

// NewManager creates an empty Manager whose decorations carry class.
// An empty class selects DefaultClass.
func NewManager(class string) *Manager {
	if class == "" {
		class = DefaultClass
	}
	return &Manager{class: class}
}

// Class returns the style class of the managed decorations.
func (m *Manager) Class() string {
	return m.class
}

// State reports whether the set is empty.
func (m *Manager) State() State {
	if len(m.ranges) == 0 {
		return Empty
	}
	return Populated
}

// Apply updates the set from tr. A nil Meta, or a nil *Recompute or
// *StructuralEdit, leaves the set unchanged.
func (m *Manager) Apply(tr Transaction) {
	switch meta := tr.Meta.(type) {
	case Recompute:
		m.replace(meta.Ranges)
	case *Recompute:
		if meta != nil {
			m.replace(meta.Ranges)
		}
	case StructuralEdit:
		m.mapThrough(meta.Mapping)
	case *StructuralEdit:
		if meta != nil {
			m.mapThrough(meta.Mapping)
		}
	}
}

func (m *Manager) replace(ranges []Range) {
	m.ranges = append(m.ranges[:0:0], ranges...)
}

func (m *Manager) mapThrough(mapping transform.Mapping) {
	if mapping.IsEmpty() {
		return
	}

	kept := m.ranges[:0]
	for _, r := range m.ranges {
		mapped := r.Map(mapping)
		if mapped.IsEmpty() {
			continue
		}
		kept = append(kept, mapped)
	}
	m.ranges = kept
}

// Ranges returns a copy of the current ranges.
func (m *Manager) Ranges() []Range {
	out := make([]Range, len(m.ranges))
	copy(out, m.ranges)
	return out
}

// Decorations returns the current set as styled decorations.
func (m *Manager) Decorations() []Decoration {
	out := make([]Decoration, len(m.ranges))
	for i, r := range m.ranges {
		out[i] = Decoration{Range: r, Class: m.class}
	}
	return out
}
