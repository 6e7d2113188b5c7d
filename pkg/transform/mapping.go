package transform

// Mapping is an ordered sequence of steps. Each step is expressed in the
// coordinates of the document produced by the steps before it.
type Mapping struct {
	Steps []Step
}

// NewMapping creates a mapping from steps.
func NewMapping(steps ...Step) Mapping {
	return Mapping{Steps: steps}
}

// Append adds a step to the end of the mapping.
func (m *Mapping) Append(step Step) {
	m.Steps = append(m.Steps, step)
}

// IsEmpty reports whether the mapping leaves every position unchanged.
func (m Mapping) IsEmpty() bool {
	for _, step := range m.Steps {
		if !step.IsNoop() {
			return false
		}
	}
	return true
}

// Map carries pos through every step in order.
func (m Mapping) Map(pos int, assoc Assoc) int {
	return m.MapResult(pos, assoc).Pos
}

// MapResult carries pos through every step in order. Deleted is set when any
// step deleted the position.
func (m Mapping) MapResult(pos int, assoc Assoc) MapResult {
	result := MapResult{Pos: pos}
	for _, step := range m.Steps {
		r := step.MapResult(result.Pos, assoc)
		result.Pos = r.Pos
		result.Deleted = result.Deleted || r.Deleted
	}
	return result
}

// Delta returns the total change in document size.
func (m Mapping) Delta() int {
	delta := 0
	for _, step := range m.Steps {
		delta += step.Delta()
	}
	return delta
}
