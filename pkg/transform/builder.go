package transform

// Builder accumulates steps into a Mapping.
type Builder struct {
	steps []Step
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		steps: make([]Step, 0),
	}
}

// Replace adds a step that replaces [from, to) with size units.
func (b *Builder) Replace(from, to, size int) *Builder {
	b.steps = append(b.steps, Step{From: from, To: to, Size: size})
	return b
}

// Insert adds a step that inserts size units at pos.
func (b *Builder) Insert(pos, size int) *Builder {
	return b.Replace(pos, pos, size)
}

// Delete adds a step that deletes [from, to).
func (b *Builder) Delete(from, to int) *Builder {
	return b.Replace(from, to, 0)
}

// Len returns the number of accumulated steps.
func (b *Builder) Len() int {
	return len(b.steps)
}

// Mapping returns the accumulated steps as a Mapping.
func (b *Builder) Mapping() Mapping {
	steps := make([]Step, len(b.steps))
	copy(steps, b.steps)
	return Mapping{Steps: steps}
}
