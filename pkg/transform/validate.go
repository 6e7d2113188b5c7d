package transform

import "fmt"

// ValidationError describes a step that does not fit the document it applies to.
type ValidationError struct {
	Step    Step
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid step %d [%d:%d +%d]: %s", e.Index, e.Step.From, e.Step.To, e.Step.Size, e.Message)
}

// Validate checks every step against the document size it applies to.
// docSize is the size before the first step; later steps are checked against
// the size produced by the steps before them.
// Returns nil if all steps are valid, or the first validation error encountered.
func (m Mapping) Validate(docSize int) error {
	size := docSize
	for i, step := range m.Steps {
		switch {
		case step.From < 0:
			return &ValidationError{Step: step, Index: i, Message: "from is negative"}
		case step.To < step.From:
			return &ValidationError{Step: step, Index: i, Message: "to is before from"}
		case step.Size < 0:
			return &ValidationError{Step: step, Index: i, Message: "size is negative"}
		case step.To > size:
			return &ValidationError{
				Step:    step,
				Index:   i,
				Message: fmt.Sprintf("to %d exceeds document size %d", step.To, size),
			}
		}
		size += step.Delta()
	}
	return nil
}
