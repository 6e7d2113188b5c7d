package transform

import (
	"bytes"
	"fmt"
	"sort"
)

// TextEdit replaces bytes [StartOffset, EndOffset) of source content with NewText.
// Parsers record byte spans for text leaves, so an accepted suggestion can be written
// back into the original source without reformatting it.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// EditError describes an edit that does not fit its content.
type EditError struct {
	Edit    TextEdit
	Message string
}

func (e *EditError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.StartOffset, e.Edit.EndOffset, e.Message)
}

// ConflictError describes overlapping edits.
type ConflictError struct {
	Edit1 TextEdit
	Edit2 TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.Edit1.StartOffset, e.Edit1.EndOffset,
		e.Edit2.StartOffset, e.Edit2.EndOffset)
}

// PrepareEdits validates edits against contentLen, sorts them by position and
// rejects overlaps. The input slice is not modified.
func PrepareEdits(edits []TextEdit, contentLen int) ([]TextEdit, error) {
	for _, edit := range edits {
		if edit.StartOffset < 0 {
			return nil, &EditError{Edit: edit, Message: "start offset is negative"}
		}
		if edit.EndOffset < edit.StartOffset {
			return nil, &EditError{Edit: edit, Message: "end offset is before start offset"}
		}
		if edit.EndOffset > contentLen {
			return nil, &EditError{
				Edit:    edit,
				Message: fmt.Sprintf("end offset %d exceeds content length %d", edit.EndOffset, contentLen),
			}
		}
	}

	result := make([]TextEdit, len(edits))
	copy(result, edits)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].StartOffset != result[j].StartOffset {
			return result[i].StartOffset < result[j].StartOffset
		}
		return result[i].EndOffset < result[j].EndOffset
	})

	for i := 1; i < len(result); i++ {
		if result[i].StartOffset < result[i-1].EndOffset {
			return nil, &ConflictError{Edit1: result[i-1], Edit2: result[i]}
		}
	}

	return result, nil
}

// ApplyEdits prepares edits and applies them to content.
func ApplyEdits(content []byte, edits []TextEdit) ([]byte, error) {
	prepared, err := PrepareEdits(edits, len(content))
	if err != nil {
		return nil, err
	}
	if len(prepared) == 0 {
		return content, nil
	}

	delta := 0
	for _, e := range prepared {
		delta += len(e.NewText) - (e.EndOffset - e.StartOffset)
	}

	var out bytes.Buffer
	out.Grow(len(content) + delta)

	cursor := 0
	for _, e := range prepared {
		out.Write(content[cursor:e.StartOffset])
		out.WriteString(e.NewText)
		cursor = e.EndOffset
	}
	out.Write(content[cursor:])

	return out.Bytes(), nil
}
