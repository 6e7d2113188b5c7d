package textrange

import "sort"

// LineIndex maps rune offsets in a plain-text string to 1-based line and column numbers.
type LineIndex struct {
	// starts holds the rune offset of each line start.
	starts []int
	length int
}

// NewLineIndex builds the line table for text. Lines are separated by '\n'.
func NewLineIndex(text string) *LineIndex {
	idx := &LineIndex{starts: []int{0}}

	offset := 0
	for _, r := range text {
		offset++
		if r == '\n' {
			idx.starts = append(idx.starts, offset)
		}
	}
	idx.length = offset

	return idx
}

// LineCount returns the number of lines in the indexed text.
func (l *LineIndex) LineCount() int {
	return len(l.starts)
}

// Position converts a rune offset to a 1-based (line, column) pair.
// Offsets outside the text are clamped to its bounds.
func (l *LineIndex) Position(offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > l.length {
		offset = l.length
	}

	// Binary search for the last line starting at or before offset.
	line := sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	}) - 1

	return line + 1, offset - l.starts[line] + 1
}

// Offset converts a 1-based (line, column) pair back to a rune offset.
// Returns false if the line does not exist.
func (l *LineIndex) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(l.starts) || col < 1 {
		return 0, false
	}

	offset := l.starts[line-1] + col - 1
	if offset > l.length {
		return 0, false
	}
	return offset, true
}
