package mdast

// SourceRange represents a byte range in the source content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// NoSource marks a node that has no verbatim source span.
//
//nolint:gochecknoglobals // Read-only sentinel value.
var NoSource = SourceRange{StartOffset: -1, EndOffset: -1}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// IsValid returns true if the range points into source content.
func (r SourceRange) IsValid() bool {
	return r.StartOffset >= 0 && r.EndOffset >= r.StartOffset
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}
