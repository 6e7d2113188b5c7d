// Package textrange locates and replaces spans of plain text.
//
// All offsets are rune offsets into the text. Ranges are half-open: [Start, End).
package textrange

import "unicode/utf8"

// Range is a half-open span of rune offsets into a plain-text string.
type Range struct {
	// Start is the rune index where the range begins (inclusive).
	Start int `json:"start"`

	// End is the rune index where the range ends (exclusive).
	End int `json:"end"`
}

// Len returns the length of the range in runes.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains returns true if the given offset is within this range.
func (r Range) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// Overlaps returns true if both ranges share at least one rune.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// Valid reports whether the range satisfies 0 <= Start <= End <= length.
func (r Range) Valid(length int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End <= length
}

// Slice returns the text covered by the range, or "" if the range does not fit text.
func (r Range) Slice(text string) string {
	runes := []rune(text)
	if !r.Valid(len(runes)) {
		return ""
	}
	return string(runes[r.Start:r.End])
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ByteOffset converts a rune offset in s into a byte offset. Invalid bytes count
// as one rune each, as they do when s is converted to []rune. Offsets past the
// end of s return len(s).
func ByteOffset(s string, runeOffset int) int {
	at := 0
	for i := 0; i < runeOffset && at < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[at:])
		at += size
	}
	return at
}
