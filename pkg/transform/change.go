package transform

// Change is the single span by which two strings differ, in rune offsets.
// The old text's [Start, OldEnd) was replaced by the new text's [Start, NewEnd).
type Change struct {
	Start  int
	OldEnd int
	NewEnd int
}

// IsEmpty reports whether the strings were identical.
func (c Change) IsEmpty() bool {
	return c.Start == c.OldEnd && c.Start == c.NewEnd
}

// Diff finds the changed span between oldText and newText by trimming their
// common prefix and common suffix.
func Diff(oldText, newText string) Change {
	a, b := []rune(oldText), []rune(newText)

	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}

	return Change{
		Start:  prefix,
		OldEnd: len(a) - suffix,
		NewEnd: len(b) - suffix,
	}
}
