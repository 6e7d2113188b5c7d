package textrange

import "strings"

// Replacement is the outcome of ReplaceFirst.
type Replacement struct {
	// Text is the resulting text. It equals the input when Found is false.
	Text string

	// Range spans exactly the inserted replacement inside Text.
	Range Range

	// Found reports whether the needle was located.
	Found bool
}

// ReplaceFirst substitutes the first case-insensitive occurrence of needle in haystack.
//
// The returned range starts where the match started and ends after the replacement.
// It is derived from the substitution itself, so a replacement that happens to contain
// the needle again does not influence it.
func ReplaceFirst(haystack, needle, replacement string) Replacement {
	match, ok := Find(haystack, needle)
	if !ok {
		return Replacement{Text: haystack}
	}

	runes := []rune(haystack)

	var b strings.Builder
	b.Grow(len(haystack) + len(replacement))
	b.WriteString(string(runes[:match.Start]))
	b.WriteString(replacement)
	b.WriteString(string(runes[match.End:]))

	return Replacement{
		Text:  b.String(),
		Range: Range{Start: match.Start, End: match.Start + RuneLen(replacement)},
		Found: true,
	}
}
