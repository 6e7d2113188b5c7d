package textrange

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Find returns the range of the first case-insensitive occurrence of needle in haystack.
// It reports false when needle is empty, whitespace-only, or absent.
//
// Both operands are folded rune by rune with unicode.ToLower, so the folded text keeps
// the rune count of the original and the returned offsets index haystack directly.
func Find(haystack, needle string) (Range, bool) {
	if strings.TrimSpace(needle) == "" {
		return Range{}, false
	}

	foldedHaystack := fold(haystack)
	idx := strings.Index(foldedHaystack, fold(needle))
	if idx < 0 {
		return Range{}, false
	}

	start := utf8.RuneCountInString(foldedHaystack[:idx])
	return Range{Start: start, End: start + RuneLen(needle)}, true
}

// fold lowercases s one rune at a time.
func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
