// Package langdetect decides whether an essay is Markdown or plain prose.
// It uses go-enry to classify by file name first and by content second.
package langdetect

import (
	"bytes"
	"slices"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Flavors reported by DetectFlavor.
const (
	FlavorMarkdown = "markdown"
	FlavorPlain    = "plain"
)

const (
	enryMarkdown = "Markdown"
	enryText     = "Text"
)

// markdownSignals is how many Markdown-looking lines make content Markdown.
const markdownSignals = 2

// DetectFlavor reports whether the essay at path with content should be parsed
// as Markdown or as plain text.
//
// A recognised extension decides on its own. Without one, content is checked for
// Markdown syntax; a single suspicious line is settled by the enry classifier.
func DetectFlavor(path string, content []byte) string {
	if path != "" {
		// Extensions can be ambiguous (".md" is also GCC Machine Description).
		langs := enry.GetLanguagesByExtension(path, nil, nil)
		switch {
		case slices.Contains(langs, enryMarkdown):
			return FlavorMarkdown
		case slices.Contains(langs, enryText):
			return FlavorPlain
		}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return FlavorPlain
	}

	switch signals := countMarkdownLines(content); {
	case signals >= markdownSignals:
		return FlavorMarkdown
	case signals == 0:
		return FlavorPlain
	}

	// One signal is ambiguous; let the classifier pick the likelier of the two.
	if lang, _ := enry.GetLanguageByClassifier(content, []string{enryMarkdown, enryText}); lang == enryMarkdown {
		return FlavorMarkdown
	}
	return FlavorPlain
}

// countMarkdownLines counts lines that open with Markdown block syntax or carry
// inline link or emphasis syntax.
func countMarkdownLines(content []byte) int {
	count := 0
	for _, raw := range bytes.Split(content, []byte("\n")) {
		line := strings.TrimSpace(string(raw))
		if line == "" {
			continue
		}
		if isMarkdownLine(line) {
			count++
		}
	}
	return count
}

func isMarkdownLine(line string) bool {
	switch {
	case strings.HasPrefix(line, "#") && strings.Contains(line, "# "):
		return true
	case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "* "), strings.HasPrefix(line, "+ "):
		return true
	case strings.HasPrefix(line, "> "), strings.HasPrefix(line, "```"), strings.HasPrefix(line, "~~~"):
		return true
	case strings.Contains(line, "]("), strings.Contains(line, "**"), strings.Contains(line, "__"):
		return true
	case isOrderedItem(line):
		return true
	default:
		return false
	}
}

func isOrderedItem(line string) bool {
	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits+1 >= len(line) {
		return false
	}
	return (line[digits] == '.' || line[digits] == ')') && line[digits+1] == ' '
}
