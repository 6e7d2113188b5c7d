package proof

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPayload is returned when a payload is not valid JSON.
var ErrInvalidPayload = errors.New("invalid payload")

const fence = "```"

// StripCodeFences returns the body of the first Markdown code fence in text, trimmed.
// The fence's info line is dropped and a missing closing fence is tolerated. Text
// without a fence is returned unchanged.
func StripCodeFences(text string) string {
	first := strings.Index(text, fence)
	if first < 0 {
		return text
	}

	rest := text[first+len(fence):]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[nl+1:]
	}
	if end := strings.Index(rest, fence); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// DecodeIssues parses a list of issues from data.
//
// data may be a JSON array of issues or an object with an "issues" array, optionally
// wrapped in a Markdown code fence. Entries that are not objects or lack an original,
// suggestion or description are dropped. A missing category becomes DefaultCategory and
// a missing id becomes "<index>-<original>-<suggestion>". Any other JSON shape yields no
// issues.
func DecodeIssues(data []byte) ([]Issue, error) {
	body := strings.TrimSpace(StripCodeFences(string(data)))
	if body == "" {
		return []Issue{}, nil
	}

	var payload any
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	var entries []any
	switch p := payload.(type) {
	case []any:
		entries = p
	case map[string]any:
		entries, _ = p["issues"].([]any)
	}

	issues := make([]Issue, 0, len(entries))
	for i, entry := range entries {
		if issue, ok := normalizeIssue(entry, i); ok {
			issues = append(issues, issue)
		}
	}
	return issues, nil
}

func normalizeIssue(entry any, index int) (Issue, bool) {
	obj, ok := entry.(map[string]any)
	if !ok {
		return Issue{}, false
	}

	issue := Issue{
		ID:          stringField(obj, "id"),
		Category:    stringField(obj, "category"),
		Original:    stringField(obj, "original"),
		Suggestion:  stringField(obj, "suggestion"),
		Description: stringField(obj, "description"),
	}
	if issue.Original == "" || issue.Suggestion == "" || issue.Description == "" {
		return Issue{}, false
	}

	if issue.ID == "" {
		issue.ID = fmt.Sprintf("%d-%s-%s", index, issue.Original, issue.Suggestion)
	}
	if issue.Category == "" {
		issue.Category = DefaultCategory
	}
	return issue, true
}

// stringField reads a string or number field; anything else reads as "".
func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// EncodeIssues writes issues as an indented JSON array that DecodeIssues reads back.
func EncodeIssues(issues []Issue) ([]byte, error) {
	if issues == nil {
		issues = []Issue{}
	}
	data, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode issues: %w", err)
	}
	return append(data, '\n'), nil
}
