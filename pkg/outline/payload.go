package outline

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/proofline/pkg/proof"
)

// ErrInvalidPayload is returned when an outline payload is not a JSON array.
var ErrInvalidPayload = errors.New("invalid outline payload")

// DecodeSegments parses outline segments from data, optionally wrapped in a Markdown
// code fence. Each entry carries "Paragraph" and "Structure" (lowercase keys are also
// accepted); entries missing either are dropped.
func DecodeSegments(data []byte) ([]Segment, error) {
	body := strings.TrimSpace(proof.StripCodeFences(string(data)))

	var entries []any
	if err := json.Unmarshal([]byte(body), &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	segments := make([]Segment, 0, len(entries))
	for _, raw := range entries {
		entry, _ := raw.(map[string]any)
		seg := Segment{
			Paragraph: field(entry, "Paragraph", "paragraph"),
			Structure: field(entry, "Structure", "structure"),
		}
		if seg.Paragraph == "" || seg.Structure == "" {
			continue
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func field(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := entry[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
