package jsonvalue

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var fencedBlock = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.+?)\\s*```")

// ExtractPayload returns the JSON document embedded in an LLM reply.
// Text that is already valid JSON is returned trimmed. Otherwise a fenced
// code block is unwrapped, or the span from the first '[' or '{' to the last
// ']' or '}' is returned. Text with no candidate span is returned unchanged.
func ExtractPayload(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || gjson.Valid(trimmed) {
		return trimmed
	}

	if matches := fencedBlock.FindStringSubmatch(trimmed); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(trimmed, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(trimmed, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(trimmed[start : end+1])
}
