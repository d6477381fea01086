package gemini

import (
	"encoding/json"
	"strings"
)

// ExtractJSON pulls a JSON object out of a model response. Models
// sometimes wrap JSON in markdown fences or surround it with prose, so
// after stripping fences we fall back to scanning for the first
// balanced top-level object. Returns nil when no valid object is found.
func ExtractJSON(text string) json.RawMessage {
	text = stripFences(strings.TrimSpace(text))

	if json.Valid([]byte(text)) && strings.HasPrefix(text, "{") {
		return json.RawMessage(text)
	}

	if obj := balancedObject(text); obj != "" && json.Valid([]byte(obj)) {
		return json.RawMessage(obj)
	}
	return nil
}

func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// balancedObject returns the first balanced {...} span in text,
// tracking string literals so braces inside values don't miscount.
func balancedObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}
	return ""
}
