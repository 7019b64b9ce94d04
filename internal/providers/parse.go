package providers

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON pulls the JSON object out of raw model output. Models asked for
// bare JSON still wrap it in markdown fences or prose often enough that three
// strategies are tried in order: direct decode, fenced code block, then the
// first-brace-to-last-brace substring.
func ExtractJSON(text string) ([]byte, error) {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}

	if fenced, ok := extractFencedBlock(trimmed); ok && json.Valid([]byte(fenced)) {
		return []byte(fenced), nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start != -1 && end > start {
		candidate := trimmed[start : end+1]
		if json.Valid([]byte(candidate)) {
			return []byte(candidate), nil
		}
	}

	return nil, fmt.Errorf("could not parse recognizer response as JSON")
}

func extractFencedBlock(text string) (string, bool) {
	open := strings.Index(text, "```")
	if open == -1 {
		return "", false
	}
	rest := text[open+3:]
	// Skip a language tag like "json" on the fence line.
	if newline := strings.Index(rest, "\n"); newline != -1 {
		rest = rest[newline+1:]
	}
	closing := strings.Index(rest, "```")
	if closing == -1 {
		return "", false
	}
	return strings.TrimSpace(rest[:closing]), true
}
