package catalog

import (
	"strings"
	"unicode"
)

// NormalizeCode maps a free-text subject code to its canonical lookup key.
// Uppercases and strips every whitespace character, including internal ones,
// so "CS 101", "cs101" and "C S 1 0 1" all normalize to "CS101".
func NormalizeCode(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
