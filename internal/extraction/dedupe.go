package extraction

import (
	"strings"
	"unicode"

	"github.com/zense17/classyncserver/internal/models"
)

// dedupeKey lowercases a code and strips every whitespace character, the same
// normalization family used for catalog lookups.
func dedupeKey(code string) string {
	var b strings.Builder
	b.Grow(len(code))
	for _, r := range code {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Dedupe merges subject batches recognized across multiple images of the same
// logical document. Batches are flattened in submission order and the first
// occurrence of each normalized code wins; later occurrences are discarded
// even when more complete. Surviving subjects keep first-occurrence order.
func Dedupe(batches [][]models.Subject) []models.Subject {
	seen := make(map[string]struct{})
	var merged []models.Subject
	for _, batch := range batches {
		for _, subject := range batch {
			key := dedupeKey(subject.Code)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, subject)
		}
	}
	return merged
}
