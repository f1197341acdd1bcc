package service

import (
	"strings"
)

// normalizeGuess lowercases and trims a submitted word. Character-set
// validation happens at the platform boundary before submission.
func normalizeGuess(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
