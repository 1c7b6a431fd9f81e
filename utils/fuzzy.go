package utils

import "strings"

// FuzzyMatch reports whether term appears as a case-insensitive subsequence
// of text, e.g. "ts" matches "Trip to Spain" but not "Beach".
func FuzzyMatch(term, text string) bool {
	if term == "" {
		return false
	}
	term = strings.ToLower(term)
	text = strings.ToLower(text)

	idx := 0
	for i := 0; i < len(text); i++ {
		if text[i] == term[idx] {
			idx++
			if idx == len(term) {
				return true
			}
		}
	}
	return false
}
