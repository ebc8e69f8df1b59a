package newsbrief

import (
	"strings"
	"unicode/utf8"
)

// NormalizeWhitespace collapses every run of whitespace, including newlines
// and non-breaking spaces, into a single space and trims both ends.
// Normalizing already-normalized text returns it unchanged.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateRunes returns the first n characters of s.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// RuneLen returns the number of characters in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
