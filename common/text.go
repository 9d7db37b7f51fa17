package common

import (
	"strings"
	"unicode/utf8"
)

const ellipsis = "..."

// IsBlank reports whether s is empty after trimming whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsBlankPtr treats a nil pointer as blank.
func IsBlankPtr(s *string) bool {
	return s == nil || IsBlank(*s)
}

// Truncate shortens s to at most maxLen runes, including the trailing "...".
// Strings that already fit are returned unchanged.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= len(ellipsis) {
		return string([]rune(s)[:maxLen])
	}
	runes := []rune(s)
	return string(runes[:maxLen-len(ellipsis)]) + ellipsis
}
