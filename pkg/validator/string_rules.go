package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank reports whether s is empty or consists only of whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// IsTrimmed reports whether s has no leading or trailing characters at or
// below U+0020, which covers ASCII spaces and control characters.
func IsTrimmed(s string) bool {
	return strings.TrimFunc(s, isControlOrSpace) == s
}

// IsStripped reports whether s has no leading or trailing Unicode whitespace.
func IsStripped(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == s
}

// Length returns the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

func isControlOrSpace(r rune) bool {
	return r <= ' '
}
