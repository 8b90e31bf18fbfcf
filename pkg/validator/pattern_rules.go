package validator

import (
	"fmt"
	"regexp"
	"unicode"
)

// ContainsWhitespace reports whether s contains any Unicode whitespace.
func ContainsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// CompileFull compiles pattern so that it only matches entire strings.
func CompileFull(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re, nil
}
