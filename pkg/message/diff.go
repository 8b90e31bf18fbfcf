package message

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// IsMultiline reports whether s spans more than one line.
func IsMultiline(s string) bool {
	return strings.Contains(strings.TrimRight(s, "\n"), "\n")
}

// Diff returns a unified diff turning expected into actual, or an empty string
// when both texts are equal.
func Diff(expected, actual string) string {
	if expected == actual {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(expected),
		B:        splitLines(actual),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(diff, "\n")
}

// splitLines terminates every line with a newline. SplitLines appends one to
// the last element itself, so a trailing newline would become an empty line.
func splitLines(s string) []string {
	return difflib.SplitLines(strings.TrimSuffix(s, "\n"))
}
