package requirements

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/requirements/pkg/message"
	"github.com/dmitrymomot/requirements/pkg/target"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// StringValidator validates a string.
type StringValidator struct {
	base[string]
}

func String(s Subject, value string) *StringValidator {
	return &StringValidator{base: newBase(s, target.Valid(value))}
}

// StringPtr starts validating an optional string; nil is reported as null.
func StringPtr(s Subject, value *string) *StringValidator {
	return &StringValidator{base: newBase(s, target.FromPointer(value))}
}

func equalStrings(a, b string) bool { return a == b }

func (v *StringValidator) WithContext(value any, name string) *StringValidator {
	v.withContext(value, name)
	return v
}

// IsEqualTo compares the strings byte for byte. Multi-line strings that
// differ are explained with a diff.
func (v *StringValidator) IsEqualTo(expected string) *StringValidator {
	v.isEqualTo(expected, v.literal(expected), equalStrings, mustBeEqualTo)
	return v
}

func (v *StringValidator) IsEqualToNamed(expected, name string) *StringValidator {
	v.isEqualTo(expected, v.named(expected, name), equalStrings, mustBeEqualTo)
	return v
}

func (v *StringValidator) IsNotEqualTo(unwanted string) *StringValidator {
	v.isNotEqualTo(unwanted, v.literal(unwanted), equalStrings, mayNotBeEqualTo)
	return v
}

func (v *StringValidator) IsNotEqualToNamed(unwanted, name string) *StringValidator {
	v.isNotEqualTo(unwanted, v.named(unwanted, name), equalStrings, mayNotBeEqualTo)
	return v
}

func (v *StringValidator) IsEmpty() *StringValidator {
	v.check(func(s string) bool { return s == "" }, v.describe("must be empty"))
	return v
}

func (v *StringValidator) IsNotEmpty() *StringValidator {
	v.check(func(s string) bool { return s != "" }, v.describe("may not be empty"))
	return v
}

// IsBlank requires the string to be empty or to consist of whitespace only.
func (v *StringValidator) IsBlank() *StringValidator {
	v.check(validator.IsBlank, v.describe("must be blank"))
	return v
}

func (v *StringValidator) IsNotBlank() *StringValidator {
	v.check(func(s string) bool { return !validator.IsBlank(s) }, v.describe("may not be blank"))
	return v
}

// IsTrimmed rejects leading or trailing control characters and ASCII spaces.
func (v *StringValidator) IsTrimmed() *StringValidator {
	v.check(validator.IsTrimmed, v.describe("may not contain leading or trailing whitespace"))
	return v
}

// IsStripped rejects leading or trailing Unicode whitespace.
func (v *StringValidator) IsStripped() *StringValidator {
	v.check(validator.IsStripped, v.describe("may not contain leading or trailing whitespace"))
	return v
}

func (v *StringValidator) DoesNotContainWhitespace() *StringValidator {
	v.check(func(s string) bool { return !validator.ContainsWhitespace(s) }, v.describe("may not contain whitespace"))
	return v
}

func (v *StringValidator) StartsWith(prefix string) *StringValidator {
	return v.substring(prefix, strings.HasPrefix, true, "must start with %s")
}

func (v *StringValidator) DoesNotStartWith(prefix string) *StringValidator {
	return v.substring(prefix, strings.HasPrefix, false, "may not start with %s")
}

func (v *StringValidator) EndsWith(suffix string) *StringValidator {
	return v.substring(suffix, strings.HasSuffix, true, "must end with %s")
}

func (v *StringValidator) DoesNotEndWith(suffix string) *StringValidator {
	return v.substring(suffix, strings.HasSuffix, false, "may not end with %s")
}

func (v *StringValidator) Contains(substr string) *StringValidator {
	return v.substring(substr, strings.Contains, true, "must contain %s")
}

func (v *StringValidator) DoesNotContain(substr string) *StringValidator {
	return v.substring(substr, strings.Contains, false, "may not contain %s")
}

func (v *StringValidator) substring(part string, match func(s, part string) bool, want bool, format string) *StringValidator {
	a := v.literal(part)
	v.check(func(s string) bool { return match(s, part) == want }, v.describe(format, a.text))
	return v
}

// Matches requires the whole string to match pattern. Panics if pattern does
// not compile.
func (v *StringValidator) Matches(pattern string) *StringValidator {
	re, err := validator.CompileFull(pattern)
	if err != nil {
		panic(fmt.Errorf("%w: %w", ErrInvalidArgument, err))
	}
	v.check(re.MatchString, func() *message.Builder {
		return v.sentence("must match %s", v.ch.render(pattern))
	})
	return v
}

// MatchesRegexp requires the whole string to match re. Panics if re is nil.
func (v *StringValidator) MatchesRegexp(re *regexp.Regexp) *StringValidator {
	if re == nil {
		panic(fmt.Errorf("%w: regexp may not be nil", ErrInvalidArgument))
	}
	return v.Matches(re.String())
}

// IsUUID requires the canonical 8-4-4-4-12 hexadecimal form.
func (v *StringValidator) IsUUID() *StringValidator {
	v.check(validator.IsUUID, v.describe("must be a valid UUID"))
	return v
}

func (v *StringValidator) IsOneOf(choices ...string) *StringValidator {
	v.check(func(s string) bool { return validator.OneOf(s, choices, equalStrings) },
		v.describe("must be one of %s", v.ch.render(choices)))
	return v
}

func (v *StringValidator) IsNotOneOf(choices ...string) *StringValidator {
	v.check(func(s string) bool { return !validator.OneOf(s, choices, equalStrings) },
		v.describe("may not be one of %s", v.ch.render(choices)))
	return v
}

// Length returns a validator for the number of characters (runes) in the
// string.
func (v *StringValidator) Length() *SizeValidator {
	return newSize(&v.base, validator.Length, message.Characters)
}
