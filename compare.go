package requirements

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/requirements/pkg/message"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

const (
	mustBeEqualTo            = "must be equal to %s"
	mayNotBeEqualTo          = "may not be equal to %s"
	mustBeLessThan           = "must be less than %s"
	mustBeLessThanOrEqual    = "must be less than or equal to %s"
	mustBeGreaterThan        = "must be greater than %s"
	mustBeGreaterThanOrEqual = "must be greater than or equal to %s"
	mustBeBetween            = "must be between %s (%s) and %s (%s)"
)

func isLess(c int) bool           { return c < 0 }
func isLessOrEqual(c int) bool    { return c <= 0 }
func isGreater(c int) bool        { return c > 0 }
func isGreaterOrEqual(c int) bool { return c >= 0 }

func inclusivity(inclusive bool) string {
	if inclusive {
		return "inclusive"
	}
	return "exclusive"
}

func (b *base[T]) isEqualTo(expected T, a arg, equal validator.EqualFunc[T], format string) {
	b.check(func(v T) bool { return equal(v, expected) }, func() *message.Builder {
		msg := b.sentence(format, a.text).WithEntries(a.entries...)
		b.value.IfValid(func(v T) { msg.WithEntries(b.ch.differences(v, expected)...) })
		return msg
	})
}

func (b *base[T]) isNotEqualTo(unwanted T, a arg, equal validator.EqualFunc[T], format string) {
	b.check(func(v T) bool { return !equal(v, unwanted) }, func() *message.Builder {
		return b.sentence(format, a.text).WithEntries(a.entries...)
	})
}

func (b *base[T]) compareTo(bound T, a arg, compare validator.CompareFunc[T], accept func(int) bool, format string) {
	b.check(func(v T) bool { return accept(compare(v, bound)) }, func() *message.Builder {
		return b.sentence(format, a.text).WithEntries(a.entries...)
	})
}

// between panics if the bounds cannot hold any value, even when the chain is
// disabled.
func (b *base[T]) between(min, max T, minInclusive, maxInclusive bool, compare validator.CompareFunc[T], format string, suffix string) {
	if err := validator.CheckBounds(min, max, minInclusive, maxInclusive, compare); err != nil {
		panic(fmt.Errorf("%w: %w", ErrInvalidBounds, err))
	}
	b.check(func(v T) bool {
		return validator.InRange(v, min, max, minInclusive, maxInclusive, compare)
	}, func() *message.Builder {
		return b.sentence(format+suffix,
			b.ch.render(min), inclusivity(minInclusive),
			b.ch.render(max), inclusivity(maxInclusive))
	})
}

// multipleOf requires isMultiple to return want.
func (b *base[T]) multipleOf(isMultiple func(T) bool, a arg, want bool) {
	format := "must be a multiple of %s"
	if !want {
		format = "may not be a multiple of %s"
	}
	b.check(func(v T) bool { return isMultiple(v) == want }, func() *message.Builder {
		return b.sentence(format, a.text).WithEntries(a.entries...)
	})
}

// differences explains why two values are unequal beyond the sentence: their
// types when both render the same, or a diff when they span several lines or
// are composite.
func (c *chain) differences(actual, expected any) []message.Entry {
	at, et := c.render(actual), c.render(expected)
	if at == et {
		return []message.Entry{
			{Key: "actual_type", Value: fmt.Sprintf("%T", actual)},
			{Key: "expected_type", Value: fmt.Sprintf("%T", expected)},
		}
	}
	if !c.cfg.diff {
		return nil
	}

	switch {
	case isComposite(actual) || isComposite(expected):
		at, et = block(actual, at), block(expected, et)
	case isMultilineString(actual) || isMultilineString(expected):
		at, et = fmt.Sprint(actual), fmt.Sprint(expected)
	case !message.IsMultiline(at) && !message.IsMultiline(et):
		return nil
	}

	if d := message.Diff(et, at); d != "" {
		return []message.Entry{{Key: "diff", Value: d}}
	}
	return nil
}

func isMultilineString(v any) bool {
	s, ok := v.(string)
	return ok && message.IsMultiline(s)
}

// block renders v as YAML so that composite values diff line by line.
func block(v any, fallback string) (s string) {
	if isNil(v) {
		return fallback
	}
	// yaml.v3 panics on funcs and channels nested in a value.
	defer func() {
		if recover() != nil {
			s = fallback
		}
	}()
	out, err := yaml.Marshal(v)
	if err != nil {
		return fallback
	}
	return strings.TrimSuffix(string(out), "\n")
}
