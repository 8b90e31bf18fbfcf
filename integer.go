package requirements

import (
	"cmp"

	"github.com/dmitrymomot/requirements/pkg/target"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// IntegerValidator validates a value of any integer type.
type IntegerValidator[T validator.Integer] struct {
	base[T]
}

// Integer starts validating an integer.
func Integer[T validator.Integer](s Subject, value T) *IntegerValidator[T] {
	return &IntegerValidator[T]{base: newBase(s, target.Valid(value))}
}

// IntegerPtr starts validating an optional integer; nil is reported as null.
func IntegerPtr[T validator.Integer](s Subject, value *T) *IntegerValidator[T] {
	return &IntegerValidator[T]{base: newBase(s, target.FromPointer(value))}
}

func equalIntegers[T validator.Integer](a, b T) bool { return a == b }

// WithContext adds a named line to every failure message of the chain.
func (v *IntegerValidator[T]) WithContext(value any, name string) *IntegerValidator[T] {
	v.withContext(value, name)
	return v
}

func (v *IntegerValidator[T]) IsEqualTo(expected T) *IntegerValidator[T] {
	v.isEqualTo(expected, v.literal(expected), equalIntegers[T], mustBeEqualTo)
	return v
}

func (v *IntegerValidator[T]) IsEqualToNamed(expected T, name string) *IntegerValidator[T] {
	v.isEqualTo(expected, v.named(expected, name), equalIntegers[T], mustBeEqualTo)
	return v
}

func (v *IntegerValidator[T]) IsNotEqualTo(unwanted T) *IntegerValidator[T] {
	v.isNotEqualTo(unwanted, v.literal(unwanted), equalIntegers[T], mayNotBeEqualTo)
	return v
}

func (v *IntegerValidator[T]) IsNotEqualToNamed(unwanted T, name string) *IntegerValidator[T] {
	v.isNotEqualTo(unwanted, v.named(unwanted, name), equalIntegers[T], mayNotBeEqualTo)
	return v
}

func (v *IntegerValidator[T]) IsLessThan(bound T) *IntegerValidator[T] {
	v.compareTo(bound, v.literal(bound), cmp.Compare[T], isLess, mustBeLessThan)
	return v
}

func (v *IntegerValidator[T]) IsLessThanNamed(bound T, name string) *IntegerValidator[T] {
	v.compareTo(bound, v.named(bound, name), cmp.Compare[T], isLess, mustBeLessThan)
	return v
}

func (v *IntegerValidator[T]) IsLessThanOrEqualTo(bound T) *IntegerValidator[T] {
	v.compareTo(bound, v.literal(bound), cmp.Compare[T], isLessOrEqual, mustBeLessThanOrEqual)
	return v
}

func (v *IntegerValidator[T]) IsLessThanOrEqualToNamed(bound T, name string) *IntegerValidator[T] {
	v.compareTo(bound, v.named(bound, name), cmp.Compare[T], isLessOrEqual, mustBeLessThanOrEqual)
	return v
}

func (v *IntegerValidator[T]) IsGreaterThan(bound T) *IntegerValidator[T] {
	v.compareTo(bound, v.literal(bound), cmp.Compare[T], isGreater, mustBeGreaterThan)
	return v
}

func (v *IntegerValidator[T]) IsGreaterThanNamed(bound T, name string) *IntegerValidator[T] {
	v.compareTo(bound, v.named(bound, name), cmp.Compare[T], isGreater, mustBeGreaterThan)
	return v
}

func (v *IntegerValidator[T]) IsGreaterThanOrEqualTo(bound T) *IntegerValidator[T] {
	v.compareTo(bound, v.literal(bound), cmp.Compare[T], isGreaterOrEqual, mustBeGreaterThanOrEqual)
	return v
}

func (v *IntegerValidator[T]) IsGreaterThanOrEqualToNamed(bound T, name string) *IntegerValidator[T] {
	v.compareTo(bound, v.named(bound, name), cmp.Compare[T], isGreaterOrEqual, mustBeGreaterThanOrEqual)
	return v
}

// IsBetween requires min <= value < max. Panics if min >= max.
func (v *IntegerValidator[T]) IsBetween(min, max T) *IntegerValidator[T] {
	return v.IsBetweenBounds(min, true, max, false)
}

// IsBetweenBounds requires the value to lie between min and max with the
// given inclusivity. Panics if the bounds cannot hold any value.
func (v *IntegerValidator[T]) IsBetweenBounds(min T, minInclusive bool, max T, maxInclusive bool) *IntegerValidator[T] {
	v.between(min, max, minInclusive, maxInclusive, cmp.Compare[T], mustBeBetween, "")
	return v
}

func (v *IntegerValidator[T]) IsNegative() *IntegerValidator[T] {
	v.check(validator.IsNegative[T], v.describe("must be negative"))
	return v
}

func (v *IntegerValidator[T]) IsNotNegative() *IntegerValidator[T] {
	v.check(validator.IsNotNegative[T], v.describe("may not be negative"))
	return v
}

func (v *IntegerValidator[T]) IsZero() *IntegerValidator[T] {
	v.check(validator.IsZero[T], v.describe("must be zero"))
	return v
}

func (v *IntegerValidator[T]) IsNotZero() *IntegerValidator[T] {
	v.check(validator.IsNotZero[T], v.describe("may not be zero"))
	return v
}

func (v *IntegerValidator[T]) IsPositive() *IntegerValidator[T] {
	v.check(validator.IsPositive[T], v.describe("must be positive"))
	return v
}

func (v *IntegerValidator[T]) IsNotPositive() *IntegerValidator[T] {
	v.check(validator.IsNotPositive[T], v.describe("may not be positive"))
	return v
}

// IsMultipleOf requires the value to be divisible by factor. Only zero is a
// multiple of zero.
func (v *IntegerValidator[T]) IsMultipleOf(factor T) *IntegerValidator[T] {
	v.multipleOf(v.isMultipleOf(factor), v.literal(factor), true)
	return v
}

func (v *IntegerValidator[T]) IsMultipleOfNamed(factor T, name string) *IntegerValidator[T] {
	v.multipleOf(v.isMultipleOf(factor), v.named(factor, name), true)
	return v
}

func (v *IntegerValidator[T]) IsNotMultipleOf(factor T) *IntegerValidator[T] {
	v.multipleOf(v.isMultipleOf(factor), v.literal(factor), false)
	return v
}

func (v *IntegerValidator[T]) IsNotMultipleOfNamed(factor T, name string) *IntegerValidator[T] {
	v.multipleOf(v.isMultipleOf(factor), v.named(factor, name), false)
	return v
}

func (v *IntegerValidator[T]) isMultipleOf(factor T) func(T) bool {
	return func(x T) bool { return validator.IsIntMultipleOf(x, factor) }
}
