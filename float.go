package requirements

import (
	"fmt"

	"github.com/dmitrymomot/requirements/pkg/target"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// FloatValidator validates a floating-point value.
//
// Equality and ordering use a total order in which negative zero is less than
// positive zero and NaN is greater than every other value and equal to itself.
// Negative zero is both zero and negative; NaN is neither negative, zero nor
// positive, yet it is accepted by IsNotNegative and IsNotPositive.
type FloatValidator[T validator.Float] struct {
	base[T]
}

// Float starts validating a floating-point number.
func Float[T validator.Float](s Subject, value T) *FloatValidator[T] {
	return &FloatValidator[T]{base: newBase(s, target.Valid(value))}
}

// FloatPtr starts validating an optional floating-point number; nil is
// reported as null.
func FloatPtr[T validator.Float](s Subject, value *T) *FloatValidator[T] {
	return &FloatValidator[T]{base: newBase(s, target.FromPointer(value))}
}

// WithContext adds a named line to every failure message of the chain.
func (v *FloatValidator[T]) WithContext(value any, name string) *FloatValidator[T] {
	v.withContext(value, name)
	return v
}

func (v *FloatValidator[T]) IsEqualTo(expected T) *FloatValidator[T] {
	v.isEqualTo(expected, v.literal(expected), validator.EqualFloat[T], mustBeEqualTo)
	return v
}

func (v *FloatValidator[T]) IsEqualToNamed(expected T, name string) *FloatValidator[T] {
	v.isEqualTo(expected, v.named(expected, name), validator.EqualFloat[T], mustBeEqualTo)
	return v
}

func (v *FloatValidator[T]) IsNotEqualTo(unwanted T) *FloatValidator[T] {
	v.isNotEqualTo(unwanted, v.literal(unwanted), validator.EqualFloat[T], mayNotBeEqualTo)
	return v
}

func (v *FloatValidator[T]) IsNotEqualToNamed(unwanted T, name string) *FloatValidator[T] {
	v.isNotEqualTo(unwanted, v.named(unwanted, name), validator.EqualFloat[T], mayNotBeEqualTo)
	return v
}

func (v *FloatValidator[T]) IsLessThan(bound T) *FloatValidator[T] {
	v.compareTo(bound, v.literal(bound), validator.CompareFloat[T], isLess, mustBeLessThan)
	return v
}

func (v *FloatValidator[T]) IsLessThanNamed(bound T, name string) *FloatValidator[T] {
	v.compareTo(bound, v.named(bound, name), validator.CompareFloat[T], isLess, mustBeLessThan)
	return v
}

func (v *FloatValidator[T]) IsLessThanOrEqualTo(bound T) *FloatValidator[T] {
	v.compareTo(bound, v.literal(bound), validator.CompareFloat[T], isLessOrEqual, mustBeLessThanOrEqual)
	return v
}

func (v *FloatValidator[T]) IsLessThanOrEqualToNamed(bound T, name string) *FloatValidator[T] {
	v.compareTo(bound, v.named(bound, name), validator.CompareFloat[T], isLessOrEqual, mustBeLessThanOrEqual)
	return v
}

func (v *FloatValidator[T]) IsGreaterThan(bound T) *FloatValidator[T] {
	v.compareTo(bound, v.literal(bound), validator.CompareFloat[T], isGreater, mustBeGreaterThan)
	return v
}

func (v *FloatValidator[T]) IsGreaterThanNamed(bound T, name string) *FloatValidator[T] {
	v.compareTo(bound, v.named(bound, name), validator.CompareFloat[T], isGreater, mustBeGreaterThan)
	return v
}

func (v *FloatValidator[T]) IsGreaterThanOrEqualTo(bound T) *FloatValidator[T] {
	v.compareTo(bound, v.literal(bound), validator.CompareFloat[T], isGreaterOrEqual, mustBeGreaterThanOrEqual)
	return v
}

func (v *FloatValidator[T]) IsGreaterThanOrEqualToNamed(bound T, name string) *FloatValidator[T] {
	v.compareTo(bound, v.named(bound, name), validator.CompareFloat[T], isGreaterOrEqual, mustBeGreaterThanOrEqual)
	return v
}

// IsBetween requires min <= value < max. Panics if min >= max or either
// bound is NaN.
func (v *FloatValidator[T]) IsBetween(min, max T) *FloatValidator[T] {
	return v.IsBetweenBounds(min, true, max, false)
}

// IsBetweenBounds requires the value to lie between min and max with the
// given inclusivity. Panics if either bound is NaN or the bounds cannot hold
// any value.
func (v *FloatValidator[T]) IsBetweenBounds(min T, minInclusive bool, max T, maxInclusive bool) *FloatValidator[T] {
	if !validator.IsNumber(min) || !validator.IsNumber(max) {
		panic(fmt.Errorf("%w: bounds may not be NaN", ErrInvalidArgument))
	}
	v.between(min, max, minInclusive, maxInclusive, validator.CompareFloat[T], mustBeBetween, "")
	return v
}

func (v *FloatValidator[T]) IsNegative() *FloatValidator[T] {
	v.check(validator.IsNegative[T], v.describe("must be negative"))
	return v
}

func (v *FloatValidator[T]) IsNotNegative() *FloatValidator[T] {
	v.check(validator.IsNotNegative[T], v.describe("may not be negative"))
	return v
}

func (v *FloatValidator[T]) IsZero() *FloatValidator[T] {
	v.check(validator.IsZero[T], v.describe("must be zero"))
	return v
}

func (v *FloatValidator[T]) IsNotZero() *FloatValidator[T] {
	v.check(validator.IsNotZero[T], v.describe("may not be zero"))
	return v
}

func (v *FloatValidator[T]) IsPositive() *FloatValidator[T] {
	v.check(validator.IsPositive[T], v.describe("must be positive"))
	return v
}

func (v *FloatValidator[T]) IsNotPositive() *FloatValidator[T] {
	v.check(validator.IsNotPositive[T], v.describe("may not be positive"))
	return v
}

// IsMultipleOf requires value / factor to leave no remainder. Only zero is a
// multiple of zero.
func (v *FloatValidator[T]) IsMultipleOf(factor T) *FloatValidator[T] {
	v.multipleOf(v.isMultipleOf(factor), v.literal(factor), true)
	return v
}

func (v *FloatValidator[T]) IsMultipleOfNamed(factor T, name string) *FloatValidator[T] {
	v.multipleOf(v.isMultipleOf(factor), v.named(factor, name), true)
	return v
}

func (v *FloatValidator[T]) IsNotMultipleOf(factor T) *FloatValidator[T] {
	v.multipleOf(v.isMultipleOf(factor), v.literal(factor), false)
	return v
}

func (v *FloatValidator[T]) IsNotMultipleOfNamed(factor T, name string) *FloatValidator[T] {
	v.multipleOf(v.isMultipleOf(factor), v.named(factor, name), false)
	return v
}

func (v *FloatValidator[T]) isMultipleOf(factor T) func(T) bool {
	return func(x T) bool { return validator.IsFloatMultipleOf(x, factor) }
}

// IsNumber rejects NaN.
func (v *FloatValidator[T]) IsNumber() *FloatValidator[T] {
	v.check(validator.IsNumber[T], v.describe("must be a well-defined number"))
	return v
}

// IsNotNumber requires NaN.
func (v *FloatValidator[T]) IsNotNumber() *FloatValidator[T] {
	v.check(func(x T) bool { return !validator.IsNumber(x) }, v.describe("may not be a well-defined number"))
	return v
}

func (v *FloatValidator[T]) IsFinite() *FloatValidator[T] {
	v.check(validator.IsFinite[T], v.describe("must be a finite number"))
	return v
}

func (v *FloatValidator[T]) IsInfinite() *FloatValidator[T] {
	v.check(validator.IsInfinite[T], v.describe("must be an infinite number"))
	return v
}

// IsWholeNumber requires a value without a fractional part. NaN and
// infinities are not whole numbers.
func (v *FloatValidator[T]) IsWholeNumber() *FloatValidator[T] {
	v.check(validator.IsWholeNumber[T], v.describe("must be a whole number"))
	return v
}

func (v *FloatValidator[T]) IsNotWholeNumber() *FloatValidator[T] {
	v.check(func(x T) bool { return !validator.IsWholeNumber(x) }, v.describe("may not be a whole number"))
	return v
}
