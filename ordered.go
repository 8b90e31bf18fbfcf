package requirements

import (
	"cmp"
	"fmt"

	"github.com/dmitrymomot/requirements/pkg/target"
)

// OrderedValidator validates any value with a natural order, such as a rune
// or a string compared lexically. Values are ordered by cmp.Compare, so for
// floating-point types -0 equals +0 and NaN sorts below every other value.
// Use Float for the sign-aware order and NaN handling of FloatValidator.
type OrderedValidator[T cmp.Ordered] struct {
	base[T]
}

func Ordered[T cmp.Ordered](s Subject, value T) *OrderedValidator[T] {
	return &OrderedValidator[T]{base: newBase(s, target.Valid(value))}
}

func OrderedPtr[T cmp.Ordered](s Subject, value *T) *OrderedValidator[T] {
	return &OrderedValidator[T]{base: newBase(s, target.FromPointer(value))}
}

func equalOrdered[T cmp.Ordered](a, b T) bool { return cmp.Compare(a, b) == 0 }

// isUnordered reports whether x is a floating-point NaN.
func isUnordered[T cmp.Ordered](x T) bool { return x != x }

func (v *OrderedValidator[T]) WithContext(value any, name string) *OrderedValidator[T] {
	v.withContext(value, name)
	return v
}

func (v *OrderedValidator[T]) IsEqualTo(expected T) *OrderedValidator[T] {
	v.isEqualTo(expected, v.literal(expected), equalOrdered[T], mustBeEqualTo)
	return v
}

func (v *OrderedValidator[T]) IsEqualToNamed(expected T, name string) *OrderedValidator[T] {
	v.isEqualTo(expected, v.named(expected, name), equalOrdered[T], mustBeEqualTo)
	return v
}

func (v *OrderedValidator[T]) IsNotEqualTo(unwanted T) *OrderedValidator[T] {
	v.isNotEqualTo(unwanted, v.literal(unwanted), equalOrdered[T], mayNotBeEqualTo)
	return v
}

func (v *OrderedValidator[T]) IsNotEqualToNamed(unwanted T, name string) *OrderedValidator[T] {
	v.isNotEqualTo(unwanted, v.named(unwanted, name), equalOrdered[T], mayNotBeEqualTo)
	return v
}

func (v *OrderedValidator[T]) IsLessThan(bound T) *OrderedValidator[T] {
	v.compareTo(bound, v.literal(bound), cmp.Compare[T], isLess, mustBeLessThan)
	return v
}

func (v *OrderedValidator[T]) IsLessThanNamed(bound T, name string) *OrderedValidator[T] {
	v.compareTo(bound, v.named(bound, name), cmp.Compare[T], isLess, mustBeLessThan)
	return v
}

func (v *OrderedValidator[T]) IsLessThanOrEqualTo(bound T) *OrderedValidator[T] {
	v.compareTo(bound, v.literal(bound), cmp.Compare[T], isLessOrEqual, mustBeLessThanOrEqual)
	return v
}

func (v *OrderedValidator[T]) IsLessThanOrEqualToNamed(bound T, name string) *OrderedValidator[T] {
	v.compareTo(bound, v.named(bound, name), cmp.Compare[T], isLessOrEqual, mustBeLessThanOrEqual)
	return v
}

func (v *OrderedValidator[T]) IsGreaterThan(bound T) *OrderedValidator[T] {
	v.compareTo(bound, v.literal(bound), cmp.Compare[T], isGreater, mustBeGreaterThan)
	return v
}

func (v *OrderedValidator[T]) IsGreaterThanNamed(bound T, name string) *OrderedValidator[T] {
	v.compareTo(bound, v.named(bound, name), cmp.Compare[T], isGreater, mustBeGreaterThan)
	return v
}

func (v *OrderedValidator[T]) IsGreaterThanOrEqualTo(bound T) *OrderedValidator[T] {
	v.compareTo(bound, v.literal(bound), cmp.Compare[T], isGreaterOrEqual, mustBeGreaterThanOrEqual)
	return v
}

func (v *OrderedValidator[T]) IsGreaterThanOrEqualToNamed(bound T, name string) *OrderedValidator[T] {
	v.compareTo(bound, v.named(bound, name), cmp.Compare[T], isGreaterOrEqual, mustBeGreaterThanOrEqual)
	return v
}

// IsBetween requires min <= value < max.
func (v *OrderedValidator[T]) IsBetween(min, max T) *OrderedValidator[T] {
	return v.IsBetweenBounds(min, true, max, false)
}

// IsBetweenBounds requires the value to lie between min and max with the
// given inclusivity. Panics if either bound is NaN or the bounds cannot hold
// any value.
func (v *OrderedValidator[T]) IsBetweenBounds(min T, minInclusive bool, max T, maxInclusive bool) *OrderedValidator[T] {
	if isUnordered(min) || isUnordered(max) {
		panic(fmt.Errorf("%w: bounds may not be NaN", ErrInvalidArgument))
	}
	v.between(min, max, minInclusive, maxInclusive, cmp.Compare[T], mustBeBetween, "")
	return v
}
