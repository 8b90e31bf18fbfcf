package requirements

import (
	"cmp"

	"github.com/dmitrymomot/requirements/pkg/message"
	"github.com/dmitrymomot/requirements/pkg/target"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// SizeValidator validates the length of a string, slice or map. It shares the
// chain of the validator it was derived from, so failures of both end up in
// the same list.
type SizeValidator struct {
	base[int]
	unit message.Pluralizer
}

// newSize derives a size validator from parent. A null parent is reported
// right away; the size is then undefined and every check on it fails.
func newSize[T any](parent *base[T], size func(T) int, unit message.Pluralizer) *SizeValidator {
	if !parent.ch.disabled {
		parent.failOnNull()
	}

	name := "len(" + parent.name + ")"
	parent.ch.reserve(name)

	s := &SizeValidator{
		base: base[int]{
			ch:    parent.ch,
			name:  name,
			label: parent.label,
			value: target.Map(parent.value, size),
		},
		unit: unit,
	}
	parent.value.IfValid(func(v T) {
		s.parent = []message.Entry{{Key: parent.name, Value: parent.ch.render(v)}}
	})
	return s
}

func (v *SizeValidator) WithContext(value any, name string) *SizeValidator {
	v.withContext(value, name)
	return v
}

func (v *SizeValidator) count(n int) arg {
	return arg{text: v.unit.Format(n)}
}

func (v *SizeValidator) namedCount(n int, name string) arg {
	a := v.named(n, name)
	a.text += " " + v.unit.Noun(n)
	return a
}

func equalSizes(a, b int) bool { return a == b }

func (v *SizeValidator) IsEqualTo(expected int) *SizeValidator {
	v.isEqualTo(expected, v.count(expected), equalSizes, "must contain exactly %s")
	return v
}

func (v *SizeValidator) IsEqualToNamed(expected int, name string) *SizeValidator {
	v.isEqualTo(expected, v.namedCount(expected, name), equalSizes, "must contain exactly %s")
	return v
}

func (v *SizeValidator) IsNotEqualTo(unwanted int) *SizeValidator {
	v.isNotEqualTo(unwanted, v.count(unwanted), equalSizes, "may not contain exactly %s")
	return v
}

func (v *SizeValidator) IsNotEqualToNamed(unwanted int, name string) *SizeValidator {
	v.isNotEqualTo(unwanted, v.namedCount(unwanted, name), equalSizes, "may not contain exactly %s")
	return v
}

func (v *SizeValidator) IsLessThan(bound int) *SizeValidator {
	v.compareTo(bound, v.count(bound), cmp.Compare[int], isLess, "must contain less than %s")
	return v
}

func (v *SizeValidator) IsLessThanNamed(bound int, name string) *SizeValidator {
	v.compareTo(bound, v.namedCount(bound, name), cmp.Compare[int], isLess, "must contain less than %s")
	return v
}

func (v *SizeValidator) IsLessThanOrEqualTo(bound int) *SizeValidator {
	v.compareTo(bound, v.count(bound), cmp.Compare[int], isLessOrEqual, "must contain at most %s")
	return v
}

func (v *SizeValidator) IsLessThanOrEqualToNamed(bound int, name string) *SizeValidator {
	v.compareTo(bound, v.namedCount(bound, name), cmp.Compare[int], isLessOrEqual, "must contain at most %s")
	return v
}

func (v *SizeValidator) IsGreaterThan(bound int) *SizeValidator {
	v.compareTo(bound, v.count(bound), cmp.Compare[int], isGreater, "must contain more than %s")
	return v
}

func (v *SizeValidator) IsGreaterThanNamed(bound int, name string) *SizeValidator {
	v.compareTo(bound, v.namedCount(bound, name), cmp.Compare[int], isGreater, "must contain more than %s")
	return v
}

func (v *SizeValidator) IsGreaterThanOrEqualTo(bound int) *SizeValidator {
	v.compareTo(bound, v.count(bound), cmp.Compare[int], isGreaterOrEqual, "must contain at least %s")
	return v
}

func (v *SizeValidator) IsGreaterThanOrEqualToNamed(bound int, name string) *SizeValidator {
	v.compareTo(bound, v.namedCount(bound, name), cmp.Compare[int], isGreaterOrEqual, "must contain at least %s")
	return v
}

// IsBetween requires min <= size < max.
func (v *SizeValidator) IsBetween(min, max int) *SizeValidator {
	return v.IsBetweenBounds(min, true, max, false)
}

func (v *SizeValidator) IsBetweenBounds(min int, minInclusive bool, max int, maxInclusive bool) *SizeValidator {
	v.between(min, max, minInclusive, maxInclusive, cmp.Compare[int],
		"must contain between %s (%s) and %s (%s)", " "+v.unit.Noun(max))
	return v
}

func (v *SizeValidator) IsNegative() *SizeValidator {
	v.check(validator.IsNegative[int], v.describe("must contain a negative number of %s", v.unit.Noun(2)))
	return v
}

func (v *SizeValidator) IsNotNegative() *SizeValidator {
	v.check(validator.IsNotNegative[int], v.describe("may not contain a negative number of %s", v.unit.Noun(2)))
	return v
}

func (v *SizeValidator) IsZero() *SizeValidator {
	v.check(validator.IsZero[int], v.describe("must be empty"))
	return v
}

func (v *SizeValidator) IsNotZero() *SizeValidator {
	v.check(validator.IsNotZero[int], v.describe("may not be empty"))
	return v
}

func (v *SizeValidator) IsPositive() *SizeValidator {
	v.check(validator.IsPositive[int], v.describe("may not be empty"))
	return v
}

func (v *SizeValidator) IsNotPositive() *SizeValidator {
	v.check(validator.IsNotPositive[int], v.describe("must be empty"))
	return v
}
