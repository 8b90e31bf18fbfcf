package requirements

import (
	"github.com/dmitrymomot/requirements/pkg/target"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// ObjectValidator validates a value of any type with the configured
// EqualityFunc. Nil interfaces, pointers, maps, slices, funcs and channels
// are null.
type ObjectValidator[T any] struct {
	base[T]
}

func Object[T any](s Subject, value T) *ObjectValidator[T] {
	t := target.Valid(value)
	if isNil(value) {
		t = target.Null[T]()
	}
	return &ObjectValidator[T]{base: newBase(s, t)}
}

func (v *ObjectValidator[T]) WithContext(value any, name string) *ObjectValidator[T] {
	v.withContext(value, name)
	return v
}

func (v *ObjectValidator[T]) equal(a, b T) bool {
	return v.ch.cfg.equality(a, b)
}

// IsNull requires the value to be absent.
func (v *ObjectValidator[T]) IsNull() *ObjectValidator[T] {
	if v.ch.disabled || !v.value.IsValid() {
		return v
	}
	v.fail(KindViolation, v.sentence("must be null"))
	return v
}

// IsNotNull reports a null value. It records nothing if the null was already
// reported by an earlier check.
func (v *ObjectValidator[T]) IsNotNull() *ObjectValidator[T] {
	if !v.ch.disabled {
		v.failOnNull()
	}
	return v
}

// IsEqualTo compares with the configured EqualityFunc. A nil expected value
// is the same as IsNull.
func (v *ObjectValidator[T]) IsEqualTo(expected T) *ObjectValidator[T] {
	if isNil(expected) {
		return v.IsNull()
	}
	v.isEqualTo(expected, v.literal(expected), v.equal, mustBeEqualTo)
	return v
}

func (v *ObjectValidator[T]) IsEqualToNamed(expected T, name string) *ObjectValidator[T] {
	a := v.named(expected, name)
	if isNil(expected) {
		return v.IsNull()
	}
	v.isEqualTo(expected, a, v.equal, mustBeEqualTo)
	return v
}

// IsNotEqualTo compares with the configured EqualityFunc. A nil unwanted
// value is the same as IsNotNull.
func (v *ObjectValidator[T]) IsNotEqualTo(unwanted T) *ObjectValidator[T] {
	if isNil(unwanted) {
		return v.IsNotNull()
	}
	v.isNotEqualTo(unwanted, v.literal(unwanted), v.equal, mayNotBeEqualTo)
	return v
}

func (v *ObjectValidator[T]) IsNotEqualToNamed(unwanted T, name string) *ObjectValidator[T] {
	a := v.named(unwanted, name)
	if isNil(unwanted) {
		return v.IsNotNull()
	}
	v.isNotEqualTo(unwanted, a, v.equal, mayNotBeEqualTo)
	return v
}

func (v *ObjectValidator[T]) IsOneOf(choices ...T) *ObjectValidator[T] {
	v.check(func(x T) bool { return validator.OneOf(x, choices, v.equal) },
		v.describe("must be one of %s", v.ch.render(choices)))
	return v
}

func (v *ObjectValidator[T]) IsNotOneOf(choices ...T) *ObjectValidator[T] {
	v.check(func(x T) bool { return !validator.OneOf(x, choices, v.equal) },
		v.describe("may not be one of %s", v.ch.render(choices)))
	return v
}
