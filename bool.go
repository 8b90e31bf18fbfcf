package requirements

import "github.com/dmitrymomot/requirements/pkg/target"

type BoolValidator struct {
	base[bool]
}

func Bool(s Subject, value bool) *BoolValidator {
	return &BoolValidator{base: newBase(s, target.Valid(value))}
}

// BoolPtr starts validating an optional bool; nil is reported as null.
func BoolPtr(s Subject, value *bool) *BoolValidator {
	return &BoolValidator{base: newBase(s, target.FromPointer(value))}
}

func equalBools(a, b bool) bool { return a == b }

func (v *BoolValidator) WithContext(value any, name string) *BoolValidator {
	v.withContext(value, name)
	return v
}

func (v *BoolValidator) IsTrue() *BoolValidator {
	v.check(func(b bool) bool { return b }, v.describe("must be true"))
	return v
}

func (v *BoolValidator) IsFalse() *BoolValidator {
	v.check(func(b bool) bool { return !b }, v.describe("must be false"))
	return v
}

func (v *BoolValidator) IsEqualTo(expected bool) *BoolValidator {
	v.isEqualTo(expected, v.literal(expected), equalBools, mustBeEqualTo)
	return v
}

func (v *BoolValidator) IsEqualToNamed(expected bool, name string) *BoolValidator {
	v.isEqualTo(expected, v.named(expected, name), equalBools, mustBeEqualTo)
	return v
}

func (v *BoolValidator) IsNotEqualTo(unwanted bool) *BoolValidator {
	v.isNotEqualTo(unwanted, v.literal(unwanted), equalBools, mayNotBeEqualTo)
	return v
}

func (v *BoolValidator) IsNotEqualToNamed(unwanted bool, name string) *BoolValidator {
	v.isNotEqualTo(unwanted, v.named(unwanted, name), equalBools, mayNotBeEqualTo)
	return v
}
