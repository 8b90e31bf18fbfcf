package requirements

import (
	"fmt"

	"github.com/dmitrymomot/requirements/pkg/message"
	"github.com/dmitrymomot/requirements/pkg/target"
	"github.com/dmitrymomot/requirements/pkg/validator"
)

// SliceValidator validates a slice. Elements are compared with the
// configured EqualityFunc. A nil slice is an empty slice, not a null: it is
// rendered as [], returned as an empty slice and equal to any other empty
// slice.
type SliceValidator[E any] struct {
	base[[]E]
}

func Slice[E any](s Subject, value []E) *SliceValidator[E] {
	return &SliceValidator[E]{base: newBase(s, target.Valid(emptyIfNil(value)))}
}

// SlicePtr starts validating an optional slice; a nil pointer is reported as
// null.
func SlicePtr[E any](s Subject, value *[]E) *SliceValidator[E] {
	return &SliceValidator[E]{base: newBase(s, target.Map(target.FromPointer(value), emptyIfNil[E]))}
}

func emptyIfNil[E any](s []E) []E {
	if s == nil {
		return []E{}
	}
	return s
}

func (v *SliceValidator[E]) WithContext(value any, name string) *SliceValidator[E] {
	v.withContext(value, name)
	return v
}

func (v *SliceValidator[E]) equalElements(a, b E) bool {
	return v.ch.cfg.equality(a, b)
}

func (v *SliceValidator[E]) equalSlices(a, b []E) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return v.ch.cfg.equality(a, b)
}

func (v *SliceValidator[E]) IsEqualTo(expected []E) *SliceValidator[E] {
	v.isEqualTo(expected, v.literal(expected), v.equalSlices, mustBeEqualTo)
	return v
}

func (v *SliceValidator[E]) IsEqualToNamed(expected []E, name string) *SliceValidator[E] {
	v.isEqualTo(expected, v.named(expected, name), v.equalSlices, mustBeEqualTo)
	return v
}

func (v *SliceValidator[E]) IsNotEqualTo(unwanted []E) *SliceValidator[E] {
	v.isNotEqualTo(unwanted, v.literal(unwanted), v.equalSlices, mayNotBeEqualTo)
	return v
}

func (v *SliceValidator[E]) IsNotEqualToNamed(unwanted []E, name string) *SliceValidator[E] {
	v.isNotEqualTo(unwanted, v.named(unwanted, name), v.equalSlices, mayNotBeEqualTo)
	return v
}

func (v *SliceValidator[E]) IsEmpty() *SliceValidator[E] {
	v.check(func(s []E) bool { return len(s) == 0 }, v.describe("must be empty"))
	return v
}

func (v *SliceValidator[E]) IsNotEmpty() *SliceValidator[E] {
	v.check(func(s []E) bool { return len(s) != 0 }, v.describe("may not be empty"))
	return v
}

func (v *SliceValidator[E]) Contains(element E) *SliceValidator[E] {
	return v.contains(element, v.literal(element), true)
}

func (v *SliceValidator[E]) ContainsNamed(element E, name string) *SliceValidator[E] {
	return v.contains(element, v.named(element, name), true)
}

func (v *SliceValidator[E]) DoesNotContain(element E) *SliceValidator[E] {
	return v.contains(element, v.literal(element), false)
}

func (v *SliceValidator[E]) DoesNotContainNamed(element E, name string) *SliceValidator[E] {
	return v.contains(element, v.named(element, name), false)
}

func (v *SliceValidator[E]) contains(element E, a arg, want bool) *SliceValidator[E] {
	format := "must contain %s"
	if !want {
		format = "may not contain %s"
	}
	v.check(func(s []E) bool { return validator.Contains(s, element, v.equalElements) == want },
		func() *message.Builder { return v.sentence(format, a.text).WithEntries(a.entries...) })
	return v
}

// ContainsExactly requires the slice to hold the same elements as want, with
// the same multiplicity, in any order.
func (v *SliceValidator[E]) ContainsExactly(want []E) *SliceValidator[E] {
	return v.containsExactly(want, v.literal(want))
}

func (v *SliceValidator[E]) ContainsExactlyNamed(want []E, name string) *SliceValidator[E] {
	return v.containsExactly(want, v.named(want, name))
}

func (v *SliceValidator[E]) containsExactly(want []E, a arg) *SliceValidator[E] {
	v.check(func(s []E) bool { return validator.SameElements(s, want, v.equalElements) },
		func() *message.Builder {
			msg := v.sentence("must consist of the elements %s, regardless of order", a.text).WithEntries(a.entries...)
			v.value.IfValid(func(s []E) {
				if missing := validator.Missing(s, want, v.equalElements); len(missing) > 0 {
					msg.With("missing", v.ch.render(missing))
				}
				if unwanted := validator.Missing(want, s, v.equalElements); len(unwanted) > 0 {
					msg.With("unwanted", v.ch.render(unwanted))
				}
			})
			return msg
		})
	return v
}

func (v *SliceValidator[E]) ContainsAny(want []E) *SliceValidator[E] {
	return v.containsAny(want, v.literal(want))
}

func (v *SliceValidator[E]) ContainsAnyNamed(want []E, name string) *SliceValidator[E] {
	return v.containsAny(want, v.named(want, name))
}

func (v *SliceValidator[E]) containsAny(want []E, a arg) *SliceValidator[E] {
	v.check(func(s []E) bool { return validator.ContainsAny(s, want, v.equalElements) },
		func() *message.Builder {
			return v.sentence("must contain any of %s", a.text).WithEntries(a.entries...)
		})
	return v
}

func (v *SliceValidator[E]) ContainsAll(want []E) *SliceValidator[E] {
	return v.containsAll(want, v.literal(want))
}

func (v *SliceValidator[E]) ContainsAllNamed(want []E, name string) *SliceValidator[E] {
	return v.containsAll(want, v.named(want, name))
}

func (v *SliceValidator[E]) containsAll(want []E, a arg) *SliceValidator[E] {
	v.check(func(s []E) bool { return validator.ContainsAll(s, want, v.equalElements) },
		func() *message.Builder {
			msg := v.sentence("must contain all of %s", a.text).WithEntries(a.entries...)
			v.value.IfValid(func(s []E) {
				msg.With("missing", v.ch.render(validator.Missing(s, want, v.equalElements)))
			})
			return msg
		})
	return v
}

func (v *SliceValidator[E]) DoesNotContainDuplicates() *SliceValidator[E] {
	v.check(func(s []E) bool { return len(validator.Duplicates(s, v.equalElements)) == 0 },
		func() *message.Builder {
			msg := v.sentence("may not contain any duplicate elements")
			v.value.IfValid(func(s []E) {
				msg.With("duplicates", v.ch.render(validator.Duplicates(s, v.equalElements)))
			})
			return msg
		})
	return v
}

// IsSorted requires the elements to be in ascending order under compare.
// Panics if compare is nil.
func (v *SliceValidator[E]) IsSorted(compare func(a, b E) int) *SliceValidator[E] {
	if compare == nil {
		panic(fmt.Errorf("%w: compare may not be nil", ErrInvalidArgument))
	}
	v.check(func(s []E) bool { return validator.IsSorted(s, compare) }, v.describe("must be sorted"))
	return v
}

// Length returns a validator for the number of elements.
func (v *SliceValidator[E]) Length() *SizeValidator {
	return newSize(&v.base, func(s []E) int { return len(s) }, message.Elements)
}
