package requirements

import (
	"github.com/dmitrymomot/requirements/pkg/message"
	"github.com/dmitrymomot/requirements/pkg/target"
)

// MapValidator validates a map. A nil map is an empty map, not a null: it is
// rendered as {}, returned as an empty map and equal to any other empty map.
type MapValidator[K comparable, V any] struct {
	base[map[K]V]
}

func Map[K comparable, V any](s Subject, value map[K]V) *MapValidator[K, V] {
	if value == nil {
		value = map[K]V{}
	}
	return &MapValidator[K, V]{base: newBase(s, target.Valid(value))}
}

func (v *MapValidator[K, V]) WithContext(value any, name string) *MapValidator[K, V] {
	v.withContext(value, name)
	return v
}

func (v *MapValidator[K, V]) equalMaps(a, b map[K]V) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return v.ch.cfg.equality(a, b)
}

func (v *MapValidator[K, V]) IsEqualTo(expected map[K]V) *MapValidator[K, V] {
	v.isEqualTo(expected, v.literal(expected), v.equalMaps, mustBeEqualTo)
	return v
}

func (v *MapValidator[K, V]) IsEqualToNamed(expected map[K]V, name string) *MapValidator[K, V] {
	v.isEqualTo(expected, v.named(expected, name), v.equalMaps, mustBeEqualTo)
	return v
}

func (v *MapValidator[K, V]) IsNotEqualTo(unwanted map[K]V) *MapValidator[K, V] {
	v.isNotEqualTo(unwanted, v.literal(unwanted), v.equalMaps, mayNotBeEqualTo)
	return v
}

func (v *MapValidator[K, V]) IsNotEqualToNamed(unwanted map[K]V, name string) *MapValidator[K, V] {
	v.isNotEqualTo(unwanted, v.named(unwanted, name), v.equalMaps, mayNotBeEqualTo)
	return v
}

func (v *MapValidator[K, V]) IsEmpty() *MapValidator[K, V] {
	v.check(func(m map[K]V) bool { return len(m) == 0 }, v.describe("must be empty"))
	return v
}

func (v *MapValidator[K, V]) IsNotEmpty() *MapValidator[K, V] {
	v.check(func(m map[K]V) bool { return len(m) != 0 }, v.describe("may not be empty"))
	return v
}

func (v *MapValidator[K, V]) ContainsKey(key K) *MapValidator[K, V] {
	v.check(func(m map[K]V) bool { return hasKey(m, key) }, v.describe("must contain the key %s", v.ch.render(key)))
	return v
}

func (v *MapValidator[K, V]) DoesNotContainKey(key K) *MapValidator[K, V] {
	v.check(func(m map[K]V) bool { return !hasKey(m, key) }, v.describe("may not contain the key %s", v.ch.render(key)))
	return v
}

func hasKey[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]
	return ok
}

// Size returns a validator for the number of entries.
func (v *MapValidator[K, V]) Size() *SizeValidator {
	return newSize(&v.base, func(m map[K]V) int { return len(m) }, message.Entries)
}
