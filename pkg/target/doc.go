// Package target models the value under validation as an explicit tri-state
// sum type: undefined, null or valid.
//
// A Target never exposes its value to a predicate unless it is valid, which
// lets validators treat absence as a failure trigger of its own instead of
// repeating nil checks at each call site.
//
//	t := target.FromPointer(ptr)      // nil pointer -> null
//	if t.Failed(isPositive) { ... }   // true for null and undefined
//	t = t.NullToUndefined()           // null already reported
//	n := target.Map(t, utf8.RuneCountInString)
//
// Targets are immutable values; every transformation returns a new Target.
package target
