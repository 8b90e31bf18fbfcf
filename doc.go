// Package requirements provides fluent, type-safe validation of preconditions,
// postconditions and user input.
//
// A chain starts with a Subject that names the value and selects how failures
// are reported, and a family constructor that binds the value:
//
//	requirements.Float(requirements.RequireThat("price"), price).
//		IsNumber().
//		IsPositive()
//
// Key Features:
//
//   - One generic validator per family (Integer, Float, Ordered, String, Bool,
//     Slice, Map, Object, Addr) instead of one type per width
//   - Three modes: RequireThat panics, CheckIf collects, AssertThat panics
//     only while assertions are enabled
//   - Self-contained English messages with aligned context lines and diffs
//   - Environment-driven defaults through LoadConfiguration
//
// # Modes
//
// RequireThat panics with a *ValidationError on the first failed check. It is
// meant for preconditions whose failure is a programming error.
//
// CheckIf never panics because of the validated value. Every failed check is
// recorded and the chain keeps going:
//
//	v := requirements.String(requirements.CheckIf("username"), name).
//		IsNotBlank().
//		DoesNotContainWhitespace()
//	v.Length().IsBetween(3, 33)
//	if err := v.Err(); err != nil {
//		return err
//	}
//
// AssertThat behaves like RequireThat, and its errors also match
// ErrAssertion. With assertions disabled (WithAssertionsEnabled(false) or
// REQUIREMENTS_ASSERTIONS_ENABLED=false) the chain performs no checks at all.
//
// # Absent values
//
// Pointer constructors such as FloatPtr and StringPtr, Object and Addr accept
// values that may be absent. The first check that meets an absent value
// reports "may not be null" once, then the check's own failure. Later checks
// fail without repeating the null:
//
//	v := requirements.FloatPtr(requirements.CheckIf("actual"), nil).
//		IsNumber().
//		IsEqualTo(5)
//	v.Failures().Messages()
//	// "actual" may not be null
//	// "actual" must be a well-defined number
//	// "actual" must be equal to 5
//
// # Messages
//
// A message is a sentence followed by a context block. The block lists the
// actual value, named arguments, lines added with WithContext and, for
// equality failures, a diff or the types of both sides:
//
//	"actual" must be a multiple of 3.
//	actual: 10
//
// # Configuration
//
// Validators carry an immutable Configuration. New applies options to
// DefaultConfiguration; Default builds the process-wide validators from the
// environment on first use:
//
//	v := requirements.New(
//		requirements.WithStringConverter(requirements.YAMLStringConverter),
//		requirements.WithContext(requestID, "request_id"),
//	)
//
// # Error Handling
//
// Failures of the validated value are *ValidationError values matching
// ErrValidation and either ErrNull or ErrViolation. Several failures are
// joined in a *MultipleFailuresError. Mistakes in the chain itself, such as
// a duplicate name or bounds that cannot hold a value, always panic with an
// error wrapping ErrConfiguration.
package requirements
