// Package validator provides the generic, stateless predicates behind the
// fluent validators of the requirements package: sign and multiple checks for
// numbers, a total order for floating-point values, range and bounds checks,
// string shape checks, collection membership and UUID parsing.
//
// # Architecture
//
// Each source file groups a family of predicates (`numeric_rules.go`,
// `comparable_rules.go`, `string_rules.go`, `collection_rules.go`, etc.).
// Predicates are plain functions over values; none of them allocate state or
// know about names, messages or configuration, so they are safe for
// concurrent use.
//
// Numeric predicates are instantiated over the Integer, Float and Numeric
// constraints instead of being duplicated per width:
//
//	validator.IsNegative(math.Copysign(0, -1)) // true: negative zero is negative
//	validator.IsNotPositive(math.NaN())        // true: NaN is not ordered
//	validator.CompareFloat(math.NaN(), 1)      // 1: NaN sorts last
//
// # Floating-point edge cases
//
// Negative zero satisfies IsZero, IsNegative, IsNotNegative and IsNotPositive.
// NaN satisfies only IsNotNegative and IsNotPositive among the sign checks.
//
// # Error Handling
//
// CheckBounds and CompileFull report caller mistakes through the sentinel
// errors ErrInvalidBounds and ErrInvalidPattern, which can be matched with
// errors.Is.
package validator
