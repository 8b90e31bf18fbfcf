package validator

import "math"

// IsNegative reports whether v is below zero. Negative zero counts as negative.
func IsNegative[T Numeric](v T) bool {
	return v < 0 || (v == 0 && math.Signbit(float64(v)))
}

// IsNotNegative reports whether v is not below zero. NaN and negative zero
// are both accepted.
func IsNotNegative[T Numeric](v T) bool {
	return !(v < 0)
}

// IsZero accepts both signed zeros.
func IsZero[T Numeric](v T) bool {
	return v == 0
}

// IsNotZero rejects both signed zeros and NaN.
func IsNotZero[T Numeric](v T) bool {
	return v != 0 && !isNaN(v)
}

func IsPositive[T Numeric](v T) bool {
	return v > 0
}

// IsNotPositive accepts NaN.
func IsNotPositive[T Numeric](v T) bool {
	return !(v > 0)
}

// IsIntMultipleOf reports whether v is a multiple of factor. Zero is the only
// multiple of zero.
func IsIntMultipleOf[T Integer](v, factor T) bool {
	if factor == 0 {
		return v == 0
	}
	return v%factor == 0
}

// IsFloatMultipleOf reports whether dividing v by factor leaves no remainder.
// Zero is the only multiple of zero; NaN and infinities are never multiples.
func IsFloatMultipleOf[T Float](v, factor T) bool {
	if factor == 0 {
		return v == 0
	}
	return math.Mod(float64(v), float64(factor)) == 0
}

// IsWholeNumber reports whether v has no fractional part. NaN and infinities
// are not whole numbers.
func IsWholeNumber[T Float](v T) bool {
	_, frac := math.Modf(float64(v))
	return frac == 0
}

// IsNumber reports whether v is a well-defined number, i.e. not NaN.
func IsNumber[T Float](v T) bool {
	return !isNaN(v)
}

func IsFinite[T Float](v T) bool {
	f := float64(v)
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func IsInfinite[T Float](v T) bool {
	return math.IsInf(float64(v), 0)
}

// NaN is the only value that is not equal to itself.
func isNaN[T Numeric](v T) bool {
	return v != v
}
