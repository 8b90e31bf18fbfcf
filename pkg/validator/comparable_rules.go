package validator

import (
	"fmt"
	"math"
)

// CompareFloat orders floating-point values totally: negative zero sorts
// before positive zero and NaN sorts after every other value, including
// positive infinity. Two NaNs compare equal.
func CompareFloat[T Float](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	}

	aNeg, bNeg := math.Signbit(float64(a)), math.Signbit(float64(b))
	switch {
	case aNeg == bNeg:
		return 0
	case aNeg:
		return -1
	default:
		return 1
	}
}

// EqualFloat reports whether a and b are the same value under CompareFloat.
func EqualFloat[T Float](a, b T) bool {
	return CompareFloat(a, b) == 0
}

// InRange reports whether v lies between min and max with the given
// inclusivity on each end.
func InRange[T any](v, min, max T, minInclusive, maxInclusive bool, compare CompareFunc[T]) bool {
	lo := compare(v, min)
	if lo < 0 || (lo == 0 && !minInclusive) {
		return false
	}
	hi := compare(v, max)
	return hi < 0 || (hi == 0 && maxInclusive)
}

// CheckBounds returns ErrInvalidBounds unless the range [min, max] can hold at
// least one value. A degenerate range is only allowed when both ends are
// inclusive.
func CheckBounds[T any](min, max T, minInclusive, maxInclusive bool, compare CompareFunc[T]) error {
	c := compare(min, max)
	if minInclusive && maxInclusive {
		if c > 0 {
			return fmt.Errorf("%w: min (%v) must be less than or equal to max (%v)", ErrInvalidBounds, min, max)
		}
		return nil
	}
	if c >= 0 {
		return fmt.Errorf("%w: min (%v) must be less than max (%v)", ErrInvalidBounds, min, max)
	}
	return nil
}
