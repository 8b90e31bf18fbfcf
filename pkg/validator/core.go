package validator

// Integer is satisfied by every integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is satisfied by every floating-point type.
type Float interface {
	~float32 | ~float64
}

type Numeric interface {
	Integer | Float
}

// EqualFunc reports whether two values are considered equal.
type EqualFunc[T any] func(a, b T) bool

// CompareFunc returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type CompareFunc[T any] func(a, b T) int
