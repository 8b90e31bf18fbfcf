package target

// State is the lifecycle state of a Target.
type State uint8

const (
	// StateUndefined marks a value that can no longer be inspected, typically
	// because a null was already reported earlier in the chain.
	StateUndefined State = iota
	// StateNull marks an absent value.
	StateNull
	// StateValid marks a present value.
	StateValid
)

func (s State) String() string {
	switch s {
	case StateNull:
		return "null"
	case StateValid:
		return "valid"
	default:
		return "undefined"
	}
}

// Target is an immutable tri-state wrapper around the value under validation.
// The zero Target is undefined.
type Target[T any] struct {
	state State
	value T
}

// Valid wraps a present value.
func Valid[T any](v T) Target[T] {
	return Target[T]{state: StateValid, value: v}
}

// Null returns a target holding no value.
func Null[T any]() Target[T] {
	return Target[T]{state: StateNull}
}

// Undefined returns a target whose value is unknown.
func Undefined[T any]() Target[T] {
	return Target[T]{}
}

// FromPointer returns Null for a nil pointer and Valid(*p) otherwise.
func FromPointer[T any](p *T) Target[T] {
	if p == nil {
		return Null[T]()
	}
	return Valid(*p)
}

func (t Target[T]) State() State {
	return t.state
}

func (t Target[T]) IsNull() bool {
	return t.state == StateNull
}

func (t Target[T]) IsValid() bool {
	return t.state == StateValid
}

// Failed reports whether pred rejects the value. Absent values always fail
// and pred is never invoked for them.
func (t Target[T]) Failed(pred func(T) bool) bool {
	if t.state != StateValid {
		return true
	}
	return !pred(t.value)
}

// NullToUndefined converts a null target into an undefined one. Other states
// are returned unchanged.
func (t Target[T]) NullToUndefined() Target[T] {
	if t.state == StateNull {
		return Undefined[T]()
	}
	return t
}

// Or returns the value when valid and def otherwise.
func (t Target[T]) Or(def T) T {
	if t.state == StateValid {
		return t.value
	}
	return def
}

// OrError returns the value when valid. Otherwise it returns the zero value
// and err.
func (t Target[T]) OrError(err error) (T, error) {
	if t.state == StateValid {
		return t.value, nil
	}
	var zero T
	return zero, err
}

// IfValid invokes fn with the value if the target is valid.
func (t Target[T]) IfValid(fn func(T)) {
	if t.state == StateValid {
		fn(t.value)
	}
}

// Map transforms a valid value. Null and undefined targets keep their state.
func Map[T, R any](t Target[T], fn func(T) R) Target[R] {
	switch t.state {
	case StateValid:
		return Valid(fn(t.value))
	case StateNull:
		return Null[R]()
	default:
		return Undefined[R]()
	}
}
