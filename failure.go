package requirements

import (
	"slices"

	"github.com/dmitrymomot/requirements/pkg/message"
)

// Kind classifies a failure.
type Kind uint8

const (
	// KindViolation marks a value that broke a constraint.
	KindViolation Kind = iota + 1
	// KindNull marks a value that was required but absent.
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindViolation:
		return "violation"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Failure is an immutable record of one failed check.
type Failure struct {
	kind    Kind
	mode    Mode
	subject string
	message string
	context []message.Entry
}

// Message returns the rendered, self-contained failure message.
func (f Failure) Message() string {
	return f.message
}

func (f Failure) Kind() Kind {
	return f.kind
}

// Mode returns the mode of the chain that recorded the failure.
func (f Failure) Mode() Mode {
	return f.mode
}

// Subject returns the name of the validated value.
func (f Failure) Subject() string {
	return f.subject
}

// Context returns the key/value lines rendered below the message sentence.
func (f Failure) Context() []message.Entry {
	return slices.Clone(f.context)
}

// Err returns the failure as an error.
func (f Failure) Err() error {
	return &ValidationError{
		Kind:    f.kind,
		Mode:    f.mode,
		Subject: f.subject,
		Message: f.message,
	}
}

func (f Failure) String() string {
	return f.message
}

// Failures is an ordered list of failures.
type Failures []Failure

func (fs Failures) IsEmpty() bool {
	return len(fs) == 0
}

func (fs Failures) Messages() []string {
	if len(fs) == 0 {
		return nil
	}
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.message
	}
	return out
}

// Has reports whether any failure is of the given kind.
func (fs Failures) Has(kind Kind) bool {
	return slices.ContainsFunc(fs, func(f Failure) bool { return f.kind == kind })
}

// Err returns nil for no failures, the failure's own error for exactly one,
// and a MultipleFailuresError otherwise.
func (fs Failures) Err() error {
	switch len(fs) {
	case 0:
		return nil
	case 1:
		return fs[0].Err()
	default:
		return &MultipleFailuresError{Failures: slices.Clone(fs)}
	}
}
