package requirements

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrValidation matches every validation failure.
	ErrValidation = errors.New("validation failed")

	// ErrNull matches failures reporting an absent value.
	ErrNull = errors.New("value may not be null")

	// ErrViolation matches failures reporting a value that broke a constraint.
	ErrViolation = errors.New("constraint violated")

	// ErrAssertion matches failures raised by AssertThat chains.
	ErrAssertion = errors.New("assertion failed")

	// ErrConfiguration is the root of all errors caused by a malformed chain.
	// These are programming mistakes and are always raised with panic.
	ErrConfiguration = errors.New("invalid validation chain")

	ErrInvalidName     = fmt.Errorf("%w: invalid name", ErrConfiguration)
	ErrDuplicateName   = fmt.Errorf("%w: duplicate name", ErrConfiguration)
	ErrInvalidBounds   = fmt.Errorf("%w: invalid bounds", ErrConfiguration)
	ErrInvalidArgument = fmt.Errorf("%w: invalid argument", ErrConfiguration)

	// ErrInvalidSettings is returned by LoadConfiguration for unusable environment values.
	ErrInvalidSettings = errors.New("invalid requirements settings")
)

// ValidationError is the error form of a single Failure.
type ValidationError struct {
	Kind    Kind
	Mode    Mode
	Subject string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches ErrValidation, ErrNull or ErrViolation depending on the kind,
// and ErrAssertion for failures of AssertThat chains.
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrValidation:
		return true
	case ErrNull:
		return e.Kind == KindNull
	case ErrViolation:
		return e.Kind == KindViolation
	case ErrAssertion:
		return e.Mode == ModeAssert
	}
	return false
}

// MultipleFailuresError carries every failure of a chain, in the order they
// were recorded.
type MultipleFailuresError struct {
	Failures Failures
}

func (e *MultipleFailuresError) Error() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(e.Failures)))
	sb.WriteString(" validation failures:")
	for i, f := range e.Failures {
		sb.WriteString("\n")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(f.Message())
	}
	return sb.String()
}

func (e *MultipleFailuresError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err()
	}
	return errs
}

// AsValidationError extracts the first ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// AsMultipleFailures extracts a MultipleFailuresError from err.
func AsMultipleFailures(err error) (*MultipleFailuresError, bool) {
	var me *MultipleFailuresError
	if errors.As(err, &me) {
		return me, true
	}
	return nil, false
}

// MessagesOf returns the failure messages carried by err, or nil if err is
// not a validation error.
func MessagesOf(err error) []string {
	if me, ok := AsMultipleFailures(err); ok {
		return me.Failures.Messages()
	}
	if ve, ok := AsValidationError(err); ok {
		return []string{ve.Message}
	}
	return nil
}
