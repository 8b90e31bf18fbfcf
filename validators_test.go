package requirements_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements"
	"github.com/dmitrymomot/requirements/pkg/logger"
)

// panicErr runs fn and returns the error it panicked with, or nil.
func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			require.True(t, ok, "panic value is not an error: %v", r)
			err = e
		}
	}()
	fn()
	return nil
}

func TestModes(t *testing.T) {
	t.Parallel()
	v := requirements.New()

	t.Run("require panics on the first failure", func(t *testing.T) {
		t.Parallel()
		err := panicErr(t, func() {
			requirements.Integer(v.RequireThat("actual"), 10).IsMultipleOf(3).IsEqualTo(5)
		})
		require.Error(t, err)
		assert.Equal(t, "\"actual\" must be a multiple of 3.\nactual: 10", err.Error())
		assert.ErrorIs(t, err, requirements.ErrValidation)
		assert.ErrorIs(t, err, requirements.ErrViolation)
		assert.NotErrorIs(t, err, requirements.ErrAssertion)
	})

	t.Run("require passes silently", func(t *testing.T) {
		t.Parallel()
		got := requirements.Integer(v.RequireThat("actual"), 4).IsMultipleOf(2).IsPositive().Must()
		assert.Equal(t, 4, got)
	})

	t.Run("require reports null", func(t *testing.T) {
		t.Parallel()
		err := panicErr(t, func() {
			requirements.StringPtr(v.RequireThat("actual"), nil).IsNotEmpty()
		})
		require.Error(t, err)
		assert.Equal(t, `"actual" may not be null`, err.Error())
		assert.ErrorIs(t, err, requirements.ErrNull)
	})

	t.Run("check collects", func(t *testing.T) {
		t.Parallel()
		c := requirements.Integer(v.CheckIf("actual"), 10).IsMultipleOf(3).IsEqualTo(5)
		assert.Len(t, c.Failures(), 2)
	})

	t.Run("assert panics while enabled", func(t *testing.T) {
		t.Parallel()
		err := panicErr(t, func() {
			requirements.Bool(v.AssertThat("ready"), false).IsTrue()
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, requirements.ErrAssertion)
		assert.Equal(t, "\"ready\" must be true.\nready: false", err.Error())
	})

	t.Run("assert does nothing while disabled", func(t *testing.T) {
		t.Parallel()
		off := v.With(requirements.WithAssertionsEnabled(false))
		var c *requirements.IntegerValidator[int]
		assert.NotPanics(t, func() {
			c = requirements.Integer(off.AssertThat("actual"), 1).IsZero().IsNegative()
		})
		assert.True(t, c.Failures().IsEmpty())
		assert.NoError(t, c.Err())
	})

	t.Run("disabled assertions still reject malformed chains", func(t *testing.T) {
		t.Parallel()
		off := v.With(requirements.WithAssertionsEnabled(false))
		err := panicErr(t, func() {
			requirements.Integer(off.AssertThat("actual"), 1).IsBetween(2, 1)
		})
		assert.ErrorIs(t, err, requirements.ErrInvalidBounds)
	})

	t.Run("zero subject", func(t *testing.T) {
		t.Parallel()
		err := panicErr(t, func() {
			requirements.Integer(requirements.Subject{}, 1)
		})
		assert.ErrorIs(t, err, requirements.ErrInvalidArgument)
	})
}

func TestNames(t *testing.T) {
	t.Parallel()
	v := requirements.New()

	tests := []struct {
		name string
		fn   func()
		want error
	}{
		{"empty subject", func() { v.CheckIf("") }, requirements.ErrInvalidName},
		{"subject with whitespace", func() { v.CheckIf("my value") }, requirements.ErrInvalidName},
		{"argument with whitespace", func() {
			requirements.Integer(v.CheckIf("actual"), 1).IsEqualToNamed(1, "the expected")
		}, requirements.ErrInvalidName},
		{"argument reuses the subject name", func() {
			requirements.Integer(v.CheckIf("actual"), 1).IsLessThanNamed(2, "actual")
		}, requirements.ErrDuplicateName},
		{"argument names repeat", func() {
			requirements.Integer(v.CheckIf("actual"), 1).IsLessThanNamed(2, "max").IsNotEqualToNamed(3, "max")
		}, requirements.ErrDuplicateName},
		{"context reuses an argument name", func() {
			requirements.Integer(v.CheckIf("actual"), 1).IsLessThanNamed(2, "max").WithContext(5, "max")
		}, requirements.ErrDuplicateName},
		{"configured context reuses the subject name", func() {
			requirements.Integer(v.With(requirements.WithContext(1, "actual")).CheckIf("actual"), 1)
		}, requirements.ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := panicErr(t, tt.fn)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, requirements.ErrConfiguration)
			assert.NotErrorIs(t, err, requirements.ErrValidation)
		})
	}

	t.Run("names are scoped to a chain", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			requirements.Integer(v.CheckIf("actual"), 1).IsEqualToNamed(1, "expected")
			requirements.Integer(v.CheckIf("actual"), 1).IsEqualToNamed(1, "expected")
		})
	})
}

func TestTerminals(t *testing.T) {
	t.Parallel()
	v := requirements.New()

	t.Run("failures are idempotent copies", func(t *testing.T) {
		t.Parallel()
		c := requirements.Integer(v.CheckIf("actual"), 10).IsMultipleOf(3).IsEqualTo(5)
		first := c.Failures()
		second := c.Failures()
		assert.Equal(t, first, second)

		first[0] = requirements.Failure{}
		assert.Equal(t, second, c.Failures())
	})

	t.Run("err of a single failure", func(t *testing.T) {
		t.Parallel()
		err := requirements.Integer(v.CheckIf("actual"), 1).IsZero().Err()
		ve, ok := requirements.AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "actual", ve.Subject)
		assert.Equal(t, requirements.KindViolation, ve.Kind)
		assert.Equal(t, requirements.ModeCheck, ve.Mode)
	})

	t.Run("err of several failures", func(t *testing.T) {
		t.Parallel()
		err := requirements.FloatPtr[float64](v.CheckIf("actual"), nil).IsNumber().Err()
		me, ok := requirements.AsMultipleFailures(err)
		require.True(t, ok)
		assert.Len(t, me.Failures, 2)
		assert.Equal(t, "2 validation failures:\n1. \"actual\" may not be null\n2. \"actual\" must be a well-defined number", err.Error())
		assert.ErrorIs(t, err, requirements.ErrNull)
		assert.ErrorIs(t, err, requirements.ErrViolation)
		assert.Equal(t, []string{`"actual" may not be null`, `"actual" must be a well-defined number`}, requirements.MessagesOf(err))
	})

	t.Run("must panics with err", func(t *testing.T) {
		t.Parallel()
		c := requirements.String(v.CheckIf("actual"), "").IsNotEmpty()
		err := panicErr(t, func() { c.Must() })
		assert.Equal(t, c.Err(), err)
	})

	t.Run("value", func(t *testing.T) {
		t.Parallel()
		got, err := requirements.String(v.CheckIf("actual"), "abc").IsNotEmpty().Value()
		require.NoError(t, err)
		assert.Equal(t, "abc", got)

		_, err = requirements.String(v.CheckIf("actual"), "").IsNotEmpty().Value()
		assert.ErrorIs(t, err, requirements.ErrViolation)
	})

	t.Run("value of an unchecked null", func(t *testing.T) {
		t.Parallel()
		c := requirements.IntegerPtr[int](v.CheckIf("actual"), nil)
		_, err := c.Value()
		assert.ErrorIs(t, err, requirements.ErrNull)
		assert.Equal(t, 7, c.ValueOr(7))
		assert.True(t, c.Failures().IsEmpty())
	})

	t.Run("name", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "actual", requirements.Bool(v.CheckIf("actual"), true).Name())
		assert.Equal(t, "len(actual)", requirements.String(v.CheckIf("actual"), "").Length().Name())
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("chain context", func(t *testing.T) {
		t.Parallel()
		err := requirements.Integer(requirements.New().CheckIf("actual"), 1).
			WithContext("abc", "request").
			IsZero().
			Err()
		assert.EqualError(t, err, "\"actual\" must be zero.\nactual : 1\nrequest: \"abc\"")
	})

	t.Run("context applies to later checks only once added", func(t *testing.T) {
		t.Parallel()
		c := requirements.Integer(requirements.New().CheckIf("actual"), 1).
			IsZero().
			WithContext(2, "extra").
			IsNegative()
		assert.Equal(t, []string{
			"\"actual\" must be zero.\nactual: 1",
			"\"actual\" must be negative.\nactual: 1\nextra : 2",
		}, c.Failures().Messages())
	})

	t.Run("configured context comes last", func(t *testing.T) {
		t.Parallel()
		v := requirements.New(requirements.WithContext(42, "tenant"))
		err := requirements.Integer(v.CheckIf("actual"), 1).
			WithContext(true, "retry").
			IsZero().
			Err()
		assert.EqualError(t, err, "\"actual\" must be zero.\nactual: 1\nretry : true\ntenant: 42")
	})

	t.Run("named arguments precede context", func(t *testing.T) {
		t.Parallel()
		err := requirements.Integer(requirements.New().CheckIf("actual"), 3).
			WithContext("x", "note").
			IsLessThanNamed(2, "max").
			Err()
		assert.EqualError(t, err, "\"actual\" must be less than \"max\".\nactual: 3\nmax   : 2\nnote  : \"x\"")
	})

	t.Run("failure context", func(t *testing.T) {
		t.Parallel()
		fs := requirements.Integer(requirements.New().CheckIf("actual"), 3).IsLessThanNamed(2, "max").Failures()
		require.Len(t, fs, 1)
		ctx := fs[0].Context()
		require.Len(t, ctx, 2)
		assert.Equal(t, "actual", ctx[0].Key)
		assert.Equal(t, "max", ctx[1].Key)
		assert.Equal(t, "2", ctx[1].Value)
	})
}

func TestDefault(t *testing.T) {
	t.Parallel()

	require.NotNil(t, requirements.Default())
	err := panicErr(t, func() {
		requirements.Integer(requirements.RequireThat("actual"), -1).IsNotNegative()
	})
	assert.EqualError(t, err, "\"actual\" may not be negative.\nactual: -1")

	c := requirements.Integer(requirements.CheckIf("actual"), -1).IsNotNegative()
	assert.Len(t, c.Failures(), 1)
	assert.Equal(t, requirements.ModeAssert, requirements.AssertThat("actual").Mode())
}

func TestFailureLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatJSON),
		logger.WithLevel(-4),
	)
	v := requirements.New(requirements.WithLogger(log), requirements.WithContext("req-1", "request_id"))
	requirements.Integer(v.CheckIf("balance"), -5).IsNotNegative()

	out := buf.String()
	assert.Contains(t, out, `"msg":"validation failed"`)
	assert.Contains(t, out, `"subject":"balance"`)
	assert.Contains(t, out, `"kind":"violation"`)
	assert.Contains(t, out, `"mode":"check"`)
	assert.Contains(t, out, `"context":{"balance":"-5","request_id":"\"req-1\""}`)
}

func TestErrorsAreDistinct(t *testing.T) {
	t.Parallel()

	for _, err := range []error{
		requirements.ErrInvalidName,
		requirements.ErrDuplicateName,
		requirements.ErrInvalidBounds,
		requirements.ErrInvalidArgument,
	} {
		assert.True(t, errors.Is(err, requirements.ErrConfiguration), err.Error())
	}
	assert.False(t, errors.Is(requirements.ErrInvalidName, requirements.ErrDuplicateName))
}
