package requirements_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements"
)

func TestString(t *testing.T) {
	t.Parallel()
	v := requirements.New()

	t.Run("emptiness", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, requirements.String(v.CheckIf("actual"), "").IsEmpty().IsBlank().Failures())
		assert.Empty(t, requirements.String(v.CheckIf("actual"), " \t").IsNotEmpty().IsBlank().Failures())

		c := requirements.String(v.CheckIf("actual"), " ").IsEmpty().IsNotBlank()
		assert.Equal(t, []string{
			"\"actual\" must be empty.\nactual: \" \"",
			"\"actual\" may not be blank.\nactual: \" \"",
		}, c.Failures().Messages())
	})

	t.Run("whitespace", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, requirements.String(v.CheckIf("actual"), "\u2003a").IsTrimmed().Failures())
		assert.Len(t, requirements.String(v.CheckIf("actual"), "\u2003a").IsStripped().Failures(), 1)
		assert.Len(t, requirements.String(v.CheckIf("actual"), " a").IsTrimmed().Failures(), 1)
		assert.Len(t, requirements.String(v.CheckIf("actual"), "a\n").IsTrimmed().Failures(), 1)
		assert.Empty(t, requirements.String(v.CheckIf("actual"), "a b").IsStripped().IsTrimmed().Failures())

		err := requirements.String(v.CheckIf("actual"), "a b").DoesNotContainWhitespace().Err()
		assert.EqualError(t, err, "\"actual\" may not contain whitespace.\nactual: \"a b\"")
	})

	t.Run("substrings", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, requirements.String(v.CheckIf("actual"), "hello world").
			StartsWith("hello").
			DoesNotStartWith("world").
			EndsWith("world").
			DoesNotEndWith("hello").
			Contains("o w").
			DoesNotContain("xyz").
			Failures())

		c := requirements.String(v.CheckIf("actual"), "abc").StartsWith("x").EndsWith("x").Contains("x").DoesNotContain("b")
		assert.Equal(t, []string{
			"\"actual\" must start with \"x\".\nactual: \"abc\"",
			"\"actual\" must end with \"x\".\nactual: \"abc\"",
			"\"actual\" must contain \"x\".\nactual: \"abc\"",
			"\"actual\" may not contain \"b\".\nactual: \"abc\"",
		}, c.Failures().Messages())
	})

	t.Run("patterns match the whole string", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, requirements.String(v.CheckIf("actual"), "abc").Matches("[a-z]+").Failures())

		err := requirements.String(v.CheckIf("actual"), "abc1").Matches("[a-z]+").Err()
		assert.EqualError(t, err, "\"actual\" must match \"[a-z]+\".\nactual: \"abc1\"")

		re := regexp.MustCompile("a.c")
		assert.Empty(t, requirements.String(v.CheckIf("actual"), "abc").MatchesRegexp(re).Failures())
		assert.Len(t, requirements.String(v.CheckIf("actual"), "xabc").MatchesRegexp(re).Failures(), 1)
	})

	t.Run("invalid pattern panics", func(t *testing.T) {
		t.Parallel()
		err := panicErr(t, func() { requirements.String(v.CheckIf("actual"), "abc").Matches("(") })
		assert.ErrorIs(t, err, requirements.ErrInvalidArgument)

		err = panicErr(t, func() { requirements.String(v.CheckIf("actual"), "abc").MatchesRegexp(nil) })
		assert.ErrorIs(t, err, requirements.ErrInvalidArgument)
	})

	t.Run("uuid", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, requirements.String(v.CheckIf("id"), "123e4567-e89b-12d3-a456-426614174000").IsUUID().Failures())

		err := requirements.String(v.CheckIf("id"), "not-a-uuid").IsUUID().Err()
		assert.EqualError(t, err, "\"id\" must be a valid UUID.\nid: \"not-a-uuid\"")
	})

	t.Run("choices", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, requirements.String(v.CheckIf("actual"), "b").IsOneOf("a", "b").IsNotOneOf("c").Failures())

		err := requirements.String(v.CheckIf("actual"), "c").IsOneOf("a", "b").Err()
		assert.EqualError(t, err, "\"actual\" must be one of [\"a\",\"b\"].\nactual: \"c\"")
	})

	t.Run("equality", func(t *testing.T) {
		t.Parallel()
		err := requirements.String(v.CheckIf("actual"), "abc").IsEqualToNamed("abd", "expected").Err()
		assert.EqualError(t, err, "\"actual\" must be equal to \"expected\".\nactual  : \"abc\"\nexpected: \"abd\"")

		err = requirements.String(v.CheckIf("actual"), "abc").IsNotEqualTo("abc").Err()
		assert.EqualError(t, err, "\"actual\" may not be equal to \"abc\".\nactual: \"abc\"")
	})

	t.Run("multi-line strings are diffed", func(t *testing.T) {
		t.Parallel()
		err := requirements.String(v.CheckIf("actual"), "a\nb").IsEqualTo("a\nc").Err()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "\ndiff  : --- Expected\n")
		assert.Contains(t, err.Error(), "-c")
		assert.Contains(t, err.Error(), "+b")

		off := v.With(requirements.WithDiff(false))
		err = requirements.String(off.CheckIf("actual"), "a\nb").IsEqualTo("a\nc").Err()
		assert.NotContains(t, err.Error(), "diff")
	})

	t.Run("null", func(t *testing.T) {
		t.Parallel()
		c := requirements.StringPtr(v.CheckIf("actual"), nil).IsNotEmpty().StartsWith("a")
		assert.Equal(t, []string{
			`"actual" may not be null`,
			`"actual" may not be empty`,
			`"actual" must start with "a"`,
		}, c.Failures().Messages())
	})
}
