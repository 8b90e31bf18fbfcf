package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/requirements/pkg/validator"
)

func TestIsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsBlank(""))
	assert.True(t, validator.IsBlank(" \t\n"))
	assert.True(t, validator.IsBlank(" "))
	assert.False(t, validator.IsBlank(" a "))
}

func TestIsTrimmed(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsTrimmed(""))
	assert.True(t, validator.IsTrimmed("a b"))
	assert.False(t, validator.IsTrimmed(" a"))
	assert.False(t, validator.IsTrimmed("a\x00"))
	assert.True(t, validator.IsTrimmed("\u2003a"), "unicode spaces are above U+0020")
}

func TestIsStripped(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsStripped("a b"))
	assert.False(t, validator.IsStripped(" a"))
	assert.False(t, validator.IsStripped("a\n"))
	assert.True(t, validator.IsStripped("a\x00"), "NUL is not whitespace")
}

func TestLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, validator.Length(""))
	assert.Equal(t, 3, validator.Length("abc"))
	assert.Equal(t, 2, validator.Length("é😀"))
}

func TestContainsWhitespace(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.ContainsWhitespace("abc"))
	assert.True(t, validator.ContainsWhitespace("a c"))
	assert.True(t, validator.ContainsWhitespace("a\u00a0c"))
}

func TestCompileFull(t *testing.T) {
	t.Parallel()

	re, err := validator.CompileFull(`[a-z]+\d+`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("abc123"))

	re, err = validator.CompileFull(`abc\d+`)
	require.NoError(t, err)
	assert.False(t, re.MatchString("xabc123"), "partial matches are rejected")

	re, err = validator.CompileFull(`a|ab`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("ab"), "alternation is grouped before anchoring")

	_, err = validator.CompileFull(`(`)
	require.ErrorIs(t, err, validator.ErrInvalidPattern)
}

func TestIsUUID(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, validator.IsUUID(""))
	assert.False(t, validator.IsUUID("550e8400e29b41d4a716446655440000"))
	assert.False(t, validator.IsUUID("{550e8400-e29b-41d4-a716-446655440000}"))
	assert.False(t, validator.IsUUID("550e8400-e29b-41d4-a716-44665544000z"))
}
