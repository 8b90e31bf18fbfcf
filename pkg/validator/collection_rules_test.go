package validator_test

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/requirements/pkg/validator"
)

func intsEqual(a, b int) bool { return a == b }

func TestContains(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Contains([]int{1, 2, 3}, 2, intsEqual))
	assert.False(t, validator.Contains([]int{1, 2, 3}, 4, intsEqual))
	assert.False(t, validator.Contains(nil, 4, intsEqual))
}

func TestContainsAllAndAny(t *testing.T) {
	t.Parallel()

	s := []int{1, 2, 3}

	assert.True(t, validator.ContainsAll(s, []int{3, 1}, intsEqual))
	assert.True(t, validator.ContainsAll(s, nil, intsEqual))
	assert.False(t, validator.ContainsAll(s, []int{1, 4}, intsEqual))
	assert.Equal(t, []int{4, 5}, validator.Missing(s, []int{1, 4, 5}, intsEqual))

	assert.True(t, validator.ContainsAny(s, []int{9, 3}, intsEqual))
	assert.False(t, validator.ContainsAny(s, []int{9}, intsEqual))
	assert.False(t, validator.ContainsAny(s, nil, intsEqual))
}

func TestSameElements(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.SameElements([]int{1, 2, 2}, []int{2, 1, 2}, intsEqual))
	assert.False(t, validator.SameElements([]int{1, 2, 2}, []int{1, 1, 2}, intsEqual))
	assert.False(t, validator.SameElements([]int{1}, []int{1, 1}, intsEqual))
	assert.True(t, validator.SameElements[int](nil, []int{}, intsEqual))
}

func TestDuplicates(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validator.Duplicates([]int{1, 2, 3}, intsEqual))
	assert.Equal(t, []int{2, 1}, validator.Duplicates([]int{1, 2, 2, 1, 2}, intsEqual))
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.IsSorted([]int{1, 1, 2}, cmp.Compare[int]))
	assert.False(t, validator.IsSorted([]int{2, 1}, cmp.Compare[int]))
	assert.True(t, validator.IsSorted([]string{}, cmp.Compare[string]))
}
