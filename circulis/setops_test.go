package circulis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-panoptic-dev/circulis/canon"
	"github.com/kevin-panoptic-dev/circulis/circulis"
)

func mustKey(t *testing.T, v any) canon.Key {
	t.Helper()
	k, err := canon.Canonicalize(v)
	require.NoError(t, err)
	return k
}

func TestUnion(t *testing.T) {
	got, err := nums(1, 2, 3).Union(nums(2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, got.Len())
	assert.True(t, got.Has(mustKey(t, 1)))
	assert.True(t, got.Has(mustKey(t, 4)))
}

func TestIntersect(t *testing.T) {
	got, err := nums(1, 2, 3).Intersect([]int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.True(t, got.Has(mustKey(t, 2)))
	assert.False(t, got.Has(mustKey(t, 1)))
}

func TestSymmetricDifference(t *testing.T) {
	got, err := nums(1, 2, 3).SymmetricDifference(nums(2, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
	assert.True(t, got.Has(mustKey(t, 1)))
	assert.True(t, got.Has(mustKey(t, 4)))
}

func TestDifferenceKeepsElements(t *testing.T) {
	l := circulis.New[any](1, 2, 1, 3)
	got, err := l.Difference([]any{2})
	require.NoError(t, err)
	// duplicates collapse to their first occurrence, order kept
	assert.Equal(t, []any{1, 3}, got.Elements())
}

func TestSetOpsAcrossNumericTypes(t *testing.T) {
	a := circulis.New[any](1, 2.0)
	got, err := a.Intersect([]any{int64(1), 2})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Len())
}

func TestSetOpsRejectNonSequence(t *testing.T) {
	_, err := nums(1).Union(42)
	require.ErrorIs(t, err, circulis.ErrTypeMismatch)
	_, err = nums(1).Intersect(nil)
	require.ErrorIs(t, err, circulis.ErrTypeMismatch)
}

func TestSetOpsRejectUncanonicalizable(t *testing.T) {
	l := circulis.New[any](map[string]int{"a": 1})
	_, err := l.Union([]any{1})
	require.ErrorIs(t, err, circulis.ErrTypeMismatch)
}

func TestHash(t *testing.T) {
	a, err := circulis.New[any](1, "x", []any{2, 3}).Hash()
	require.NoError(t, err)
	b, err := circulis.New[any](1.0, "x", []any{2, 3.0}).Hash()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := circulis.New[any](1, "x").Hash()
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestHashRejectsUncanonicalizable(t *testing.T) {
	_, err := circulis.New[any](func() {}).Hash()
	require.ErrorIs(t, err, circulis.ErrTypeMismatch)
}
