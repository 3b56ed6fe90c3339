package canon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-panoptic-dev/circulis/canon"
)

type elems []any

func (e elems) Elements() []any { return e }

func key(t *testing.T, v any) canon.Key {
	t.Helper()
	k, err := canon.Canonicalize(v)
	require.NoError(t, err)
	return k
}

func TestNumericTypesCollapse(t *testing.T) {
	assert.Equal(t, key(t, 1), key(t, int64(1)))
	assert.Equal(t, key(t, 1), key(t, 1.0))
	assert.Equal(t, key(t, uint8(3)), key(t, 3.0))
	assert.NotEqual(t, key(t, 1), key(t, 2))
}

func TestBoolIsNotNumeric(t *testing.T) {
	assert.NotEqual(t, key(t, true), key(t, 1))
	assert.NotEqual(t, key(t, false), key(t, 0))
}

func TestStringsQuoted(t *testing.T) {
	// a string must never collide with a number spelled the same way
	assert.NotEqual(t, key(t, "1"), key(t, 1))
	assert.Equal(t, key(t, "ab"), key(t, "ab"))
}

func TestNestedSequences(t *testing.T) {
	a := key(t, elems{1, elems{2, 3}})
	b := key(t, elems{1, []any{2, 3}})
	c := key(t, elems{1, []int{2, 3}})
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)

	flat := key(t, elems{1, 2, 3})
	assert.NotEqual(t, a, flat)
}

func TestNilCanonicalizes(t *testing.T) {
	assert.Equal(t, key(t, nil), key(t, nil))
	assert.NotEqual(t, key(t, nil), key(t, 0))
}

func TestUncanonicalizable(t *testing.T) {
	_, err := canon.Canonicalize(map[string]int{"a": 1})
	require.ErrorIs(t, err, canon.ErrNotCanonicalizable)
	_, err = canon.Canonicalize(func() {})
	require.ErrorIs(t, err, canon.ErrNotCanonicalizable)
}

func TestDigestStable(t *testing.T) {
	a := key(t, elems{1, "x", elems{2}})
	b := key(t, elems{1, "x", elems{2}})
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), key(t, elems{1, "x"}).Digest())
}

func TestSetAlgebra(t *testing.T) {
	a, err := canon.NewSet([]any{1, 2, 3})
	require.NoError(t, err)
	b, err := canon.NewSet([]any{2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, 4, a.Union(b).Len())
	assert.Equal(t, 2, a.Intersect(b).Len())
	assert.Equal(t, 2, a.SymmetricDifference(b).Len())
	assert.Equal(t, 1, a.Difference(b).Len())
	assert.True(t, a.Difference(b).Has(key(t, 1)))
}

func TestSetRejectsUncanonicalizable(t *testing.T) {
	_, err := canon.NewSet([]any{1, map[int]int{}})
	require.ErrorIs(t, err, canon.ErrNotCanonicalizable)
}
