package circulis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin-panoptic-dev/circulis/circulis"
)

func TestSumPolicies(t *testing.T) {
	l := circulis.New[any](1, "x", 2)

	_, err := l.Sum(0, circulis.PolicyFail)
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)

	got, err := l.Sum(0, circulis.PolicyCoerce)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	got, err = l.Sum(0, circulis.PolicyTerminate)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestSumCoercesBoolsAndNumericStrings(t *testing.T) {
	l := circulis.New[any](true, "2.5", false, 1)
	got, err := l.Sum(0, circulis.PolicyCoerce)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got)
}

func TestSumEmptyReturnsZero(t *testing.T) {
	// the start value does not survive an empty container
	got, err := circulis.Empty[any]().Sum(7, circulis.PolicyFail)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestSumInvalidPolicy(t *testing.T) {
	_, err := nums(1).Sum(0, circulis.Policy(42))
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)
}

func TestMeanRoundsTwoDecimals(t *testing.T) {
	got, err := nums(1, 2, 2).Mean()
	require.NoError(t, err)
	assert.Equal(t, 1.67, got)
}

func TestMeanFiltersNonNumeric(t *testing.T) {
	got, err := circulis.New[any](nil, "string", 5).Mean()
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
}

func TestMeanNothingNumeric(t *testing.T) {
	_, err := circulis.New[any]("x", "y").Mean()
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)
	_, err = circulis.Empty[any]().Mean()
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)
}

func TestMedianIsPositional(t *testing.T) {
	// middle of the current order, not of the sorted order
	got, err := nums(5, 1, 4, 2, 3).Median()
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = nums(1, 2).Median()
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	v, err := circulis.New[any]("a", "b", "c").Median()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestDominant(t *testing.T) {
	v, n, err := nums(3, 1, 3, 2, 3, 1).Dominant()
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, n)
}

func TestDominantTieGoesToFirstSeen(t *testing.T) {
	v, n, err := nums(2, 1, 1, 2).Dominant()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, n)
}

func TestDominantCollapsesNumericTypes(t *testing.T) {
	v, n, err := circulis.New[any](1, 1.0, int64(1), "a").Dominant()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 3, n)
}

func TestStride(t *testing.T) {
	got, err := nums(1, 4, 9).Stride()
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5}, got)

	_, err = nums(1).Stride()
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)

	_, err = circulis.New[any](1, "x", 2).Stride()
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)
}

func TestPercentile(t *testing.T) {
	l := nums(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	got, err := l.Percentile(0.5)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)

	got, err = l.Percentile(0.9)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)
}

func TestPercentileValidation(t *testing.T) {
	l := nums(1, 2, 3)
	_, err := l.Percentile(0)
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)
	_, err = l.Percentile(0.99)
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)
	_, err = nums(1).Percentile(0.5)
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)
	_, err = circulis.New[any](1, "x").Percentile(0.5)
	require.ErrorIs(t, err, circulis.ErrInvalidOperation)
}
