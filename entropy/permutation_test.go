package entropy_test

import (
	"testing"

	"github.com/adipat/chaos/entropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPermutation_MonotoneSequence verifies that a strictly increasing
// sequence produces a single rank pattern and therefore zero entropy.
func TestPermutation_MonotoneSequence(t *testing.T) {
	h, err := entropy.Permutation([]float64{1, 2, 3, 4, 5, 6}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)
}

// TestPermutation_KnownDistribution pins the classic order-2 case: the
// sequence [4 7 9 10 6 11 3] has 4 ascents and 2 descents among its 6
// windows, so H = −(4/6)·log2(4/6) − (2/6)·log2(2/6) ≈ 0.918296.
func TestPermutation_KnownDistribution(t *testing.T) {
	h, err := entropy.Permutation([]float64{4, 7, 9, 10, 6, 11, 3}, 2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.9182958340544896, h, 1e-12)
}

// TestPermutation_DelaySpacing verifies that delay > 1 compares samples
// delay apart: [1 3 2 4] at order 2, delay 2 has windows (1,2) and (3,4),
// both ascending, hence zero entropy.
func TestPermutation_DelaySpacing(t *testing.T) {
	h, err := entropy.Permutation([]float64{1, 3, 2, 4}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)
}

// TestPermutation_TiesAreStable verifies deterministic tie handling: equal
// samples keep position order, so a constant sequence yields one pattern.
func TestPermutation_TiesAreStable(t *testing.T) {
	h, err := entropy.Permutation([]float64{5, 5, 5, 5, 5}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)
}

// TestPermutation_TooShortSequence verifies that input too short for a
// single window tallies nothing and yields zero, not an error.
func TestPermutation_TooShortSequence(t *testing.T) {
	h, err := entropy.Permutation([]float64{1, 2}, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)
}

// TestPermutation_ParameterValidation covers the sentinel for each invalid
// parameter.
func TestPermutation_ParameterValidation(t *testing.T) {
	_, err := entropy.Permutation(nil, 3, 1)
	assert.ErrorIs(t, err, entropy.ErrEmptySequence)

	_, err = entropy.Permutation([]float64{1, 2, 3}, 1, 1)
	assert.ErrorIs(t, err, entropy.ErrInvalidOrder)

	_, err = entropy.Permutation([]float64{1, 2, 3}, 3, 0)
	assert.ErrorIs(t, err, entropy.ErrInvalidDelay)
}
