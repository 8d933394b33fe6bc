package entropy_test

import (
	"math"
	"testing"

	"github.com/adipat/chaos/entropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShannon_ConstantSequence verifies that a single repeated value carries
// no information.
func TestShannon_ConstantSequence(t *testing.T) {
	h, err := entropy.Shannon([]float64{7, 7, 7, 7}, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, h)
}

// TestShannon_UniformDistribution verifies that k equiprobable values yield
// exactly log2(k).
func TestShannon_UniformDistribution(t *testing.T) {
	h, err := entropy.Shannon([]float64{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, h, 1e-12, "4 equiprobable values must yield 2 bits")

	h, err = entropy.Shannon([]float64{1, 2}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, h, 1e-12, "2 equiprobable values must yield 1 bit")
}

// TestShannon_SkewedDistribution checks a hand-computed non-uniform case.
func TestShannon_SkewedDistribution(t *testing.T) {
	// p = {3/4, 1/4}: H = 0.75·log2(4/3) + 0.25·log2(4) ≈ 0.811278.
	h, err := entropy.Shannon([]float64{1, 1, 1, 2}, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.8112781244591328, h, 1e-12)
}

// TestShannon_NaturalBase verifies the base conversion path: uniform over k
// values in base e yields ln(k).
func TestShannon_NaturalBase(t *testing.T) {
	h, err := entropy.Shannon([]float64{1, 2, 3}, math.E)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(3), h, 1e-12)
}

// TestShannon_InvalidBase verifies that zero, negative and unit bases are
// rejected with ErrInvalidLogBase.
func TestShannon_InvalidBase(t *testing.T) {
	for _, base := range []float64{0, -2, 1} {
		_, err := entropy.Shannon([]float64{1, 2}, base)
		assert.ErrorIs(t, err, entropy.ErrInvalidLogBase, "base %v must be rejected", base)
	}
}

// TestShannon_EmptySequence verifies the empty-input sentinel.
func TestShannon_EmptySequence(t *testing.T) {
	_, err := entropy.Shannon(nil, 2)
	assert.ErrorIs(t, err, entropy.ErrEmptySequence)
}
