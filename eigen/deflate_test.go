// SPDX-License-Identifier: MIT

package eigen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectra/eigen"
	"github.com/katalvlaran/spectra/matrix"
)

// TestDeflate_RemovesDominantPair checks M − λ·eeᵀ against the closed form
// and verifies the input survives untouched.
func TestDeflate_RemovesDominantPair(t *testing.T) {
	m := MustFromRows(t, [][]float64{
		{2, 0},
		{0, 1},
	})
	pair := eigen.EigenPair{Value: 2, Vector: []float64{1, 0}}

	got, err := eigen.Deflate(m, pair)
	require.NoError(t, err)

	want := [][]float64{
		{0, 0},
		{0, 1},
	}
	var i, j int // loop iterators
	for i = 0; i < 2; i++ {
		for j = 0; j < 2; j++ {
			assert.InDelta(t, want[i][j], MustAt(t, got, i, j), 1e-12, "cell (%d,%d)", i, j)
		}
	}

	// Purity: the original matrix keeps its entries.
	assert.Equal(t, 2.0, MustAt(t, m, 0, 0), "Deflate must not mutate its input")
}

// TestDeflate_ThenSolve verifies the solve→deflate→solve chain surfaces the
// next-dominant pair.
func TestDeflate_ThenSolve(t *testing.T) {
	m := MustFromRows(t, [][]float64{
		{2, 0},
		{0, 1},
	})

	first, _, err := eigen.PowerIteration(m)
	require.NoError(t, err)
	require.InDelta(t, 2.0, first.Value, testTol)

	deflated, err := eigen.Deflate(m, first)
	require.NoError(t, err)

	second, stats, err := eigen.PowerIteration(deflated)
	require.NoError(t, err)

	assert.True(t, stats.Converged)
	assert.InDelta(t, 1.0, second.Value, testTol, "next-dominant eigenvalue")
	assert.InDelta(t, 0.0, second.Vector[0], 1e-3, "deflated direction is gone")
}

// TestDeflate_Errors covers the validation boundary.
func TestDeflate_Errors(t *testing.T) {
	_, err := eigen.Deflate(nil, eigen.EigenPair{Vector: []float64{1}})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil matrix")

	m := MustFromRows(t, [][]float64{
		{2, 0},
		{0, 1},
	})

	_, err = eigen.Deflate(m, eigen.EigenPair{Value: 2, Vector: []float64{1, 0, 0}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch, "vector length mismatch")

	_, err = eigen.Deflate(m, eigen.EigenPair{Value: 2, Vector: nil})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil vector")
}
